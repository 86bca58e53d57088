package road

import (
	"baccarat_backend/internal/model"
	"context"
	"errors"
)

// Board Построить дорогу стола, обрезанную до последних cols колонок.
// cols <= 0 - берем ширину табло из конфигурации
func (s *serv) Board(ctx context.Context, tableID int, cols int) (*model.Board, error) {
	if _, err := s.ownedTable(ctx, tableID); err != nil {
		return nil, err
	}
	return s.board(ctx, tableID, cols)
}

// board пересчитывает дорогу целиком по полной истории.
// Билдер не хранит состояния, поэтому результат всегда согласован
// с текущим журналом партий
func (s *serv) board(ctx context.Context, tableID int, cols int) (*model.Board, error) {
	rounds, err := s.roundRepo.ListRounds(ctx, tableID)
	if err != nil {
		return nil, errors.New("failed to list rounds")
	}

	if cols <= 0 {
		cols = s.cfg.DisplayColumns()
	}

	grid := BuildBigRoad(rounds)

	return &model.Board{
		Columns:      LastColumns(grid, cols),
		TotalColumns: len(grid),
		RoundCount:   len(rounds),
	}, nil
}
