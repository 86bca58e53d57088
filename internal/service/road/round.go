package road

import (
	"baccarat_backend/internal/middleware"
	"baccarat_backend/internal/model"
	"context"
	"errors"
)

var (
	ErrTableNotFound = errors.New("table not found")
	ErrTableNotOwned = errors.New("table does not belong to user")
	ErrEmptyHistory  = errors.New("history is empty")
)

// AddRound Записать результат партии на стол.
// Журнал партий и счетчик стола обновляются в одной транзакции,
// после чего дорога пересчитывается по полной истории
func (s *serv) AddRound(ctx context.Context, tableID int, round model.RoundResult) (*model.Board, error) {
	if _, err := s.ownedTable(ctx, tableID); err != nil {
		return nil, err
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.roundRepo.AppendRound(txCtx, tableID, round); err != nil {
			return errors.New("failed to append round")
		}
		if err := s.tableRepo.UpdateRoundsCount(txCtx, tableID, 1); err != nil {
			return errors.New("failed to update rounds count")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.applyStats(ctx, tableID, round, false)

	return s.board(ctx, tableID, 0)
}

// UndoRound Отменить последнюю партию стола
func (s *serv) UndoRound(ctx context.Context, tableID int) (*model.Board, error) {
	if _, err := s.ownedTable(ctx, tableID); err != nil {
		return nil, err
	}

	var removed model.RoundResult
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		round, ok, err := s.roundRepo.DeleteLastRound(txCtx, tableID)
		if err != nil {
			return errors.New("failed to delete last round")
		}
		if !ok {
			return ErrEmptyHistory
		}
		removed = round
		if err := s.tableRepo.UpdateRoundsCount(txCtx, tableID, -1); err != nil {
			return errors.New("failed to update rounds count")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.applyStats(ctx, tableID, removed, true)

	return s.board(ctx, tableID, 0)
}

// ResetRounds Очистить историю стола (новый шуз)
func (s *serv) ResetRounds(ctx context.Context, tableID int) error {
	if _, err := s.ownedTable(ctx, tableID); err != nil {
		return err
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.roundRepo.ResetRounds(txCtx, tableID); err != nil {
			return errors.New("failed to reset rounds")
		}
		if err := s.tableRepo.SetRoundsCount(txCtx, tableID, 0); err != nil {
			return errors.New("failed to reset rounds count")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.statsRepo.Reset(tableID)

	return nil
}

// Rounds История стола в порядке розыгрыша
func (s *serv) Rounds(ctx context.Context, tableID int) ([]model.RoundResult, error) {
	if _, err := s.ownedTable(ctx, tableID); err != nil {
		return nil, err
	}
	return s.roundRepo.ListRounds(ctx, tableID)
}

// Stats Счетчики стола. Если состояния в памяти нет (например, после
// рестарта сервиса) - поднимаем его из журнала партий
func (s *serv) Stats(ctx context.Context, tableID int) (*model.TableStats, error) {
	if _, err := s.ownedTable(ctx, tableID); err != nil {
		return nil, err
	}

	stats, ok := s.statsRepo.TableStats(tableID)
	if !ok {
		rounds, err := s.roundRepo.ListRounds(ctx, tableID)
		if err != nil {
			return nil, errors.New("failed to list rounds")
		}
		s.statsRepo.Prime(tableID, rounds)
		stats, _ = s.statsRepo.TableStats(tableID)
	}

	return &stats, nil
}

// ownedTable проверяет, что стол существует и принадлежит пользователю из контекста
func (s *serv) ownedTable(ctx context.Context, tableID int) (*model.Table, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	table, err := s.tableRepo.GetTable(ctx, tableID)
	if err != nil {
		return nil, ErrTableNotFound
	}
	if table.UserID != userID {
		return nil, ErrTableNotOwned
	}

	return table, nil
}

// applyStats обновляет счетчики в памяти. revert - откат отмененной партии
func (s *serv) applyStats(ctx context.Context, tableID int, round model.RoundResult, revert bool) {
	// Если состояние еще не поднято, инициализируем его из журнала,
	// который уже содержит (или уже не содержит) эту партию
	if _, ok := s.statsRepo.TableStats(tableID); !ok {
		rounds, err := s.roundRepo.ListRounds(ctx, tableID)
		if err == nil {
			s.statsRepo.Prime(tableID, rounds)
		}
		return
	}

	if revert {
		s.statsRepo.RevertRound(tableID, round)
		return
	}
	s.statsRepo.ApplyRound(tableID, round)
}
