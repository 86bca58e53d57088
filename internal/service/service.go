package service

import (
	"baccarat_backend/internal/model"
	"context"
)

type RoadService interface {
	// AddRound дописывает партию в историю стола и возвращает свежую дорогу
	AddRound(ctx context.Context, tableID int, round model.RoundResult) (*model.Board, error)
	// UndoRound отменяет последнюю партию и возвращает свежую дорогу
	UndoRound(ctx context.Context, tableID int) (*model.Board, error)
	// ResetRounds очищает историю стола
	ResetRounds(ctx context.Context, tableID int) error
	// Board строит дорогу по полной истории и обрезает до последних cols
	// колонок. cols <= 0 означает значение из конфигурации
	Board(ctx context.Context, tableID int, cols int) (*model.Board, error)
	// Rounds возвращает историю стола в порядке розыгрыша
	Rounds(ctx context.Context, tableID int) ([]model.RoundResult, error)
	// Stats возвращает счетчики стола
	Stats(ctx context.Context, tableID int) (*model.TableStats, error)
}

type TableService interface {
	CreateTable(ctx context.Context, name string) (*model.Table, error)
	ListTables(ctx context.Context) ([]model.Table, error)
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
