package repository

import (
	"baccarat_backend/internal/model"
	"context"
)

type RoundRepository interface {
	// AppendRound дописывает партию в конец истории стола
	AppendRound(ctx context.Context, tableID int, round model.RoundResult) error
	// DeleteLastRound удаляет последнюю партию.
	// Возвращает удаленную партию и false, если история пуста
	DeleteLastRound(ctx context.Context, tableID int) (model.RoundResult, bool, error)
	// ListRounds возвращает всю историю стола в порядке розыгрыша
	ListRounds(ctx context.Context, tableID int) ([]model.RoundResult, error)
	// ResetRounds очищает историю стола
	ResetRounds(ctx context.Context, tableID int) error
}

type TableRepository interface {
	CreateTable(ctx context.Context, table *model.Table) (id int, err error)
	GetTable(ctx context.Context, id int) (*model.Table, error)
	ListTables(ctx context.Context, userID int) ([]model.Table, error)
	UpdateRoundsCount(ctx context.Context, id int, delta int) error
	SetRoundsCount(ctx context.Context, id int, count int) error
}

// RoadStatsRepository Счетчики по столам в памяти процесса.
// Ленивая инициализация: если состояния нет, сервис поднимает его
// из истории через Prime
type RoadStatsRepository interface {
	TableStats(tableID int) (model.TableStats, bool)
	Prime(tableID int, rounds []model.RoundResult)
	ApplyRound(tableID int, round model.RoundResult)
	RevertRound(tableID int, round model.RoundResult)
	Reset(tableID int)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
}
