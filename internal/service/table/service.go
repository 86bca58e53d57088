package table

import (
	"baccarat_backend/internal/middleware"
	"baccarat_backend/internal/model"
	"baccarat_backend/internal/repository"
	"baccarat_backend/internal/service"
	"context"
	"errors"
	"strings"
)

type serv struct {
	tableRepo repository.TableRepository
}

// NewTableService Создать сервис управления столами
func NewTableService(tableRepo repository.TableRepository) service.TableService {
	return &serv{
		tableRepo: tableRepo,
	}
}

// CreateTable Создать стол для пользователя из контекста
func (s *serv) CreateTable(ctx context.Context, name string) (*model.Table, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("table name is empty")
	}

	t := &model.Table{
		UserID: userID,
		Name:   name,
	}

	id, err := s.tableRepo.CreateTable(ctx, t)
	if err != nil {
		return nil, errors.New("failed to create table")
	}

	return s.tableRepo.GetTable(ctx, id)
}

// ListTables Столы пользователя из контекста
func (s *serv) ListTables(ctx context.Context) ([]model.Table, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	return s.tableRepo.ListTables(ctx, userID)
}
