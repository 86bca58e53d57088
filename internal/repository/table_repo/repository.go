package table_repo

import (
	"baccarat_backend/internal/model"
	"baccarat_backend/internal/repository"
	"context"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "tables"
	colID          = "id"
	colUserID      = "user_id"
	colName        = "name"
	colRoundsCount = "rounds_count"
	colCreatedAt   = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewTableRepository(dbc *pgxpool.Pool) repository.TableRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateTable - создает стол. Возвращает ID созданного стола
func (r *repo) CreateTable(ctx context.Context, t *model.Table) (int, error) {
	query := sq.Insert(table).
		Columns(colUserID, colName).
		Values(t.UserID, t.Name).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetTable - возвращает стол по ID
func (r *repo) GetTable(ctx context.Context, id int) (*model.Table, error) {
	query := sq.Select(colID, colUserID, colName, colRoundsCount, colCreatedAt).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var t model.Table
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&t.ID, &t.UserID, &t.Name, &t.RoundsCount, &t.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// ListTables - возвращает столы пользователя, свежие первыми
func (r *repo) ListTables(ctx context.Context, userID int) ([]model.Table, error) {
	query := sq.Select(colID, colUserID, colName, colRoundsCount, colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colID + " DESC").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []model.Table
	for rows.Next() {
		var t model.Table
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.RoundsCount, &t.CreatedAt); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}

// UpdateRoundsCount - сдвигает счетчик партий стола на delta
// (+1 при добавлении, -1 при отмене последней партии)
func (r *repo) UpdateRoundsCount(ctx context.Context, id int, delta int) error {
	query := sq.Update(table).
		Set(colRoundsCount, sq.Expr(colRoundsCount+" + ?", delta)).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// SetRoundsCount - выставляет счетчик партий стола (используется при сбросе)
func (r *repo) SetRoundsCount(ctx context.Context, id int, count int) error {
	query := sq.Update(table).
		Set(colRoundsCount, count).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}
