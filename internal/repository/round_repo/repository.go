package round_repo

import (
	"baccarat_backend/internal/model"
	"baccarat_backend/internal/repository"
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table         = "rounds"
	colID         = "id"
	colTableID    = "table_id"
	colSeq        = "seq"
	colOutcome    = "outcome"
	colPlayerPair = "player_pair"
	colBankerPair = "banker_pair"
	colBankerSix  = "banker_six"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewRoundRepository(dbc *pgxpool.Pool) repository.RoundRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// AppendRound - дописывает партию в конец истории стола.
// Номер партии seq выдается как max(seq)+1, история растет только с конца
func (r *repo) AppendRound(ctx context.Context, tableID int, round model.RoundResult) error {
	query := sq.Insert(table).
		Columns(colTableID, colSeq, colOutcome, colPlayerPair, colBankerPair, colBankerSix).
		Values(
			tableID,
			sq.Expr("(SELECT COALESCE(MAX("+colSeq+"), 0) + 1 FROM "+table+" WHERE "+colTableID+" = ?)", tableID),
			string(round.Outcome),
			round.PlayerPair,
			round.BankerPair,
			round.BankerSix,
		).
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

// DeleteLastRound - удаляет самую свежую партию стола (стековая дисциплина,
// произвольное удаление из середины не поддерживается).
// Возвращает удаленную партию; false - если история уже пуста
func (r *repo) DeleteLastRound(ctx context.Context, tableID int) (model.RoundResult, bool, error) {
	query := sq.Delete(table).
		Where(colTableID+" = ? AND "+colSeq+" = (SELECT MAX("+colSeq+") FROM "+table+" WHERE "+colTableID+" = ?)", tableID, tableID).
		Suffix("RETURNING " + colOutcome + ", " + colPlayerPair + ", " + colBankerPair + ", " + colBankerSix).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return model.RoundResult{}, false, err
	}

	var (
		round model.RoundResult
		raw   string
	)
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&raw, &round.PlayerPair, &round.BankerPair, &round.BankerSix)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RoundResult{}, false, nil
		}
		return model.RoundResult{}, false, err
	}

	round.Outcome = model.Outcome(raw)
	return round, true, nil
}

// ListRounds - возвращает полную историю стола в порядке розыгрыша
func (r *repo) ListRounds(ctx context.Context, tableID int) ([]model.RoundResult, error) {
	query := sq.Select(colOutcome, colPlayerPair, colBankerPair, colBankerSix).
		From(table).
		Where(sq.Eq{colTableID: tableID}).
		OrderBy(colSeq).
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

	var rounds []model.RoundResult
	for rows.Next() {
		var (
			round model.RoundResult
			raw   string
		)
		if err := rows.Scan(&raw, &round.PlayerPair, &round.BankerPair, &round.BankerSix); err != nil {
			return nil, err
		}
		round.Outcome = model.Outcome(raw)
		rounds = append(rounds, round)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rounds, nil
}

// ResetRounds - очищает историю стола
func (r *repo) ResetRounds(ctx context.Context, tableID int) error {
	query := sq.Delete(table).
		Where(sq.Eq{colTableID: tableID}).
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
