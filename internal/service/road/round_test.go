package road

import (
	"context"
	"errors"
	"testing"

	"baccarat_backend/internal/middleware"
	"baccarat_backend/internal/model"
	"baccarat_backend/internal/repository/road_state_repo"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(context.Context) error) error {
	return fn(ctx)
}

type fakeRoundRepo struct {
	rounds map[int][]model.RoundResult
}

func newFakeRoundRepo() *fakeRoundRepo {
	return &fakeRoundRepo{rounds: make(map[int][]model.RoundResult)}
}

func (r *fakeRoundRepo) AppendRound(_ context.Context, tableID int, round model.RoundResult) error {
	r.rounds[tableID] = append(r.rounds[tableID], round)
	return nil
}

func (r *fakeRoundRepo) DeleteLastRound(_ context.Context, tableID int) (model.RoundResult, bool, error) {
	history := r.rounds[tableID]
	if len(history) == 0 {
		return model.RoundResult{}, false, nil
	}
	last := history[len(history)-1]
	r.rounds[tableID] = history[:len(history)-1]
	return last, true, nil
}

func (r *fakeRoundRepo) ListRounds(_ context.Context, tableID int) ([]model.RoundResult, error) {
	return r.rounds[tableID], nil
}

func (r *fakeRoundRepo) ResetRounds(_ context.Context, tableID int) error {
	r.rounds[tableID] = nil
	return nil
}

type fakeTableRepo struct {
	tables map[int]*model.Table
}

func newFakeTableRepo(tables ...*model.Table) *fakeTableRepo {
	repo := &fakeTableRepo{tables: make(map[int]*model.Table)}
	for _, t := range tables {
		repo.tables[t.ID] = t
	}
	return repo
}

func (r *fakeTableRepo) CreateTable(_ context.Context, t *model.Table) (int, error) {
	id := len(r.tables) + 1
	t.ID = id
	r.tables[id] = t
	return id, nil
}

func (r *fakeTableRepo) GetTable(_ context.Context, id int) (*model.Table, error) {
	t, ok := r.tables[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return t, nil
}

func (r *fakeTableRepo) ListTables(_ context.Context, userID int) ([]model.Table, error) {
	var result []model.Table
	for _, t := range r.tables {
		if t.UserID == userID {
			result = append(result, *t)
		}
	}
	return result, nil
}

func (r *fakeTableRepo) UpdateRoundsCount(_ context.Context, id int, delta int) error {
	r.tables[id].RoundsCount += delta
	return nil
}

func (r *fakeTableRepo) SetRoundsCount(_ context.Context, id int, count int) error {
	r.tables[id].RoundsCount = count
	return nil
}

type staticRoadCfg struct {
	cols int
}

func (c staticRoadCfg) DisplayColumns() int { return c.cols }

const (
	ownerID   = 7
	testTable = 1
)

func newTestService(cols int) (*serv, *fakeRoundRepo, *fakeTableRepo) {
	roundRepo := newFakeRoundRepo()
	tableRepo := newFakeTableRepo(&model.Table{ID: testTable, UserID: ownerID, Name: "Shoe 1"})
	s := &serv{
		cfg:       staticRoadCfg{cols: cols},
		roundRepo: roundRepo,
		tableRepo: tableRepo,
		statsRepo: road_state_repo.NewRoadStatsRepository(),
		txManager: fakeTxManager{},
	}
	return s, roundRepo, tableRepo
}

func ownerCtx() context.Context {
	return middleware.WithUserID(context.Background(), ownerID)
}

func TestAddRoundRebuildsBoard(t *testing.T) {
	s, _, tableRepo := newTestService(14)
	ctx := ownerCtx()

	for _, outcome := range []model.Outcome{model.OutcomePlayer, model.OutcomePlayer, model.OutcomeTie} {
		if _, err := s.AddRound(ctx, testTable, model.RoundResult{Outcome: outcome}); err != nil {
			t.Fatalf("AddRound(%q): %v", outcome, err)
		}
	}

	board, err := s.AddRound(ctx, testTable, model.RoundResult{Outcome: model.OutcomeBanker})
	if err != nil {
		t.Fatalf("AddRound(B): %v", err)
	}

	if board.RoundCount != 4 {
		t.Errorf("round count = %d, want 4", board.RoundCount)
	}
	if board.TotalColumns != 2 || len(board.Columns) != 2 {
		t.Fatalf("columns = %d/%d, want 2/2", len(board.Columns), board.TotalColumns)
	}
	if got := board.Columns[0][1].TieCount; got != 1 {
		t.Errorf("tie count on last player cell = %d, want 1", got)
	}
	if got := tableRepo.tables[testTable].RoundsCount; got != 4 {
		t.Errorf("rounds_count = %d, want 4", got)
	}
}

func TestAddRoundRejectsForeignTable(t *testing.T) {
	s, _, _ := newTestService(14)
	ctx := middleware.WithUserID(context.Background(), ownerID+1)

	_, err := s.AddRound(ctx, testTable, model.RoundResult{Outcome: model.OutcomePlayer})
	if !errors.Is(err, ErrTableNotOwned) {
		t.Fatalf("err = %v, want ErrTableNotOwned", err)
	}
}

func TestAddRoundUnknownTable(t *testing.T) {
	s, _, _ := newTestService(14)

	_, err := s.AddRound(ownerCtx(), 42, model.RoundResult{Outcome: model.OutcomePlayer})
	if !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("err = %v, want ErrTableNotFound", err)
	}
}

func TestUndoRound(t *testing.T) {
	s, roundRepo, tableRepo := newTestService(14)
	ctx := ownerCtx()

	for _, outcome := range []model.Outcome{model.OutcomePlayer, model.OutcomeBanker} {
		if _, err := s.AddRound(ctx, testTable, model.RoundResult{Outcome: outcome}); err != nil {
			t.Fatalf("AddRound(%q): %v", outcome, err)
		}
	}

	board, err := s.UndoRound(ctx, testTable)
	if err != nil {
		t.Fatalf("UndoRound: %v", err)
	}

	if board.RoundCount != 1 || board.TotalColumns != 1 {
		t.Errorf("board = %d rounds / %d columns, want 1/1", board.RoundCount, board.TotalColumns)
	}
	if got := len(roundRepo.rounds[testTable]); got != 1 {
		t.Errorf("stored rounds = %d, want 1", got)
	}
	if got := tableRepo.tables[testTable].RoundsCount; got != 1 {
		t.Errorf("rounds_count = %d, want 1", got)
	}

	stats, err := s.Stats(ctx, testTable)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Rounds != 1 || stats.BankerWins != 0 || stats.PlayerWins != 1 {
		t.Errorf("stats after undo = %+v", stats)
	}
}

func TestUndoRoundEmptyHistory(t *testing.T) {
	s, _, _ := newTestService(14)

	_, err := s.UndoRound(ownerCtx(), testTable)
	if !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("err = %v, want ErrEmptyHistory", err)
	}
}

func TestResetRounds(t *testing.T) {
	s, roundRepo, tableRepo := newTestService(14)
	ctx := ownerCtx()

	for i := 0; i < 3; i++ {
		if _, err := s.AddRound(ctx, testTable, model.RoundResult{Outcome: model.OutcomeBanker}); err != nil {
			t.Fatalf("AddRound: %v", err)
		}
	}

	if err := s.ResetRounds(ctx, testTable); err != nil {
		t.Fatalf("ResetRounds: %v", err)
	}

	if got := len(roundRepo.rounds[testTable]); got != 0 {
		t.Errorf("stored rounds = %d, want 0", got)
	}
	if got := tableRepo.tables[testTable].RoundsCount; got != 0 {
		t.Errorf("rounds_count = %d, want 0", got)
	}

	board, err := s.Board(ctx, testTable, 0)
	if err != nil {
		t.Fatalf("Board: %v", err)
	}
	if board.RoundCount != 0 || board.TotalColumns != 0 {
		t.Errorf("board after reset = %+v", board)
	}
}

func TestBoardUsesConfiguredWidth(t *testing.T) {
	s, roundRepo, _ := newTestService(2)
	ctx := ownerCtx()

	// 4 чередующиеся колонки, табло шириной 2 из конфигурации
	roundRepo.rounds[testTable] = []model.RoundResult{
		{Outcome: model.OutcomePlayer},
		{Outcome: model.OutcomeBanker},
		{Outcome: model.OutcomePlayer},
		{Outcome: model.OutcomeBanker},
	}

	board, err := s.Board(ctx, testTable, 0)
	if err != nil {
		t.Fatalf("Board: %v", err)
	}
	if board.TotalColumns != 4 || len(board.Columns) != 2 {
		t.Errorf("columns = %d/%d, want 2/4", len(board.Columns), board.TotalColumns)
	}

	// Явный cols перекрывает конфигурацию
	board, err = s.Board(ctx, testTable, 3)
	if err != nil {
		t.Fatalf("Board: %v", err)
	}
	if len(board.Columns) != 3 {
		t.Errorf("columns = %d, want 3", len(board.Columns))
	}
}

func TestStatsPrimedFromHistory(t *testing.T) {
	s, roundRepo, _ := newTestService(14)
	ctx := ownerCtx()

	// Журнал уже есть, состояния в памяти нет - как после рестарта
	roundRepo.rounds[testTable] = []model.RoundResult{
		{Outcome: model.OutcomePlayer, PlayerPair: true},
		{Outcome: model.OutcomeTie},
		{Outcome: model.OutcomeBanker, BankerSix: true},
	}

	stats, err := s.Stats(ctx, testTable)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	want := model.TableStats{Rounds: 3, PlayerWins: 1, BankerWins: 1, Ties: 1, PlayerPairs: 1, BankerSixes: 1}
	if *stats != want {
		t.Errorf("stats = %+v, want %+v", *stats, want)
	}
}
