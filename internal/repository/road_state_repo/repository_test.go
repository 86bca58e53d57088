package road_state_repo

import (
	"testing"

	"baccarat_backend/internal/model"
)

func TestStateRepoLifecycle(t *testing.T) {
	repo := NewRoadStatsRepository()

	if _, ok := repo.TableStats(1); ok {
		t.Fatal("stats exist before prime")
	}

	repo.Prime(1, []model.RoundResult{
		{Outcome: model.OutcomePlayer, PlayerPair: true},
		{Outcome: model.OutcomeTie},
		{Outcome: model.OutcomeBanker, BankerPair: true, BankerSix: true},
	})

	stats, ok := repo.TableStats(1)
	if !ok {
		t.Fatal("stats missing after prime")
	}
	want := model.TableStats{Rounds: 3, PlayerWins: 1, BankerWins: 1, Ties: 1, PlayerPairs: 1, BankerPairs: 1, BankerSixes: 1}
	if stats != want {
		t.Fatalf("primed stats = %+v, want %+v", stats, want)
	}

	round := model.RoundResult{Outcome: model.OutcomeBanker, BankerSix: true}
	repo.ApplyRound(1, round)
	stats, _ = repo.TableStats(1)
	if stats.Rounds != 4 || stats.BankerWins != 2 || stats.BankerSixes != 2 {
		t.Errorf("stats after apply = %+v", stats)
	}

	repo.RevertRound(1, round)
	stats, _ = repo.TableStats(1)
	if stats != want {
		t.Errorf("stats after revert = %+v, want %+v", stats, want)
	}

	repo.Reset(1)
	stats, ok = repo.TableStats(1)
	if !ok || stats != (model.TableStats{}) {
		t.Errorf("stats after reset = %+v, ok = %v", stats, ok)
	}
}

func TestStateRepoTablesIsolated(t *testing.T) {
	repo := NewRoadStatsRepository()

	repo.ApplyRound(1, model.RoundResult{Outcome: model.OutcomePlayer})
	repo.ApplyRound(2, model.RoundResult{Outcome: model.OutcomeBanker})

	first, _ := repo.TableStats(1)
	second, _ := repo.TableStats(2)

	if first.PlayerWins != 1 || first.BankerWins != 0 {
		t.Errorf("table 1 stats = %+v", first)
	}
	if second.PlayerWins != 0 || second.BankerWins != 1 {
		t.Errorf("table 2 stats = %+v", second)
	}
}
