package road

import (
	"testing"

	"baccarat_backend/internal/model"
)

func rounds(seq string) []model.RoundResult {
	history := make([]model.RoundResult, 0, len(seq))
	for _, c := range seq {
		history = append(history, model.RoundResult{Outcome: model.Outcome(c)})
	}
	return history
}

func TestBuildBigRoad(t *testing.T) {
	tests := []struct {
		name       string
		history    string
		wantHeight [][]int // колонки как [высота], для наглядности ниже отдельные проверки
	}{
		{"empty history", "", nil},
		{"only ties", "TTT", nil},
		{"single player", "P", [][]int{{1}}},
		{"alternating", "PBPB", [][]int{{1}, {1}, {1}, {1}}},
		{"streak stacks", "BBB", [][]int{{3}}},
		{"overflow splits column", "BBBBBBB", [][]int{{6}, {1}}},
		{"double overflow", "PPPPPPPPPPPPP", [][]int{{6}, {6}, {1}}},
		{"streak after switch", "PPBBB", [][]int{{2}, {3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := BuildBigRoad(rounds(tt.history))
			if len(grid) != len(tt.wantHeight) {
				t.Fatalf("columns = %d, want %d", len(grid), len(tt.wantHeight))
			}
			for i, col := range grid {
				if len(col) != tt.wantHeight[i][0] {
					t.Errorf("column %d height = %d, want %d", i, len(col), tt.wantHeight[i][0])
				}
			}
		})
	}
}

func TestBuildBigRoadScenarioA(t *testing.T) {
	// 7 побед банкира: колонка из 6 плюс колонка из 1, нулевые Tie
	grid := BuildBigRoad(rounds("BBBBBBB"))
	if len(grid) != 2 || len(grid[0]) != 6 || len(grid[1]) != 1 {
		t.Fatalf("grid shape = %v", shape(grid))
	}
	for _, col := range grid {
		for _, cell := range col {
			if cell.Outcome != model.OutcomeBanker {
				t.Errorf("cell outcome = %q, want B", cell.Outcome)
			}
			if cell.TieCount != 0 {
				t.Errorf("tie count = %d, want 0", cell.TieCount)
			}
		}
	}
}

func TestBuildBigRoadScenarioB(t *testing.T) {
	// P T T B: Tie копятся на ячейке P
	grid := BuildBigRoad(rounds("PTTB"))
	if len(grid) != 2 {
		t.Fatalf("columns = %d, want 2", len(grid))
	}
	if got := grid[0][0]; got.Outcome != model.OutcomePlayer || got.TieCount != 2 {
		t.Errorf("first cell = %+v, want P with 2 ties", got)
	}
	if got := grid[1][0]; got.Outcome != model.OutcomeBanker || got.TieCount != 0 {
		t.Errorf("second cell = %+v, want B with 0 ties", got)
	}
}

func TestBuildBigRoadScenarioC(t *testing.T) {
	// Tie до первой не-Tie партии отбрасываются без следа
	grid := BuildBigRoad(rounds("TTP"))
	if len(grid) != 1 || len(grid[0]) != 1 {
		t.Fatalf("grid shape = %v", shape(grid))
	}
	if got := grid[0][0]; got.Outcome != model.OutcomePlayer || got.TieCount != 0 {
		t.Errorf("cell = %+v, want P with 0 ties", got)
	}
}

func TestBuildBigRoadTieAfterOverflow(t *testing.T) {
	// Tie сразу после переполнения прикрепляется к первой ячейке
	// новой колонки, а не к хвосту закрытой
	grid := BuildBigRoad(rounds("BBBBBBBT"))
	if len(grid) != 2 {
		t.Fatalf("columns = %d, want 2", len(grid))
	}
	if got := grid[0][5].TieCount; got != 0 {
		t.Errorf("closed column tail tie count = %d, want 0", got)
	}
	if got := grid[1][0].TieCount; got != 1 {
		t.Errorf("overflow column tie count = %d, want 1", got)
	}
}

func TestBuildBigRoadTieOnFullColumn(t *testing.T) {
	// Tie после заполненной колонки (без последующей партии того же
	// исхода) ложится на ее последнюю ячейку
	grid := BuildBigRoad(rounds("PPPPPPT"))
	if len(grid) != 1 {
		t.Fatalf("columns = %d, want 1", len(grid))
	}
	if got := grid[0][5].TieCount; got != 1 {
		t.Errorf("tie count = %d, want 1", got)
	}
}

func TestBuildBigRoadFlags(t *testing.T) {
	history := []model.RoundResult{
		{Outcome: model.OutcomePlayer, PlayerPair: true, BankerSix: false},
		{Outcome: model.OutcomeTie, BankerPair: true}, // флаги Tie никуда не копируются
		{Outcome: model.OutcomeBanker, BankerPair: true, BankerSix: true},
	}
	grid := BuildBigRoad(history)
	if len(grid) != 2 {
		t.Fatalf("columns = %d, want 2", len(grid))
	}
	first := grid[0][0]
	if !first.PlayerPair || first.BankerPair || first.BankerSix {
		t.Errorf("first cell flags = %+v", first)
	}
	if first.TieCount != 1 {
		t.Errorf("first cell tie count = %d, want 1", first.TieCount)
	}
	second := grid[1][0]
	if second.PlayerPair || !second.BankerPair || !second.BankerSix {
		t.Errorf("second cell flags = %+v", second)
	}
}

func TestBuildBigRoadProperties(t *testing.T) {
	histories := []string{
		"", "T", "P", "PB", "PPBBTT", "TPTBTPT", "PPPPPPPPPPPPPPB",
		"BTBTBTBTBTBT", "PPPPPPTPPPPPPP", "BBBBBBBBBBBBBBBBBBBBBBBB",
		"PBPBPBPBPBPBPBPBPBPB", "TTTTTPBBTPPTB",
	}

	for _, seq := range histories {
		t.Run(seq, func(t *testing.T) {
			history := rounds(seq)
			grid := BuildBigRoad(history)

			var nonTie, tiesAfterFirst int
			seen := false
			for _, r := range history {
				if r.Outcome == model.OutcomeTie {
					if seen {
						tiesAfterFirst++
					}
					continue
				}
				nonTie++
				seen = true
			}

			// Ячеек ровно столько, сколько партий P/B
			cells, tieSum := 0, 0
			for i, col := range grid {
				if len(col) == 0 || len(col) > maxRows {
					t.Fatalf("column %d height = %d", i, len(col))
				}
				for _, cell := range col {
					cells++
					tieSum += cell.TieCount
					if cell.Outcome != col[0].Outcome {
						t.Errorf("column %d mixes outcomes", i)
					}
				}
				// Соседние колонки одного исхода - только после переполнения
				if i > 0 && col[0].Outcome == grid[i-1][0].Outcome && len(grid[i-1]) != maxRows {
					t.Errorf("columns %d and %d share outcome without overflow", i-1, i)
				}
			}
			if cells != nonTie {
				t.Errorf("cells = %d, want %d", cells, nonTie)
			}
			if tieSum != tiesAfterFirst {
				t.Errorf("tie sum = %d, want %d", tieSum, tiesAfterFirst)
			}
			if (len(grid) == 0) != (nonTie == 0) {
				t.Errorf("empty grid = %v with %d non-tie rounds", len(grid) == 0, nonTie)
			}
		})
	}
}

func TestLastColumns(t *testing.T) {
	// Сценарий E: 20 чередующихся колонок по одной ячейке, K=14
	grid := BuildBigRoad(rounds("PBPBPBPBPBPBPBPBPBPB"))
	if len(grid) != 20 {
		t.Fatalf("columns = %d, want 20", len(grid))
	}

	view := LastColumns(grid, 14)
	if len(view) != 14 {
		t.Fatalf("truncated columns = %d, want 14", len(view))
	}
	for i, col := range view {
		if len(col) != 1 {
			t.Errorf("column %d height = %d, want 1", i, len(col))
		}
		// Обрезка отрезает префикс и ничего не меняет
		if &col[0] != &grid[i+6][0] {
			t.Errorf("column %d is not the original column", i)
		}
	}

	if got := LastColumns(grid, 20); len(got) != 20 {
		t.Errorf("k == len: columns = %d, want 20", len(got))
	}
	if got := LastColumns(grid, 100); len(got) != 20 {
		t.Errorf("k > len: columns = %d, want 20", len(got))
	}
	if got := LastColumns(nil, 14); len(got) != 0 {
		t.Errorf("empty grid: columns = %d, want 0", len(got))
	}
}

func shape(grid model.Grid) []int {
	heights := make([]int, 0, len(grid))
	for _, col := range grid {
		heights = append(heights, len(col))
	}
	return heights
}
