package converter

import (
	"baccarat_backend/internal/api/dto/road"
	"baccarat_backend/internal/model"
)

// ToRoundResult - собирает RoundResult из запроса.
// Некорректный исход отсекается здесь, до билдера дороги
func ToRoundResult(req road.AddRoundRequest) (model.RoundResult, error) {
	outcome, err := model.ParseOutcome(req.Outcome)
	if err != nil {
		return model.RoundResult{}, err
	}

	return model.RoundResult{
		Outcome:    outcome,
		PlayerPair: req.PlayerPair,
		BankerPair: req.BankerPair,
		BankerSix:  req.BankerSix,
	}, nil
}

func ToBoardResponse(board *model.Board) road.BoardResponse {
	columns := make([][]road.Cell, len(board.Columns))
	for i, col := range board.Columns {
		cells := make([]road.Cell, len(col))
		for j, cell := range col {
			cells[j] = road.Cell{
				Outcome:    string(cell.Outcome),
				TieCount:   cell.TieCount,
				PlayerPair: cell.PlayerPair,
				BankerPair: cell.BankerPair,
				BankerSix:  cell.BankerSix,
			}
		}
		columns[i] = cells
	}

	return road.BoardResponse{
		Columns:      columns,
		TotalColumns: board.TotalColumns,
		RoundCount:   board.RoundCount,
	}
}

func ToRoundsResponse(rounds []model.RoundResult) road.RoundsResponse {
	result := make([]road.Round, len(rounds))
	for i, r := range rounds {
		result[i] = road.Round{
			Outcome:    string(r.Outcome),
			PlayerPair: r.PlayerPair,
			BankerPair: r.BankerPair,
			BankerSix:  r.BankerSix,
		}
	}
	return road.RoundsResponse{Rounds: result}
}

func ToStatsResponse(stats *model.TableStats) road.StatsResponse {
	return road.StatsResponse{
		Rounds:      stats.Rounds,
		PlayerWins:  stats.PlayerWins,
		BankerWins:  stats.BankerWins,
		Ties:        stats.Ties,
		PlayerPairs: stats.PlayerPairs,
		BankerPairs: stats.BankerPairs,
		BankerSixes: stats.BankerSixes,
	}
}
