package road

type AddRoundRequest struct {
	Outcome    string `json:"outcome"`     // "P", "B" или "T"
	PlayerPair bool   `json:"player_pair"` // Пара игрока
	BankerPair bool   `json:"banker_pair"` // Пара банкира
	BankerSix  bool   `json:"banker_six"`  // Победа банкира с шестью очками
}

type Cell struct {
	Outcome    string `json:"outcome"`   // "P" или "B", Tie ячейку не создает
	TieCount   int    `json:"tie_count"` // Сколько Tie легло на эту ячейку
	PlayerPair bool   `json:"player_pair"`
	BankerPair bool   `json:"banker_pair"`
	BankerSix  bool   `json:"banker_six"`
}

type BoardResponse struct {
	Columns      [][]Cell `json:"columns"`       // Колонки после обрезки, слева направо
	TotalColumns int      `json:"total_columns"` // Сколько колонок всего до обрезки
	RoundCount   int      `json:"round_count"`   // Сколько партий в истории
}

type Round struct {
	Outcome    string `json:"outcome"`
	PlayerPair bool   `json:"player_pair"`
	BankerPair bool   `json:"banker_pair"`
	BankerSix  bool   `json:"banker_six"`
}

type RoundsResponse struct {
	Rounds []Round `json:"rounds"`
}

type StatsResponse struct {
	Rounds      int `json:"rounds"`
	PlayerWins  int `json:"player_wins"`
	BankerWins  int `json:"banker_wins"`
	Ties        int `json:"ties"`
	PlayerPairs int `json:"player_pairs"`
	BankerPairs int `json:"banker_pairs"`
	BankerSixes int `json:"banker_sixes"`
}
