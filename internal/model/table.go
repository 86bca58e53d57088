package model

import "time"

// Table Стол (одна колода/шуз) с собственной историей партий
type Table struct {
	ID          int
	UserID      int
	Name        string
	RoundsCount int
	CreatedAt   time.Time
}

// TableStats Счетчики по столу. Только сырые количества,
// никакой аналитики предсказаний здесь нет
type TableStats struct {
	Rounds      int
	PlayerWins  int
	BankerWins  int
	Ties        int
	PlayerPairs int
	BankerPairs int
	BankerSixes int
}
