package table

import "time"

type CreateTableRequest struct {
	Name string `json:"name"` // Название стола
}

type TableResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	RoundsCount int       `json:"rounds_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type TablesResponse struct {
	Tables []TableResponse `json:"tables"`
}
