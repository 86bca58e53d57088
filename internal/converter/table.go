package converter

import (
	"baccarat_backend/internal/api/dto/table"
	"baccarat_backend/internal/model"
)

func ToTableResponse(t *model.Table) table.TableResponse {
	return table.TableResponse{
		ID:          t.ID,
		Name:        t.Name,
		RoundsCount: t.RoundsCount,
		CreatedAt:   t.CreatedAt,
	}
}

func ToTablesResponse(tables []model.Table) table.TablesResponse {
	result := make([]table.TableResponse, len(tables))
	for i := range tables {
		result[i] = ToTableResponse(&tables[i])
	}
	return table.TablesResponse{Tables: result}
}
