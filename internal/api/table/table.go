package table

import (
	dto "baccarat_backend/internal/api/dto/table"
	"baccarat_backend/internal/converter"
	"baccarat_backend/internal/service"
	"baccarat_backend/pkg/req"
	"baccarat_backend/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.TableService
}

type Handler struct {
	serv service.TableService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Create Создать стол
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CreateTableRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.serv.CreateTable(r.Context(), payload.Name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToTableResponse(t))
}

// List Столы пользователя
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	tables, err := h.serv.ListTables(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTablesResponse(tables))
}
