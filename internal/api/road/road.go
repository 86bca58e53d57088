package road

import (
	dto "baccarat_backend/internal/api/dto/road"
	"baccarat_backend/internal/converter"
	"baccarat_backend/internal/service"
	roadServ "baccarat_backend/internal/service/road"
	"baccarat_backend/pkg/req"
	"baccarat_backend/pkg/resp"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.RoadService
}

type Handler struct {
	serv service.RoadService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// AddRound Записать результат партии. Возвращает свежую дорогу
func (h *Handler) AddRound(w http.ResponseWriter, r *http.Request) {
	tableID, err := tableIDFromURL(r)
	if err != nil {
		http.Error(w, "invalid table id", http.StatusBadRequest)
		return
	}

	payload, err := req.Decode[dto.AddRoundRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	round, err := converter.ToRoundResult(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	board, err := h.serv.AddRound(r.Context(), tableID, round)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBoardResponse(board))
}

// UndoRound Отменить последнюю партию. Возвращает свежую дорогу
func (h *Handler) UndoRound(w http.ResponseWriter, r *http.Request) {
	tableID, err := tableIDFromURL(r)
	if err != nil {
		http.Error(w, "invalid table id", http.StatusBadRequest)
		return
	}

	board, err := h.serv.UndoRound(r.Context(), tableID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBoardResponse(board))
}

// ResetRounds Очистить историю стола
func (h *Handler) ResetRounds(w http.ResponseWriter, r *http.Request) {
	tableID, err := tableIDFromURL(r)
	if err != nil {
		http.Error(w, "invalid table id", http.StatusBadRequest)
		return
	}

	if err := h.serv.ResetRounds(r.Context(), tableID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Board Дорога стола. Параметр ?cols= ограничивает число колонок,
// ноль и отрицательные значения отклоняются на этой границе
func (h *Handler) Board(w http.ResponseWriter, r *http.Request) {
	tableID, err := tableIDFromURL(r)
	if err != nil {
		http.Error(w, "invalid table id", http.StatusBadRequest)
		return
	}

	cols := 0
	if raw := r.URL.Query().Get("cols"); raw != "" {
		cols, err = strconv.Atoi(raw)
		if err != nil || cols <= 0 {
			http.Error(w, "cols must be a positive integer", http.StatusBadRequest)
			return
		}
	}

	board, err := h.serv.Board(r.Context(), tableID, cols)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBoardResponse(board))
}

// Rounds История стола в порядке розыгрыша
func (h *Handler) Rounds(w http.ResponseWriter, r *http.Request) {
	tableID, err := tableIDFromURL(r)
	if err != nil {
		http.Error(w, "invalid table id", http.StatusBadRequest)
		return
	}

	rounds, err := h.serv.Rounds(r.Context(), tableID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundsResponse(rounds))
}

// Stats Счетчики стола
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	tableID, err := tableIDFromURL(r)
	if err != nil {
		http.Error(w, "invalid table id", http.StatusBadRequest)
		return
	}

	stats, err := h.serv.Stats(r.Context(), tableID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(stats))
}

func tableIDFromURL(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "tableID"))
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, roadServ.ErrTableNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, roadServ.ErrTableNotOwned):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, roadServ.ErrEmptyHistory):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
