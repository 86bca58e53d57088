package road_state_repo

import (
	"baccarat_backend/internal/model"
	"baccarat_backend/internal/repository"
	"sync"
)

// Реализация репозитория счетчиков по столам в памяти процесса.
// Состояние - это кэш над журналом партий: после рестарта сервиса
// оно поднимается заново через Prime из полной истории
type StateRepo struct {
	mtx    sync.RWMutex
	states map[int]model.TableStats
}

// NewRoadStatsRepository Конструктор репозитория с пустым состоянием
func NewRoadStatsRepository() repository.RoadStatsRepository {
	return &StateRepo{
		states: make(map[int]model.TableStats),
	}
}

// TableStats Получение счетчиков стола.
// Возвращает копию структуры и false, если стол еще не инициализирован
func (r *StateRepo) TableStats(tableID int) (model.TableStats, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	state, ok := r.states[tableID]
	return state, ok
}

// Prime Инициализация счетчиков стола по полной истории партий
func (r *StateRepo) Prime(tableID int, rounds []model.RoundResult) {
	var state model.TableStats
	for _, round := range rounds {
		state = applied(state, round, 1)
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.states[tableID] = state
}

// ApplyRound Обновление счетчиков после добавления партии
func (r *StateRepo) ApplyRound(tableID int, round model.RoundResult) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.states[tableID] = applied(r.states[tableID], round, 1)
}

// RevertRound Откат счетчиков после отмены последней партии
func (r *StateRepo) RevertRound(tableID int, round model.RoundResult) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.states[tableID] = applied(r.states[tableID], round, -1)
}

// Reset Обнуление счетчиков стола
func (r *StateRepo) Reset(tableID int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.states[tableID] = model.TableStats{}
}

func applied(state model.TableStats, round model.RoundResult, sign int) model.TableStats {
	state.Rounds += sign
	switch round.Outcome {
	case model.OutcomePlayer:
		state.PlayerWins += sign
	case model.OutcomeBanker:
		state.BankerWins += sign
	case model.OutcomeTie:
		state.Ties += sign
	}
	if round.PlayerPair {
		state.PlayerPairs += sign
	}
	if round.BankerPair {
		state.BankerPairs += sign
	}
	if round.BankerSix {
		state.BankerSixes += sign
	}
	return state
}
