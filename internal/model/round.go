package model

import "fmt"

// Outcome Исход одной партии: Player, Banker или Tie
type Outcome string

const (
	OutcomePlayer Outcome = "P"
	OutcomeBanker Outcome = "B"
	OutcomeTie    Outcome = "T"
)

// ParseOutcome - валидация исхода на границе API.
// Внутрь билдера дороги некорректный исход попасть не должен
func ParseOutcome(s string) (Outcome, error) {
	switch Outcome(s) {
	case OutcomePlayer, OutcomeBanker, OutcomeTie:
		return Outcome(s), nil
	default:
		return "", fmt.Errorf("unknown outcome %q", s)
	}
}

// RoundResult Результат одной сыгранной партии.
// Флаги пар и "шестерки банкира" информационные и не зависят от исхода
// (у партии с исходом Tie тоже могут быть пары)
type RoundResult struct {
	Outcome    Outcome
	PlayerPair bool
	BankerPair bool
	BankerSix  bool
}
