package road

import (
	"baccarat_backend/internal/model"
)

const (
	// Максимальная высота колонки "большой дороги"
	maxRows = 6
)

// BuildBigRoad строит "большую дорогу" по полной истории партий.
// Один проход слева направо: одинаковые исходы складываются в колонку,
// смена исхода открывает новую колонку, Tie не создает ячейку, а
// увеличивает счетчик на последней построенной ячейке.
// Функция чистая: состояния между вызовами нет, на каждое изменение
// истории дорога пересчитывается целиком
func BuildBigRoad(history []model.RoundResult) model.Grid {
	var (
		columns model.Grid
		current model.Column
		// Исход последней не-Tie партии. Пустое значение - не было ни одной
		last model.Outcome
	)

	for _, round := range history {
		// Tie прикрепляется к последней построенной ячейке:
		// к хвосту текущей колонки, иначе к хвосту последней закрытой.
		// Если ячеек еще нет вообще (история началась с Tie) - отбрасываем
		if round.Outcome == model.OutcomeTie {
			if len(current) > 0 {
				current[len(current)-1].TieCount++
			} else if len(columns) > 0 {
				lastCol := columns[len(columns)-1]
				lastCol[len(lastCol)-1].TieCount++
			}
			continue
		}

		cell := model.Cell{
			Outcome:    round.Outcome,
			PlayerPair: round.PlayerPair,
			BankerPair: round.BankerPair,
			BankerSix:  round.BankerSix,
		}

		switch {
		case round.Outcome == last && len(current) < maxRows:
			// Серия продолжается, в колонке есть место
			current = append(current, cell)
		case round.Outcome == last:
			// Переполнение: колонка заполнена, серия того же исхода
			// переливается вправо в новую колонку
			columns = append(columns, current)
			current = model.Column{cell}
		default:
			// Смена исхода (или первая не-Tie партия)
			if len(current) > 0 {
				columns = append(columns, current)
			}
			current = model.Column{cell}
			last = round.Outcome
		}
	}

	if len(current) > 0 {
		columns = append(columns, current)
	}

	return columns
}

// LastColumns возвращает последние k колонок дороги для отображения.
// Сами колонки не меняются и не переупорядочиваются - отрезается только
// префикс. При k >= числа колонок дорога возвращается как есть.
// Корректность k (k > 0) проверяется на границе API, не здесь
func LastColumns(grid model.Grid, k int) model.Grid {
	if k >= len(grid) {
		return grid
	}
	return grid[len(grid)-k:]
}
