package model

// Cell Одна ячейка "большой дороги".
// Строится только из исходов P/B - Tie своей ячейки не создает,
// а увеличивает TieCount у последней построенной ячейки
type Cell struct {
	Outcome    Outcome
	TieCount   int
	PlayerPair bool
	BankerPair bool
	BankerSix  bool
}

// Column Колонка ячеек одного исхода, длина от 1 до maxRows
type Column []Cell

// Grid Колонки слева направо в хронологическом порядке
type Grid []Column

// Board Представление дороги для выдачи клиенту:
// колонки после обрезки до последних K плюс общие размеры
type Board struct {
	Columns      Grid
	TotalColumns int
	RoundCount   int
}
