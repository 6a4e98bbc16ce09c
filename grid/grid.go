// Package grid читает листы xls/xlsx в прямоугольную таблицу строк.
package grid

// CellGrid неизменяемая прямоугольная таблица уже отрендеренных клеток.
// Пустая клетка - пустая строка.
type CellGrid struct {
	cells [][]string
	cols  int
}

// New собрать таблицу из строк. Короткие строки добиваются пустыми клетками,
// rows копируется.
func New(rows [][]string) CellGrid {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, cols)
		copy(cells[i], row)
	}
	return CellGrid{cells: cells, cols: cols}
}

func (g CellGrid) Rows() int {
	return len(g.cells)
}

func (g CellGrid) Cols() int {
	return g.cols
}

// Cell клетка по индексам с нуля, ok=false если она за пределами таблицы
func (g CellGrid) Cell(row, col int) (string, bool) {
	if row < 0 || col < 0 || row >= len(g.cells) || col >= g.cols {
		return "", false
	}
	return g.cells[row][col], true
}

// Sub прямоугольник [top, bottom) x [left, right).
// Клетки за пределами исходной таблицы становятся пустыми.
func (g CellGrid) Sub(top, left, bottom, right int) CellGrid {
	if bottom < top {
		bottom = top
	}
	if right < left {
		right = left
	}

	rows := make([][]string, 0, bottom-top)
	for r := top; r < bottom; r++ {
		row := make([]string, right-left)
		for c := left; c < right; c++ {
			row[c-left], _ = g.Cell(r, c)
		}
		rows = append(rows, row)
	}
	return CellGrid{cells: rows, cols: right - left}
}
