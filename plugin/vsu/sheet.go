package vsu

import (
	"fmt"

	"github.com/uselessgoddess/suns/grid"
)

// Лист с расписанием в книге
const sheetName = "Worksheet"

// Расписание начинается с 16 строки (15 с нуля), выше шапка таблицы
const startRow = 15

// И с 4 столбца: слева день недели, номер и время пары
const startColumn = 3

// ExtractGrid вырезать из книги прямоугольник с парами.
// Конец диапазона берётся на строку и столбец дальше последней клетки листа,
// лишние клетки получаются пустыми.
func ExtractGrid(data []byte) (grid.CellGrid, error) {
	wb, err := grid.Open(data)
	if err != nil {
		return grid.CellGrid{}, err
	}

	sh, err := wb.Sheet(sheetName)
	if err != nil {
		return grid.CellGrid{}, err
	}

	g := sh.Sub(startRow, startColumn, sh.Rows()+1, sh.Cols()+1)
	if g.Rows() < weekLength {
		return grid.CellGrid{}, fmt.Errorf("%w: %d rows after row %d, need %d", ErrEmptyGrid, g.Rows(), startRow, weekLength)
	}
	return g, nil
}
