package vsu

import (
	"github.com/uselessgoddess/suns/grid"
	"github.com/uselessgoddess/suns/model"
)

// Разметка таблицы (после ExtractGrid):
//
//	день  = 28 строк: 8 пар по 3 строки и 4 строки подвала
//	пара  = 3 строки: название, преподаватель, аудитория
//	столбцы идут парами, по столбцу на подгруппу
//
// Если сайт поменяет разметку, меняются константы и LayoutVersion.

// LayoutVersion версия разметки, под которую написан Decode
const LayoutVersion = 1

// Длина одного дня в строках
const dayLength = 28

// Длина одной пары в строках
const classLength = 3

// Строк с парами в дне (24), остальные 4 пропускаются
const dayDataLength = model.SlotsPerDay * classLength

// Подгрупп на одну специальность, столько же столбцов
const subgroups = 2

// Строк на всю неделю (140)
const weekLength = model.DaysPerWeek * dayLength

// Строки внутри пары
const (
	nameRow = iota
	tutorRow
	placeRow
)

// Подвал не может съесть данные дня
var _ = [dayLength - dayDataLength]struct{}{}

// Decode разобрать таблицу в расписание на неделю.
// subgroupRow выбирает пару столбцов специальности: subgroupRow*2 и subgroupRow*2+1.
// Частичного результата не бывает: либо все 5x8, либо ошибка.
func Decode(g grid.CellGrid, subgroupRow uint) (model.Timetable, error) {
	var timetable model.Timetable

	if g.Rows() < weekLength {
		return timetable, &InsufficientDataError{What: "rows", Have: g.Rows(), Need: weekLength}
	}
	column := int(subgroupRow) * subgroups
	if subgroupRow >= uint(g.Cols()) || g.Cols() < column+subgroups {
		return timetable, &InsufficientDataError{What: "columns", Have: g.Cols(), Need: column + subgroups}
	}

	for day := range timetable {
		for slot := range timetable[day] {
			row := day*dayLength + slot*classLength
			first := session(g, row, column)
			second := session(g, row, column+1)
			timetable[day][slot] = model.NewSlot(first, second)
		}
	}

	return timetable, nil
}

// session занятие из блока пары, начинающегося со строки row.
// Границы проверены в Decode.
func session(g grid.CellGrid, row, column int) model.Session {
	name, _ := g.Cell(row+nameRow, column)
	tutor, _ := g.Cell(row+tutorRow, column)
	place, _ := g.Cell(row+placeRow, column)
	return model.Session{Name: name, Tutor: tutor, Place: place}
}
