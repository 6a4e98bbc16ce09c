package converter

import (
	"fmt"
	"strings"

	"github.com/uselessgoddess/suns/model"
	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Расписание"

var dayNames = [model.DaysPerWeek]string{"Понедельник", "Вторник", "Среда", "Четверг", "Пятница"}

// Разделитель подгрупп в одной клетке, как на сайтах с расписанием
const subgroupSeparator = "\n//\n"

// XLSXConverter таблица: строки - пары, столбцы - дни
type XLSXConverter struct{}

func (x XLSXConverter) Write(schedule model.Schedule, out string) error {
	if out == "" {
		return fmt.Errorf("-output can not be empty")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return err
	}

	title := fmt.Sprintf("%s %s, курс %d", schedule.Institution, schedule.Department, schedule.Year+1)
	if err := f.SetCellValue(xlsxSheet, "A1", title); err != nil {
		return err
	}
	if err := f.SetCellValue(xlsxSheet, "A2", "Пара"); err != nil {
		return err
	}
	for day, name := range dayNames {
		if err := setCell(f, day+2, 2, name); err != nil {
			return err
		}
	}

	for slot := 0; slot < model.SlotsPerDay; slot++ {
		if err := setCell(f, 1, slot+3, slot+1); err != nil {
			return err
		}
		for day := range schedule.Timetable {
			if err := setCell(f, day+2, slot+3, slotText(schedule.Timetable[day][slot])); err != nil {
				return err
			}
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(model.DaysPerWeek+1, model.SlotsPerDay+2)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(xlsxSheet, "B3", last, style); err != nil {
		return err
	}
	if err := f.SetColWidth(xlsxSheet, "B", "F", 30); err != nil {
		return err
	}

	return f.SaveAs(out)
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(xlsxSheet, cell, value)
}

func slotText(slot model.Slot) string {
	parts := make([]string, 0, len(slot))
	for _, s := range slot {
		var lines []string
		for _, v := range []string{s.Name, s.Tutor, s.Place} {
			if v != "" {
				lines = append(lines, v)
			}
		}
		parts = append(parts, strings.Join(lines, "\n"))
	}
	return strings.Join(parts, subgroupSeparator)
}
