// Package gridtest собирает книги xlsx для тестов и хранит образец .xls.
package gridtest

import (
	"bytes"
	_ "embed"
	"testing"

	"github.com/tealeg/xlsx/v3"
)

//go:embed testdata/schedule.xls
var scheduleXLS []byte

// ScheduleXLS книга BIFF8 в том виде, в каком её выкладывает сайт.
// Листы "Worksheet" и "Титул". На "Worksheet" строки 0-154 и столбцы 0-6:
// шапка в строках 0 и 1 (строки 2-14 в файле отсутствуют), "Пн" в столбце 0
// строк 15-154, первая пара: Math/Smith/101 (ст. 3), Physics/Jones/202 (ст. 4),
// Химия/Петров П.П./305 (ст. 5); последняя пара пятницы только в ст. 4:
// Физкультура/""/спортзал; "last" в (154, 6).
func ScheduleXLS() []byte {
	return append([]byte(nil), scheduleXLS...)
}

// XLSX книга с одним листом sheet, клетки построчно
func XLSX(t testing.TB, sheet string, rows [][]string) []byte {
	t.Helper()

	f := xlsx.NewFile()
	sh, err := f.AddSheet(sheet)
	if err != nil {
		t.Fatalf("failed to add sheet %q: %v", sheet, err)
	}
	for _, cells := range rows {
		row := sh.AddRow()
		for _, v := range cells {
			row.AddCell().SetString(v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("failed to write xlsx: %v", err)
	}
	return buf.Bytes()
}

// Rows пустая таблица rows x cols для заполнения
func Rows(rows, cols int) [][]string {
	ret := make([][]string, rows)
	for i := range ret {
		ret[i] = make([]string, cols)
	}
	return ret
}
