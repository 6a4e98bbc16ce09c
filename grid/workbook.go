package grid

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/uselessgoddess/suns/utils"
)

// Сигнатура OLE2 (старый .xls)
var oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// Сигнатура zip (.xlsx)
var zipMagic = []byte("PK\x03\x04")

// sheetReader один из форматов книги
type sheetReader interface {
	format() string
	// names имена листов в порядке книги
	names() []string
	// rows сырые строки листа, ok=false если листа нет
	rows(name string) (rows [][]string, ok bool)
}

// Workbook открытая книга
type Workbook struct {
	r sheetReader
}

// Open определить формат по сигнатуре и открыть книгу
func Open(data []byte) (wb *Workbook, err error) {
	var r sheetReader
	switch {
	case bytes.HasPrefix(data, oleMagic):
		r, err = openXLS(data)
	case bytes.HasPrefix(data, zipMagic):
		r, err = openXLSX(data)
	default:
		return nil, corrupt("", errors.New("unknown file signature"))
	}
	if err != nil {
		return nil, err
	}
	return &Workbook{r: r}, nil
}

func (wb *Workbook) Format() string {
	return wb.r.format()
}

func (wb *Workbook) SheetNames() []string {
	return wb.r.names()
}

// Sheet весь лист целиком. Текст клеток чистится от лишних пробелов.
func (wb *Workbook) Sheet(name string) (g CellGrid, err error) {
	// Библиотеки чтения паникуют на битых файлах
	defer func() {
		if r := recover(); r != nil {
			err = &SourceError{Format: wb.Format(), Sheet: name, Err: fmt.Errorf("%w: %v", ErrCorruptSource, r)}
		}
	}()

	rows, ok := wb.r.rows(name)
	if !ok {
		names := wb.SheetNames()
		sort.Strings(names)
		return CellGrid{}, &SourceError{Format: wb.Format(), Sheet: name, Err: fmt.Errorf("%w (have %q)", ErrMissingWorksheet, names)}
	}

	for _, row := range rows {
		for i := range row {
			row[i] = utils.CleanCell(row[i])
		}
	}
	return New(rows), nil
}
