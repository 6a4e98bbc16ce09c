package grid

import (
	"github.com/tealeg/xlsx/v3"
)

type xlsxReader struct {
	f *xlsx.File
}

func openXLSX(data []byte) (sheetReader, error) {
	f, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, corrupt("xlsx", err)
	}
	return &xlsxReader{f: f}, nil
}

func (r *xlsxReader) format() string {
	return "xlsx"
}

func (r *xlsxReader) names() []string {
	names := make([]string, 0, len(r.f.Sheets))
	for _, sh := range r.f.Sheets {
		names = append(names, sh.Name)
	}
	return names
}

func (r *xlsxReader) rows(name string) ([][]string, bool) {
	sh, ok := r.f.Sheet[name]
	if !ok {
		return nil, false
	}

	rows := make([][]string, sh.MaxRow)
	for y := range rows {
		rows[y] = make([]string, sh.MaxCol)
		for x := range rows[y] {
			cell, err := sh.Cell(y, x)
			if err != nil {
				continue
			}
			rows[y][x] = cell.String()
		}
	}
	return rows, true
}
