package grid

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/extrame/xls"
	"github.com/richardlehane/mscfb"
)

const xlsCharset = "utf-8"

type xlsReader struct {
	wb *xls.WorkBook
}

func openXLS(data []byte) (r sheetReader, err error) {
	if err := checkWorkbookStream(data); err != nil {
		return nil, corrupt("xls", err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			r, err = nil, corrupt("xls", fmt.Errorf("%v", rec))
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data), xlsCharset)
	if err != nil {
		return nil, corrupt("xls", err)
	}
	if wb == nil {
		return nil, corrupt("xls", errors.New("no workbook stream"))
	}
	return &xlsReader{wb: wb}, nil
}

// checkWorkbookStream в контейнере OLE2 должен быть поток Workbook (BIFF8) или Book (BIFF5)
func checkWorkbookStream(data []byte) error {
	doc, err := mscfb.New(bytes.NewReader(data))
	if err != nil {
		return err
	}
	for {
		entry, err := doc.Next()
		if err == io.EOF {
			return errors.New("no workbook stream")
		}
		if err != nil {
			return err
		}
		if entry.Name == "Workbook" || entry.Name == "Book" {
			return nil
		}
	}
}

func (r *xlsReader) format() string {
	return "xls"
}

func (r *xlsReader) names() []string {
	names := make([]string, 0, r.wb.NumSheets())
	for i := 0; i < r.wb.NumSheets(); i++ {
		if sh := r.wb.GetSheet(i); sh != nil {
			names = append(names, sh.Name)
		}
	}
	return names
}

func (r *xlsReader) rows(name string) ([][]string, bool) {
	for i := 0; i < r.wb.NumSheets(); i++ {
		sh := r.wb.GetSheet(i)
		if sh == nil || sh.Name != name {
			continue
		}

		// MaxRow это индекс последней строки, а не их количество
		rows := make([][]string, int(sh.MaxRow)+1)
		for y := range rows {
			row := sheetRow(sh, y)
			if row == nil {
				continue
			}
			// LastCol указывает на столбец после последнего
			rows[y] = make([]string, row.LastCol())
			for x := row.FirstCol(); x < row.LastCol(); x++ {
				rows[y][x] = row.Col(x)
			}
		}
		return rows, true
	}
	return nil, false
}

// sheetRow строка листа или nil. WorkSheet.Row паникует, если строки нет в файле.
func sheetRow(sh *xls.WorkSheet, y int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sh.Row(y)
}
