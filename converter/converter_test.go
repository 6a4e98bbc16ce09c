package converter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/uselessgoddess/suns/model"
	"github.com/xuri/excelize/v2"
)

var (
	math    = model.Session{Name: "Math", Tutor: "Smith", Place: "101"}
	physics = model.Session{Name: "Physics", Tutor: "Jones", Place: "202"}
)

func testSchedule() model.Schedule {
	var t model.Timetable
	t[0][0] = model.NewSlot(math, model.Session{})
	t[2][3] = model.NewSlot(math, physics)
	t[4][7] = model.NewSlot(model.Session{Name: "PE"}, model.Session{})
	return model.Schedule{Institution: "ВГУ", Department: "isit", Year: 1, Timetable: t}
}

func TestConverterFactory(t *testing.T) {
	for _, name := range Names {
		if _, err := Converter(name); err != nil {
			t.Errorf("Converter(%q) failed: %v", name, err)
		}
	}
	if _, err := Converter("csv"); err == nil {
		t.Errorf("expected unknown converter to fail")
	}
}

func TestJSONConverter(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		out := filepath.Join(t.TempDir(), "data.out")
		if err := (JSONConverter{Pretty: pretty}).Write(testSchedule(), out); err != nil {
			t.Fatalf("Write failed: %v", err)
		}

		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatalf("failed to read output: %v", err)
		}
		if pretty != strings.Contains(string(data), "\n  ") {
			t.Errorf("pretty=%v but output indentation does not match:\n%s", pretty, data)
		}

		var got model.Timetable
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("output is not a timetable: %v", err)
		}
		if !reflect.DeepEqual(got, testSchedule().Timetable) {
			t.Errorf("written timetable does not match.\nGot: %+v", got)
		}
	}
}

func TestConvertersRequireOutput(t *testing.T) {
	for _, c := range []IConverter{JSONConverter{}, XLSXConverter{}, PGSQLConverter{}} {
		if err := c.Write(testSchedule(), ""); err == nil {
			t.Errorf("%T: expected error for empty output", c)
		}
	}
}

func TestXLSXConverter(t *testing.T) {
	out := filepath.Join(t.TempDir(), "timetable.xlsx")
	if err := (XLSXConverter{}).Write(testSchedule(), out); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatalf("failed to open written workbook: %v", err)
	}
	defer f.Close()

	tests := []struct {
		cell     string
		expected string
	}{
		{"A1", "ВГУ isit, курс 2"},
		{"B2", "Понедельник"},
		{"F2", "Пятница"},
		{"A3", "1"},
		{"A10", "8"},
		{"B3", "Math\nSmith\n101"},
		{"D6", "Math\nSmith\n101\n//\nPhysics\nJones\n202"},
		{"F10", "PE"},
		{"C3", ""},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue(xlsxSheet, tt.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", tt.cell, err)
		}
		if got != tt.expected {
			t.Errorf("%s = %q, expected %q", tt.cell, got, tt.expected)
		}
	}
}

func TestSessionRows(t *testing.T) {
	timetable := testSchedule().Timetable
	// есть только вторая подгруппа: после свёртки одиночное занятие
	timetable[1][5] = model.NewSlot(model.Session{}, physics)
	rows := sessionRows(7, timetable)

	subgroup := func(i int) *int { return &i }
	expected := []sessionRow{
		{TimetableID: 7, Day: 0, Slot: 0, Subgroup: nil, Name: "Math", Tutor: "Smith", Place: "101"},
		{TimetableID: 7, Day: 1, Slot: 5, Subgroup: nil, Name: "Physics", Tutor: "Jones", Place: "202"},
		{TimetableID: 7, Day: 2, Slot: 3, Subgroup: subgroup(0), Name: "Math", Tutor: "Smith", Place: "101"},
		{TimetableID: 7, Day: 2, Slot: 3, Subgroup: subgroup(1), Name: "Physics", Tutor: "Jones", Place: "202"},
		{TimetableID: 7, Day: 4, Slot: 7, Subgroup: nil, Name: "PE"},
	}
	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("sessionRows() = %+v\nexpected %+v", rows, expected)
	}
}
