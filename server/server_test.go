package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/uselessgoddess/suns/config"
	"github.com/uselessgoddess/suns/grid"
	"github.com/uselessgoddess/suns/model"
	"github.com/uselessgoddess/suns/plugin/vsu"
)

type stubPlugin struct {
	timetable model.Timetable
	err       error

	department string
	year       int
}

func (p *stubPlugin) GetInstitution() string { return "ВГУ" }

func (p *stubPlugin) Departments() []string { return []string{"isit", "math"} }

func (p *stubPlugin) GetTimetable(_ context.Context, department string, year int) (model.Timetable, error) {
	p.department, p.year = department, year
	return p.timetable, p.err
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, NewServer(&stubPlugin{}).Handler(), "/health")
	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Errorf("unexpected health response %d %q", rec.Code, rec.Body.String())
	}
}

func TestSchedule(t *testing.T) {
	stub := &stubPlugin{}
	stub.timetable[1][2] = model.NewSlot(model.Session{Name: "Math", Tutor: "Smith", Place: "101"}, model.Session{})

	rec := get(t, NewServer(stub).Handler(), "/api/schedule?spec=isit&year=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if stub.department != "isit" || stub.year != 2 {
		t.Errorf("plugin called with %q/%d", stub.department, stub.year)
	}

	var body [][]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not a nested array: %v", err)
	}
	if len(body) != model.DaysPerWeek || len(body[1]) != model.SlotsPerDay {
		t.Fatalf("unexpected shape %dx%d", len(body), len(body[1]))
	}
	if got := string(body[1][2]); got != `[{"name":"Math","tutor":"Smith","place":"101"}]` {
		t.Errorf("slot = %s", got)
	}
	if got := string(body[0][0]); got != "null" {
		t.Errorf("absent slot = %s", got)
	}
}

func TestScheduleBadQuery(t *testing.T) {
	h := NewServer(&stubPlugin{}).Handler()
	for _, target := range []string{
		"/api/schedule?year=0",
		"/api/schedule?spec=isit",
		"/api/schedule?spec=isit&year=first",
		"/api/schedule?spec=isit&year=-1",
	} {
		rec := get(t, h, target)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/schedule?spec=isit&year=0", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST: expected 405, got %d", rec.Code)
	}
}

func TestScheduleErrors(t *testing.T) {
	timeout := &vsu.FetchError{URL: "https://vsu.by", Err: context.DeadlineExceeded}
	tests := []struct {
		err    error
		status int
		kind   string
	}{
		{&config.UnknownDepartmentError{Code: "bio", Known: []string{"isit"}}, http.StatusBadRequest, kindBadRequest},
		{&vsu.UnknownYearError{Year: 4, Available: 2}, http.StatusBadRequest, kindBadRequest},
		{fmt.Errorf("page: %w", &vsu.ResolutionError{Index: 1, Reason: "anchor has no href"}), http.StatusBadGateway, kindUpstream},
		{fmt.Errorf("file: %w", grid.ErrMissingWorksheet), http.StatusBadGateway, kindUpstream},
		{fmt.Errorf("file: %w", grid.ErrCorruptSource), http.StatusBadGateway, kindUpstream},
		{fmt.Errorf("file: %w", vsu.ErrEmptyGrid), http.StatusBadGateway, kindUpstream},
		{&vsu.InsufficientDataError{What: "rows", Have: 10, Need: 140}, http.StatusBadGateway, kindUpstream},
		{&vsu.FetchError{URL: "https://vsu.by", StatusCode: 503, Err: errors.New("Service Unavailable")}, http.StatusBadGateway, kindNetwork},
		{timeout, http.StatusGatewayTimeout, kindTimeout},
		{errors.New("boom"), http.StatusInternalServerError, kindInternal},
	}

	for _, tt := range tests {
		rec := get(t, NewServer(&stubPlugin{err: tt.err}).Handler(), "/api/schedule?spec=isit&year=0")
		if rec.Code != tt.status {
			t.Errorf("%v: expected status %d, got %d", tt.err, tt.status, rec.Code)
		}

		var body errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("error response is not JSON: %v", err)
		}
		if body.Kind != tt.kind || body.Error != tt.err.Error() {
			t.Errorf("%v: unexpected body %+v", tt.err, body)
		}
	}
}

func TestDepartments(t *testing.T) {
	rec := get(t, NewServer(&stubPlugin{}).Handler(), "/api/departments")
	var codes []string
	if err := json.Unmarshal(rec.Body.Bytes(), &codes); err != nil {
		t.Fatalf("unexpected response: %v", err)
	}
	if len(codes) != 2 || codes[0] != "isit" {
		t.Errorf("codes = %v", codes)
	}
}
