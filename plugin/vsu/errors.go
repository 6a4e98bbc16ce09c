package vsu

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	// ErrResolution вёрстка страницы расписания не та, что ожидается
	ErrResolution = errors.New("schedule page markup changed")
	// ErrUnknownYear курса с таким индексом на странице нет
	ErrUnknownYear = errors.New("unknown year")
	// ErrEmptyGrid в таблице меньше строк, чем нужно на неделю
	ErrEmptyGrid = errors.New("spreadsheet grid is too small")
	// ErrInsufficientData таблицы не хватает на полную неделю
	ErrInsufficientData = errors.New("insufficient data")
	// ErrUnsupportedLayout специальность привязана к другой версии разметки
	ErrUnsupportedLayout = errors.New("unsupported layout version")
	// ErrFetch сетевая ошибка, запрос можно повторить
	ErrFetch = errors.New("fetch failed")
)

type ResolutionError struct {
	Index  int // номер ссылки, -1 если страница не разобралась целиком
	Reason string
}

func (e *ResolutionError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %s", ErrResolution, e.Reason)
	}
	return fmt.Sprintf("%v: link %d: %s", ErrResolution, e.Index, e.Reason)
}

func (e *ResolutionError) Unwrap() error {
	return ErrResolution
}

type UnknownYearError struct {
	Year      int
	Available int
}

func (e *UnknownYearError) Error() string {
	return fmt.Sprintf("%v: %d, page lists %d", ErrUnknownYear, e.Year, e.Available)
}

func (e *UnknownYearError) Unwrap() error {
	return ErrUnknownYear
}

type InsufficientDataError struct {
	What string // "rows" или "columns"
	Have int
	Need int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%v: grid has %d %s, need %d", ErrInsufficientData, e.Have, e.What, e.Need)
}

func (e *InsufficientDataError) Unwrap() error {
	return ErrInsufficientData
}

type FetchError struct {
	URL        string
	StatusCode int // 0 если ответа не было
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%v: %s: status %d: %v", ErrFetch, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", ErrFetch, e.URL, e.Err)
}

func (e *FetchError) Unwrap() []error {
	return []error{ErrFetch, e.Err}
}

// Timeout запрос не уложился в отведённое время
func (e *FetchError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// Temporary сетевые ошибки всегда считаются временными
func (e *FetchError) Temporary() bool {
	return true
}
