package server

import (
	"errors"
	"net/http"

	"github.com/uselessgoddess/suns/config"
	"github.com/uselessgoddess/suns/grid"
	"github.com/uselessgoddess/suns/plugin/vsu"
)

// Вид ошибки для клиента: кто виноват
const (
	kindBadRequest = "bad_request" // неверный запрос
	kindUpstream   = "upstream"    // сайт поменял вёрстку или таблицу
	kindNetwork    = "network"     // сайт недоступен, можно повторить
	kindTimeout    = "timeout"     // сайт не ответил вовремя, можно повторить
	kindInternal   = "internal"
)

var upstreamErrors = []error{
	vsu.ErrResolution,
	vsu.ErrEmptyGrid,
	vsu.ErrInsufficientData,
	vsu.ErrUnsupportedLayout,
	grid.ErrCorruptSource,
	grid.ErrMissingWorksheet,
}

func classify(err error) (status int, kind string) {
	if errors.Is(err, config.ErrUnknownDepartment) || errors.Is(err, vsu.ErrUnknownYear) {
		return http.StatusBadRequest, kindBadRequest
	}

	var fetchErr *vsu.FetchError
	if errors.As(err, &fetchErr) {
		if fetchErr.Timeout() {
			return http.StatusGatewayTimeout, kindTimeout
		}
		return http.StatusBadGateway, kindNetwork
	}

	for _, target := range upstreamErrors {
		if errors.Is(err, target) {
			return http.StatusBadGateway, kindUpstream
		}
	}
	return http.StatusInternalServerError, kindInternal
}
