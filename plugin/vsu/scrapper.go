package vsu

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gocolly/colly"
)

// contextTransport привязывает запросы colly к контексту: colly сам контекст не принимает
type contextTransport struct {
	ctx  context.Context
	base http.RoundTripper
}

func (t *contextTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.base.RoundTrip(req.WithContext(t.ctx))
}

// fetchPage скачать страницу расписания факультета
func (p *Plugin) fetchPage(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	c := colly.NewCollector()
	c.WithTransport(&contextTransport{ctx: ctx, base: p.transport()})

	var (
		body   []byte
		status int
	)
	c.OnResponse(func(r *colly.Response) {
		body = r.Body
		status = r.StatusCode
	})
	c.OnError(func(r *colly.Response, _ error) {
		if r != nil {
			status = r.StatusCode
		}
	})

	if err := c.Visit(url); err != nil {
		return "", &FetchError{URL: url, StatusCode: status, Err: err}
	}
	return string(body), nil
}

// fetchFile скачать таблицу
func (p *Plugin) fetchFile(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode, Err: err}
	}
	return b, nil
}

func (p *Plugin) transport() http.RoundTripper {
	if p.client.Transport != nil {
		return p.client.Transport
	}
	return http.DefaultTransport
}
