package vsu

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/uselessgoddess/suns/config"
	appLog "github.com/uselessgoddess/suns/log"
	"github.com/uselessgoddess/suns/model"
)

const Institution = "ВГУ"

// Plugin расписание Витебского государственного университета.
// Состояния между запросами нет, можно звать из нескольких горутин.
type Plugin struct {
	departments config.Departments
	site        *url.URL
	page        string
	timeout     time.Duration
	client      *http.Client
}

func New(cfg *config.Config, departments config.Departments) (*Plugin, error) {
	site, err := url.Parse(cfg.Site)
	if err != nil {
		return nil, fmt.Errorf("bad site url %q: %w", cfg.Site, err)
	}
	if site.Scheme == "" || site.Host == "" {
		return nil, fmt.Errorf("site url %q must be absolute", cfg.Site)
	}

	return &Plugin{
		departments: departments,
		site:        site,
		page:        cfg.Page,
		timeout:     cfg.Timeout,
		client:      &http.Client{},
	}, nil
}

func (p *Plugin) GetInstitution() string {
	return Institution
}

func (p *Plugin) Departments() []string {
	return p.departments.Codes()
}

// GetTimetable страница факультета -> ссылка на таблицу курса -> таблица -> расписание
func (p *Plugin) GetTimetable(ctx context.Context, department string, year int) (model.Timetable, error) {
	spec, err := p.departments.Lookup(department)
	if err != nil {
		return model.Timetable{}, err
	}
	if spec.Layout != 0 && spec.Layout != LayoutVersion {
		return model.Timetable{}, fmt.Errorf("%w: %s expects layout %d, parser knows %d", ErrUnsupportedLayout, department, spec.Layout, LayoutVersion)
	}

	pageURL := p.pageURL(spec.Link)
	appLog.Debug("fetch schedule page", "spec", department, "url", pageURL)
	page, err := p.fetchPage(ctx, pageURL)
	if err != nil {
		return model.Timetable{}, err
	}

	links, err := ResolveLinks(page)
	if err != nil {
		return model.Timetable{}, fmt.Errorf("%s: %w", pageURL, err)
	}
	if year < 0 || year >= len(links) {
		return model.Timetable{}, &UnknownYearError{Year: year, Available: len(links)}
	}

	fileURL, err := p.resolve(links[year])
	if err != nil {
		return model.Timetable{}, fmt.Errorf("%s: %w", pageURL, &ResolutionError{Index: year, Reason: err.Error()})
	}

	appLog.Debug("fetch schedule file", "spec", department, "year", year, "url", fileURL)
	data, err := p.fetchFile(ctx, fileURL)
	if err != nil {
		return model.Timetable{}, err
	}

	g, err := ExtractGrid(data)
	if err != nil {
		return model.Timetable{}, fmt.Errorf("%s: %w", fileURL, err)
	}

	timetable, err := Decode(g, spec.Row)
	if err != nil {
		return model.Timetable{}, fmt.Errorf("%s: %w", fileURL, err)
	}

	appLog.Info("timetable decoded", "spec", department, "year", year, "sessions", timetable.Sessions())
	return timetable, nil
}

func (p *Plugin) pageURL(link string) string {
	return strings.TrimRight(p.site.String(), "/") + fmt.Sprintf(p.page, url.PathEscape(link))
}

// resolve ссылки на странице относительные от корня сайта
func (p *Plugin) resolve(link string) (string, error) {
	ref, err := url.Parse(link)
	if err != nil {
		return "", err
	}
	return p.site.ResolveReference(ref).String(), nil
}
