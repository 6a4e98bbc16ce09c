package config

import "github.com/uselessgoddess/suns/model"

// FilterConfig какие занятия оставить в выдаче
type FilterConfig struct {
	NameMatcher  Matcher
	TutorMatcher Matcher
	PlaceMatcher Matcher
}

func (cfg *FilterConfig) Init() error {
	for _, m := range []*Matcher{&cfg.NameMatcher, &cfg.TutorMatcher, &cfg.PlaceMatcher} {
		if err := m.Compile(); err != nil {
			return err
		}
	}
	return nil
}

// Empty фильтр ничего не отбрасывает
func (cfg *FilterConfig) Empty() bool {
	return len(cfg.NameMatcher.MatchRaw) == 0 && len(cfg.TutorMatcher.MatchRaw) == 0 && len(cfg.PlaceMatcher.MatchRaw) == 0
}

func (cfg *FilterConfig) Match(s model.Session) bool {
	return cfg.NameMatcher.Match(s.Name) && cfg.TutorMatcher.Match(s.Tutor) && cfg.PlaceMatcher.Match(s.Place)
}

// Apply отфильтровать расписание
func (cfg *FilterConfig) Apply(t model.Timetable) model.Timetable {
	if cfg.Empty() {
		return t
	}
	return t.Filter(cfg.Match)
}
