package config

import (
	"fmt"
	"regexp"

	"github.com/uselessgoddess/suns/utils"
)

// Matcher совпадение текста с одним из значений.
// Значение с префиксом ~ это регулярка, иначе точное совпадение.
type Matcher struct {
	MatchRaw utils.StringEnum
	regexps  map[string]*regexp.Regexp
}

// Compile проверить и скомпилировать регулярки заранее
func (m *Matcher) Compile() error {
	m.regexps = map[string]*regexp.Regexp{}
	for _, s := range m.MatchRaw {
		if len(s) == 0 || s[0] != '~' {
			continue
		}
		re, err := regexp.Compile(s[1:])
		if err != nil {
			return fmt.Errorf("bad pattern %q: %w", s, err)
		}
		m.regexps[s] = re
	}
	return nil
}

func (m *Matcher) Match(text string) bool {
	if len(m.MatchRaw) == 0 {
		return true
	}
	if m.regexps == nil {
		if err := m.Compile(); err != nil {
			return false
		}
	}

	for _, s := range m.MatchRaw {
		if s == text {
			return true
		} else if re, ok := m.regexps[s]; ok && re.MatchString(text) {
			return true
		}
	}

	return false
}
