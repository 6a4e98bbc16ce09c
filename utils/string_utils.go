package utils

import (
	"regexp"
	"strings"
)

var spaceRE = regexp.MustCompile(`\s+`)

// RemoveSpaces удалить повторяющиеся пробелы (и переносы строк)
func RemoveSpaces(s string) string {
	return spaceRE.ReplaceAllString(s, " ")
}

// CleanCell текст клетки в том виде, в каком он уходит в расписание.
// Клетка только из пробелов считается пустой.
func CleanCell(s string) string {
	return strings.TrimSpace(RemoveSpaces(s))
}
