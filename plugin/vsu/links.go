package vsu

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Ссылки на таблицы лежат абзацами в первой клетке первой строки тела таблицы
// (первый ребёнок .table это thead). Это вёрстка vsu.by, а не API: поменяется
// вёрстка - поменяется только этот селектор.
const linksSelector = ".table > tbody:nth-child(2) > tr:nth-child(1) > td:nth-child(1) > p > a"

// ResolveLinks ссылки на таблицы в порядке документа, индекс = курс.
// Если ссылок нет, это не ошибка.
func ResolveLinks(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &ResolutionError{Index: -1, Reason: err.Error()}
	}

	links := []string{}
	doc.Find(linksSelector).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		href, exists := sel.Attr("href")
		if !exists {
			err = &ResolutionError{Index: i, Reason: "anchor has no href"}
			return false
		}
		links = append(links, strings.TrimSpace(href))
		return true
	})
	if err != nil {
		return nil, err
	}

	return links, nil
}
