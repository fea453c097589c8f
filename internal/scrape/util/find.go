package util

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FirstMatch returns the first element matched by the first candidate
// selector that finds anything.
func FirstMatch(s *goquery.Selection, candidates []string) (*goquery.Selection, bool) {
	for _, sel := range candidates {
		if m := s.Find(sel).First(); m.Length() > 0 {
			return m, true
		}
	}
	return nil, false
}

// FirstText is FirstMatch plus CleanText; "" when nothing matched.
func FirstText(s *goquery.Selection, candidates []string) string {
	m, ok := FirstMatch(s, candidates)
	if !ok {
		return ""
	}
	return CleanText(m.Text())
}

// AllTexts returns the trimmed text of every element matched by the first
// candidate selector that finds anything, in document order.
func AllTexts(s *goquery.Selection, candidates []string) []string {
	for _, sel := range candidates {
		m := s.Find(sel)
		if m.Length() == 0 {
			continue
		}
		out := make([]string, 0, m.Length())
		m.Each(func(_ int, el *goquery.Selection) {
			out = append(out, strings.TrimSpace(el.Text()))
		})
		return out
	}
	return nil
}
