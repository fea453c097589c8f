package pracuj

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"jobscrape-engine/internal/domain"
	"jobscrape-engine/internal/scrape/util"
)

const publishedLabel = "opublikowana:"

var (
	dayPattern  = regexp.MustCompile(`^\d{1,2}$`)
	yearPattern = regexp.MustCompile(`^\d{4}$`)
)

// Genitive month names as printed on listings ("12 stycznia 2024").
var polishMonths = map[string]time.Month{
	"stycznia":     time.January,
	"lutego":       time.February,
	"marca":        time.March,
	"kwietnia":     time.April,
	"maja":         time.May,
	"czerwca":      time.June,
	"lipca":        time.July,
	"sierpnia":     time.August,
	"września":     time.September,
	"października": time.October,
	"listopada":    time.November,
	"grudnia":      time.December,
}

// ConvertDate turns "Opublikowana: 12 stycznia 2024" into "2024-01-12".
// Anything it can't read becomes domain.NoDate.
func ConvertDate(raw string) string {
	s := util.Fold(raw)
	s = strings.TrimSpace(strings.TrimPrefix(s, publishedLabel))

	parts := strings.Fields(s)
	if len(parts) != 3 {
		return domain.NoDate
	}

	month, ok := polishMonths[parts[1]]
	if !ok {
		return domain.NoDate
	}
	if !dayPattern.MatchString(parts[0]) || !yearPattern.MatchString(parts[2]) {
		return domain.NoDate
	}
	day, _ := strconv.Atoi(parts[0])
	year, _ := strconv.Atoi(parts[2])

	iso := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
	if _, err := time.Parse(time.DateOnly, iso); err != nil {
		return domain.NoDate
	}
	return iso
}
