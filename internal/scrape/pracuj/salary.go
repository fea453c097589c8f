package pracuj

import (
	"strings"

	"jobscrape-engine/internal/domain"
	"jobscrape-engine/internal/scrape/util"
)

const salarySuffix = " zł / mies. (zal. od umowy)"

// CleanSalary drops the per-month suffix: "8000 zł / mies. (zal. od umowy)" -> "8000".
func CleanSalary(raw string) string {
	s := util.CleanText(raw)
	if s == "" {
		return domain.NoSalary
	}
	return strings.TrimSpace(strings.Replace(s, salarySuffix, "", 1))
}
