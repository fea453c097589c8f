// Package pracuj extracts listings from it.pracuj.pl search result pages.
package pracuj

import (
	"fmt"
	"strings"

	"jobscrape-engine/internal/domain"
	"jobscrape-engine/internal/logging"
	"jobscrape-engine/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
)

// Selectors lists, per field, candidate CSS selectors tried in order.
// Class names come from the site's generated CSS; data-test attributes are
// the fallback when the hashes change.
type Selectors struct {
	Offer        string
	Title        []string
	Company      []string
	Date         []string
	Salary       []string
	Technologies []string
	Link         []string
}

func DefaultSelectors() Selectors {
	return Selectors{
		Offer:        "div.gp-pp-reset.tiles_b18pwp01.core_po9665q, div[data-test='default-offer']",
		Title:        []string{"a.tiles_o1859gd9.core_n194fgoq", "[data-test='offer-title']"},
		Company:      []string{"h3.tiles_chl8gsf.size-caption.core_t1rst47b", "h3[data-test='text-company-name']"},
		Date:         []string{"p.tiles_a1nm2ekh.tiles_s1pgzmte.tiles_bg8mbli", "p[data-test='text-added']"},
		Salary:       []string{"span.tiles_s1x1fda3", "span[data-test='offer-salary']"},
		Technologies: []string{"span._chip--highlight_hmm6b_1.tiles_c276mrm", "span[data-test='technologies-item']"},
		Link:         []string{"a.tiles_cnb3rfy.core_n194fgoq", "a[data-test='link-offer']"},
	}
}

type Extractor struct {
	sel Selectors
	log logging.Logger

	// parseBlock turns one listing block into a record; parseOffer unless
	// swapped in tests.
	parseBlock func(*goquery.Selection) (domain.JobRecord, error)
}

func New(sel Selectors, log logging.Logger) *Extractor {
	e := &Extractor{sel: sel, log: log}
	e.parseBlock = e.parseOffer
	return e
}

func (e *Extractor) Name() string { return "pracuj" }

// Parse returns one record per listing block. A block that blows up is
// logged and skipped; the rest of the page is kept.
func (e *Extractor) Parse(document string) ([]domain.JobRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return nil, fmt.Errorf("pracuj parse html: %w", err)
	}

	offers := doc.Find(e.sel.Offer)
	out := make([]domain.JobRecord, 0, offers.Length())
	offers.Each(func(i int, offer *goquery.Selection) {
		rec, err := e.safeParse(offer)
		if err != nil {
			e.log.Warn("skipping listing", "index", i, "err", err)
			return
		}
		out = append(out, rec)
	})
	return out, nil
}

// safeParse runs parseBlock, turning a panic into an error so one bad block
// can't take the page down.
func (e *Extractor) safeParse(offer *goquery.Selection) (rec domain.JobRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec = domain.JobRecord{}
			err = fmt.Errorf("listing panic: %v", r)
		}
	}()
	return e.parseBlock(offer)
}

func (e *Extractor) parseOffer(offer *goquery.Selection) (domain.JobRecord, error) {
	rec := domain.NewJobRecord()

	if t := util.FirstText(offer, e.sel.Title); t != "" {
		rec.Title = t
	}
	if c := util.FirstText(offer, e.sel.Company); c != "" {
		rec.Company = c
	}

	var dateText string
	if m, ok := util.FirstMatch(offer, e.sel.Date); ok {
		dateText = m.Text()
	}
	rec.PublishedDate = ConvertDate(dateText)

	var salaryText string
	if m, ok := util.FirstMatch(offer, e.sel.Salary); ok {
		salaryText = m.Text()
	}
	rec.Salary = CleanSalary(salaryText)

	rec.Technologies = domain.TechnologiesOf(util.AllTexts(offer, e.sel.Technologies)...)

	if a, ok := util.FirstMatch(offer, e.sel.Link); ok {
		if href, ok := a.Attr("href"); ok {
			rec.Link = href
		}
	}

	return rec, nil
}
