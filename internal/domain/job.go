package domain

import "strings"

// Placeholder values used when a field can't be extracted from a listing.
// Downstream consumers (CSV, sqlite) only ever see plain text.
const (
	NoTitle        = "no title"
	NoCompany      = "no company"
	NoDate         = "no date"
	NoSalary       = "no salary"
	NoTechnologies = "no technologies"
	NoLink         = "no link"
)

// Technologies is either the ordered list of tags found on a listing or,
// when none were found, the NoTechnologies placeholder. It is never an
// empty list.
type Technologies struct {
	tags []string
}

// TechnologiesOf returns the placeholder when tags is empty.
func TechnologiesOf(tags ...string) Technologies {
	if len(tags) == 0 {
		return Technologies{}
	}
	out := make([]string, len(tags))
	copy(out, tags)
	return Technologies{tags: out}
}

// Found reports whether at least one tag was extracted.
func (t Technologies) Found() bool { return len(t.tags) > 0 }

// Tags returns a copy of the tags, nil for the placeholder.
func (t Technologies) Tags() []string {
	if !t.Found() {
		return nil
	}
	out := make([]string, len(t.tags))
	copy(out, t.tags)
	return out
}

func (t Technologies) String() string {
	if !t.Found() {
		return NoTechnologies
	}
	return strings.Join(t.tags, ", ")
}

// JobRecord is one job posting as written to the output file.
type JobRecord struct {
	Title         string
	Company       string
	PublishedDate string // YYYY-MM-DD or NoDate
	Salary        string
	Technologies  Technologies
	Link          string
}

var recordFields = []string{"Title", "Company", "PublishedDate", "Salary", "Technologies", "Link"}

// NewJobRecord returns a record with every field set to its placeholder.
func NewJobRecord() JobRecord {
	return JobRecord{
		Title:         NoTitle,
		Company:       NoCompany,
		PublishedDate: NoDate,
		Salary:        NoSalary,
		Link:          NoLink,
	}
}

// Fields returns the column names in field order.
func (JobRecord) Fields() []string {
	out := make([]string, len(recordFields))
	copy(out, recordFields)
	return out
}

// Values returns the record as a row, aligned with Fields.
func (r JobRecord) Values() []string {
	return []string{
		r.Title,
		r.Company,
		r.PublishedDate,
		r.Salary,
		r.Technologies.String(),
		r.Link,
	}
}
