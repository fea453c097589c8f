package types

import "jobscrape-engine/internal/domain"

// Extractor turns one rendered page into listings. Implementations are
// site specific; the coordinator only sees this interface.
type Extractor interface {
	Name() string
	Parse(document string) ([]domain.JobRecord, error)
}

// FetchResult is the outcome of one URL.
type FetchResult struct {
	URL     string
	Records []domain.JobRecord
	Err     error
}
