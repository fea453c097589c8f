package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"jobscrape-engine/internal/domain"
	"jobscrape-engine/internal/scrape/util"
)

// SourceID identifies a listing across runs: canonical link plus title and
// company, hashed.
func SourceID(r domain.JobRecord) string {
	return util.HashString(strings.Join([]string{
		util.CanonicalURL(r.Link),
		strings.ToLower(strings.TrimSpace(r.Title)),
		strings.ToLower(strings.TrimSpace(r.Company)),
	}, "|"))
}

// SaveRecords inserts records in one transaction, skipping ones already
// stored. It returns how many rows were new.
func SaveRecords(ctx context.Context, db *sql.DB, records []domain.JobRecord) (added int, err error) {
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT OR IGNORE INTO listings (source_id, title, company, published_date, salary, technologies, link, first_seen)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, r := range records {
		tags := r.Technologies.Tags()
		if tags == nil {
			tags = []string{}
		}
		techB, _ := json.Marshal(tags)

		res, err := stmt.ExecContext(ctx,
			SourceID(r),
			r.Title,
			r.Company,
			r.PublishedDate,
			r.Salary,
			string(techB),
			r.Link,
			now,
		)
		if err != nil {
			return 0, fmt.Errorf("insert listing: %w", err)
		}
		n, _ := res.RowsAffected()
		added += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}
