package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Listing is a stored row.
type Listing struct {
	ID            int64
	SourceID      string
	Title         string
	Company       string
	PublishedDate string
	Salary        string
	Technologies  []string // empty when the listing had none
	Link          string
	FirstSeen     string
}

func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}

	if v >= 1 {
		return tx.Commit()
	}

	// ---- Schema v1 ----

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS listings (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  source_id TEXT NOT NULL,
  title TEXT NOT NULL,
  company TEXT NOT NULL,
  published_date TEXT NOT NULL,
  salary TEXT NOT NULL,
  technologies TEXT NOT NULL DEFAULT '[]',
  link TEXT NOT NULL,
  first_seen TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_listings_source_id ON listings(source_id);
CREATE INDEX IF NOT EXISTS idx_listings_published ON listings(published_date DESC);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}
	return tx.Commit()
}

// ListListings returns stored rows, newest publication date first.
func ListListings(ctx context.Context, db *sql.DB, limit int) ([]Listing, error) {
	if limit <= 0 {
		limit = 200
	}
	rows, err := db.QueryContext(ctx, `
SELECT id, source_id, title, company, published_date, salary, technologies, link, first_seen
FROM listings
ORDER BY published_date DESC, id ASC
LIMIT ?;`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Listing
	for rows.Next() {
		var l Listing
		var techJSON string
		if err := rows.Scan(&l.ID, &l.SourceID, &l.Title, &l.Company, &l.PublishedDate, &l.Salary, &techJSON, &l.Link, &l.FirstSeen); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(techJSON), &l.Technologies); err != nil {
			return nil, fmt.Errorf("listing %d technologies: %w", l.ID, err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
