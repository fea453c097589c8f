// Package sink persists the final set of listings.
package sink

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"jobscrape-engine/internal/domain"
	"jobscrape-engine/internal/logging"

	"github.com/gofrs/flock"
)

// CSVWriter writes listings as a UTF-8 CSV file with a header row.
type CSVWriter struct {
	log logging.Logger
}

func NewCSVWriter(log logging.Logger) *CSVWriter {
	return &CSVWriter{log: log}
}

// Write replaces path with the records. With no records it only warns and
// leaves path untouched. Failures are logged and returned.
func (w *CSVWriter) Write(records []domain.JobRecord, path string) error {
	if len(records) == 0 {
		w.log.Warn("no data to save", "path", path)
		return nil
	}

	if err := w.write(records, path); err != nil {
		w.log.Error("error saving to csv", "path", path, "err", err)
		return err
	}
	w.log.Info("data saved", "path", path, "rows", len(records))
	return nil
}

func (w *CSVWriter) write(records []domain.JobRecord, path string) error {
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	// The lock file stays behind; removing it would let another process
	// lock a fresh inode while this one is still held.
	defer func() { _ = lock.Unlock() }()

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}

	cw := csv.NewWriter(tmp)
	if err := cw.Write(records[0].Fields()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(r.Values()); err != nil {
			_ = tmp.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
