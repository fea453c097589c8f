package sink

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"jobscrape-engine/internal/domain"
	"jobscrape-engine/internal/logging"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() domain.JobRecord {
	return domain.JobRecord{
		Title:         "Python Developer",
		Company:       "Acme, Sp. z o.o.",
		PublishedDate: "2024-01-12",
		Salary:        "8000",
		Technologies:  domain.TechnologiesOf("Python", "Django"),
		Link:          "https://www.pracuj.pl/praca/python-developer,oferta,1001",
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteEmptyLeavesFileAlone(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	w := NewCSVWriter(logging.New("test", &buf))

	missing := filepath.Join(dir, "job_listings.csv")
	require.NoError(t, w.Write(nil, missing))
	assert.NoFileExists(t, missing)
	assert.NoFileExists(t, missing+".lock")
	assert.Contains(t, buf.String(), "no data to save")

	existing := filepath.Join(dir, "old.csv")
	require.NoError(t, os.WriteFile(existing, []byte("keep me\n"), 0o644))
	require.NoError(t, w.Write([]domain.JobRecord{}, existing))

	b, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "keep me\n", string(b))
}

func TestWriteSingleRecordRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job_listings.csv")
	rec := sampleRecord()

	require.NoError(t, NewCSVWriter(logging.Discard()).Write([]domain.JobRecord{rec}, path))

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, rec.Fields(), rows[0])
	assert.Equal(t, rec.Values(), rows[1])

	// lock file is left in place and released
	assert.FileExists(t, path+".lock")
	other := flock.New(path + ".lock")
	locked, err := other.TryLock()
	require.NoError(t, err)
	assert.True(t, locked)
	require.NoError(t, other.Unlock())
}

func TestWritePlaceholdersAndOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	first := sampleRecord()
	second := domain.NewJobRecord()
	second.Title = "Go Engineer"

	require.NoError(t, NewCSVWriter(logging.Discard()).Write([]domain.JobRecord{first, second}, path))

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Title", "Company", "PublishedDate", "Salary", "Technologies", "Link"}, rows[0])
	assert.Equal(t, "Python Developer", rows[1][0])
	assert.Equal(t, "Python, Django", rows[1][4])
	assert.Equal(t, []string{"Go Engineer", domain.NoCompany, domain.NoDate, domain.NoSalary, domain.NoTechnologies, domain.NoLink}, rows[2])
}

func TestWriteReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale,row\n1,2\n3,4\n"), 0o644))

	require.NoError(t, NewCSVWriter(logging.Discard()).Write([]domain.JobRecord{sampleRecord()}, path))

	assert.Len(t, readCSV(t, path), 2)
}

func TestWriteUnwritableDestinationReportsError(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(logging.New("test", &buf))
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.csv")

	err := w.Write([]domain.JobRecord{sampleRecord()}, path)
	assert.Error(t, err)
	assert.NoFileExists(t, path)
	assert.Contains(t, buf.String(), "error saving to csv")
}
