package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewJobRecordUsesPlaceholders(t *testing.T) {
	r := NewJobRecord()

	assert.Equal(t, []string{NoTitle, NoCompany, NoDate, NoSalary, NoTechnologies, NoLink}, r.Values())
	assert.False(t, r.Technologies.Found())
	assert.Nil(t, r.Technologies.Tags())
}

func TestFieldsAlignWithValues(t *testing.T) {
	r := JobRecord{
		Title:         "Python Developer",
		Company:       "Acme",
		PublishedDate: "2024-01-12",
		Salary:        "8000",
		Technologies:  TechnologiesOf("Python", "Django"),
		Link:          "https://example.com/offer/1",
	}

	assert.Equal(t, []string{"Title", "Company", "PublishedDate", "Salary", "Technologies", "Link"}, r.Fields())
	assert.Equal(t, []string{"Python Developer", "Acme", "2024-01-12", "8000", "Python, Django", "https://example.com/offer/1"}, r.Values())
}

func TestTechnologiesOf(t *testing.T) {
	assert.Equal(t, NoTechnologies, TechnologiesOf().String())

	in := []string{"Go", "SQL"}
	tech := TechnologiesOf(in...)
	in[0] = "mutated"

	assert.True(t, tech.Found())
	assert.Equal(t, []string{"Go", "SQL"}, tech.Tags())
	assert.Equal(t, "Go, SQL", tech.String())
}
