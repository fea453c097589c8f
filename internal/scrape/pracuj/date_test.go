package pracuj

import (
	"testing"

	"jobscrape-engine/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestConvertDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "12 stycznia 2024", "2024-01-12"},
		{"label stripped", "Opublikowana: 5 września 2023", "2023-09-05"},
		{"label with extra spaces", "  Opublikowana:\n 1 grudnia 2022 ", "2022-12-01"},
		{"missing diacritics", "3 pazdziernika 2024", domain.NoDate},
		{"composed diacritics", "3 października 2024", "2024-10-03"},
		{"combining acute", "30 wrzes\u0301nia 2024", "2024-09-30"},
		{"upper case month", "7 MAJA 2021", "2021-05-07"},
		{"empty", "", domain.NoDate},
		{"blank", "   ", domain.NoDate},
		{"unknown month", "5 invalidmonth 2023", domain.NoDate},
		{"too few tokens", "stycznia 2024", domain.NoDate},
		{"too many tokens", "12 stycznia 2024 r.", domain.NoDate},
		{"non numeric day", "abc stycznia 2024", domain.NoDate},
		{"short year", "12 stycznia 24", domain.NoDate},
		{"impossible date", "31 lutego 2024", domain.NoDate},
		{"signed day", "+5 stycznia 2024", domain.NoDate},
		{"negative day", "-5 stycznia 2024", domain.NoDate},
		{"signed year", "12 stycznia +202", domain.NoDate},
		{"three digit day", "012 stycznia 2024", domain.NoDate},
		{"zero padded day", "05 stycznia 2024", "2024-01-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertDate(tt.in))
		})
	}
}

func TestCleanSalary(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"suffix stripped", "8000 zł / mies. (zal. od umowy)", "8000"},
		{"range with nbsp", "8\u00a0000–12\u00a0000 zł / mies. (zal. od umowy)", "8 000–12 000"},
		{"no suffix", "120 zł / godz.", "120 zł / godz."},
		{"empty", "", domain.NoSalary},
		{"whitespace", " \n ", domain.NoSalary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanSalary(tt.in))
		})
	}
}
