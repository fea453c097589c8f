package util

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "8 000 zł", CleanText("  8\u00a0000 \n zł "))
	assert.Equal(t, "", CleanText(" \t\n"))
}

func TestFoldComposesDiacritics(t *testing.T) {
	decomposed := "wrzes\u0301nia"
	assert.Equal(t, "września", Fold(decomposed))
	assert.Equal(t, "stycznia", Fold("  STYCZNIA "))
}

func TestCanonicalURL(t *testing.T) {
	got := CanonicalURL("HTTPS://IT.Pracuj.pl/praca/offer,oferta,1?utm_source=x&b=2&a=1#top")
	assert.Equal(t, "https://it.pracuj.pl/praca/offer,oferta,1?a=1&b=2", got)
	assert.Equal(t, "", CanonicalURL("   "))
}

func TestFinders(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
<div id="root">
  <span class="b">second</span>
  <span class="tag"> Go </span>
  <span class="tag">SQL </span>
</div>`))
	require.NoError(t, err)
	root := doc.Find("#root")

	assert.Equal(t, "second", FirstText(root, []string{".a", ".b"}))
	assert.Equal(t, "", FirstText(root, []string{".missing"}))
	assert.Equal(t, []string{"Go", "SQL"}, AllTexts(root, []string{".nope", ".tag"}))
	assert.Nil(t, AllTexts(root, []string{".nope"}))

	_, ok := FirstMatch(root, []string{".nope"})
	assert.False(t, ok)
}
