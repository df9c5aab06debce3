package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleCapitalizesWords(t *testing.T) {
	assert.Equal(t, "Lunch with Bob", Title("lunch with bob"))
	assert.Equal(t, "Meeting at the Office", Title("meeting at the office"))
	assert.Equal(t, "Dinner and a Movie", Title("dinner and a movie"))
}

func TestTitleFirstAndLastWordAlwaysCapitalized(t *testing.T) {
	// Minor words are still capitalized when they open or close the title.
	assert.Equal(t, "The Cat", Title("the cat"))
	assert.Equal(t, "Something to Look Forward To", Title("something to look forward to"))
}

func TestTitleEmptyInputDefaults(t *testing.T) {
	assert.Equal(t, "New Event", Title(""))
	assert.Equal(t, "New Event", Title("   "))
}

func TestTitlePreservesAcronyms(t *testing.T) {
	assert.Equal(t, "NASA Launch Briefing", Title("NASA launch briefing"))
}

func TestLocationAddressCase(t *testing.T) {
	assert.Equal(t, "123 Main St, Nyc", Location("123 main st, nyc"))
	assert.Equal(t, "1 Infinite Loop, Cupertino", Location("1 infinite loop, cupertino"))
}

func TestLocationPreservesShortUppercaseTokens(t *testing.T) {
	// Tokens that arrive fully uppercase and <=3 chars are treated as
	// acronyms; lowercase abbreviations like "nyc" are not special-cased.
	assert.Equal(t, "123 Main St, NYC", Location("123 main st, NYC"))
	assert.Equal(t, "400 Broad St NW, Washington", Location("400 broad st NW, washington"))
}

func TestLocationMinorWords(t *testing.T) {
	assert.Equal(t, "Bank of America Tower", Location("bank of america tower"))
}

func TestLocationEmptyInput(t *testing.T) {
	assert.Equal(t, "", Location(""))
	assert.Equal(t, "", Location("  "))
}

func TestSentences(t *testing.T) {
	assert.Equal(t, "Hello world. This is a test.", Sentences("hello world. this is a test."))
	assert.Equal(t, "Bring snacks! Also drinks? Maybe.", Sentences("bring snacks! also drinks? maybe."))
}

func TestSentencesSingleSentence(t *testing.T) {
	assert.Equal(t, "Team sync about the roadmap", Sentences("team sync about the roadmap"))
}

func TestSentencesEmptyInput(t *testing.T) {
	assert.Equal(t, "", Sentences(""))
	assert.Equal(t, "", Sentences("   "))
}

func TestNormalizersAreIdempotent(t *testing.T) {
	titles := []string{"lunch with bob", "the cat", "NASA launch briefing", ""}
	for _, in := range titles {
		once := Title(in)
		assert.Equal(t, once, Title(once), "Title not idempotent for %q", in)
	}

	locations := []string{"123 main st, nyc", "123 main st, NYC", "bank of america tower", ""}
	for _, in := range locations {
		once := Location(in)
		assert.Equal(t, once, Location(once), "Location not idempotent for %q", in)
	}

	descriptions := []string{"hello world. this is a test.", "one sentence", ""}
	for _, in := range descriptions {
		once := Sentences(in)
		assert.Equal(t, once, Sentences(once), "Sentences not idempotent for %q", in)
	}
}
