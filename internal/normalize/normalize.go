// Package normalize cleans up event fields extracted from model output.
// All transforms are pure, idempotent, and never fail: malformed input
// degrades to an empty or default string.
package normalize

import (
	"strings"
	"unicode"
)

// titleMinorWords stay lowercase inside a title unless they are the first or
// last word.
var titleMinorWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"and": true, "but": true, "or": true, "nor": true,
	"for": true, "on": true, "at": true, "to": true,
	"from": true, "by": true, "in": true, "of": true, "with": true,
}

// locationMinorWords stay lowercase inside an address component.
var locationMinorWords = map[string]bool{
	"of": true, "the": true, "at": true, "by": true,
	"for": true, "in": true, "on": true, "to": true,
}

// Title renders s in title case: every word gets its first letter capitalized
// except minor words, which are lowercased unless they open or close the
// title. Empty input yields the default event title.
func Title(s string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return "New Event"
	}
	for i, word := range words {
		lower := strings.ToLower(word)
		if titleMinorWords[lower] && i != 0 && i != len(words)-1 {
			words[i] = lower
			continue
		}
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}

// Location renders a comma-separated address in address case. The first word
// of each component is capitalized unconditionally; minor words are
// lowercased; tokens that arrive fully uppercase and at most 3 characters are
// kept as-is (acronyms like "NYC"). Lowercase abbreviations do not trigger
// the acronym branch and get plain capitalization instead.
func Location(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	components := strings.Split(s, ",")
	out := make([]string, 0, len(components))
	for _, component := range components {
		words := strings.Fields(component)
		for i, word := range words {
			switch {
			case i == 0:
				words[i] = capitalize(word)
			case isShortAcronym(word):
				// keep as-is
			case locationMinorWords[strings.ToLower(word)]:
				words[i] = strings.ToLower(word)
			default:
				words[i] = capitalize(word)
			}
		}
		out = append(out, strings.Join(words, " "))
	}
	return strings.Join(out, ", ")
}

// Sentences capitalizes the first character of each sentence, where a
// sentence boundary is '.', '!', or '?' followed by whitespace, and rejoins
// the sentences with single spaces.
func Sentences(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	var sentences []string
	var current strings.Builder
	runes := []rune(strings.TrimSpace(s))
	for i := 0; i < len(runes); i++ {
		current.WriteRune(runes[i])
		if isSentenceEnd(runes[i]) && i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			sentences = append(sentences, strings.TrimSpace(current.String()))
			current.Reset()
			for i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
				i++
			}
		}
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		sentences = append(sentences, rest)
	}
	for i, sentence := range sentences {
		sentences[i] = capitalize(sentence)
	}
	return strings.Join(sentences, " ")
}

// capitalize uppercases the first rune and leaves the rest untouched, so
// embedded acronyms survive repeated passes.
func capitalize(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(word)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isShortAcronym(word string) bool {
	if word == "" || len([]rune(word)) > 3 {
		return false
	}
	hasLetter := false
	for _, r := range word {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
