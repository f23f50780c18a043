// Package parsing provides linguistic sentence segmentation for document text.
package parsing

import (
	"strings"
	"unicode"
)

// minSentenceRunes is the minimum trimmed length for a candidate sentence.
// Anything shorter is treated as noise (bullet markers, stray fragments).
const minSentenceRunes = 6

// abbreviations lists lowercased tokens whose trailing period does not end a
// sentence. Dots inside the token are stripped before lookup, so "e.g." and
// "eg." both resolve to "eg".
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {},
	"sr": {}, "jr": {}, "st": {}, "vs": {}, "etc": {},
	"eg": {}, "ie": {}, "inc": {}, "ltd": {}, "co": {},
	"corp": {}, "dept": {}, "univ": {}, "approx": {}, "resp": {},
	"btech": {}, "mtech": {}, "bsc": {}, "msc": {},
}

// Sentences splits text into candidate sentences using boundary detection on
// terminal punctuation, with guards so abbreviations and initialisms inside a
// sentence do not force a false split. Newlines are treated as boundaries,
// which keeps resume bullet lists as separate candidates. Candidates whose
// trimmed length is below the minimum are dropped. Empty or whitespace-only
// input yields an empty slice; callers treat that as no evidence, not an error.
func Sentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		candidate := strings.TrimSpace(current.String())
		current.Reset()
		if len([]rune(candidate)) >= minSentenceRunes {
			sentences = append(sentences, candidate)
		}
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == '\n' {
			flush()
			continue
		}

		current.WriteRune(r)

		if r != '.' && r != '!' && r != '?' {
			continue
		}

		// Only a terminator followed by whitespace or end of text closes a
		// sentence. This also keeps decimals like "3.5" intact.
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}

		if r == '.' && !periodEndsSentence(current.String()) {
			continue
		}

		flush()
	}
	flush()

	return sentences
}

// periodEndsSentence reports whether the trailing period of buf is a sentence
// boundary rather than part of an abbreviation or initialism.
func periodEndsSentence(buf string) bool {
	trimmed := strings.TrimSuffix(buf, ".")
	word := lastWord(trimmed)
	if word == "" {
		return true
	}

	// Single-letter token: an initialism such as the "B." in "B. Tech".
	if len([]rune(word)) == 1 && unicode.IsLetter([]rune(word)[0]) {
		return false
	}

	normalized := strings.ToLower(strings.ReplaceAll(word, ".", ""))
	_, isAbbrev := abbreviations[normalized]
	return !isAbbrev
}

// lastWord returns the final whitespace-delimited token of s.
func lastWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
