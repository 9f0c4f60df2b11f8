// Package moderation censors blacklisted words in user-generated text
// before it is fanned out to a room or the global feed.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Moderator struct {
	matcher      *goahocorasick.Machine
	censoredChar rune
}

// textMapping carries the normalized rune stream and, for each normalized
// rune, the index of the rune it came from in the original text. Spacing
// and punctuation are dropped from the normalized stream so split-up
// words ("s t u p i d") still match.
type textMapping struct {
	normalized []rune
	origIdx    []int
}

// NewModerator initializes the Aho-Corasick automaton with a normalized
// version of the provided censored words list.
func NewModerator(censoredWords []string, censoredChar rune) (Moderator, error) {
	patterns := make([][]rune, len(censoredWords))
	for i, word := range censoredWords {
		patterns[i] = normalizeRunes([]rune(word))
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Moderator{}, err
	}
	return Moderator{matcher: m, censoredChar: censoredChar}, nil
}

// Censor identifies forbidden patterns and replaces the original
// characters with the replacement rune while preserving spacing.
func (m *Moderator) Censor(original string) string {
	if m.matcher == nil {
		return original
	}

	mapping := normalize(original)
	if len(mapping.normalized) == 0 {
		return original
	}

	spans := m.matcher.MultiPatternSearch(mapping.normalized, false)
	if len(spans) == 0 {
		return original
	}

	origRunes := []rune(original)
	for _, span := range spans {
		normStart := span.Pos
		normEnd := normStart + len(span.Word)

		if normStart < 0 || normEnd > len(mapping.origIdx) {
			continue
		}

		// Mask only the runes that took part in the match, so the
		// separators inside a split-up word survive.
		for i := normStart; i < normEnd; i++ {
			origRunes[mapping.origIdx[i]] = m.censoredChar
		}
	}

	return string(origRunes)
}

// normalize lowercases the text and strips separators, keeping the
// original index of every retained rune.
func normalize(original string) textMapping {
	var mapping textMapping
	for i, r := range []rune(original) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		mapping.normalized = append(mapping.normalized, unicode.ToLower(r))
		mapping.origIdx = append(mapping.origIdx, i)
	}
	return mapping
}

func normalizeRunes(runes []rune) []rune {
	var out []rune
	for _, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		out = append(out, unicode.ToLower(r))
	}
	return out
}
