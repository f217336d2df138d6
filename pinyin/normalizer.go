// Package pinyin implements the canonical pinyin normalization pipeline:
// converting mixed Han/Latin text into an ordered sequence of syllable
// tokens for the pinyin-level half of the matcher.
package pinyin

import (
	"strings"
	"unicode/utf8"

	"github.com/tassa-yoniso-manasi-karoto/hanzimatch/token"
)

// emitLatinRun appends the tokens for a completed run of consecutive ASCII
// letters: a greedy longest-match split into known pinyin syllables when
// the run fully segments that way (so a romanized query like "beijing"
// aligns token-for-token with the dictionary's own "bei"+"jing"), or the
// whole run as a single passthrough token when it doesn't (an English word
// mixed into the text, not a run of real pinyin syllables).
func emitLatinRun(tokens []token.Token, run string) []token.Token {
	if run == "" {
		return tokens
	}
	if syllables := segmentSyllables(strings.ToLower(run)); syllables != nil {
		for _, s := range syllables {
			tokens = append(tokens, token.Token{Kind: token.Syllable, Value: s})
		}
		return tokens
	}
	return append(tokens, token.Token{Kind: token.Syllable, Value: run})
}

// Normalizer converts text into a canonical sequence of pinyin tokens:
// Han graphemes resolve to a romanized syllable, a run of consecutive Latin
// letters becomes its pinyin syllables (or one token when it does not split
// into known syllables), everything else passes through.
type Normalizer struct {
	han         HanReader
	ignoreTones bool
}

// New builds a Normalizer. A nil reader falls back to NewGoPinyinReader.
func New(reader HanReader, ignoreTones bool) *Normalizer {
	if reader == nil {
		reader = NewGoPinyinReader()
	}
	return &Normalizer{han: reader, ignoreTones: ignoreTones}
}

// ToPinyin converts text into its ordered pinyin-token sequence. An empty
// text yields a nil sequence; otherwise the result always has at least one
// token (NORMALIZATION_FALLBACK guarantees non-Han, non-letter graphemes
// still produce a passthrough token).
func (n *Normalizer) ToPinyin(text string) []token.Token {
	graphemes := token.Graphemes(text)
	if len(graphemes) == 0 {
		return nil
	}

	var tokens []token.Token
	var letterRun strings.Builder

	flushLetters := func() {
		if letterRun.Len() > 0 {
			tokens = emitLatinRun(tokens, letterRun.String())
			letterRun.Reset()
		}
	}

	for _, g := range graphemes {
		r, size := utf8.DecodeRuneInString(g)
		isSingleRune := size == len(g)

		switch {
		case isSingleRune && token.IsHan(r):
			flushLetters()
			tokens = append(tokens, token.Token{Kind: token.Syllable, Value: n.hanSyllable(g)})
		case isSingleRune && token.IsASCIILetter(r):
			letterRun.WriteRune(r)
		default:
			flushLetters()
			tokens = append(tokens, token.Token{Kind: token.Syllable, Value: g})
		}
	}
	flushLetters()

	return tokens
}

// hanSyllable resolves a single Han grapheme to its canonical syllable,
// honoring ignore_tones, or passes it through unchanged when the backing
// HanReader has no reading for it.
func (n *Normalizer) hanSyllable(grapheme string) string {
	readings, ok := n.han.Readings(grapheme)
	if !ok || len(readings) == 0 {
		return grapheme
	}
	reading := readings[0]
	if n.ignoreTones {
		return stripTone(reading)
	}
	return reading
}

// stripTone removes a trailing tone digit (1-5) from a tone3-style syllable.
func stripTone(syllable string) string {
	if syllable == "" {
		return syllable
	}
	last := syllable[len(syllable)-1]
	if last >= '1' && last <= '5' {
		return syllable[:len(syllable)-1]
	}
	return syllable
}
