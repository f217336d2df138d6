// Package token defines the tagged token alphabet shared by the char-level
// and pinyin-level halves of the matcher, plus the grapheme segmentation
// helper both halves start from.
package token

import (
	"github.com/rivo/uniseg"
)

// Kind tags a Token as either a single grapheme or a romanized syllable.
// The weighted edit distance never mixes the two within one call: a char-mode
// query compares Grapheme sequences, a pinyin-mode query compares Syllable
// sequences.
type Kind uint8

const (
	Grapheme Kind = iota
	Syllable
)

// Token is the discriminated union described by the data model: a single
// user-perceived character, or a romanized Mandarin syllable (letters plus
// an optional trailing tone digit).
type Token struct {
	Kind  Kind
	Value string
}

func (t Token) String() string {
	return t.Value
}

// Graphemes segments s into its Unicode extended grapheme clusters, in
// order. An empty string yields a nil slice.
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	remaining := s
	state := -1
	for len(remaining) > 0 {
		grapheme, rest, _, newState := uniseg.FirstGraphemeClusterInString(remaining, state)
		if grapheme != "" {
			out = append(out, grapheme)
		}
		remaining = rest
		state = newState
	}
	return out
}

// GraphemeTokens segments s into char-tokens (one Token per grapheme).
func GraphemeTokens(s string) []Token {
	graphemes := Graphemes(s)
	if graphemes == nil {
		return nil
	}
	tokens := make([]Token, len(graphemes))
	for i, g := range graphemes {
		tokens[i] = Token{Kind: Grapheme, Value: g}
	}
	return tokens
}

// IsHan reports whether r falls in the principal CJK Unified Ideographs
// block. This is the same coarse test the source library used (it does not
// attempt to cover every Han extension block); good enough to separate
// "needs a pinyin reading" from "passthrough" graphemes.
func IsHan(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// IsASCIILetter reports whether r is an ASCII letter, the boundary test used
// while grouping already-romanized runs of a non-Han grapheme stream into a
// single syllable token.
func IsASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Values extracts the Value field of each token, in order.
func Values(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Value
	}
	return out
}
