package pinyin

import (
	"fmt"

	"github.com/mozillazg/go-pinyin"

	"github.com/tassa-yoniso-manasi-karoto/hanzimatch/matcherr"
)

// GoPinyinReader is the default HanReader, backed by the same
// mozillazg/go-pinyin dictionary the source library's GoJieba/GoPinyin
// pipeline used. Heteronym is always requested so multi-reading characters
// expose every candidate; Normalizer picks the first (the dictionary's own
// canonical ordering).
type GoPinyinReader struct {
	args pinyin.Args
}

// NewGoPinyinReader constructs a reader that always returns tone3-style
// (numeric tone digit) readings; Normalizer strips the digit itself when
// ignore_tones is requested.
func NewGoPinyinReader() *GoPinyinReader {
	args := pinyin.NewArgs()
	args.Style = pinyin.Tone3
	args.Heteronym = true
	return &GoPinyinReader{args: args}
}

// NewGoPinyinReaderWithScheme builds a reader using one of go-pinyin's named
// romanization schemes (normal, tone, tone2, tone3, initials, firstletter,
// finals, finalstone, finalstone2, finalstone3) instead of the tone3 default.
// Normalizer's tone-stripping only makes sense for tone3-style readings, so
// callers mixing this with ignore_tones should pick "tone3" or "normal".
func NewGoPinyinReaderWithScheme(name string) (*GoPinyinReader, error) {
	style, ok := namedSchemes[name]
	if !ok {
		return nil, fmt.Errorf("pinyin: %w: unknown scheme %q", matcherr.ErrInvalidArgument, name)
	}
	args := pinyin.NewArgs()
	args.Style = style
	args.Heteronym = true
	return &GoPinyinReader{args: args}, nil
}

// Readings implements HanReader.
func (r *GoPinyinReader) Readings(grapheme string) ([]string, bool) {
	result := pinyin.Pinyin(grapheme, r.args)
	if len(result) == 0 || len(result[0]) == 0 {
		return nil, false
	}
	return result[0], true
}
