package pinyin

// HanReader is the external collaborator contract for looking up the
// romanized reading(s) of a single Han grapheme: "char -> ordered non-empty
// list of readings". Entries are tone-digit-suffixed syllables (e.g. "ni3");
// Normalizer strips the digit itself when ignore_tones is set, so a HanReader
// implementation never needs to know the caller's tone preference.
//
// ok is false when the backing dictionary has no entry for grapheme, at
// which point Normalizer passes the original grapheme through unchanged
// (NORMALIZATION_FALLBACK, not an error).
type HanReader interface {
	Readings(grapheme string) (readings []string, ok bool)
}
