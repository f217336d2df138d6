package matcher

// Option configures a Matcher at construction time, following the
// functional-options idiom used elsewhere in the reference pack (e.g.
// fulhash.Option) rather than the source library's map[string]interface{}
// SaveConfig, since MatcherConfig's fields are statically known.
type Option func(*config)

type config struct {
	maxDistance         int
	ignoreTones         bool
	similarityThreshold float64
	charConfusionPath   string
	pinyinConfusionPath string
}

func defaultConfig() config {
	return config{
		maxDistance:         2,
		ignoreTones:         true,
		similarityThreshold: 0.0,
	}
}

// WithMaxDistance sets the maximum weighted edit distance a candidate may
// have and still be considered a match (default 2). New rejects a negative
// value with ErrInvalidArgument.
func WithMaxDistance(d int) Option {
	return func(c *config) { c.maxDistance = d }
}

// WithIgnoreTones toggles tone-stripping in the pinyin normalizer (default
// true).
func WithIgnoreTones(ignore bool) Option {
	return func(c *config) { c.ignoreTones = ignore }
}

// WithSimilarityThreshold sets the default similarity floor used by Match
// when no per-call threshold is given (default 0.0).
func WithSimilarityThreshold(threshold float64) Option {
	return func(c *config) { c.similarityThreshold = threshold }
}

// WithCharConfusionPath points the char-level confusion table at a JSON file
// on disk. Absent (default) ⇒ an empty table, every substitution costs 1.
func WithCharConfusionPath(path string) Option {
	return func(c *config) { c.charConfusionPath = path }
}

// WithPinyinConfusionPath points the pinyin-level confusion table at a JSON
// file on disk. Absent (default) ⇒ an empty table.
func WithPinyinConfusionPath(path string) Option {
	return func(c *config) { c.pinyinConfusionPath = path }
}
