// Package matcher implements the fuzzy matching engine's core: dictionary
// construction, the two parallel char/pinyin indexes, candidate generation,
// weighted-edit-distance scoring, threshold filtering, sorting, truncation,
// hybrid fusion, and dynamic add/remove with rebuild semantics.
package matcher

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/tassa-yoniso-manasi-karoto/hanzimatch/ahocorasick"
	"github.com/tassa-yoniso-manasi-karoto/hanzimatch/confusion"
	"github.com/tassa-yoniso-manasi-karoto/hanzimatch/distance"
	"github.com/tassa-yoniso-manasi-karoto/hanzimatch/matcherr"
	"github.com/tassa-yoniso-manasi-karoto/hanzimatch/pinyin"
	"github.com/tassa-yoniso-manasi-karoto/hanzimatch/token"
)

// Mode selects which half of the dictionary index (or both, fused) a query
// is scored against.
type Mode string

const (
	ModeChar   Mode = "char"
	ModePinyin Mode = "pinyin"
	ModeHybrid Mode = "hybrid"
)

func (m Mode) valid() bool {
	return m == ModeChar || m == ModePinyin || m == ModeHybrid
}

// MatchResult pairs a dictionary entry with its similarity to the query.
type MatchResult struct {
	Word       string
	Similarity float64
}

// entry is one dictionary Word: the original surface plus its two
// precomputed token forms, stored in an id-indexed arena (the slice
// position) rather than through shared ownership.
type entry struct {
	original     string
	charTokens   []token.Token
	pinyinTokens []token.Token
}

// searchIndex pairs an automaton with the live entries it was built from;
// automaton pattern id i refers to live[i].
type searchIndex struct {
	automaton *ahocorasick.Automaton
	live      []*entry
}

// Matcher owns the dictionary, both indexes, both confusion tables, and the
// pinyin normalizer. Reads (Match, GetWordCount, GetWords) take a shared
// lock; mutations (Build, AddWord, RemoveWord) take an exclusive lock and
// reindex eagerly before releasing it, so a query never observes a DIRTY
// state: only UNBUILT (before the first Build or AddWord) or READY.
type Matcher struct {
	mu sync.RWMutex

	cfg config

	charConfusion   *confusion.Table
	pinyinConfusion *confusion.Table
	normalizer      *pinyin.Normalizer

	built   bool
	entries []*entry

	charIdx    *searchIndex
	pinyinIdx  *searchIndex
	generation string
}

// New constructs a Matcher in the UNBUILT state. Loading either confusion
// file is fatal (IO_FAILURE) at construction; a missing path is not an
// error, it yields an empty table.
func New(opts ...Option) (*Matcher, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.maxDistance < 0 {
		return nil, fmt.Errorf("matcher: new: %w: max_distance %d is negative", matcherr.ErrInvalidArgument, cfg.maxDistance)
	}

	charConfusion, err := confusion.LoadFile(cfg.charConfusionPath)
	if err != nil {
		return nil, fmt.Errorf("matcher: char confusion table: %w", err)
	}
	pinyinConfusion, err := confusion.LoadFile(cfg.pinyinConfusionPath)
	if err != nil {
		return nil, fmt.Errorf("matcher: pinyin confusion table: %w", err)
	}

	return &Matcher{
		cfg:             cfg,
		charConfusion:   charConfusion,
		pinyinConfusion: pinyinConfusion,
		normalizer:      pinyin.New(nil, cfg.ignoreTones),
	}, nil
}

// Build replaces the dictionary wholesale: from the caller's viewpoint the
// matcher is either in the old state or fully in the new one, never a
// partial mix. Input is deduplicated preserving first occurrence; empty
// strings are dropped (an empty Word has no tokens to index).
func (m *Matcher) Build(words []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := make([]*entry, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		entries = append(entries, m.newEntry(w))
	}

	m.entries = entries
	m.built = true
	m.reindexLocked()

	logger.Info().Int("words", len(entries)).Str("generation", m.generation).
		Msg("matcher: build complete")
}

// AddWord inserts word if absent. Returns false on duplicate. Rejects the
// empty string with INVALID_ARGUMENT.
func (m *Matcher) AddWord(word string) (bool, error) {
	if word == "" {
		return false, fmt.Errorf("matcher: add_word: %w: word must not be empty", matcherr.ErrInvalidArgument)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range m.entries {
		if e.original == word {
			return false, nil
		}
	}

	m.entries = append(m.entries, m.newEntry(word))
	m.built = true
	m.reindexLocked()

	logger.Debug().Str("word", word).Str("generation", m.generation).Msg("matcher: word added")
	return true, nil
}

// RemoveWord deletes word if present. Returns false if absent.
func (m *Matcher) RemoveWord(word string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, e := range m.entries {
		if e.original == word {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			m.reindexLocked()
			logger.Debug().Str("word", word).Str("generation", m.generation).Msg("matcher: word removed")
			return true
		}
	}
	return false
}

// GetWordCount returns the current dictionary size.
func (m *Matcher) GetWordCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// GetWords returns an independent, insertion-ordered snapshot of the
// dictionary; mutating it does not affect the matcher.
func (m *Matcher) GetWords() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	words := make([]string, len(m.entries))
	for i, e := range m.entries {
		words[i] = e.original
	}
	return words
}

// MatchOption overrides a per-call Match parameter.
type MatchOption func(*matchParams)

type matchParams struct {
	threshold  *float64
	maxResults *int
}

// WithThreshold overrides the configured default similarity floor for one
// Match call.
func WithThreshold(threshold float64) MatchOption {
	return func(p *matchParams) { p.threshold = &threshold }
}

// WithMaxResults caps the number of results returned by one Match call.
func WithMaxResults(n int) MatchOption {
	return func(p *matchParams) { p.maxResults = &n }
}

// Match scores text against the dictionary under mode, returning results
// sorted by descending similarity (ties broken by ascending word), filtered
// to similarity >= threshold, truncated to maxResults. An empty mode means
// ModeHybrid. Querying before the first Build or AddWord, or with an empty
// text, yields an empty result, not an error.
func (m *Matcher) Match(text string, mode Mode, opts ...MatchOption) ([]MatchResult, error) {
	if mode == "" {
		mode = ModeHybrid
	}
	if !mode.valid() {
		return nil, fmt.Errorf("matcher: match: %w: unknown mode %q", matcherr.ErrInvalidArgument, mode)
	}

	var params matchParams
	for _, opt := range opts {
		opt(&params)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	threshold := m.cfg.similarityThreshold
	if params.threshold != nil {
		if *params.threshold < 0 || *params.threshold > 1 {
			return nil, fmt.Errorf("matcher: match: %w: threshold %v outside [0,1]", matcherr.ErrInvalidArgument, *params.threshold)
		}
		threshold = *params.threshold
	}

	maxResults := -1 // unbounded
	if params.maxResults != nil {
		if *params.maxResults < 0 {
			return nil, fmt.Errorf("matcher: match: %w: max_results %d is negative", matcherr.ErrInvalidArgument, *params.maxResults)
		}
		maxResults = *params.maxResults
	}

	if !m.built || text == "" {
		return []MatchResult{}, nil
	}

	switch mode {
	case ModeChar:
		query := token.GraphemeTokens(text)
		return m.rank(query, m.charIdx, m.charConfusion, charTokensOf, threshold, maxResults), nil
	case ModePinyin:
		query := m.normalizer.ToPinyin(text)
		return m.rank(query, m.pinyinIdx, m.pinyinConfusion, pinyinTokensOf, threshold, maxResults), nil
	default: // ModeHybrid
		return m.hybrid(text, threshold, maxResults), nil
	}
}

func charTokensOf(e *entry) []token.Token   { return e.charTokens }
func pinyinTokensOf(e *entry) []token.Token { return e.pinyinTokens }

// rank scores every candidate for query against idx, filters by maxDistance
// and threshold, sorts, and truncates to maxResults (-1 ⇒ unbounded).
func (m *Matcher) rank(
	query []token.Token,
	idx *searchIndex,
	conf *confusion.Table,
	tokensOf func(*entry) []token.Token,
	threshold float64,
	maxResults int,
) []MatchResult {
	results := make([]MatchResult, 0, len(idx.live))
	for _, e := range m.candidates(query, idx, tokensOf) {
		candTokens := tokensOf(e)
		d := distance.Weighted(query, candTokens, conf)
		if d > float64(m.cfg.maxDistance) {
			continue
		}
		sim := distance.Similarity(d, len(query), len(candTokens))
		if sim < threshold {
			continue
		}
		results = append(results, MatchResult{Word: e.original, Similarity: sim})
	}

	sortResults(results)
	return truncate(results, maxResults)
}

// candidates is the union of automaton hits (dictionary words occurring as
// a contiguous infix of query) and every entry whose token-length differs
// from query's by at most max_distance — the latter covers queries shorter
// than every pattern, where the automaton alone finds nothing.
func (m *Matcher) candidates(query []token.Token, idx *searchIndex, tokensOf func(*entry) []token.Token) []*entry {
	seen := make(map[*entry]struct{})
	var out []*entry
	add := func(e *entry) {
		if _, dup := seen[e]; !dup {
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}

	for _, id := range idx.automaton.Search(token.Values(query)) {
		add(idx.live[id])
	}
	for _, e := range idx.live {
		if absInt(len(tokensOf(e))-len(query)) <= m.cfg.maxDistance {
			add(e)
		}
	}
	return out
}

// hybrid computes the char-mode and pinyin-mode ranked lists independently
// (each capped to maxResults candidates, unfiltered by threshold), fuses by
// averaging per-word similarity with a missing side scoring 0, then
// re-sorts, re-filters by threshold, and re-truncates.
func (m *Matcher) hybrid(text string, threshold float64, maxResults int) []MatchResult {
	charQuery := token.GraphemeTokens(text)
	pinyinQuery := m.normalizer.ToPinyin(text)

	charList := m.rank(charQuery, m.charIdx, m.charConfusion, charTokensOf, 0, maxResults)
	pinyinList := m.rank(pinyinQuery, m.pinyinIdx, m.pinyinConfusion, pinyinTokensOf, 0, maxResults)

	scores := make(map[string]float64, len(charList)+len(pinyinList))
	for _, r := range charList {
		scores[r.Word] += 0.5 * r.Similarity
	}
	for _, r := range pinyinList {
		scores[r.Word] += 0.5 * r.Similarity
	}

	results := make([]MatchResult, 0, len(scores))
	for word, sim := range scores {
		if sim < threshold {
			continue
		}
		results = append(results, MatchResult{Word: word, Similarity: sim})
	}

	sortResults(results)
	return truncate(results, maxResults)
}

func sortResults(results []MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Similarity != results[j].Similarity {
			return results[i].Similarity > results[j].Similarity
		}
		return results[i].Word < results[j].Word
	})
}

func truncate(results []MatchResult, maxResults int) []MatchResult {
	if maxResults >= 0 && len(results) > maxResults {
		return results[:maxResults]
	}
	return results
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// newEntry normalizes word into both token forms. Both sequences are
// non-empty for a non-empty word, per the data model's invariant.
func (m *Matcher) newEntry(word string) *entry {
	return &entry{
		original:     word,
		charTokens:   token.GraphemeTokens(word),
		pinyinTokens: m.normalizer.ToPinyin(word),
	}
}

// reindexLocked rebuilds both automata from the current entries and stamps
// a new generation id, used only for log correlation across concurrent
// readers. Caller must hold mu for writing.
func (m *Matcher) reindexLocked() {
	charPatterns := make([][]string, len(m.entries))
	pinyinPatterns := make([][]string, len(m.entries))
	for i, e := range m.entries {
		charPatterns[i] = token.Values(e.charTokens)
		pinyinPatterns[i] = token.Values(e.pinyinTokens)
	}

	m.charIdx = &searchIndex{automaton: ahocorasick.Build(charPatterns), live: m.entries}
	m.pinyinIdx = &searchIndex{automaton: ahocorasick.Build(pinyinPatterns), live: m.entries}
	m.generation = uuid.NewString()

	logger.Debug().Str("generation", m.generation).Int("live_words", len(m.entries)).
		Msg("matcher: reindexed")
}
