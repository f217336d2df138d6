package matcher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tassa-yoniso-manasi-karoto/hanzimatch/matcherr"
)

func newMatcher(t *testing.T, words []string) *Matcher {
	t.Helper()
	m, err := New()
	require.NoError(t, err)
	m.Build(words)
	return m
}

// S1: English typo tolerance.
func TestMatchEnglishTypo(t *testing.T) {
	m := newMatcher(t, []string{"apple", "application", "apply"})
	results, err := m.Match("appl", ModeChar)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(results), 2)
	assert.Equal(t, "apple", results[0].Word)
	assert.InDelta(t, 0.8, results[0].Similarity, 1e-9)
	assert.Equal(t, "apply", results[1].Word)
	assert.InDelta(t, 0.8, results[1].Similarity, 1e-9)
}

// S2: pinyin homophones both surface for a Han-character query.
func TestMatchPinyinHomophones(t *testing.T) {
	m := newMatcher(t, []string{"北京", "背景", "南京"})
	results, err := m.Match("背景", ModePinyin)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(results), 2)
	assert.Equal(t, "北京", results[0].Word)
	assert.InDelta(t, 1.0, results[0].Similarity, 1e-9)
	assert.Equal(t, "背景", results[1].Word)
	assert.InDelta(t, 1.0, results[1].Similarity, 1e-9)
}

// S3: a fully romanized query segments into the same per-syllable tokens
// the Han dictionary entry normalizes to.
func TestMatchRomanizedQuery(t *testing.T) {
	m := newMatcher(t, []string{"北京", "南京"})
	results, err := m.Match("beijing", ModePinyin)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "北京", results[0].Word)
	assert.InDelta(t, 1.0, results[0].Similarity, 1e-9)
}

// S4: hybrid fusion averages per-mode similarity with a missing side as 0.
func TestMatchHybridFusion(t *testing.T) {
	m := newMatcher(t, []string{"北京", "背景"})
	results, err := m.Match("北京", ModeHybrid)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "北京", results[0].Word)
	assert.InDelta(t, 1.0, results[0].Similarity, 1e-9)
	assert.Equal(t, "背景", results[1].Word)
	assert.InDelta(t, 0.5, results[1].Similarity, 1e-9)
}

// S5: a threshold above every candidate's similarity yields no results.
func TestMatchThresholdExcludesEverything(t *testing.T) {
	m := newMatcher(t, []string{"apple", "banana"})
	results, err := m.Match("xyz", ModeChar, WithThreshold(0.5))
	require.NoError(t, err)
	assert.Empty(t, results)
}

// S6: add_word is idempotent and its effect is visible immediately.
func TestAddWordThenMatch(t *testing.T) {
	m := newMatcher(t, nil)
	added, err := m.AddWord("hello")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = m.AddWord("hello")
	require.NoError(t, err)
	assert.False(t, added)

	results, err := m.Match("helo", ModeChar)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "hello", results[0].Word)
	assert.InDelta(t, 0.8, results[0].Similarity, 1e-9)
}

func TestNewRejectsNegativeMaxDistance(t *testing.T) {
	_, err := New(WithMaxDistance(-1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, matcherr.ErrInvalidArgument))
}

func TestMatchBeforeBuildIsEmpty(t *testing.T) {
	m, err := New()
	require.NoError(t, err)
	results, err := m.Match("anything", ModeChar)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestMatchEmptyTextIsEmpty(t *testing.T) {
	m := newMatcher(t, []string{"apple"})
	results, err := m.Match("", ModeChar)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestMatchUnknownModeIsInvalidArgument(t *testing.T) {
	m := newMatcher(t, []string{"apple"})
	_, err := m.Match("apple", Mode("bogus"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, matcherr.ErrInvalidArgument))
}

func TestMatchThresholdOutOfRangeIsInvalidArgument(t *testing.T) {
	m := newMatcher(t, []string{"apple"})
	_, err := m.Match("apple", ModeChar, WithThreshold(1.5))
	require.Error(t, err)
	assert.True(t, errors.Is(err, matcherr.ErrInvalidArgument))
}

func TestMatchNegativeMaxResultsIsInvalidArgument(t *testing.T) {
	m := newMatcher(t, []string{"apple"})
	_, err := m.Match("apple", ModeChar, WithMaxResults(-1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, matcherr.ErrInvalidArgument))
}

func TestAddWordRejectsEmptyString(t *testing.T) {
	m := newMatcher(t, nil)
	_, err := m.AddWord("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, matcherr.ErrInvalidArgument))
}

func TestRemoveWordAbsentReturnsFalse(t *testing.T) {
	m := newMatcher(t, []string{"apple"})
	assert.False(t, m.RemoveWord("banana"))
}

// Property: add_word(w); remove_word(w) leaves get_words() unchanged.
func TestAddThenRemoveRoundTrips(t *testing.T) {
	m := newMatcher(t, []string{"apple", "banana"})
	before := m.GetWords()

	added, err := m.AddWord("cherry")
	require.NoError(t, err)
	require.True(t, added)
	require.True(t, m.RemoveWord("cherry"))

	assert.ElementsMatch(t, before, m.GetWords())
}

func TestGetWordCountTracksMutations(t *testing.T) {
	m := newMatcher(t, []string{"apple", "banana"})
	assert.Equal(t, 2, m.GetWordCount())

	_, err := m.AddWord("cherry")
	require.NoError(t, err)
	assert.Equal(t, 3, m.GetWordCount())

	m.RemoveWord("apple")
	assert.Equal(t, 2, m.GetWordCount())
}

func TestGetWordsSnapshotIsIndependent(t *testing.T) {
	m := newMatcher(t, []string{"apple", "banana"})
	words := m.GetWords()
	words[0] = "mutated"
	assert.Equal(t, []string{"apple", "banana"}, m.GetWords())
}

// Property: an exact dictionary entry always appears as a similarity-1.0
// result of its own query, in both char and pinyin mode.
func TestExactWordIsAlwaysTopResult(t *testing.T) {
	m := newMatcher(t, []string{"北京", "上海", "apple"})

	charResults, err := m.Match("北京", ModeChar)
	require.NoError(t, err)
	require.NotEmpty(t, charResults)
	assert.Equal(t, "北京", charResults[0].Word)
	assert.InDelta(t, 1.0, charResults[0].Similarity, 1e-9)

	pinyinResults, err := m.Match("北京", ModePinyin)
	require.NoError(t, err)
	require.NotEmpty(t, pinyinResults)
	assert.Equal(t, "北京", pinyinResults[0].Word)
	assert.InDelta(t, 1.0, pinyinResults[0].Similarity, 1e-9)
}

func TestMaxResultsTruncates(t *testing.T) {
	m := newMatcher(t, []string{"apple", "apply", "applx"})
	results, err := m.Match("appl", ModeChar, WithMaxResults(1))
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestResultsSortedDescendingThenAscendingWord(t *testing.T) {
	m := newMatcher(t, []string{"北京", "背景"})
	results, err := m.Match("北京", ModeHybrid)
	require.NoError(t, err)
	for i := 1; i < len(results); i++ {
		prev, cur := results[i-1], results[i]
		if prev.Similarity == cur.Similarity {
			assert.Less(t, prev.Word, cur.Word)
		} else {
			assert.Greater(t, prev.Similarity, cur.Similarity)
		}
	}
}

func TestBuildDeduplicatesPreservingFirstOccurrence(t *testing.T) {
	m := newMatcher(t, []string{"apple", "banana", "apple"})
	assert.Equal(t, []string{"apple", "banana"}, m.GetWords())
}

func TestBuildDropsEmptyStrings(t *testing.T) {
	m := newMatcher(t, []string{"apple", "", "banana"})
	assert.Equal(t, 2, m.GetWordCount())
}
