package fuzzy

import (
	"math"
	"strings"

	"marquee/internal/catalog"
	"marquee/internal/textnorm"
)

const (
	ScoreExact     = 100.0
	ScorePrefix    = 90.0
	ScoreSubstring = 80.0
	// ScoreWords is split evenly across the query's words.
	ScoreWords       = 60.0
	ScoreSubsequence = 50.0
	ScoreBigram      = 40.0
)

// Field weights for Relevance.
const (
	WeightTitle    = 1.0
	WeightCategory = 0.6
	WeightYear     = 0.3
)

// Query is a normalized query ready to be scored against many candidates.
type Query struct {
	text    string
	words   []string
	bigrams []string
}

// Compile normalizes query once.
func Compile(query string) Query {
	text := textnorm.Normalize(query)
	return Query{
		text:    text,
		words:   textnorm.Words(text),
		bigrams: bigrams(text),
	}
}

// Empty reports whether the query normalized to nothing.
func (q Query) Empty() bool {
	return q.text == ""
}

// String returns the normalized query text.
func (q Query) String() string {
	return q.text
}

// Score normalizes both inputs and scores them.
func Score(query, candidate string) float64 {
	return Compile(query).Score(candidate)
}

// Score rates candidate against q in [0, 100].
func (q Query) Score(candidate string) float64 {
	t := textnorm.Normalize(candidate)
	if q.text == "" || t == "" {
		return 0
	}

	switch {
	case t == q.text:
		return ScoreExact
	case strings.HasPrefix(t, q.text):
		return ScorePrefix
	case strings.Contains(t, q.text):
		return ScoreSubstring
	}

	if s := q.wordScore(t); s > 0 {
		return s
	}
	if s, ok := q.subsequenceScore(t); ok {
		return s
	}
	return q.bigramScore(t)
}

func (q Query) wordScore(t string) float64 {
	var score float64
	for _, w := range q.words {
		if strings.Contains(t, w) {
			score += ScoreWords / float64(len(q.words))
		}
	}
	return score
}

// subsequenceScore reports ok only when every query character appears in t
// in order. Normalized text is ASCII, so bytes are characters.
func (q Query) subsequenceScore(t string) (float64, bool) {
	qi, matches := 0, 0
	for ti := 0; ti < len(t) && qi < len(q.text); ti++ {
		if t[ti] == q.text[qi] {
			matches++
			qi++
		}
	}
	if qi != len(q.text) {
		return 0, false
	}
	return math.Floor(float64(matches) / float64(len(t)) * ScoreSubsequence), true
}

func (q Query) bigramScore(t string) float64 {
	tb := bigrams(t)
	if len(q.bigrams) == 0 || len(tb) == 0 {
		return 0
	}
	present := make(map[string]struct{}, len(tb))
	for _, b := range tb {
		present[b] = struct{}{}
	}
	common := 0
	for _, b := range q.bigrams {
		if _, ok := present[b]; ok {
			common++
		}
	}
	if common == 0 {
		return 0
	}
	return math.Floor(2 * float64(common) / float64(len(q.bigrams)+len(tb)) * ScoreBigram)
}

// bigrams lists every contiguous 2-character substring, duplicates included.
func bigrams(s string) []string {
	if len(s) < 2 {
		return nil
	}
	out := make([]string, 0, len(s)-1)
	for i := 0; i+1 < len(s); i++ {
		out = append(out, s[i:i+2])
	}
	return out
}

// Relevance is the composite score of a record: the best of the title score,
// the category score scaled by 0.6 and the year score scaled by 0.3.
func Relevance(query string, r catalog.Record) float64 {
	return Compile(query).Relevance(r)
}

// Relevance scores r against a compiled query.
func (q Query) Relevance(r catalog.Record) float64 {
	if q.Empty() || r == nil {
		return 0
	}
	return max(
		q.Score(r.Field(catalog.FieldTitle))*WeightTitle,
		q.Score(r.Field(catalog.FieldCategory))*WeightCategory,
		q.Score(r.Field(catalog.FieldYear))*WeightYear,
	)
}
