// Package fuzzy scores how well a free-text query matches a candidate string
// on a 0-100 scale.
//
// Both sides are normalized with textnorm, then tiers are tried best first
// and the first that matches decides the score: exact (100), prefix (90),
// substring (80), word overlap (up to 60), in-order subsequence (up to 50)
// and bigram overlap (up to 40). Relevance folds the title, category and year
// of a catalog record into one composite score where the title dominates.
package fuzzy
