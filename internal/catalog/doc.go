// Package catalog defines the typed catalog records (movies, series,
// episodes) and the total mappers that project parsed feed rows onto them.
//
// Mapping never fails: missing columns become empty strings or empty slices,
// and numeric columns fall back to 1. Rows without a primary title are
// dropped by the batch helpers and never reach the search engine.
package catalog
