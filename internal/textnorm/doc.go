// Package textnorm canonicalizes free text before fuzzy comparison.
//
// Normalize lowercases, decomposes to NFD and drops the combining diacritical
// marks block (U+0300-U+036F), keeps only ASCII letters, digits and
// whitespace, and collapses whitespace runs to single spaces. The output is
// always plain ASCII, so callers may index it byte by byte.
package textnorm
