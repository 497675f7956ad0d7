// Package search ranks catalog records against free-text queries.
//
// An Engine owns the current catalog snapshot, which callers replace
// wholesale with UpdateCatalog. Search scores every record with
// fuzzy.Relevance, keeps those above the threshold, and returns them sorted
// best first (ties keep catalog order) up to a limit. Query debounces typed
// input: only the last call inside the quiet period runs, and its results are
// delivered to the installed ResultFunc on a timer goroutine. Immediate is the
// synchronous path for submit-style interactions.
package search
