// Package main hosts the marquee CLI entrypoint and command graph.
//
// The Cobra command tree is a thin owner of the catalog: it loads
// configuration, builds the feed client and search engine, and renders what
// they return as tables or JSON. `interactive` drives the debounced query
// path from stdin so the latest-wins behaviour can be observed end to end.
//
// Keep this package lean: behaviour belongs in internal/feed and
// internal/search, and commands here only wire and render.
package main
