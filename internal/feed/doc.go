// Package feed fetches the delimited catalog collections from the remote
// endpoint and keeps the parsed rows in a short-lived cache.
//
// Collection is the strict path: it returns rows or an error tagged with a
// services marker (transport, timeout or aborted). Movies, Series and
// Episodes are the lenient accessors used by the UI layer; a failure is
// logged and turns into an empty slice so the catalog simply shows nothing.
// All fetches movies and series concurrently.
//
// The cache holds parsed rows, not mapped records, so every accessor call
// re-maps. Two concurrent misses for the same key both hit the network and
// the later store wins.
package feed
