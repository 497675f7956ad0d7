// Package rowcache keeps the most recent parsed rows of each feed collection
// in memory for a fixed freshness window.
//
// Entries are replaced wholesale on every Store and are never merged. There is
// no eviction API: an entry only stops being served once its age reaches the
// TTL, after which the caller is expected to refetch and Store again. Nothing
// is persisted; a new process starts with an empty cache.
package rowcache
