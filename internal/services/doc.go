// Package services defines shared utilities consumed by the catalog feed,
// search engine, and CLI.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper so callers can classify
//     feed failures (transport, timeout, abort) with errors.Is.
//   - Context helpers that stamp correlation identifiers and collection keys
//     for logging.
//
// Malformed feed data is never an error: the parser and mappers degrade to
// defaults instead, so there is no marker for it here.
package services
