// Package config loads, normalizes, and validates marquee configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the feed client, search engine, and CLI need: the remote endpoint, the
// cache freshness window, the fetch timeout, debounce and ranking limits, and
// log output.
//
// Always obtain settings through this package so downstream constructors
// receive durations and limits that have already been validated.
package config
