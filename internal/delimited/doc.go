// Package delimited parses the catalog feed's comma-separated text into rows
// of string fields.
//
// The parser is deliberately lenient. The first line is always a header and
// is discarded, blank lines are skipped, quoted fields may contain the
// delimiter, and a doubled quote inside a quoted field decodes to one literal
// quote. Unterminated quotes and ragged rows are accepted as-is: the catalog
// mappers apply their own defaults, so Parse never fails.
package delimited
