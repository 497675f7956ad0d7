package delimited

import (
	"strings"

	"marquee/internal/textnorm"
)

const (
	// Delimiter separates fields within a line.
	Delimiter = ','
	// Quote opens and closes a field that may contain the delimiter.
	Quote = '"'
)

// Row is one parsed line: fields in source column order, each trimmed.
type Row []string

// Field returns the field at index i, or "" when the row is shorter.
func (r Row) Field(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Parse splits text into rows. The header line is dropped and every returned
// row has at least one field.
func Parse(text string) []Row {
	lines := strings.Split(text, "\n")
	if len(lines) <= 1 {
		return nil
	}
	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		line = textnorm.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, parseLine(line))
	}
	return rows
}

func parseLine(line string) Row {
	var (
		fields  Row
		current strings.Builder
		quoted  bool
	)
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == Quote:
			if quoted && i+1 < len(line) && line[i+1] == Quote {
				current.WriteByte(Quote)
				i++
				continue
			}
			quoted = !quoted
		case ch == Delimiter && !quoted:
			fields = append(fields, textnorm.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	return append(fields, textnorm.TrimSpace(current.String()))
}
