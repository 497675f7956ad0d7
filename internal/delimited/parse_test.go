package delimited_test

import (
	"reflect"
	"testing"

	"marquee/internal/delimited"
)

func TestParseQuotedDelimiter(t *testing.T) {
	rows := delimited.Parse("header\na,\"b,c\",d\n")
	want := []delimited.Row{{"a", "b,c", "d"}}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("Parse = %#v, want %#v", rows, want)
	}
}

func TestParseEscapedQuotes(t *testing.T) {
	rows := delimited.Parse("h\n\"He said \"\"hi\"\"\",x\n")
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}
	if got := rows[0].Field(0); got != `He said "hi"` {
		t.Fatalf("field 0 = %q", got)
	}
	if got := rows[0].Field(1); got != "x" {
		t.Fatalf("field 1 = %q", got)
	}
}

func TestParseDropsHeaderRegardlessOfContent(t *testing.T) {
	cases := []string{
		"Shrek,link\nMulan,link2",
		"\nMulan,link2",
		"title,\"quoted,header\"\nMulan,link2",
	}
	for _, text := range cases {
		rows := delimited.Parse(text)
		if len(rows) != 1 || rows[0].Field(0) != "Mulan" {
			t.Fatalf("Parse(%q) = %#v", text, rows)
		}
	}
}

func TestParseSkipsBlankLines(t *testing.T) {
	rows := delimited.Parse("h\n\n   \na\n\t\nb\n")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %#v", rows)
	}
	if rows[0].Field(0) != "a" || rows[1].Field(0) != "b" {
		t.Fatalf("unexpected rows: %#v", rows)
	}
}

func TestParseHeaderOnlyAndEmpty(t *testing.T) {
	if rows := delimited.Parse(""); len(rows) != 0 {
		t.Fatalf("expected no rows for empty input, got %#v", rows)
	}
	if rows := delimited.Parse("just,a,header"); len(rows) != 0 {
		t.Fatalf("expected no rows for header-only input, got %#v", rows)
	}
}

func TestParseTrimsFieldsAndCarriageReturns(t *testing.T) {
	rows := delimited.Parse("h\r\n  a ,  b  ,c\r\n")
	want := []delimited.Row{{"a", "b", "c"}}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("Parse = %#v, want %#v", rows, want)
	}
}

func TestParseIsLenient(t *testing.T) {
	rows := delimited.Parse("h\n\"unterminated,still one field\nx,,\n")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %#v", rows)
	}
	if !reflect.DeepEqual(rows[0], delimited.Row{"unterminated,still one field"}) {
		t.Fatalf("unterminated quote row = %#v", rows[0])
	}
	if !reflect.DeepEqual(rows[1], delimited.Row{"x", "", ""}) {
		t.Fatalf("trailing empty fields row = %#v", rows[1])
	}
}

func TestRowFieldOutOfRange(t *testing.T) {
	row := delimited.Row{"only"}
	if row.Field(5) != "" || row.Field(-1) != "" {
		t.Fatal("expected empty string for out-of-range field")
	}
}

func TestParseTrimsByteOrderMarkButNotNextLine(t *testing.T) {
	rows := delimited.Parse("h\n\uFEFFShrek\uFEFF, \u0085x\n")
	want := []delimited.Row{{"Shrek", "\u0085x"}}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("Parse = %#v, want %#v", rows, want)
	}
}
