package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"marquee/internal/search"
)

type emitted struct {
	queries []string
}

func (e *emitted) emit(_ []search.Result, query string) {
	e.queries = append(e.queries, query)
}

func noResults(string) []search.Result { return []search.Result{} }

func TestSessionFlushAnswersRepeatedQuery(t *testing.T) {
	var got emitted
	session := &querySession{emit: got.emit}

	session.record("shrek")
	session.deliver(nil, "shrek")
	session.record("dark")
	session.record("shrek")
	session.flush(noResults)

	want := []string{"shrek", "shrek"}
	if strings.Join(got.queries, ",") != strings.Join(want, ",") {
		t.Fatalf("emitted %q, want %q", got.queries, want)
	}
}

func TestSessionFlushSkipsAnsweredQuery(t *testing.T) {
	var got emitted
	session := &querySession{emit: got.emit}

	session.record("dark")
	session.record("matrix")
	session.deliver(nil, "matrix")
	session.flush(noResults)
	session.deliver(nil, "late")

	if len(got.queries) != 1 || got.queries[0] != "matrix" {
		t.Fatalf("emitted %q, want [matrix]", got.queries)
	}
}

func TestSessionFlushIgnoresEmptyInput(t *testing.T) {
	var got emitted
	session := &querySession{emit: got.emit}

	session.record("")
	session.flush(noResults)

	if len(got.queries) != 0 {
		t.Fatalf("emitted %q, want nothing", got.queries)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEmitJSONReportsWriteErrors(t *testing.T) {
	cmd := &cobra.Command{}
	var stderr bytes.Buffer
	cmd.SetOut(failingWriter{})
	cmd.SetErr(&stderr)

	emitJSON(cmd, "shrek", nil)

	if !strings.Contains(stderr.String(), "disk full") || !strings.Contains(stderr.String(), `"shrek"`) {
		t.Fatalf("stderr = %q", stderr.String())
	}
}
