package main

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"marquee/internal/search"
	"marquee/internal/textnorm"
)

func newInteractiveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Search as you type: each stdin line is a debounced query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, logger, err := ctx.feedClient(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			snapshot := client.All(cmd.Context())
			fmt.Fprintf(out, "Loaded %d movies and %d series\n", len(snapshot.Movies), len(snapshot.Series))

			session := &querySession{emit: func(results []search.Result, query string) {
				if ctx.jsonOutput() {
					emitJSON(cmd, query, results)
					return
				}
				renderResults(out, query, results)
			}}
			engine := search.New(snapshot.Records(), session.deliver, ctx.searchOptions(logger)...)

			if in, ok := cmd.InOrStdin().(*os.File); ok && isatty.IsTerminal(in.Fd()) {
				fmt.Fprintln(out, "Type to search; results follow a short pause. Ctrl-D exits.")
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				query := textnorm.TrimSpace(scanner.Text())
				session.record(query)
				engine.Query(query)
			}
			engine.Close()

			// Input ended inside the quiet period: answer the final query now.
			session.flush(engine.Immediate)
			return scanner.Err()
		},
	}
}

// querySession numbers each query typed so the final flush can tell whether
// the last one was answered, even when its text repeats an earlier query.
type querySession struct {
	mu        sync.Mutex
	emit      func([]search.Result, string)
	lastSeq   int
	lastText  string
	delivered int
	flushed   bool
}

func (s *querySession) record(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeq++
	s.lastText = query
}

// deliver is the engine's result callback. Results for the latest text count
// as answering the latest query; identical text yields identical results.
func (s *querySession) deliver(results []search.Result, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flushed {
		return
	}
	if query == s.lastText {
		s.delivered = s.lastSeq
	}
	s.emit(results, query)
}

func (s *querySession) flush(immediate func(string) []search.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushed = true
	if s.lastText == "" || s.delivered == s.lastSeq {
		return
	}
	s.delivered = s.lastSeq
	s.emit(immediate(s.lastText), s.lastText)
}

func emitJSON(cmd *cobra.Command, query string, results []search.Result) {
	err := writeJSON(cmd, struct {
		Query   string       `json:"query"`
		Results []resultView `json:"results"`
	}{query, resultViews(results)})
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "write results for %q: %v\n", query, err)
	}
}
