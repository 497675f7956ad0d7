package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"marquee/internal/catalog"
	"marquee/internal/search"
)

type resultView struct {
	Type   catalog.Type   `json:"type"`
	Score  float64        `json:"score"`
	Record catalog.Record `json:"record"`
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Search movies and series by title, category or year",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return errors.New("--limit must not be negative")
			}
			client, logger, err := ctx.feedClient(cmd)
			if err != nil {
				return err
			}
			query := strings.TrimSpace(strings.Join(args, " "))

			engine := search.New(client.All(cmd.Context()).Records(), nil, ctx.searchOptions(logger)...)
			defer engine.Close()
			results := engine.Search(query, limit)

			if ctx.jsonOutput() {
				return writeJSON(cmd, resultViews(results))
			}
			out := cmd.OutOrStdout()
			renderResults(out, query, results)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum results (0 uses search.result_limit)")
	return cmd
}

func resultViews(results []search.Result) []resultView {
	views := make([]resultView, 0, len(results))
	for _, r := range results {
		views = append(views, resultView{Type: r.Record.Type(), Score: r.Score, Record: r.Record})
	}
	return views
}

func renderResults(out io.Writer, query string, results []search.Result) {
	if len(results) == 0 {
		fmt.Fprintf(out, "No matches for %q\n", query)
		return
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			strconv.FormatFloat(r.Score, 'f', -1, 64),
			string(r.Record.Type()),
			recordTitle(r.Record),
			r.Record.Field(catalog.FieldYear),
			r.Record.Field(catalog.FieldCategory),
		})
	}
	fmt.Fprintf(out, "%d matches for %q\n", len(results), query)
	fmt.Fprintln(out, renderTable(
		[]string{"Score", "Type", "Title", "Year", "Category"},
		rows,
		[]columnAlignment{alignRight},
		shouldColorize(out),
	))
}
