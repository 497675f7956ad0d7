package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"marquee/internal/catalog"
	"marquee/internal/feed"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:       "list movies|series|episodes",
		Short:     "List a catalog collection",
		ValidArgs: []string{feed.KeyMovies, feed.KeySeries, feed.KeyEpisodes},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := ctx.feedClient(cmd)
			if err != nil {
				return err
			}
			key := strings.TrimSpace(args[0])
			reqCtx := cmd.Context()

			var (
				headers []string
				rows    [][]string
				aligns  []columnAlignment
				payload any
			)
			switch key {
			case feed.KeyMovies:
				movies := client.Movies(reqCtx)
				payload = movies
				headers = []string{"Title", "Year", "Category", "Duration", "Audio"}
				for _, m := range movies {
					rows = append(rows, []string{m.Title, m.Year, m.Category, m.Duration, m.AudioTrack})
				}
			case feed.KeySeries:
				series := client.Series(reqCtx)
				payload = series
				headers = []string{"Title", "Year", "Category", "Seasons", "Audio"}
				aligns = []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft}
				for _, s := range series {
					rows = append(rows, []string{s.Title, s.Year, s.Category, strconv.Itoa(s.TotalSeasons), s.AudioTrack})
				}
			case feed.KeyEpisodes:
				episodes := client.Episodes(reqCtx)
				payload = episodes
				headers = []string{"Series", "Season", "Episode", "Link"}
				aligns = []columnAlignment{alignLeft, alignRight, alignRight, alignLeft}
				for _, e := range episodes {
					rows = append(rows, []string{e.SeriesTitle, strconv.Itoa(e.Season), strconv.Itoa(e.Number), e.Link})
				}
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, payload)
			}
			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintf(out, "No %s available\n", key)
			} else {
				fmt.Fprintln(out, renderTable(headers, rows, aligns, shouldColorize(out)))
			}
			fmt.Fprintln(out, cacheFooter(client, key, len(rows), time.Now()))
			return nil
		},
	}
}

func recordTitle(r catalog.Record) string {
	return r.Field(catalog.FieldTitle)
}
