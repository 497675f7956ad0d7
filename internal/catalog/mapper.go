package catalog

import (
	"strconv"
	"strings"

	"marquee/internal/delimited"
	"marquee/internal/textnorm"
)

// Column positions in the movie and series feeds.
const (
	colTitle = iota
	colLink
	colSynopsis
	colCover
	colCategory
	colYear
	colDuration
	colTrailer
	colCastNames
	colCastPhotos
	_
	colKind
	colAudio
	colTotalSeasons
)

// Column positions in the episode feed.
const (
	colEpisodeSeries = iota
	colEpisodeLink
	colEpisodeSeason
	colEpisodeNumber
)

const castSeparator = "|"

// MapMovie projects a movie row. Kind defaults to "filme".
func MapMovie(row delimited.Row) Movie {
	entry := mapEntry(row)
	if entry.Kind == "" {
		entry.Kind = KindMovie
	}
	return Movie{Entry: entry}
}

// MapSeries projects a series row. Kind is always "serie" regardless of the
// column value.
func MapSeries(row delimited.Row) Series {
	entry := mapEntry(row)
	entry.Kind = KindSeries
	return Series{
		Entry:        entry,
		TotalSeasons: positiveInt(row.Field(colTotalSeasons)),
	}
}

// MapEpisode projects an episode row.
func MapEpisode(row delimited.Row) Episode {
	return Episode{
		SeriesTitle: row.Field(colEpisodeSeries),
		Link:        row.Field(colEpisodeLink),
		Season:      positiveInt(row.Field(colEpisodeSeason)),
		Number:      positiveInt(row.Field(colEpisodeNumber)),
	}
}

// Movies maps every titled row.
func Movies(rows []delimited.Row) []Movie {
	return mapTitled(rows, MapMovie)
}

// SeriesList maps every titled row.
func SeriesList(rows []delimited.Row) []Series {
	return mapTitled(rows, MapSeries)
}

// Episodes maps every row with a series title.
func Episodes(rows []delimited.Row) []Episode {
	return mapTitled(rows, MapEpisode)
}

func mapTitled[T any](rows []delimited.Row, project func(delimited.Row) T) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if row.Field(0) == "" {
			continue
		}
		out = append(out, project(row))
	}
	return out
}

func mapEntry(row delimited.Row) Entry {
	return Entry{
		Title:      row.Field(colTitle),
		Link:       row.Field(colLink),
		Synopsis:   row.Field(colSynopsis),
		CoverURL:   row.Field(colCover),
		Category:   row.Field(colCategory),
		Year:       row.Field(colYear),
		Duration:   row.Field(colDuration),
		TrailerURL: row.Field(colTrailer),
		CastNames:  splitList(row.Field(colCastNames)),
		CastPhotos: splitList(row.Field(colCastPhotos)),
		Kind:       row.Field(colKind),
		AudioTrack: row.Field(colAudio),
	}
}

func splitList(value string) []string {
	if value == "" {
		return []string{}
	}
	return strings.Split(value, castSeparator)
}

// positiveInt parses the leading decimal digits of value, tolerating an
// optional sign and trailing garbage. Anything that does not yield a value
// of at least 1 becomes 1.
func positiveInt(value string) int {
	value = textnorm.TrimSpace(value)
	end := 0
	if end < len(value) && (value[end] == '+' || value[end] == '-') {
		end++
	}
	digits := end
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	if end == digits {
		return 1
	}
	n, err := strconv.Atoi(value[:end])
	if err != nil || n < 1 {
		return 1
	}
	return n
}
