package catalog_test

import (
	"reflect"
	"testing"

	"marquee/internal/catalog"
	"marquee/internal/delimited"
)

func TestMapMovieFullRow(t *testing.T) {
	rows := delimited.Parse("h1,h2\nShrek,link1,syn,img,Animation,2001,90,tr,A|B,,,filme,PT\n")
	movies := catalog.Movies(rows)
	if len(movies) != 1 {
		t.Fatalf("expected one movie, got %d", len(movies))
	}
	m := movies[0]
	if m.Title != "Shrek" || m.Link != "link1" || m.Synopsis != "syn" || m.CoverURL != "img" {
		t.Fatalf("unexpected leading fields: %+v", m.Entry)
	}
	if m.Category != "Animation" || m.Year != "2001" || m.Duration != "90" || m.TrailerURL != "tr" {
		t.Fatalf("unexpected metadata fields: %+v", m.Entry)
	}
	if !reflect.DeepEqual(m.CastNames, []string{"A", "B"}) {
		t.Fatalf("cast names = %#v", m.CastNames)
	}
	if m.CastPhotos == nil || len(m.CastPhotos) != 0 {
		t.Fatalf("cast photos = %#v, want empty non-nil slice", m.CastPhotos)
	}
	if m.Kind != "filme" || m.AudioTrack != "PT" {
		t.Fatalf("kind/audio = %q/%q", m.Kind, m.AudioTrack)
	}
	if m.Type() != catalog.TypeMovie {
		t.Fatalf("type = %q", m.Type())
	}
}

func TestMapMovieDefaults(t *testing.T) {
	m := catalog.MapMovie(delimited.Row{"Solo"})
	if m.Title != "Solo" {
		t.Fatalf("title = %q", m.Title)
	}
	if m.Kind != catalog.KindMovie {
		t.Fatalf("expected default kind, got %q", m.Kind)
	}
	if len(m.CastNames) != 0 || len(m.CastPhotos) != 0 {
		t.Fatalf("expected empty cast, got %#v %#v", m.CastNames, m.CastPhotos)
	}
	if m.Year != "" || m.AudioTrack != "" {
		t.Fatalf("expected empty optional fields, got %+v", m.Entry)
	}
}

func TestMapMovieCastListsMayDiffer(t *testing.T) {
	row := delimited.Row{"T", "", "", "", "", "", "", "", "A|B|C", "a.jpg"}
	m := catalog.MapMovie(row)
	if !reflect.DeepEqual(m.CastNames, []string{"A", "B", "C"}) {
		t.Fatalf("cast names = %#v", m.CastNames)
	}
	if !reflect.DeepEqual(m.CastPhotos, []string{"a.jpg"}) {
		t.Fatalf("cast photos = %#v", m.CastPhotos)
	}
}

func TestMapSeries(t *testing.T) {
	row := delimited.Row{"Dark", "l", "", "", "Sci-Fi", "2017", "3 temporadas", "", "", "", "", "ignored", "DE", "3"}
	s := catalog.MapSeries(row)
	if s.Kind != catalog.KindSeries {
		t.Fatalf("series kind must be forced, got %q", s.Kind)
	}
	if s.TotalSeasons != 3 {
		t.Fatalf("total seasons = %d", s.TotalSeasons)
	}
	if s.AudioTrack != "DE" || s.Duration != "3 temporadas" {
		t.Fatalf("unexpected fields: %+v", s.Entry)
	}

	if got := catalog.MapSeries(delimited.Row{"x"}).TotalSeasons; got != 1 {
		t.Fatalf("missing total seasons should default to 1, got %d", got)
	}
}

func TestMapEpisodeNumericDefaults(t *testing.T) {
	cases := []struct {
		row           delimited.Row
		season, epNum int
	}{
		{delimited.Row{"Dark", "l", "2", "5"}, 2, 5},
		{delimited.Row{"Dark", "l"}, 1, 1},
		{delimited.Row{"Dark", "l", "abc", ""}, 1, 1},
		{delimited.Row{"Dark", "l", "3x", " 7 "}, 3, 7},
		{delimited.Row{"Dark", "l", "0", "-2"}, 1, 1},
	}
	for _, tc := range cases {
		ep := catalog.MapEpisode(tc.row)
		if ep.Season != tc.season || ep.Number != tc.epNum {
			t.Fatalf("MapEpisode(%#v) = S%dE%d, want S%dE%d", tc.row, ep.Season, ep.Number, tc.season, tc.epNum)
		}
		if ep.SeriesTitle != "Dark" || ep.Link != "l" {
			t.Fatalf("unexpected episode: %+v", ep)
		}
	}
}

func TestBatchMappersDropUntitledRows(t *testing.T) {
	rows := []delimited.Row{
		{"", "link"},
		{"Kept", "link"},
		{""},
	}
	if got := catalog.Movies(rows); len(got) != 1 || got[0].Title != "Kept" {
		t.Fatalf("Movies = %#v", got)
	}
	if got := catalog.SeriesList(rows); len(got) != 1 || got[0].Title != "Kept" {
		t.Fatalf("SeriesList = %#v", got)
	}
	if got := catalog.Episodes(rows); len(got) != 1 || got[0].SeriesTitle != "Kept" {
		t.Fatalf("Episodes = %#v", got)
	}
}

func TestRecordFields(t *testing.T) {
	s := catalog.Series{Entry: catalog.Entry{Title: "Dark", Category: "Sci-Fi", Year: "2017"}}
	if s.Field(catalog.FieldTitle) != "Dark" || s.Field(catalog.FieldCategory) != "Sci-Fi" || s.Field(catalog.FieldYear) != "2017" {
		t.Fatalf("unexpected series fields")
	}
	ep := catalog.Episode{SeriesTitle: "Dark"}
	if ep.Field(catalog.FieldTitle) != "Dark" || ep.Field(catalog.FieldCategory) != "" || ep.Field(catalog.FieldYear) != "" {
		t.Fatalf("unexpected episode fields")
	}

	records := catalog.Records([]catalog.Series{s})
	if len(records) != 1 || records[0].Type() != catalog.TypeSeries {
		t.Fatalf("Records = %#v", records)
	}
}
