package catalog

// Type tags the variant behind a Record.
type Type string

const (
	TypeMovie   Type = "movie"
	TypeSeries  Type = "series"
	TypeEpisode Type = "episode"
)

// Field names the searchable text of a record.
type Field int

const (
	FieldTitle Field = iota
	FieldCategory
	FieldYear
)

// Feed kind values written to Entry.Kind.
const (
	KindMovie  = "filme"
	KindSeries = "serie"
)

// Record is implemented by Movie, Series and Episode.
type Record interface {
	Type() Type
	Field(Field) string
}

// Entry holds the columns shared by movies and series.
type Entry struct {
	Title      string   `json:"title"`
	Link       string   `json:"link"`
	Synopsis   string   `json:"synopsis"`
	CoverURL   string   `json:"cover_url"`
	Category   string   `json:"category"`
	Year       string   `json:"year"`
	Duration   string   `json:"duration"`
	TrailerURL string   `json:"trailer_url"`
	CastNames  []string `json:"cast_names"`
	// CastPhotos is split independently of CastNames; the two are not
	// guaranteed to have the same length.
	CastPhotos []string `json:"cast_photos"`
	Kind       string   `json:"kind"`
	AudioTrack string   `json:"audio_track"`
}

// Field returns the searchable text for f.
func (e Entry) Field(f Field) string {
	switch f {
	case FieldTitle:
		return e.Title
	case FieldCategory:
		return e.Category
	case FieldYear:
		return e.Year
	default:
		return ""
	}
}

type Movie struct {
	Entry
}

func (Movie) Type() Type { return TypeMovie }

type Series struct {
	Entry
	TotalSeasons int `json:"total_seasons"`
}

func (Series) Type() Type { return TypeSeries }

// Episode is a lighter shape pointing at a series by title.
type Episode struct {
	SeriesTitle string `json:"series_title"`
	Link        string `json:"link"`
	Season      int    `json:"season"`
	Number      int    `json:"episode"`
}

func (Episode) Type() Type { return TypeEpisode }

// Field exposes the series title as the episode's title; episodes carry no
// category or year.
func (e Episode) Field(f Field) string {
	if f == FieldTitle {
		return e.SeriesTitle
	}
	return ""
}

var (
	_ Record = Movie{}
	_ Record = Series{}
	_ Record = Episode{}
)

// Records widens typed slices for the search engine.
func Records[T Record](items []T) []Record {
	out := make([]Record, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}
