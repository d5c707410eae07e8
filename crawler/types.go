package crawler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"seocrawler/internal/clock"
)

// Report column headers, in export order.
const (
	ColumnURL             = "URL"
	ColumnStatus          = "Status"
	ColumnWordCount       = "No. of content words"
	ColumnTitle           = "Title"
	ColumnTitleLength     = "Title length"
	ColumnMetaDescription = "Meta description"
)

// Headers returns the six report column headers in export order.
func Headers() []string {
	return []string{
		ColumnURL,
		ColumnStatus,
		ColumnWordCount,
		ColumnTitle,
		ColumnTitleLength,
		ColumnMetaDescription,
	}
}

// Options configures a crawl.
// Timeout and UserAgent fall back to the fetcher defaults when zero.
// Workers <= 1 crawls sequentially; larger values fetch in parallel while
// keeping records in input order.
// StripQuotes removes double quotes from titles and descriptions (CSV export).
type Options struct {
	URLs        []string
	Timeout     time.Duration
	UserAgent   string
	Workers     int
	StripQuotes bool
	HTTPClient  *http.Client
	Clock       clock.Clock
	Logger      logrus.FieldLogger
}

// Report is the ordered result of one crawl, one record per input URL.
type Report struct {
	GeneratedAt time.Time `json:"generated_at"`
	Records     []Record  `json:"records"`
}

// Record is one report row. Failed fetches keep the same shape with zero values.
type Record struct {
	URL             string `json:"url"`
	Status          string `json:"status"`
	WordCount       int    `json:"word_count"`
	Title           string `json:"title"`
	TitleLength     int    `json:"title_length"`
	MetaDescription string `json:"meta_description"`
}

// Values returns the record cells in column order.
func (r Record) Values() []any {
	return []any{
		r.URL,
		r.Status,
		r.WordCount,
		r.Title,
		r.TitleLength,
		r.MetaDescription,
	}
}

// Strings returns the record cells in column order, numbers in decimal.
func (r Record) Strings() []string {
	return []string{
		r.URL,
		r.Status,
		strconv.Itoa(r.WordCount),
		r.Title,
		strconv.Itoa(r.TitleLength),
		r.MetaDescription,
	}
}
