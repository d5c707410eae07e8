package urlgen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	// DateLayout is the ISO calendar date used in generated URLs and CLI flags.
	DateLayout = "2006-01-02"

	DefaultBaseURL  = "http://localhost:3000"
	DefaultTemplate = "{base}/astrology/{date}"
)

// ErrInvalidRange is returned when the start date is after the end date.
var ErrInvalidRange = errors.New("start date is after end date")

// Options describes an inclusive date range and the URL template applied to each day.
// Template may use {base} and {date}; an empty template uses DefaultTemplate.
type Options struct {
	BaseURL  string
	Template string
	Start    time.Time
	End      time.Time
}

// ParseDate parses a yyyy-mm-dd date.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return parsed, nil
}

// URLs returns one URL per calendar day from Start to End inclusive.
func URLs(opts Options) ([]string, error) {
	start := day(opts.Start)
	end := day(opts.End)
	if start.After(end) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start.Format(DateLayout), end.Format(DateLayout))
	}

	template := opts.Template
	if template == "" {
		template = DefaultTemplate
	}

	base := strings.TrimRight(opts.BaseURL, "/")

	urls := []string{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		replacer := strings.NewReplacer("{base}", base, "{date}", d.Format(DateLayout))
		urls = append(urls, replacer.Replace(template))
	}

	return urls, nil
}

// Generate writes URLs one per line to w and returns how many were written.
func Generate(w io.Writer, opts Options) (int, error) {
	urls, err := URLs(opts)
	if err != nil {
		return 0, err
	}

	if err := WriteLines(w, urls); err != nil {
		return 0, err
	}

	return len(urls), nil
}

// WriteLines writes each URL followed by a newline.
func WriteLines(w io.Writer, urls []string) error {
	buffered := bufio.NewWriter(w)
	for _, u := range urls {
		if _, err := buffered.WriteString(u + "\n"); err != nil {
			return fmt.Errorf("write urls: %w", err)
		}
	}

	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("write urls: %w", err)
	}

	return nil
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
