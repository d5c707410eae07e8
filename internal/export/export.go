package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"seocrawler/crawler"
)

const (
	reportsDirName = "reports"
	filePrefix     = "crawl-report-"
	// timestampLayout is dd-mm-yyyy hh-mm AM/PM; it contains no colons.
	timestampLayout = "02-01-2006 03-04 PM"
)

// ErrUnknownFormat is returned for an unsupported output format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Format is a report file format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ParseFormat maps a format name to a Format. An empty name selects XLSX.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "xlsx", "excel":
		return FormatXLSX, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Filename returns the report file name for a run finished at now.
func Filename(now time.Time, format Format) string {
	return filePrefix + now.Format(timestampLayout) + "." + string(format)
}

// Write stores report under <dir>/reports/, creating the directory if needed,
// and returns the absolute path of the written file.
func Write(dir string, format Format, report crawler.Report) (string, error) {
	reportsDir := filepath.Join(dir, reportsDirName)
	if err := os.MkdirAll(reportsDir, 0o755); err != nil {
		return "", fmt.Errorf("create reports directory: %w", err)
	}

	path := filepath.Join(reportsDir, Filename(report.GeneratedAt, format))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}

	if err := Encode(file, format, report); err != nil {
		_ = file.Close()
		return "", err
	}

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close report file: %w", err)
	}

	absolute, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}

	return absolute, nil
}

// Encode writes report to w in the given format.
func Encode(w io.Writer, format Format, report crawler.Report) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, report)
	case FormatXLSX:
		return WriteXLSX(w, report)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}
