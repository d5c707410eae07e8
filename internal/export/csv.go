package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"seocrawler/crawler"
)

const utf8BOM = "\ufeff"

// WriteCSV writes a UTF-8 CSV with a byte-order mark, a header row and every
// field double-quoted. Embedded quotes are doubled.
func WriteCSV(w io.Writer, report crawler.Report) error {
	buffered := bufio.NewWriter(w)

	if _, err := buffered.WriteString(utf8BOM); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	if err := writeQuotedRow(buffered, crawler.Headers()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, record := range report.Records {
		if err := writeQuotedRow(buffered, record.Strings()); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	return nil
}

func writeQuotedRow(w *bufio.Writer, fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}

		if _, err := w.WriteString(`"` + strings.ReplaceAll(field, `"`, `""`) + `"`); err != nil {
			return err
		}
	}

	return w.WriteByte('\n')
}
