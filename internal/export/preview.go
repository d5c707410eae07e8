package export

import (
	"io"

	"github.com/rodaine/table"

	"seocrawler/crawler"
)

// Preview prints report as an aligned console table.
func Preview(w io.Writer, report crawler.Report) {
	headers := crawler.Headers()
	columns := make([]any, len(headers))
	for i, header := range headers {
		columns[i] = header
	}

	tbl := table.New(columns...).WithWriter(w)
	for _, record := range report.Records {
		tbl.AddRow(record.Values()...)
	}

	tbl.Print()
}
