package crawler

import (
	"seocrawler/internal/fetcher"
	"seocrawler/internal/parser"
)

// Assemble builds the report row for one URL. It never fails: a failed fetch
// yields a placeholder with the outcome label and zero/empty page fields.
func Assemble(url string, outcome fetcher.Outcome, opts parser.SanitizeOptions) Record {
	record := Record{
		URL:    url,
		Status: outcome.StatusLabel,
	}

	if !outcome.OK() {
		return record
	}

	analysis := parser.Analyze(outcome.Body, opts)
	record.WordCount = analysis.WordCount
	record.Title = analysis.Title
	record.TitleLength = analysis.TitleLength
	record.MetaDescription = analysis.MetaDescription

	return record
}
