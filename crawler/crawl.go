package crawler

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"seocrawler/internal/clock"
	"seocrawler/internal/fetcher"
	"seocrawler/internal/parser"
)

var errHTTPClientRequired = errors.New("http client is required")

// Crawl fetches and analyzes every URL in opts.URLs and returns one record per
// URL in input order. Per-URL failures are captured in the records; the only
// error is a missing HTTP client.
func Crawl(ctx context.Context, opts Options) (Report, error) {
	clk := opts.Clock
	if clk == nil {
		clk = clock.New()
	}

	if opts.HTTPClient == nil {
		return Report{GeneratedAt: clk.Now(), Records: []Record{}}, errHTTPClientRequired
	}

	c := &crawl{
		fetch:    fetcher.New(opts.HTTPClient, opts.Timeout, opts.UserAgent),
		sanitize: parser.SanitizeOptions{StripQuotes: opts.StripQuotes},
		log:      loggerOrDiscard(opts.Logger),
	}

	records := make([]Record, len(opts.URLs))

	workers := normalizeWorkers(opts.Workers)
	if workers == 1 {
		for i, pageURL := range opts.URLs {
			records[i] = c.crawlOne(ctx, pageURL)
		}
	} else {
		var group errgroup.Group
		group.SetLimit(workers)

		for i, pageURL := range opts.URLs {
			group.Go(func() error {
				records[i] = c.crawlOne(ctx, pageURL)

				return nil
			})
		}

		_ = group.Wait()
	}

	return Report{GeneratedAt: clk.Now(), Records: records}, nil
}

type crawl struct {
	fetch    *fetcher.Fetcher
	sanitize parser.SanitizeOptions
	log      logrus.FieldLogger
}

func (c *crawl) crawlOne(ctx context.Context, pageURL string) Record {
	entry := c.log.WithField("url", pageURL)
	entry.Info("Crawling")

	outcome := c.fetch.Fetch(ctx, pageURL)

	entry.WithFields(logrus.Fields{
		"status":  outcome.StatusLabel,
		"outcome": outcome.Kind.String(),
	}).Debug("Fetched")

	if !outcome.OK() {
		entry.WithField("status", outcome.StatusLabel).Info("Fetch failed, recording placeholder row")
	}

	return Assemble(pageURL, outcome, c.sanitize)
}

func normalizeWorkers(workers int) int {
	if workers < 1 {
		return 1
	}

	return workers
}

func loggerOrDiscard(log logrus.FieldLogger) logrus.FieldLogger {
	if log != nil {
		return log
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	return discard
}
