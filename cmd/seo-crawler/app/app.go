package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/urfave/cli"

	"seocrawler/crawler"
	"seocrawler/internal/clock"
	"seocrawler/internal/config"
	"seocrawler/internal/export"
	"seocrawler/internal/logging"
	"seocrawler/internal/urlsource"
)

// Run executes the CLI: load URLs, crawl them and write the report file.
// An empty URL list prints a notice and returns nil; fetch failures are report
// rows, not errors.
func Run(args []string, stdout, stderr io.Writer, client *http.Client, clk clock.Clock) error {
	app := cli.NewApp()
	app.Name = "seo-crawler"
	app.Usage = "crawl a list of URLs and export on-page SEO signals"
	app.UsageText = "seo-crawler [global options]"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "input, i",
			Usage: "path to input file containing URLs (one per line)",
			Value: "urls.txt",
		},
		cli.StringFlag{
			Name:  "out-dir, o",
			Usage: "base output directory; reports are written to <out-dir>/reports",
			Value: ".",
		},
		cli.StringFlag{
			Name:  "format",
			Usage: "report format: xlsx or csv",
			Value: "xlsx",
		},
		cli.DurationFlag{
			Name:  "timeout",
			Usage: "per-request timeout",
			Value: 15 * time.Second,
		},
		cli.StringFlag{
			Name:  "user-agent",
			Usage: "custom user agent",
		},
		cli.IntFlag{
			Name:  "workers",
			Usage: "number of concurrent fetches (1 crawls sequentially)",
			Value: 1,
		},
		cli.BoolFlag{
			Name:  "strip-quotes",
			Usage: "remove double quotes from titles and descriptions (default: on for csv)",
		},
		cli.BoolFlag{
			Name:  "preview",
			Usage: "print the report table to stdout",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "log level: debug, info, warn, error",
			Value: "info",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "optional config file (yaml, toml or json)",
		},
	}
	app.Action = func(c *cli.Context) error {
		cfg, err := configFromCLI(c)
		if err != nil {
			return err
		}

		return crawlAndExport(cfg, stdout, stderr, client, clk)
	}

	err := app.Run(args)
	if err != nil {
		return err
	}

	return nil
}

func crawlAndExport(cfg config.Config, stdout, stderr io.Writer, client *http.Client, clk clock.Clock) error {
	format, err := export.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	logger := logging.WithRunID(logging.New(cfg.LogLevel, stderr))

	urls, err := urlsource.Load(cfg.Input)
	if err != nil {
		return err
	}

	if len(urls) == 0 {
		_, err = fmt.Fprintln(stdout, "No URLs found in input file.")
		return err
	}

	logger.WithField("count", len(urls)).Info("Loaded URLs")

	report, err := crawler.Crawl(context.Background(), crawler.Options{
		URLs:        urls,
		Timeout:     cfg.Timeout,
		UserAgent:   cfg.UserAgent,
		Workers:     cfg.Workers,
		StripQuotes: cfg.ShouldStripQuotes(),
		HTTPClient:  client,
		Clock:       clk,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	if cfg.Preview {
		export.Preview(stdout, report)
	}

	path, err := export.Write(cfg.OutDir, format, report)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout, "\nSaved %s report to: %s\n", strings.ToUpper(string(format)), path)

	return err
}

// configFromCLI loads the optional config file and applies explicitly set flags on top.
func configFromCLI(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return config.Config{}, err
	}

	if c.IsSet("input") {
		cfg.Input = c.String("input")
	}
	if c.IsSet("out-dir") {
		cfg.OutDir = c.String("out-dir")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("timeout") {
		cfg.Timeout = c.Duration("timeout")
	}
	if c.IsSet("user-agent") {
		cfg.UserAgent = c.String("user-agent")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("strip-quotes") {
		stripQuotes := c.Bool("strip-quotes")
		cfg.StripQuotes = &stripQuotes
	}
	if c.IsSet("preview") {
		cfg.Preview = c.Bool("preview")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}
