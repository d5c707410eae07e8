package app

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"seocrawler/internal/urlgen"
)

// Run writes one date-parameterized URL per day of the inclusive range to the
// output file, or to stdout when the output is "-".
func Run(args []string, stdout, stderr io.Writer) error {
	app := cli.NewApp()
	app.Name = "urlgen"
	app.Usage = "generate a URL list with one URL per calendar day"
	app.UsageText = "urlgen [global options]"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "base-url",
			Usage: "base URL substituted for {base}",
			Value: urlgen.DefaultBaseURL,
		},
		cli.StringFlag{
			Name:  "template",
			Usage: "URL template with {base} and {date} placeholders",
			Value: urlgen.DefaultTemplate,
		},
		cli.StringFlag{
			Name:  "start",
			Usage: "first date (yyyy-mm-dd)",
			Value: "2023-01-01",
		},
		cli.StringFlag{
			Name:  "end",
			Usage: "last date, inclusive (yyyy-mm-dd)",
			Value: "2025-12-31",
		},
		cli.StringFlag{
			Name:  "out, o",
			Usage: "output file, or - for stdout",
			Value: "urls.txt",
		},
	}
	app.Action = func(c *cli.Context) error {
		opts, err := optionsFromCLI(c)
		if err != nil {
			return err
		}

		return writeURLs(c.String("out"), opts, stdout)
	}

	return app.Run(args)
}

func optionsFromCLI(c *cli.Context) (urlgen.Options, error) {
	start, err := urlgen.ParseDate(c.String("start"))
	if err != nil {
		return urlgen.Options{}, fmt.Errorf("start: %w", err)
	}

	end, err := urlgen.ParseDate(c.String("end"))
	if err != nil {
		return urlgen.Options{}, fmt.Errorf("end: %w", err)
	}

	return urlgen.Options{
		BaseURL:  c.String("base-url"),
		Template: c.String("template"),
		Start:    start,
		End:      end,
	}, nil
}

// stdoutPath selects standard output instead of a file.
const stdoutPath = "-"

func writeURLs(path string, opts urlgen.Options, stdout io.Writer) error {
	urls, err := urlgen.URLs(opts)
	if err != nil {
		return err
	}

	if path == stdoutPath {
		return urlgen.WriteLines(stdout, urls)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	if err := urlgen.WriteLines(file, urls); err != nil {
		_ = file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}

	_, err = fmt.Fprintf(stdout, "Wrote %d URLs to: %s\n", len(urls), path)

	return err
}
