package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/alecthomas/kong"
	"github.com/scrapeo/scrapeo"
	"github.com/scrapeo/scrapeo/fs"
	"github.com/scrapeo/scrapeo/goquery"
	scrapeohttp "github.com/scrapeo/scrapeo/http"
	"github.com/scrapeo/scrapeo/rod"
	"github.com/scrapeo/scrapeo/scrape"
	scrapeoslog "github.com/scrapeo/scrapeo/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read for the source "-".
	Stdin io.Reader

	// Fetcher overrides the fetcher used for URL sources. Set before
	// calling Run(); the caller keeps ownership.
	Fetcher scrapeo.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("scrapeo"),
		kong.Description("Extract SEO-relevant text and attribute values from HTML"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'scrapeo --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The shortcut table is static configuration; reject a bad one before
	// any query runs.
	deps.Queries, err = scrapeo.NewQueryBuilder(scrapeo.DefaultShortcuts())
	if err != nil {
		return fmt.Errorf("invalid shortcut table: %w", err)
	}

	deps.Logger = slog.New(slog.DiscardHandler)
	if cli.Verbose {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	deps.Parser = goquery.NewParser()
	loader := &SourceLoader{Files: fs.NewLoader(m.Stdin)}

	// Only start a fetcher (and possibly Chrome) when a URL is present.
	if slices.ContainsFunc(cli.Meta.Sources, IsURL) {
		fetcher := m.Fetcher
		if fetcher == nil {
			fetcher, err = newFetcher(&cli.Meta)
			if err != nil {
				return err
			}
			defer fetcher.Close()
		}
		loader.Fetcher = scrape.NewRetryFetcher(
			scrapeoslog.NewLoggingFetcher(fetcher, deps.Logger),
			cli.Meta.Retries,
			deps.Logger,
		)
		loader.Limiter = scrape.NewDomainLimiter(cli.Meta.Rate)
	}
	deps.Loader = loader

	return kongCtx.Run(deps)
}

func newFetcher(c *MetaCmd) (scrapeo.Fetcher, error) {
	if !c.Render {
		return scrapeohttp.NewFetcher(
			scrapeohttp.WithTimeout(c.Timeout),
			scrapeohttp.WithUserAgent(c.UserAgent),
		), nil
	}

	fetcher, err := rod.NewFetcher(
		rod.WithFetchTimeout(c.Timeout),
		rod.WithUserAgent(c.UserAgent),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
	}
	return fetcher, nil
}
