package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/webmd/crawl"
	"github.com/fwojciec/webmd/goquery"
	"github.com/fwojciec/webmd/htmltomarkdown"
	webmdhttp "github.com/fwojciec/webmd/http"
	"github.com/fwojciec/webmd/readability"
	"github.com/fwojciec/webmd/robotstxt"
	webmdslog "github.com/fwojciec/webmd/slog"
	"github.com/fwojciec/webmd/trafilatura"
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
	// Crawler built during Run, exposed for end-to-end testing.
	Crawler *crawl.Crawler
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("webmd"),
		kong.Description("Convert web pages into clean Markdown, one page or a whole site."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'webmd --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	fetcher := webmdhttp.NewFetcher()
	defer fetcher.Close()

	m.Crawler = &crawl.Crawler{
		Fetcher:   fetcher,
		Extractor: webmdslog.NewLoggingExtractor(newCascade(), logger),
		Converter: htmltomarkdown.NewConverter(),
		Links:     goquery.NewLinkExtractor(),
		Robots:    webmdslog.NewPolicyLoader(robotstxt.NewLoader(nil), logger),
		Sitemaps:  webmdhttp.NewSitemapSource(nil),
	}
	deps.Crawler = m.Crawler

	return kongCtx.Run(deps)
}

// newCascade builds the extraction cascade in its fixed fallback order:
// readability heuristics first, then semantic tags and content-area
// conventions, with the cleaned body as last resort.
func newCascade() *crawl.Cascade {
	return crawl.NewCascade(
		trafilatura.NewExtractor(),
		readability.NewExtractor(),
		goquery.NewMainExtractor(),
		goquery.NewArticleExtractor(),
		goquery.NewContentAreaExtractor(),
		goquery.NewBodyExtractor(),
	)
}
