package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/webmd/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Crawler *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Page  PageCmd  `cmd:"" help:"Extract a single page as clean Markdown"`
	Crawl CrawlCmd `cmd:"" help:"Crawl a whole site into one Markdown artifact"`
}

// PageCmd is the "page" subcommand.
type PageCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL             string        `arg:"" help:"Seed URL"`
	MaxPages        int           `short:"n" default:"100" help:"Maximum pages to crawl"`
	AllowSubdomains bool          `help:"Follow links to subdomains of the seed's domain"`
	Delay           time.Duration `default:"500ms" help:"Pause between successive requests"`
	IgnoreRobots    bool          `help:"Skip robots.txt checks"`
	Sitemap         bool          `help:"Seed the frontier from the site's sitemap"`
	Output          string        `short:"o" default:"llms.md" help:"Output file path"`
}
