package main

import (
	"fmt"

	"github.com/fwojciec/webmd"
	"github.com/fwojciec/webmd/fs"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	cfg := webmd.CrawlConfig{
		Seed:            c.URL,
		AllowSubdomains: c.AllowSubdomains,
		MaxPages:        c.MaxPages,
		Delay:           &c.Delay,
		IgnoreRobots:    c.IgnoreRobots,
		UseSitemap:      c.Sitemap,
	}

	report, err := fs.CreateReport(c.Output)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot create %s: %v\n", c.Output, err)
		return err
	}
	defer report.Close()

	_, summary, err := deps.Crawler.CrawlSite(deps.Ctx, cfg, report)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webmd.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Crawled %d pages (%d visited, %d failed)\n",
		summary.PagesCrawled, summary.PagesVisited, len(summary.Failures))
	fmt.Fprintf(deps.Stdout, "Results saved to %s\n", c.Output)
	return nil
}
