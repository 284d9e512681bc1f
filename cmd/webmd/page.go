package main

import (
	"fmt"

	"github.com/fwojciec/webmd"
)

// Run executes the page command.
func (c *PageCmd) Run(deps *Dependencies) error {
	page, err := deps.Crawler.ExtractPage(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webmd.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, page.Markdown)
	return nil
}
