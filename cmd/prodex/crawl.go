package main

import (
	"fmt"

	"github.com/scrapeworks/prodex"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	region, err := prodex.ParseRegion(c.Region)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prodex.ErrorMessage(err))
		return err
	}

	result, err := deps.Crawler.Run(deps.Ctx, region, c.SourceIDs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prodex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d, failed %d, skipped %d\n", result.Saved, result.Failed, result.Skipped)

	if result.Failed > 0 {
		return prodex.Errorf(prodex.EINTERNAL, "%d of %d pages failed", result.Failed, result.Failed+result.Saved)
	}
	return nil
}
