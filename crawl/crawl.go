// Package crawl provides product crawling orchestration. It coordinates
// rate-limited fetching, extraction, and storage of product records for
// batches of source ids.
package crawl

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/scrapeworks/prodex"
	"github.com/scrapeworks/prodex/bloom"
)

// Bloom filter sizing for source-id deduplication within a crawl.
const (
	expectedSourceIDs = 10000
	falsePositiveRate = 0.01
)

// Crawler orchestrates the crawling of product pages.
type Crawler struct {
	Fetcher     prodex.Fetcher
	Extractor   prodex.Extractor
	Records     prodex.RecordService
	RateLimiter prodex.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
	Logger      zerolog.Logger
}

// Result holds the outcome of a crawl operation.
type Result struct {
	Saved   int
	Failed  int
	Skipped int
}

// crawlResult holds the outcome of processing a single source id.
type crawlResult struct {
	sourceID string
	err      error
}

// Run crawls the given source ids for a region and saves the extracted
// records. Duplicate source ids within the batch are processed once.
func (c *Crawler) Run(ctx context.Context, region prodex.Region, sourceIDs []string) (*Result, error) {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	seen := bloom.NewFilter(expectedSourceIDs, falsePositiveRate)

	var result Result
	unique := make([]string, 0, len(sourceIDs))
	for _, id := range sourceIDs {
		if id == "" || seen.TestAndAdd(id) {
			result.Skipped++
			continue
		}
		unique = append(unique, id)
	}

	c.Logger.Info().
		Str("region", string(region)).
		Int("total", len(sourceIDs)).
		Int("unique", len(unique)).
		Msg("starting crawl")

	resultCh := make(chan crawlResult, len(unique))

	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, id := range unique {
			g.Go(func() error {
				resultCh <- crawlResult{sourceID: id, err: c.processSourceID(gctx, region, id)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	for r := range resultCh {
		completed.Add(1)
		if r.err != nil {
			result.Failed++
			c.Logger.Warn().
				Str("source_id", r.sourceID).
				Str("code", prodex.ErrorCode(r.err)).
				Err(r.err).
				Int64("completed", completed.Load()).
				Msg("crawl item failed")
			continue
		}
		result.Saved++
		c.Logger.Debug().
			Str("source_id", r.sourceID).
			Int64("completed", completed.Load()).
			Msg("crawl item saved")
	}

	c.Logger.Info().
		Int("saved", result.Saved).
		Int("failed", result.Failed).
		Int("skipped", result.Skipped).
		Msg("crawl finished")

	return &result, nil
}

// processSourceID fetches, extracts, and stores a single product page.
func (c *Crawler) processSourceID(ctx context.Context, region prodex.Region, sourceID string) error {
	pageURL := region.ProductURL(sourceID)

	if c.RateLimiter != nil {
		u, err := url.Parse(pageURL)
		if err != nil {
			return prodex.Errorf(prodex.EINVALID, "invalid product url %q", pageURL)
		}
		if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
			return err
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	logger := c.Logger.With().Str("source_id", sourceID).Logger()
	html, err := FetchWithRetryDelays(ctx, pageURL, c.Fetcher.Fetch, &logger, delays)
	if err != nil {
		return err
	}

	record, err := c.Extractor.Extract(html, prodex.ExtractInput{
		Region:   region,
		SourceID: sourceID,
	})
	if err != nil {
		return err
	}

	return c.Records.SaveRecord(ctx, record)
}
