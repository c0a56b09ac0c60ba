package crawl_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrapeworks/prodex"
	"github.com/scrapeworks/prodex/crawl"
	"github.com/scrapeworks/prodex/mock"
)

// testCrawler returns a Crawler whose collaborators succeed for every
// source id, recording saved records into the returned map.
func testCrawler(t *testing.T) (*crawl.Crawler, *sync.Map) {
	t.Helper()

	var saved sync.Map
	c := &crawl.Crawler{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "<html><span id='productTitle'>Widget</span></html>", nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(_ string, input prodex.ExtractInput) (*prodex.Record, error) {
				return &prodex.Record{
					SourceID: input.SourceID,
					Title:    "Widget",
					Currency: input.Region.Currency(),
				}, nil
			},
		},
		Records: &mock.RecordService{
			SaveRecordFn: func(_ context.Context, record *prodex.Record) error {
				saved.Store(record.SourceID, record)
				return nil
			},
		},
		Concurrency: 4,
		RetryDelays: []time.Duration{0}, // no delay for tests
		Logger:      zerolog.Nop(),
	}
	return c, &saved
}

func TestCrawler_Run(t *testing.T) {
	t.Parallel()

	t.Run("fetches, extracts, and saves each source id", func(t *testing.T) {
		t.Parallel()

		c, saved := testCrawler(t)

		result, err := c.Run(context.Background(), prodex.RegionUS, []string{"B07AAA0001", "B07AAA0002", "B07AAA0003"})
		require.NoError(t, err)
		assert.Equal(t, 3, result.Saved)
		assert.Equal(t, 0, result.Failed)
		assert.Equal(t, 0, result.Skipped)

		record, ok := saved.Load("B07AAA0002")
		require.True(t, ok)
		assert.Equal(t, prodex.CurrencyUSD, record.(*prodex.Record).Currency)
	})

	t.Run("deduplicates source ids within a batch", func(t *testing.T) {
		t.Parallel()

		c, _ := testCrawler(t)

		result, err := c.Run(context.Background(), prodex.RegionUS, []string{"B07AAA0001", "B07AAA0001", "B07AAA0002"})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Saved)
		assert.Equal(t, 1, result.Skipped)
	})

	t.Run("skips empty source ids", func(t *testing.T) {
		t.Parallel()

		c, _ := testCrawler(t)

		result, err := c.Run(context.Background(), prodex.RegionUS, []string{"", "B07AAA0001"})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Saved)
		assert.Equal(t, 1, result.Skipped)
	})

	t.Run("fetch failure counts as failed without stopping the batch", func(t *testing.T) {
		t.Parallel()

		c, _ := testCrawler(t)
		c.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				if url == prodex.RegionUS.ProductURL("B07AAA0002") {
					return "", prodex.Errorf(prodex.ENOTFOUND, "page not found")
				}
				return "<html></html>", nil
			},
		}

		result, err := c.Run(context.Background(), prodex.RegionUS, []string{"B07AAA0001", "B07AAA0002", "B07AAA0003"})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Saved)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("extract failure counts as failed", func(t *testing.T) {
		t.Parallel()

		c, _ := testCrawler(t)
		c.Extractor = &mock.Extractor{
			ExtractFn: func(_ string, _ prodex.ExtractInput) (*prodex.Record, error) {
				return nil, prodex.Errorf(prodex.EINVALID, "product title is required")
			},
		}

		result, err := c.Run(context.Background(), prodex.RegionUS, []string{"B07AAA0001"})
		require.NoError(t, err)
		assert.Equal(t, 0, result.Saved)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("save failure counts as failed", func(t *testing.T) {
		t.Parallel()

		c, _ := testCrawler(t)
		c.Records = &mock.RecordService{
			SaveRecordFn: func(_ context.Context, _ *prodex.Record) error {
				return prodex.Errorf(prodex.EINTERNAL, "disk full")
			},
		}

		result, err := c.Run(context.Background(), prodex.RegionUS, []string{"B07AAA0001"})
		require.NoError(t, err)
		assert.Equal(t, 0, result.Saved)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("uses the regional marketplace domain", func(t *testing.T) {
		t.Parallel()

		var gotURL string
		c, _ := testCrawler(t)
		c.Concurrency = 1
		c.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				gotURL = url
				return "<html></html>", nil
			},
		}

		_, err := c.Run(context.Background(), prodex.RegionDE, []string{"B07AAA0001"})
		require.NoError(t, err)
		assert.Equal(t, "https://www.amazon.de/gp/product/B07AAA0001", gotURL)
	})

	t.Run("waits on the rate limiter per domain", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var domains []string
		c, _ := testCrawler(t)
		c.RateLimiter = &mock.DomainLimiter{
			WaitFn: func(_ context.Context, domain string) error {
				mu.Lock()
				domains = append(domains, domain)
				mu.Unlock()
				return nil
			},
		}

		_, err := c.Run(context.Background(), prodex.RegionUK, []string{"B07AAA0001", "B07AAA0002"})
		require.NoError(t, err)
		assert.Len(t, domains, 2)
		assert.Equal(t, "www.amazon.co.uk", domains[0])
	})
}
