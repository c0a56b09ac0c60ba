package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	main "github.com/scrapeworks/prodex/cmd/prodex"
)

// testMain returns a Main wired to a temp database.
func testMain(t *testing.T) *main.Main {
	t.Helper()
	return &main.Main{
		Config: main.Config{
			DBPath:   filepath.Join(t.TempDir(), "prodex.db"),
			RPS:      100,
			LogLevel: "error",
		},
	}
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no arguments prints help and errors", func(t *testing.T) {
		t.Parallel()

		m := testMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "Usage:")
	})

	t.Run("help flag succeeds", func(t *testing.T) {
		t.Parallel()

		m := testMain(t)
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "extract")
		assert.Contains(t, stdout.String(), "crawl")
		assert.Contains(t, stdout.String(), "show")
	})

	t.Run("unknown command errors", func(t *testing.T) {
		t.Parallel()

		m := testMain(t)

		err := m.Run(context.Background(), []string{"bogus"}, &bytes.Buffer{}, &bytes.Buffer{})
		require.Error(t, err)
	})

	t.Run("extract then show round trip through the database", func(t *testing.T) {
		t.Parallel()

		page := `<html><body>
			<span id="productTitle"> Steel Water Bottle </span>
			<div id="cerberus-data-metrics" data-asin-price="19.99" data-asin-shipping="0" data-asin-currency-code="USD"></div>
			<div id="copy-asin" data-asin="B07BOTTLE1"></div>
			<div id="availability"><span>In Stock.</span></div>
		</body></html>`
		path := filepath.Join(t.TempDir(), "page.html")
		require.NoError(t, os.WriteFile(path, []byte(page), 0644))

		m := testMain(t)

		stdout := &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"extract", path, "--save"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Steel Water Bottle")

		stdout.Reset()
		err = m.Run(context.Background(), []string{"show", "B07BOTTLE1"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Steel Water Bottle [B07BOTTLE1]")
	})
}
