package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrapeworks/prodex"
	main "github.com/scrapeworks/prodex/cmd/prodex"
	"github.com/scrapeworks/prodex/htmltomarkdown"
	"github.com/scrapeworks/prodex/mock"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	stored := &prodex.Record{
		SourceID:    "B07BOTTLE1",
		SourceLink:  "https://www.amazon.com/gp/product/B07BOTTLE1",
		Title:       "Steel Water Bottle",
		Price:       19.99,
		Currency:    prodex.CurrencyUSD,
		InStock:     true,
		Quantity:    500,
		Description: "<h3>Built to last</h3><p>Double-wall insulation.</p>",
	}

	records := &mock.RecordService{
		FindRecordBySourceIDFn: func(_ context.Context, sourceID string) (*prodex.Record, error) {
			if sourceID == stored.SourceID {
				return stored, nil
			}
			return nil, prodex.Errorf(prodex.ENOTFOUND, "record %q not found", sourceID)
		},
	}

	t.Run("prints the record with rendered description", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Logger:    zerolog.Nop(),
			Records:   records,
			Converter: htmltomarkdown.NewConverter(),
		}

		cmd := &main.ShowCmd{SourceID: "B07BOTTLE1"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Steel Water Bottle [B07BOTTLE1]")
		assert.Contains(t, stdout.String(), "### Built to last")
		assert.Contains(t, stdout.String(), "Double-wall insulation.")
	})

	t.Run("prints JSON with the --json flag", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Logger:  zerolog.Nop(),
			Records: records,
		}

		cmd := &main.ShowCmd{SourceID: "B07BOTTLE1", JSON: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"sourceId": "B07BOTTLE1"`)
	})

	t.Run("missing record reports not found", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Logger:  zerolog.Nop(),
			Records: records,
		}

		cmd := &main.ShowCmd{SourceID: "B07MISSING0"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, prodex.ENOTFOUND, prodex.ErrorCode(err))
		assert.Contains(t, stderr.String(), "not found")
	})
}
