package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/scrapeworks/prodex"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	region, err := prodex.ParseRegion(c.Region)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prodex.ErrorMessage(err))
		return err
	}

	html, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", c.File, err)
	}

	record, err := deps.Extractor.Extract(string(html), prodex.ExtractInput{
		Region:   region,
		SourceID: c.SourceID,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prodex.ErrorMessage(err))
		return err
	}

	if c.Save {
		if err := deps.Records.SaveRecord(deps.Ctx, record); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", prodex.ErrorMessage(err))
			return err
		}
		deps.Logger.Info().Str("source_id", record.SourceID).Msg("record saved")
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	}

	fmt.Fprintln(deps.Stdout, prodex.FormatRecord(record))
	return nil
}
