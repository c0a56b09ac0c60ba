package main

import (
	"encoding/json"
	"fmt"

	"github.com/scrapeworks/prodex"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	record, err := deps.Records.FindRecordBySourceID(deps.Ctx, c.SourceID)
	if err != nil {
		if prodex.ErrorCode(err) == prodex.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: record %q not found. Use 'prodex crawl' or 'prodex extract --save' to store one.\n", c.SourceID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", prodex.ErrorMessage(err))
		}
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	}

	fmt.Fprintln(deps.Stdout, prodex.FormatRecord(record))

	// Description blocks are raw marketplace markup. Render them as
	// Markdown for the terminal.
	if record.Description != "" {
		md, err := deps.Converter.Convert(record.Description)
		if err == nil {
			fmt.Fprintln(deps.Stdout)
			fmt.Fprintln(deps.Stdout, md)
		}
	}

	return nil
}
