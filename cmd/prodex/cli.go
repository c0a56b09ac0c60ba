package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/scrapeworks/prodex"
	"github.com/scrapeworks/prodex/crawl"
	"github.com/scrapeworks/prodex/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    zerolog.Logger
	DB        *sqlite.DB
	Records   prodex.RecordService
	Extractor prodex.Extractor
	Converter prodex.Converter
	Crawler   *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract a product record from a saved HTML page"`
	Crawl   CrawlCmd   `cmd:"" help:"Crawl product pages and store the extracted records"`
	Show    ShowCmd    `cmd:"" help:"Show a stored product record"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File     string `arg:"" type:"existingfile" help:"HTML file to extract"`
	Region   string `short:"r" default:"US" help:"Marketplace region code (US, UK, DE, FR, IT, ES, CA)"`
	SourceID string `short:"s" help:"Source id to use when the page carries none"`
	Save     bool   `help:"Save the extracted record to the database"`
	JSON     bool   `help:"Print the record as JSON"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	SourceIDs   []string `arg:"" name:"source-id" help:"Product source ids to crawl"`
	Region      string   `short:"r" default:"US" help:"Marketplace region code (US, UK, DE, FR, IT, ES, CA)"`
	Concurrency int      `short:"c" default:"10" help:"Concurrent fetch limit"`
	Browser     bool     `short:"b" help:"Render pages with headless Chrome instead of plain HTTP"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	SourceID string `arg:"" help:"Source id of the stored record"`
	JSON     bool   `help:"Print the record as JSON"`
}
