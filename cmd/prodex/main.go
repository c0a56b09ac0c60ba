// Command prodex extracts, crawls, and inspects marketplace product
// records.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/scrapeworks/prodex"
	"github.com/scrapeworks/prodex/crawl"
	"github.com/scrapeworks/prodex/goquery"
	"github.com/scrapeworks/prodex/htmltomarkdown"
	prodexhttp "github.com/scrapeworks/prodex/http"
	"github.com/scrapeworks/prodex/rod"
	"github.com/scrapeworks/prodex/sqlite"
)

func main() {
	ctx := context.Background()

	m, err := NewMain()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Configuration loaded from the environment. Set before calling Run()
	// to override.
	Config Config

	// SQLite database used by the record service.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main configured from the
// environment. A malformed environment variable is an error rather
// than a silent fallback to defaults.
func NewMain() (*Main, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &Main{Config: cfg}, nil
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	level, err := zerolog.ParseLevel(m.Config.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(stderr).With().Timestamp().Logger().Level(level)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("prodex"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'prodex --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.Config.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PRODEX_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.Config.DBPath, err)
	}
	defer m.Close()

	deps.DB = m.DB
	deps.Records = sqlite.NewRecordService(m.DB)
	deps.Extractor = goquery.NewExtractor()
	deps.Converter = htmltomarkdown.NewConverter()

	if cmd == "crawl" {
		fetcher, err := newFetcher(cli.Crawl.Browser, m.Config, logger, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		deps.Crawler = &crawl.Crawler{
			Fetcher:     fetcher,
			Extractor:   deps.Extractor,
			Records:     deps.Records,
			RateLimiter: crawl.NewDomainLimiter(m.Config.RPS),
			Concurrency: cli.Crawl.Concurrency,
			Logger:      logger,
		}
	}

	return kongCtx.Run(deps)
}

func newFetcher(browser bool, cfg Config, logger zerolog.Logger, stderr io.Writer) (prodex.Fetcher, error) {
	if browser {
		f, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return f, nil
	}
	return prodexhttp.NewFetcher(
		prodexhttp.WithTimeout(cfg.FetchTimeout),
		prodexhttp.WithLogger(logger),
	), nil
}
