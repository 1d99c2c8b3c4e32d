package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/execscout"
	"github.com/fwojciec/execscout/crawl"
	"github.com/fwojciec/execscout/csvutil"
	"github.com/fwojciec/execscout/gemini"
	"github.com/fwojciec/execscout/goquery"
	eshttp "github.com/fwojciec/execscout/http"
	"github.com/fwojciec/execscout/prose"
	"github.com/fwojciec/execscout/rod"
	"github.com/fwojciec/execscout/serpapi"
	esslog "github.com/fwojciec/execscout/slog"
	"github.com/fwojciec/execscout/sqlite"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

// RobotsAgent is the user agent matched against robots.txt groups.
const RobotsAgent = "execscout"

func main() {
	// API keys may be kept in a .env file in the working directory.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(); --db and EXECSCOUT_DB override it.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RunService execscout.RunService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("execscout"),
		kong.Description("Find company executives on their websites and evaluate the results"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'execscout --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)

	if cli.DB != "" {
		m.DBPath = cli.DB
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set EXECSCOUT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.RunService = sqlite.NewRunService(m.DB)
	deps.Runs = m.RunService
	deps.Loader = csvutil.NewLoader()

	cmd := strings.Fields(kongCtx.Command())[0]
	if cmd == "scan" || cmd == "bulk" {
		scanner, closeFn, err := newScanner(ctx, cli, deps.Logger, stderr)
		if err != nil {
			return err
		}
		defer closeFn()
		deps.Scanner = scanner
	}

	return kongCtx.Run(deps)
}

// newScanner wires the fetch, classify, resolve, and extract chain from
// the global flags. The returned function releases the fetcher.
func newScanner(ctx context.Context, cli *CLI, logger *slog.Logger, stderr io.Writer) (*crawl.Scanner, func() error, error) {
	classifier, err := newClassifier(ctx, cli, stderr)
	if err != nil {
		return nil, nil, err
	}

	var resolver execscout.ProfileResolver
	if cli.SerpAPIKey != "" {
		resolver = esslog.NewLoggingResolver(serpapi.NewResolver(cli.SerpAPIKey, serpapi.WithTimeout(cli.Timeout)), logger)
	} else {
		fmt.Fprintln(stderr, "warning: SERPAPI_API_KEY not set, profiles will not be resolved")
	}

	var fetcher execscout.Fetcher
	if cli.Browser {
		f, err := rod.NewFetcher(rod.WithTimeout(cli.Timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	} else {
		fetcher = eshttp.NewFetcher(eshttp.WithTimeout(cli.Timeout))
	}
	fetcher = esslog.NewLoggingFetcher(fetcher, logger)

	finder := execscout.NewNameFinder(esslog.NewLoggingClassifier(classifier, logger), logger)
	extractor := goquery.NewExtractor(finder, resolver,
		goquery.WithMaxDistance(cli.MaxDistance),
		goquery.WithLogger(logger),
	)

	scanner := &crawl.Scanner{
		Fetcher:     fetcher,
		Extractor:   esslog.NewLoggingExtractor(extractor, logger),
		RateLimiter: crawl.NewDomainLimiter(cli.RPS),
		Logger:      logger,
	}
	if cli.Robots {
		// robots.txt is fetched over plain HTTP even with --browser.
		robotsFetcher := esslog.NewLoggingFetcher(eshttp.NewFetcher(eshttp.WithTimeout(cli.Timeout)), logger)
		scanner.Robots = crawl.NewRobots(robotsFetcher, RobotsAgent)
		scanner.Robots.RateLimiter = scanner.RateLimiter
	}
	return scanner, fetcher.Close, nil
}

func newClassifier(ctx context.Context, cli *CLI, stderr io.Writer) (execscout.NameClassifier, error) {
	if cli.Classifier != "gemini" {
		c, err := prose.NewClassifier()
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	if cli.GeminiAPIKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cli.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	return gemini.NewClassifier(client, gemini.DefaultModel), nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "execscout.db"
	}
	dir := filepath.Join(home, ".execscout")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "execscout.db")
}
