package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/execscout"
	"github.com/fwojciec/execscout/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Runs    execscout.RunService
	Loader  execscout.GroundTruthLoader
	Scanner *crawl.Scanner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB           string        `name:"db" env:"EXECSCOUT_DB" help:"Database path (default ~/.execscout/execscout.db)"`
	SerpAPIKey   string        `name:"serpapi-key" env:"SERPAPI_API_KEY" help:"SerpAPI key for profile lookups"`
	GeminiAPIKey string        `name:"gemini-key" env:"GEMINI_API_KEY" help:"Gemini API key for the gemini classifier"`
	Timeout      time.Duration `default:"10s" help:"Per-request timeout for page fetches and profile lookups"`
	RPS          float64       `name:"rps" default:"1" help:"Requests per second per site (0 disables limiting)"`
	MaxDistance  int           `default:"4" help:"Ancestor levels searched for a name near a title"`
	Classifier   string        `enum:"prose,gemini" default:"prose" help:"Name classifier (prose, gemini)"`
	Browser      bool          `help:"Fetch pages with a headless browser"`
	Robots       bool          `help:"Skip pages disallowed by robots.txt"`
	Verbose      bool          `short:"v" help:"Log debug output to stderr"`

	Scan     ScanCmd     `cmd:"" help:"Scan one company website for executives"`
	Bulk     BulkCmd     `cmd:"" help:"Scan companies from a dataset and evaluate the results"`
	Runs     RunsCmd     `cmd:"" help:"List stored runs"`
	Show     ShowCmd     `cmd:"" help:"Show the records of a stored run"`
	Evaluate EvaluateCmd `cmd:"" help:"Evaluate a stored run against a dataset"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a stored run"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	URL     string `arg:"" help:"Company website URL or domain"`
	Company string `arg:"" help:"Company name"`
	NoSave  bool   `help:"Do not store the run"`
}

// BulkCmd is the "bulk" subcommand.
type BulkCmd struct {
	Dataset string `arg:"" optional:"" default:"dataset.csv" help:"Ground truth CSV file"`
	Limit   int    `short:"n" default:"10" help:"Number of dataset rows to scan (at most 50)"`
	NoSave  bool   `help:"Do not store the run"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Mode  string `help:"Only list runs of this mode (scan, bulk)"`
	Limit int    `short:"n" default:"20" help:"Maximum number of runs to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Run ID"`
}

// EvaluateCmd is the "evaluate" subcommand.
type EvaluateCmd struct {
	ID      string `arg:"" help:"Run ID"`
	Dataset string `arg:"" help:"Ground truth CSV file"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Run ID"`
	Force bool   `help:"Confirm deletion"`
}
