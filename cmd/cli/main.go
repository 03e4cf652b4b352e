package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"loan-summary/internal/config"
	"loan-summary/internal/runner"
	"loan-summary/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "report":
		cmdReport(os.Args[2:])
	case "batch":
		cmdBatch(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli report --input data/loans.csv [--suffix .md] [--db]")
	fmt.Println("  cli batch [--config config.yaml] [--dir data] [--pattern '*.csv'] [--db]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - report writes a grade-bucketed summary table next to the input file")
	fmt.Println("  - batch processes every matching export; one bad file does not stop the rest")
	fmt.Println("  - --db stores runs in Postgres via LOAN_SUMMARY_DB_URL or DATABASE_URL")
}

func cmdReport(args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	input := fs.String("input", "", "Path to loan export CSV")
	suffix := fs.String("suffix", ".md", "Suffix appended to the input path for the report")
	useDB := fs.Bool("db", false, "Store the run in Postgres")
	dbSchema := fs.String("db-schema", "loan_summary", "Postgres schema for report tables")
	dbTag := fs.String("db-tag", "", "Optional label for this run")
	_ = fs.Parse(args)

	if *input == "" {
		fmt.Println("--input is required")
		os.Exit(2)
	}

	r := runner.New(*suffix)
	res, err := r.ProcessFile(*input)
	if err != nil {
		exitWithError(err)
	}
	fmt.Printf("Wrote %s (%d grade buckets + All)\n", res.Output, len(res.Rows)-1)

	if *useDB {
		persistRun(res, *dbSchema, *dbTag)
	}
}

func cmdBatch(args []string) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	dir := fs.String("dir", "", "Directory to scan (overrides config)")
	pattern := fs.String("pattern", "", "Glob pattern (overrides config)")
	suffix := fs.String("suffix", "", "Report suffix (overrides config)")
	useDB := fs.Bool("db", false, "Store each run in Postgres")
	dbTag := fs.String("db-tag", "", "Optional label for these runs")
	_ = fs.Parse(args)

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			exitWithError(err)
		}
		cfg = loaded
	}
	if *dir != "" {
		cfg.Input.Dir = *dir
	}
	if *pattern != "" {
		cfg.Input.Pattern = *pattern
	}
	if *suffix != "" {
		cfg.Output.Suffix = *suffix
	}
	if *dbTag != "" {
		cfg.Database.Tag = *dbTag
	}

	r := runner.New(cfg.Output.Suffix)
	results, err := r.ProcessDir(cfg.Input.Dir, cfg.Input.Pattern)
	if err != nil {
		exitWithError(err)
	}
	if len(results) == 0 {
		fmt.Printf("No files matching %s in %s\n", cfg.Input.Pattern, cfg.Input.Dir)
		return
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Printf("FAILED %s: %v\n", res.Input, res.Err)
			continue
		}
		fmt.Printf("Wrote %s (%d grade buckets + All)\n", res.Output, len(res.Rows)-1)
		if *useDB {
			persistRun(res, cfg.Database.Schema, cfg.Database.Tag)
		}
	}
	fmt.Printf("Processed %d files, %d failed\n", len(results), failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func persistRun(res *runner.Result, schema, tag string) {
	dbURL := dbURLFromEnv()
	if dbURL == "" {
		exitWithError(fmt.Errorf("database URL missing; set LOAN_SUMMARY_DB_URL or DATABASE_URL"))
	}
	runID, err := store.StoreRun(res.Input, res.Rows, store.Config{
		URL:    dbURL,
		Schema: schema,
		Tag:    tag,
	})
	if err != nil {
		exitWithError(err)
	}
	fmt.Printf("Stored run in Postgres (run_id=%s)\n", runID)
}

func dbURLFromEnv() string {
	if value := strings.TrimSpace(os.Getenv("LOAN_SUMMARY_DB_URL")); value != "" {
		return value
	}
	return strings.TrimSpace(os.Getenv("DATABASE_URL"))
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
