package runner

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"loan-summary/internal/data"
	"loan-summary/internal/report"
)

// Result is the outcome of processing one input file.
type Result struct {
	RunID    string
	Input    string
	Output   string
	Rows     []report.SummaryRow
	Markdown string
	Err      error
}

// Runner turns loan export files into sibling report files. It holds no
// state across files; each input is an independent unit of work.
type Runner struct {
	// Suffix is appended to the input path to form the report path.
	Suffix string
}

func New(suffix string) *Runner {
	if suffix == "" {
		suffix = ".md"
	}
	return &Runner{Suffix: suffix}
}

// ProcessFile runs the full pipeline for one export: load, aggregate,
// format, render, write. The report is written atomically (temp file in the
// destination directory, renamed into place), so a failed run never leaves
// a partial report behind.
func (r *Runner) ProcessFile(path string) (*Result, error) {
	res := &Result{
		RunID:  uuid.NewString(),
		Input:  path,
		Output: path + r.Suffix,
	}

	records, err := data.LoadLoanCSV(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	rows, err := report.Aggregate(records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	res.Rows = rows
	res.Markdown = report.RenderMarkdown(report.Format(rows))

	if err := writeAtomic(res.Output, []byte(res.Markdown)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

// ProcessDir processes every file matching pattern under dir. A failing
// file is logged and recorded in its Result; the remaining files still run.
func (r *Runner) ProcessDir(dir, pattern string) ([]*Result, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}
	results := make([]*Result, 0, len(matches))
	for _, path := range matches {
		res, err := r.ProcessFile(path)
		if err != nil {
			log.Printf("runner: %v", err)
			results = append(results, &Result{Input: path, Err: err})
			continue
		}
		results = append(results, res)
	}
	return results, nil
}

func writeAtomic(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
