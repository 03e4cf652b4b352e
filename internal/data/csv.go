package data

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"loan-summary/internal/model"
	"loan-summary/internal/report"
)

// requiredColumns are resolved by name from the header row, so column order
// and extra columns in the export do not matter.
var requiredColumns = []string{
	"grade",
	"loan_amnt",
	"loan_status",
	"out_prncp",
	"total_pymnt",
	"total_rec_int",
	"total_rec_late_fee",
	"int_rate",
}

// LoadLoanCSV reads a loan-level export from disk. The file handle is
// released as soon as parsing finishes.
func LoadLoanCSV(path string) ([]model.LoanRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLoanCSV(f)
}

// ReadLoanCSV parses a loan-level export. Exports carry a single metadata
// line above the header row; it is skipped before the header is read.
// Blank numeric cells read as zero; the interest rate is kept as its raw
// string for the aggregator to parse.
func ReadLoanCSV(r io.Reader) ([]model.LoanRecord, error) {
	br := bufio.NewReader(r)
	if _, err := br.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("skip preamble: %w", err)
	}

	reader := csv.NewReader(br)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for idx, name := range header {
		name = strings.TrimSpace(name)
		if _, ok := cols[name]; !ok {
			cols[name] = idx
		}
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, &report.MissingColumnError{Column: name}
		}
	}

	var records []model.LoanRecord
	for {
		row, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read record: %w", err)
		}
		if len(row) == 0 {
			continue
		}

		rec := model.LoanRecord{
			Grade:        field(row, cols["grade"]),
			Status:       field(row, cols["loan_status"]),
			InterestRate: field(row, cols["int_rate"]),
		}
		if rec.LoanAmount, err = amount(row, cols, "loan_amnt"); err != nil {
			return nil, err
		}
		if rec.OutstandingPrincipal, err = amount(row, cols, "out_prncp"); err != nil {
			return nil, err
		}
		if rec.TotalPayments, err = amount(row, cols, "total_pymnt"); err != nil {
			return nil, err
		}
		if rec.TotalInterest, err = amount(row, cols, "total_rec_int"); err != nil {
			return nil, err
		}
		if rec.TotalLateFees, err = amount(row, cols, "total_rec_late_fee"); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func field(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func amount(row []string, cols map[string]int, name string) (float64, error) {
	raw := field(row, cols[name])
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &report.ParseError{Field: name, Value: raw, Err: err}
	}
	return v, nil
}
