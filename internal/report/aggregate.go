package report

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"loan-summary/internal/model"
)

// SummaryRow holds the derived metrics for one grade bucket. Dollar fields
// are plain dollars; AvgInterestRate is a fraction (0.1325 means 13.25%).
type SummaryRow struct {
	Bucket                    string  `json:"bucket"`
	TotalIssued               float64 `json:"total_issued"`
	FullyPaid                 float64 `json:"fully_paid"`
	Current                   float64 `json:"current"`
	Late                      float64 `json:"late"`
	ChargedOffNet             float64 `json:"charged_off_net"`
	PrincipalPaymentsReceived float64 `json:"principal_payments_received"`
	InterestPaymentsReceived  float64 `json:"interest_payments_received"`
	AvgInterestRate           float64 `json:"avg_interest_rate"`
}

type bucketAcc struct {
	row       SummaryRow
	rateNumer float64
}

// Aggregate groups loan records by grade bucket and computes the summary
// table. Buckets are sorted by label with the All row appended last. Only
// buckets present in the data appear; empty rows are never fabricated.
//
// Records without a grade are dropped before anything else, including
// interest rate parsing. When a bucket (or the whole table) has no issued
// principal the average rate is reported as 0.
func Aggregate(records []model.LoanRecord) ([]SummaryRow, error) {
	filtered := make([]model.LoanRecord, 0, len(records))
	for _, rec := range records {
		if strings.TrimSpace(rec.Grade) == "" {
			continue
		}
		filtered = append(filtered, rec)
	}

	rates := make([]float64, len(filtered))
	for i, rec := range filtered {
		rate, err := ParsePercent(rec.InterestRate)
		if err != nil {
			return nil, err
		}
		rates[i] = rate
	}

	buckets := map[string]*bucketAcc{}
	labels := []string{}
	for i, rec := range filtered {
		label := model.BucketFor(rec.Grade)
		acc, ok := buckets[label]
		if !ok {
			acc = &bucketAcc{row: SummaryRow{Bucket: label}}
			buckets[label] = acc
			labels = append(labels, label)
		}

		acc.row.TotalIssued += rec.LoanAmount
		if model.IsFullyPaid(rec.Status) {
			acc.row.FullyPaid += rec.LoanAmount
		}
		if model.IsCurrent(rec.Status) {
			acc.row.Current += rec.OutstandingPrincipal
		}
		if model.IsLate(rec.Status) {
			acc.row.Late += rec.OutstandingPrincipal
		}
		if model.IsChargedOff(rec.Status) {
			// Interest and fee payments do not reduce principal, so they are
			// added back when computing the unrecovered balance.
			acc.row.ChargedOffNet += rec.LoanAmount - rec.TotalPayments + rec.TotalInterest + rec.TotalLateFees
		}
		acc.row.InterestPaymentsReceived += rec.TotalInterest
		acc.rateNumer += rates[i] * rec.LoanAmount
	}

	sort.Strings(labels)

	all := SummaryRow{Bucket: model.BucketAll}
	allRateNumer := 0.0

	rows := make([]SummaryRow, 0, len(labels)+1)
	for _, label := range labels {
		acc := buckets[label]
		row := acc.row
		// Derived from the already-computed columns, never summed from a
		// filtered subset: this forces the principal-affecting columns to
		// close exactly against TotalIssued.
		row.PrincipalPaymentsReceived = row.TotalIssued - row.Current - row.Late - row.ChargedOffNet
		row.AvgInterestRate = weightedRate(acc.rateNumer, row.TotalIssued)
		rows = append(rows, row)

		all.TotalIssued += row.TotalIssued
		all.FullyPaid += row.FullyPaid
		all.Current += row.Current
		all.Late += row.Late
		all.ChargedOffNet += row.ChargedOffNet
		all.PrincipalPaymentsReceived += row.PrincipalPaymentsReceived
		all.InterestPaymentsReceived += row.InterestPaymentsReceived
		allRateNumer += acc.rateNumer
	}

	// The All rate is recomputed over the full record set. Averaging the
	// per-bucket rates would lose the principal weighting across buckets.
	all.AvgInterestRate = weightedRate(allRateNumer, all.TotalIssued)
	rows = append(rows, all)

	return rows, nil
}

func weightedRate(numer, totalAmount float64) float64 {
	if totalAmount == 0 {
		return 0
	}
	return numer / totalAmount
}

// ParsePercent converts a percentage string such as "13.5%" to a fraction
// (0.135). The percent sign is optional; a value that does not parse as a
// number is a ParseError.
func ParsePercent(s string) (float64, error) {
	trimmed := strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "%"))
	if trimmed == "" {
		return 0, &ParseError{Field: "int_rate", Value: s, Err: errors.New("empty value")}
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, &ParseError{Field: "int_rate", Value: s, Err: err}
	}
	return v / 100, nil
}
