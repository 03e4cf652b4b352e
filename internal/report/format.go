package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DisplayRow is a SummaryRow with every numeric column rendered for output.
type DisplayRow struct {
	Bucket                    string `json:"bucket"`
	TotalIssued               string `json:"total_issued"`
	FullyPaid                 string `json:"fully_paid"`
	Current                   string `json:"current"`
	Late                      string `json:"late"`
	ChargedOffNet             string `json:"charged_off_net"`
	PrincipalPaymentsReceived string `json:"principal_payments_received"`
	InterestPaymentsReceived  string `json:"interest_payments_received"`
	AvgInterestRate           string `json:"avg_interest_rate"`
}

// Format renders the dollar columns as whole-dollar currency strings and the
// average rate as a two-decimal percentage. Row order is preserved.
func Format(rows []SummaryRow) []DisplayRow {
	out := make([]DisplayRow, len(rows))
	for i, r := range rows {
		out[i] = DisplayRow{
			Bucket:                    r.Bucket,
			TotalIssued:               Currency(r.TotalIssued),
			FullyPaid:                 Currency(r.FullyPaid),
			Current:                   Currency(r.Current),
			Late:                      Currency(r.Late),
			ChargedOffNet:             Currency(r.ChargedOffNet),
			PrincipalPaymentsReceived: Currency(r.PrincipalPaymentsReceived),
			InterestPaymentsReceived:  Currency(r.InterestPaymentsReceived),
			AvgInterestRate:           Percent(r.AvgInterestRate),
		}
	}
	return out
}

// Currency formats a dollar amount with thousands separators and no cents,
// e.g. 1234567.4 -> "$1,234,567". Rounding is half away from zero.
func Currency(v float64) string {
	rounded := math.Round(v)
	neg := rounded < 0
	// Abs also clears the sign of a negative zero, which would otherwise
	// render as "$-0".
	rounded = math.Abs(rounded)
	var b strings.Builder
	b.WriteByte('$')
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(groupThousands(strconv.FormatFloat(rounded, 'f', 0, 64)))
	return b.String()
}

// Percent formats a fraction as a percentage with two decimals,
// e.g. 0.1325 -> "13.25%".
func Percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
