package report

import "strings"

// Columns are the rendered report headers, in output order. Keep these
// stable; downstream consumers key off the header text.
var Columns = []string{
	"Grade",
	"Total Issued",
	"Fully Paid",
	"Current",
	"Late",
	"Charged Off (Net)",
	"Principal Payments Received",
	"Interest Payments Received",
	"Avg. Interest Rate",
}

// RenderMarkdown renders display rows as a pipe table. Numeric columns are
// right-aligned. The function is pure; writing the result anywhere is the
// caller's business.
func RenderMarkdown(rows []DisplayRow) string {
	var b strings.Builder
	b.WriteString("| ")
	b.WriteString(strings.Join(Columns, " | "))
	b.WriteString(" |\n")

	b.WriteString("|:---|")
	for range Columns[1:] {
		b.WriteString("---:|")
	}
	b.WriteByte('\n')

	for _, r := range rows {
		cells := []string{
			r.Bucket,
			r.TotalIssued,
			r.FullyPaid,
			r.Current,
			r.Late,
			r.ChargedOffNet,
			r.PrincipalPaymentsReceived,
			r.InterestPaymentsReceived,
			r.AvgInterestRate,
		}
		b.WriteString("| ")
		b.WriteString(strings.Join(cells, " | "))
		b.WriteString(" |\n")
	}
	return b.String()
}
