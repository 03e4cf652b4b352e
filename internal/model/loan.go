package model

import "strings"

// Bucket labels for the summary report. Grades F and G carry too few loans
// to report separately, so they pool into a single FG bucket. The All row
// is always appended after the per-grade rows.
const (
	BucketFG  = "FG"
	BucketAll = "All"
)

// Loan statuses as they appear in origination/performance exports.
// Keep these values stable; matching is against the export's free text,
// and late loans carry variants like "Late (16-30 days)".
const (
	StatusFullyPaid     = "Fully Paid"
	StatusCurrent       = "Current"
	StatusInGracePeriod = "In Grace Period"
	StatusChargedOff    = "Charged Off"
	StatusDefault       = "Default"
)

// LoanRecord is one row of a loan-level export.
type LoanRecord struct {
	// Grade is the credit grade (A-G). A record with an empty grade is
	// dropped before any aggregation happens.
	Grade string

	// LoanAmount is the original principal in dollars.
	LoanAmount float64

	// Status is the loan's current state, e.g. "Fully Paid" or
	// "Late (31-120 days)".
	Status string

	// OutstandingPrincipal is the remaining unpaid principal balance.
	OutstandingPrincipal float64

	// TotalPayments is the total received across principal, interest and fees.
	TotalPayments float64

	// TotalInterest is the interest portion of payments received.
	TotalInterest float64

	// TotalLateFees is the late-fee portion of payments received.
	TotalLateFees float64

	// InterestRate is the raw percentage string from the export, e.g.
	// "13.5%". The aggregator parses it after grade-less rows are dropped,
	// so a malformed rate on a dropped row is not an error.
	InterestRate string
}

// BucketFor maps a credit grade to its report bucket.
func BucketFor(grade string) string {
	if grade == "F" || grade == "G" {
		return BucketFG
	}
	return grade
}

// IsFullyPaid reports whether the loan has been repaid in full.
func IsFullyPaid(status string) bool {
	return status == StatusFullyPaid
}

// IsCurrent reports whether the loan is performing. Grace-period loans
// count as current.
func IsCurrent(status string) bool {
	return status == StatusCurrent || status == StatusInGracePeriod
}

// IsLate reports whether the loan is behind on payments. This is a
// substring match on purpose: the export encodes lateness windows inside
// the status text. "Default" counts as late rather than charged off.
func IsLate(status string) bool {
	return strings.Contains(status, "Late") || status == StatusDefault
}

// IsChargedOff reports whether the loan has been written off.
func IsChargedOff(status string) bool {
	return status == StatusChargedOff
}
