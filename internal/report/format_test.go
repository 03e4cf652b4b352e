package report

import "testing"

func TestCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{in: 1234567.4, want: "$1,234,567"},
		{in: 0, want: "$0"},
		{in: 999, want: "$999"},
		{in: 999.49, want: "$999"},
		{in: 999.5, want: "$1,000"},
		{in: 1000, want: "$1,000"},
		{in: 1000000, want: "$1,000,000"},
		{in: -1234.6, want: "$-1,235"},
		{in: -0.4, want: "$0"},
		{in: 75, want: "$75"},
	}

	for _, tc := range cases {
		if got := Currency(tc.in); got != tc.want {
			t.Fatalf("Currency(%v): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{in: 0.1325, want: "13.25%"},
		{in: 0.20, want: "20.00%"},
		{in: 0, want: "0.00%"},
		{in: 340.0 / 3000.0, want: "11.33%"},
	}

	for _, tc := range cases {
		if got := Percent(tc.in); got != tc.want {
			t.Fatalf("Percent(%v): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestFormatPreservesRowOrder(t *testing.T) {
	rows := []SummaryRow{
		{Bucket: "A", TotalIssued: 3000, FullyPaid: 1000, Current: 1500, PrincipalPaymentsReceived: 1500, AvgInterestRate: 340.0 / 3000.0},
		{Bucket: "All", TotalIssued: 3500, Current: 1500, ChargedOffNet: 425, PrincipalPaymentsReceived: 1575, AvgInterestRate: 440.0 / 3500.0},
	}

	display := Format(rows)
	if len(display) != 2 {
		t.Fatalf("expected 2 display rows, got %d", len(display))
	}
	if display[0].Bucket != "A" || display[1].Bucket != "All" {
		t.Fatalf("row order changed: %s, %s", display[0].Bucket, display[1].Bucket)
	}
	if display[0].TotalIssued != "$3,000" {
		t.Fatalf("A total issued: expected $3,000, got %s", display[0].TotalIssued)
	}
	if display[0].AvgInterestRate != "11.33%" {
		t.Fatalf("A avg rate: expected 11.33%%, got %s", display[0].AvgInterestRate)
	}
	if display[1].ChargedOffNet != "$425" {
		t.Fatalf("All charged off: expected $425, got %s", display[1].ChargedOffNet)
	}
	if display[1].AvgInterestRate != "12.57%" {
		t.Fatalf("All avg rate: expected 12.57%%, got %s", display[1].AvgInterestRate)
	}
}
