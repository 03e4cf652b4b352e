package report

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	display := []DisplayRow{
		{Bucket: "A", TotalIssued: "$3,000", FullyPaid: "$1,000", Current: "$1,500", Late: "$0", ChargedOffNet: "$0", PrincipalPaymentsReceived: "$1,500", InterestPaymentsReceived: "$0", AvgInterestRate: "11.33%"},
		{Bucket: "All", TotalIssued: "$3,500", FullyPaid: "$1,000", Current: "$1,500", Late: "$0", ChargedOffNet: "$425", PrincipalPaymentsReceived: "$1,575", InterestPaymentsReceived: "$20", AvgInterestRate: "12.57%"},
	}

	out := RenderMarkdown(display)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + separator + 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "| Grade | Total Issued |") {
		t.Fatalf("unexpected header line: %s", lines[0])
	}
	if !strings.Contains(lines[0], "| Avg. Interest Rate |") {
		t.Fatalf("missing rate column in header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "|:---|---:|") {
		t.Fatalf("unexpected separator line: %s", lines[1])
	}
	if !strings.HasPrefix(lines[2], "| A | $3,000 |") {
		t.Fatalf("unexpected first data row: %s", lines[2])
	}
	if !strings.HasPrefix(lines[3], "| All |") {
		t.Fatalf("All row must come last: %s", lines[3])
	}
	if !strings.HasSuffix(lines[3], "| 12.57% |") {
		t.Fatalf("unexpected All row tail: %s", lines[3])
	}
}

func TestRenderMarkdownEmptyTable(t *testing.T) {
	out := RenderMarkdown(nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + separator only, got %d lines", len(lines))
	}
}
