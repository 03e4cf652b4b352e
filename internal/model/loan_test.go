package model

import "testing"

func TestBucketFor(t *testing.T) {
	cases := []struct {
		grade string
		want  string
	}{
		{grade: "A", want: "A"},
		{grade: "E", want: "E"},
		{grade: "F", want: "FG"},
		{grade: "G", want: "FG"},
	}
	for _, tc := range cases {
		if got := BucketFor(tc.grade); got != tc.want {
			t.Fatalf("BucketFor(%q): expected %q, got %q", tc.grade, tc.want, got)
		}
	}
}

func TestStatusPredicates(t *testing.T) {
	if !IsFullyPaid("Fully Paid") {
		t.Fatal("Fully Paid should be fully paid")
	}
	if !IsCurrent("Current") || !IsCurrent("In Grace Period") {
		t.Fatal("Current and In Grace Period should both be current")
	}
	if !IsLate("Late (16-30 days)") || !IsLate("Late (31-120 days)") {
		t.Fatal("late statuses are matched by substring")
	}
	if !IsLate("Default") {
		t.Fatal("Default counts as late")
	}
	if IsLate("Charged Off") {
		t.Fatal("Charged Off is not late")
	}
	if !IsChargedOff("Charged Off") {
		t.Fatal("Charged Off should be charged off")
	}
	if IsCurrent("Fully Paid") || IsFullyPaid("Current") {
		t.Fatal("predicates must not overlap across statuses")
	}
}
