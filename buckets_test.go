package rentbook

import (
	"slices"
	"testing"
)

func amountsOf(pairs ...DatedAmount) func(yield func(DatedAmount) bool) {
	return func(yield func(DatedAmount) bool) {
		for _, p := range pairs {
			if !yield(p) {
				return
			}
		}
	}
}

func TestSumByBucket_Monthly(t *testing.T) {
	got := SumByBucket(amountsOf(
		DatedAmount{MustParseDate("2024-01-05"), M(100)},
		DatedAmount{MustParseDate("2024-01-20"), M(50)},
		DatedAmount{MustParseDate("2024-03-01"), M(25)},
	), Monthly)

	if len(got) != 2 {
		t.Fatalf("got %d buckets, want 2 (sparse: no entry for February)", len(got))
	}
	wantMoney(t, "january", got[MustParseDate("2024-01-01")], 150)
	wantMoney(t, "march", got[MustParseDate("2024-03-01")], 25)
	if _, ok := got[MustParseDate("2024-02-01")]; ok {
		t.Error("February has no input rows and must have no bucket")
	}
}

func TestSumByBucket_Yearly(t *testing.T) {
	got := SumByBucket(amountsOf(
		DatedAmount{MustParseDate("2023-06-15"), M(1200)},
		DatedAmount{MustParseDate("2023-12-31"), M(800)},
		DatedAmount{MustParseDate("2025-01-01"), M(10)},
	), Yearly)

	if len(got) != 2 {
		t.Fatalf("got %d buckets, want 2", len(got))
	}
	wantMoney(t, "2023", got[MustParseDate("2023-01-01")], 2000)
	wantMoney(t, "2025", got[MustParseDate("2025-01-01")], 10)
}

func TestSumByBucket_Empty(t *testing.T) {
	if got := SumByBucket(amountsOf(), Monthly); len(got) != 0 {
		t.Errorf("empty input must produce an empty map, got %v", got)
	}
}

func TestMergeKeys(t *testing.T) {
	a := map[Date]Money{
		MustParseDate("2024-03-01"): M(1),
		MustParseDate("2024-01-01"): M(1),
	}
	b := map[Date]Money{
		MustParseDate("2024-03-01"): M(2), // shared key appears once
		MustParseDate("2024-02-01"): M(2),
	}
	got := mergeKeys(a, b)
	want := []Date{
		MustParseDate("2024-01-01"),
		MustParseDate("2024-02-01"),
		MustParseDate("2024-03-01"),
	}
	if !slices.Equal(got, want) {
		t.Errorf("mergeKeys = %v, want %v", got, want)
	}
}
