package rentbook

import (
	"iter"
	"slices"
)

// DatedAmount couples a calendar date with a monetary amount, ready for
// bucketing.
type DatedAmount struct {
	Date   Date
	Amount Money
}

// SumByBucket groups dated amounts into calendar buckets of the given
// granularity and sums each bucket. The bucket key is the first day of the
// bucket (first of the month, or January 1st).
//
// The result is sparse: buckets with no input rows have no entry. Callers
// merging two such maps must treat a missing key as zero.
func SumByBucket(amounts iter.Seq[DatedAmount], period Period) map[Date]Money {
	buckets := make(map[Date]Money)
	for a := range amounts {
		key := a.Date.StartOf(period)
		buckets[key] = buckets[key].Add(a.Amount)
	}
	return buckets
}

// mergeKeys returns the sorted union of the keys of two sparse bucket maps.
func mergeKeys(a, b map[Date]Money) []Date {
	keys := make([]Date, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, seen := a[k]; !seen {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, Date.Compare)
	return keys
}
