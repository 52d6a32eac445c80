package core

import "time"

// MonthKey is a "YYYY-MM" grouping key. The format is fixed-width and
// zero-padded, so lexicographic order equals chronological order; any
// formatter feeding keys into comparisons must preserve the padding.
type MonthKey string

// MonthKeyOf derives the key for a transaction date.
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey(t.Format("2006-01"))
}

// Time returns the first day of the key's month, midnight UTC.
// The second result is false for malformed keys.
func (k MonthKey) Time() (time.Time, bool) {
	t, err := time.Parse("2006-01", string(k))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// LatestMonthKey returns the lexicographically greatest month key present
// in the set, which is the chronologically latest. The second result is
// false for an empty input.
func LatestMonthKey(txs []Transaction) (MonthKey, bool) {
	var latest MonthKey
	found := false
	for _, tx := range txs {
		key := MonthKeyOf(tx.Date)
		if !found || key > latest {
			latest = key
			found = true
		}
	}
	return latest, found
}
