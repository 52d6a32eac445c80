package analytics

import (
	"sort"
	"time"

	"finsight/internal/core"
)

// TrendLength is the maximum number of distinct days in the trend series.
const TrendLength = 7

// TrendPoint is the end-of-day running balance for one calendar day of
// the active month.
type TrendPoint struct {
	Day     time.Time // midnight of the calendar day; zero for fallback points
	Balance core.Money
}

// PlotPoint is a trend value mapped into plot coordinates.
type PlotPoint struct {
	X float64
	Y float64
}

// Trend builds the balance trend series for the latest month in the set:
// transactions sorted ascending by date, a running signed balance, one
// end-of-day value per distinct calendar day, cut to the last TrendLength
// days in ascending order.
//
// An empty input yields a flat series of seven zero points, so callers
// always have something to plot.
func Trend(txs []core.Transaction) []TrendPoint {
	key, ok := core.LatestMonthKey(txs)
	if !ok {
		return make([]TrendPoint, TrendLength)
	}

	month := make([]core.Transaction, 0, len(txs))
	for _, tx := range txs {
		if core.MonthKeyOf(tx.Date) == key {
			month = append(month, tx)
		}
	}
	sort.SliceStable(month, func(i, j int) bool {
		return month[i].Date.Before(month[j].Date)
	})

	// Later transactions on the same day overwrite the recorded balance,
	// so each day keeps its end-of-day value.
	balances := make(map[string]int64)
	var days []string
	var running int64
	for _, tx := range month {
		running += tx.Amount.Cents
		day := tx.Date.Format("2006-01-02")
		if _, seen := balances[day]; !seen {
			days = append(days, day)
		}
		balances[day] = running
	}
	sort.Strings(days)

	if len(days) > TrendLength {
		days = days[len(days)-TrendLength:]
	}

	series := make([]TrendPoint, 0, len(days))
	for _, day := range days {
		when, _ := time.Parse("2006-01-02", day)
		series = append(series, TrendPoint{Day: when, Balance: core.Money{Cents: balances[day]}})
	}
	return series
}

// NormalizeTrend maps a trend series linearly into a width x height band.
// Points are evenly spaced horizontally; a single point is centered. A
// flat series (zero range) maps everything to the bottom of the band
// instead of dividing by zero.
func NormalizeTrend(series []TrendPoint, width, height float64) []PlotPoint {
	if len(series) == 0 {
		return nil
	}

	minV := series[0].Balance.Units()
	maxV := minV
	for _, p := range series[1:] {
		v := p.Balance.Units()
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	rng := maxV - minV
	if rng == 0 {
		rng = 1
	}

	step := 0.0
	if len(series) > 1 {
		step = width / float64(len(series)-1)
	}

	points := make([]PlotPoint, len(series))
	for i, p := range series {
		x := float64(i) * step
		if len(series) == 1 {
			x = width / 2
		}
		points[i] = PlotPoint{
			X: x,
			Y: (p.Balance.Units() - minV) / rng * height,
		}
	}
	return points
}
