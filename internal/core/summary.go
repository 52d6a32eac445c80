package core

import "sort"

// MonthSummary holds the separate income and expense totals for one month.
// Expense is stored as a positive total; Net = Income - Expense.
type MonthSummary struct {
	Month   MonthKey
	Income  Money
	Expense Money
	Net     Money
}

// CategoryGroup is the aggregated expense total for one category within a
// month.
type CategoryGroup struct {
	Name  string
	Total Money
}

// SummarizeMonth sums income and expense separately over the transactions
// belonging to the given month. Income and expense are never netted per
// transaction, so both totals stay meaningful on their own.
func SummarizeMonth(txs []Transaction, key MonthKey) MonthSummary {
	s := MonthSummary{Month: key}
	for _, tx := range txs {
		if MonthKeyOf(tx.Date) != key {
			continue
		}
		if tx.IsExpense() {
			s.Expense.Cents += -tx.Amount.Cents
		} else {
			s.Income.Cents += tx.Amount.Cents
		}
	}
	s.Net.Cents = s.Income.Cents - s.Expense.Cents
	return s
}

// SummarizeLatest summarizes the latest month present in the set.
// The second result is false when no month key is resolvable (empty input).
func SummarizeLatest(txs []Transaction) (MonthSummary, bool) {
	key, ok := LatestMonthKey(txs)
	if !ok {
		return MonthSummary{}, false
	}
	return SummarizeMonth(txs, key), true
}

// GroupExpensesByCategory aggregates absolute expense totals per category
// for the given month, sorted by descending total. Transactions without a
// category land in the CategoryOther bucket.
//
// Ties keep the order categories were first seen in the input; the
// tie-break is deliberately unspecified beyond being stable.
func GroupExpensesByCategory(txs []Transaction, key MonthKey) []CategoryGroup {
	totals := make(map[string]int64)
	var order []string

	for _, tx := range txs {
		if MonthKeyOf(tx.Date) != key || !tx.IsExpense() {
			continue
		}
		name := tx.CategoryName()
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] += -tx.Amount.Cents
	}

	groups := make([]CategoryGroup, 0, len(order))
	for _, name := range order {
		groups = append(groups, CategoryGroup{Name: name, Total: Money{Cents: totals[name]}})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Total.Cents > groups[j].Total.Cents
	})
	return groups
}

// GroupExpensesLatest groups expenses for the latest month in the set.
// Returns an empty slice for empty input.
func GroupExpensesLatest(txs []Transaction) []CategoryGroup {
	key, ok := LatestMonthKey(txs)
	if !ok {
		return []CategoryGroup{}
	}
	return GroupExpensesByCategory(txs, key)
}
