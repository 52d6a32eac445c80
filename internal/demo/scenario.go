// Package demo generates a deterministic two-month, two-account ledger
// used when the service runs without a real data backend. Three presets
// model different spending temperaments; amounts are whole currency
// units expressed in cents.
package demo

import (
	"fmt"
	"math"
	"time"

	"finsight/internal/core"
)

// Preset names accepted by FromName.
const (
	ScenarioBaseline = "baseline"
	ScenarioSaving   = "saving"
	ScenarioParty    = "party"
)

// Scenario parameterizes the generated ledger. All monetary fields are
// cents; FunMultiplier scales discretionary spending (entertainment,
// fast food, bars) and rounds to whole units.
type Scenario struct {
	MainSalaryOct int64
	MainSalaryNov int64
	ExtraOct      int64
	ExtraNov      int64

	Rent int64

	GroceriesBig   int64
	GroceriesSmall int64
	GroceriesDaily int64

	TransportPass     int64
	TransportTaxiMain int64
	TransportTaxiDay  int64

	EntertainmentMain  int64
	EntertainmentSmall int64
	EntertainmentDaily int64

	SubsInternet int64
	SubsMusic    int64

	SavingsOct int64
	SavingsNov int64

	DailyCoffee   int64
	DailyFastfood int64
	DailyGift     int64

	FunMultiplier float64
}

func Baseline() Scenario {
	return Scenario{
		MainSalaryOct: 190000, MainSalaryNov: 150000,
		ExtraOct: 25000, ExtraNov: 15000,
		Rent:           60000,
		GroceriesBig:   14000, GroceriesSmall: 9000, GroceriesDaily: 3500,
		TransportPass:  2500, TransportTaxiMain: 3000, TransportTaxiDay: 1800,
		EntertainmentMain: 8000, EntertainmentSmall: 6000, EntertainmentDaily: 4500,
		SubsInternet: 2500, SubsMusic: 2500,
		SavingsOct: 20000, SavingsNov: 25000,
		DailyCoffee: 900, DailyFastfood: 2400, DailyGift: 6000,
		FunMultiplier: 1,
	}
}

func Saving() Scenario {
	return Scenario{
		MainSalaryOct: 180000, MainSalaryNov: 180000,
		ExtraOct: 20000, ExtraNov: 10000,
		Rent:           60000,
		GroceriesBig:   12000, GroceriesSmall: 8000, GroceriesDaily: 3000,
		TransportPass:  2500, TransportTaxiMain: 2000, TransportTaxiDay: 1200,
		EntertainmentMain: 5000, EntertainmentSmall: 3000, EntertainmentDaily: 2000,
		SubsInternet: 2500, SubsMusic: 2000,
		SavingsOct: 25000, SavingsNov: 30000,
		DailyCoffee: 600, DailyFastfood: 1800, DailyGift: 4000,
		FunMultiplier: 0.6,
	}
}

func Party() Scenario {
	return Scenario{
		MainSalaryOct: 180000, MainSalaryNov: 180000,
		ExtraOct: 30000, ExtraNov: 20000,
		Rent:           60000,
		GroceriesBig:   16000, GroceriesSmall: 11000, GroceriesDaily: 4500,
		TransportPass:  3000, TransportTaxiMain: 4000, TransportTaxiDay: 2500,
		EntertainmentMain: 12000, EntertainmentSmall: 9000, EntertainmentDaily: 7000,
		SubsInternet: 3000, SubsMusic: 3000,
		SavingsOct: 15000, SavingsNov: 18000,
		DailyCoffee: 1200, DailyFastfood: 3000, DailyGift: 8000,
		FunMultiplier: 1.5,
	}
}

// FromName resolves a preset by name. Unknown names fall back to the
// baseline preset so a typo in configuration still boots the demo.
func FromName(name string) Scenario {
	switch name {
	case ScenarioSaving:
		return Saving()
	case ScenarioParty:
		return Party()
	default:
		return Baseline()
	}
}

// fun scales a discretionary amount and rounds to whole currency units.
func (s Scenario) fun(cents int64) int64 {
	return int64(math.Round(float64(cents)/100*s.FunMultiplier)) * 100
}

// Accounts returns the demo account set.
func Accounts() []core.Account {
	return []core.Account{
		{ID: "main", Name: "Main Account"},
		{ID: "daily", Name: "Everyday Card"},
	}
}

// Generate returns the full demo ledger for October and November 2025,
// in the given time zone. Output is deterministic for a given scenario.
func Generate(s Scenario, loc *time.Location) []core.Transaction {
	if loc == nil {
		loc = time.UTC
	}
	at := func(year int, month time.Month, day, hour, min int) time.Time {
		return time.Date(year, month, day, hour, min, 0, 0, loc)
	}
	accounts := Accounts()
	main, daily := accounts[0], accounts[1]

	type rec struct {
		acc   core.Account
		slug  string
		date  time.Time
		cents int64
		cat   string
		desc  string
	}
	recs := []rec{
		// Main account, October.
		{main, "salary", at(2025, 10, 1, 9, 15), s.MainSalaryOct, "Salary", "September salary"},
		{main, "freelance", at(2025, 10, 5, 18, 20), s.ExtraOct, "Freelance", "Website project"},
		{main, "rent", at(2025, 10, 7, 10, 0), -s.Rent, "Rent", "Apartment payment"},
		{main, "groceries-1", at(2025, 10, 8, 19, 12), -s.GroceriesSmall, "Groceries", "Supermarket"},
		{main, "groceries-2", at(2025, 10, 10, 20, 5), -s.GroceriesBig, "Groceries", "Weekly groceries"},
		{main, "transport", at(2025, 10, 12, 8, 30), -s.TransportPass, "Transport", "Monthly pass"},
		{main, "internet", at(2025, 10, 15, 13, 15), -s.SubsInternet, "Subscriptions", "Internet and mobile"},
		{main, "entertainment", at(2025, 10, 18, 21, 10), -s.fun(s.EntertainmentSmall), "Entertainment", "Bowling with friends"},
		{main, "savings", at(2025, 10, 25, 9, 45), -s.SavingsOct, "Savings", "Transfer to savings account"},
		// Main account, November.
		{main, "salary", at(2025, 11, 1, 9, 10), s.MainSalaryNov, "Salary", "October salary"},
		{main, "scholarship", at(2025, 11, 3, 12, 0), s.ExtraNov, "Scholarship", "Study scholarship"},
		{main, "rent", at(2025, 11, 4, 10, 5), -s.Rent, "Rent", "Apartment payment"},
		{main, "groceries-1", at(2025, 11, 6, 18, 23), -s.GroceriesBig, "Groceries", "Bravo supermarket"},
		{main, "groceries-2", at(2025, 11, 9, 19, 40), -s.GroceriesSmall, "Groceries", "Weekend groceries"},
		{main, "transport", at(2025, 11, 10, 8, 35), -s.TransportTaxiMain, "Transport", "Taxi to the university"},
		{main, "health", at(2025, 11, 13, 16, 20), -7000, "Health", "Pharmacy and vitamins"},
		{main, "entertainment", at(2025, 11, 17, 20, 45), -s.fun(s.EntertainmentMain), "Entertainment", "Movie and popcorn"},
		{main, "subscription", at(2025, 11, 20, 9, 0), -s.SubsMusic, "Subscriptions", "Music service"},
		{main, "cash", at(2025, 11, 22, 14, 30), -10000, "Cash", "ATM withdrawal"},
		{main, "savings", at(2025, 11, 26, 10, 0), -s.SavingsNov, "Savings", "Savings account top-up"},
		// Everyday card, October.
		{daily, "coffee", at(2025, 10, 2, 9, 5), -s.DailyCoffee, "Coffee & Snacks", "Coffee on the way to class"},
		{daily, "taxi", at(2025, 10, 3, 22, 10), -s.TransportTaxiDay, "Transport", "Late taxi"},
		{daily, "cafe", at(2025, 10, 6, 19, 30), -s.fun(s.EntertainmentDaily), "Cafe", "Dinner at a cafe"},
		{daily, "supermarket", at(2025, 10, 9, 17, 45), -s.GroceriesDaily, "Groceries", "Corner supermarket"},
		{daily, "fastfood", at(2025, 10, 20, 20, 15), -s.fun(s.DailyFastfood), "Fast Food", "Burger place"},
		{daily, "cinema", at(2025, 10, 29, 21, 0), -s.fun(s.EntertainmentSmall), "Entertainment", "Popcorn at the cinema"},
		// Everyday card, November.
		{daily, "coffee-1", at(2025, 11, 2, 10, 0), -s.DailyCoffee, "Coffee & Snacks", "Coffee and a croissant"},
		{daily, "taxi-1", at(2025, 11, 5, 23, 5), -s.TransportTaxiDay, "Transport", "Taxi home"},
		{daily, "fastfood", at(2025, 11, 8, 19, 50), -s.fun(s.DailyFastfood), "Fast Food", "Pizza with friends"},
		{daily, "supermarket", at(2025, 11, 11, 18, 10), -s.GroceriesDaily, "Groceries", "Supermarket"},
		{daily, "gift", at(2025, 11, 15, 15, 30), -s.DailyGift, "Gifts", "Gift for a friend"},
		{daily, "coffee-2", at(2025, 11, 19, 9, 40), -s.DailyCoffee, "Coffee & Snacks", "Coffee"},
		{daily, "taxi-2", at(2025, 11, 24, 21, 20), -s.TransportTaxiDay, "Transport", "Taxi after an event"},
		{daily, "bar", at(2025, 11, 28, 22, 45), -s.fun(s.EntertainmentDaily), "Entertainment", "Night out at a bar"},
	}

	out := make([]core.Transaction, 0, len(recs))
	for _, r := range recs {
		out = append(out, core.Transaction{
			ID:          fmt.Sprintf("%s-%s-%s", r.acc.ID, r.date.Format("2006-01-02"), r.slug),
			Date:        r.date,
			Amount:      core.Money{Cents: r.cents},
			Category:    r.cat,
			Description: r.desc,
			AccountID:   r.acc.ID,
			AccountName: r.acc.Name,
		})
	}
	return out
}
