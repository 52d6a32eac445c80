package prompt

import (
	"fmt"
	"time"

	"finsight/internal/core"
)

// Supported locales. The formatter falls back to English for anything
// else, so a misconfigured locale degrades instead of failing.
const (
	LocaleEN = "en"
	LocaleRU = "ru"
)

// Formatter renders dates, month labels and amounts for one locale, time
// zone and currency. It is injected into the builder so the aggregation
// core stays locale-agnostic.
type Formatter struct {
	Locale   string
	Location *time.Location
	Currency string
}

// NewFormatter builds a formatter with sane fallbacks: UTC when no
// location is given, "AZN" when no currency is given.
func NewFormatter(locale string, loc *time.Location, currency string) Formatter {
	if loc == nil {
		loc = time.UTC
	}
	if currency == "" {
		currency = "AZN"
	}
	if locale != LocaleRU {
		locale = LocaleEN
	}
	return Formatter{Locale: locale, Location: loc, Currency: currency}
}

var monthNames = map[string][12]string{
	LocaleEN: {
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	LocaleRU: {
		"январь", "февраль", "март", "апрель", "май", "июнь",
		"июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь",
	},
}

// MonthLabel renders a month key as a human label, e.g. "November 2025"
// or "ноябрь 2025 г.". Malformed keys fall back to the raw key string.
func (f Formatter) MonthLabel(key core.MonthKey) string {
	when, ok := key.Time()
	if !ok {
		return string(key)
	}
	name := monthNames[f.Locale][when.Month()-1]
	if f.Locale == LocaleRU {
		return fmt.Sprintf("%s %d г.", name, when.Year())
	}
	return fmt.Sprintf("%s %d", name, when.Year())
}

// DateTime renders a timestamp as "dd.MM HH:mm" in the formatter's time
// zone. The fixed numeric layout keeps ledger lines deterministic across
// locales.
func (f Formatter) DateTime(t time.Time) string {
	return t.In(f.Location).Format("02.01 15:04")
}

// Amount renders a signed two-decimal amount with the currency code,
// e.g. "-12.50 AZN".
func (f Formatter) Amount(m core.Money) string {
	return m.Signed() + " " + f.Currency
}
