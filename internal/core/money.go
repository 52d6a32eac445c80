// Package core holds the transaction domain and the month/category
// aggregation engine.
//
// This file contains parsing and formatting for signed monetary amounts.
// Amounts are kept in cents to avoid floating-point drift in sums; floats
// appear only in derived ratios (see the analytics package).
package core

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseSignedToCents converts a signed decimal string to cents with
// half-up rounding on the third decimal place.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and an
// optional leading + or -. Zero is valid (counted as income downstream).
//
// Examples:
//
//	ParseSignedToCents("12.34")  -> 1234, nil
//	ParseSignedToCents("-12,34") -> -1234, nil
//	ParseSignedToCents("1.005")  -> 101, nil (rounds up)
func ParseSignedToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	s = strings.ReplaceAll(s, ",", ".")

	negative := false
	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if s == "" {
		return 0, fmt.Errorf("missing digits in amount")
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	// Prevent overflow when multiplying by 100
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, fmt.Errorf("amount %q out of range", s)
	}

	// Take first two fractional digits; half-up rounding on the third.
	var fracCents int64
	if len(fracPart) > 0 {
		d1 := int64(fracPart[0] - '0')
		fracCents = d1 * 10
		if len(fracPart) > 1 {
			d2 := int64(fracPart[1] - '0')
			fracCents += d2
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}

	cents := iv*100 + fracCents
	if negative {
		cents = -cents
	}
	return cents, nil
}

// Abs returns the absolute value.
func (m Money) Abs() Money {
	if m.Cents < 0 {
		return Money{Cents: -m.Cents}
	}
	return m
}

// Units returns the amount in currency units as a float64 for display and
// ratio computation. Use cents for sums.
func (m Money) Units() float64 {
	return float64(m.Cents) / 100.0
}

// String renders the amount with a fixed two-decimal format and no sign
// for non-negative values, e.g. "12.34" or "-0.50".
func (m Money) String() string {
	sign := ""
	c := m.Cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

// Signed renders the amount with an explicit +/- sign, e.g. "+12.34".
func (m Money) Signed() string {
	if m.Cents < 0 {
		return m.String()
	}
	return "+" + m.String()
}
