package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ErrInvalidMoney = errors.New("invalid money amount")

// Money is a BRL amount in cents.
//
// Catalog prices come in as localized strings ("R$ 1.234,50") or as JSON
// numbers; both are parsed into cents so that installment splits are exact.
type Money int64

var brlPrinter = message.NewPrinter(language.BrazilianPortuguese)

func NewMoneyFromFloat(v float64) Money {
	return Money(math.Round(v * 100))
}

// ParseMoney accepts "R$ 1.234,50", "1234,50", "1234.50" and "45".
//
// When a comma is present it is the decimal separator and dots are thousand
// separators (pt-BR). Without a comma a single dot followed by one or two
// digits is read as the decimal separator.
func ParseMoney(s string) (Money, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, "R$")
	raw = strings.ReplaceAll(raw, " ", "")
	raw = strings.ReplaceAll(raw, "\u00a0", "")
	if raw == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}

	negative := false
	if strings.HasPrefix(raw, "-") {
		negative = true
		raw = raw[1:]
	}

	intPart, fracPart := raw, ""
	if i := strings.LastIndex(raw, ","); i >= 0 {
		intPart, fracPart = strings.ReplaceAll(raw[:i], ".", ""), raw[i+1:]
	} else if i := strings.LastIndex(raw, "."); i >= 0 && len(raw)-i-1 <= 2 && strings.Count(raw, ".") == 1 {
		intPart, fracPart = raw[:i], raw[i+1:]
	} else {
		intPart = strings.ReplaceAll(raw, ".", "")
	}

	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > 2 || !isDigits(intPart) || (fracPart != "" && !isDigits(fracPart)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}
	for len(fracPart) < 2 {
		fracPart += "0"
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}
	cents, _ := strconv.ParseInt(fracPart, 10, 64)

	m := Money(units*100 + cents)
	if negative {
		m = -m
	}
	return m, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func (m Money) Cents() int64 { return int64(m) }

func (m Money) Float64() float64 { return float64(m) / 100 }

// Mul multiplies by a quantity.
func (m Money) Mul(n int) Money { return m * Money(n) }

// String formats the amount the way the storefront displays it: "R$ 1.234,50".
func (m Money) String() string {
	return "R$ " + brlPrinter.Sprintf("%.2f", m.Float64())
}

// MarshalJSON writes the amount as a decimal number with two places.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(m.Float64(), 'f', 2, 64)), nil
}

// UnmarshalJSON accepts both numbers and localized strings.
func (m *Money) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := ParseMoney(s)
		if err != nil {
			return err
		}
		*m = v
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidMoney, string(b))
	}
	*m = NewMoneyFromFloat(f)
	return nil
}
