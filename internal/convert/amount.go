package convert

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount parses a raw statement amount into a decimal. It tolerates
// currency symbols, spaces, parenthesized negatives and both US (1,234.56)
// and European (1.234,56) separator conventions.
func parseAmount(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	if clean == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	negative := false

	// Accounting style: (45.67) means -45.67.
	if strings.HasPrefix(clean, "(") && strings.HasSuffix(clean, ")") {
		negative = true
		clean = clean[1 : len(clean)-1]
	}

	clean = stripCurrency(clean)

	// Trailing sign as some exports write "45.67-".
	if strings.HasSuffix(clean, "-") {
		negative = !negative
		clean = strings.TrimSuffix(clean, "-")
	}

	if strings.HasPrefix(clean, "-") {
		negative = !negative
		clean = strings.TrimPrefix(clean, "-")
	}

	clean = strings.TrimPrefix(clean, "+")
	if strings.ContainsAny(clean, "+-") {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}

	clean = normalizeSeparators(clean)

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}

	if negative {
		d = d.Neg()
	}

	return d, nil
}

// stripCurrency removes currency symbols, letters and spacing, leaving
// digits, separators and signs.
func stripCurrency(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return r
		case r == '.' || r == ',' || r == '-' || r == '+':
			return r
		default:
			return -1
		}
	}, s)
}

// normalizeSeparators resolves '.' and ',' into a plain decimal string.
// When both appear, the one further right is the decimal separator. A lone
// comma followed by at most two digits is read as a decimal comma; all other
// commas are thousands separators. Dots behave symmetrically, except that a
// single dot stays a decimal point (US default).
func normalizeSeparators(s string) string {
	lastDot := strings.LastIndexByte(s, '.')
	lastComma := strings.LastIndexByte(s, ',')

	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			// European: 1.234,56
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			// US: 1,234.56
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") == 1 && len(s)-lastComma-1 <= 2 {
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastDot >= 0:
		if strings.Count(s, ".") > 1 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	return s
}
