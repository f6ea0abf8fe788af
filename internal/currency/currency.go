package currency

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Zero-decimal currencies per ISO 4217: no minor units (e.g. KRW, JPY)
var zeroDecimalCurrencies = map[string]bool{
	"BIF": true, "CLP": true, "DJF": true, "GNF": true,
	"JPY": true, "KMF": true, "KRW": true, "MGA": true,
	"PYG": true, "RWF": true, "UGX": true, "VND": true,
	"VUV": true, "XAF": true, "XOF": true, "XPF": true,
}

// IsZeroDecimal returns true for currencies with no decimal places (KRW, JPY, etc.)
func IsZeroDecimal(c string) bool {
	return zeroDecimalCurrencies[strings.ToUpper(c)]
}

// DecimalPlaces returns the number of decimal places for the currency.
func DecimalPlaces(c string) int32 {
	if IsZeroDecimal(c) {
		return 0
	}
	return 2
}

// Round rounds amount to the appropriate precision for the currency.
func Round(amount decimal.Decimal, c string) decimal.Decimal {
	return amount.Round(DecimalPlaces(c))
}

var printer = message.NewPrinter(language.English)

// Format renders amount with thousands separators followed by the ISO code,
// e.g. "1,234.50 EUR".
func Format(amount decimal.Decimal, c string) string {
	f, _ := Round(amount, c).Float64()
	if IsZeroDecimal(c) {
		return printer.Sprintf("%.0f %s", f, strings.ToUpper(c))
	}
	return printer.Sprintf("%.2f %s", f, strings.ToUpper(c))
}

// FormatPct renders a percentage with one decimal place.
func FormatPct(pct decimal.Decimal) string {
	f, _ := pct.Round(1).Float64()
	return printer.Sprintf("%.1f%%", f)
}
