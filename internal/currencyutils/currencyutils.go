// Package currencyutils normalises Brazilian real amounts typed by users and
// formats amounts for display.
package currencyutils

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Symbol is the display prefix of formatted amounts.
const Symbol = "R$"

var printer = message.NewPrinter(language.BrazilianPortuguese)

// StandardizeAmount converts user input to a form decimal.NewFromString accepts.
// The currency symbol and spaces are dropped. When a comma is present it is the
// decimal separator and every dot is a thousands separator, so "1.234,50"
// becomes "1234.50"; otherwise the text is kept as is.
func StandardizeAmount(amountStr string) string {
	amountStr = strings.ReplaceAll(amountStr, Symbol, "")
	amountStr = strings.Join(strings.Fields(amountStr), "")

	if strings.Contains(amountStr, ",") {
		amountStr = strings.ReplaceAll(amountStr, ".", "")
		amountStr = strings.ReplaceAll(amountStr, ",", ".")
	}
	return amountStr
}

// FormatAmount renders an amount as Brazilian reais, e.g. "R$ 1.234,50".
// Negative amounts keep the sign in front of the symbol.
func FormatAmount(amount decimal.Decimal) string {
	value := amount.Round(2)
	sign := ""
	if value.IsNegative() {
		sign = "-"
		value = value.Abs()
	}
	return sign + Symbol + " " + printer.Sprintf("%.2f", value.InexactFloat64())
}

// FormatPercent renders a percentage with one decimal, e.g. "12,5%".
func FormatPercent(percent float64) string {
	return printer.Sprintf("%.1f%%", percent)
}
