package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// NumberToWords spells n using the lakh/crore grouping.
func NumberToWords(n int64) string {
	switch {
	case n <= 0:
		return ""
	case n < 20:
		return ones[n]
	case n < 100:
		return strings.TrimSpace(tens[n/10] + " " + ones[n%10])
	case n < 1000:
		return join(ones[n/100]+" Hundred", NumberToWords(n%100))
	case n < 100000:
		return join(NumberToWords(n/1000)+" Thousand", NumberToWords(n%1000))
	case n < 10000000:
		return join(NumberToWords(n/100000)+" Lakh", NumberToWords(n%100000))
	default:
		return join(NumberToWords(n/10000000)+" Crore", NumberToWords(n%10000000))
	}
}

func join(head, rest string) string {
	if rest == "" {
		return head
	}
	return head + " " + rest
}

type currencyUnits struct{ major, minor string }

var currencies = map[string]currencyUnits{
	"BDT": {"Taka", "Paisa"},
	"INR": {"Rupees", "Paise"},
	"USD": {"Dollars", "Cents"},
	"EUR": {"Euros", "Cents"},
	"GBP": {"Pounds", "Pence"},
	"CNY": {"Yuan", "Fen"},
}

// AmountInWords spells a money amount in the given currency code, e.g.
// "One Hundred Dollars and Five Cents Only".
func AmountInWords(amount decimal.Decimal, currency string) string {
	units, ok := currencies[strings.ToUpper(strings.TrimSpace(currency))]
	if !ok {
		units = currencyUnits{"", "Cents"}
		if c := strings.ToUpper(strings.TrimSpace(currency)); c != "" {
			units.major = c
		}
	}

	amount = amount.Abs().Round(2)
	whole := amount.IntPart()
	fraction := amount.Sub(decimal.NewFromInt(whole)).Shift(2).IntPart()

	var parts []string
	if whole > 0 {
		parts = append(parts, strings.TrimSpace(NumberToWords(whole)+" "+units.major))
	}
	if fraction > 0 {
		parts = append(parts, NumberToWords(fraction)+" "+units.minor)
	}
	if len(parts) == 0 {
		return strings.TrimSpace("Zero "+units.major) + " Only"
	}
	return strings.Join(parts, " and ") + " Only"
}
