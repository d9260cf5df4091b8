package service

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatQuantity renders a quantity with grouping and at most two decimals.
func FormatQuantity(v float64) string {
	return printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(2)))
}

// FormatMoney renders an amount in US dollars with exactly two decimals.
func FormatMoney(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

func EOQLine(eoq float64) string {
	return "EOQ: " + FormatQuantity(eoq) + " units"
}

func TotalCostLine(cost float64) string {
	return "Total Annual Cost: " + FormatMoney(cost)
}
