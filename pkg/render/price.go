package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PricePrefix precedes the formatted amount in every renderer.
const PricePrefix = "Predicted Price: "

// FormatPrice renders price with two decimals and a leading dollar sign. With
// a locale, thousands are grouped the way that locale expects.
func FormatPrice(price float64, locale string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return fmt.Sprintf("$%.2f", price)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Sprintf("$%.2f", price)
	}
	return "$" + message.NewPrinter(tag).Sprintf("%.2f", price)
}

// PriceText is the full sentence shown after a successful prediction.
func PriceText(price float64, locale string) string {
	return PricePrefix + FormatPrice(price, locale)
}
