package money

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders integer minor-unit amounts (e.g. cents) as display
// strings. Prices are kept in minor units everywhere else so totals never
// touch floating point; the only float conversion happens here, at the
// presentation boundary.
type Formatter struct {
	unit    currency.Unit
	symbol  string
	printer *message.Printer
}

// symbols maps the ISO codes the storefront supports to their display symbols.
// Unlisted currencies fall back to "<CODE> ".
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// NewFormatter creates a formatter for the given ISO 4217 currency code and
// BCP 47 locale (e.g. "USD", "en-US").
func NewFormatter(code, locale string) (*Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("parse currency %q: %w", code, err)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	symbol, ok := symbols[unit.String()]
	if !ok {
		symbol = unit.String() + " "
	}

	return &Formatter{
		unit:    unit,
		symbol:  symbol,
		printer: message.NewPrinter(tag),
	}, nil
}

// Currency returns the ISO code this formatter renders.
func (f *Formatter) Currency() string {
	return f.unit.String()
}

// Format renders a minor-unit amount as a display string, with locale-aware
// digit grouping. Negative amounts are treated as zero.
func (f *Formatter) Format(minor int64) string {
	if minor < 0 {
		minor = 0
	}
	return f.printer.Sprintf("%s%.2f", f.symbol, float64(minor)/100)
}
