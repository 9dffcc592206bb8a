// Package format renders numbers and dates for assessment documents.
// Both document variants share one Formatter so rounding and grouping
// never differ between them.
package format

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Defaults used when Options leave a field empty.
const (
	DefaultLocale       = "en-PH"
	DefaultCurrencyWord = "PESOS"
)

// dateLayouts are the date shapes seen in source records, most common first.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"01/02/2006",
	"1/2/2006",
}

// Options configures a Formatter.
type Options struct {
	Locale       string
	CurrencyWord string
}

// Formatter is stateless and safe for concurrent use.
type Formatter struct {
	tag          language.Tag
	currencyWord string
}

// New creates a Formatter. Unknown locales fall back to DefaultLocale.
func New(opts Options) Formatter {
	locale := opts.Locale
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}

	word := strings.ToUpper(strings.TrimSpace(opts.CurrencyWord))
	if word == "" {
		word = DefaultCurrencyWord
	}

	return Formatter{tag: tag, currencyWord: word}
}

// Default returns a Formatter with default options.
func Default() Formatter {
	return New(Options{})
}

// Money formats an amount with two decimals and grouping.
// Zero renders as an empty cell.
func (f Formatter) Money(v float64) string {
	r := Round2(v)
	if r == 0 {
		return ""
	}
	return f.decimal(r, 2)
}

// Total formats an amount like Money but prints zero as "0.00".
// Totals always appear on the form.
func (f Formatter) Total(v float64) string {
	return f.decimal(Round2(v), 2)
}

// Area formats an area in square meters with two decimals; zero is blank.
func (f Formatter) Area(v float64) string {
	return f.Money(v)
}

// Quantity formats a count or quantity without trailing zeros; zero is blank.
func (f Formatter) Quantity(v float64) string {
	r := Round2(v)
	if r == 0 {
		return ""
	}
	if r == math.Trunc(r) {
		return f.decimal(r, 0)
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Percent formats a percentage such as an assessment level; zero is blank.
func (f Formatter) Percent(v float64) string {
	r := Round2(v)
	if r == 0 {
		return ""
	}
	return strconv.FormatFloat(r, 'f', -1, 64) + "%"
}

// Date reformats a source date as "January 2, 2006".
// Text that is not a recognizable date is returned unchanged.
func (f Formatter) Date(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return raw
}

// Year extracts the four-digit year of a source date, or "".
func (f Formatter) Year(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return strconv.Itoa(t.Year())
		}
	}
	return ""
}

// Quarter returns the calendar quarter ("1".."4") of a source date, or "".
func (f Formatter) Quarter(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return strconv.Itoa((int(t.Month())-1)/3 + 1)
		}
	}
	return ""
}

// maxCents is 2^63; amounts at or above it in cents do not fit an int64
// and are written in digits.
const maxCents = float64(1 << 63)

// AmountInWords spells an amount the way the Tax Declaration prints it,
// for example "ONE THOUSAND TWO HUNDRED PESOS AND 50/100".
func (f Formatter) AmountInWords(v float64) string {
	r := Round2(math.Abs(v))
	scaled := math.Round(r * 100)
	if scaled >= maxCents {
		words := strconv.FormatFloat(r, 'f', 2, 64) + " " + f.currencyWord
		if v < 0 {
			words = "MINUS " + words
		}
		return words
	}

	cents := int64(scaled)
	whole := cents / 100
	frac := cents % 100

	words := spell(whole) + " " + f.currencyWord
	if frac > 0 {
		words += " AND " + twoDigits(frac) + "/100"
	}
	if v < 0 && cents > 0 {
		words = "MINUS " + words
	}
	return words
}

func (f Formatter) decimal(v float64, places int) string {
	p := message.NewPrinter(f.tag)
	if places == 0 {
		return p.Sprintf("%.0f", v)
	}
	return p.Sprintf("%.2f", v)
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0
	}
	return r
}

func twoDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) < 2 {
		s = "0" + s
	}
	return s
}
