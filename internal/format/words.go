package format

import "strings"

var ones = []string{
	"", "ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT", "NINE",
	"TEN", "ELEVEN", "TWELVE", "THIRTEEN", "FOURTEEN", "FIFTEEN", "SIXTEEN",
	"SEVENTEEN", "EIGHTEEN", "NINETEEN",
}

var tens = []string{
	"", "", "TWENTY", "THIRTY", "FORTY", "FIFTY", "SIXTY", "SEVENTY", "EIGHTY", "NINETY",
}

var scales = []struct {
	value int64
	name  string
}{
	{1_000_000_000_000, "TRILLION"},
	{1_000_000_000, "BILLION"},
	{1_000_000, "MILLION"},
	{1_000, "THOUSAND"},
}

// spell writes a non-negative integer in English capitals. Groups above
// the largest scale are spelled recursively ("TWO THOUSAND TRILLION").
func spell(n int64) string {
	if n == 0 {
		return "ZERO"
	}

	parts := make([]string, 0, 8)
	for _, s := range scales {
		if n >= s.value {
			parts = append(parts, spell(n/s.value), s.name)
			n %= s.value
		}
	}
	if n > 0 {
		parts = append(parts, spellHundreds(n))
	}
	return strings.Join(parts, " ")
}

// spellHundreds handles 1..999.
func spellHundreds(n int64) string {
	parts := make([]string, 0, 3)
	if n >= 100 {
		parts = append(parts, ones[n/100], "HUNDRED")
		n %= 100
	}
	switch {
	case n >= 20:
		t := tens[n/10]
		if n%10 != 0 {
			t += "-" + ones[n%10]
		}
		parts = append(parts, t)
	case n > 0:
		parts = append(parts, ones[n])
	}
	return strings.Join(parts, " ")
}
