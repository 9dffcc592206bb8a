package normalizer

import (
	"math"
	"strconv"
	"strings"

	"github.com/stwalsh4118/faasdoc/internal/models"
)

// numberReplacer strips grouping separators and unit decorations the
// records API and hand-typed forms leave in numeric fields.
var numberReplacer = strings.NewReplacer(
	",", "",
	" ", "",
	"₱", "",
	"PHP", "",
	"Php", "",
	"%", "",
)

// ParseNumber converts a raw scalar to a float64.
// The second return value is false when the value was present but could
// not be parsed; absent values return (0, true).
func ParseNumber(s models.Scalar) (float64, bool) {
	raw := strings.TrimSpace(s.String())
	if raw == "" {
		return 0, true
	}

	cleaned := numberReplacer.Replace(raw)
	if cleaned == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

// ParseFlag interprets 0/1, true/false and yes/no style flags.
// Anything unrecognized is false.
func ParseFlag(s models.Scalar) bool {
	switch strings.ToLower(strings.TrimSpace(s.String())) {
	case "1", "true", "yes", "y", "t":
		return true
	default:
		return false
	}
}

// number parses a numeric field and records a warning when it is garbage.
func (n *normalizer) number(field string, s models.Scalar) float64 {
	value, ok := ParseNumber(s)
	if !ok {
		n.diag.add(WarningUnparsableNumber, field, "value %q is not a number, using 0", s.Raw)
	}
	return value
}

// text trims a string field.
func text(s models.Scalar) string {
	return strings.TrimSpace(s.String())
}
