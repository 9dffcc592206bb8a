package normalizer

import "fmt"

// WarningCode classifies a data-quality problem found while normalizing.
type WarningCode string

// Warning codes reported by Normalize.
const (
	// WarningDiscriminatorMismatch means property_kind names a kind whose
	// sub-object is absent from the payload.
	WarningDiscriminatorMismatch WarningCode = "discriminator_mismatch"
	// WarningUnknownPropertyKind means property_kind is empty or unrecognized.
	WarningUnknownPropertyKind WarningCode = "unknown_property_kind"
	// WarningUnparsableNumber means a numeric field held text that is not a number.
	WarningUnparsableNumber WarningCode = "unparsable_number"
)

// Warning is a single data-quality finding. None of them stop normalization.
type Warning struct {
	Code    WarningCode `json:"code" yaml:"code"`
	Field   string      `json:"field,omitempty" yaml:"field,omitempty"`
	Message string      `json:"message" yaml:"message"`
}

// Diagnostics collects the warnings raised for one payload.
type Diagnostics struct {
	Warnings []Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Has reports whether a warning with the given code was raised.
func (d Diagnostics) Has(code WarningCode) bool {
	for _, w := range d.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

// Empty reports whether no warnings were raised.
func (d Diagnostics) Empty() bool {
	return len(d.Warnings) == 0
}

func (d *Diagnostics) add(code WarningCode, field, format string, args ...interface{}) {
	d.Warnings = append(d.Warnings, Warning{
		Code:    code,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}
