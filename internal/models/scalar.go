package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Scalar holds a JSON scalar exactly as the source API sent it.
// The records API mixes strings, numbers and nulls for the same field,
// so the raw text is kept and interpretation is left to the normalizer.
type Scalar struct {
	Raw   string
	Valid bool
}

// S builds a valid Scalar from a string.
func S(raw string) Scalar {
	return Scalar{Raw: raw, Valid: true}
}

// String returns the raw text, or an empty string when the value was absent.
func (s Scalar) String() string {
	if !s.Valid {
		return ""
	}
	return s.Raw
}

// UnmarshalJSON implements json.Unmarshaler.
// Strings are unquoted, numbers and booleans keep their literal text,
// null marks the value absent. Objects and arrays are not scalars and are
// treated as absent rather than failing the whole payload.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = Scalar{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var str string
		if err := json.Unmarshal(trimmed, &str); err != nil {
			return fmt.Errorf("failed to unmarshal scalar string: %w", err)
		}
		*s = Scalar{Raw: str, Valid: true}
	case '{', '[':
		*s = Scalar{}
	default:
		*s = Scalar{Raw: string(trimmed), Valid: true}
	}

	return nil
}

// MarshalJSON implements json.Marshaler. Absent values encode as null.
func (s Scalar) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.Raw)
}
