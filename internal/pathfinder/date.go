package pathfinder

import (
	"encoding/json"
	"fmt"
	"time"
)

// ISOTime decodes the wrapped timestamp objects the pathfinder schema uses
// for some (not all) timestamp fields:
//
//	{"isoString": "2020-11-07T03:27:58Z"}
//
// It is a field-level codec rather than a global decoder override because
// other timestamp fields in the same schema are plain ISO-8601 strings.
// Declare a struct field as ISOTime exactly where the wrapped form appears.
type ISOTime struct {
	time.Time
}

// isoWrapper is the wire shape around the timestamp string.
type isoWrapper struct {
	ISOString *string `json:"isoString"`
}

// UnmarshalJSON decodes the {"isoString": ...} wrapper. Any other shape,
// a missing isoString field or a non-RFC3339 value is an error.
func (t *ISOTime) UnmarshalJSON(data []byte) error {
	var w isoWrapper
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("isoString wrapper: %w", err)
	}
	if w.ISOString == nil {
		return fmt.Errorf("isoString wrapper: missing isoString field")
	}
	parsed, err := time.Parse(time.RFC3339, *w.ISOString)
	if err != nil {
		return fmt.Errorf("isoString wrapper: %w", err)
	}
	t.Time = parsed
	return nil
}

// MarshalJSON re-encodes the timestamp in the wrapped wire form.
func (t ISOTime) MarshalJSON() ([]byte, error) {
	s := t.Format(time.RFC3339)
	return json.Marshal(isoWrapper{ISOString: &s})
}
