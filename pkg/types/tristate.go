package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// TriState is the logical state of a nullable boolean attribute.
type TriState uint8

// TriState values. Unknown is the zero value so an unset field reads as
// Unknown rather than False.
const (
	Unknown TriState = iota
	True
	False
)

// TriState names as printed by String and accepted by ParseTriState.
const (
	NameTrue    = "true"
	NameFalse   = "false"
	NameUnknown = "unknown"
)

// FromBool converts a plain bool.
func FromBool(b bool) TriState {
	if b {
		return True
	}
	return False
}

// FromPtr converts a nullable bool; nil maps to Unknown.
func FromPtr(p *bool) TriState {
	if p == nil {
		return Unknown
	}
	return FromBool(*p)
}

// ParseTriState parses one of "true", "false" or "unknown" (case-insensitive).
// Returns ErrInvalidTriState for anything else.
func ParseTriState(s string) (TriState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case NameTrue:
		return True, nil
	case NameFalse:
		return False, nil
	case NameUnknown:
		return Unknown, nil
	default:
		return Unknown, fmt.Errorf("%w: %q", ErrInvalidTriState, s)
	}
}

// Bool returns the boolean value and whether it is known.
func (t TriState) Bool() (value, ok bool) {
	switch t {
	case True:
		return true, true
	case False:
		return false, true
	default:
		return false, false
	}
}

// Ptr returns the state as a nullable bool.
func (t TriState) Ptr() *bool {
	v, ok := t.Bool()
	if !ok {
		return nil
	}
	return &v
}

// IsKnown reports whether the state is True or False.
func (t TriState) IsKnown() bool {
	return t == True || t == False
}

// String returns "true", "false" or "unknown".
func (t TriState) String() string {
	switch t {
	case True:
		return NameTrue
	case False:
		return NameFalse
	default:
		return NameUnknown
	}
}

// Value implements driver.Valuer. Unknown is stored as NULL.
func (t TriState) Value() (driver.Value, error) {
	v, ok := t.Bool()
	if !ok {
		return nil, nil
	}
	return v, nil
}

// Scan implements sql.Scanner for BOOLEAN columns. NULL scans as Unknown;
// SQLite drivers may hand back either a bool or an int64.
func (t *TriState) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = Unknown
	case bool:
		*t = FromBool(v)
	case int64:
		*t = FromBool(v != 0)
	case []byte:
		return t.scanText(string(v))
	case string:
		return t.scanText(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTriState, src)
	}
	return nil
}

func (t *TriState) scanText(s string) error {
	switch strings.ToLower(s) {
	case "", "null":
		*t = Unknown
	case "1", "t", "true":
		*t = True
	case "0", "f", "false":
		*t = False
	default:
		return fmt.Errorf("%w: cannot scan %q", ErrInvalidTriState, s)
	}
	return nil
}

// MarshalJSON encodes Unknown as null.
func (t TriState) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Ptr())
}

// UnmarshalJSON accepts true, false or null.
func (t *TriState) UnmarshalJSON(data []byte) error {
	var p *bool
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTriState, err)
	}
	*t = FromPtr(p)
	return nil
}
