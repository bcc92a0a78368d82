package types

import (
	"errors"
	"fmt"
)

// DefaultUnsetKey is the wire value of the unknown choice unless configured
// otherwise.
const DefaultUnsetKey = "null"

// DefaultLocale is used in error messages when no locale is configured.
const DefaultLocale = "en"

// Config holds the settings a Resolver is built from. A Config is copied
// into the Resolver; changing it afterwards has no effect on that Resolver.
type Config struct {
	// UnsetKey is the token carried by the unknown choice. It must be a
	// string or an integer.
	UnsetKey any `json:"unset_key" yaml:"unset_key"`
	// Locale selects translations when labels are looked up.
	Locale string `json:"locale" yaml:"locale"`
	// StatusTags adds the status tag example to MissingLabelError messages.
	StatusTags bool `json:"status_tags" yaml:"status_tags"`
}

// Config validation errors.
var (
	ErrUnsetKeyType       = errors.New("unset key must be a string or an integer")
	ErrUnsetKeyEmpty      = errors.New("unset key must not be empty")
	ErrUnsetKeyConflict   = errors.New("unset key collides with a boolean token")
	ErrUnsetKeyNotDefault = errors.New("unset key is not read as unknown by the default resolver")
)

// DefaultConfig returns the configuration with the unset key "null".
func DefaultConfig() Config {
	return Config{UnsetKey: DefaultUnsetKey, Locale: DefaultLocale}
}

// Validate checks the type of UnsetKey. Collisions with boolean tokens are
// checked by the resolver, which owns the token sets.
func (c Config) Validate() error {
	switch k := c.UnsetKey.(type) {
	case string:
		if k == "" {
			return ErrUnsetKeyEmpty
		}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
	default:
		return fmt.Errorf("%w, got %T", ErrUnsetKeyType, c.UnsetKey)
	}
	return nil
}

// UnsetKeyString returns the unset key as a translation lookup key.
func (c Config) UnsetKeyString() string {
	return fmt.Sprint(c.UnsetKey)
}

// LocaleOrDefault returns Locale, or DefaultLocale when it is empty.
func (c Config) LocaleOrDefault() string {
	if c.Locale == "" {
		return DefaultLocale
	}
	return c.Locale
}
