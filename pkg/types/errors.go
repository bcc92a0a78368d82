package types

import (
	"errors"
	"fmt"
	"strings"
)

// Value errors.
var (
	ErrInvalidTriState = errors.New("invalid tri-state value")
	ErrMissingLabel    = errors.New("missing label for the unset choice")
)

// Store errors.
var (
	ErrStoreClosed       = errors.New("store is closed")
	ErrInvalidIdentifier = errors.New("invalid SQL identifier")
	ErrNotTristateColumn = errors.New("column is not a nullable boolean")
	ErrNoPrimaryKey      = errors.New("table has no single-column primary key")
	ErrNotFound          = errors.New("row not found")
	ErrTableNotFound     = errors.New("table not found")
)

// MissingLabelError reports that no label could be found for the unset
// choice. Its message lists the translation keys to define and carries
// worked YAML examples.
type MissingLabelError struct {
	Locale     string // Locale the lookup ran in.
	Key        string // The unset key, as used for the lookup.
	StatusTags bool   // Also show the status tag example.
}

// Is makes errors.Is(err, ErrMissingLabel) match.
func (e *MissingLabelError) Is(target error) bool {
	return target == ErrMissingLabel
}

func (e *MissingLabelError) Error() string {
	locale := e.Locale
	if locale == "" {
		locale = DefaultLocale
	}

	msg := []string{
		fmt.Sprintf("translation missing: %s.formtastic.%s", locale, e.Key),
		`Add translations for the "unset" radio label`,
		"For radiobutton labels in forms:\n" + FormExample(locale, e.Key),
		`Note: "yes", "no" and some other reserved words are converted into Boolean values in YAML, so you need to quote or symbolize them.`,
	}
	if e.StatusTags {
		msg = append(msg, "For status tags in index & view tables:\n"+StatusTagExample(locale, e.Key))
	}
	return strings.Join(msg, "\n\n")
}

// FormExample returns a locale file fragment defining the form labels.
func FormExample(locale, key string) string {
	return fmt.Sprintf(`%s:
  formtastic:
    :yes: "Yes"
    :no: "No"
    :%s: Unknown`, locale, key)
}

// StatusTagExample returns a locale file fragment defining status tag labels.
func StatusTagExample(locale, key string) string {
	return fmt.Sprintf(`%s:
  active_admin:
    status_tag:
      :yes: "Yes"
      :no: "No"
      :%s: Unknown`, locale, key)
}
