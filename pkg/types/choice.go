package types

import "fmt"

// Choice is one selectable option in a single-select input group.
// Value is true, false, or the configured unset key.
type Choice struct {
	Label string `json:"label" yaml:"label"`
	Value any    `json:"value" yaml:"value"`
}

// String formats the choice as label=value.
func (c Choice) String() string {
	return fmt.Sprintf("%s=%v", c.Label, c.Value)
}
