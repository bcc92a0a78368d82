package tristate

import (
	"fmt"

	"github.com/mesh-intelligence/tristate/pkg/types"
)

// Translation keys for the true and false labels.
const (
	KeyYes = "yes"
	KeyNo  = "no"
)

// Labels used when neither an explicit label nor a translation is found.
// The unknown choice has no default label.
const (
	DefaultTrueLabel  = "Yes"
	DefaultFalseLabel = "No"
)

// Labels holds explicit display labels. Empty fields are looked up.
type Labels struct {
	True    string `json:"true,omitempty" yaml:"true,omitempty"`
	False   string `json:"false,omitempty" yaml:"false,omitempty"`
	Unknown string `json:"unknown,omitempty" yaml:"unknown,omitempty"`
}

// BuildChoices returns the choices true, false and unset, in that order,
// for use with the package-level IsSelected. unset must pass the checks of
// New and resolve to Unknown under the default configuration; build the
// choices of other keys with Resolver.BuildChoices. It returns a
// *types.MissingLabelError when unknownLabel is empty.
func BuildChoices(trueLabel, falseLabel, unknownLabel string, unset any) ([]types.Choice, error) {
	r, err := New(types.Config{UnsetKey: unset})
	if err != nil {
		return nil, err
	}
	if std.Resolve(unset) != types.Unknown {
		return nil, fmt.Errorf("%w: %v", types.ErrUnsetKeyNotDefault, unset)
	}
	return r.BuildChoices(trueLabel, falseLabel, unknownLabel)
}

// BuildChoices returns the choices true, false and the Resolver's unset key.
// A missing unknown label is reported in the Resolver's locale.
func (r *Resolver) BuildChoices(trueLabel, falseLabel, unknownLabel string) ([]types.Choice, error) {
	if unknownLabel == "" {
		return nil, r.missingLabel()
	}
	return []types.Choice{
		{Label: trueLabel, Value: true},
		{Label: falseLabel, Value: false},
		{Label: unknownLabel, Value: r.cfg.UnsetKey},
	}, nil
}

// Choices fills the empty fields of labels from the translator and builds
// the choice list. True and false fall back to "Yes" and "No"; the unknown
// label must come from labels or the translator.
func (r *Resolver) Choices(labels Labels) ([]types.Choice, error) {
	t := labels.True
	if t == "" {
		t = r.translate(KeyYes, DefaultTrueLabel)
	}
	f := labels.False
	if f == "" {
		f = r.translate(KeyNo, DefaultFalseLabel)
	}
	u := labels.Unknown
	if u == "" {
		u = r.translate(r.cfg.UnsetKeyString(), "")
	}
	return r.BuildChoices(t, f, u)
}

func (r *Resolver) translate(key, fallback string) string {
	if r.translator == nil {
		return fallback
	}
	if label, ok := r.translator.Translate(r.cfg.LocaleOrDefault(), key); ok && label != "" {
		return label
	}
	return fallback
}

func (r *Resolver) missingLabel() error {
	return &types.MissingLabelError{
		Locale:     r.cfg.LocaleOrDefault(),
		Key:        r.cfg.UnsetKeyString(),
		StatusTags: r.cfg.StatusTags,
	}
}
