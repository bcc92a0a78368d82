package tristate

import (
	"database/sql"
	"fmt"
	"log"

	goSet "github.com/deckarep/golang-set"

	"github.com/mesh-intelligence/tristate/pkg/types"
)

// Translator looks up display labels. ok is false when the catalog has no
// entry for key in locale.
type Translator interface {
	Translate(locale, key string) (label string, ok bool)
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithTranslator sets the catalog used when a label is not given explicitly.
func WithTranslator(t Translator) Option {
	return func(r *Resolver) { r.translator = t }
}

// WithLogger traces every conversion to l at DEBUG level.
func WithLogger(l *log.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

// Resolver casts external values to TriState and builds choice lists for
// one configuration. It is immutable after New and safe for concurrent use.
type Resolver struct {
	cfg        types.Config
	nulls      goSet.Set
	translator Translator
	logger     *log.Logger
}

// New builds a Resolver for cfg. The unset key joins the null tokens so that
// the unknown choice resolves back to Unknown. Returns a config error if the
// key has the wrong type or collides with a boolean token.
func New(cfg types.Config, opts ...Option) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	key, ok := tokenKey(cfg.UnsetKey)
	if !ok {
		return nil, fmt.Errorf("%w, got %T", types.ErrUnsetKeyType, cfg.UnsetKey)
	}
	if falseTokens.Contains(key) || trueTokens.Contains(key) {
		return nil, fmt.Errorf("%w: %v", types.ErrUnsetKeyConflict, cfg.UnsetKey)
	}

	nulls := nullTokens.Clone()
	nulls.Add(key)

	r := &Resolver{cfg: cfg, nulls: nulls}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// MustNew is like New but panics on an invalid configuration.
func MustNew(cfg types.Config, opts ...Option) *Resolver {
	r, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Config returns a copy of the configuration the Resolver was built with.
func (r *Resolver) Config() types.Config {
	return r.cfg
}

// UnsetKey returns the token carried by the unknown choice.
func (r *Resolver) UnsetKey() any {
	return r.cfg.UnsetKey
}

// Resolve casts v to a TriState:
//
//  1. null tokens ("", "null", nil and the unset key) resolve to Unknown;
//  2. false tokens (false, 0, "0", "f", "false", "off" and friends) resolve
//     to False;
//  3. anything else resolves to True.
//
// *bool, sql.NullBool and TriState are converted directly. Resolve never
// fails.
func (r *Resolver) Resolve(v any) types.TriState {
	t := r.resolve(v)
	if r.logger != nil {
		r.logger.Printf("[DEBUG] (tristate) value %#v resolved to %s", v, t)
	}
	return t
}

func (r *Resolver) resolve(v any) types.TriState {
	switch x := v.(type) {
	case types.TriState:
		return x
	case *bool:
		return types.FromPtr(x)
	case sql.NullBool:
		if !x.Valid {
			return types.Unknown
		}
		return types.FromBool(x.Bool)
	}

	key, ok := tokenKey(v)
	if !ok {
		return types.True
	}
	if r.nulls.Contains(key) {
		return types.Unknown
	}
	if falseTokens.Contains(key) {
		return types.False
	}
	return types.True
}

// IsSelected reports whether choice stands for current.
func (r *Resolver) IsSelected(choice types.Choice, current types.TriState) bool {
	return r.Resolve(choice.Value) == current
}

// Selected returns the index of the choice that stands for current, or -1.
func (r *Resolver) Selected(choices []types.Choice, current types.TriState) int {
	for i, c := range choices {
		if r.IsSelected(c, current) {
			return i
		}
	}
	return -1
}

var std = MustNew(types.DefaultConfig())

// Resolve casts v with the default configuration.
func Resolve(v any) types.TriState {
	return std.Resolve(v)
}

// IsSelected reports whether choice stands for current under the default
// configuration.
func IsSelected(choice types.Choice, current types.TriState) bool {
	return std.IsSelected(choice, current)
}
