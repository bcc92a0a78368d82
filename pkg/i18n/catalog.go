// Package i18n reads Rails-style locale files and serves labels to a
// tristate.Resolver.
//
// A locale file nests keys under the locale name:
//
//	en:
//	  formtastic:
//	    :yes: "Yes"
//	    :no: "No"
//	    :null: Unknown
//
// Symbolized keys (":yes") and plain keys ("yes") are equivalent. Keys are
// read from the raw YAML text, so reserved words such as yes or true are not
// turned into booleans.
package i18n

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultScope is the key prefix used for form labels.
const DefaultScope = "formtastic"

// StatusTagScope is the key prefix used for status tag labels.
const StatusTagScope = "active_admin.status_tag"

// ErrInvalidCatalog is returned for locale files that are not a mapping of
// mappings.
var ErrInvalidCatalog = errors.New("invalid translation catalog")

// Catalog is a flattened, read-only set of translations.
type Catalog struct {
	// Scope is inserted between the locale and the key by Translate.
	Scope   string
	entries map[string]string
}

// Parse reads a catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, err)
	}
	c := &Catalog{Scope: DefaultScope, entries: make(map[string]string)}
	if len(doc.Content) == 0 {
		return c, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping of locales", ErrInvalidCatalog)
	}
	if err := c.flatten("", root); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c *Catalog) flatten(prefix string, node *yaml.Node) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		path := normalizeKey(k.Value)
		if prefix != "" {
			path = prefix + "." + path
		}
		switch v.Kind {
		case yaml.MappingNode:
			if err := c.flatten(path, v); err != nil {
				return err
			}
		case yaml.ScalarNode:
			if prefix == "" {
				return fmt.Errorf("%w: locale %q is not a mapping", ErrInvalidCatalog, k.Value)
			}
			c.entries[path] = v.Value
		case yaml.AliasNode:
			if v.Alias != nil && v.Alias.Kind == yaml.ScalarNode {
				c.entries[path] = v.Alias.Value
			}
		default:
			return fmt.Errorf("%w: unsupported value at %s", ErrInvalidCatalog, path)
		}
	}
	return nil
}

// normalizeKey drops the leading colon of a symbolized key.
func normalizeKey(k string) string {
	return strings.TrimPrefix(k, ":")
}

// Lookup returns the entry at a dotted path such as "en.formtastic.yes".
func (c *Catalog) Lookup(path string) (string, bool) {
	v, ok := c.entries[path]
	return v, ok
}

// Translate implements tristate.Translator by looking up
// locale.Scope.key.
func (c *Catalog) Translate(locale, key string) (string, bool) {
	scope := c.Scope
	if scope == "" {
		scope = DefaultScope
	}
	return c.Lookup(locale + "." + scope + "." + normalizeKey(key))
}

// WithScope returns a catalog sharing the same entries under another scope.
func (c *Catalog) WithScope(scope string) *Catalog {
	return &Catalog{Scope: scope, entries: c.entries}
}

// Locales returns the top-level locale names, sorted.
func (c *Catalog) Locales() []string {
	seen := make(map[string]bool)
	for path := range c.entries {
		locale, _, _ := strings.Cut(path, ".")
		seen[locale] = true
	}
	locales := make([]string, 0, len(seen))
	for l := range seen {
		locales = append(locales, l)
	}
	sort.Strings(locales)
	return locales
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Example returns a locale file defining the yes, no and unset labels for
// locale, plus the status tag labels when statusTags is set.
func Example(locale, unsetKey string, statusTags bool) ([]byte, error) {
	unset := ":" + normalizeKey(unsetKey)
	labels := map[string]string{
		":yes": "Yes",
		":no":  "No",
		unset:  "Unknown",
	}
	scopes := map[string]any{DefaultScope: labels}
	if statusTags {
		scopes["active_admin"] = map[string]any{"status_tag": labels}
	}
	return yaml.Marshal(map[string]any{locale: scopes})
}
