package promptvar

import (
	"errors"
	"sort"
	"strings"

	"github.com/itsatony/go-promptvar/internal"
)

// Template is a parsed `${name}` template. The name, source and placeholder
// set are fixed at construction; only the defaults map is mutable. A Template
// has no internal locking: callers that mutate defaults concurrently must
// serialize access themselves. Substitute and ToString never mutate the
// receiver, so read-only use from multiple goroutines is safe.
type Template struct {
	name         string
	source       string
	placeholders []string
	index        map[string]struct{}
	defaults     map[string]any
	serializer   Serializer
}

// TemplateOption is a functional option for configuring a Template.
type TemplateOption func(*templateConfig)

// templateConfig holds construction options.
type templateConfig struct {
	name       string
	serializer Serializer
}

// WithName sets the template name, used for equality, display and error
// attribution.
func WithName(name string) TemplateOption {
	return func(c *templateConfig) {
		c.name = name
	}
}

// WithSerializer replaces the default serialization policy.
func WithSerializer(s Serializer) TemplateOption {
	return func(c *templateConfig) {
		if s != nil {
			c.serializer = s
		}
	}
}

// New parses source eagerly and returns a Template. Malformed placeholder
// syntax fails fast with a *TemplateSyntaxError.
func New(source string, opts ...TemplateOption) (*Template, error) {
	config := &templateConfig{
		serializer: DefaultSerializer{},
	}
	for _, opt := range opts {
		opt(config)
	}

	names, err := internal.ScanPlaceholders(source)
	if err != nil {
		var scanErr *internal.ScanError
		if errors.As(err, &scanErr) {
			return nil, &TemplateSyntaxError{
				TemplateName: config.name,
				Message:      scanErr.Message,
				Fragment:     scanErr.Fragment,
				Pos:          scanErr.Pos,
			}
		}
		return nil, err
	}

	index := make(map[string]struct{}, len(names))
	for _, name := range names {
		index[name] = struct{}{}
	}

	return &Template{
		name:         config.name,
		source:       source,
		placeholders: names,
		index:        index,
		defaults:     make(map[string]any),
		serializer:   config.serializer,
	}, nil
}

// MustNew parses source and panics on syntax errors.
func MustNew(source string, opts ...TemplateOption) *Template {
	t, err := New(source, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the optional template name.
func (t *Template) Name() string {
	return t.name
}

// Source returns the raw template source.
func (t *Template) Source() string {
	return t.source
}

// Placeholders returns the declared placeholder names in order of first
// occurrence, deduplicated.
func (t *Template) Placeholders() []string {
	out := make([]string, len(t.placeholders))
	copy(out, t.placeholders)
	return out
}

// HasPlaceholder reports whether name is declared in the template.
func (t *Template) HasPlaceholder(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Defaults returns a deep copy of the stored default values.
func (t *Template) Defaults() map[string]any {
	return copyDefaults(t.defaults)
}

// SetDefault stores a deep copy of each value as the default for its key,
// overwriting prior defaults. Keys that are not declared placeholders are
// accepted and stored; defaults may be set preemptively.
func (t *Template) SetDefault(values map[string]any) {
	for key, value := range values {
		t.defaults[key] = deepCopyValue(value)
	}
}

// Substitute pre-fills the provided keys and returns a new Template with the
// rewritten source. The receiver is untouched. The new template inherits the
// name and serializer; placeholders are re-parsed from the rewritten source
// and defaults carry over only for keys still unfilled. All keys are
// validated before any substitution happens.
func (t *Template) Substitute(values map[string]any) (*Template, error) {
	if err := t.validateKeys(values); err != nil {
		return nil, err
	}

	mapping, err := t.prepare(true, values)
	if err != nil {
		return nil, err
	}

	rewritten := t.source
	for key, text := range mapping {
		rewritten = strings.ReplaceAll(rewritten, placeholderToken(key), text)
	}

	next, err := New(rewritten, WithName(t.name), WithSerializer(t.serializer))
	if err != nil {
		return nil, err
	}

	for key, value := range t.defaults {
		if next.HasPlaceholder(key) {
			next.defaults[key] = deepCopyValue(value)
		}
	}

	return next, nil
}

// ToString renders the template to its final string. Values override
// same-named defaults. Fails with *InvalidTemplateKeysError if values holds
// undeclared keys, with *MissingTemplateValuesError if any placeholder ends
// up without an effective value, and with *TemplateSerializationError if a
// value cannot be converted to text. Key validation and missing-value
// detection each collect the complete offending set.
func (t *Template) ToString(values map[string]any) (string, error) {
	if err := t.validateKeys(values); err != nil {
		return "", err
	}

	effective := make(map[string]any, len(t.defaults)+len(values))
	for key, value := range t.defaults {
		effective[key] = value
	}
	for key, value := range values {
		effective[key] = value
	}

	var missing []string
	for _, name := range t.placeholders {
		if _, ok := effective[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return "", &MissingTemplateValuesError{
			TemplateName:  t.name,
			MissingValues: missing,
		}
	}

	// Serialize only declared placeholders; preemptive defaults for unknown
	// keys must not be able to fail the render.
	needed := make(map[string]any, len(t.placeholders))
	for _, name := range t.placeholders {
		needed[name] = effective[name]
	}

	mapping, err := t.prepare(false, needed)
	if err != nil {
		return "", err
	}

	out := t.source
	for key, text := range mapping {
		out = strings.ReplaceAll(out, placeholderToken(key), text)
	}

	return out, nil
}

// Equal reports whether two templates have the same name and source.
// Defaults are not part of equality.
func (t *Template) Equal(other *Template) bool {
	if other == nil {
		return false
	}
	return t.name == other.name && t.source == other.source
}

// String returns a human-readable form including the name, if set.
func (t *Template) String() string {
	if t.name != "" {
		return "Template [" + t.name + "]:\n\n" + t.source
	}
	return "Template:\n\n" + t.source
}

// validateKeys checks that every provided key is a declared placeholder and
// collects the full invalid set before failing.
func (t *Template) validateKeys(values map[string]any) error {
	var invalid []string
	for key := range values {
		if !t.HasPlaceholder(key) {
			invalid = append(invalid, key)
		}
	}
	if len(invalid) == 0 {
		return nil
	}

	sort.Strings(invalid)
	return &InvalidTemplateKeysError{
		TemplateName: t.name,
		InvalidKeys:  invalid,
		ValidKeys:    t.Placeholders(),
	}
}

// prepare serializes each value into its substitution text. In splice mode
// (Substitute) a nested *Template contributes its raw source so its
// placeholders merge into the result; in render mode (ToString) it is fully
// rendered with its own defaults. Failures are attributed to the key being
// substituted.
func (t *Template) prepare(splice bool, values map[string]any) (map[string]string, error) {
	mapping := make(map[string]string, len(values))
	for key, value := range values {
		text, err := t.serializeFor(splice, value)
		if err != nil {
			return nil, &TemplateSerializationError{
				TemplateName: t.name,
				Key:          key,
				ValueType:    valueTypeName(value),
				Err:          err,
			}
		}
		mapping[key] = text
	}
	return mapping, nil
}

// serializeFor converts a single value, handling nested templates before
// delegating to the configured serializer.
func (t *Template) serializeFor(splice bool, value any) (string, error) {
	if nested, ok := value.(*Template); ok {
		if splice {
			return nested.source, nil
		}
		return nested.ToString(nil)
	}
	return t.serializer.Serialize(value)
}

// clone duplicates the template including a deep copy of its defaults.
func (t *Template) clone() *Template {
	return &Template{
		name:         t.name,
		source:       t.source,
		placeholders: t.Placeholders(),
		index:        t.index,
		defaults:     copyDefaults(t.defaults),
		serializer:   t.serializer,
	}
}

// placeholderToken builds the literal `${name}` token for a key.
func placeholderToken(key string) string {
	return PlaceholderOpen + key + PlaceholderClose
}
