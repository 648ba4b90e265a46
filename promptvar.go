// Package promptvar is a template engine for textual prompts using
// ${name}-style placeholders.
//
// # Basic Usage
//
// Construct a template and render it:
//
//	t, err := promptvar.New("Hello ${name}!")
//	out, err := t.ToString(map[string]any{"name": "Alice"})
//	// out: "Hello Alice!"
//
// # Placeholder Syntax
//
// A placeholder is ${name} where name matches [_a-zA-Z][_a-zA-Z0-9]*.
// Brace characters outside a placeholder are ordinary literals, so templates
// may embed JSON bodies without escaping:
//
//	t := promptvar.MustNew(`Respond with {"answer": "${answer}"}`)
//
// Malformed placeholders (unclosed `${`, empty or invalid names, nested
// braces inside a placeholder body) fail at construction with a
// *TemplateSyntaxError.
//
// # Defaults and Partial Substitution
//
// Defaults are deep-copied when stored and overridden by render-time values:
//
//	t.SetDefault(map[string]any{"name": "Guest"})
//	out, _ := t.ToString(nil)                            // "Hello Guest!"
//	out, _ = t.ToString(map[string]any{"name": "Bob"})   // "Hello Bob!"
//
// Substitute pre-fills a subset of keys and returns a new Template, leaving
// the receiver untouched:
//
//	t2, _ := t.Substitute(map[string]any{"name": "Ada"})
//	// t2.Source(): "Hello Ada!"
//
// # Value Serialization
//
// Non-string values are serialized: numbers and booleans use their literal
// form, time.Time, uuid.UUID and decimal.Decimal use canonical strings, and
// collections encode as deterministic JSON. Unsupported types fail with a
// *TemplateSerializationError naming the offending key. Supply an alternate
// policy via WithSerializer.
//
// # Errors
//
// Validation is total: InvalidTemplateKeysError and
// MissingTemplateValuesError carry the complete offending key sets, never
// just the first bad key.
//
// # Engine and Storage
//
// Engine manages named templates, with optional persistence through
// pluggable storage backends (memory, filesystem, PostgreSQL):
//
//	engine := promptvar.MustNewEngine(promptvar.WithLogger(logger))
//	engine.MustRegisterTemplate("greeting", "Hello ${name}!")
//	out, err := engine.Render(ctx, "greeting", map[string]any{"name": "Alice"})
package promptvar
