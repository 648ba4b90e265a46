package promptvar

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the YAML interchange format for a template.
//
// Example:
//
//	name: greeting
//	template: |
//	  Hello ${user}, welcome to ${place}!
//	defaults:
//	  place: Earth
type Document struct {
	// Name is the optional template name.
	Name string `yaml:"name,omitempty"`

	// Template is the raw template source.
	Template string `yaml:"template"`

	// Defaults holds default values applied via SetDefault after parsing.
	Defaults map[string]any `yaml:"defaults,omitempty"`
}

// ParseDocument decodes a YAML document and constructs its Template,
// applying any declared defaults.
func ParseDocument(data []byte) (*Template, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, NewDocumentError(ErrMsgDocumentParse, err)
	}
	if doc.Template == "" {
		return nil, NewDocumentError(ErrMsgDocumentEmpty, nil)
	}

	tmpl, err := New(doc.Template, WithName(doc.Name))
	if err != nil {
		return nil, err
	}
	if len(doc.Defaults) > 0 {
		tmpl.SetDefault(doc.Defaults)
	}

	return tmpl, nil
}

// ParseDocumentFile reads a file and parses it as a template document.
func ParseDocumentFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewDocumentError(ErrMsgDocumentRead, err)
	}
	return ParseDocument(data)
}

// MarshalDocument encodes a template (including its defaults) as a YAML
// document suitable for ParseDocument.
func MarshalDocument(t *Template) ([]byte, error) {
	doc := Document{
		Name:     t.Name(),
		Template: t.Source(),
		Defaults: t.Defaults(),
	}
	if len(doc.Defaults) == 0 {
		doc.Defaults = nil
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, NewDocumentError(ErrMsgDocumentEncode, err)
	}
	return data, nil
}
