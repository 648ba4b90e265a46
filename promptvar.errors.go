package promptvar

import (
	"strings"

	"github.com/itsatony/go-cuserr"

	"github.com/itsatony/go-promptvar/internal"
)

// Position is a location in template source.
type Position = internal.Position

// templatePrefix formats the optional template name for error messages.
func templatePrefix(name string) string {
	if name == "" {
		return ""
	}
	return "[Template: " + name + "] "
}

// TemplateSyntaxError reports malformed placeholder syntax found at
// construction time. Fragment holds the offending span of the source.
type TemplateSyntaxError struct {
	TemplateName string
	Message      string
	Fragment     string
	Pos          Position
}

// Error implements the error interface.
func (e *TemplateSyntaxError) Error() string {
	return templatePrefix(e.TemplateName) + ErrMsgSyntaxInvalid + ": " + e.Message + ": " + e.Fragment
}

// InvalidTemplateKeysError reports keys supplied by the caller that the
// template does not declare. Both key sets are complete; InvalidKeys is
// sorted, ValidKeys keeps declaration order.
type InvalidTemplateKeysError struct {
	TemplateName string
	InvalidKeys  []string
	ValidKeys    []string
}

// Error implements the error interface.
func (e *InvalidTemplateKeysError) Error() string {
	return templatePrefix(e.TemplateName) + ErrMsgInvalidKeys + ": " +
		strings.Join(e.InvalidKeys, ",") +
		" (template defines: " + strings.Join(e.ValidKeys, ",") + ")"
}

// MissingTemplateValuesError reports declared placeholders left without an
// effective value after defaults and overrides were merged. MissingValues
// keeps declaration order and is complete.
type MissingTemplateValuesError struct {
	TemplateName  string
	MissingValues []string
}

// Error implements the error interface.
func (e *MissingTemplateValuesError) Error() string {
	return templatePrefix(e.TemplateName) + ErrMsgMissingValues + ": " +
		strings.Join(e.MissingValues, ",")
}

// TemplateSerializationError reports a value that could not be converted to
// text. Key is the placeholder being substituted when serialization failed.
type TemplateSerializationError struct {
	TemplateName string
	Key          string
	ValueType    string
	Err          error
}

// Error implements the error interface.
func (e *TemplateSerializationError) Error() string {
	msg := templatePrefix(e.TemplateName) + ErrMsgSerializeFailed +
		" for key '" + e.Key + "' (" + e.ValueType + ")"
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying serialization failure.
func (e *TemplateSerializationError) Unwrap() error {
	return e.Err
}

// NewTemplateNotFoundError creates an error for an unregistered template name.
func NewTemplateNotFoundError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyTemplateName, ErrMsgTemplateNotFound).
		WithMetadata(MetaKeyTemplateName, name)
}

// NewTemplateExistsError creates a registry collision error.
func NewTemplateExistsError(name string) error {
	return cuserr.NewValidationError(ErrCodeRegistry, ErrMsgTemplateExists).
		WithMetadata(MetaKeyTemplateName, name)
}

// NewEmptyTemplateNameError creates an error for empty registry names.
func NewEmptyTemplateNameError() error {
	return cuserr.NewValidationError(ErrCodeRegistry, ErrMsgEmptyTemplateName)
}

// NewNoStorageError creates an error for storage operations on an engine
// without a configured backend.
func NewNoStorageError() error {
	return cuserr.NewValidationError(ErrCodeStorage, ErrMsgNoStorage)
}

// NewUnsupportedTypeError creates the serializer's unsupported-type error.
// Call sites wrap it in a TemplateSerializationError attributed to the key
// being substituted.
func NewUnsupportedTypeError(valueType string) error {
	return cuserr.NewValidationError(ErrCodeSerialize, ErrMsgUnsupportedType).
		WithMetadata(MetaKeyValueType, valueType)
}

// NewDocumentError creates a document import/export error.
func NewDocumentError(msg string, cause error) error {
	if cause != nil {
		return cuserr.WrapStdError(cause, ErrCodeDocument, msg)
	}
	return cuserr.NewValidationError(ErrCodeDocument, msg)
}
