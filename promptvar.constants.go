package promptvar

import "time"

// Placeholder delimiter constants
const (
	PlaceholderOpen  = "${"
	PlaceholderClose = "}"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Syntax errors
	ErrMsgSyntaxInvalid = "invalid template syntax"

	// Key and value errors
	ErrMsgInvalidKeys   = "invalid keys provided to template"
	ErrMsgMissingValues = "missing values for variables"

	// Serialization errors
	ErrMsgSerializeFailed   = "failed to serialize value"
	ErrMsgUnsupportedType   = "unsupported value type"
	ErrMsgSerializePanicked = "serializer panicked"

	// Registry errors
	ErrMsgTemplateNotFound  = "template not found"
	ErrMsgTemplateExists    = "template already registered"
	ErrMsgEmptyTemplateName = "template name cannot be empty"
	ErrMsgNoStorage         = "no storage backend configured"

	// Document errors
	ErrMsgDocumentParse  = "document parsing failed"
	ErrMsgDocumentRead   = "document read failed"
	ErrMsgDocumentEmpty  = "document has no template source"
	ErrMsgDocumentEncode = "document encoding failed"
)

// Error code constants for categorization
const (
	ErrCodeSyntax    = "PROMPTVAR_SYNTAX"
	ErrCodeSerialize = "PROMPTVAR_SERIALIZE"
	ErrCodeRegistry  = "PROMPTVAR_REGISTRY"
	ErrCodeStorage   = "PROMPTVAR_STORAGE"
	ErrCodeDocument  = "PROMPTVAR_DOCUMENT"
)

// Metadata key constants for structured errors
const (
	MetaKeyTemplateName = "template_name"
	MetaKeyKey          = "key"
	MetaKeyValueType    = "value_type"
	MetaKeyDriverName   = "driver"
	MetaKeyPath         = "path"
)

// Log message constants
const (
	LogMsgEngineCreated        = "engine created"
	LogMsgTemplateRegistered   = "template registered"
	LogMsgTemplateUnregistered = "template unregistered"
	LogMsgTemplateRendered     = "template rendered"
	LogMsgTemplateLoaded       = "template loaded from storage"
	LogMsgTemplateStored       = "template saved to storage"
)

// Log field name constants
const (
	LogFieldTemplateName = "template_name"
	LogFieldPlaceholders = "placeholders"
	LogFieldVersion      = "version"
	LogFieldDriver       = "driver"
)

// Storage driver name constants
const (
	StorageDriverNameMemory     = "memory"
	StorageDriverNameFilesystem = "filesystem"
	StorageDriverNamePostgres   = "postgres"
)

// Filesystem storage constants
const (
	FilesystemDirPermissions  = 0o755
	FilesystemFilePermissions = 0o644
)

// PostgreSQL storage defaults
const (
	PostgresTablePrefix            = "promptvar_"
	PostgresDefaultMaxOpenConns    = 25
	PostgresDefaultMaxIdleConns    = 5
	PostgresDefaultConnMaxLifetime = 5 * time.Minute
	PostgresDefaultConnMaxIdleTime = 5 * time.Minute
	PostgresDefaultQueryTimeout    = 30 * time.Second
)
