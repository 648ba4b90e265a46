package main

// Version is the CLI version, overridable at build time via -ldflags.
var Version = "0.1.0"

// Command name constants
const (
	CmdNameRender   = "render"
	CmdNameValidate = "validate"
	CmdNameVars     = "vars"
	CmdNameVersion  = "version"
	CmdNameHelp     = "help"
)

// Exit code constants
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeInputError = 3
)

// Flag name constants
const (
	FlagTemplate = "template"
	FlagName     = "name"
	FlagData     = "data"
	FlagDataFile = "data-file"
	FlagOut      = "out"
	FlagDoc      = "doc"
)

// StdinPath selects stdin as the template input.
const StdinPath = "-"

// Output format constants
const (
	FmtErrorWithCause = "error: %s: %v\n"
	FmtError          = "error: %s\n"
	FmtValidOutput    = "template is valid (%d variables)\n"
	FmtUnknownCommand = "unknown command: %s\n\n"
)

// Error message constants
const (
	ErrMsgMissingTemplate   = "missing template input"
	ErrMsgReadFileFailed    = "failed to read template"
	ErrMsgInvalidJSON       = "failed to parse data JSON"
	ErrMsgInvalidFlags      = "failed to parse flags"
	ErrMsgRenderFailed      = "render failed"
	ErrMsgValidateFailed    = "template is invalid"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgEnvConfigFailed   = "failed to load environment configuration"
	ErrMsgStorageOpenFailed = "failed to open storage"
	ErrMsgStorageLoadFailed = "failed to load template from storage"
	ErrMsgConflictingInputs = "use either -template or -name, not both"
)

// helpText is the full usage text.
const helpText = `promptvar - ${name} prompt template tool

Usage:
  promptvar <command> [flags]

Commands:
  render     Render a template with values
  validate   Check template syntax
  vars       List template variables
  version    Print version
  help       Show this help

Render flags:
  -template <path>   Template file ("-" for stdin)
  -name <name>       Load template from storage instead of a file
  -doc               Treat input as a YAML template document
  -data <json>       Values as a JSON object
  -data-file <path>  Values from a JSON file
  -out <path>        Write output to file instead of stdout

Validate/vars flags:
  -template <path>   Template file ("-" for stdin)
  -doc               Treat input as a YAML template document

Environment:
  PROMPTVAR_STORAGE_DRIVER  Storage driver for -name (memory|filesystem|postgres)
  PROMPTVAR_STORAGE_DSN     Driver connection string
  PROMPTVAR_LOG_LEVEL       Log level (debug enables engine logging)

A .env file in the working directory is loaded if present.
`
