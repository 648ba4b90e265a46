package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// validateConfig holds parsed validate/vars command configuration
type validateConfig struct {
	templatePath string
	asDocument   bool
}

// parseValidateFlags parses flags shared by validate and vars.
func parseValidateFlags(name string, args []string) (*validateConfig, error) {
	cfg := &validateConfig{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "template file path, - for stdin")
	fs.BoolVar(&cfg.asDocument, FlagDoc, false, "treat input as a YAML template document")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}
	return cfg, nil
}

func runValidate(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseValidateFlags(CmdNameValidate, args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	tmpl, err := loadFileTemplate(cfg.templatePath, cfg.asDocument, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgValidateFailed, err)
		return ExitCodeError
	}

	fmt.Fprintf(stdout, FmtValidOutput, len(tmpl.Placeholders()))
	return ExitCodeSuccess
}
