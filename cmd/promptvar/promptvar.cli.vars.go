package main

import (
	"fmt"
	"io"
)

func runVars(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseValidateFlags(CmdNameVars, args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	tmpl, err := loadFileTemplate(cfg.templatePath, cfg.asDocument, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeError
	}

	for _, name := range tmpl.Placeholders() {
		fmt.Fprintln(stdout, name)
	}
	return ExitCodeSuccess
}
