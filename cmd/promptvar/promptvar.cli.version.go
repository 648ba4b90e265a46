package main

import (
	"fmt"
	"io"
)

func runVersion(args []string, stdout, stderr io.Writer) int {
	fmt.Fprintln(stdout, "promptvar "+Version)
	return ExitCodeSuccess
}
