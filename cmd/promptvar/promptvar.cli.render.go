package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/itsatony/go-promptvar"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	templatePath string
	storedName   string
	asDocument   bool
	dataJSON     string
	dataFilePath string
	outputPath   string
}

// parseRenderFlags parses render command flags.
func parseRenderFlags(args []string) (*renderConfig, error) {
	cfg := &renderConfig{}
	fs := flag.NewFlagSet(CmdNameRender, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "template file path, - for stdin")
	fs.StringVar(&cfg.storedName, FlagName, "", "load template from storage by name")
	fs.BoolVar(&cfg.asDocument, FlagDoc, false, "treat input as a YAML template document")
	fs.StringVar(&cfg.dataJSON, FlagData, "", "values as a JSON object")
	fs.StringVar(&cfg.dataFilePath, FlagDataFile, "", "values from a JSON file")
	fs.StringVar(&cfg.outputPath, FlagOut, "", "output file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRenderFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	if cfg.templatePath != "" && cfg.storedName != "" {
		fmt.Fprintf(stderr, FmtError, ErrMsgConflictingInputs)
		return ExitCodeUsageError
	}
	if cfg.templatePath == "" && cfg.storedName == "" {
		fmt.Fprintf(stderr, FmtError, ErrMsgMissingTemplate)
		return ExitCodeUsageError
	}

	values, err := loadData(cfg.dataJSON, cfg.dataFilePath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidJSON, err)
		return ExitCodeInputError
	}

	var tmpl *promptvar.Template
	if cfg.storedName != "" {
		tmpl, err = loadStoredTemplate(cfg.storedName)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgStorageLoadFailed, err)
			return ExitCodeInputError
		}
	} else {
		tmpl, err = loadFileTemplate(cfg.templatePath, cfg.asDocument, stdin)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
			return ExitCodeInputError
		}
	}

	result, err := tmpl.ToString(values)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgRenderFailed, err)
		return ExitCodeError
	}

	if err := writeOutput(cfg.outputPath, []byte(result), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

// loadFileTemplate reads a template from a file or stdin, optionally as a
// YAML document.
func loadFileTemplate(path string, asDocument bool, stdin io.Reader) (*promptvar.Template, error) {
	source, err := readInput(path, stdin)
	if err != nil {
		return nil, err
	}
	if asDocument {
		return promptvar.ParseDocument(source)
	}
	return promptvar.New(string(source))
}

// loadStoredTemplate fetches a template from the environment-configured
// storage backend.
func loadStoredTemplate(name string) (*promptvar.Template, error) {
	envCfg, err := loadCLIEnv()
	if err != nil {
		return nil, err
	}

	storage, err := promptvar.OpenStorage(envCfg.StorageDriver, envCfg.StorageDSN)
	if err != nil {
		return nil, err
	}
	defer storage.Close()

	engine := promptvar.MustNewEngine(
		promptvar.WithLogger(envCfg.newLogger()),
		promptvar.WithStorage(storage),
	)
	return engine.Load(context.Background(), name)
}
