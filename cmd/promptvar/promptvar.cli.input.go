package main

import (
	"encoding/json"
	"io"
	"os"
)

// readInput reads template source from a file, or from stdin when path is "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == StdinPath {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// writeOutput writes rendered output to a file, or to stdout when path is empty.
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// loadData decodes render values from an inline JSON object and/or a JSON
// file. Inline values win on key collisions.
func loadData(dataJSON, dataFilePath string) (map[string]any, error) {
	values := make(map[string]any)

	if dataFilePath != "" {
		raw, err := os.ReadFile(dataFilePath)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &values); err != nil {
			return nil, err
		}
	}

	if dataJSON != "" {
		inline := make(map[string]any)
		if err := json.Unmarshal([]byte(dataJSON), &inline); err != nil {
			return nil, err
		}
		for k, v := range inline {
			values[k] = v
		}
	}

	return values, nil
}
