package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Apshaya/RES-Checker/internal/schemas"
)

// emitResult encodes a result as indented JSON and writes it to outPath, or
// to stdout when no path was given. When schemaName is non-empty the JSON is
// validated against the named schema before it leaves the process.
func emitResult(result any, schemaName, outPath string) error {
	raw, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if schemaName != "" {
		if err := schemas.Validate(schemaName, raw); err != nil {
			return fmt.Errorf("result failed schema validation: %w", err)
		}
	}

	if outPath == "" {
		_, err := fmt.Fprintln(os.Stdout, string(raw))
		return err
	}
	if err := os.WriteFile(outPath, append(raw, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Result written to %s\n", outPath)
	return nil
}
