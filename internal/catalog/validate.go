// Package catalog loads and validates the read-only reference data (careers
// and cohort statistics) and exposes it as immutable per-request snapshots.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Schema files shipped at the repository root
const (
	careerSchemaFile = "schemas/career_catalog.schema.json"
	cohortSchemaFile = "schemas/cohort_stats.schema.json"
)

// ResolveSchemaPath attempts to find a schema file by trying multiple common
// path resolutions relative to the working directory. Useful when commands
// and tests run from different directories. Returns empty string when no
// candidate exists.
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}

	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}

	return ""
}

// SchemaError reports a catalog document that failed schema validation.
type SchemaError struct {
	Path     string
	Failures []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("catalog file %s failed validation: %s", e.Path, strings.Join(e.Failures, "; "))
}

// validateAgainstSchema checks a JSON document against the named schema file.
// A missing schema file is not an error: validation is skipped so the engine
// still runs from source checkouts without the schemas directory.
func validateAgainstSchema(schemaFile string, documentPath string, document []byte) error {
	schemaPath := ResolveSchemaPath(schemaFile)
	if schemaPath == "" {
		return nil
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + schemaPath)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation of %s: %w", documentPath, err)
	}

	if !result.Valid() {
		failures := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			failures = append(failures, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return &SchemaError{Path: documentPath, Failures: failures}
	}

	return nil
}
