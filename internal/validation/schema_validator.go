package validation

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrSchemaViolation is returned when a document does not satisfy its schema
var ErrSchemaViolation = errors.New("schema violation")

// SchemaValidator validates JSON documents against JSON schema files
type SchemaValidator interface {
	ValidateBytes(data []byte, schemaPath string) error
}

type schemaValidator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
	printer  *message.Printer
}

// NewSchemaValidator creates a validator that compiles each schema once
func NewSchemaValidator() SchemaValidator {
	return &schemaValidator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
		printer:  message.NewPrinter(language.English),
	}
}

// ValidateBytes validates a JSON document against the schema at schemaPath
func (v *schemaValidator) ValidateBytes(data []byte, schemaPath string) error {
	schema, err := v.schema(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaPath, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			var lines []string
			v.collect(ve, &lines)
			return fmt.Errorf("%w:\n%s", ErrSchemaViolation, strings.Join(lines, "\n"))
		}
		return fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	return nil
}

func (v *schemaValidator) schema(schemaPath string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if s, ok := v.schemas[schemaPath]; ok {
		return s, nil
	}

	resolved, err := resolveSchemaPath(schemaPath)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	if err := v.compiler.AddResource(resolved, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	s, err := v.compiler.Compile(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[schemaPath] = s
	return s, nil
}

// collect flattens leaf validation errors into "at <path>: <keyword>: <message>" lines
func (v *schemaValidator) collect(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) > 0 {
		for _, cause := range err.Causes {
			v.collect(cause, lines)
		}
		return
	}

	location := "(root)"
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}

	keyword := "schema"
	detail := ""
	if err.ErrorKind != nil {
		if path := err.ErrorKind.KeywordPath(); len(path) > 0 {
			keyword = strings.Join(path, ".")
		}
		detail = err.ErrorKind.LocalizedString(v.printer)
	}
	*lines = append(*lines, fmt.Sprintf("  - at %s: %s: %s", location, keyword, detail))
}

// resolveSchemaPath finds schemaPath as given, or relative to the nearest
// ancestor directory holding go.mod
func resolveSchemaPath(schemaPath string) (string, error) {
	if filepath.IsAbs(schemaPath) {
		return schemaPath, nil
	}
	if _, err := os.Stat(schemaPath); err == nil {
		return filepath.Abs(schemaPath)
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, schemaPath)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return "", fmt.Errorf("schema file not found: %s", schemaPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("schema file not found: %s", schemaPath)
		}
		dir = parent
	}
}
