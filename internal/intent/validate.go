package intent

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
})

// SchemaError lists every way a reply deviates from the command schema.
type SchemaError struct {
	Issues []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("reply does not match command schema: %s", strings.Join(e.Issues, "; "))
}

// Validate checks a recovered reply against the command schema. Recover
// accepts any JSON value; callers that care about shape call this
// separately.
func Validate(reply any) error {
	schema, err := loadSchema()
	if err != nil {
		return fmt.Errorf("load command schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(reply))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		issues := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			issues[i] = desc.String()
		}
		return &SchemaError{Issues: issues}
	}

	return nil
}
