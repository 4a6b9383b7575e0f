// Package validate provides configuration and record validation for rulekit.
package validate

import (
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/initializ/rulekit/schemas"
)

var (
	compiledSchema *gojsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

func getSchema() (*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		loader := gojsonschema.NewBytesLoader(schemas.TrainingExampleSchema)
		compiledSchema, compileErr = gojsonschema.NewSchema(loader)
	})
	return compiledSchema, compileErr
}

// ValidateExample validates raw JSON bytes against the training example schema.
// It returns a slice of validation error descriptions and an error if schema
// compilation fails.
func ValidateExample(jsonData []byte) ([]string, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("compiling training example schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("validating training example: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		errs = append(errs, e.String())
	}
	return errs, nil
}
