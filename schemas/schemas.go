// Package schemas provides embedded JSON Schema documents for rulekit.
package schemas

import _ "embed"

// TrainingExampleSchema is the JSON Schema for extracted training examples.
//
//go:embed training_example.schema.json
var TrainingExampleSchema []byte
