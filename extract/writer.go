package extract

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSONL writes one JSON object per line.
func WriteJSONL(w io.Writer, examples []Example) error {
	enc := json.NewEncoder(w)
	for _, ex := range examples {
		if err := enc.Encode(ex); err != nil {
			return fmt.Errorf("encoding example: %w", err)
		}
	}
	return nil
}

// WriteJSON writes the examples as a single indented JSON array.
func WriteJSON(w io.Writer, examples []Example) error {
	data, err := json.MarshalIndent(examples, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling examples: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// Save writes examples to path in the given format ("jsonl" or "json").
func Save(path, format string, examples []Example) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case "jsonl":
		return WriteJSONL(f, examples)
	case "json":
		return WriteJSON(f, examples)
	default:
		return fmt.Errorf("unknown output format %q (want jsonl or json)", format)
	}
}
