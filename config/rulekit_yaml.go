package config

import (
	"fmt"
	"os"

	"github.com/initializ/rulekit/types"
)

// LoadConfig reads and parses a rulekit.yaml file from the given path.
func LoadConfig(path string) (*types.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rulekit config %s: %w", path, err)
	}
	return types.ParseConfig(data)
}
