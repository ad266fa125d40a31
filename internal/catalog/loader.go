package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and parsing of the jurisdictions.yaml catalog.
type Loader struct {
	filePath string
}

// NewLoader creates a new catalog loader.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the jurisdictions file.
func (l *Loader) Load() (*Config, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read jurisdictions file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse jurisdictions yaml: %w", err)
	}

	for i, j := range config.Jurisdictions {
		if strings.TrimSpace(j.Slug) == "" {
			return nil, fmt.Errorf("jurisdiction %d has an empty slug", i)
		}
		if strings.TrimSpace(j.Name) == "" {
			return nil, fmt.Errorf("jurisdiction %q has an empty name", j.Slug)
		}
	}

	return &config, nil
}
