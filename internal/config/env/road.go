package env

import (
	"baccarat_backend/internal/config"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultDisplayColumns = 14

type roadConfig struct {
	displayColumns int
}

type roadYAML struct {
	Road struct {
		DisplayColumns int `yaml:"display_columns"`
	} `yaml:"road"`
}

// NewRoadConfigFromYAML - настройки табло из config.yaml.
// display_columns не задан - берем стандартные 14 колонок
func NewRoadConfigFromYAML(path string) (config.RoadConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read road config: %w", err)
	}

	var parsed roadYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse road config: %w", err)
	}

	cols := parsed.Road.DisplayColumns
	if cols < 0 {
		return nil, fmt.Errorf("display_columns must be positive, got %d", cols)
	}
	if cols == 0 {
		cols = defaultDisplayColumns
	}

	return &roadConfig{
		displayColumns: cols,
	}, nil
}

func (cfg *roadConfig) DisplayColumns() int {
	return cfg.displayColumns
}
