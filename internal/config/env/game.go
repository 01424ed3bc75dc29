package env

import (
	"bowling_backend/internal/config"
	"bowling_backend/internal/model"
	"bowling_backend/pkg/bowling"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultListLimit = 50

type gameFile struct {
	Game struct {
		MaxSeriesGames   int    `yaml:"max_series_games"`
		DefaultInputMode string `yaml:"default_input_mode"`
		ListLimit        int    `yaml:"list_limit"`
	} `yaml:"game"`
}

type gameConfig struct {
	maxSeriesGames   int
	defaultInputMode string
	listLimit        int
}

// NewGameConfigFromYAML читает правила ведения игр из yaml файла
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read game config: %w", err)
	}

	var file gameFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	cfg := &gameConfig{
		maxSeriesGames:   file.Game.MaxSeriesGames,
		defaultInputMode: file.Game.DefaultInputMode,
		listLimit:        file.Game.ListLimit,
	}

	// Значения по умолчанию
	if cfg.maxSeriesGames == 0 {
		cfg.maxSeriesGames = bowling.MaxSeriesGames
	}
	if cfg.defaultInputMode == "" {
		cfg.defaultInputMode = model.InputModeNumeric
	}
	if cfg.listLimit == 0 {
		cfg.listLimit = defaultListLimit
	}

	if cfg.maxSeriesGames < 1 || cfg.maxSeriesGames > bowling.MaxSeriesGames {
		return nil, fmt.Errorf("max_series_games must be between 1 and %d", bowling.MaxSeriesGames)
	}
	if cfg.defaultInputMode != model.InputModeNumeric && cfg.defaultInputMode != model.InputModePins {
		return nil, fmt.Errorf("unknown default_input_mode %q", cfg.defaultInputMode)
	}
	if cfg.listLimit < 0 {
		return nil, fmt.Errorf("list_limit must not be negative")
	}

	return cfg, nil
}

func (c *gameConfig) MaxSeriesGames() int {
	return c.maxSeriesGames
}

func (c *gameConfig) DefaultInputMode() string {
	return c.defaultInputMode
}

func (c *gameConfig) ListLimit() int {
	return c.listLimit
}
