package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds sweep and input-layout defaults. Values come from the
// built-in defaults, then an optional yaml file, then command-line
// flags, in increasing order of precedence.
type config struct {
	InitialWindowSize int    `yaml:"initial_window_size"`
	Steps             int    `yaml:"steps"`
	ValueColumn       string `yaml:"value_column"`
	TimeColumn        string `yaml:"time_column"`
	NoHeader          bool   `yaml:"no_header"`
}

func defaultConfig() config {
	return config{
		InitialWindowSize: 10,
		Steps:             45,
		ValueColumn:       "y",
	}
}

// mergeFile overlays non-zero values from a yaml file onto the config.
func (c *config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var file config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if file.InitialWindowSize != 0 {
		c.InitialWindowSize = file.InitialWindowSize
	}
	if file.Steps != 0 {
		c.Steps = file.Steps
	}
	if file.ValueColumn != "" {
		c.ValueColumn = file.ValueColumn
	}
	if file.TimeColumn != "" {
		c.TimeColumn = file.TimeColumn
	}
	if file.NoHeader {
		c.NoHeader = true
	}
	return nil
}
