// Package config provides YAML-based configuration loading for gridsim.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config contains all settings for the CLI and the terminal host.
type Config struct {
	TickRate int     `yaml:"tick_rate"`
	Scenario string  `yaml:"scenario"`
	DBPath   string  `yaml:"db_path"`
	LogLevel string  `yaml:"log_level"`
	LogFile  string  `yaml:"log_file"`
	Keys     KeysMap `yaml:"keys"`
}

// KeysMap lists the terminal keys bound to each host action.
type KeysMap struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Wait    []string `yaml:"wait"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickRate: 8,
		Scenario: "arena",
		DBPath:   "~/.gridsim/runs.db",
		LogLevel: "info",
		LogFile:  "~/.gridsim/gridsim.log",
		Keys: KeysMap{
			Up:      []string{"w", "up", "k"},
			Down:    []string{"s", "down", "j"},
			Left:    []string{"a", "left", "h"},
			Right:   []string{"d", "right", "l"},
			Wait:    []string{"."},
			Restart: []string{"r"},
			Quit:    []string{"q", "ctrl+c"},
		},
	}
}

// withDefaults fills unset fields from Default.
func (c Config) withDefaults() Config {
	d := Default()
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	if c.Scenario == "" {
		c.Scenario = d.Scenario
	}
	if c.DBPath == "" {
		c.DBPath = d.DBPath
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.LogFile == "" {
		c.LogFile = d.LogFile
	}
	if len(c.Keys.Up) == 0 {
		c.Keys.Up = d.Keys.Up
	}
	if len(c.Keys.Down) == 0 {
		c.Keys.Down = d.Keys.Down
	}
	if len(c.Keys.Left) == 0 {
		c.Keys.Left = d.Keys.Left
	}
	if len(c.Keys.Right) == 0 {
		c.Keys.Right = d.Keys.Right
	}
	if len(c.Keys.Wait) == 0 {
		c.Keys.Wait = d.Keys.Wait
	}
	if len(c.Keys.Restart) == 0 {
		c.Keys.Restart = d.Keys.Restart
	}
	if len(c.Keys.Quit) == 0 {
		c.Keys.Quit = d.Keys.Quit
	}
	return c
}

// Validate checks values that cannot be defaulted.
func (c Config) Validate() error {
	if c.TickRate > 120 {
		return fmt.Errorf("config: tick_rate %d is above 120", c.TickRate)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	return nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
