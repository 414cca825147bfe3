// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cybrota/ordbench/bench"
)

const configFileName = ".ordbench.yaml"

// Report output formats.
const (
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatYAML     = "yaml"
)

type ReportConfig struct {
	Format string `yaml:"format"`
	Width  int    `yaml:"width"`
}

type Config struct {
	Benchmark bench.Config `yaml:"benchmark"`
	Report    ReportConfig `yaml:"report"`
}

func defaultConfig() Config {
	return Config{
		Benchmark: bench.DefaultConfig(),
		Report: ReportConfig{
			Format: FormatTable,
			Width:  100,
		},
	}
}

// Validate checks the benchmark section and the report format.
func (c *Config) Validate() error {
	if err := c.Benchmark.Validate(); err != nil {
		return err
	}
	switch c.Report.Format {
	case FormatTable, FormatMarkdown, FormatYAML:
	default:
		return fmt.Errorf("unknown report format %q (want %s)", c.Report.Format,
			strings.Join([]string{FormatTable, FormatMarkdown, FormatYAML}, ", "))
	}
	return nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.ordbench.yaml. A missing file or home directory
// yields the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := defaultConfig()
		return &config, nil
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom reads the YAML file at path on top of the defaults, so keys
// absent from the file keep their default values.
func LoadConfigFrom(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &config, nil
		}
		return &config, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		fallback := defaultConfig()
		return &fallback, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return &config, nil
}

func writeConfigFile(path string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	config := defaultConfig()
	return writeConfigFile(configPath, &config)
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	config, err := LoadConfigFrom(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	fmt.Printf("🔧 ordbench Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")
	fmt.Print(formatSettings(config))
}

// formatSettings renders the effective configuration as indented YAML.
func formatSettings(config *Config) string {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Sprintf("  (unable to render settings: %v)\n", err)
	}

	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		fmt.Fprintf(&b, "  %s%s%s\n", Green, line, Reset)
	}
	return b.String()
}
