// Copyright 2025 Kadir Pekel
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

package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultTemplatesDir is used when no templates directory is configured.
const DefaultTemplatesDir = "./templates"

// HookSettings configures a template override hook run from a settings
// file. Env references (${VAR}, ${VAR:-default}, $VAR) in values are
// expanded at load time.
type HookSettings struct {
	// InstanceID names the task instance the hook serves.
	InstanceID string `yaml:"instance_id" mapstructure:"instance_id"`

	// TemplatesDir is the directory holding <instance_id>.yaml files.
	TemplatesDir string `yaml:"templates_dir" mapstructure:"templates_dir"`

	// DefaultTemplate seeds the agent before any override applies.
	DefaultTemplate string `yaml:"default_template" mapstructure:"default_template"`

	// Logging
	LogLevel  string `yaml:"log_level" mapstructure:"log_level"`
	LogFormat string `yaml:"log_format" mapstructure:"log_format"`
	LogFile   string `yaml:"log_file" mapstructure:"log_file"`
}

// SetDefaults implements the settings defaulting pass
func (s *HookSettings) SetDefaults() {
	if s.TemplatesDir == "" {
		s.TemplatesDir = DefaultTemplatesDir
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	if s.LogFormat == "" {
		s.LogFormat = "simple"
	}
}

// Validate implements the settings validation pass
func (s *HookSettings) Validate() error {
	if s.InstanceID == "" {
		return fmt.Errorf("instance_id is required")
	}
	if s.TemplatesDir == "" {
		return fmt.Errorf("templates_dir is required")
	}
	return nil
}

// DecodeSettings decodes a raw settings map into HookSettings, applying
// defaults. Validation is left to the caller so partially-specified maps
// can be merged with CLI flags first.
func DecodeSettings(raw map[string]any) (*HookSettings, error) {
	settings := &HookSettings{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           settings,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create settings decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	settings.SetDefaults()
	return settings, nil
}

// LoadSettings reads a YAML settings file, expands env references, and
// decodes it into HookSettings.
func LoadSettings(path string) (*HookSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	expanded, _ := ExpandEnvVarsInData(raw).(map[string]any)
	return DecodeSettings(expanded)
}
