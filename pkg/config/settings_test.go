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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSettings_AppliesDefaults(t *testing.T) {
	settings, err := DecodeSettings(map[string]any{
		"instance_id": "task-42",
	})
	require.NoError(t, err)

	assert.Equal(t, "task-42", settings.InstanceID)
	assert.Equal(t, DefaultTemplatesDir, settings.TemplatesDir)
	assert.Equal(t, "info", settings.LogLevel)
	assert.Equal(t, "simple", settings.LogFormat)
}

func TestHookSettings_Validate(t *testing.T) {
	settings := &HookSettings{TemplatesDir: "./templates"}
	err := settings.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "instance_id")

	settings.InstanceID = "task-42"
	assert.NoError(t, settings.Validate())
}

func TestLoadSettings(t *testing.T) {
	t.Setenv("TH_TEMPLATES_DIR", "/srv/templates")

	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := `
instance_id: task-42
templates_dir: ${TH_TEMPLATES_DIR:-./templates}
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "task-42", settings.InstanceID)
	assert.Equal(t, "/srv/templates", settings.TemplatesDir)
	assert.Equal(t, "debug", settings.LogLevel)
}
