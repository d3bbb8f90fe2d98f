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

func TestOverridePath(t *testing.T) {
	assert.Equal(t, filepath.Join("templates", "task-42.yaml"), OverridePath("templates", "task-42"))
}

func TestLoadOverride(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "task-1.yaml")
		require.NoError(t, os.WriteFile(path, []byte("templates:\n  system_template: hello\n"), 0644))

		doc, err := LoadOverride(path)
		require.NoError(t, err)

		value, ok := LookupPath(doc, "templates", "system_template")
		require.True(t, ok)
		assert.Equal(t, "hello", value)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadOverride(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read override file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "task-2.yaml")
		require.NoError(t, os.WriteFile(path, []byte("templates: [unclosed\n"), 0644))

		_, err := LoadOverride(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse override file")
	})

	t.Run("dollar sequences kept verbatim", func(t *testing.T) {
		t.Setenv("HOME", "/home/nobody")
		path := filepath.Join(t.TempDir(), "task-3.yaml")
		require.NoError(t, os.WriteFile(path, []byte("system_template: \"work in $HOME only\"\n"), 0644))

		doc, err := LoadOverride(path)
		require.NoError(t, err)

		value, ok := LookupPath(doc, "system_template")
		require.True(t, ok)
		assert.Equal(t, "work in $HOME only", value)
	})
}

func TestLookupPath(t *testing.T) {
	doc := map[string]any{
		"agent": map[string]any{
			"templates": map[string]any{
				"system_template": "found",
			},
			"name": "main",
		},
		"untyped": map[any]any{
			"inner": "untyped value",
		},
	}

	t.Run("nested hit", func(t *testing.T) {
		value, ok := LookupPath(doc, "agent", "templates", "system_template")
		require.True(t, ok)
		assert.Equal(t, "found", value)
	})

	t.Run("absent key", func(t *testing.T) {
		_, ok := LookupPath(doc, "agent", "missing")
		assert.False(t, ok)
	})

	t.Run("descends past leaf", func(t *testing.T) {
		_, ok := LookupPath(doc, "agent", "name", "deeper")
		assert.False(t, ok)
	})

	t.Run("untyped map node", func(t *testing.T) {
		value, ok := LookupPath(doc, "untyped", "inner")
		require.True(t, ok)
		assert.Equal(t, "untyped value", value)
	})

	t.Run("intermediate value returned as is", func(t *testing.T) {
		value, ok := LookupPath(doc, "agent", "templates")
		require.True(t, ok)
		assert.Equal(t, map[string]any{"system_template": "found"}, value)
	})
}
