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

// Package config handles override document loading and hook settings.
//
// Override documents are free-form YAML mappings; no schema is enforced.
// Callers extract values with LookupPath, which tolerates any nesting
// shape and reports found/not-found instead of failing.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// OverridePath resolves the override file expected for an instance:
// <dir>/<instanceID>.yaml.
func OverridePath(dir, instanceID string) string {
	return filepath.Join(dir, instanceID+".yaml")
}

// LoadOverride reads and parses an override document into a nested map.
// The document content is taken verbatim; $-sequences in template text are
// not expanded.
func LoadOverride(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read override file: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse override file: %w", err)
	}
	return doc, nil
}

// LookupPath descends through a nested mapping one key at a time and
// returns the value at the end of the path. It reports false as soon as a
// key is absent or an intermediate value is not a string-keyed mapping.
// Both map[string]any and map[any]any nodes are tolerated; YAML documents
// round-tripped through older decoders carry the latter.
func LookupPath(doc map[string]any, path ...string) (any, bool) {
	var current any = doc
	for _, key := range path {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[key]
			if !ok {
				return nil, false
			}
			current = value
		case map[any]any:
			value, ok := node[key]
			if !ok {
				return nil, false
			}
			current = value
		default:
			return nil, false
		}
	}
	return current, true
}
