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

// Package agent defines the host-side surface that template hooks attach
// to: the agent with its template holder, the hook interface, and the
// sequential hook runtime.
package agent

// TemplateSet holds the prompt templates an agent is configured with.
// Only the system template is addressable by hooks today.
type TemplateSet struct {
	SystemTemplate string `yaml:"system_template"`
}

// Agent is a minimal agent host. Real hosts embed richer state; hooks only
// ever touch the template holder surface below.
type Agent struct {
	Name      string
	Templates *TemplateSet
}

// New creates an agent with the given default system template.
func New(name, systemTemplate string) *Agent {
	return &Agent{
		Name:      name,
		Templates: &TemplateSet{SystemTemplate: systemTemplate},
	}
}

// TemplateHolder is the capability an agent must expose for system template
// overrides to apply. Hosts that do not carry templates simply do not
// implement it (or report false), and hooks degrade gracefully.
type TemplateHolder interface {
	// SystemTemplate returns the current system template and whether the
	// holder actually carries one.
	SystemTemplate() (string, bool)

	// SetSystemTemplate overwrites the system template. It reports false
	// when the holder has no template slot to write.
	SetSystemTemplate(template string) bool
}

// SystemTemplate implements TemplateHolder
func (a *Agent) SystemTemplate() (string, bool) {
	if a == nil || a.Templates == nil {
		return "", false
	}
	return a.Templates.SystemTemplate, true
}

// SetSystemTemplate implements TemplateHolder
func (a *Agent) SetSystemTemplate(template string) bool {
	if a == nil || a.Templates == nil {
		return false
	}
	a.Templates.SystemTemplate = template
	return true
}
