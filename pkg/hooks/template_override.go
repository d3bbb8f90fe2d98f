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

// Package hooks implements agent lifecycle hooks, currently the template
// override hook that loads instance-specific system templates.
package hooks

import (
	"log/slog"
	"os"
	"strings"

	"github.com/kadirpekel/templatehook/pkg/agent"
	"github.com/kadirpekel/templatehook/pkg/config"
	"github.com/kadirpekel/templatehook/pkg/llms"
	"github.com/kadirpekel/templatehook/pkg/logger"
)

// systemTemplatePaths are the recognized override document shapes, tried
// in precedence order. First path yielding a non-blank string wins.
var systemTemplatePaths = [][]string{
	{"agent", "templates", "system_template"},
	{"templates", "system_template"},
	{"system_template"},
	{"agent", "system_template"},
}

// TemplateOverrideHook loads an instance-specific system template from
// <templatesDir>/<instanceID>.yaml during agent initialization and applies
// it to the agent's template holder. A missing file is the normal case.
// Neither callback ever fails the host; every problem degrades to "no
// override applied" plus a log line.
//
// The host runtime invokes OnInit and OnModelQuery sequentially; the hook
// provides no locking of its own.
type TemplateOverrideHook struct {
	agent.BaseHook

	instanceID     string
	templatesDir   string
	logger         *slog.Logger
	templateLoaded bool
}

// Option configures a TemplateOverrideHook.
type Option func(*TemplateOverrideHook)

// WithLogger overrides the hook's logging channel.
func WithLogger(l *slog.Logger) Option {
	return func(h *TemplateOverrideHook) {
		h.logger = l
	}
}

// NewTemplateOverrideHook creates a hook for one instance. The filesystem
// is not touched until OnInit.
func NewTemplateOverrideHook(instanceID, templatesDir string, opts ...Option) *TemplateOverrideHook {
	h := &TemplateOverrideHook{
		instanceID:   instanceID,
		templatesDir: templatesDir,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = logger.Named("template-override")
	}
	h.logger = h.logger.With("instance_id", instanceID)
	return h
}

// TemplateLoaded reports whether an override has been applied.
func (h *TemplateOverrideHook) TemplateLoaded() bool {
	return h.templateLoaded
}

// OnInit loads and applies the instance's template override, if one is
// configured. It mutates at most one attribute on the agent (the system
// template) and never panics or returns an error to the host.
func (h *TemplateOverrideHook) OnInit(a any) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("Template override failed", "panic", r)
		}
	}()

	path := config.OverridePath(h.templatesDir, h.instanceID)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		h.logger.Info("No template override configured", "path", path)
		return
	}

	h.logger.Info("Loading template override", "path", path)
	doc, err := config.LoadOverride(path)
	if err != nil {
		h.logger.Error("Failed to load template override", "error", err)
		return
	}

	template, matched, ok := ExtractSystemTemplate(doc)
	if !ok {
		h.logger.Warn("No usable system template in override file", "path", path)
		return
	}
	h.logger.Debug("Found system template override", "key_path", matched)

	holder, ok := a.(agent.TemplateHolder)
	if !ok {
		h.logger.Warn("Agent does not expose a system template holder, override not applied")
		return
	}
	original, ok := holder.SystemTemplate()
	if !ok {
		h.logger.Warn("Agent has no system template slot, override not applied")
		return
	}

	holder.SetSystemTemplate(template)
	h.templateLoaded = true
	h.logger.Info("Applied custom system template")
	h.logger.Debug("System template replaced", "old_len", len(original), "new_len", len(template))
}

// OnModelQuery logs once, on the first query of a run, that a custom
// template is in use. Purely observational; hosts may skip this callback
// entirely.
func (h *TemplateOverrideHook) OnModelQuery(messages []llms.Message, instanceID string, extra ...map[string]any) {
	if h.templateLoaded && len(messages) == 1 {
		h.logger.Info("Instance is using a custom system template")
	}
}

// ExtractSystemTemplate searches an override document for a system
// template, trying each recognized key path in precedence order. A path
// whose value is absent, not a string, or blank after trimming is a miss
// and the next path is tried. Returns the trimmed template, the dotted
// key path that matched, and whether a template was found.
func ExtractSystemTemplate(doc map[string]any) (template, matchedPath string, ok bool) {
	for _, path := range systemTemplatePaths {
		value, found := config.LookupPath(doc, path...)
		if !found {
			continue
		}
		s, isString := value.(string)
		if !isString {
			continue
		}
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			return trimmed, strings.Join(path, "."), true
		}
	}
	return "", "", false
}
