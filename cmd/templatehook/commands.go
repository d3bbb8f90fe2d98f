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

package main

import (
	"fmt"

	"github.com/google/uuid"

	templatehook "github.com/kadirpekel/templatehook"
	"github.com/kadirpekel/templatehook/pkg/agent"
	"github.com/kadirpekel/templatehook/pkg/config"
	"github.com/kadirpekel/templatehook/pkg/hooks"
	"github.com/kadirpekel/templatehook/pkg/llms"
)

// fallbackTemplate seeds the demo agent when neither flags nor settings
// provide a default.
const fallbackTemplate = "You are a helpful assistant."

// VersionCmd shows version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(templatehook.GetVersion().String())
	return nil
}

// InspectCmd parses an override file and reports which key path matched.
type InspectCmd struct {
	Path string `arg:"" help:"Override file to inspect." type:"path"`
}

func (c *InspectCmd) Run() error {
	doc, err := config.LoadOverride(c.Path)
	if err != nil {
		return err
	}

	template, matched, ok := hooks.ExtractSystemTemplate(doc)
	if !ok {
		return fmt.Errorf("no usable system template found in %s (values at recognized key paths must be non-blank strings)", c.Path)
	}

	fmt.Printf("matched key path: %s\n", matched)
	fmt.Printf("template length:  %d\n", len(template))
	return nil
}

// ApplyCmd constructs a fresh agent, runs the template override hook
// through the runtime, and prints the resulting system template.
type ApplyCmd struct {
	InstanceID      string `help:"Instance id (generated when omitted)."`
	TemplatesDir    string `help:"Directory holding <instance-id>.yaml override files."`
	DefaultTemplate string `help:"Default system template before overrides."`
}

func (c *ApplyCmd) Run(cli *CLI) error {
	settings := &config.HookSettings{
		InstanceID:      c.InstanceID,
		TemplatesDir:    c.TemplatesDir,
		DefaultTemplate: c.DefaultTemplate,
	}

	// CLI flags win over file settings
	if cli.Config != "" {
		fileSettings, err := config.LoadSettings(cli.Config)
		if err != nil {
			return err
		}
		if settings.InstanceID == "" {
			settings.InstanceID = fileSettings.InstanceID
		}
		if settings.TemplatesDir == "" {
			settings.TemplatesDir = fileSettings.TemplatesDir
		}
		if settings.DefaultTemplate == "" {
			settings.DefaultTemplate = fileSettings.DefaultTemplate
		}
	}

	if settings.InstanceID == "" {
		settings.InstanceID = uuid.NewString()
	}
	if settings.DefaultTemplate == "" {
		settings.DefaultTemplate = fallbackTemplate
	}
	settings.SetDefaults()
	if err := settings.Validate(); err != nil {
		return err
	}

	a := agent.New("main", settings.DefaultTemplate)
	hook := hooks.NewTemplateOverrideHook(settings.InstanceID, settings.TemplatesDir)

	rt := agent.NewRuntime(hook)
	rt.Init(a)
	rt.ModelQuery([]llms.Message{
		{Role: llms.RoleSystem, Content: a.Templates.SystemTemplate},
	}, settings.InstanceID)

	if hook.TemplateLoaded() {
		fmt.Printf("override applied for instance %s\n\n", settings.InstanceID)
	} else {
		fmt.Printf("no override applied for instance %s, agent keeps its default template\n\n", settings.InstanceID)
	}
	fmt.Println(a.Templates.SystemTemplate)
	return nil
}
