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

// Package templatehook provides per-instance system template overrides for
// AI agents.
//
// A template override hook is attached to an agent at construction time.
// During agent initialization it looks for an optional YAML file named after
// the instance id in a configured directory and, when one is present,
// replaces the agent's default system template with the template found in
// that file. A missing file is the normal case and leaves the agent
// untouched; a malformed file is logged and ignored. The hook never fails
// the agent it is attached to.
//
// # Quick Start
//
//	hook := hooks.NewTemplateOverrideHook("task-42", "./templates")
//	rt := agent.NewRuntime(hook)
//	rt.Init(myAgent)
//
// Override files may carry the template at any of these locations, tried in
// order:
//
//	agent.templates.system_template
//	templates.system_template
//	system_template
//	agent.system_template
//
// See pkg/hooks for the hook implementation, pkg/agent for the host-side
// hook surface, and cmd/templatehook for the inspection CLI.
package templatehook
