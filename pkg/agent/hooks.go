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

package agent

import (
	"github.com/kadirpekel/templatehook/pkg/llms"
)

// Hook is a lifecycle extension point invoked by the host runtime. Hooks
// must not fail the agent: implementations log problems and return.
type Hook interface {
	// OnInit is called once when the agent is initialized. The agent is
	// passed as an opaque reference; hooks that need a capability
	// type-assert for it (see TemplateHolder).
	OnInit(agent any)

	// OnModelQuery is called before each model call with the conversation
	// so far. The extra maps carry free-form host context and may be
	// ignored.
	OnModelQuery(messages []llms.Message, instanceID string, extra ...map[string]any)
}

// BaseHook is a no-op Hook. Embed it to implement only the callbacks a
// hook cares about.
type BaseHook struct{}

// OnInit implements Hook
func (BaseHook) OnInit(agent any) {}

// OnModelQuery implements Hook
func (BaseHook) OnModelQuery(messages []llms.Message, instanceID string, extra ...map[string]any) {
}

// Runtime dispatches lifecycle callbacks to registered hooks in
// registration order. It mirrors how a host runtime drives hooks: Init
// once after agent construction, ModelQuery before every model call.
// Not safe for concurrent use; the host invokes callbacks sequentially.
type Runtime struct {
	hooks []Hook
}

// NewRuntime creates a runtime with the given hooks.
func NewRuntime(hooks ...Hook) *Runtime {
	return &Runtime{hooks: hooks}
}

// AddHook registers an additional hook.
func (r *Runtime) AddHook(h Hook) {
	r.hooks = append(r.hooks, h)
}

// Init runs every hook's OnInit against the agent.
func (r *Runtime) Init(agent any) {
	for _, h := range r.hooks {
		h.OnInit(agent)
	}
}

// ModelQuery runs every hook's OnModelQuery with the upcoming conversation.
func (r *Runtime) ModelQuery(messages []llms.Message, instanceID string, extra ...map[string]any) {
	for _, h := range r.hooks {
		h.OnModelQuery(messages, instanceID, extra...)
	}
}
