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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kadirpekel/templatehook/pkg/llms"
)

func TestAgent_TemplateHolder(t *testing.T) {
	t.Run("agent with templates", func(t *testing.T) {
		a := New("main", "default template")

		current, ok := a.SystemTemplate()
		require.True(t, ok)
		assert.Equal(t, "default template", current)

		assert.True(t, a.SetSystemTemplate("replaced"))
		current, _ = a.SystemTemplate()
		assert.Equal(t, "replaced", current)
	})

	t.Run("agent without template set", func(t *testing.T) {
		a := &Agent{Name: "bare"}

		_, ok := a.SystemTemplate()
		assert.False(t, ok)
		assert.False(t, a.SetSystemTemplate("ignored"))
		assert.Nil(t, a.Templates)
	})

	t.Run("nil agent", func(t *testing.T) {
		var a *Agent
		_, ok := a.SystemTemplate()
		assert.False(t, ok)
		assert.False(t, a.SetSystemTemplate("ignored"))
	})
}

// orderedHook records the sequence of callbacks it receives.
type orderedHook struct {
	BaseHook
	name  string
	calls *[]string
}

func (h *orderedHook) OnInit(agent any) {
	*h.calls = append(*h.calls, h.name+":init")
}

func (h *orderedHook) OnModelQuery(messages []llms.Message, instanceID string, extra ...map[string]any) {
	*h.calls = append(*h.calls, h.name+":query")
}

func TestRuntime_DispatchOrder(t *testing.T) {
	var calls []string
	first := &orderedHook{name: "first", calls: &calls}
	second := &orderedHook{name: "second", calls: &calls}

	rt := NewRuntime(first)
	rt.AddHook(second)

	a := New("main", "default")
	rt.Init(a)
	rt.ModelQuery([]llms.Message{{Role: llms.RoleUser, Content: "hi"}}, "task-1")

	assert.Equal(t, []string{"first:init", "second:init", "first:query", "second:query"}, calls)
}

func TestBaseHook_NoOps(t *testing.T) {
	var h BaseHook
	assert.NotPanics(t, func() {
		h.OnInit(nil)
		h.OnModelQuery(nil, "")
	})
}
