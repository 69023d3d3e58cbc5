// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// field describes one form input.
type field struct {
	label       string
	placeholder string
	secret      bool
	limit       int
}

// form is the shared machinery behind every input view: a column of
// labeled textinputs with a single focused field, tab/shift-tab
// cycling, and enter advancing until the last field submits.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(fields ...field) form {
	f := form{
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}
	for i, spec := range fields {
		input := textinput.New()
		input.Placeholder = spec.placeholder
		input.Prompt = "> "
		if spec.limit > 0 {
			input.CharLimit = spec.limit
		}
		if spec.secret {
			input.EchoMode = textinput.EchoPassword
			input.EchoCharacter = '•'
		}
		f.labels[i] = spec.label
		f.inputs[i] = input
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

// focusField moves focus to index, wrapping at both ends.
func (f *form) focusField(index int) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	if index < 0 {
		index = len(f.inputs) - 1
	}
	if index >= len(f.inputs) {
		index = 0
	}
	f.inputs[f.focus].Blur()
	f.focus = index
	return f.inputs[f.focus].Focus()
}

func (f *form) next() tea.Cmd { return f.focusField(f.focus + 1) }
func (f *form) prev() tea.Cmd { return f.focusField(f.focus - 1) }

// onLastField reports whether enter should submit rather than advance.
func (f *form) onLastField() bool {
	return len(f.inputs) == 0 || f.focus == len(f.inputs)-1
}

// update forwards a message to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// value returns the trimmed content of field index.
func (f *form) value(index int) string {
	return strings.TrimSpace(f.inputs[index].Value())
}

// reset clears every input and refocuses the first field.
func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
}

// view renders the labeled inputs as a column.
func (f *form) view(theme Theme) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.FaintText)

	var b strings.Builder
	for i := range f.inputs {
		b.WriteString(labelStyle.Render(f.labels[i]))
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		if i < len(f.inputs)-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}
