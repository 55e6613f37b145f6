// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/invite-cards/internal/validators"
	"github.com/MKhiriev/invite-cards/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const inputWidth = 40

// ShareFunc publishes the edited fields and returns the share link.
type ShareFunc func(ctx context.Context, fields []models.Field) (models.ShareResult, error)

// EditorModel is the bubbletea model of the invitation editor. Every field
// gets one text input bound to its value; locked fields cannot be hidden.
type EditorModel struct {
	ctx       context.Context
	fields    []models.Field
	inputs    []textinput.Model
	focus     int
	validator validators.Validator
	share     ShareFunc
	copyText  func(string) error

	submitting bool
	result     *models.ShareResult
	status     string
	err        error
}

// NewEditorModel builds an editor over a copy of fields.
func NewEditorModel(ctx context.Context, fields []models.Field, share ShareFunc) EditorModel {
	m := EditorModel{
		ctx:       ctx,
		fields:    models.CloneFields(fields),
		inputs:    make([]textinput.Model, len(fields)),
		validator: validators.NewInvitationValidator(),
		share:     share,
		copyText:  clipboard.WriteAll,
	}

	for i, f := range m.fields {
		in := textinput.New()
		in.Width = inputWidth
		in.Placeholder = f.Placeholder
		in.SetValue(f.Value)
		m.inputs[i] = in
	}
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}

	return m
}

func (m EditorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case sharedMsg:
		m.submitting = false
		if msg.err != nil {
			// the form keeps its values so the author can fix and resubmit
			m.err = msg.err
			m.status = ""
			return m, nil
		}
		m.err = nil
		m.result = &msg.result
		if msg.result.Created {
			m.status = "Invitation shared: " + msg.result.URL
		} else {
			m.status = "Already shared: " + msg.result.URL
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("copy to clipboard: %w", msg.err)
			return m, nil
		}
		m.status = "Link copied to clipboard"
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyQuit, keyCancel:
		return m, tea.Quit
	case keyNext, keyNextAlt:
		return m.moveFocus(1), nil
	case keyPrev, keyPrevAlt:
		return m.moveFocus(-1), nil
	case keyToggle:
		return m.toggleVisible(), nil
	case keyShare:
		return m.submit()
	case keyCopy:
		if m.result == nil {
			m.status = "Share the invitation first"
			return m, nil
		}
		return m, cmdCopy(m.copyText, m.result.URL)
	}

	m.err = nil
	return m.updateFocused(msg)
}

func (m EditorModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.inputs) == 0 {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.fields[m.focus].Value = m.inputs[m.focus].Value()
	return m, cmd
}

func (m EditorModel) moveFocus(delta int) EditorModel {
	if len(m.inputs) == 0 {
		return m
	}

	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m EditorModel) toggleVisible() EditorModel {
	if len(m.fields) == 0 {
		return m
	}

	f := &m.fields[m.focus]
	if f.Locked {
		m.status = displayName(*f) + " is locked and always shown"
		return m
	}

	f.Visible = !f.Visible
	if f.Visible {
		m.status = displayName(*f) + " shown"
	} else {
		m.status = displayName(*f) + " hidden"
	}
	return m
}

func (m EditorModel) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	if err := m.validator.Validate(m.ctx, m.fields); err != nil {
		m.err = err
		m.status = ""
		return m, nil
	}

	m.submitting = true
	m.err = nil
	m.status = "Sharing..."
	return m, cmdShare(m.ctx, m.share, models.CloneFields(m.fields))
}

func cmdShare(ctx context.Context, share ShareFunc, fields []models.Field) tea.Cmd {
	return func() tea.Msg {
		result, err := share(ctx, fields)
		return sharedMsg{result: result, err: err}
	}
}

func cmdCopy(copyText func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: copyText(text)}
	}
}

func (m EditorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Edit invitation"))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		name := fmt.Sprintf("%-14s", displayName(f))
		if i == m.focus {
			b.WriteString(focusedStyle.Render("> " + name))
		} else {
			b.WriteString("  " + name)
		}
		b.WriteString(" ")
		b.WriteString(m.inputs[i].View())

		var flags []string
		if !f.Visible {
			flags = append(flags, "hidden")
		}
		if f.Locked {
			flags = append(flags, "locked")
		}
		if len(flags) > 0 {
			b.WriteString(" " + flagStyle.Render("["+strings.Join(flags, ", ")+"]"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderCard(m.fields))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(errorText(m.err)))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(editorHelpRow))

	return appStyle.Render(b.String())
}

// Fields returns the edited fields.
func (m EditorModel) Fields() []models.Field {
	return models.CloneFields(m.fields)
}

// Result returns the last successful share, or nil.
func (m EditorModel) Result() *models.ShareResult {
	return m.result
}

// RunEditor runs the editor until the author quits and returns the last
// successful share, or nil when nothing was shared.
func RunEditor(ctx context.Context, fields []models.Field, share ShareFunc) (*models.ShareResult, error) {
	p := tea.NewProgram(NewEditorModel(ctx, fields, share), tea.WithContext(ctx), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return nil, fmt.Errorf("run editor: %w", err)
	}

	m, ok := final.(EditorModel)
	if !ok {
		return nil, nil
	}
	return m.Result(), nil
}

func errorText(err error) string {
	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		return fmt.Sprintf("%s: %s", fieldErr.Field, fieldErr.Message)
	}
	return err.Error()
}

func displayName(f models.Field) string {
	if label := strings.TrimSuffix(strings.TrimSpace(f.Label), ":"); label != "" {
		return label
	}
	return f.ID
}
