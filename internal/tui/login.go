// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-chat-cli/internal/app"
	"github.com/MKhiriev/go-chat-cli/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	emailField = iota
	passwordField
)

// LoginModel is the Bubble Tea model for the credential form. It renders two
// text inputs pre-filled with the default email and password; the password is
// masked. Enter on the email field moves to the password, enter on the
// password field submits.
type LoginModel struct {
	defaults models.LoginCredentials
	styles   styles

	inputs    []textinput.Model
	focus     int
	submitted bool
	canceled  bool
}

// NewLoginModel creates a [LoginModel] pre-filled with defaults. The email
// field receives focus immediately.
func NewLoginModel(defaults models.LoginCredentials, s styles) *LoginModel {
	emailInput := textinput.New()
	emailInput.Prompt = "Email:    "
	emailInput.Placeholder = defaults.Email
	emailInput.CharLimit = 256
	emailInput.Width = 40
	emailInput.SetValue(defaults.Email)
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Prompt = "Password: "
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'
	passwordInput.SetValue(defaults.Password)

	return &LoginModel{
		defaults: defaults,
		styles:   s,
		inputs:   []textinput.Model{emailInput, passwordInput},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled keys:
//   - ctrl+c, esc  cancel the form.
//   - tab, down    move focus to the next input.
//   - shift+tab, up move focus to the previous input.
//   - enter        moves to the password or submits.
//
// All other messages are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			m.canceled = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.next):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.prev):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.submit):
			if m.focus == emailField {
				m.focusNext()
				return m, nil
			}
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	if m.submitted || m.canceled {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render(app.MsgLoginRequired))
	b.WriteString("\n\n")
	b.WriteString(m.inputs[emailField].View())
	b.WriteString("\n")
	b.WriteString(m.inputs[passwordField].View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.help.Render("tab: next field │ enter: submit │ esc: quit"))
	b.WriteString("\n")
	return b.String()
}

// Credentials returns the submitted values. A blank field falls back to its
// default.
func (m *LoginModel) Credentials() models.LoginCredentials {
	return models.LoginCredentials{
		Email:    orDefault(strings.TrimSpace(m.inputs[emailField].Value()), m.defaults.Email),
		Password: orDefault(strings.TrimSpace(m.inputs[passwordField].Value()), m.defaults.Password),
	}
}

// Canceled reports whether the user left the form without submitting.
func (m *LoginModel) Canceled() bool {
	return m.canceled
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
