// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bytes"
	"testing"

	"github.com/MKhiriev/go-chat-cli/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDefaults = models.LoginCredentials{Email: "test@example.com", Password: "Test123!@#"}

func newTestLoginModel() *LoginModel {
	return NewLoginModel(testDefaults, newStyles(&bytes.Buffer{}))
}

func press(m *LoginModel, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func TestLoginModel_DefaultsPrefilled(t *testing.T) {
	m := newTestLoginModel()

	assert.Equal(t, testDefaults, m.Credentials())
	assert.Equal(t, emailField, m.focus)
	assert.Contains(t, m.View(), "Login Required")
	assert.NotContains(t, m.View(), testDefaults.Password, "password must be masked")
}

func TestLoginModel_EnterMovesToPasswordThenSubmits(t *testing.T) {
	m := newTestLoginModel()

	cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, passwordField, m.focus)
	assert.False(t, m.submitted)

	cmd = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.True(t, m.submitted)
	assert.False(t, m.Canceled())
	assert.Empty(t, m.View())
}

func TestLoginModel_TypedValues(t *testing.T) {
	m := newTestLoginModel()
	m.inputs[emailField].SetValue("")
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("bob@example.com")})

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	m.inputs[passwordField].SetValue("")
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s3cret")})

	assert.Equal(t, models.LoginCredentials{Email: "bob@example.com", Password: "s3cret"}, m.Credentials())
}

func TestLoginModel_BlankFallsBackToDefaults(t *testing.T) {
	m := newTestLoginModel()
	m.inputs[emailField].SetValue("   ")
	m.inputs[passwordField].SetValue("")

	assert.Equal(t, testDefaults, m.Credentials())
}

func TestLoginModel_FocusWraps(t *testing.T) {
	m := newTestLoginModel()

	press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, passwordField, m.focus)

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, emailField, m.focus)
}

func TestLoginModel_Cancel(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		m := newTestLoginModel()

		cmd := press(m, tea.KeyMsg{Type: k})

		require.NotNil(t, cmd)
		assert.True(t, m.Canceled())
		assert.False(t, m.submitted)
	}
}
