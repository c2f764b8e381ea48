// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-chat-cli/internal/app"
	"github.com/MKhiriev/go-chat-cli/models"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// CredentialPrompter asks the user for an email and password. Blank answers
// fall back to defaults.
type CredentialPrompter interface {
	PromptCredentials(ctx context.Context, defaults models.LoginCredentials) (models.LoginCredentials, error)
}

// NewCredentialPrompter returns the interactive form when in and out are both
// terminals, and a line-based prompt reading through console otherwise.
func NewCredentialPrompter(console *Console, printer *Printer, in io.Reader, out io.Writer) CredentialPrompter {
	if isTerminal(in) && isTerminal(out) {
		return &formPrompter{in: in, out: out, styles: newStyles(out)}
	}
	return &linePrompter{console: console, printer: printer}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type formPrompter struct {
	in     io.Reader
	out    io.Writer
	styles styles
}

func (p *formPrompter) PromptCredentials(ctx context.Context, defaults models.LoginCredentials) (models.LoginCredentials, error) {
	model := NewLoginModel(defaults, p.styles)

	finalModel, err := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	).Run()
	if err != nil {
		if ctx.Err() != nil {
			return models.LoginCredentials{}, ctx.Err()
		}
		return models.LoginCredentials{}, fmt.Errorf("credential form: %w", err)
	}

	result, ok := finalModel.(*LoginModel)
	if !ok {
		return models.LoginCredentials{}, tea.ErrProgramKilled
	}
	if result.Canceled() {
		return models.LoginCredentials{}, ErrUserQuit
	}

	return result.Credentials(), nil
}

type linePrompter struct {
	console *Console
	printer *Printer
}

func (p *linePrompter) PromptCredentials(ctx context.Context, defaults models.LoginCredentials) (models.LoginCredentials, error) {
	p.printer.Title(app.MsgLoginRequired)

	email, err := p.ask(ctx, fmt.Sprintf("Email [%s]: ", defaults.Email))
	if err != nil {
		return models.LoginCredentials{}, err
	}

	password, err := p.ask(ctx, fmt.Sprintf("Password [%s]: ", defaults.Password))
	if err != nil {
		return models.LoginCredentials{}, err
	}

	return models.LoginCredentials{
		Email:    orDefault(email, defaults.Email),
		Password: orDefault(password, defaults.Password),
	}, nil
}

func (p *linePrompter) ask(ctx context.Context, label string) (string, error) {
	p.printer.Prompt(label)
	line, err := p.console.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
