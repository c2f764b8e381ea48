// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the chat client in the terminal: styled status lines,
// a cancellable line reader and the credential prompt.
package tui

import "io"

// TUI bundles the terminal components used by the client application.
type TUI struct {
	Printer  *Printer
	Console  *Console
	Prompter CredentialPrompter
}

// New builds the terminal components for the given input and output. The
// credential prompt is an interactive form when both are terminals.
func New(in io.Reader, out io.Writer) *TUI {
	printer := NewPrinter(out)
	console := NewConsole(in)

	return &TUI{
		Printer:  printer,
		Console:  console,
		Prompter: NewCredentialPrompter(console, printer, in, out),
	}
}
