// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-chat-cli/internal/app"
)

// Printer writes styled status lines to the terminal.
type Printer struct {
	out    io.Writer
	styles styles
}

// NewPrinter returns a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, styles: newStyles(out)}
}

// Header prints the application banner framed by two rules.
func (p *Printer) Header() {
	rule := p.styles.divider.Render(strings.Repeat("=", headerWidth))
	fmt.Fprintf(p.out, "\n%s\n%s\n%s\n\n", rule, p.styles.header.Render(app.MsgTitle), rule)
}

// Title prints a section title preceded by a blank line.
func (p *Printer) Title(title string) {
	fmt.Fprintf(p.out, "\n%s\n", p.styles.title.Render(title))
}

func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.out, p.styles.success.Render("✓ "+msg))
}

func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.out, p.styles.failure.Render("✗ "+msg))
}

func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.out, p.styles.info.Render("ℹ "+msg))
}

func (p *Printer) Warning(msg string) {
	fmt.Fprintln(p.out, p.styles.warning.Render(msg))
}

func (p *Printer) Thinking() {
	fmt.Fprintln(p.out, p.styles.warning.Render(app.MsgThinking))
}

// Assistant prints a reply. Only the label is styled; the reply text is
// written as received.
func (p *Printer) Assistant(reply string) {
	fmt.Fprintf(p.out, "%s%s\n\n", p.styles.assistant.Render("Assistant: "), reply)
}

// Goodbye prints the farewell surrounded by blank lines.
func (p *Printer) Goodbye() {
	fmt.Fprintf(p.out, "\n%s\n\n", p.styles.title.Render(app.MsgGoodbye))
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.out)
}

// Prompt writes label without a trailing newline.
func (p *Printer) Prompt(label string) {
	fmt.Fprint(p.out, p.styles.prompt.Render(label))
}

// UserPrompt writes the chat input prompt.
func (p *Printer) UserPrompt() {
	fmt.Fprint(p.out, p.styles.user.Render("You: "))
}
