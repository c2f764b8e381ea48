// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

const headerWidth = 60

// styles are bound to a renderer for the actual output so that colour is
// dropped automatically when output is not a terminal.
type styles struct {
	header    lipgloss.Style
	divider   lipgloss.Style
	success   lipgloss.Style
	failure   lipgloss.Style
	info      lipgloss.Style
	warning   lipgloss.Style
	prompt    lipgloss.Style
	user      lipgloss.Style
	assistant lipgloss.Style
	title     lipgloss.Style
	help      lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)

	return styles{
		header:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Width(headerWidth).Align(lipgloss.Center),
		divider:   r.NewStyle(),
		success:   r.NewStyle().Foreground(lipgloss.Color("2")),
		failure:   r.NewStyle().Foreground(lipgloss.Color("1")),
		info:      r.NewStyle().Foreground(lipgloss.Color("4")),
		warning:   r.NewStyle().Foreground(lipgloss.Color("3")),
		prompt:    r.NewStyle().Foreground(lipgloss.Color("4")),
		user:      r.NewStyle().Foreground(lipgloss.Color("2")),
		assistant: r.NewStyle().Foreground(lipgloss.Color("6")),
		title:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		help:      r.NewStyle().Faint(true),
	}
}
