package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorTeal  = lipgloss.Color("#20B9B4")
	colorSlate = lipgloss.Color("#2C4A54")
	colorError = lipgloss.Color("#E74C3C")
)

type styles struct {
	title   lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	border  lipgloss.Style
}

// newStyles binds the palette to w, so color is dropped when w is not a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorTeal),
		muted:   r.NewStyle().Foreground(colorSlate),
		success: r.NewStyle().Foreground(colorTeal),
		failure: r.NewStyle().Foreground(colorError),
		border:  r.NewStyle().Foreground(colorSlate),
	}
}
