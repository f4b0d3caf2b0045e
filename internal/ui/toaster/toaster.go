// Package toaster shows short-lived notifications in the top-right corner,
// clear of the bottom sheet.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/sheets/internal/ui/overlay"
	"github.com/zjrosen/sheets/internal/ui/styles"
)

// DefaultTimeout is how long a toast stays up.
const DefaultTimeout = 3 * time.Second

// Style determines the visual appearance of the toast.
type Style int

const (
	// StyleInfo shows a plain notice.
	StyleInfo Style = iota
	// StyleError marks a failure.
	StyleError
)

// Model holds the toaster state.
type Model struct {
	message string
	style   Style
	visible bool
	// seq identifies the current toast so an older dismiss timer cannot
	// hide a newer toast.
	seq int
}

// New creates a new toaster model.
func New() Model {
	return Model{}
}

// Show displays message and returns the command that dismisses it after d.
func (m Model) Show(message string, style Style, d time.Duration) (Model, tea.Cmd) {
	m.seq++
	m.message = message
	m.style = style
	m.visible = true

	seq := m.seq
	return m, tea.Tick(d, func(time.Time) tea.Msg {
		return DismissMsg{Seq: seq}
	})
}

// Update hides the toast when its own DismissMsg arrives.
func (m Model) Update(msg tea.Msg) Model {
	if dismiss, ok := msg.(DismissMsg); ok && dismiss.Seq == m.seq {
		m.visible = false
		m.message = ""
	}
	return m
}

// Visible returns whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// View renders the toast box.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	switch m.style {
	case StyleError:
		style = style.BorderForeground(styles.ToastBorderErrorColor)
	default:
		style = style.BorderForeground(styles.ToastBorderInfoColor)
	}

	return style.Render(m.message)
}

// Overlay renders the toast on top of bg, below the status bar.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible || m.message == "" {
		return bg
	}

	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.TopRight,
		PadX:     1,
		PadY:     1,
	}, m.View(), bg)
}

// DismissMsg hides the toast with the matching sequence number.
type DismissMsg struct {
	Seq int
}
