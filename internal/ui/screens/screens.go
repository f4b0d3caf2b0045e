// Package screens renders the content shown inside the bottom sheet.
package screens

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/sheets/internal/sheet"
	"github.com/zjrosen/sheets/internal/ui/overlay"
	"github.com/zjrosen/sheets/internal/ui/styles"
)

// CloseZoneID is the bubblezone id of the close button.
const CloseZoneID = "sheet-close"

const closeLabel = "[x]"

// Text returns the message a screen displays.
func Text(s sheet.Screen) string {
	switch s := s.(type) {
	case sheet.ScreenOne:
		return "This is bottom screen 1"
	case sheet.ScreenTwo:
		return "This is bottom screen 2"
	case sheet.ScreenThree:
		return fmt.Sprintf("This is bottom screen 3 and %s", s.Argument)
	default:
		return ""
	}
}

// Color returns the panel background of a screen.
func Color(s sheet.Screen) lipgloss.TerminalColor {
	switch s.(type) {
	case sheet.ScreenOne:
		return styles.ScreenOneColor
	case sheet.ScreenTwo:
		return styles.ScreenTwoColor
	case sheet.ScreenThree:
		return styles.ScreenThreeColor
	default:
		return lipgloss.NoColor{}
	}
}

// Render draws s as a width x height panel with its text centred.
// A nil screen renders blank.
func Render(s sheet.Screen, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	text := wordwrap.String(Text(s), max(width-4, 1))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Background(Color(s)).
		Foreground(styles.TextOnPanelColor).
		Align(lipgloss.Center, lipgloss.Center).
		Render(text)
}

// WithCloseButton overlays the close button at the top-right corner of
// content. The button is marked for click detection.
func WithCloseButton(content string, width int) string {
	button := zone.Mark(CloseZoneID, styles.CloseButtonStyle.Render(closeLabel))
	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   lipgloss.Height(content),
		Position: overlay.TopRight,
		PadX:     1,
	}, button, content)
}
