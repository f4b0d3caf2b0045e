// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme carries colour overrides from configuration. Empty fields keep the
// built-in colour.
type Theme struct {
	Highlight   string
	Subtle      string
	ScreenOne   string
	ScreenTwo   string
	ScreenThree string
}

var (
	// Text
	TextPrimaryColor = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#CCCCCC"}
	TextMutedColor   = lipgloss.AdaptiveColor{Light: "#8C8C8C", Dark: "#696969"}
	TextOnPanelColor = lipgloss.Color("#000000")

	// Accent used for the focused button and the sheet handle
	HighlightColor = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// Panel backgrounds for the three screens
	ScreenOneColor   = lipgloss.Color("#FFFF00")
	ScreenTwoColor   = lipgloss.Color("#00FFFF")
	ScreenThreeColor = lipgloss.Color("#D3D3D3")

	CloseButtonColor = lipgloss.Color("#808080")

	// Toast borders
	ToastBorderInfoColor  = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	ToastBorderErrorColor = lipgloss.AdaptiveColor{Light: "#FF8787", Dark: "#FF8787"}

	// Button colors
	ButtonTextColor           = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	ButtonPrimaryBgColor      = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#1A5276"}
	ButtonPrimaryFocusBgColor = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#3498DB"}
)

var (
	baseButtonStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true)

	PrimaryButtonStyle        lipgloss.Style
	PrimaryButtonFocusedStyle lipgloss.Style

	CloseButtonStyle lipgloss.Style

	// Top edge of the sheet
	SheetHandleStyle lipgloss.Style

	StatusBarStyle lipgloss.Style
	HelpStyle      lipgloss.Style
)

func init() {
	rebuild()
}

// ApplyTheme applies colour overrides and rebuilds the derived styles.
func ApplyTheme(t Theme) {
	if t.Highlight != "" {
		HighlightColor = lipgloss.AdaptiveColor{Light: t.Highlight, Dark: t.Highlight}
	}
	if t.Subtle != "" {
		TextMutedColor = lipgloss.AdaptiveColor{Light: t.Subtle, Dark: t.Subtle}
	}
	if t.ScreenOne != "" {
		ScreenOneColor = lipgloss.Color(t.ScreenOne)
	}
	if t.ScreenTwo != "" {
		ScreenTwoColor = lipgloss.Color(t.ScreenTwo)
	}
	if t.ScreenThree != "" {
		ScreenThreeColor = lipgloss.Color(t.ScreenThree)
	}
	rebuild()
}

func rebuild() {
	PrimaryButtonStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonPrimaryBgColor)

	PrimaryButtonFocusedStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonPrimaryFocusBgColor).
		Underline(true).
		UnderlineSpaces(true)

	CloseButtonStyle = lipgloss.NewStyle().
		Foreground(CloseButtonColor).
		Bold(true)

	SheetHandleStyle = lipgloss.NewStyle().
		Foreground(HighlightColor)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(TextMutedColor).
		Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
		Foreground(TextMutedColor).
		Padding(0, 1)
}
