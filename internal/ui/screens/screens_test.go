package screens

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/sheets/internal/sheet"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestText(t *testing.T) {
	tests := []struct {
		name   string
		screen sheet.Screen
		want   string
	}{
		{"none", nil, ""},
		{"one", sheet.ScreenOne{}, "This is bottom screen 1"},
		{"two", sheet.ScreenTwo{}, "This is bottom screen 2"},
		{"three", sheet.ScreenThree{Argument: "hello"}, "This is bottom screen 3 and hello"},
		{"three empty argument", sheet.ScreenThree{}, "This is bottom screen 3 and "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Text(tt.screen))
		})
	}
}

func TestRender_Dimensions(t *testing.T) {
	out := Render(sheet.ScreenOne{}, 40, 6)

	require.Equal(t, 6, lipgloss.Height(out))
	require.Equal(t, 40, lipgloss.Width(out))
	require.Contains(t, out, "This is bottom screen 1")
}

func TestRender_WrapsLongArgument(t *testing.T) {
	out := Render(sheet.ScreenThree{Argument: "a rather long argument that cannot fit"}, 20, 8)

	require.Equal(t, 20, lipgloss.Width(out))
	plain := ansi.Strip(out)
	require.Contains(t, plain, "argument")
	require.NotContains(t, plain, "a rather long argument that cannot fit")
}

func TestRender_ZeroSize(t *testing.T) {
	require.Empty(t, Render(sheet.ScreenTwo{}, 0, 5))
	require.Empty(t, Render(sheet.ScreenTwo{}, 5, 0))
}

func TestWithCloseButton(t *testing.T) {
	content := Render(sheet.ScreenTwo{}, 30, 4)

	out := zone.Scan(WithCloseButton(content, 30))
	lines := strings.Split(ansi.Strip(out), "\n")

	require.Len(t, lines, 4)
	require.True(t, strings.HasSuffix(strings.TrimRight(lines[0], " "), "[x]"))
	require.Contains(t, ansi.Strip(out), "This is bottom screen 2")
}
