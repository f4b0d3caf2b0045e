package cmd

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/sheets/internal/app"
	"github.com/zjrosen/sheets/internal/sheet"
	"github.com/zjrosen/sheets/internal/watcher"
)

func writeFileConfig(t *testing.T, argument string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "sheet:\n  animation_duration: 0s\nscreens:\n  argument: " + argument + "\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

// setArgumentFlag sets --argument on the root command for one test.
func setArgumentFlag(t *testing.T, value string) {
	t.Helper()
	flag := rootCmd.Flags().Lookup("argument")
	require.NotNil(t, flag)
	require.NoError(t, rootCmd.Flags().Set("argument", value))
	t.Cleanup(func() {
		_ = flag.Value.Set("")
		flag.Changed = false
	})
}

func TestConfigLoader_WithoutFlagUsesFile(t *testing.T) {
	path := writeFileConfig(t, "from-file")

	loaded, err := newConfigLoader(rootCmd, path)()

	require.NoError(t, err)
	require.Equal(t, "from-file", loaded.Screens.Argument)
}

func TestConfigLoader_KeepsArgumentFlag(t *testing.T) {
	path := writeFileConfig(t, "from-file")
	setArgumentFlag(t, "from-cli")

	loaded, err := newConfigLoader(rootCmd, path)()

	require.NoError(t, err)
	require.Equal(t, "from-cli", loaded.Screens.Argument)
}

func TestConfigLoader_ArgumentFlagSurvivesReload(t *testing.T) {
	path := writeFileConfig(t, "from-file")
	setArgumentFlag(t, "from-cli")
	loader := newConfigLoader(rootCmd, path)

	initial, err := loader()
	require.NoError(t, err)

	m := app.New(app.Options{Config: initial, Loader: loader})
	defer func() { _ = m.Close() }()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	next, _ = next.Update(watcher.ChangedMsg{Path: path})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	m = next.(app.Model)

	require.Equal(t, "config reloaded", m.Status())
	require.Equal(t, sheet.ScreenThree{Argument: "from-cli"}, m.Sheet().CurrentVariant())
}
