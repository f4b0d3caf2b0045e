package templates

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFS_ContainsDefaults(t *testing.T) {
	entries, err := fs.ReadDir(FS(), ".")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.ElementsMatch(t, []string{"config.yaml", "intro.md"}, names)
}

func TestDefaultConfig_IsValidYAML(t *testing.T) {
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(DefaultConfig()), &doc))

	for _, section := range []string{"sheet", "screens", "ui", "theme", "flags"} {
		require.Contains(t, doc, section)
	}
}

func TestIntro(t *testing.T) {
	require.Contains(t, Intro(), "# This is Main Content")
}
