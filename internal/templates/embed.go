// Package templates embeds the files sheets writes or shows by default.
package templates

import (
	"embed"
	"io/fs"
)

// defaults embeds the default config file and the main view intro.
//
//go:embed config.yaml intro.md
var defaults embed.FS

// FS returns the embedded filesystem.
func FS() fs.FS {
	return defaults
}

// DefaultConfig returns the commented config.yaml written on first run.
func DefaultConfig() string {
	return mustRead("config.yaml")
}

// Intro returns the markdown shown above the buttons on the main view.
func Intro() string {
	return mustRead("intro.md")
}

func mustRead(name string) string {
	data, err := defaults.ReadFile(name)
	if err != nil {
		// Embedded at build time; a miss is a build error.
		panic(err)
	}
	return string(data)
}
