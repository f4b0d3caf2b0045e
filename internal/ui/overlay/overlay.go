// Package overlay splices rendered content on top of a background view
// without disturbing the ANSI styling of either.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position specifies where to place the foreground.
type Position int

const (
	// Center places the foreground in the middle of the viewport.
	Center Position = iota
	// Bottom anchors the foreground to the bottom edge, horizontally centred.
	Bottom
	// TopRight anchors the foreground to the top-right corner.
	TopRight
)

// Config controls placement.
type Config struct {
	Width    int
	Height   int
	Position Position
	// PadX insets from the right edge (TopRight only).
	PadX int
	// PadY insets from the top or bottom edge.
	PadY int
}

// Place renders fg on top of bg. bg is padded to cfg.Height rows; fg rows
// that fall outside the viewport are dropped.
func Place(cfg Config, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")

	for len(bgLines) < cfg.Height {
		bgLines = append(bgLines, strings.Repeat(" ", cfg.Width))
	}

	startX, startY := position(cfg, lipgloss.Width(fg), len(fgLines))

	for i, fgLine := range fgLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		bgLines[y] = splice(bgLines[y], fgLine, startX)
	}

	return strings.Join(bgLines, "\n")
}

// Reveal keeps only the first rows lines of s, the part of a sliding panel
// that has come into view.
func Reveal(s string, rows int) string {
	if rows <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if rows >= len(lines) {
		return s
	}
	return strings.Join(lines[:rows], "\n")
}

// splice writes fg over bg starting at column x.
func splice(bg, fg string, x int) string {
	left := ansi.Truncate(bg, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}

	var right string
	end := x + ansi.StringWidth(fg)
	if end < ansi.StringWidth(bg) {
		right = ansi.TruncateLeft(bg, end, "")
	}

	return left + fg + right
}

func position(cfg Config, fgWidth, fgHeight int) (x, y int) {
	switch cfg.Position {
	case Bottom:
		x = (cfg.Width - fgWidth) / 2
		y = cfg.Height - fgHeight - cfg.PadY
	case TopRight:
		x = cfg.Width - fgWidth - cfg.PadX
		y = cfg.PadY
	default:
		x = (cfg.Width - fgWidth) / 2
		y = (cfg.Height - fgHeight) / 2
	}

	return max(x, 0), max(y, 0)
}
