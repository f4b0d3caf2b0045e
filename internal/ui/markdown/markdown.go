// Package markdown renders the main view's intro text with glamour and
// caches the result per width.
package markdown

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/zjrosen/sheets/internal/cachemanager"
	"github.com/zjrosen/sheets/internal/log"
)

// noMarginStyle removes glamour's document margins.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

type request struct {
	markdown string
	width    int
	style    string
}

// Renderer renders markdown through a read-through cache.
type Renderer struct {
	style string
	cache *cachemanager.ReadThroughCache[string, request]
}

// DefaultStyle is used when no style is configured.
const DefaultStyle = "dark"

// New creates a renderer. style is "dark" or "light", DefaultStyle when empty.
// A fixed style is used rather than glamour's auto style, which would query
// the terminal and leak the response into the input stream.
func New(style string) *Renderer {
	if style == "" {
		style = DefaultStyle
	}
	return &Renderer{
		style: style,
		cache: cachemanager.NewReadThroughCache[string, request](
			cachemanager.NewInMemoryCacheManager[string]("markdown", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval),
			render,
			cachemanager.DefaultExpiration,
		),
	}
}

// Style returns the glamour style name in use.
func (r *Renderer) Style() string {
	return r.style
}

// Reset drops every cached rendering, e.g. after the intro text changed.
func (r *Renderer) Reset(ctx context.Context) {
	r.cache.Invalidate(ctx)
}

// Render renders md word-wrapped to width.
func (r *Renderer) Render(ctx context.Context, md string, width int) (string, error) {
	if width < 1 {
		width = 1
	}
	req := request{markdown: md, width: width, style: r.style}
	return r.cache.Get(ctx, cacheKey(req), req)
}

// RenderOrPlain renders md and falls back to the raw text on failure.
func (r *Renderer) RenderOrPlain(ctx context.Context, md string, width int) string {
	out, err := r.Render(ctx, md, width)
	if err != nil {
		log.ErrorErr(log.CatUI, "markdown render failed", err, "width", width)
		return md
	}
	return out
}

func render(_ context.Context, req request) (string, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(req.style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(req.width),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := tr.Render(req.markdown)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}

func cacheKey(req request) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(req.markdown))
	return fmt.Sprintf("%s:%d:%016x", req.style, req.width, h.Sum64())
}
