package markdown

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestRender_ContainsText(t *testing.T) {
	r := New("")
	require.Equal(t, "dark", r.Style())

	out, err := r.Render(context.Background(), "# This is Main Content\n\nPick a screen.", 40)
	require.NoError(t, err)

	plain := ansi.Strip(out)
	require.Contains(t, plain, "This is Main Content")
	require.Contains(t, plain, "Pick a screen.")
}

func TestRender_WrapsToWidth(t *testing.T) {
	r := New("light")

	out, err := r.Render(context.Background(), "one two three four five six seven eight nine ten", 12)
	require.NoError(t, err)

	for _, line := range strings.Split(ansi.Strip(out), "\n") {
		require.LessOrEqual(t, ansi.StringWidth(strings.TrimRight(line, " ")), 12, "line %q", line)
	}
}

func TestCacheKey_VariesByInput(t *testing.T) {
	a := cacheKey(request{markdown: "a", width: 10, style: "dark"})

	require.Equal(t, a, cacheKey(request{markdown: "a", width: 10, style: "dark"}))
	require.NotEqual(t, a, cacheKey(request{markdown: "b", width: 10, style: "dark"}))
	require.NotEqual(t, a, cacheKey(request{markdown: "a", width: 11, style: "dark"}))
	require.NotEqual(t, a, cacheKey(request{markdown: "a", width: 10, style: "light"}))
}

func TestReset_DropsCachedRenderings(t *testing.T) {
	ctx := context.Background()
	r := New("")

	first, err := r.Render(ctx, "# Title", 20)
	require.NoError(t, err)

	r.Reset(ctx)
	second, err := r.Render(ctx, "# Title", 20)
	require.NoError(t, err)

	require.Equal(t, first, second, "re-rendering after reset is stable")
}

func TestRenderOrPlain_ClampsWidth(t *testing.T) {
	r := New("dark")

	out := r.RenderOrPlain(context.Background(), "hi", 0)

	require.Contains(t, ansi.Strip(out), "hi")
}
