package sheet

import (
	"testing"

	"pgregory.net/rapid"
)

// ============================================================================
// Property-Based Tests for Sheet Invariants
// ============================================================================

func screenGen() *rapid.Generator[Screen] {
	return rapid.Custom(func(t *rapid.T) Screen {
		switch rapid.IntRange(0, 2).Draw(t, "kind") {
		case 0:
			return ScreenOne{}
		case 1:
			return ScreenTwo{}
		default:
			return ScreenThree{Argument: rapid.String().Draw(t, "argument")}
		}
	})
}

func settleRapid(t *rapid.T, c Controller) Controller {
	for i := 0; i < 100 && !c.Visibility().Settled(); i++ {
		c, _ = c.Update(frameFor(c))
	}
	if !c.Visibility().Settled() {
		t.Fatalf("controller never settled: %s", c.Visibility())
	}
	return c
}

// TestProperty_OpenThenReadReturnsScreen: open(V) followed by a read before
// any collapse returns V, at every frame of the animation.
func TestProperty_OpenThenReadReturnsScreen(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := New(fourFrames())
		defer c.Dispose()

		want := screenGen().Draw(t, "screen")
		c, _ = c.Open(want)

		frames := rapid.IntRange(0, 6).Draw(t, "frames")
		for i := 0; i < frames; i++ {
			if got := c.CurrentVariant(); got != want {
				t.Fatalf("frame %d: got %#v, want %#v", i, got, want)
			}
			c, _ = c.Update(frameFor(c))
		}
		if got := c.CurrentVariant(); got != want {
			t.Fatalf("got %#v, want %#v", got, want)
		}
	})
}

// TestProperty_CloseCompletesToNone: from any reachable state, a completed
// close leaves the sheet collapsed with no screen.
func TestProperty_CloseCompletesToNone(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := New(fourFrames())
		defer c.Dispose()

		c = randomWalk(t, c)
		c, _ = c.Close()
		c = settleRapid(t, c)

		if c.Visibility() != Collapsed {
			t.Fatalf("visibility %s after close", c.Visibility())
		}
		if c.CurrentVariant() != nil || c.Selector().Current() != nil {
			t.Fatalf("selection survived close: %#v", c.Selector().Current())
		}
	})
}

// TestProperty_ReopenLaw: open(A) then open(B) without collapse settles
// expanded on B.
func TestProperty_ReopenLaw(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := New(fourFrames())
		defer c.Dispose()

		a := screenGen().Draw(t, "a")
		b := screenGen().Draw(t, "b")

		c, _ = c.Open(a)
		frames := rapid.IntRange(0, 6).Draw(t, "frames")
		for i := 0; i < frames; i++ {
			c, _ = c.Update(frameFor(c))
		}
		c, _ = c.Open(b)
		c = settleRapid(t, c)

		if !c.IsExpanded() {
			t.Fatalf("expected expanded, got %s", c.Visibility())
		}
		if c.CurrentVariant() != b {
			t.Fatalf("got %#v, want %#v", c.CurrentVariant(), b)
		}
	})
}

// TestProperty_CollapsedImpliesNone: after any sequence of operations,
// including direct writes, a collapsed sheet never reports a screen.
func TestProperty_CollapsedImpliesNone(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := New(fourFrames())
		defer c.Dispose()

		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			c = randomStep(t, c)
			if c.Visibility() == Collapsed && c.CurrentVariant() != nil {
				t.Fatalf("step %d: collapsed sheet reports %#v", i, c.CurrentVariant())
			}
			c, _ = c.Update(nil)
			if c.Visibility() == Collapsed && c.Selector().Current() != nil {
				t.Fatalf("step %d: update left selection %#v", i, c.Selector().Current())
			}
		}
	})
}

// TestProperty_DismissThenReexpandShowsNone: after a direct collapse, no
// direct write brings the dismissed screen back.
func TestProperty_DismissThenReexpandShowsNone(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := New(fourFrames())
		defer c.Dispose()

		c = randomWalk(t, c)
		c, _ = c.SetVisibility(Collapsed)

		writes := rapid.SliceOfN(rapid.SampledFrom([]Visibility{Expanding, Expanded, Collapsing}), 1, 5).Draw(t, "writes")
		for _, v := range writes {
			c, _ = c.SetVisibility(v)
			if c.CurrentVariant() != nil {
				t.Fatalf("write %s after dismiss shows %#v", v, c.CurrentVariant())
			}
		}
	})
}

func randomWalk(t *rapid.T, c Controller) Controller {
	steps := rapid.IntRange(0, 15).Draw(t, "walk")
	for i := 0; i < steps; i++ {
		c = randomStep(t, c)
	}
	return c
}

func randomStep(t *rapid.T, c Controller) Controller {
	switch rapid.IntRange(0, 4).Draw(t, "op") {
	case 0:
		c, _ = c.Open(screenGen().Draw(t, "screen"))
	case 1:
		c, _ = c.Close()
	case 2:
		c, _ = c.SetVisibility(rapid.SampledFrom([]Visibility{Collapsed, Expanding, Expanded, Collapsing}).Draw(t, "write"))
	default:
		c, _ = c.Update(frameFor(c))
	}
	return c
}
