package sheet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelector(t *testing.T) {
	var s Selector
	require.Nil(t, s.Current())

	s.Select(ScreenOne{})
	require.Equal(t, ScreenOne{}, s.Current())

	s.Select(ScreenThree{Argument: "arg"})
	require.Equal(t, ScreenThree{Argument: "arg"}, s.Current())

	s.Clear()
	require.Nil(t, s.Current())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		screen Screen
		want   Kind
		name   string
	}{
		{nil, KindNone, "none"},
		{ScreenOne{}, KindOne, "one"},
		{ScreenTwo{}, KindTwo, "two"},
		{ScreenThree{Argument: ""}, KindThree, "three"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, KindOf(tt.screen))
			require.Equal(t, tt.name, tt.want.String())
		})
	}
}

func TestVisibility_String(t *testing.T) {
	require.Equal(t, "Collapsed", Collapsed.String())
	require.Equal(t, "Expanding", Expanding.String())
	require.Equal(t, "Expanded", Expanded.String())
	require.Equal(t, "Collapsing", Collapsing.String())
	require.Equal(t, "Unknown", Visibility(42).String())
}

func TestVisibility_Settled(t *testing.T) {
	require.True(t, Collapsed.Settled())
	require.True(t, Expanded.Settled())
	require.False(t, Expanding.Settled())
	require.False(t, Collapsing.Settled())
}
