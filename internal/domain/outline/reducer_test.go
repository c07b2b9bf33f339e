package outline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"table-finder/internal/domain/geometry"
)

func requireLineNear(t *testing.T, want, got geometry.Line, delta float64) {
	t.Helper()
	require.InDelta(t, want.A().X, got.A().X, delta, "a.x of %v", got)
	require.InDelta(t, want.A().Y, got.A().Y, delta, "a.y of %v", got)
	require.InDelta(t, want.B().X, got.B().X, delta, "b.x of %v", got)
	require.InDelta(t, want.B().Y, got.B().Y, delta, "b.y of %v", got)
}

func TestReduceGroup_SingleLine(t *testing.T) {
	for _, l := range []geometry.Line{
		line(0, 0, 100, 0),
		line(10, 10, 10, 200),
		line(5, 7, 80, 31),
	} {
		guide, ok := ReduceGroup(Group{l})
		require.True(t, ok)
		requireLineNear(t, l, guide, 1e-6)
	}
}

func TestReduceGroup_SpansFragments(t *testing.T) {
	guide, ok := ReduceGroup(Group{
		line(0, 0, 40, 0),
		line(45, 1, 100, 1),
	})
	require.True(t, ok)

	require.True(t, guide.Horizontal())
	require.InDelta(t, 0, guide.A().X, 1)
	require.InDelta(t, 100, guide.B().X, 1)
	require.InDelta(t, 0.5, guide.A().Y, 1.5)
	require.InDelta(t, 0.5, guide.B().Y, 1.5)
}

func TestReduceGroup_VerticalFragments(t *testing.T) {
	guide, ok := ReduceGroup(Group{
		line(20, 10, 20, 60),
		line(20, 64, 20, 150),
		line(20, 30, 20, 90),
	})
	require.True(t, ok)
	requireLineNear(t, line(20, 10, 20, 150), guide, 1e-6)
}

func TestReduceGroup_Empty(t *testing.T) {
	_, ok := ReduceGroup(nil)
	require.False(t, ok)
}

func TestReduceGroups_SkipsEmpty(t *testing.T) {
	guides := ReduceGroups([]Group{
		{line(0, 0, 10, 0)},
		{},
		{line(0, 0, 0, 10)},
	}, nil)
	require.Len(t, guides, 2)
}
