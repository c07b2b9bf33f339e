package outline

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"table-finder/internal/domain/geometry"
)

func line(ax, ay, bx, by float64) geometry.Line {
	return geometry.NewLine(geometry.Point{X: ax, Y: ay}, geometry.Point{X: bx, Y: by})
}

func totalLines(groups []Group) int {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	return n
}

func TestGroupSegments_Empty(t *testing.T) {
	groups := GroupSegments(nil, DefaultParams(), nil)
	require.NotNil(t, groups)
	require.Empty(t, groups)
}

func TestGroupSegments_MergesNearlyCollinearFragments(t *testing.T) {
	groups := GroupSegments([]geometry.Line{
		line(0, 0, 50, 0),
		line(55, 1, 100, 1),
	}, DefaultParams(), nil)

	require.Len(t, groups, 1)
	require.Len(t, groups[0], 2)
}

func TestGroupSegments_NeverMergesDifferentOrientation(t *testing.T) {
	groups := GroupSegments([]geometry.Line{
		line(0, 0, 50, 0),
		line(0, 0, 0, 50),
		line(1, 45, 1, 90),
	}, DefaultParams(), nil)

	require.Len(t, groups, 2)
	for _, g := range groups {
		for _, l := range g {
			require.Equal(t, g[0].Horizontal(), l.Horizontal())
		}
	}
}

func TestGroupSegments_SeparatesDistantCollinear(t *testing.T) {
	groups := GroupSegments([]geometry.Line{
		line(0, 0, 50, 0),
		line(200, 0, 250, 0),
	}, DefaultParams(), nil)

	require.Len(t, groups, 2)
}

func TestGroupSegments_SeparatesParallelEdges(t *testing.T) {
	groups := GroupSegments([]geometry.Line{
		line(0, 0, 50, 0),
		line(0, 30, 50, 30),
	}, DefaultParams(), nil)

	require.Len(t, groups, 2)
}

func TestGroupSegments_SeedIsNearestToOrigin(t *testing.T) {
	far := line(300, 300, 400, 300)
	near := line(10, 10, 60, 10)

	groups := GroupSegments([]geometry.Line{far, near}, DefaultParams(), nil)
	require.Len(t, groups, 2)
	require.Equal(t, near, groups[0][0])
	require.Equal(t, far, groups[1][0])
}

func randomSegments(r *rand.Rand, n int) []geometry.Line {
	lines := make([]geometry.Line, 0, n)
	for i := 0; i < n; i++ {
		x := float64(r.Intn(500))
		y := float64(r.Intn(500))
		length := float64(5 + r.Intn(80))
		jitter := float64(r.Intn(5) - 2)
		if r.Intn(2) == 0 {
			lines = append(lines, line(x, y, x+length, y+jitter))
		} else {
			lines = append(lines, line(x, y, x+jitter, y+length))
		}
	}
	return lines
}

func TestGroupSegments_Partition(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for round := 0; round < 20; round++ {
		input := randomSegments(r, 10+r.Intn(60))
		groups := GroupSegments(input, DefaultParams(), nil)

		require.Equal(t, len(input), totalLines(groups))

		var flat []geometry.Line
		for _, g := range groups {
			require.NotEmpty(t, g)
			flat = append(flat, g...)
		}
		require.ElementsMatch(t, input, flat)
	}
}

func TestGroupSegments_Idempotent(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for round := 0; round < 20; round++ {
		groups := GroupSegments(randomSegments(r, 40), DefaultParams(), nil)

		for _, g := range groups {
			regrouped := GroupSegments(g, DefaultParams(), nil)
			require.Len(t, regrouped, 1)
			require.ElementsMatch(t, g, regrouped[0])
		}
	}
}

func TestGroupSegments_ZeroLengthLine(t *testing.T) {
	groups := GroupSegments([]geometry.Line{
		line(5, 5, 5, 5),
		line(0, 0, 50, 0),
	}, DefaultParams(), nil)

	require.Equal(t, 2, totalLines(groups))
}

func TestAreaThreshold(t *testing.T) {
	require.InDelta(t, 15.0, areaThreshold(10, 10), 1e-9)
	require.InDelta(t, 15.0, areaThreshold(10, 40), 1e-9)
}
