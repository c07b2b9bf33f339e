package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func requirePointNear(t *testing.T, want, got Point) {
	t.Helper()
	require.InDelta(t, want.X, got.X, 1e-6, "x of %v", got)
	require.InDelta(t, want.Y, got.Y, 1e-6, "y of %v", got)
}

func TestConvexHull(t *testing.T) {
	hull := ConvexHull([]Point{
		Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4),
		Pt(2, 2), Pt(2, 0), Pt(4, 4),
	})
	require.ElementsMatch(t, []Point{Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)}, hull)

	require.Empty(t, ConvexHull(nil))
	require.Equal(t, []Point{Pt(1, 1)}, ConvexHull([]Point{Pt(1, 1), Pt(1, 1)}))
	require.Equal(t, []Point{Pt(0, 0), Pt(10, 0)}, ConvexHull([]Point{Pt(5, 0), Pt(10, 0), Pt(0, 0)}))
}

func TestMinAreaRect_AxisAligned(t *testing.T) {
	rect, ok := MinAreaRect([]Point{Pt(0, 0), Pt(20, 0), Pt(20, 4), Pt(0, 4), Pt(10, 2)})
	require.True(t, ok)

	requirePointNear(t, Pt(10, 2), rect.Center())

	a, b := rect.Caps()
	guide := NewLine(a, b)
	requirePointNear(t, Pt(0, 2), guide.A())
	requirePointNear(t, Pt(20, 2), guide.B())
}

func TestMinAreaRect_Tilted(t *testing.T) {
	// вытянутый ромбовидный набор вдоль диагонали
	rect, ok := MinAreaRect([]Point{Pt(0, 0), Pt(1, -1), Pt(11, 9), Pt(10, 10)})
	require.True(t, ok)

	a, b := rect.Caps()
	guide := NewLine(a, b)
	requirePointNear(t, Point{X: 0.5, Y: -0.5}, guide.A())
	requirePointNear(t, Point{X: 10.5, Y: 9.5}, guide.B())
}

func TestMinAreaRect_Degenerate(t *testing.T) {
	_, ok := MinAreaRect(nil)
	require.False(t, ok)

	rect, ok := MinAreaRect([]Point{Pt(3, 3)})
	require.True(t, ok)
	a, b := rect.Caps()
	require.Equal(t, Pt(3, 3), a)
	require.Equal(t, Pt(3, 3), b)

	rect, ok = MinAreaRect([]Point{Pt(0, 0), Pt(0, 30)})
	require.True(t, ok)
	a, b = rect.Caps()
	guide := NewLine(a, b)
	requirePointNear(t, Pt(0, 0), guide.A())
	requirePointNear(t, Pt(0, 30), guide.B())
}
