package geometry

import (
	"math"
	"sort"
)

// RotatedRect — прямоугольник произвольной ориентации.
// Вершины идут по порядку обхода: Corners[i] и Corners[(i+1)%4] образуют сторону.
type RotatedRect struct {
	Corners [4]Point
}

// Edge возвращает i-ю сторону прямоугольника.
func (r RotatedRect) Edge(i int) (Point, Point) {
	return r.Corners[i%4], r.Corners[(i+1)%4]
}

func (r RotatedRect) Center() Point {
	return Mid(r.Corners[0], r.Corners[2])
}

// Caps возвращает середины двух коротких сторон.
// Отрезок между ними идёт вдоль длинной оси прямоугольника.
func (r RotatedRect) Caps() (Point, Point) {
	p0, p1 := r.Edge(0)
	_, p2 := r.Edge(1)
	p3 := r.Corners[3]

	if p0.Distance(p1) <= p1.Distance(p2) {
		return Mid(p0, p1), Mid(p2, p3)
	}
	return Mid(p1, p2), Mid(p3, p0)
}

// MinAreaRect строит прямоугольник минимальной площади, содержащий все точки.
// Для пустого набора возвращает false.
func MinAreaRect(points []Point) (RotatedRect, bool) {
	hull := ConvexHull(points)
	switch len(hull) {
	case 0:
		return RotatedRect{}, false
	case 1:
		p := hull[0]
		return RotatedRect{Corners: [4]Point{p, p, p, p}}, true
	}

	var (
		best     RotatedRect
		bestArea = math.Inf(1)
	)
	for i := range hull {
		edge := hull[(i+1)%len(hull)].Sub(hull[i])
		u := edge.DivScalar(edge.Norm())
		v := Point{X: -u.Y, Y: u.X}

		minU, maxU := math.Inf(1), math.Inf(-1)
		minV, maxV := math.Inf(1), math.Inf(-1)
		for _, p := range hull {
			pu, pv := p.Dot(u), p.Dot(v)
			minU, maxU = math.Min(minU, pu), math.Max(maxU, pu)
			minV, maxV = math.Min(minV, pv), math.Max(maxV, pv)
		}

		area := (maxU - minU) * (maxV - minV)
		if area >= bestArea {
			continue
		}
		bestArea = area

		at := func(s, t float64) Point { return u.MulScalar(s).Add(v.MulScalar(t)) }
		best = RotatedRect{Corners: [4]Point{
			at(minU, minV),
			at(maxU, minV),
			at(maxU, maxV),
			at(minU, maxV),
		}}
	}

	return best, true
}

// ConvexHull строит выпуклую оболочку (алгоритм Эндрю) против часовой стрелки,
// без совпадающих и коллинеарных вершин.
func ConvexHull(points []Point) []Point {
	pts := make([]Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	uniq := pts[:0]
	for i, p := range pts {
		if i == 0 || p.NotEqual(uniq[len(uniq)-1]) {
			uniq = append(uniq, p)
		}
	}
	if len(uniq) < 3 {
		return uniq
	}

	turn := func(o, a, b Point) float64 { return a.Sub(o).Cross(b.Sub(o)) }

	hull := make([]Point, 0, 2*len(uniq))
	for _, p := range uniq {
		for len(hull) >= 2 && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(uniq) - 2; i >= 0; i-- {
		p := uniq[i]
		for len(hull) >= lower && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	return hull[:len(hull)-1]
}
