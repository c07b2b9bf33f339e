package geometry

import (
	"fmt"
	"image"
	"math"
)

// Point — точка на плоскости изображения.
// Координаты дробные: пересечения и середины отрезков не обязаны попадать в пиксель.
type Point struct {
	X float64
	Y float64
}

// Pt создаёт точку из целых координат пикселя.
func Pt(x, y int) Point {
	return Point{X: float64(x), Y: float64(y)}
}

// FromImagePoint переводит image.Point в Point.
func FromImagePoint(p image.Point) Point {
	return Pt(p.X, p.Y)
}

// Splat возвращает точку (v, v) для покомпонентных операций со скаляром.
func Splat(v float64) Point {
	return Point{X: v, Y: v}
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }
func (p Point) Mul(q Point) Point { return Point{X: p.X * q.X, Y: p.Y * q.Y} }
func (p Point) Div(q Point) Point { return Point{X: p.X / q.X, Y: p.Y / q.Y} }

func (p Point) AddScalar(v float64) Point { return p.Add(Splat(v)) }
func (p Point) SubScalar(v float64) Point { return p.Sub(Splat(v)) }
func (p Point) MulScalar(v float64) Point { return p.Mul(Splat(v)) }
func (p Point) DivScalar(v float64) Point { return p.Div(Splat(v)) }

// Floor округляет обе координаты вниз.
func (p Point) Floor() Point {
	return Point{X: math.Floor(p.X), Y: math.Floor(p.Y)}
}

// Less и остальные отношения порядка истинны, только если выполняются для обеих координат.
func (p Point) Less(q Point) bool      { return p.X < q.X && p.Y < q.Y }
func (p Point) LessEq(q Point) bool    { return p.X <= q.X && p.Y <= q.Y }
func (p Point) Greater(q Point) bool   { return p.X > q.X && p.Y > q.Y }
func (p Point) GreaterEq(q Point) bool { return p.X >= q.X && p.Y >= q.Y }
func (p Point) Equal(q Point) bool     { return p.X == q.X && p.Y == q.Y }

// NotEqual истинно, если отличается хотя бы одна координата.
func (p Point) NotEqual(q Point) bool { return p.X != q.X || p.Y != q.Y }

// Distance возвращает евклидово расстояние до q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Norm возвращает расстояние от начала координат.
func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

// Cross возвращает z-компоненту векторного произведения p × q.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// ImagePoint округляет точку до ближайшего пикселя.
func (p Point) ImagePoint() image.Point {
	return image.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Mid возвращает точную (нецелочисленную) середину отрезка pq.
func Mid(p, q Point) Point {
	return p.Add(q).DivScalar(2)
}

// TriangleArea считает площадь треугольника abc по формуле векторного произведения.
func TriangleArea(a, b, c Point) float64 {
	return math.Abs(b.Sub(a).Cross(c.Sub(a))) / 2
}
