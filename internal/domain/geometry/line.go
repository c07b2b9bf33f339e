package geometry

import (
	"fmt"
	"math"
)

// NoIntersection возвращается Intersection для параллельных прямых.
var NoIntersection = Point{X: -1, Y: -1}

// Line — отрезок между двумя точками.
// Концы всегда упорядочены: A ближе к началу координат, чем B.
// Изменить отрезок нельзя, WithA/WithB возвращают новый.
type Line struct {
	a Point
	b Point
}

// NewLine создаёт отрезок и упорядочивает его концы.
func NewLine(a, b Point) Line {
	if nearerOrigin(b, a) {
		a, b = b, a
	}
	return Line{a: a, b: b}
}

// nearerOrigin сравнивает точки по удалённости от начала координат,
// при равенстве по X, затем по Y, чтобы порядок аргументов NewLine не влиял на результат.
func nearerOrigin(p, q Point) bool {
	pn, qn := p.Norm(), q.Norm()
	if pn != qn {
		return pn < qn
	}
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// A возвращает ближний к началу координат конец.
func (l Line) A() Point { return l.a }

// B возвращает дальний конец.
func (l Line) B() Point { return l.b }

func (l Line) WithA(a Point) Line { return NewLine(a, l.b) }
func (l Line) WithB(b Point) Line { return NewLine(l.a, b) }

// Horizontal сообщает, что проекция на X не меньше проекции на Y.
func (l Line) Horizontal() bool {
	d := l.a.Sub(l.b)
	return math.Abs(d.X) >= math.Abs(d.Y)
}

func (l Line) Length() float64 {
	return l.a.Distance(l.b)
}

// Midpoint возвращает середину отрезка, округлённую вниз до целых.
func (l Line) Midpoint() Point {
	return l.a.Add(l.b).DivScalar(2).Floor()
}

// Intersection находит точку пересечения прямых, проходящих через отрезки.
// Для параллельных прямых возвращает NoIntersection и false.
func (l Line) Intersection(o Line) (Point, bool) {
	d1 := l.b.Sub(l.a)
	d2 := o.b.Sub(o.a)

	det := d1.Cross(d2)
	if det == 0 {
		return NoIntersection, false
	}

	t := o.a.Sub(l.a).Cross(d2) / det
	return l.a.Add(d1.MulScalar(t)), true
}

// DistanceTo возвращает расстояние от точки до прямой, проходящей через отрезок.
// У вырожденного отрезка это расстояние до его конца.
func (l Line) DistanceTo(p Point) float64 {
	length := l.Length()
	if length == 0 {
		return l.a.Distance(p)
	}
	return math.Abs(l.b.Sub(l.a).Cross(p.Sub(l.a))) / length
}

func (l Line) String() string {
	return fmt.Sprintf("%v-%v", l.a, l.b)
}
