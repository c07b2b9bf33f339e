package outline

import "table-finder/internal/domain/geometry"

// ReduceGroup строит направляющую: один отрезок, покрывающий всю группу.
//
// Берётся прямоугольник минимальной площади вокруг всех концов отрезков группы;
// направляющая соединяет середины его коротких сторон и идёт вдоль длинной оси.
// Для пустой группы возвращает false.
func ReduceGroup(group Group) (geometry.Line, bool) {
	points := make([]geometry.Point, 0, 2*len(group))
	for _, l := range group {
		points = append(points, l.A(), l.B())
	}

	rect, ok := geometry.MinAreaRect(points)
	if !ok {
		return geometry.Line{}, false
	}

	a, b := rect.Caps()
	return geometry.NewLine(a, b), true
}

// ReduceGroups строит направляющие для всех непустых групп в исходном порядке.
func ReduceGroups(groups []Group, tracer Tracer) []geometry.Line {
	tracer = tracerOrNop(tracer)

	guides := make([]geometry.Line, 0, len(groups))
	for _, g := range groups {
		guide, ok := ReduceGroup(g)
		if !ok {
			continue
		}
		tracer.GuideReduced(g, guide)
		guides = append(guides, guide)
	}
	return guides
}
