package outline

import (
	"math"
	"sort"

	"table-finder/internal/domain/geometry"
)

// Group — фрагменты, относящиеся к одной физической линии таблицы.
type Group []geometry.Line

// GroupSegments объединяет фрагменты одной линии в группы.
//
// Отрезки обходятся по удалённости ближнего конца от начала координат.
// Первый ещё не распределённый отрезок становится затравкой, к нему
// присоединяются все оставшиеся отрезки той же ориентации, которые лежат
// почти на одной прямой с затравкой и начинаются недалеко от её дальнего конца.
// Каждый входной отрезок попадает ровно в одну группу.
func GroupSegments(lines []geometry.Line, params Params, tracer Tracer) []Group {
	tracer = tracerOrNop(tracer)

	sorted := make([]geometry.Line, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		return originOrder(sorted[i], sorted[j])
	})

	pending := make([]int, len(sorted))
	for i := range pending {
		pending[i] = i
	}

	groups := make([]Group, 0)
	for len(pending) > 0 {
		seed := sorted[pending[0]]
		group := Group{seed}

		rest := make([]int, 0, len(pending)-1)
		for _, idx := range pending[1:] {
			cand := sorted[idx]
			if sameEdge(seed, cand, params) {
				group = append(group, cand)
				continue
			}
			rest = append(rest, idx)
		}

		tracer.GroupFormed(seed, group)
		groups = append(groups, group)
		pending = rest
	}

	return groups
}

// sameEdge проверяет, что cand продолжает линию seed.
func sameEdge(seed, cand geometry.Line, params Params) bool {
	if seed.Horizontal() != cand.Horizontal() {
		return false
	}

	shorter, longer := segmentLength(seed), segmentLength(cand)
	if shorter > longer {
		shorter, longer = longer, shorter
	}

	area := geometry.TriangleArea(seed.A(), seed.B(), cand.A())
	if area >= areaThreshold(shorter, longer)*areaFactor(params) {
		return false
	}

	return seed.B().Distance(cand.A()) < longer*proximityFactor(params)
}

// areaThreshold возвращает допуск на площадь треугольника для пары отрезков.
// Чем длиннее пара, тем больше площадь при том же угловом отклонении.
func areaThreshold(shorter, longer float64) float64 {
	ratio := longer / shorter
	return (shorter + longer/(ratio/2)) / 2
}

func segmentLength(l geometry.Line) float64 {
	return math.Max(l.Length(), MinLength)
}

func areaFactor(p Params) float64 {
	if p.AreaFactor <= 0 {
		return 1
	}
	return p.AreaFactor
}

func proximityFactor(p Params) float64 {
	if p.ProximityFactor <= 0 {
		return 0.5
	}
	return p.ProximityFactor
}

// originOrder упорядочивает отрезки по удалённости ближнего конца от начала координат.
func originOrder(l, r geometry.Line) bool {
	la, ra := l.A(), r.A()
	if ln, rn := la.Norm(), ra.Norm(); ln != rn {
		return ln < rn
	}
	if la.X != ra.X {
		return la.X < ra.X
	}
	if la.Y != ra.Y {
		return la.Y < ra.Y
	}
	return l.B().Norm() < r.B().Norm()
}
