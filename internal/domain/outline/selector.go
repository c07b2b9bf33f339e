package outline

import (
	"image"
	"math"
	"sort"

	"table-finder/internal/domain/geometry"
)

// Outline — четыре границы таблицы.
type Outline struct {
	Top    geometry.Line
	Bottom geometry.Line
	Left   geometry.Line
	Right  geometry.Line
}

// Lines возвращает границы в порядке: верх, низ, лево, право.
func (o Outline) Lines() [4]geometry.Line {
	return [4]geometry.Line{o.Top, o.Bottom, o.Left, o.Right}
}

// Corners возвращает углы таблицы: левый верхний, правый верхний, правый нижний, левый нижний.
// Если какие-то границы параллельны, угол не определён и возвращается false.
func (o Outline) Corners() ([4]geometry.Point, bool) {
	pairs := [4][2]geometry.Line{
		{o.Top, o.Left},
		{o.Top, o.Right},
		{o.Bottom, o.Right},
		{o.Bottom, o.Left},
	}

	var corners [4]geometry.Point
	for i, p := range pairs {
		c, ok := p[0].Intersection(p[1])
		if !ok {
			return corners, false
		}
		corners[i] = c
	}
	return corners, true
}

// Bounds — описанный вокруг углов прямоугольник в пикселях.
func (o Outline) Bounds() (image.Rectangle, bool) {
	corners, ok := o.Corners()
	if !ok {
		return image.Rectangle{}, false
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		minX, maxX = math.Min(minX, c.X), math.Max(maxX, c.X)
		minY, maxY = math.Min(minY, c.Y), math.Max(maxY, c.Y)
	}

	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	), true
}

// SelectOutline выбирает по паре направляющих для каждой ориентации.
//
// Сначала вертикальный проход (левая и правая границы), затем горизонтальный:
// при оценке горизонтальных пар учитывается расстояние до дальнего конца
// правой границы. Если хотя бы в одном проходе пары не нашлось, таблица
// не определена и возвращается false.
func SelectOutline(guides []geometry.Line, weights Weights, tracer Tracer) (Outline, bool) {
	tracer = tracerOrNop(tracer)

	left, right, ok := selectPair(guides, false, nil, weights, tracer)
	if !ok {
		return Outline{}, false
	}

	top, bottom, ok := selectPair(guides, true, &right, weights, tracer)
	if !ok {
		return Outline{}, false
	}

	return Outline{Top: top, Bottom: bottom, Left: left, Right: right}, true
}

// selectPair выполняет один проход выбора для заданной ориентации.
// corner — уже выбранная граница, к дальнему концу которой тянется горизонтальная пара.
func selectPair(guides []geometry.Line, horizontal bool, corner *geometry.Line, w Weights, tracer Tracer) (geometry.Line, geometry.Line, bool) {
	sorted := make([]geometry.Line, len(guides))
	copy(sorted, guides)
	sort.SliceStable(sorted, func(i, j int) bool {
		return secondary(sorted[i].A(), horizontal) < secondary(sorted[j].A(), horizontal)
	})

	var (
		bestA, bestB geometry.Line
		bestTotal    = math.Inf(-1)
		found        bool
	)
	for i := 0; i < len(sorted)-1; i++ {
		a := sorted[i]
		if a.Horizontal() != horizontal {
			continue
		}

		partner, score, ok := bestPartner(a, sorted[i+1:], horizontal, corner, w, tracer)
		if !ok {
			continue
		}

		total := score + a.Length()*w.Length
		if !found || total > bestTotal {
			bestA, bestB, bestTotal = a, partner, total
			found = true
		}
	}

	tracer.PassFinished(horizontal, bestA, bestB, found)
	return bestA, bestB, found
}

// bestPartner ищет среди later отрезок той же ориентации с наибольшей оценкой пары.
func bestPartner(a geometry.Line, later []geometry.Line, horizontal bool, corner *geometry.Line, w Weights, tracer Tracer) (geometry.Line, float64, bool) {
	var (
		best      geometry.Line
		bestScore float64
		found     bool
	)
	for _, b := range later {
		score, ok := pairScore(a, b, horizontal, corner, w)
		if !ok {
			continue
		}
		tracer.PairScored(horizontal, a, b, score)

		if !found || score > bestScore {
			best, bestScore = b, score
			found = true
		}
	}
	return best, bestScore, found
}

// pairScore оценивает пару направляющих. Пара разной ориентации не участвует в выборе.
func pairScore(a, b geometry.Line, horizontal bool, corner *geometry.Line, w Weights) (float64, bool) {
	if b.Horizontal() != horizontal {
		return 0, false
	}

	score := a.DistanceTo(b.A())*w.Distance + b.Length()*w.Length
	if horizontal && corner != nil {
		score -= b.A().Distance(corner.B()) * w.Corner
	}
	return score, true
}

// secondary — координата, по которой упорядочиваются направляющие прохода.
func secondary(p geometry.Point, horizontal bool) float64 {
	if horizontal {
		return p.Y
	}
	return p.X
}
