package outline

import "table-finder/internal/domain/geometry"

// Result — итог работы конвейера для одного изображения.
type Result struct {
	Segments []geometry.Line
	Groups   []Group
	Guides   []geometry.Line
	Outline  Outline
	Found    bool
}

// Finder связывает группировку, построение направляющих и выбор границ.
// Состояния между вызовами не хранит.
type Finder struct {
	Params Params
	Tracer Tracer
}

// NewFinder создаёт Finder с заданными параметрами; tracer может быть nil.
func NewFinder(params Params, tracer Tracer) *Finder {
	return &Finder{Params: params, Tracer: tracerOrNop(tracer)}
}

// Find ищет контур таблицы по отрезкам, найденным на изображении.
// Отсутствие таблицы — обычный результат с Found=false.
func (f *Finder) Find(segments []geometry.Line) Result {
	kept := make([]geometry.Line, 0, len(segments))
	for _, s := range segments {
		if s.Length() < f.Params.MinSegmentLength {
			continue
		}
		kept = append(kept, s)
	}

	res := Result{Segments: kept}
	if len(kept) == 0 {
		return res
	}

	res.Groups = GroupSegments(kept, f.Params, f.Tracer)
	res.Guides = ReduceGroups(res.Groups, f.Tracer)
	res.Outline, res.Found = SelectOutline(res.Guides, f.Params.Weights, f.Tracer)
	return res
}
