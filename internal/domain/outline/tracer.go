package outline

import "table-finder/internal/domain/geometry"

// Tracer получает промежуточные результаты конвейера для отладки и визуализации.
type Tracer interface {
	// GroupFormed вызывается после того, как для затравки собрана группа.
	GroupFormed(seed geometry.Line, group Group)

	// GuideReduced вызывается для каждой построенной направляющей.
	GuideReduced(group Group, guide geometry.Line)

	// PairScored вызывается для каждой оценённой пары направляющих одного прохода.
	PairScored(horizontal bool, a, b geometry.Line, score float64)

	// PassFinished сообщает итог прохода; found=false, если пары не нашлось.
	PassFinished(horizontal bool, a, b geometry.Line, found bool)
}

// NopTracer ничего не делает.
type NopTracer struct{}

func (NopTracer) GroupFormed(geometry.Line, Group) {}
func (NopTracer) GuideReduced(Group, geometry.Line) {}
func (NopTracer) PairScored(bool, geometry.Line, geometry.Line, float64) {}
func (NopTracer) PassFinished(bool, geometry.Line, geometry.Line, bool) {}

func tracerOrNop(t Tracer) Tracer {
	if t == nil {
		return NopTracer{}
	}
	return t
}
