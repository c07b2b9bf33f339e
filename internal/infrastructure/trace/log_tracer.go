// Package trace выводит промежуточные шаги поиска таблицы в лог.
package trace

import (
	"log"

	"table-finder/internal/domain/geometry"
	"table-finder/internal/domain/outline"
)

// LogTracer пишет шаги конвейера через стандартный логгер.
type LogTracer struct {
	Logger *log.Logger
	Scores bool // логировать оценку каждой пары направляющих
}

// NewLogTracer создаёт трассировщик; при logger == nil используется log.Default().
func NewLogTracer(logger *log.Logger, scores bool) *LogTracer {
	if logger == nil {
		logger = log.Default()
	}
	return &LogTracer{Logger: logger, Scores: scores}
}

func (t *LogTracer) GroupFormed(seed geometry.Line, group outline.Group) {
	t.Logger.Printf("[trace] group seed=%v size=%d", seed, len(group))
}

func (t *LogTracer) GuideReduced(group outline.Group, guide geometry.Line) {
	t.Logger.Printf("[trace] guide %v from %d segments", guide, len(group))
}

func (t *LogTracer) PairScored(horizontal bool, a, b geometry.Line, score float64) {
	if !t.Scores {
		return
	}
	t.Logger.Printf("[trace] %s pair %v / %v score=%.2f", orientation(horizontal), a, b, score)
}

func (t *LogTracer) PassFinished(horizontal bool, a, b geometry.Line, found bool) {
	if !found {
		t.Logger.Printf("[trace] %s pass: no pair", orientation(horizontal))
		return
	}
	t.Logger.Printf("[trace] %s pass: %v / %v", orientation(horizontal), a, b)
}

func orientation(horizontal bool) string {
	if horizontal {
		return "horizontal"
	}
	return "vertical"
}

var _ outline.Tracer = (*LogTracer)(nil)
