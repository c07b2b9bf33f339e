package trace

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"

	"table-finder/internal/domain/geometry"
	"table-finder/internal/domain/outline"
)

func TestLogTracer_Pipeline(t *testing.T) {
	var buf bytes.Buffer
	tracer := NewLogTracer(log.New(&buf, "", 0), true)

	res := outline.NewFinder(outline.DefaultParams(), tracer).Find([]geometry.Line{
		geometry.NewLine(geometry.Pt(0, 0), geometry.Pt(100, 0)),
		geometry.NewLine(geometry.Pt(0, 50), geometry.Pt(100, 50)),
		geometry.NewLine(geometry.Pt(0, 0), geometry.Pt(0, 50)),
		geometry.NewLine(geometry.Pt(100, 0), geometry.Pt(100, 50)),
	})
	require.True(t, res.Found)

	out := buf.String()
	require.Contains(t, out, "[trace] group seed=")
	require.Contains(t, out, "[trace] guide ")
	require.Contains(t, out, "vertical pair")
	require.Contains(t, out, "horizontal pass: ")
}

func TestLogTracer_NoPair(t *testing.T) {
	var buf bytes.Buffer
	tracer := NewLogTracer(log.New(&buf, "", 0), false)

	tracer.PairScored(true, geometry.Line{}, geometry.Line{}, 1)
	require.Empty(t, buf.String())

	tracer.PassFinished(false, geometry.Line{}, geometry.Line{}, false)
	require.Contains(t, buf.String(), "vertical pass: no pair")
}
