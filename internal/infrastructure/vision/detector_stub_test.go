//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStub_ReturnsDisabled(t *testing.T) {
	d := NewGoCVDetector(40, 0)
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))

	_, err := d.ExtractSegments(context.Background(), img)
	require.ErrorIs(t, err, ErrDetectorDisabled)

	_, err = d.HighlightOutline(img, nil)
	require.ErrorIs(t, err, ErrDetectorDisabled)
}
