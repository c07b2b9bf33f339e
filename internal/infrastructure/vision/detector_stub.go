//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"image"

	"table-finder/internal/domain/entity"
	"table-finder/internal/domain/geometry"
)

// ExtractSegments возвращает ошибку, если сборка без тега gocv.
func (d *GoCVDetector) ExtractSegments(ctx context.Context, img image.Image) ([]geometry.Line, error) {
	_ = ctx
	_ = img
	return nil, ErrDetectorDisabled
}

// HighlightOutline возвращает ошибку, если сборка без тега gocv.
func (d *GoCVDetector) HighlightOutline(img image.Image, scan *entity.ScanResult) ([]byte, error) {
	_ = img
	_ = scan
	return nil, ErrDetectorDisabled
}
