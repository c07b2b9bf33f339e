//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"

	"gocv.io/x/gocv"

	"table-finder/internal/domain/entity"
	"table-finder/internal/domain/geometry"
)

// ExtractSegments находит горизонтальные и вертикальные штрихи и сводит каждый к отрезку.
func (d *GoCVDetector) ExtractSegments(ctx context.Context, img image.Image) ([]geometry.Line, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}

	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("convert image: %w", err)
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, ErrEmptyImage
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	blur := gocv.NewMat()
	defer blur.Close()
	gocv.GaussianBlur(gray, &blur, image.Pt(d.BlurSize, d.BlurSize), 0, 0, gocv.BorderDefault)

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(blur, &edges, d.CannyLow, d.CannyHigh)

	hSize, vSize := d.kernelSizes(mat.Cols(), mat.Rows())

	horizontal, err := d.strokes(ctx, edges, image.Pt(hSize, 1))
	if err != nil {
		return nil, err
	}
	vertical, err := d.strokes(ctx, edges, image.Pt(1, vSize))
	if err != nil {
		return nil, err
	}

	return append(horizontal, vertical...), nil
}

// strokes оставляет на карте границ только штрихи, вытянутые вдоль ядра,
// и возвращает по отрезку на каждый внешний контур.
func (d *GoCVDetector) strokes(ctx context.Context, edges gocv.Mat, size image.Point) ([]geometry.Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kernel := gocv.GetStructuringElement(gocv.MorphRect, size)
	defer kernel.Close()

	closed := gocv.NewMat()
	defer closed.Close()
	gocv.MorphologyEx(edges, &closed, gocv.MorphClose, kernel)

	opened := gocv.NewMat()
	defer opened.Close()
	gocv.MorphologyEx(closed, &opened, gocv.MorphOpen, kernel)

	contours := gocv.FindContours(opened, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	lines := make([]geometry.Line, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		rotRect := gocv.MinAreaRect(contours.At(i))
		if len(rotRect.Points) != 4 {
			continue
		}

		var rect geometry.RotatedRect
		for j, p := range rotRect.Points {
			rect.Corners[j] = geometry.FromImagePoint(p)
		}

		a, b := rect.Caps()
		l := geometry.NewLine(a, b)
		if l.Length() < d.MinSegmentLength {
			continue
		}
		lines = append(lines, l)
	}
	return lines, nil
}

// HighlightOutline рисует границы таблицы и возвращает JPEG.
func (d *GoCVDetector) HighlightOutline(img image.Image, scan *entity.ScanResult) ([]byte, error) {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("convert image: %w", err)
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, ErrEmptyImage
	}

	if scan != nil && scan.Outline != nil {
		red := color.RGBA{R: 255, A: 255}
		for _, l := range scan.Outline.Lines() {
			gocv.Line(&mat, l.A().ImagePoint(), l.B().ImagePoint(), red, d.LineThickness)
		}

		if corners, ok := scan.Outline.Corners(); ok {
			green := color.RGBA{G: 255, A: 255}
			for _, c := range corners {
				gocv.Circle(&mat, c.ImagePoint(), 2*d.LineThickness, green, -1)
			}
		}
	}

	out, err := mat.ToImage()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
