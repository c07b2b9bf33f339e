// Package source выдаёт кадры для поиска таблиц: страницы PDF или изображения из папки.
package source

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"

	"table-finder/internal/domain/port"
)

// ErrInvalidRotation возвращается для поворота, не кратного 90°.
var ErrInvalidRotation = errors.New("rotation must be a multiple of 90 degrees")

// Rotation — поворот кадра по часовой стрелке.
type Rotation int

const (
	RotateNone Rotation = 0
	Rotate90   Rotation = 90
	Rotate180  Rotation = 180
	Rotate270  Rotation = 270
)

// ParseRotation разбирает "0", "90", "180", "270", "-90", "cw" и "ccw".
func ParseRotation(s string) (Rotation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "none":
		return RotateNone, nil
	case "90", "cw":
		return Rotate90, nil
	case "180":
		return Rotate180, nil
	case "270", "-90", "ccw":
		return Rotate270, nil
	}
	return RotateNone, fmt.Errorf("%w: %q", ErrInvalidRotation, s)
}

// Options — общие настройки источников.
type Options struct {
	Rotation Rotation
	MaxSide  int // 0 — без масштабирования
	DPI      int // для PDF
}

// Open выбирает источник по пути: PDF-файл, одиночное изображение или папка.
func Open(path string, opts Options) (port.FrameSource, error) {
	if strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return NewFitzPDFSource(path, opts)
	}
	return NewImageSource(path, opts)
}

// prepare поворачивает кадр и уменьшает его до MaxSide по большей стороне.
func prepare(img image.Image, opts Options) image.Image {
	return Fit(Rotate(img, opts.Rotation), opts.MaxSide)
}

// Rotate поворачивает изображение на угол, кратный 90°.
func Rotate(img image.Image, r Rotation) image.Image {
	if r == RotateNone {
		return img
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	var dst *image.RGBA
	if r == Rotate180 {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	} else {
		dst = image.NewRGBA(image.Rect(0, 0, h, w))
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.At(b.Min.X+x, b.Min.Y+y)
			switch r {
			case Rotate90:
				dst.Set(h-1-y, x, c)
			case Rotate180:
				dst.Set(w-1-x, h-1-y, c)
			case Rotate270:
				dst.Set(y, w-1-x, c)
			}
		}
	}
	return dst
}

// Fit уменьшает изображение так, чтобы большая сторона не превышала maxSide.
func Fit(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	if maxSide <= 0 || (b.Dx() <= maxSide && b.Dy() <= maxSide) {
		return img
	}

	scale := float64(maxSide) / float64(max(b.Dx(), b.Dy()))
	newW := max(1, int(float64(b.Dx())*scale))
	newH := max(1, int(float64(b.Dy())*scale))

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
