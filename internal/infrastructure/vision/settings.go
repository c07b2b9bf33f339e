package vision

import (
	"errors"

	"table-finder/internal/domain/port"
)

var (
	// ErrEmptyImage возвращается для пустого или нераспознанного изображения
	ErrEmptyImage = errors.New("empty image")

	// ErrDetectorDisabled возвращается при сборке без тега gocv
	ErrDetectorDisabled = errors.New("gocv build tag is not enabled")
)

type GoCVDetector struct {
	BlurSize         int     // размер ядра Гаусса, нечётный
	CannyLow         float32 // нижний порог Canny
	CannyHigh        float32 // верхний порог Canny
	KernelDivisor    int     // длина структурного элемента = сторона изображения / KernelDivisor
	MinKernel        int     // минимальная длина структурного элемента
	MinSegmentLength float64 // более короткие отрезки отбрасываются
	LineThickness    int     // толщина линий при отрисовке
}

// NewGoCVDetector создаёт детектор отрезков с параметрами по умолчанию.
func NewGoCVDetector(kernelDivisor int, minSegmentLength float64) *GoCVDetector {
	if kernelDivisor <= 0 {
		kernelDivisor = 40
	}
	return &GoCVDetector{
		BlurSize:         5,
		CannyLow:         50,
		CannyHigh:        150,
		KernelDivisor:    kernelDivisor,
		MinKernel:        10,
		MinSegmentLength: minSegmentLength,
		LineThickness:    3,
	}
}

// kernelSizes возвращает длины горизонтального и вертикального структурных элементов.
func (d *GoCVDetector) kernelSizes(cols, rows int) (int, int) {
	return max(d.MinKernel, cols/d.KernelDivisor), max(d.MinKernel, rows/d.KernelDivisor)
}

var (
	_ port.SegmentExtractor = (*GoCVDetector)(nil)
	_ port.OutlineRenderer  = (*GoCVDetector)(nil)
)
