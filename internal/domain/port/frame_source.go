package port

import "image"

// FrameSource интерфейс источника кадров (папка с изображениями или PDF)
type FrameSource interface {
	// FrameCount возвращает количество кадров
	FrameCount() int

	// FrameName возвращает имя кадра для отчёта
	FrameName(index int) string

	// Frame загружает кадр с уже применённым поворотом
	Frame(index int) (image.Image, error)

	Close() error
}
