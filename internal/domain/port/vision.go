package port

import (
	"context"
	"image"

	"table-finder/internal/domain/entity"
	"table-finder/internal/domain/geometry"
)

// SegmentExtractor интерфейс поиска отрезков линий на изображении
type SegmentExtractor interface {
	// ExtractSegments находит горизонтальные и вертикальные штрихи и сводит каждый к отрезку
	ExtractSegments(ctx context.Context, img image.Image) ([]geometry.Line, error)
}

// OutlineRenderer интерфейс отрисовки найденной таблицы
type OutlineRenderer interface {
	// HighlightOutline рисует границы таблицы поверх изображения и возвращает JPEG
	HighlightOutline(img image.Image, scan *entity.ScanResult) ([]byte, error)
}
