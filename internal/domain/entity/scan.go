package entity

import (
	"image"
	"time"

	"table-finder/internal/domain/outline"
)

// ScanResult хранит итог поиска таблицы на одном изображении.
type ScanResult struct {
	ID           string           // идентификатор проверки
	UserID       int64            // 0 для пакетной обработки
	Source       string           // имя файла или страницы
	ImageWidth   int              // ширина изображения
	ImageHeight  int              // высота изображения
	SegmentCount int              // отрезков после фильтрации
	GroupCount   int              // найденных групп (направляющих)
	Found        bool             // таблица найдена
	Outline      *outline.Outline // границы таблицы, nil если не найдена
	CreatedAt    time.Time
}

// NewScanResult собирает ScanResult из результата конвейера.
func NewScanResult(id string, userID int64, source string, size image.Point, res outline.Result, now time.Time) *ScanResult {
	scan := &ScanResult{
		ID:           id,
		UserID:       userID,
		Source:       source,
		ImageWidth:   size.X,
		ImageHeight:  size.Y,
		SegmentCount: len(res.Segments),
		GroupCount:   len(res.Groups),
		Found:        res.Found,
		CreatedAt:    now,
	}
	if res.Found {
		o := res.Outline
		scan.Outline = &o
	}
	return scan
}

// Bounds возвращает прямоугольник таблицы в пикселях.
func (s *ScanResult) Bounds() (image.Rectangle, bool) {
	if s.Outline == nil {
		return image.Rectangle{}, false
	}
	return s.Outline.Bounds()
}
