package app

import (
	"context"
	"fmt"
	"log"
	"runtime"

	"golang.org/x/sync/errgroup"

	"table-finder/internal/domain/entity"
	"table-finder/internal/domain/port"
)

// BatchScanner обрабатывает все кадры источника параллельно.
// Каждый кадр независим, поэтому общего состояния между воркерами нет.
type BatchScanner struct {
	scans   *ScanService
	workers int
}

func NewBatchScanner(scans *ScanService, workers int) *BatchScanner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &BatchScanner{scans: scans, workers: workers}
}

// ScanSource возвращает результаты в порядке кадров.
// Первая ошибка загрузки или обработки кадра останавливает всю пачку.
func (b *BatchScanner) ScanSource(ctx context.Context, src port.FrameSource) ([]*entity.ScanResult, error) {
	count := src.FrameCount()
	results := make([]*entity.ScanResult, count)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)

	for i := 0; i < count; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			name := src.FrameName(i)
			img, err := src.Frame(i)
			if err != nil {
				return fmt.Errorf("load frame %s: %w", name, err)
			}

			result, err := b.scans.Scan(ctx, 0, name, img)
			if err != nil {
				return err
			}

			log.Printf("[*] %s: segments=%d groups=%d found=%t", name, result.SegmentCount, result.GroupCount, result.Found)
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
