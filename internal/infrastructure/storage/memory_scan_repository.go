package storage

import (
	"context"
	"sort"
	"sync"

	"table-finder/internal/domain/entity"
	"table-finder/internal/domain/port"
)

// MemoryScanRepository in-memory история проверок
type MemoryScanRepository struct {
	mu    sync.RWMutex
	scans map[string]*entity.ScanResult
}

// NewMemoryScanRepository создаёт пустое in-memory хранилище проверок
func NewMemoryScanRepository() *MemoryScanRepository {
	return &MemoryScanRepository{
		scans: make(map[string]*entity.ScanResult),
	}
}

// Save сохраняет копию результата проверки
func (r *MemoryScanRepository) Save(ctx context.Context, scan *entity.ScanResult) error {
	stored := *scan

	r.mu.Lock()
	r.scans[scan.ID] = &stored
	r.mu.Unlock()

	return nil
}

// Get возвращает проверку по ID
func (r *MemoryScanRepository) Get(ctx context.Context, id string) (*entity.ScanResult, error) {
	r.mu.RLock()
	scan, exists := r.scans[id]
	r.mu.RUnlock()

	if !exists {
		return nil, port.ErrScanNotFound
	}

	found := *scan
	return &found, nil
}

// ListByUser возвращает последние проверки пользователя, новые первыми
func (r *MemoryScanRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]*entity.ScanResult, error) {
	r.mu.RLock()
	result := make([]*entity.ScanResult, 0)
	for _, scan := range r.scans {
		if scan.UserID != userID {
			continue
		}
		found := *scan
		result = append(result, &found)
	}
	r.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Проверка реализации интерфейса
var _ port.ScanRepository = (*MemoryScanRepository)(nil)
