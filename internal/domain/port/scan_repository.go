package port

import (
	"context"
	"errors"

	"table-finder/internal/domain/entity"
)

// ErrScanNotFound возвращается, если проверки с таким ID нет
var ErrScanNotFound = errors.New("scan not found")

// ScanRepository интерфейс хранилища истории проверок
type ScanRepository interface {
	// Save сохраняет результат проверки
	Save(ctx context.Context, scan *entity.ScanResult) error

	// Get возвращает проверку по ID
	Get(ctx context.Context, id string) (*entity.ScanResult, error)

	// ListByUser возвращает последние проверки пользователя, новые первыми
	ListByUser(ctx context.Context, userID int64, limit int) ([]*entity.ScanResult, error)
}
