package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"time"

	"github.com/google/uuid"

	"table-finder/internal/domain/entity"
	"table-finder/internal/domain/outline"
	"table-finder/internal/domain/port"
)

// ErrUndecodableImage возвращается, если фото не удалось разобрать как JPEG или PNG.
var ErrUndecodableImage = errors.New("failed to decode image")

type ScanService struct {
	users     *UserService
	extractor port.SegmentExtractor
	renderer  port.OutlineRenderer
	scans     port.ScanRepository
	finder    *outline.Finder

	newID func() string
	now   func() time.Time
}

// ScanOutput содержит результат поиска таблицы и картинку с подсветкой.
type ScanOutput struct {
	Result      *entity.ScanResult
	Highlighted []byte
}

// NewScanService создаёт сервис, который ищет таблицы на изображениях.
// renderer и scans могут быть nil: тогда подсветка и история не используются.
func NewScanService(users *UserService, extractor port.SegmentExtractor, renderer port.OutlineRenderer, scans port.ScanRepository, finder *outline.Finder) *ScanService {
	if finder == nil {
		finder = outline.NewFinder(outline.DefaultParams(), nil)
	}
	return &ScanService{
		users:     users,
		extractor: extractor,
		renderer:  renderer,
		scans:     scans,
		finder:    finder,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// ProcessPhoto ищет таблицу на присланном фото и возвращает пользователя в главное меню.
func (s *ScanService) ProcessPhoto(ctx context.Context, userID, chatID int64, photo []byte) (*ScanOutput, error) {
	img, _, err := image.Decode(bytes.NewReader(photo))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodableImage, err)
	}

	if _, err := s.users.SetState(ctx, userID, chatID, entity.StateProcessing); err != nil {
		return nil, err
	}
	defer func() {
		if _, err := s.users.Cancel(ctx, userID, chatID); err != nil {
			log.Printf("Error resetting user %d state: %v", userID, err)
		}
	}()

	result, err := s.Scan(ctx, userID, "photo", img)
	if err != nil {
		return nil, err
	}

	var highlighted []byte
	if result.Found && s.renderer != nil {
		// Ошибка подсветки не прерывает проверку.
		highlighted, err = s.renderer.HighlightOutline(img, result)
		if err != nil {
			log.Printf("Error highlighting outline for scan %s: %v", result.ID, err)
		}
	}

	return &ScanOutput{Result: result, Highlighted: highlighted}, nil
}

// Scan прогоняет конвейер для одного изображения и сохраняет результат в историю.
// Отсутствие таблицы ошибкой не считается.
func (s *ScanService) Scan(ctx context.Context, userID int64, name string, img image.Image) (*entity.ScanResult, error) {
	if s.extractor == nil {
		return nil, errors.New("extractor is not configured")
	}

	segments, err := s.extractor.ExtractSegments(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("extract segments from %s: %w", name, err)
	}

	res := s.finder.Find(segments)
	result := entity.NewScanResult(s.newID(), userID, name, img.Bounds().Size(), res, s.now())

	if s.scans != nil {
		if err := s.scans.Save(ctx, result); err != nil {
			return nil, fmt.Errorf("save scan: %w", err)
		}
	}
	return result, nil
}

// History возвращает последние проверки пользователя.
func (s *ScanService) History(ctx context.Context, userID int64, limit int) ([]*entity.ScanResult, error) {
	if s.scans == nil {
		return nil, errors.New("scan history is not configured")
	}
	return s.scans.ListByUser(ctx, userID, limit)
}
