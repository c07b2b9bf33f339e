package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"table-finder/internal/domain/entity"
	"table-finder/internal/domain/port"
	"table-finder/internal/infrastructure/report"
)

// timeLayout фиксированной ширины, чтобы сортировка строк совпадала с хронологической
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// SQLiteScanRepository хранит историю проверок в sqlite
type SQLiteScanRepository struct {
	db *sql.DB
}

func NewSQLiteScanRepository(db *sql.DB) *SQLiteScanRepository {
	return &SQLiteScanRepository{db: db}
}

// Save сохраняет результат проверки
func (r *SQLiteScanRepository) Save(ctx context.Context, scan *entity.ScanResult) error {
	var outlineText sql.NullString
	if scan.Outline != nil {
		text, err := report.EncodeOutline(*scan.Outline)
		if err != nil {
			return fmt.Errorf("encode outline: %w", err)
		}
		outlineText = sql.NullString{String: text, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
        INSERT OR REPLACE INTO scans
            (id, user_id, source, width, height, segments, groups_count, found, outline, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `,
		scan.ID,
		scan.UserID,
		scan.Source,
		scan.ImageWidth,
		scan.ImageHeight,
		scan.SegmentCount,
		scan.GroupCount,
		scan.Found,
		outlineText,
		scan.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("save scan %s: %w", scan.ID, err)
	}
	return nil
}

// Get возвращает проверку по ID
func (r *SQLiteScanRepository) Get(ctx context.Context, id string) (*entity.ScanResult, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, user_id, source, width, height, segments, groups_count, found, outline, created_at
        FROM scans
        WHERE id = ?
    `, id)

	scan, err := scanRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port.ErrScanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get scan %s: %w", id, err)
	}
	return scan, nil
}

// ListByUser возвращает последние проверки пользователя, новые первыми
func (r *SQLiteScanRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]*entity.ScanResult, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.QueryContext(ctx, `
        SELECT id, user_id, source, width, height, segments, groups_count, found, outline, created_at
        FROM scans
        WHERE user_id = ?
        ORDER BY created_at DESC, id DESC
        LIMIT ?
    `, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list scans: %w", err)
	}
	defer rows.Close()

	result := make([]*entity.ScanResult, 0)
	for rows.Next() {
		scan, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("list scans: %w", err)
		}
		result = append(result, scan)
	}
	return result, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRow(row rowScanner) (*entity.ScanResult, error) {
	var (
		s           entity.ScanResult
		outlineText sql.NullString
		createdAt   string
	)
	err := row.Scan(&s.ID, &s.UserID, &s.Source, &s.ImageWidth, &s.ImageHeight,
		&s.SegmentCount, &s.GroupCount, &s.Found, &outlineText, &createdAt)
	if err != nil {
		return nil, err
	}

	if s.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	if outlineText.Valid {
		o, err := report.DecodeOutline(outlineText.String)
		if err != nil {
			return nil, fmt.Errorf("decode outline: %w", err)
		}
		s.Outline = &o
	}
	return &s, nil
}

var _ port.ScanRepository = (*SQLiteScanRepository)(nil)
