package storage

import (
	"context"
	"database/sql"

	"table-finder/internal/domain/port"
)

// Repositories — хранилища пользователей и проверок одного бэкенда.
type Repositories struct {
	Users port.UserRepository
	Scans port.ScanRepository

	db *sql.DB
}

// Open возвращает sqlite-хранилища для непустого dbPath и in-memory иначе.
func Open(ctx context.Context, dbPath string) (*Repositories, error) {
	if dbPath == "" {
		return &Repositories{
			Users: NewMemoryUserRepository(),
			Scans: NewMemoryScanRepository(),
		}, nil
	}

	db, err := OpenSQLite(ctx, dbPath)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		Users: NewSQLiteUserRepository(db),
		Scans: NewSQLiteScanRepository(db),
		db:    db,
	}, nil
}

// Close закрывает базу, если она была открыта.
func (r *Repositories) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}
