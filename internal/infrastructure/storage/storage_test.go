package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"table-finder/internal/domain/entity"
	"table-finder/internal/domain/geometry"
	"table-finder/internal/domain/outline"
	"table-finder/internal/domain/port"
)

func newSQLite(t *testing.T) (*SQLiteUserRepository, *SQLiteScanRepository) {
	t.Helper()

	db, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "db", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSQLiteUserRepository(db), NewSQLiteScanRepository(db)
}

func testUserRepository(t *testing.T, repo port.UserRepository) {
	ctx := context.Background()

	user, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, user.State)
	require.Equal(t, int64(10), user.ChatID)

	user.SetState(entity.StateAwaitingScan)
	require.NoError(t, repo.Save(ctx, user))

	user, err = repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingScan, user.State)

	user, err = repo.Get(ctx, 1, 11)
	require.NoError(t, err)
	require.Equal(t, int64(11), user.ChatID)
	require.Equal(t, entity.StateAwaitingScan, user.State)

	other, err := repo.Get(ctx, 2, 0)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, other.State)
}

func sampleScan(id string, userID int64, created time.Time, found bool) *entity.ScanResult {
	scan := &entity.ScanResult{
		ID:           id,
		UserID:       userID,
		Source:       "photo.jpg",
		ImageWidth:   800,
		ImageHeight:  600,
		SegmentCount: 12,
		GroupCount:   6,
		Found:        found,
		CreatedAt:    created,
	}
	if found {
		o := outline.Outline{
			Top:    geometry.NewLine(geometry.Pt(0, 0), geometry.Pt(100, 0)),
			Bottom: geometry.NewLine(geometry.Pt(0, 50), geometry.Pt(100, 50)),
			Left:   geometry.NewLine(geometry.Pt(0, 0), geometry.Pt(0, 50)),
			Right:  geometry.NewLine(geometry.Pt(100, 0), geometry.Pt(100, 50)),
		}
		scan.Outline = &o
	}
	return scan
}

func testScanRepository(t *testing.T, repo port.ScanRepository) {
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, sampleScan("s1", 1, base, true)))
	require.NoError(t, repo.Save(ctx, sampleScan("s2", 1, base.Add(time.Minute), false)))
	require.NoError(t, repo.Save(ctx, sampleScan("s3", 1, base.Add(2*time.Minute+500*time.Millisecond), true)))
	require.NoError(t, repo.Save(ctx, sampleScan("other", 2, base, true)))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, sampleScan("s1", 1, base, true).Outline, got.Outline)
	require.True(t, base.Equal(got.CreatedAt))
	require.Equal(t, 12, got.SegmentCount)

	_, err = repo.Get(ctx, "missing")
	require.ErrorIs(t, err, port.ErrScanNotFound)

	list, err := repo.ListByUser(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "s3", list[0].ID)
	require.Equal(t, "s2", list[1].ID)
	require.Nil(t, list[1].Outline)

	list, err = repo.ListByUser(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)

	list, err = repo.ListByUser(ctx, 3, 5)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestMemoryUserRepository(t *testing.T) {
	testUserRepository(t, NewMemoryUserRepository())
}

func TestMemoryScanRepository(t *testing.T) {
	testScanRepository(t, NewMemoryScanRepository())
}

func TestSQLiteUserRepository(t *testing.T) {
	users, _ := newSQLite(t)
	testUserRepository(t, users)
}

func TestSQLiteScanRepository(t *testing.T) {
	_, scans := newSQLite(t)
	testScanRepository(t, scans)
}

func TestMemoryUserRepository_SaveRequired(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	user.SetState(entity.StateProcessing)

	user, err = repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, user.State)
}

func TestMemoryScanRepository_StoresCopy(t *testing.T) {
	repo := NewMemoryScanRepository()
	ctx := context.Background()

	scan := sampleScan("s1", 1, time.Now(), false)
	require.NoError(t, repo.Save(ctx, scan))
	scan.Source = "changed"

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, "photo.jpg", got.Source)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	mem, err := Open(ctx, "")
	require.NoError(t, err)
	require.IsType(t, &MemoryUserRepository{}, mem.Users)
	require.IsType(t, &MemoryScanRepository{}, mem.Scans)
	require.NoError(t, mem.Close())

	disk, err := Open(ctx, filepath.Join(t.TempDir(), "tables.db"))
	require.NoError(t, err)
	require.IsType(t, &SQLiteScanRepository{}, disk.Scans)
	testScanRepository(t, disk.Scans)
	require.NoError(t, disk.Close())
}
