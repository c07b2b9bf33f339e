package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"table-finder/internal/infrastructure/storage"
)

type fakeSource struct {
	frames int
	failAt int
	closed bool
}

func (s *fakeSource) FrameCount() int { return s.frames }

func (s *fakeSource) FrameName(i int) string { return fmt.Sprintf("page-%03d", i+1) }

func (s *fakeSource) Frame(i int) (image.Image, error) {
	if i == s.failAt {
		return nil, errors.New("corrupted page")
	}
	return image.NewGray(image.Rect(0, 0, 300, 200)), nil
}

func (s *fakeSource) Close() error {
	s.closed = true
	return nil
}

func TestBatchScanner_KeepsFrameOrder(t *testing.T) {
	f := newScanFixture(tableSegments(), nil)
	batch := NewBatchScanner(f.svc, 3)

	results, err := batch.ScanSource(context.Background(), &fakeSource{frames: 7, failAt: -1})
	require.NoError(t, err)
	require.Len(t, results, 7)

	for i, r := range results {
		require.Equal(t, fmt.Sprintf("page-%03d", i+1), r.Source)
		require.True(t, r.Found)
		require.Equal(t, 300, r.ImageWidth)
	}
	require.EqualValues(t, 7, f.extractor.calls.Load())

	stored, err := f.scans.ListByUser(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, stored, 7)
}

func TestBatchScanner_FrameError(t *testing.T) {
	f := newScanFixture(tableSegments(), nil)
	batch := NewBatchScanner(f.svc, 2)

	_, err := batch.ScanSource(context.Background(), &fakeSource{frames: 4, failAt: 2})
	require.ErrorContains(t, err, "page-003")
	require.ErrorContains(t, err, "corrupted page")
}

func TestBatchScanner_Cancelled(t *testing.T) {
	f := newScanFixture(tableSegments(), nil)
	batch := NewBatchScanner(f.svc, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := batch.ScanSource(ctx, &fakeSource{frames: 3, failAt: -1})
	require.ErrorIs(t, err, context.Canceled)
}

func TestBatchScanner_EmptySource(t *testing.T) {
	svc := NewScanService(NewUserService(storage.NewMemoryUserRepository()), &fakeExtractor{}, nil, nil, nil)

	results, err := NewBatchScanner(svc, 0).ScanSource(context.Background(), &fakeSource{failAt: -1})
	require.NoError(t, err)
	require.Empty(t, results)
}
