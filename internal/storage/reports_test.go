package storage_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arora962/NagarikMitra/internal/domain"
	"github.com/Arora962/NagarikMitra/internal/service"
	"github.com/Arora962/NagarikMitra/internal/storage"
	"github.com/Arora962/NagarikMitra/internal/storage/badger"
	mock_storage "github.com/Arora962/NagarikMitra/internal/storage/mocks"
	"github.com/Arora962/NagarikMitra/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleReports() []domain.Report {
	created := time.Date(2025, 12, 23, 12, 0, 0, 0, time.UTC)
	return []domain.Report{
		{
			ID:             "b",
			PhotoReference: "file:///photos/2.jpg",
			Location:       &domain.Location{Latitude: -33.5, Longitude: 151.25},
			Description:    "broken streetlight",
			CreatedAt:      created.Add(time.Minute),
			Status:         domain.StatusInProgress,
			Department:     "Electrical",
		},
		{
			ID:             "a",
			PhotoReference: "file:///photos/1.jpg",
			Location:       &domain.Location{Latitude: 1, Longitude: 2},
			Description:    "pothole",
			CreatedAt:      created,
			Status:         domain.StatusReported,
			Department:     domain.DepartmentUnassigned,
		},
	}
}

func TestReportRepository_RoundTrip_Badger(t *testing.T) {
	kv, err := badger.Open(badger.InMemoryConfig())
	require.NoError(t, err)
	defer kv.Close()

	repo := storage.NewReportRepository(kv, "", newTestLogger())
	ctx := context.Background()

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got, "missing entry must load as an empty list")

	want := sampleReports()
	require.NoError(t, repo.Save(ctx, want))

	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, repo.Save(ctx, nil))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Report{}, got)
}

func TestReportRepository_Save_FieldNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := mock_storage.NewMockKV(ctrl)

	var raw string
	kv.EXPECT().
		Set(gomock.Any(), "civic", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, value string) error {
			raw = value
			return nil
		}).
		Times(1)

	repo := storage.NewReportRepository(kv, "civic", newTestLogger())
	require.NoError(t, repo.Save(context.Background(), sampleReports()[1:]))

	assert.JSONEq(t, `[{
		"id": "a",
		"photoReference": "file:///photos/1.jpg",
		"location": {"latitude": 1, "longitude": 2},
		"description": "pothole",
		"createdAt": "2025-12-23T12:00:00Z",
		"status": "Reported",
		"department": "unassigned"
	}]`, raw)
}

func TestReportRepository_Load_Errors(t *testing.T) {
	cases := []struct {
		name  string
		value string
		ok    bool
		err   error
	}{
		{name: "engine_error", err: errors.New("disk gone")},
		{name: "corrupt_json", value: "{not json", ok: true},
		{name: "unknown_status", value: `[{"id":"a","status":"Archived"}]`, ok: true},
		{name: "missing_status", value: `[{"id":"a","photoReference":"p","description":"d","department":"unassigned"}]`, ok: true},
		{name: "missing_id", value: `[{"photoReference":"p","description":"d","status":"Reported","department":"unassigned"}]`, ok: true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			kv := mock_storage.NewMockKV(ctrl)
			kv.EXPECT().Get(gomock.Any(), storage.DefaultKey).Return(c.value, c.ok, c.err).Times(1)

			repo := storage.NewReportRepository(kv, "", newTestLogger())
			_, err := repo.Load(context.Background())
			require.ErrorIs(t, err, e.ErrPersistence)
		})
	}
}

func TestReportStore_Initialize_RejectsIncompleteStoredRecords(t *testing.T) {
	kv, err := badger.Open(badger.InMemoryConfig())
	require.NoError(t, err)
	defer kv.Close()

	ctx := context.Background()
	raw := `[
		{"id":"a","photoReference":"p","description":"no status","department":"unassigned"},
		{"photoReference":"p","description":"no id","status":"Reported","department":"unassigned"}
	]`
	require.NoError(t, kv.Set(ctx, storage.DefaultKey, raw))

	store := service.NewReportStore(storage.NewReportRepository(kv, "", newTestLogger()), newTestLogger())
	store.Initialize(ctx)

	assert.Empty(t, store.Snapshot())
	_, err = store.AdvanceStatus(ctx, "a")
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestReportRepository_Save_EngineError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := mock_storage.NewMockKV(ctrl)
	kv.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(context.DeadlineExceeded).Times(1)

	repo := storage.NewReportRepository(kv, "", newTestLogger())
	err := repo.Save(context.Background(), sampleReports())

	require.ErrorIs(t, err, e.ErrPersistence)
	require.ErrorIs(t, err, e.ErrDeadline)
}
