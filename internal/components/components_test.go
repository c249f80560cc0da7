package components

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arora962/NagarikMitra/internal/config"
	"github.com/Arora962/NagarikMitra/internal/domain"
)

func testConfig(t *testing.T, driver string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Env:  "local",
		Http: config.HttpConfig{Port: ":0"},
		Storage: config.StorageConfig{
			Driver:     driver,
			Key:        "reports",
			BadgerPath: filepath.Join(dir, "badger"),
			SQLitePath: filepath.Join(dir, "nagarik.db"),
		},
	}
}

// Reports submitted through one set of components survive a restart.
func TestInitComponents_PersistsAcrossRestart(t *testing.T) {
	for _, driver := range []string{config.DriverBadger, config.DriverSQLite} {
		driver := driver
		t.Run(driver, func(t *testing.T) {
			cfg := testConfig(t, driver)
			logger := slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			first, err := InitComponents(ctx, cfg, logger)
			require.NoError(t, err)

			created, err := first.Store.Submit(ctx, domain.SubmitReportRequest{
				PhotoReference: "p1",
				Location:       &domain.Location{Latitude: 1, Longitude: 2},
				Description:    "pothole",
			})
			require.NoError(t, err)
			_, err = first.Store.AdvanceStatus(ctx, created.ID)
			require.NoError(t, err)
			first.ShutdownAll()

			second, err := InitComponents(ctx, cfg, logger)
			require.NoError(t, err)
			defer second.ShutdownAll()

			got, err := second.Store.Get(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, domain.StatusAcknowledged, got.Status)
			assert.Equal(t, "pothole", got.Description)
		})
	}
}

func TestInitComponents_UnknownDriver(t *testing.T) {
	cfg := testConfig(t, "mongo")
	_, err := InitComponents(context.Background(), cfg, slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil)))
	assert.Error(t, err)
}
