package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Arora962/NagarikMitra/internal/domain"
	"github.com/Arora962/NagarikMitra/pkg/e"
)

// ReportRepository keeps the full report list as a single JSON entry.
type ReportRepository struct {
	kv     KV
	key    string
	logger *slog.Logger
}

func NewReportRepository(kv KV, key string, logger *slog.Logger) *ReportRepository {
	if key == "" {
		key = DefaultKey
	}
	return &ReportRepository{kv: kv, key: key, logger: logger}
}

// Load returns the persisted list. A missing entry is an empty list.
func (r *ReportRepository) Load(ctx context.Context) ([]domain.Report, error) {
	const op = "storage.Reports.Load"

	raw, ok, err := r.kv.Get(ctx, r.key)
	if err != nil {
		r.logger.Error("kv get failed", slog.String("op", op), slog.String("key", r.key), slog.Any("error", err))
		return nil, e.Persistence(op, err)
	}
	if !ok || raw == "" {
		return []domain.Report{}, nil
	}

	var reports []domain.Report
	if err := json.Unmarshal([]byte(raw), &reports); err != nil {
		r.logger.Error("decode reports failed", slog.String("op", op), slog.String("key", r.key), slog.Any("error", err))
		return nil, e.Persistence(op, err)
	}
	for i, rep := range reports {
		if err := checkStored(rep); err != nil {
			r.logger.Error("invalid stored report", slog.String("op", op), slog.Int("index", i), slog.Any("error", err))
			return nil, e.Persistence(op, err)
		}
	}
	if reports == nil {
		reports = []domain.Report{}
	}
	return reports, nil
}

// checkStored rejects records whose id or status key was absent from the
// stored JSON; the enum guard in UnmarshalJSON only runs on present keys.
func checkStored(rep domain.Report) error {
	if rep.ID == "" {
		return errors.New("report without id")
	}
	if !rep.Status.Valid() {
		return fmt.Errorf("report %q has no valid status", rep.ID)
	}
	return nil
}

// Save replaces the persisted list with reports.
func (r *ReportRepository) Save(ctx context.Context, reports []domain.Report) error {
	const op = "storage.Reports.Save"

	if reports == nil {
		reports = []domain.Report{}
	}
	b, err := json.Marshal(reports)
	if err != nil {
		return e.Persistence(op, err)
	}
	if err := r.kv.Set(ctx, r.key, string(b)); err != nil {
		r.logger.Error("kv set failed", slog.String("op", op), slog.String("key", r.key), slog.Any("error", err))
		return e.Persistence(op, err)
	}
	r.logger.Debug("reports saved", slog.String("key", r.key), slog.Int("count", len(reports)))
	return nil
}
