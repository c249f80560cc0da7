package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Arora962/NagarikMitra/internal/domain"
	"github.com/Arora962/NagarikMitra/pkg/e"
	"github.com/Arora962/NagarikMitra/pkg/validator"
)

const maxIDAttempts = 8

// ReportStore owns the authoritative report list. Mutations are serialized
// and follow copy, compute, save, publish: the list readers see is always the
// last one the repository accepted.
type ReportStore struct {
	repo   ReportRepository
	logger *slog.Logger
	now    func() time.Time
	newID  func() string

	// writeMu is held for the whole mutation including Save.
	writeMu     sync.Mutex
	initialized bool

	mu      sync.RWMutex
	reports []domain.Report
}

type StoreOption func(*ReportStore)

func WithClock(now func() time.Time) StoreOption {
	return func(s *ReportStore) { s.now = now }
}

func WithIDGenerator(newID func() string) StoreOption {
	return func(s *ReportStore) { s.newID = newID }
}

func NewReportStore(repo ReportRepository, logger *slog.Logger, opts ...StoreOption) *ReportStore {
	s := &ReportStore{
		repo:    repo,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
		reports: []domain.Report{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize loads the persisted list once. A failed load starts the store
// empty instead of failing.
func (s *ReportStore) Initialize(ctx context.Context) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.initLocked(ctx)
}

func (s *ReportStore) initLocked(ctx context.Context) {
	if s.initialized {
		return
	}
	s.initialized = true

	loaded, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Warn("report load failed, starting with empty list", slog.Any("error", err))
		s.publish([]domain.Report{})
		return
	}

	seen := make(map[string]struct{}, len(loaded))
	reports := make([]domain.Report, 0, len(loaded))
	for _, r := range loaded {
		if _, dup := seen[r.ID]; dup {
			s.logger.Warn("dropping duplicate report id from persisted list", slog.String("id", r.ID))
			continue
		}
		seen[r.ID] = struct{}{}
		reports = append(reports, r.Clone())
	}
	s.publish(reports)
	s.logger.Info("reports loaded", slog.Int("count", len(reports)))
}

func (s *ReportStore) publish(reports []domain.Report) {
	s.mu.Lock()
	s.reports = reports
	s.mu.Unlock()
	reportsGauge.Set(float64(len(reports)))
}

// mutateFunc derives the next list from a private copy of the current one.
// Returning changed=false skips the save.
type mutateFunc func(current []domain.Report) (next []domain.Report, changed bool, err error)

func (s *ReportStore) mutate(ctx context.Context, op string, fn mutateFunc) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.initLocked(ctx)

	next, changed, err := fn(s.Snapshot())
	if err != nil {
		mutationsTotal.WithLabelValues(op, resultRejected).Inc()
		return err
	}
	if !changed {
		mutationsTotal.WithLabelValues(op, resultNoop).Inc()
		return nil
	}

	// A save is never abandoned half way: caller cancellation must not leave
	// the engine committed while the published list stays old.
	start := time.Now()
	err = s.repo.Save(context.WithoutCancel(ctx), cloneReports(next))
	persistDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		mutationsTotal.WithLabelValues(op, resultFailed).Inc()
		s.logger.Error("persist failed, list unchanged", slog.String("op", op), slog.Any("error", err))
		if !errors.Is(err, e.ErrPersistence) {
			err = e.Persistence(op, err)
		}
		return err
	}

	s.publish(next)
	mutationsTotal.WithLabelValues(op, resultOK).Inc()
	return nil
}

func (s *ReportStore) Submit(ctx context.Context, req domain.SubmitReportRequest) (domain.Report, error) {
	const op = "service.Reports.Submit"

	if err := validator.ValidateStruct(req); err != nil {
		mutationsTotal.WithLabelValues(op, resultRejected).Inc()
		return domain.Report{}, fmt.Errorf("%s: %w", op, err)
	}

	loc := *req.Location
	report := domain.Report{
		PhotoReference: req.PhotoReference,
		Location:       &loc,
		Description:    strings.TrimSpace(req.Description),
		CreatedAt:      s.now(),
		Status:         domain.StatusReported,
		Department:     domain.DepartmentUnassigned,
	}

	err := s.mutate(ctx, op, func(current []domain.Report) ([]domain.Report, bool, error) {
		id, err := s.uniqueID(current)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", op, err)
		}
		report.ID = id

		next := make([]domain.Report, 0, len(current)+1)
		next = append(next, report)
		next = append(next, current...)
		return next, true, nil
	})
	if err != nil {
		return domain.Report{}, err
	}

	s.logger.Info("report submitted", slog.String("id", report.ID))
	return report.Clone(), nil
}

func (s *ReportStore) uniqueID(current []domain.Report) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.newID()
		if id != "" && indexOf(current, id) < 0 {
			return id, nil
		}
	}
	return "", errors.New("could not generate a unique report id")
}

func (s *ReportStore) AdvanceStatus(ctx context.Context, id string) (domain.Report, error) {
	const op = "service.Reports.AdvanceStatus"

	var updated domain.Report
	err := s.mutate(ctx, op, func(current []domain.Report) ([]domain.Report, bool, error) {
		i := indexOf(current, id)
		if i < 0 {
			return nil, false, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		from := current[i].Status
		current[i].Status = from.Next()
		updated = current[i]
		if current[i].Status == from {
			return current, false, nil
		}
		s.logger.Debug("status advance", slog.String("id", id), slog.String("from", string(from)), slog.String("to", string(current[i].Status)))
		return current, true, nil
	})
	if err != nil {
		return domain.Report{}, err
	}
	return updated.Clone(), nil
}

func (s *ReportStore) AssignDepartment(ctx context.Context, id, department string) (domain.Report, error) {
	const op = "service.Reports.AssignDepartment"

	department = strings.TrimSpace(department)
	if err := validator.ValidateStruct(domain.AssignDepartmentRequest{Department: department}); err != nil {
		mutationsTotal.WithLabelValues(op, resultRejected).Inc()
		return domain.Report{}, fmt.Errorf("%s: %w", op, err)
	}

	var updated domain.Report
	err := s.mutate(ctx, op, func(current []domain.Report) ([]domain.Report, bool, error) {
		i := indexOf(current, id)
		if i < 0 {
			return nil, false, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		changed := current[i].Department != department
		current[i].Department = department
		updated = current[i]
		return current, changed, nil
	})
	if err != nil {
		return domain.Report{}, err
	}
	return updated.Clone(), nil
}

func (s *ReportStore) Remove(ctx context.Context, id string) error {
	const op = "service.Reports.Remove"

	return s.mutate(ctx, op, func(current []domain.Report) ([]domain.Report, bool, error) {
		i := indexOf(current, id)
		if i < 0 {
			return nil, false, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		next := make([]domain.Report, 0, len(current)-1)
		next = append(next, current[:i]...)
		next = append(next, current[i+1:]...)
		return next, true, nil
	})
}

// ClearAll always writes the empty list, even when the store is already empty.
func (s *ReportStore) ClearAll(ctx context.Context) error {
	const op = "service.Reports.ClearAll"

	err := s.mutate(ctx, op, func([]domain.Report) ([]domain.Report, bool, error) {
		return []domain.Report{}, true, nil
	})
	if err == nil {
		s.logger.Info("all reports cleared")
	}
	return err
}

// Snapshot returns a copy of the last committed list, newest first.
func (s *ReportStore) Snapshot() []domain.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneReports(s.reports)
}

func (s *ReportStore) Get(_ context.Context, id string) (domain.Report, error) {
	const op = "service.Reports.Get"

	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.reports, id); i >= 0 {
		return s.reports[i].Clone(), nil
	}
	return domain.Report{}, fmt.Errorf("%s: %w", op, e.ErrNotFound)
}

// List returns the reports matching filter in store order.
func (s *ReportStore) List(_ context.Context, filter domain.StatusFilter) ([]domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Report, 0, len(s.reports))
	for _, r := range s.reports {
		if filter.Match(r) {
			out = append(out, r.Clone())
		}
	}
	return out, nil
}

func indexOf(reports []domain.Report, id string) int {
	for i := range reports {
		if reports[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneReports(src []domain.Report) []domain.Report {
	out := make([]domain.Report, len(src))
	for i, r := range src {
		out[i] = r.Clone()
	}
	return out
}
