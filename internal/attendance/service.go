package attendance

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Store is the persistence surface the service consumes.
type Store interface {
	CreateUser(ctx context.Context, name, rollNo, macAddress string) (User, error)
	GetUser(ctx context.Context, id string) (User, error)
	ListUsers(ctx context.Context) ([]User, error)
	CreateLog(ctx context.Context, userID string, ts time.Time) (Log, error)
	ListLogs(ctx context.Context) ([]Log, error)
	ListLogDetails(ctx context.Context) ([]LogDetail, error)
}

// ReportCache holds a prebuilt report snapshot. Implementations must treat
// misses and backend failures alike: report building always falls back to a
// fresh computation.
type ReportCache interface {
	Get(ctx context.Context) ([]ReportDay, bool)
	Set(ctx context.Context, report []ReportDay)
	Invalidate(ctx context.Context)
}

// Service coordinates validation, persistence and report building.
type Service struct {
	store Store
	cache ReportCache
}

// NewService creates a service. cache may be nil; reports are then computed
// on every request.
func NewService(store Store, cache ReportCache) *Service {
	return &Service{store: store, cache: cache}
}

// RegisterUser validates and persists a new user.
func (s *Service) RegisterUser(ctx context.Context, name, rollNo, macAddress string) (User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(rollNo) == "" {
		return User{}, ErrInvalidInput
	}
	u, err := s.store.CreateUser(ctx, name, rollNo, macAddress)
	if err != nil {
		return User{}, err
	}
	// A new user changes every sheet in the report.
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return u, nil
}

// User returns a single user.
func (s *Service) User(ctx context.Context, id string) (User, error) {
	if id == "" {
		return User{}, ErrInvalidInput
	}
	return s.store.GetUser(ctx, id)
}

// Users returns all users.
func (s *Service) Users(ctx context.Context) ([]User, error) {
	return s.store.ListUsers(ctx)
}

// RecordLog persists a check-in/out event. A nil timestamp defaults to the
// current instant; explicit timestamps are converted into IST before
// storage so date bucketing never depends on the caller's zone.
func (s *Service) RecordLog(ctx context.Context, userID string, ts *time.Time) (Log, error) {
	if userID == "" {
		return Log{}, ErrInvalidInput
	}
	when := time.Now().In(IST)
	if ts != nil {
		when = ts.In(IST)
	}
	l, err := s.store.CreateLog(ctx, userID, when)
	if err != nil {
		return Log{}, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return l, nil
}

// Logs returns every log joined with its user's name.
func (s *Service) Logs(ctx context.Context) ([]LogDetail, error) {
	return s.store.ListLogDetails(ctx)
}

// Report returns the formatted attendance report, served from the cache
// when a snapshot exists. The second result reports whether the snapshot
// was used.
func (s *Service) Report(ctx context.Context) ([]ReportDay, bool, error) {
	if s.cache != nil {
		if report, ok := s.cache.Get(ctx); ok {
			return report, true, nil
		}
	}
	report, err := s.RebuildReport(ctx)
	return report, false, err
}

// RebuildReport computes the report from a fresh snapshot of users and logs
// and stores it in the cache. The worker calls this after every log event.
func (s *Service) RebuildReport(ctx context.Context) ([]ReportDay, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	logs, err := s.store.ListLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	report := FormatReport(Aggregate(users, logs))
	if s.cache != nil {
		s.cache.Set(ctx, report)
	}
	return report, nil
}
