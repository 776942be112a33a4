package service

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aussiebroadwan/pinboard/internal/pinboard/store"
)

// DefaultHousekeepingInterval is used when no interval is configured.
const DefaultHousekeepingInterval = time.Hour

// HousekeepingService periodically asks the store to optimise its search
// index and refresh planner statistics.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
	started   atomic.Bool
}

// NewHousekeepingService returns a stopped service. A non-positive interval
// falls back to DefaultHousekeepingInterval.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = DefaultHousekeepingInterval
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &HousekeepingService{
		Store:    st,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs maintenance once, then on every tick, in the background.
// Only the first call has an effect, and none after Stop.
func (s *HousekeepingService) Start() {
	s.startOnce.Do(func() {
		select {
		case <-s.stopCh:
			return
		default:
		}
		s.started.Store(true)
		go s.run()
		s.Logger.Info("housekeeping service started", "interval", s.Interval)
	})
}

// Stop signals the worker and waits for an in-flight run to finish. It is
// safe to call more than once, or without Start.
func (s *HousekeepingService) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		if s.started.Load() {
			<-s.doneCh
		}
		s.Logger.Info("housekeeping service stopped")
	})
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.RunOnce(context.Background())

	for {
		select {
		case <-ticker.C:
			s.RunOnce(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// RunOnce performs a single maintenance pass and reports its outcome.
func (s *HousekeepingService) RunOnce(ctx context.Context) error {
	start := time.Now()
	if err := s.Store.Optimize(ctx); err != nil {
		s.Logger.Error("housekeeping optimize failed", "error", err)
		return err
	}
	s.Logger.Info("housekeeping completed", "duration_ms", time.Since(start).Milliseconds())
	return nil
}
