package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/trialdesk/trialdesk/internal/platform/store"
)

// HousekeepingService periodically reconciles token state: pending
// invitations past their expiry flip to expired, and abandoned demo
// signups are deleted.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service. A non-positive
// interval defaults to 1 hour.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    st,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the background worker. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop shuts the worker down, blocking until any in-progress sweep ends.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Sweep once at startup so restarts don't delay reconciliation.
	s.sweep()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

// sweep runs each cleanup independently; one failing doesn't stop the
// others.
func (s *HousekeepingService) sweep() {
	ctx := context.Background()
	now := time.Now()

	if n, err := s.Store.Invitations().ExpireOverdueInvitations(ctx, now); err != nil {
		s.Logger.Error("failed to expire overdue invitations", "error", err)
	} else if n > 0 {
		s.Logger.Info("expired overdue invitations", "count", n)
	}

	if n, err := s.Store.DemoSignups().DeleteExpiredDemoSignups(ctx, now); err != nil {
		s.Logger.Error("failed to delete expired demo signups", "error", err)
	} else if n > 0 {
		s.Logger.Info("deleted expired demo signups", "count", n)
	}
}
