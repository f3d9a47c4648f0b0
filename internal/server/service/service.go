package service

import (
	"context"
	"time"

	"fleetmeter/internal/server/config"
	"fleetmeter/internal/server/display"
	"fleetmeter/internal/server/store"

	"go.uber.org/zap"
)

// Service represents the server service
type Service struct {
	config *config.Config
	store  *store.Store
	maps   display.Maps
	logger *zap.Logger

	startedAt time.Time
	ctx       context.Context
	cleanupFn context.CancelFunc
}

// NewService creates new service instance
func NewService(cfg *config.Config, st *store.Store, logger *zap.Logger) *Service {
	ctx, cleanupFn := context.WithCancel(context.Background())

	svc := &Service{
		config: cfg,
		store:  st,
		maps: display.Maps{
			Hostnames: cfg.Display.HostnameMap,
			GPUModels: cfg.Display.GPUModelMap,
		},
		logger:    logger,
		startedAt: time.Now(),
		ctx:       ctx,
		cleanupFn: cleanupFn,
	}

	// Start background tasks
	go svc.startSweepTask()

	return svc
}

// Stop stops the service and cleanup resources
func (s *Service) Stop() {
	s.cleanupFn()
}

// startSweepTask periodically purges expired entries. Put already sweeps
// on every write; the ticker keeps an idle store from holding stale
// entries when no reports arrive.
func (s *Service) startSweepTask() {
	ticker := time.NewTicker(s.config.Store.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.store.Sweep(time.Now())
		}
	}
}

// HealthStatus health check
type HealthStatus struct {
	Healthy   bool      `json:"healthy"`
	Timestamp time.Time `json:"timestamp"`
	Agents    int       `json:"agents"`
	UptimeSec int64     `json:"uptime_sec"`
}

// HealthCheck performs a health check
func (s *Service) HealthCheck() *HealthStatus {
	return &HealthStatus{
		Healthy:   true,
		Timestamp: time.Now(),
		Agents:    s.store.Len(),
		UptimeSec: int64(time.Since(s.startedAt).Seconds()),
	}
}
