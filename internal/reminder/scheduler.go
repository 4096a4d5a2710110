package reminder

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type schedulerState int

const (
	stateIdle schedulerState = iota
	stateRunning
	stateStopped
)

// Scheduler drives the engine: one cron firing per day at the
// configured hour, plus one immediate sweep as soon as Start returns.
// It owns no business data.
type Scheduler struct {
	engine *Engine
	hour   int
	log    *zap.SugaredLogger

	mu    sync.Mutex
	state schedulerState
	cron  *cron.Cron
}

func NewScheduler(engine *Engine, hour int, log *zap.SugaredLogger) *Scheduler {
	return &Scheduler{engine: engine, hour: hour, log: log}
}

func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateIdle {
		return errors.New("scheduler already started")
	}

	s.cron = cron.New()
	spec := fmt.Sprintf("0 %d * * *", s.hour)
	if _, err := s.cron.AddFunc(spec, func() {
		s.engine.CheckRenewals(context.Background())
	}); err != nil {
		return fmt.Errorf("schedule daily check: %w", err)
	}
	s.cron.Start()

	// Independent of the cron entry: if both fire close together the
	// store lock serializes them, nothing coalesces.
	go s.engine.CheckRenewals(context.Background())

	s.state = stateRunning
	s.log.Infow("reminder scheduler started", "daily_at", fmt.Sprintf("%02d:00", s.hour))
	return nil
}

// Stop cancels future firings and waits for an in-flight cron sweep to
// finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateRunning {
		return
	}
	<-s.cron.Stop().Done()
	s.state = stateStopped
	s.log.Infow("reminder scheduler stopped")
}
