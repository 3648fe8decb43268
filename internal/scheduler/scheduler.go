package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// Sweeper drops expired entries and reports how many remain.
type Sweeper interface {
	Sweep() int
}

// Scheduler periodically sweeps expired sessions.
type Scheduler struct {
	scheduler *gocron.Scheduler
	sweeper   Sweeper
	interval  time.Duration
	report    func(live int)
}

// New creates a new Scheduler. report is called with the live count after
// every sweep and may be nil.
func New(sweeper Sweeper, interval time.Duration, report func(live int)) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		sweeper:   sweeper,
		interval:  interval,
		report:    report,
	}
}

// Start schedules the sweep job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.sweeper == nil {
		log.Println("scheduler: no session store configured; nothing to schedule")
		return nil
	}

	interval := s.interval
	if interval < time.Second {
		interval = 15 * time.Minute
	}

	_, err := s.scheduler.Every(interval).Do(s.RunOnce)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// RunOnce performs a single sweep.
func (s *Scheduler) RunOnce() {
	live := s.sweeper.Sweep()
	log.Printf("scheduler: session sweep complete, %d live", live)
	if s.report != nil {
		s.report(live)
	}
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
