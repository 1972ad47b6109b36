// Package schedule runs the weekly rollover job on a cron spec.
package schedule

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultRollover fires at the start of every Monday.
const DefaultRollover = "0 0 * * MON"

// Scheduler wraps cron-based jobs evaluated in a fixed zone.
type Scheduler struct {
	cron *cron.Cron
	loc  *time.Location
}

// New returns a scheduler for loc; nil means time.Local.
func New(loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		cron: cron.New(cron.WithLocation(loc)),
		loc:  loc,
	}
}

// ScheduleRollover registers job on a standard five-field cron spec. An
// empty spec uses DefaultRollover.
func (s *Scheduler) ScheduleRollover(spec string, job func()) (cron.EntryID, error) {
	if spec == "" {
		spec = DefaultRollover
	}
	id, err := s.cron.AddFunc(spec, job)
	if err != nil {
		return 0, fmt.Errorf("rollover spec %q: %w", spec, err)
	}
	return id, nil
}

// Next reports when entry id fires next, once the scheduler is running.
func (s *Scheduler) Next(id cron.EntryID) time.Time {
	return s.cron.Entry(id).Next
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// NextAfter returns the first activation of spec strictly after t, in loc.
func NextAfter(spec string, loc *time.Location, t time.Time) (time.Time, error) {
	if spec == "" {
		spec = DefaultRollover
	}
	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return time.Time{}, fmt.Errorf("rollover spec %q: %w", spec, err)
	}
	if loc == nil {
		loc = time.Local
	}
	return sched.Next(t.In(loc)), nil
}
