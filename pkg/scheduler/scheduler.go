package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Job is a periodic task. It receives a fresh background context on each run.
type Job func(ctx context.Context) error

type Scheduler struct {
	cron *cron.Cron
}

// New registers job under the given cron spec. Specs accept an optional
// seconds field as well as descriptors such as "@every 60s".
func New(name, spec string, job Job) (*Scheduler, error) {
	c := cron.New(cron.WithParser(cron.NewParser(
		cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)))

	_, err := c.AddFunc(spec, func() {
		if err := job(context.Background()); err != nil {
			log.Printf("[Scheduler] %s failed: %v", name, err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule %s %q: %w", name, spec, err)
	}

	log.Printf("[Scheduler] %s scheduled with %q", name, spec)
	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for a running job, or for ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}
