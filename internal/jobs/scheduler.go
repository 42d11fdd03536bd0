package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is a named unit of scheduled work with its own cron expression.
type Job interface {
	Name() string
	Schedule() string
	Run(ctx context.Context) error
}

type Scheduler struct {
	cron *cron.Cron
	jobs []Job
}

func NewScheduler() *Scheduler {
	return &Scheduler{cron: cron.New()}
}

func (s *Scheduler) Register(job Job) {
	s.jobs = append(s.jobs, job)
}

// Start schedules every registered job and begins the cron loop. Each run is
// bounded so a hung job cannot pile up behind the next tick.
func (s *Scheduler) Start() error {
	for _, job := range s.jobs {
		_, err := s.cron.AddFunc(job.Schedule(), func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()

			start := time.Now()
			if err := job.Run(ctx); err != nil {
				log.Printf("jobs: %s failed after %s: %v", job.Name(), time.Since(start), err)
				return
			}
			log.Printf("jobs: %s finished in %s", job.Name(), time.Since(start))
		})
		if err != nil {
			return err
		}
		log.Printf("jobs: scheduled %s (%s)", job.Name(), job.Schedule())
	}
	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
