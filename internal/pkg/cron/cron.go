package cron

import (
	"context"
	"sort"
	"sync"
	"time"
)

// JobStatus is the outcome of a job's last run.
type JobStatus string

const (
	StatusIdle    JobStatus = "idle"
	StatusRunning JobStatus = "running"
	StatusFulfill JobStatus = "fulfill"
	StatusReject  JobStatus = "reject"
)

// Job is a task repeated every Interval.
type Job struct {
	Name        string
	Description string
	Interval    time.Duration
	Fn          func(ctx context.Context) error
}

// State is a snapshot of one job.
type State struct {
	Name      string
	Status    JobStatus
	Message   string
	LastRunAt time.Time
	NextRunAt time.Time
}

type jobState struct {
	Job

	mu        sync.Mutex
	status    JobStatus
	message   string
	lastRunAt time.Time
	nextRunAt time.Time
}

// Scheduler runs named jobs on fixed intervals.
type Scheduler struct {
	mu   sync.RWMutex
	jobs map[string]*jobState
	now  func() time.Time
}

func New() *Scheduler {
	return &Scheduler{jobs: make(map[string]*jobState), now: time.Now}
}

// Register adds a job. Call it before Start.
func (s *Scheduler) Register(job Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.Name] = &jobState{
		Job:       job,
		status:    StatusIdle,
		nextRunAt: s.now().Add(job.Interval),
	}
}

// Start launches one goroutine per job. They stop with ctx.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, js := range s.jobs {
		go s.runLoop(ctx, js)
	}
}

func (s *Scheduler) runLoop(ctx context.Context, js *jobState) {
	timer := time.NewTimer(js.Interval)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			s.execute(ctx, js)
			js.mu.Lock()
			js.nextRunAt = s.now().Add(js.Interval)
			js.mu.Unlock()
			timer.Reset(js.Interval)
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, js *jobState) {
	js.mu.Lock()
	if js.status == StatusRunning {
		js.mu.Unlock()
		return
	}
	js.status = StatusRunning
	js.mu.Unlock()

	started := s.now()
	err := js.Fn(ctx)

	js.mu.Lock()
	defer js.mu.Unlock()
	js.lastRunAt = started
	if err != nil {
		js.status = StatusReject
		js.message = err.Error()
		return
	}
	js.status = StatusFulfill
	js.message = ""
}

// List returns every job's state, sorted by name.
func (s *Scheduler) List() []State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]State, 0, len(s.jobs))
	for _, js := range s.jobs {
		js.mu.Lock()
		out = append(out, State{
			Name:      js.Name,
			Status:    js.status,
			Message:   js.message,
			LastRunAt: js.lastRunAt,
			NextRunAt: js.nextRunAt,
		})
		js.mu.Unlock()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
