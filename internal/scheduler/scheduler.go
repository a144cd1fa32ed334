// Package scheduler runs recurring maintenance tasks (job expiry) on a
// fixed tick, decoupled from the request path.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type Task struct {
	ID       string
	Interval time.Duration
	LastRun  time.Time
	Execute  func(ctx context.Context) error
}

const (
	defaultQueueSize = 16
	tickInterval     = 30 * time.Second
)

type Scheduler struct {
	tasks   map[string]*Task
	queue   chan *Task
	workers int
	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
}

func New(workers int) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		tasks:   make(map[string]*Task),
		queue:   make(chan *Task, defaultQueueSize),
		workers: workers,
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (s *Scheduler) AddTask(id string, interval time.Duration, execute func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks[id] = &Task{
		ID:       id,
		Interval: interval,
		Execute:  execute,
	}
}

func (s *Scheduler) Start() {
	for i := 0; i < s.workers; i++ {
		go s.worker()
	}
	go s.loop()
}

func (s *Scheduler) Stop() {
	s.cancel()
	close(s.queue)
}

func (s *Scheduler) worker() {
	for {
		select {
		case <-s.ctx.Done():
			return
		case task, ok := <-s.queue:
			if !ok {
				return
			}
			if err := task.Execute(s.ctx); err != nil {
				slog.Error("task execution failed",
					"id", task.ID,
					"error", err)
			} else {
				slog.Info("task completed", "id", task.ID)
			}
		}
	}
}

func (s *Scheduler) loop() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			now := time.Now()
			for _, task := range s.dueTasks(now) {
				select {
				case s.queue <- task:
					s.markRun(task.ID, now)
				default:
					slog.Warn("queue is full, skipping task", "id", task.ID)
				}
			}
		}
	}
}

// dueTasks returns tasks whose interval has elapsed since their last run.
// A task that has never run is due immediately.
func (s *Scheduler) dueTasks(now time.Time) []*Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	var due []*Task
	for _, task := range s.tasks {
		if now.Sub(task.LastRun) >= task.Interval {
			due = append(due, task)
		}
	}
	return due
}

func (s *Scheduler) markRun(id string, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if task, ok := s.tasks[id]; ok {
		task.LastRun = now
	}
}
