package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestDueTasks(t *testing.T) {
	s := New(1)
	s.AddTask("expire-jobs", 5*time.Minute, func(ctx context.Context) error { return nil })

	now := time.Now()

	// Never run: due immediately.
	if due := s.dueTasks(now); len(due) != 1 {
		t.Fatalf("got %d due tasks, want 1", len(due))
	}

	s.markRun("expire-jobs", now)
	if due := s.dueTasks(now.Add(time.Minute)); len(due) != 0 {
		t.Errorf("task due again after one minute, interval is five")
	}
	if due := s.dueTasks(now.Add(6 * time.Minute)); len(due) != 1 {
		t.Errorf("task not due after the interval elapsed")
	}
}

// Stop closes the queue while workers are still draining it; a worker that
// observes the closed channel must exit instead of executing a nil task.
func TestStopWithLiveWorkers(t *testing.T) {
	for i := 0; i < 20; i++ {
		s := New(2)
		s.AddTask("noop", time.Minute, func(ctx context.Context) error { return nil })
		s.Start()
		s.Stop()
	}
	// Give the workers a moment to observe the close; a nil-task deref
	// would surface here as a panic failing the test binary.
	time.Sleep(50 * time.Millisecond)
}

func TestWorkerExitsOnClosedQueue(t *testing.T) {
	s := New(1)

	done := make(chan struct{})
	go func() {
		s.worker()
		close(done)
	}()

	close(s.queue)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not exit after queue close")
	}
}

func TestWorkerExecutesQueuedTasks(t *testing.T) {
	s := New(1)
	var runs atomic.Int32

	done := make(chan struct{})
	task := &Task{
		ID: "count",
		Execute: func(ctx context.Context) error {
			runs.Add(1)
			close(done)
			return nil
		},
	}

	go s.worker()
	s.queue <- task

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task never executed")
	}
	if runs.Load() != 1 {
		t.Errorf("task ran %d times, want 1", runs.Load())
	}
	s.Stop()
}
