package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Job is a unit of background work, identified by Name in logs.
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// Reporter receives the outcome of every job: sent, failed or dropped.
type Reporter interface {
	NotificationSent(result string)
}

const (
	ResultSent    = "sent"
	ResultFailed  = "failed"
	ResultDropped = "dropped"
)

// Dispatcher runs queued jobs on a fixed pool of workers. Enqueue never blocks;
// jobs are dropped when the queue is full or the dispatcher is stopping.
type Dispatcher struct {
	workers  int
	timeout  time.Duration
	logger   *slog.Logger
	reporter Reporter

	jobs    chan Job
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	mu      sync.RWMutex
	closed  bool
	started bool
}

// NewDispatcher constructs a worker pool with the given queue capacity.
func NewDispatcher(workers, queueSize int, timeout time.Duration, reporter Reporter, logger *slog.Logger) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Dispatcher{
		workers:  workers,
		timeout:  timeout,
		logger:   logger,
		reporter: reporter,
		jobs:     make(chan Job, queueSize),
	}
}

// Enqueue schedules job and reports whether it was accepted.
func (d *Dispatcher) Enqueue(job Job) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.drop(job, "dispatcher stopped")
		return false
	}
	select {
	case d.jobs <- job:
		return true
	default:
		d.drop(job, "queue full")
		return false
	}
}

// Start launches background workers.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.closed {
		return
	}
	d.started = true

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop refuses new jobs and waits for queued ones to finish or ctx to expire.
func (d *Dispatcher) Stop(ctx context.Context) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.jobs)
	cancel := d.cancel
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		d.logger.Warn("dispatcher stop timed out, abandoning queued jobs")
	}
	if cancel != nil {
		cancel()
	}
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for job := range d.jobs {
		d.run(ctx, job)
	}
}

func (d *Dispatcher) run(ctx context.Context, job Job) {
	jobCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		return job.Run(jobCtx)
	}()

	if err != nil {
		d.logger.Warn("background job failed", slog.String("job", job.Name), slog.String("error", err.Error()))
		d.report(ResultFailed)
		return
	}
	d.logger.Debug("background job done", slog.String("job", job.Name))
	d.report(ResultSent)
}

func (d *Dispatcher) drop(job Job, reason string) {
	d.logger.Warn("background job dropped", slog.String("job", job.Name), slog.String("reason", reason))
	d.report(ResultDropped)
}

func (d *Dispatcher) report(result string) {
	if d.reporter != nil {
		d.reporter.NotificationSent(result)
	}
}
