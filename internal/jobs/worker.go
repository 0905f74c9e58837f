package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/terraenergy/prospect-quote-api/pkg/logger"
)

// Job represents a background task
type Job func(ctx context.Context) error

type namedJob struct {
	name string
	run  Job
}

// Worker runs side work that must not hold up a request, such as registry writes.
type Worker struct {
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	queue   chan namedJob
	mu      sync.RWMutex
	closed  bool
	stats   WorkerStats
	statsMu sync.RWMutex
}

// WorkerStats holds statistics about the worker
type WorkerStats struct {
	ActiveJobs    int   `json:"active_jobs"`
	CompletedJobs int64 `json:"completed_jobs"`
	FailedJobs    int64 `json:"failed_jobs"`
	QueueLength   int   `json:"queue_length"`
	QueueCapacity int   `json:"queue_capacity"`
	Workers       int   `json:"workers"`
}

// NewWorker creates a worker with N concurrent processors
func NewWorker(numWorkers int) *Worker {
	if numWorkers < 1 {
		numWorkers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())

	w := &Worker{
		ctx:    ctx,
		cancel: cancel,
		queue:  make(chan namedJob, 100),
	}
	w.stats.Workers = numWorkers

	for i := 0; i < numWorkers; i++ {
		w.wg.Add(1)
		go w.process(i)
	}

	return w
}

// Enqueue hands a job to the pool. When the queue is full the job runs on the caller's goroutine.
func (w *Worker) Enqueue(name string, job Job) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		logger.Warn("[Worker] Dropping job after shutdown", "job", name)
		return
	}

	select {
	case w.queue <- namedJob{name: name, run: job}:
	default:
		logger.Warn("[Worker] Queue full, running job synchronously", "job", name)
		w.run(-1, namedJob{name: name, run: job})
	}
}

func (w *Worker) process(workerID int) {
	defer w.wg.Done()
	for job := range w.queue {
		w.run(workerID, job)
	}
}

func (w *Worker) run(workerID int, job namedJob) {
	w.trackJobStart()
	defer w.trackJobEnd()

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("[Worker] Job panic", "worker", workerID, "job", job.name, "panic", fmt.Sprint(r))
			w.trackJobFailure()
		}
	}()

	if err := job.run(w.ctx); err != nil {
		logger.Error("[Worker] Job error", "worker", workerID, "job", job.name, "error", err)
		w.trackJobFailure()
		return
	}
	logger.Debug("[Worker] Job completed", "worker", workerID, "job", job.name, "elapsed", time.Since(start))
}

// Shutdown drains queued jobs, then cancels the worker context.
func (w *Worker) Shutdown() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	close(w.queue)
	w.mu.Unlock()

	w.wg.Wait()
	w.cancel()
}

// GetStats returns the current worker statistics
func (w *Worker) GetStats() WorkerStats {
	w.statsMu.RLock()
	defer w.statsMu.RUnlock()
	stats := w.stats
	stats.QueueLength = len(w.queue)
	stats.QueueCapacity = cap(w.queue)
	return stats
}

func (w *Worker) trackJobStart() {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	w.stats.ActiveJobs++
}

// CompletedJobs counts every finished job; FailedJobs is the failing subset.
func (w *Worker) trackJobEnd() {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	w.stats.ActiveJobs--
	w.stats.CompletedJobs++
}

func (w *Worker) trackJobFailure() {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	w.stats.FailedJobs++
}
