package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/utility-bills/internal/common"
	"github.com/joseph-ayodele/utility-bills/internal/observability/metrics"
	"github.com/joseph-ayodele/utility-bills/internal/pipeline"
)

// FileProcessor is satisfied by *pipeline.Processor.
type FileProcessor interface {
	Process(ctx context.Context, fileID uuid.UUID, force bool) (pipeline.Outcome, error)
}

// ResultFunc observes every finished job, including failures.
type ResultFunc func(job Job, out pipeline.Outcome, err error)

type ProcessorQueue struct {
	proc    FileProcessor
	logger  *slog.Logger
	workers int
	timeout time.Duration
	onDone  ResultFunc

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.RWMutex
	closed bool
}

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func WithResultFunc(fn ResultFunc) Option {
	return func(q *ProcessorQueue) { q.onDone = fn }
}

func NewProcessorQueue(proc FileProcessor, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ProcessorQueue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: 5 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ProcessorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go q.worker(i + 1)
		}
	})
}

func (q *ProcessorQueue) worker(workerID int) {
	defer q.wg.Done()
	q.logger.Debug("queue.worker.started", "worker_id", workerID)

	for job := range q.ch {
		metrics.SetQueueDepth(len(q.ch))
		ctx := context.Background()
		if job.RequestID != "" {
			ctx = common.WithRequestID(ctx, job.RequestID)
		}
		ctx, cancel := context.WithTimeout(ctx, q.timeout)
		out, err := q.proc.Process(ctx, job.FileID, job.Force)
		cancel()

		switch {
		case errors.Is(err, pipeline.ErrSkipped):
			q.logger.Info("queue.job.skipped", "worker_id", workerID, "file_id", job.FileID, "status", out.Status)
		case err != nil:
			q.logger.Error("queue.job.failed", "worker_id", workerID, "file_id", job.FileID, "error", err)
		default:
			q.logger.Info("queue.job.done", "worker_id", workerID, "file_id", job.FileID,
				"provider", out.Provider, "status", out.Status,
				"wait_ms", time.Since(job.SubmittedAt).Milliseconds())
		}
		if q.onDone != nil {
			q.onDone(job, out, err)
		}
	}

	q.logger.Debug("queue.worker.stopped", "worker_id", workerID)
}

// Enqueue blocks while the queue is full, until ctx is done.
func (q *ProcessorQueue) Enqueue(ctx context.Context, job Job) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		q.logger.Warn("queue.enqueue.closed", "file_id", job.FileID)
		return ErrQueueClosed
	}
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}
	if job.RequestID == "" {
		job.RequestID = common.RequestIDFromContext(ctx)
	}
	select {
	case q.ch <- job:
	default:
		q.logger.Warn("queue.full", "file_id", job.FileID, "capacity", cap(q.ch))
		select {
		case q.ch <- job:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	metrics.SetQueueDepth(len(q.ch))
	q.logger.Debug("queue.enqueued", "file_id", job.FileID, "force", job.Force)
	return nil
}

// Shutdown stops intake and waits for queued jobs to drain, or for ctx.
func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("queue.shutdown.interrupted")
	case <-done:
		q.logger.Info("queue.shutdown.drained")
	}
}
