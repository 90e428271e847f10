package async

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/utility-bills/constants"
	"github.com/joseph-ayodele/utility-bills/internal/pipeline"
)

type countingProcessor struct {
	mu   sync.Mutex
	seen map[uuid.UUID]bool
	fail uuid.UUID
}

func (c *countingProcessor) Process(_ context.Context, id uuid.UUID, force bool) (pipeline.Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen[id] = force
	if id == c.fail {
		return pipeline.Outcome{FileID: id, Status: constants.JobStatusFailed}, errors.New("boom")
	}
	return pipeline.Outcome{FileID: id, Status: constants.JobStatusProcessed}, nil
}

func TestProcessorQueueDrainsOnShutdown(t *testing.T) {
	proc := &countingProcessor{seen: map[uuid.UUID]bool{}, fail: uuid.New()}
	var mu sync.Mutex
	var failures int
	q := NewProcessorQueue(proc, slog.New(slog.NewTextHandler(io.Discard, nil)),
		WithWorkers(3), WithQueueSize(2), WithProcessTimeout(time.Second),
		WithResultFunc(func(_ Job, _ pipeline.Outcome, err error) {
			if err != nil {
				mu.Lock()
				failures++
				mu.Unlock()
			}
		}))

	ids := []uuid.UUID{proc.fail}
	for i := 0; i < 10; i++ {
		ids = append(ids, uuid.New())
	}
	ctx := context.Background()
	for _, id := range ids {
		if err := q.Enqueue(ctx, Job{FileID: id, Force: true}); err != nil {
			t.Fatalf("enqueue: %v", err)
		}
	}

	sctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	q.Shutdown(sctx)

	if len(proc.seen) != len(ids) {
		t.Fatalf("processed %d jobs, want %d", len(proc.seen), len(ids))
	}
	for _, id := range ids {
		if !proc.seen[id] {
			t.Fatalf("job %s lost its force flag", id)
		}
	}
	if failures != 1 {
		t.Fatalf("failures = %d, want 1", failures)
	}
	if err := q.Enqueue(ctx, Job{FileID: uuid.New()}); !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("enqueue after shutdown = %v", err)
	}
}
