package async

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrQueueClosed is returned by Enqueue after Shutdown.
var ErrQueueClosed = errors.New("async: queue is shutting down")

// Job asks for one stored bill file to be processed.
type Job struct {
	FileID      uuid.UUID
	Force       bool // reprocess even if the file already reached a terminal status
	SubmittedAt time.Time
	RequestID   string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
