package repository

import (
	"bytes"
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/utility-bills/constants"
	"github.com/joseph-ayodele/utility-bills/internal/common"
	"github.com/joseph-ayodele/utility-bills/internal/entity"
)

// MemoryStore implements both repositories in process. It backs dry runs
// and tests; rows are copied on the way in and out.
type MemoryStore struct {
	mu    sync.Mutex
	files map[uuid.UUID]entity.BillFile
	jobs  map[uuid.UUID]entity.ReconcileJob
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		files: map[uuid.UUID]entity.BillFile{},
		jobs:  map[uuid.UUID]entity.ReconcileJob{},
		now:   time.Now,
	}
}

var (
	_ BillFileRepository     = (*MemoryStore)(nil)
	_ ReconcileJobRepository = (*MemoryStore)(nil)
)

func (m *MemoryStore) GetByID(_ context.Context, id uuid.UUID) (*entity.BillFile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.files[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &f, nil
}

func (m *MemoryStore) GetByHash(_ context.Context, hash []byte) (*entity.BillFile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.files {
		if bytes.Equal(f.ContentHash, hash) {
			return &f, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *MemoryStore) UpsertByHash(ctx context.Context, sourcePath, filename string, size int64, hash []byte) (*entity.BillFile, bool, error) {
	if f, err := m.GetByHash(ctx, hash); err == nil {
		return f, true, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	f := entity.BillFile{
		ID:          uuid.New(),
		SourcePath:  sourcePath,
		Filename:    filename,
		ContentHash: slices.Clone(hash),
		FileSize:    size,
		Status:      string(constants.JobStatusQueued),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.files[f.ID] = f
	return &f, false, nil
}

func (m *MemoryStore) UpdateStatus(_ context.Context, id uuid.UUID, status string, provider, routedPath *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.files[id]
	if !ok {
		return common.ErrNotFound
	}
	f.Status = status
	if provider != nil {
		f.Provider = provider
	}
	if routedPath != nil {
		f.RoutedPath = routedPath
	}
	f.UpdatedAt = m.now()
	m.files[id] = f
	return nil
}

func (m *MemoryStore) ListByStatus(_ context.Context, statuses ...string) ([]*entity.BillFile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.BillFile
	for _, f := range m.files {
		if len(statuses) == 0 || slices.Contains(statuses, f.Status) {
			out = append(out, &f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MemoryStore) Start(_ context.Context, fileID uuid.UUID) (*entity.ReconcileJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[fileID]; !ok {
		return nil, common.ErrNotFound
	}
	j := entity.ReconcileJob{
		ID:        uuid.New(),
		FileID:    fileID,
		Status:    string(constants.JobStatusRunning),
		StartedAt: m.now(),
	}
	m.jobs[j.ID] = j
	return &j, nil
}

func (m *MemoryStore) update(id uuid.UUID, fn func(j *entity.ReconcileJob)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok {
		return common.ErrNotFound
	}
	fn(&j)
	m.jobs[id] = j
	return nil
}

func (m *MemoryStore) SetExtracted(_ context.Context, jobID uuid.UUID, provider, model string, pages int, extracted []byte) error {
	return m.update(jobID, func(j *entity.ReconcileJob) {
		j.Status = string(constants.JobStatusExtracted)
		j.Provider = &provider
		j.ModelName = &model
		j.PageCount = pages
		j.ExtractedJSON = slices.Clone(extracted)
	})
}

func (m *MemoryStore) Finish(_ context.Context, jobID uuid.UUID, o entity.JobOutcome) error {
	now := m.now()
	return m.update(jobID, func(j *entity.ReconcileJob) {
		passed := o.Passed
		j.Status = o.Status
		j.Passed = &passed
		j.AnnotatedJSON = slices.Clone(o.Annotated)
		j.Corrections = slices.Clone(o.Corrections)
		j.Matched, j.Mismatched, j.Inapplicable = o.Matched, o.Mismatched, o.Inapplicable
		j.FinishedAt = &now
	})
}

func (m *MemoryStore) FinishFailure(_ context.Context, jobID uuid.UUID, message string) error {
	now := m.now()
	return m.update(jobID, func(j *entity.ReconcileJob) {
		j.Status = string(constants.JobStatusFailed)
		j.ErrorMessage = &message
		j.FinishedAt = &now
	})
}

func (m *MemoryStore) ListFinished(_ context.Context, since time.Time) ([]*entity.ReconcileJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.ReconcileJob
	for _, j := range m.jobs {
		if j.FinishedAt != nil && !j.FinishedAt.Before(since) {
			out = append(out, &j)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FinishedAt.After(*out[j].FinishedAt) })
	return out, nil
}
