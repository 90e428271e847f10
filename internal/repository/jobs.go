package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/utility-bills/constants"
	"github.com/joseph-ayodele/utility-bills/gen/ent"
	entjob "github.com/joseph-ayodele/utility-bills/gen/ent/reconcilejob"
	"github.com/joseph-ayodele/utility-bills/internal/entity"
)

type ReconcileJobRepository interface {
	Start(ctx context.Context, fileID uuid.UUID) (*entity.ReconcileJob, error)
	SetExtracted(ctx context.Context, jobID uuid.UUID, provider, model string, pages int, extracted []byte) error
	Finish(ctx context.Context, jobID uuid.UUID, outcome entity.JobOutcome) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	// ListFinished returns jobs finished at or after since, newest first.
	ListFinished(ctx context.Context, since time.Time) ([]*entity.ReconcileJob, error)
}

type reconcileJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewReconcileJobRepository(entc *ent.Client, log *slog.Logger) ReconcileJobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &reconcileJobRepo{ent: entc, log: log}
}

func (r *reconcileJobRepo) Start(ctx context.Context, fileID uuid.UUID) (*entity.ReconcileJob, error) {
	job, err := r.ent.ReconcileJob.
		Create().
		SetFileID(fileID).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("repository.job.start_failed", "file_id", fileID, "error", err)
		return nil, mapErr(err, "start job")
	}
	r.log.Info("repository.job.started", "job_id", job.ID, "file_id", fileID)
	return toReconcileJob(job), nil
}

func (r *reconcileJobRepo) SetExtracted(ctx context.Context, jobID uuid.UUID, provider, model string, pages int, extracted []byte) error {
	_, err := r.ent.ReconcileJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusExtracted)).
		SetProvider(provider).
		SetModelName(model).
		SetPageCount(pages).
		SetExtractedJSON(extracted).
		Save(ctx)
	if err != nil {
		r.log.Error("repository.job.extracted_failed", "job_id", jobID, "error", err)
		return mapErr(err, "store extraction")
	}
	return nil
}

func (r *reconcileJobRepo) Finish(ctx context.Context, jobID uuid.UUID, o entity.JobOutcome) error {
	_, err := r.ent.ReconcileJob.
		UpdateOneID(jobID).
		SetStatus(o.Status).
		SetPassed(o.Passed).
		SetAnnotatedJSON(o.Annotated).
		SetCorrections(o.Corrections).
		SetMatched(o.Matched).
		SetMismatched(o.Mismatched).
		SetInapplicable(o.Inapplicable).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("repository.job.finish_failed", "job_id", jobID, "error", err)
		return mapErr(err, "finish job")
	}
	r.log.Info("repository.job.finished", "job_id", jobID, "status", o.Status, "passed", o.Passed)
	return nil
}

func (r *reconcileJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ReconcileJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("repository.job.finish_failed", "job_id", jobID, "error", err)
		return mapErr(err, "fail job")
	}
	r.log.Warn("repository.job.failed", "job_id", jobID, "error", message)
	return nil
}

func (r *reconcileJobRepo) ListFinished(ctx context.Context, since time.Time) ([]*entity.ReconcileJob, error) {
	rows, err := r.ent.ReconcileJob.Query().
		Where(
			entjob.FinishedAtNotNil(),
			entjob.FinishedAtGTE(since),
		).
		Order(ent.Desc(entjob.FieldFinishedAt)).
		All(ctx)
	if err != nil {
		return nil, mapErr(err, "list jobs")
	}
	out := make([]*entity.ReconcileJob, 0, len(rows))
	for _, row := range rows {
		out = append(out, toReconcileJob(row))
	}
	return out, nil
}
