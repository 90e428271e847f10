package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/utility-bills/gen/ent"
	entfile "github.com/joseph-ayodele/utility-bills/gen/ent/billfile"
	"github.com/joseph-ayodele/utility-bills/internal/common"
	"github.com/joseph-ayodele/utility-bills/internal/entity"
)

type BillFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.BillFile, error)
	GetByHash(ctx context.Context, hash []byte) (*entity.BillFile, error)
	// UpsertByHash returns the existing row for hash, or creates one. The bool
	// reports whether the row already existed.
	UpsertByHash(ctx context.Context, sourcePath, filename string, size int64, hash []byte) (*entity.BillFile, bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, provider, routedPath *string) error
	ListByStatus(ctx context.Context, statuses ...string) ([]*entity.BillFile, error)
}

type billFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewBillFileRepository(entc *ent.Client, logger *slog.Logger) BillFileRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &billFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *billFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.BillFile, error) {
	row, err := r.ent.BillFile.Get(ctx, id)
	if err != nil {
		return nil, mapErr(err, "get bill file")
	}
	return toBillFile(row), nil
}

func (r *billFileRepo) GetByHash(ctx context.Context, hash []byte) (*entity.BillFile, error) {
	row, err := r.ent.BillFile.Query().
		Where(entfile.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		return nil, mapErr(err, "get bill file by hash")
	}
	return toBillFile(row), nil
}

func (r *billFileRepo) UpsertByHash(ctx context.Context, sourcePath, filename string, size int64, hash []byte) (*entity.BillFile, bool, error) {
	existing, err := r.GetByHash(ctx, hash)
	if err == nil {
		return existing, true, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		r.logger.Error("repository.bill_file.lookup_failed", "source_path", sourcePath, "error", err)
		return nil, false, err
	}
	row, err := r.ent.BillFile.Create().
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileSize(size).
		SetContentHash(hash).
		Save(ctx)
	if err != nil {
		r.logger.Error("repository.bill_file.create_failed", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, false, mapErr(err, "create bill file")
	}
	return toBillFile(row), false, nil
}

func (r *billFileRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string, provider, routedPath *string) error {
	upd := r.ent.BillFile.UpdateOneID(id).
		SetStatus(status).
		SetNillableProvider(provider).
		SetNillableRoutedPath(routedPath)
	if _, err := upd.Save(ctx); err != nil {
		r.logger.Error("repository.bill_file.update_failed", "file_id", id, "status", status, "error", err)
		return mapErr(err, "update bill file")
	}
	return nil
}

func (r *billFileRepo) ListByStatus(ctx context.Context, statuses ...string) ([]*entity.BillFile, error) {
	q := r.ent.BillFile.Query()
	if len(statuses) > 0 {
		q = q.Where(entfile.StatusIn(statuses...))
	}
	rows, err := q.Order(ent.Asc(entfile.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, mapErr(err, "list bill files")
	}
	out := make([]*entity.BillFile, 0, len(rows))
	for _, row := range rows {
		out = append(out, toBillFile(row))
	}
	return out, nil
}
