// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/utility-bills/gen/ent/billfile"
	"github.com/joseph-ayodele/utility-bills/gen/ent/reconcilejob"
)

// BillFileCreate is the builder for creating a BillFile entity.
type BillFileCreate struct {
	config
	mutation *BillFileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSourcePath sets the "source_path" field.
func (bfc *BillFileCreate) SetSourcePath(s string) *BillFileCreate {
	bfc.mutation.SetSourcePath(s)
	return bfc
}

// SetFilename sets the "filename" field.
func (bfc *BillFileCreate) SetFilename(s string) *BillFileCreate {
	bfc.mutation.SetFilename(s)
	return bfc
}

// SetContentHash sets the "content_hash" field.
func (bfc *BillFileCreate) SetContentHash(b []byte) *BillFileCreate {
	bfc.mutation.SetContentHash(b)
	return bfc
}

// SetFileSize sets the "file_size" field.
func (bfc *BillFileCreate) SetFileSize(i int64) *BillFileCreate {
	bfc.mutation.SetFileSize(i)
	return bfc
}

// SetProvider sets the "provider" field.
func (bfc *BillFileCreate) SetProvider(s string) *BillFileCreate {
	bfc.mutation.SetProvider(s)
	return bfc
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (bfc *BillFileCreate) SetNillableProvider(s *string) *BillFileCreate {
	if s != nil {
		bfc.SetProvider(*s)
	}
	return bfc
}

// SetStatus sets the "status" field.
func (bfc *BillFileCreate) SetStatus(s string) *BillFileCreate {
	bfc.mutation.SetStatus(s)
	return bfc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (bfc *BillFileCreate) SetNillableStatus(s *string) *BillFileCreate {
	if s != nil {
		bfc.SetStatus(*s)
	}
	return bfc
}

// SetRoutedPath sets the "routed_path" field.
func (bfc *BillFileCreate) SetRoutedPath(s string) *BillFileCreate {
	bfc.mutation.SetRoutedPath(s)
	return bfc
}

// SetNillableRoutedPath sets the "routed_path" field if the given value is not nil.
func (bfc *BillFileCreate) SetNillableRoutedPath(s *string) *BillFileCreate {
	if s != nil {
		bfc.SetRoutedPath(*s)
	}
	return bfc
}

// SetCreatedAt sets the "created_at" field.
func (bfc *BillFileCreate) SetCreatedAt(t time.Time) *BillFileCreate {
	bfc.mutation.SetCreatedAt(t)
	return bfc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (bfc *BillFileCreate) SetNillableCreatedAt(t *time.Time) *BillFileCreate {
	if t != nil {
		bfc.SetCreatedAt(*t)
	}
	return bfc
}

// SetUpdatedAt sets the "updated_at" field.
func (bfc *BillFileCreate) SetUpdatedAt(t time.Time) *BillFileCreate {
	bfc.mutation.SetUpdatedAt(t)
	return bfc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (bfc *BillFileCreate) SetNillableUpdatedAt(t *time.Time) *BillFileCreate {
	if t != nil {
		bfc.SetUpdatedAt(*t)
	}
	return bfc
}

// SetID sets the "id" field.
func (bfc *BillFileCreate) SetID(u uuid.UUID) *BillFileCreate {
	bfc.mutation.SetID(u)
	return bfc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (bfc *BillFileCreate) SetNillableID(u *uuid.UUID) *BillFileCreate {
	if u != nil {
		bfc.SetID(*u)
	}
	return bfc
}

// AddJobIDs adds the "jobs" edge to the ReconcileJob entity by IDs.
func (bfc *BillFileCreate) AddJobIDs(ids ...uuid.UUID) *BillFileCreate {
	bfc.mutation.AddJobIDs(ids...)
	return bfc
}

// AddJobs adds the "jobs" edges to the ReconcileJob entity.
func (bfc *BillFileCreate) AddJobs(r ...*ReconcileJob) *BillFileCreate {
	ids := make([]uuid.UUID, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return bfc.AddJobIDs(ids...)
}

// Mutation returns the BillFileMutation object of the builder.
func (bfc *BillFileCreate) Mutation() *BillFileMutation {
	return bfc.mutation
}

// Save creates the BillFile in the database.
func (bfc *BillFileCreate) Save(ctx context.Context) (*BillFile, error) {
	bfc.defaults()
	return withHooks(ctx, bfc.sqlSave, bfc.mutation, bfc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (bfc *BillFileCreate) SaveX(ctx context.Context) *BillFile {
	v, err := bfc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (bfc *BillFileCreate) Exec(ctx context.Context) error {
	_, err := bfc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bfc *BillFileCreate) ExecX(ctx context.Context) {
	if err := bfc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (bfc *BillFileCreate) defaults() {
	if _, ok := bfc.mutation.Status(); !ok {
		v := billfile.DefaultStatus
		bfc.mutation.SetStatus(v)
	}
	if _, ok := bfc.mutation.CreatedAt(); !ok {
		v := billfile.DefaultCreatedAt()
		bfc.mutation.SetCreatedAt(v)
	}
	if _, ok := bfc.mutation.UpdatedAt(); !ok {
		v := billfile.DefaultUpdatedAt()
		bfc.mutation.SetUpdatedAt(v)
	}
	if _, ok := bfc.mutation.ID(); !ok {
		v := billfile.DefaultID()
		bfc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (bfc *BillFileCreate) check() error {
	if _, ok := bfc.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`ent: missing required field "BillFile.source_path"`)}
	}
	if v, ok := bfc.mutation.SourcePath(); ok {
		if err := billfile.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "BillFile.source_path": %w`, err)}
		}
	}
	if _, ok := bfc.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "BillFile.filename"`)}
	}
	if v, ok := bfc.mutation.Filename(); ok {
		if err := billfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "BillFile.filename": %w`, err)}
		}
	}
	if _, ok := bfc.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "BillFile.content_hash"`)}
	}
	if v, ok := bfc.mutation.ContentHash(); ok {
		if err := billfile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "BillFile.content_hash": %w`, err)}
		}
	}
	if _, ok := bfc.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "BillFile.file_size"`)}
	}
	if v, ok := bfc.mutation.FileSize(); ok {
		if err := billfile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "BillFile.file_size": %w`, err)}
		}
	}
	if _, ok := bfc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "BillFile.status"`)}
	}
	if v, ok := bfc.mutation.Status(); ok {
		if err := billfile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BillFile.status": %w`, err)}
		}
	}
	if _, ok := bfc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BillFile.created_at"`)}
	}
	if _, ok := bfc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BillFile.updated_at"`)}
	}
	return nil
}

func (bfc *BillFileCreate) sqlSave(ctx context.Context) (*BillFile, error) {
	if err := bfc.check(); err != nil {
		return nil, err
	}
	_node, _spec := bfc.createSpec()
	if err := sqlgraph.CreateNode(ctx, bfc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	bfc.mutation.id = &_node.ID
	bfc.mutation.done = true
	return _node, nil
}

func (bfc *BillFileCreate) createSpec() (*BillFile, *sqlgraph.CreateSpec) {
	var (
		_node = &BillFile{config: bfc.config}
		_spec = sqlgraph.NewCreateSpec(billfile.Table, sqlgraph.NewFieldSpec(billfile.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = bfc.conflict
	if id, ok := bfc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := bfc.mutation.SourcePath(); ok {
		_spec.SetField(billfile.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := bfc.mutation.Filename(); ok {
		_spec.SetField(billfile.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := bfc.mutation.ContentHash(); ok {
		_spec.SetField(billfile.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := bfc.mutation.FileSize(); ok {
		_spec.SetField(billfile.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := bfc.mutation.Provider(); ok {
		_spec.SetField(billfile.FieldProvider, field.TypeString, value)
		_node.Provider = &value
	}
	if value, ok := bfc.mutation.Status(); ok {
		_spec.SetField(billfile.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := bfc.mutation.RoutedPath(); ok {
		_spec.SetField(billfile.FieldRoutedPath, field.TypeString, value)
		_node.RoutedPath = &value
	}
	if value, ok := bfc.mutation.CreatedAt(); ok {
		_spec.SetField(billfile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := bfc.mutation.UpdatedAt(); ok {
		_spec.SetField(billfile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := bfc.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   billfile.JobsTable,
			Columns: []string{billfile.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reconcilejob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BillFile.Create().
//		SetSourcePath(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BillFileUpsert) {
//			SetSourcePath(v+v).
//		}).
//		Exec(ctx)
func (bfc *BillFileCreate) OnConflict(opts ...sql.ConflictOption) *BillFileUpsertOne {
	bfc.conflict = opts
	return &BillFileUpsertOne{
		create: bfc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BillFile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (bfc *BillFileCreate) OnConflictColumns(columns ...string) *BillFileUpsertOne {
	bfc.conflict = append(bfc.conflict, sql.ConflictColumns(columns...))
	return &BillFileUpsertOne{
		create: bfc,
	}
}

type (
	// BillFileUpsertOne is the builder for "upsert"-ing
	//  one BillFile node.
	BillFileUpsertOne struct {
		create *BillFileCreate
	}

	// BillFileUpsert is the "OnConflict" setter.
	BillFileUpsert struct {
		*sql.UpdateSet
	}
)

// SetSourcePath sets the "source_path" field.
func (u *BillFileUpsert) SetSourcePath(v string) *BillFileUpsert {
	u.Set(billfile.FieldSourcePath, v)
	return u
}

// UpdateSourcePath sets the "source_path" field to the value that was provided on create.
func (u *BillFileUpsert) UpdateSourcePath() *BillFileUpsert {
	u.SetExcluded(billfile.FieldSourcePath)
	return u
}

// SetFilename sets the "filename" field.
func (u *BillFileUpsert) SetFilename(v string) *BillFileUpsert {
	u.Set(billfile.FieldFilename, v)
	return u
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *BillFileUpsert) UpdateFilename() *BillFileUpsert {
	u.SetExcluded(billfile.FieldFilename)
	return u
}

// SetContentHash sets the "content_hash" field.
func (u *BillFileUpsert) SetContentHash(v []byte) *BillFileUpsert {
	u.Set(billfile.FieldContentHash, v)
	return u
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *BillFileUpsert) UpdateContentHash() *BillFileUpsert {
	u.SetExcluded(billfile.FieldContentHash)
	return u
}

// SetFileSize sets the "file_size" field.
func (u *BillFileUpsert) SetFileSize(v int64) *BillFileUpsert {
	u.Set(billfile.FieldFileSize, v)
	return u
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *BillFileUpsert) UpdateFileSize() *BillFileUpsert {
	u.SetExcluded(billfile.FieldFileSize)
	return u
}

// AddFileSize adds v to the "file_size" field.
func (u *BillFileUpsert) AddFileSize(v int64) *BillFileUpsert {
	u.Add(billfile.FieldFileSize, v)
	return u
}

// SetProvider sets the "provider" field.
func (u *BillFileUpsert) SetProvider(v string) *BillFileUpsert {
	u.Set(billfile.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *BillFileUpsert) UpdateProvider() *BillFileUpsert {
	u.SetExcluded(billfile.FieldProvider)
	return u
}

// ClearProvider clears the value of the "provider" field.
func (u *BillFileUpsert) ClearProvider() *BillFileUpsert {
	u.SetNull(billfile.FieldProvider)
	return u
}

// SetStatus sets the "status" field.
func (u *BillFileUpsert) SetStatus(v string) *BillFileUpsert {
	u.Set(billfile.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BillFileUpsert) UpdateStatus() *BillFileUpsert {
	u.SetExcluded(billfile.FieldStatus)
	return u
}

// SetRoutedPath sets the "routed_path" field.
func (u *BillFileUpsert) SetRoutedPath(v string) *BillFileUpsert {
	u.Set(billfile.FieldRoutedPath, v)
	return u
}

// UpdateRoutedPath sets the "routed_path" field to the value that was provided on create.
func (u *BillFileUpsert) UpdateRoutedPath() *BillFileUpsert {
	u.SetExcluded(billfile.FieldRoutedPath)
	return u
}

// ClearRoutedPath clears the value of the "routed_path" field.
func (u *BillFileUpsert) ClearRoutedPath() *BillFileUpsert {
	u.SetNull(billfile.FieldRoutedPath)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BillFileUpsert) SetUpdatedAt(v time.Time) *BillFileUpsert {
	u.Set(billfile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BillFileUpsert) UpdateUpdatedAt() *BillFileUpsert {
	u.SetExcluded(billfile.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.BillFile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(billfile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BillFileUpsertOne) UpdateNewValues() *BillFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(billfile.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(billfile.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BillFile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BillFileUpsertOne) Ignore() *BillFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BillFileUpsertOne) DoNothing() *BillFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BillFileCreate.OnConflict
// documentation for more info.
func (u *BillFileUpsertOne) Update(set func(*BillFileUpsert)) *BillFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BillFileUpsert{UpdateSet: update})
	}))
	return u
}

// SetSourcePath sets the "source_path" field.
func (u *BillFileUpsertOne) SetSourcePath(v string) *BillFileUpsertOne {
	return u.Update(func(s *BillFileUpsert) {
		s.SetSourcePath(v)
	})
}

// UpdateSourcePath sets the "source_path" field to the value that was provided on create.
func (u *BillFileUpsertOne) UpdateSourcePath() *BillFileUpsertOne {
	return u.Update(func(s *BillFileUpsert) {
		s.UpdateSourcePath()
	})
}

// SetFilename sets the "filename" field.
func (u *BillFileUpsertOne) SetFilename(v string) *BillFileUpsertOne {
	return u.Update(func(s *BillFileUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *BillFileUpsertOne) UpdateFilename() *BillFileUpsertOne {
	return u.Update(func(s *BillFileUpsert) {
		s.UpdateFilename()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *BillFileUpsertOne) SetContentHash(v []byte) *BillFileUpsertOne {
	return u.Update(func(s *BillFileUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *BillFileUpsertOne) UpdateContentHash() *BillFileUpsertOne {
	return u.Update(func(s *BillFileUpsert) {
		s.UpdateContentHash()
	})
}

// SetFileSize sets the "file_size" field.
func (u *BillFileUpsertOne) SetFileSize(v int64) *BillFileUpsertOne {
	return u.Update(func(s *BillFileUpsert) {
		s.SetFileSize(v)
	})
}

// AddFileSize adds v to the "file_size" field.
func (u *BillFileUpsertOne) AddFileSize(v int64) *BillFileUpsertOne {
	return u.Update(func(s *BillFileUpsert) {
		s.AddFileSize(v)
	})
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *BillFileUpsertOne) UpdateFileSize() *BillFileUpsertOne {
	return u.Update(func(s *BillFileUpsert) {
		s.UpdateFileSize()
	})
}

// SetProvider sets the "provider" field.
func (u *BillFileUpsertOne) SetProvider(v string) *BillFileUpsertOne {
	return u.Update(func(s *BillFileUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *BillFileUpsertOne) UpdateProvider() *BillFileUpsertOne {
	return u.Update(func(s *BillFileUpsert) {
		s.UpdateProvider()
	})
}

// ClearProvider clears the value of the "provider" field.
func (u *BillFileUpsertOne) ClearProvider() *BillFileUpsertOne {
	return u.Update(func(s *BillFileUpsert) {
		s.ClearProvider()
	})
}

// SetStatus sets the "status" field.
func (u *BillFileUpsertOne) SetStatus(v string) *BillFileUpsertOne {
	return u.Update(func(s *BillFileUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BillFileUpsertOne) UpdateStatus() *BillFileUpsertOne {
	return u.Update(func(s *BillFileUpsert) {
		s.UpdateStatus()
	})
}

// SetRoutedPath sets the "routed_path" field.
func (u *BillFileUpsertOne) SetRoutedPath(v string) *BillFileUpsertOne {
	return u.Update(func(s *BillFileUpsert) {
		s.SetRoutedPath(v)
	})
}

// UpdateRoutedPath sets the "routed_path" field to the value that was provided on create.
func (u *BillFileUpsertOne) UpdateRoutedPath() *BillFileUpsertOne {
	return u.Update(func(s *BillFileUpsert) {
		s.UpdateRoutedPath()
	})
}

// ClearRoutedPath clears the value of the "routed_path" field.
func (u *BillFileUpsertOne) ClearRoutedPath() *BillFileUpsertOne {
	return u.Update(func(s *BillFileUpsert) {
		s.ClearRoutedPath()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BillFileUpsertOne) SetUpdatedAt(v time.Time) *BillFileUpsertOne {
	return u.Update(func(s *BillFileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BillFileUpsertOne) UpdateUpdatedAt() *BillFileUpsertOne {
	return u.Update(func(s *BillFileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BillFileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BillFileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BillFileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BillFileUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BillFileUpsertOne.ID is not supported by MySQL driver. Use BillFileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BillFileUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BillFileCreateBulk is the builder for creating many BillFile entities in bulk.
type BillFileCreateBulk struct {
	config
	err      error
	builders []*BillFileCreate
	conflict []sql.ConflictOption
}

// Save creates the BillFile entities in the database.
func (bfcb *BillFileCreateBulk) Save(ctx context.Context) ([]*BillFile, error) {
	if bfcb.err != nil {
		return nil, bfcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(bfcb.builders))
	nodes := make([]*BillFile, len(bfcb.builders))
	mutators := make([]Mutator, len(bfcb.builders))
	for i := range bfcb.builders {
		func(i int, root context.Context) {
			builder := bfcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BillFileMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, bfcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = bfcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, bfcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, bfcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (bfcb *BillFileCreateBulk) SaveX(ctx context.Context) []*BillFile {
	v, err := bfcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (bfcb *BillFileCreateBulk) Exec(ctx context.Context) error {
	_, err := bfcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bfcb *BillFileCreateBulk) ExecX(ctx context.Context) {
	if err := bfcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BillFile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BillFileUpsert) {
//			SetSourcePath(v+v).
//		}).
//		Exec(ctx)
func (bfcb *BillFileCreateBulk) OnConflict(opts ...sql.ConflictOption) *BillFileUpsertBulk {
	bfcb.conflict = opts
	return &BillFileUpsertBulk{
		create: bfcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BillFile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (bfcb *BillFileCreateBulk) OnConflictColumns(columns ...string) *BillFileUpsertBulk {
	bfcb.conflict = append(bfcb.conflict, sql.ConflictColumns(columns...))
	return &BillFileUpsertBulk{
		create: bfcb,
	}
}

// BillFileUpsertBulk is the builder for "upsert"-ing
// a bulk of BillFile nodes.
type BillFileUpsertBulk struct {
	create *BillFileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BillFile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(billfile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BillFileUpsertBulk) UpdateNewValues() *BillFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(billfile.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(billfile.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BillFile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BillFileUpsertBulk) Ignore() *BillFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BillFileUpsertBulk) DoNothing() *BillFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BillFileCreateBulk.OnConflict
// documentation for more info.
func (u *BillFileUpsertBulk) Update(set func(*BillFileUpsert)) *BillFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BillFileUpsert{UpdateSet: update})
	}))
	return u
}

// SetSourcePath sets the "source_path" field.
func (u *BillFileUpsertBulk) SetSourcePath(v string) *BillFileUpsertBulk {
	return u.Update(func(s *BillFileUpsert) {
		s.SetSourcePath(v)
	})
}

// UpdateSourcePath sets the "source_path" field to the value that was provided on create.
func (u *BillFileUpsertBulk) UpdateSourcePath() *BillFileUpsertBulk {
	return u.Update(func(s *BillFileUpsert) {
		s.UpdateSourcePath()
	})
}

// SetFilename sets the "filename" field.
func (u *BillFileUpsertBulk) SetFilename(v string) *BillFileUpsertBulk {
	return u.Update(func(s *BillFileUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *BillFileUpsertBulk) UpdateFilename() *BillFileUpsertBulk {
	return u.Update(func(s *BillFileUpsert) {
		s.UpdateFilename()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *BillFileUpsertBulk) SetContentHash(v []byte) *BillFileUpsertBulk {
	return u.Update(func(s *BillFileUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *BillFileUpsertBulk) UpdateContentHash() *BillFileUpsertBulk {
	return u.Update(func(s *BillFileUpsert) {
		s.UpdateContentHash()
	})
}

// SetFileSize sets the "file_size" field.
func (u *BillFileUpsertBulk) SetFileSize(v int64) *BillFileUpsertBulk {
	return u.Update(func(s *BillFileUpsert) {
		s.SetFileSize(v)
	})
}

// AddFileSize adds v to the "file_size" field.
func (u *BillFileUpsertBulk) AddFileSize(v int64) *BillFileUpsertBulk {
	return u.Update(func(s *BillFileUpsert) {
		s.AddFileSize(v)
	})
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *BillFileUpsertBulk) UpdateFileSize() *BillFileUpsertBulk {
	return u.Update(func(s *BillFileUpsert) {
		s.UpdateFileSize()
	})
}

// SetProvider sets the "provider" field.
func (u *BillFileUpsertBulk) SetProvider(v string) *BillFileUpsertBulk {
	return u.Update(func(s *BillFileUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *BillFileUpsertBulk) UpdateProvider() *BillFileUpsertBulk {
	return u.Update(func(s *BillFileUpsert) {
		s.UpdateProvider()
	})
}

// ClearProvider clears the value of the "provider" field.
func (u *BillFileUpsertBulk) ClearProvider() *BillFileUpsertBulk {
	return u.Update(func(s *BillFileUpsert) {
		s.ClearProvider()
	})
}

// SetStatus sets the "status" field.
func (u *BillFileUpsertBulk) SetStatus(v string) *BillFileUpsertBulk {
	return u.Update(func(s *BillFileUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BillFileUpsertBulk) UpdateStatus() *BillFileUpsertBulk {
	return u.Update(func(s *BillFileUpsert) {
		s.UpdateStatus()
	})
}

// SetRoutedPath sets the "routed_path" field.
func (u *BillFileUpsertBulk) SetRoutedPath(v string) *BillFileUpsertBulk {
	return u.Update(func(s *BillFileUpsert) {
		s.SetRoutedPath(v)
	})
}

// UpdateRoutedPath sets the "routed_path" field to the value that was provided on create.
func (u *BillFileUpsertBulk) UpdateRoutedPath() *BillFileUpsertBulk {
	return u.Update(func(s *BillFileUpsert) {
		s.UpdateRoutedPath()
	})
}

// ClearRoutedPath clears the value of the "routed_path" field.
func (u *BillFileUpsertBulk) ClearRoutedPath() *BillFileUpsertBulk {
	return u.Update(func(s *BillFileUpsert) {
		s.ClearRoutedPath()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BillFileUpsertBulk) SetUpdatedAt(v time.Time) *BillFileUpsertBulk {
	return u.Update(func(s *BillFileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BillFileUpsertBulk) UpdateUpdatedAt() *BillFileUpsertBulk {
	return u.Update(func(s *BillFileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BillFileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BillFileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BillFileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BillFileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
