// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/utility-bills/gen/ent/billfile"
	"github.com/joseph-ayodele/utility-bills/gen/ent/predicate"
	"github.com/joseph-ayodele/utility-bills/gen/ent/reconcilejob"
)

// BillFileUpdate is the builder for updating BillFile entities.
type BillFileUpdate struct {
	config
	hooks    []Hook
	mutation *BillFileMutation
}

// Where appends a list predicates to the BillFileUpdate builder.
func (bfu *BillFileUpdate) Where(ps ...predicate.BillFile) *BillFileUpdate {
	bfu.mutation.Where(ps...)
	return bfu
}

// SetSourcePath sets the "source_path" field.
func (bfu *BillFileUpdate) SetSourcePath(s string) *BillFileUpdate {
	bfu.mutation.SetSourcePath(s)
	return bfu
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (bfu *BillFileUpdate) SetNillableSourcePath(s *string) *BillFileUpdate {
	if s != nil {
		bfu.SetSourcePath(*s)
	}
	return bfu
}

// SetFilename sets the "filename" field.
func (bfu *BillFileUpdate) SetFilename(s string) *BillFileUpdate {
	bfu.mutation.SetFilename(s)
	return bfu
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (bfu *BillFileUpdate) SetNillableFilename(s *string) *BillFileUpdate {
	if s != nil {
		bfu.SetFilename(*s)
	}
	return bfu
}

// SetContentHash sets the "content_hash" field.
func (bfu *BillFileUpdate) SetContentHash(b []byte) *BillFileUpdate {
	bfu.mutation.SetContentHash(b)
	return bfu
}

// SetFileSize sets the "file_size" field.
func (bfu *BillFileUpdate) SetFileSize(i int64) *BillFileUpdate {
	bfu.mutation.ResetFileSize()
	bfu.mutation.SetFileSize(i)
	return bfu
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (bfu *BillFileUpdate) SetNillableFileSize(i *int64) *BillFileUpdate {
	if i != nil {
		bfu.SetFileSize(*i)
	}
	return bfu
}

// AddFileSize adds i to the "file_size" field.
func (bfu *BillFileUpdate) AddFileSize(i int64) *BillFileUpdate {
	bfu.mutation.AddFileSize(i)
	return bfu
}

// SetProvider sets the "provider" field.
func (bfu *BillFileUpdate) SetProvider(s string) *BillFileUpdate {
	bfu.mutation.SetProvider(s)
	return bfu
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (bfu *BillFileUpdate) SetNillableProvider(s *string) *BillFileUpdate {
	if s != nil {
		bfu.SetProvider(*s)
	}
	return bfu
}

// ClearProvider clears the value of the "provider" field.
func (bfu *BillFileUpdate) ClearProvider() *BillFileUpdate {
	bfu.mutation.ClearProvider()
	return bfu
}

// SetStatus sets the "status" field.
func (bfu *BillFileUpdate) SetStatus(s string) *BillFileUpdate {
	bfu.mutation.SetStatus(s)
	return bfu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (bfu *BillFileUpdate) SetNillableStatus(s *string) *BillFileUpdate {
	if s != nil {
		bfu.SetStatus(*s)
	}
	return bfu
}

// SetRoutedPath sets the "routed_path" field.
func (bfu *BillFileUpdate) SetRoutedPath(s string) *BillFileUpdate {
	bfu.mutation.SetRoutedPath(s)
	return bfu
}

// SetNillableRoutedPath sets the "routed_path" field if the given value is not nil.
func (bfu *BillFileUpdate) SetNillableRoutedPath(s *string) *BillFileUpdate {
	if s != nil {
		bfu.SetRoutedPath(*s)
	}
	return bfu
}

// ClearRoutedPath clears the value of the "routed_path" field.
func (bfu *BillFileUpdate) ClearRoutedPath() *BillFileUpdate {
	bfu.mutation.ClearRoutedPath()
	return bfu
}

// SetUpdatedAt sets the "updated_at" field.
func (bfu *BillFileUpdate) SetUpdatedAt(t time.Time) *BillFileUpdate {
	bfu.mutation.SetUpdatedAt(t)
	return bfu
}

// AddJobIDs adds the "jobs" edge to the ReconcileJob entity by IDs.
func (bfu *BillFileUpdate) AddJobIDs(ids ...uuid.UUID) *BillFileUpdate {
	bfu.mutation.AddJobIDs(ids...)
	return bfu
}

// AddJobs adds the "jobs" edges to the ReconcileJob entity.
func (bfu *BillFileUpdate) AddJobs(r ...*ReconcileJob) *BillFileUpdate {
	ids := make([]uuid.UUID, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return bfu.AddJobIDs(ids...)
}

// Mutation returns the BillFileMutation object of the builder.
func (bfu *BillFileUpdate) Mutation() *BillFileMutation {
	return bfu.mutation
}

// ClearJobs clears all "jobs" edges to the ReconcileJob entity.
func (bfu *BillFileUpdate) ClearJobs() *BillFileUpdate {
	bfu.mutation.ClearJobs()
	return bfu
}

// RemoveJobIDs removes the "jobs" edge to ReconcileJob entities by IDs.
func (bfu *BillFileUpdate) RemoveJobIDs(ids ...uuid.UUID) *BillFileUpdate {
	bfu.mutation.RemoveJobIDs(ids...)
	return bfu
}

// RemoveJobs removes "jobs" edges to ReconcileJob entities.
func (bfu *BillFileUpdate) RemoveJobs(r ...*ReconcileJob) *BillFileUpdate {
	ids := make([]uuid.UUID, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return bfu.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (bfu *BillFileUpdate) Save(ctx context.Context) (int, error) {
	bfu.defaults()
	return withHooks(ctx, bfu.sqlSave, bfu.mutation, bfu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (bfu *BillFileUpdate) SaveX(ctx context.Context) int {
	affected, err := bfu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (bfu *BillFileUpdate) Exec(ctx context.Context) error {
	_, err := bfu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bfu *BillFileUpdate) ExecX(ctx context.Context) {
	if err := bfu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (bfu *BillFileUpdate) defaults() {
	if _, ok := bfu.mutation.UpdatedAt(); !ok {
		v := billfile.UpdateDefaultUpdatedAt()
		bfu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (bfu *BillFileUpdate) check() error {
	if v, ok := bfu.mutation.SourcePath(); ok {
		if err := billfile.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "BillFile.source_path": %w`, err)}
		}
	}
	if v, ok := bfu.mutation.Filename(); ok {
		if err := billfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "BillFile.filename": %w`, err)}
		}
	}
	if v, ok := bfu.mutation.ContentHash(); ok {
		if err := billfile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "BillFile.content_hash": %w`, err)}
		}
	}
	if v, ok := bfu.mutation.FileSize(); ok {
		if err := billfile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "BillFile.file_size": %w`, err)}
		}
	}
	if v, ok := bfu.mutation.Status(); ok {
		if err := billfile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BillFile.status": %w`, err)}
		}
	}
	return nil
}

func (bfu *BillFileUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := bfu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(billfile.Table, billfile.Columns, sqlgraph.NewFieldSpec(billfile.FieldID, field.TypeUUID))
	if ps := bfu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := bfu.mutation.SourcePath(); ok {
		_spec.SetField(billfile.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := bfu.mutation.Filename(); ok {
		_spec.SetField(billfile.FieldFilename, field.TypeString, value)
	}
	if value, ok := bfu.mutation.ContentHash(); ok {
		_spec.SetField(billfile.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := bfu.mutation.FileSize(); ok {
		_spec.SetField(billfile.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := bfu.mutation.AddedFileSize(); ok {
		_spec.AddField(billfile.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := bfu.mutation.Provider(); ok {
		_spec.SetField(billfile.FieldProvider, field.TypeString, value)
	}
	if bfu.mutation.ProviderCleared() {
		_spec.ClearField(billfile.FieldProvider, field.TypeString)
	}
	if value, ok := bfu.mutation.Status(); ok {
		_spec.SetField(billfile.FieldStatus, field.TypeString, value)
	}
	if value, ok := bfu.mutation.RoutedPath(); ok {
		_spec.SetField(billfile.FieldRoutedPath, field.TypeString, value)
	}
	if bfu.mutation.RoutedPathCleared() {
		_spec.ClearField(billfile.FieldRoutedPath, field.TypeString)
	}
	if value, ok := bfu.mutation.UpdatedAt(); ok {
		_spec.SetField(billfile.FieldUpdatedAt, field.TypeTime, value)
	}
	if bfu.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := bfu.mutation.RemovedJobsIDs(); len(nodes) > 0 && !bfu.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := bfu.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, bfu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{billfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	bfu.mutation.done = true
	return n, nil
}

// BillFileUpdateOne is the builder for updating a single BillFile entity.
type BillFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BillFileMutation
}

// SetSourcePath sets the "source_path" field.
func (bfuo *BillFileUpdateOne) SetSourcePath(s string) *BillFileUpdateOne {
	bfuo.mutation.SetSourcePath(s)
	return bfuo
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (bfuo *BillFileUpdateOne) SetNillableSourcePath(s *string) *BillFileUpdateOne {
	if s != nil {
		bfuo.SetSourcePath(*s)
	}
	return bfuo
}

// SetFilename sets the "filename" field.
func (bfuo *BillFileUpdateOne) SetFilename(s string) *BillFileUpdateOne {
	bfuo.mutation.SetFilename(s)
	return bfuo
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (bfuo *BillFileUpdateOne) SetNillableFilename(s *string) *BillFileUpdateOne {
	if s != nil {
		bfuo.SetFilename(*s)
	}
	return bfuo
}

// SetContentHash sets the "content_hash" field.
func (bfuo *BillFileUpdateOne) SetContentHash(b []byte) *BillFileUpdateOne {
	bfuo.mutation.SetContentHash(b)
	return bfuo
}

// SetFileSize sets the "file_size" field.
func (bfuo *BillFileUpdateOne) SetFileSize(i int64) *BillFileUpdateOne {
	bfuo.mutation.ResetFileSize()
	bfuo.mutation.SetFileSize(i)
	return bfuo
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (bfuo *BillFileUpdateOne) SetNillableFileSize(i *int64) *BillFileUpdateOne {
	if i != nil {
		bfuo.SetFileSize(*i)
	}
	return bfuo
}

// AddFileSize adds i to the "file_size" field.
func (bfuo *BillFileUpdateOne) AddFileSize(i int64) *BillFileUpdateOne {
	bfuo.mutation.AddFileSize(i)
	return bfuo
}

// SetProvider sets the "provider" field.
func (bfuo *BillFileUpdateOne) SetProvider(s string) *BillFileUpdateOne {
	bfuo.mutation.SetProvider(s)
	return bfuo
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (bfuo *BillFileUpdateOne) SetNillableProvider(s *string) *BillFileUpdateOne {
	if s != nil {
		bfuo.SetProvider(*s)
	}
	return bfuo
}

// ClearProvider clears the value of the "provider" field.
func (bfuo *BillFileUpdateOne) ClearProvider() *BillFileUpdateOne {
	bfuo.mutation.ClearProvider()
	return bfuo
}

// SetStatus sets the "status" field.
func (bfuo *BillFileUpdateOne) SetStatus(s string) *BillFileUpdateOne {
	bfuo.mutation.SetStatus(s)
	return bfuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (bfuo *BillFileUpdateOne) SetNillableStatus(s *string) *BillFileUpdateOne {
	if s != nil {
		bfuo.SetStatus(*s)
	}
	return bfuo
}

// SetRoutedPath sets the "routed_path" field.
func (bfuo *BillFileUpdateOne) SetRoutedPath(s string) *BillFileUpdateOne {
	bfuo.mutation.SetRoutedPath(s)
	return bfuo
}

// SetNillableRoutedPath sets the "routed_path" field if the given value is not nil.
func (bfuo *BillFileUpdateOne) SetNillableRoutedPath(s *string) *BillFileUpdateOne {
	if s != nil {
		bfuo.SetRoutedPath(*s)
	}
	return bfuo
}

// ClearRoutedPath clears the value of the "routed_path" field.
func (bfuo *BillFileUpdateOne) ClearRoutedPath() *BillFileUpdateOne {
	bfuo.mutation.ClearRoutedPath()
	return bfuo
}

// SetUpdatedAt sets the "updated_at" field.
func (bfuo *BillFileUpdateOne) SetUpdatedAt(t time.Time) *BillFileUpdateOne {
	bfuo.mutation.SetUpdatedAt(t)
	return bfuo
}

// AddJobIDs adds the "jobs" edge to the ReconcileJob entity by IDs.
func (bfuo *BillFileUpdateOne) AddJobIDs(ids ...uuid.UUID) *BillFileUpdateOne {
	bfuo.mutation.AddJobIDs(ids...)
	return bfuo
}

// AddJobs adds the "jobs" edges to the ReconcileJob entity.
func (bfuo *BillFileUpdateOne) AddJobs(r ...*ReconcileJob) *BillFileUpdateOne {
	ids := make([]uuid.UUID, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return bfuo.AddJobIDs(ids...)
}

// Mutation returns the BillFileMutation object of the builder.
func (bfuo *BillFileUpdateOne) Mutation() *BillFileMutation {
	return bfuo.mutation
}

// ClearJobs clears all "jobs" edges to the ReconcileJob entity.
func (bfuo *BillFileUpdateOne) ClearJobs() *BillFileUpdateOne {
	bfuo.mutation.ClearJobs()
	return bfuo
}

// RemoveJobIDs removes the "jobs" edge to ReconcileJob entities by IDs.
func (bfuo *BillFileUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *BillFileUpdateOne {
	bfuo.mutation.RemoveJobIDs(ids...)
	return bfuo
}

// RemoveJobs removes "jobs" edges to ReconcileJob entities.
func (bfuo *BillFileUpdateOne) RemoveJobs(r ...*ReconcileJob) *BillFileUpdateOne {
	ids := make([]uuid.UUID, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return bfuo.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the BillFileUpdate builder.
func (bfuo *BillFileUpdateOne) Where(ps ...predicate.BillFile) *BillFileUpdateOne {
	bfuo.mutation.Where(ps...)
	return bfuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (bfuo *BillFileUpdateOne) Select(field string, fields ...string) *BillFileUpdateOne {
	bfuo.fields = append([]string{field}, fields...)
	return bfuo
}

// Save executes the query and returns the updated BillFile entity.
func (bfuo *BillFileUpdateOne) Save(ctx context.Context) (*BillFile, error) {
	bfuo.defaults()
	return withHooks(ctx, bfuo.sqlSave, bfuo.mutation, bfuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (bfuo *BillFileUpdateOne) SaveX(ctx context.Context) *BillFile {
	node, err := bfuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (bfuo *BillFileUpdateOne) Exec(ctx context.Context) error {
	_, err := bfuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bfuo *BillFileUpdateOne) ExecX(ctx context.Context) {
	if err := bfuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (bfuo *BillFileUpdateOne) defaults() {
	if _, ok := bfuo.mutation.UpdatedAt(); !ok {
		v := billfile.UpdateDefaultUpdatedAt()
		bfuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (bfuo *BillFileUpdateOne) check() error {
	if v, ok := bfuo.mutation.SourcePath(); ok {
		if err := billfile.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "BillFile.source_path": %w`, err)}
		}
	}
	if v, ok := bfuo.mutation.Filename(); ok {
		if err := billfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "BillFile.filename": %w`, err)}
		}
	}
	if v, ok := bfuo.mutation.ContentHash(); ok {
		if err := billfile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "BillFile.content_hash": %w`, err)}
		}
	}
	if v, ok := bfuo.mutation.FileSize(); ok {
		if err := billfile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "BillFile.file_size": %w`, err)}
		}
	}
	if v, ok := bfuo.mutation.Status(); ok {
		if err := billfile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BillFile.status": %w`, err)}
		}
	}
	return nil
}

func (bfuo *BillFileUpdateOne) sqlSave(ctx context.Context) (_node *BillFile, err error) {
	if err := bfuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(billfile.Table, billfile.Columns, sqlgraph.NewFieldSpec(billfile.FieldID, field.TypeUUID))
	id, ok := bfuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BillFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := bfuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, billfile.FieldID)
		for _, f := range fields {
			if !billfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != billfile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := bfuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := bfuo.mutation.SourcePath(); ok {
		_spec.SetField(billfile.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := bfuo.mutation.Filename(); ok {
		_spec.SetField(billfile.FieldFilename, field.TypeString, value)
	}
	if value, ok := bfuo.mutation.ContentHash(); ok {
		_spec.SetField(billfile.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := bfuo.mutation.FileSize(); ok {
		_spec.SetField(billfile.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := bfuo.mutation.AddedFileSize(); ok {
		_spec.AddField(billfile.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := bfuo.mutation.Provider(); ok {
		_spec.SetField(billfile.FieldProvider, field.TypeString, value)
	}
	if bfuo.mutation.ProviderCleared() {
		_spec.ClearField(billfile.FieldProvider, field.TypeString)
	}
	if value, ok := bfuo.mutation.Status(); ok {
		_spec.SetField(billfile.FieldStatus, field.TypeString, value)
	}
	if value, ok := bfuo.mutation.RoutedPath(); ok {
		_spec.SetField(billfile.FieldRoutedPath, field.TypeString, value)
	}
	if bfuo.mutation.RoutedPathCleared() {
		_spec.ClearField(billfile.FieldRoutedPath, field.TypeString)
	}
	if value, ok := bfuo.mutation.UpdatedAt(); ok {
		_spec.SetField(billfile.FieldUpdatedAt, field.TypeTime, value)
	}
	if bfuo.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := bfuo.mutation.RemovedJobsIDs(); len(nodes) > 0 && !bfuo.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := bfuo.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BillFile{config: bfuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, bfuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{billfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	bfuo.mutation.done = true
	return _node, nil
}
