// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
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

// ReconcileJobCreate is the builder for creating a ReconcileJob entity.
type ReconcileJobCreate struct {
	config
	mutation *ReconcileJobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetFileID sets the "file_id" field.
func (rjc *ReconcileJobCreate) SetFileID(u uuid.UUID) *ReconcileJobCreate {
	rjc.mutation.SetFileID(u)
	return rjc
}

// SetStatus sets the "status" field.
func (rjc *ReconcileJobCreate) SetStatus(s string) *ReconcileJobCreate {
	rjc.mutation.SetStatus(s)
	return rjc
}

// SetProvider sets the "provider" field.
func (rjc *ReconcileJobCreate) SetProvider(s string) *ReconcileJobCreate {
	rjc.mutation.SetProvider(s)
	return rjc
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (rjc *ReconcileJobCreate) SetNillableProvider(s *string) *ReconcileJobCreate {
	if s != nil {
		rjc.SetProvider(*s)
	}
	return rjc
}

// SetModelName sets the "model_name" field.
func (rjc *ReconcileJobCreate) SetModelName(s string) *ReconcileJobCreate {
	rjc.mutation.SetModelName(s)
	return rjc
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (rjc *ReconcileJobCreate) SetNillableModelName(s *string) *ReconcileJobCreate {
	if s != nil {
		rjc.SetModelName(*s)
	}
	return rjc
}

// SetPageCount sets the "page_count" field.
func (rjc *ReconcileJobCreate) SetPageCount(i int) *ReconcileJobCreate {
	rjc.mutation.SetPageCount(i)
	return rjc
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (rjc *ReconcileJobCreate) SetNillablePageCount(i *int) *ReconcileJobCreate {
	if i != nil {
		rjc.SetPageCount(*i)
	}
	return rjc
}

// SetExtractedJSON sets the "extracted_json" field.
func (rjc *ReconcileJobCreate) SetExtractedJSON(jm json.RawMessage) *ReconcileJobCreate {
	rjc.mutation.SetExtractedJSON(jm)
	return rjc
}

// SetAnnotatedJSON sets the "annotated_json" field.
func (rjc *ReconcileJobCreate) SetAnnotatedJSON(jm json.RawMessage) *ReconcileJobCreate {
	rjc.mutation.SetAnnotatedJSON(jm)
	return rjc
}

// SetCorrections sets the "corrections" field.
func (rjc *ReconcileJobCreate) SetCorrections(jm json.RawMessage) *ReconcileJobCreate {
	rjc.mutation.SetCorrections(jm)
	return rjc
}

// SetPassed sets the "passed" field.
func (rjc *ReconcileJobCreate) SetPassed(b bool) *ReconcileJobCreate {
	rjc.mutation.SetPassed(b)
	return rjc
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (rjc *ReconcileJobCreate) SetNillablePassed(b *bool) *ReconcileJobCreate {
	if b != nil {
		rjc.SetPassed(*b)
	}
	return rjc
}

// SetMatched sets the "matched" field.
func (rjc *ReconcileJobCreate) SetMatched(i int) *ReconcileJobCreate {
	rjc.mutation.SetMatched(i)
	return rjc
}

// SetNillableMatched sets the "matched" field if the given value is not nil.
func (rjc *ReconcileJobCreate) SetNillableMatched(i *int) *ReconcileJobCreate {
	if i != nil {
		rjc.SetMatched(*i)
	}
	return rjc
}

// SetMismatched sets the "mismatched" field.
func (rjc *ReconcileJobCreate) SetMismatched(i int) *ReconcileJobCreate {
	rjc.mutation.SetMismatched(i)
	return rjc
}

// SetNillableMismatched sets the "mismatched" field if the given value is not nil.
func (rjc *ReconcileJobCreate) SetNillableMismatched(i *int) *ReconcileJobCreate {
	if i != nil {
		rjc.SetMismatched(*i)
	}
	return rjc
}

// SetInapplicable sets the "inapplicable" field.
func (rjc *ReconcileJobCreate) SetInapplicable(i int) *ReconcileJobCreate {
	rjc.mutation.SetInapplicable(i)
	return rjc
}

// SetNillableInapplicable sets the "inapplicable" field if the given value is not nil.
func (rjc *ReconcileJobCreate) SetNillableInapplicable(i *int) *ReconcileJobCreate {
	if i != nil {
		rjc.SetInapplicable(*i)
	}
	return rjc
}

// SetErrorMessage sets the "error_message" field.
func (rjc *ReconcileJobCreate) SetErrorMessage(s string) *ReconcileJobCreate {
	rjc.mutation.SetErrorMessage(s)
	return rjc
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (rjc *ReconcileJobCreate) SetNillableErrorMessage(s *string) *ReconcileJobCreate {
	if s != nil {
		rjc.SetErrorMessage(*s)
	}
	return rjc
}

// SetStartedAt sets the "started_at" field.
func (rjc *ReconcileJobCreate) SetStartedAt(t time.Time) *ReconcileJobCreate {
	rjc.mutation.SetStartedAt(t)
	return rjc
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (rjc *ReconcileJobCreate) SetNillableStartedAt(t *time.Time) *ReconcileJobCreate {
	if t != nil {
		rjc.SetStartedAt(*t)
	}
	return rjc
}

// SetFinishedAt sets the "finished_at" field.
func (rjc *ReconcileJobCreate) SetFinishedAt(t time.Time) *ReconcileJobCreate {
	rjc.mutation.SetFinishedAt(t)
	return rjc
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (rjc *ReconcileJobCreate) SetNillableFinishedAt(t *time.Time) *ReconcileJobCreate {
	if t != nil {
		rjc.SetFinishedAt(*t)
	}
	return rjc
}

// SetID sets the "id" field.
func (rjc *ReconcileJobCreate) SetID(u uuid.UUID) *ReconcileJobCreate {
	rjc.mutation.SetID(u)
	return rjc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (rjc *ReconcileJobCreate) SetNillableID(u *uuid.UUID) *ReconcileJobCreate {
	if u != nil {
		rjc.SetID(*u)
	}
	return rjc
}

// SetFile sets the "file" edge to the BillFile entity.
func (rjc *ReconcileJobCreate) SetFile(b *BillFile) *ReconcileJobCreate {
	return rjc.SetFileID(b.ID)
}

// Mutation returns the ReconcileJobMutation object of the builder.
func (rjc *ReconcileJobCreate) Mutation() *ReconcileJobMutation {
	return rjc.mutation
}

// Save creates the ReconcileJob in the database.
func (rjc *ReconcileJobCreate) Save(ctx context.Context) (*ReconcileJob, error) {
	rjc.defaults()
	return withHooks(ctx, rjc.sqlSave, rjc.mutation, rjc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (rjc *ReconcileJobCreate) SaveX(ctx context.Context) *ReconcileJob {
	v, err := rjc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rjc *ReconcileJobCreate) Exec(ctx context.Context) error {
	_, err := rjc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rjc *ReconcileJobCreate) ExecX(ctx context.Context) {
	if err := rjc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (rjc *ReconcileJobCreate) defaults() {
	if _, ok := rjc.mutation.PageCount(); !ok {
		v := reconcilejob.DefaultPageCount
		rjc.mutation.SetPageCount(v)
	}
	if _, ok := rjc.mutation.Matched(); !ok {
		v := reconcilejob.DefaultMatched
		rjc.mutation.SetMatched(v)
	}
	if _, ok := rjc.mutation.Mismatched(); !ok {
		v := reconcilejob.DefaultMismatched
		rjc.mutation.SetMismatched(v)
	}
	if _, ok := rjc.mutation.Inapplicable(); !ok {
		v := reconcilejob.DefaultInapplicable
		rjc.mutation.SetInapplicable(v)
	}
	if _, ok := rjc.mutation.StartedAt(); !ok {
		v := reconcilejob.DefaultStartedAt()
		rjc.mutation.SetStartedAt(v)
	}
	if _, ok := rjc.mutation.ID(); !ok {
		v := reconcilejob.DefaultID()
		rjc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rjc *ReconcileJobCreate) check() error {
	if _, ok := rjc.mutation.FileID(); !ok {
		return &ValidationError{Name: "file_id", err: errors.New(`ent: missing required field "ReconcileJob.file_id"`)}
	}
	if _, ok := rjc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ReconcileJob.status"`)}
	}
	if v, ok := rjc.mutation.Status(); ok {
		if err := reconcilejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReconcileJob.status": %w`, err)}
		}
	}
	if _, ok := rjc.mutation.PageCount(); !ok {
		return &ValidationError{Name: "page_count", err: errors.New(`ent: missing required field "ReconcileJob.page_count"`)}
	}
	if v, ok := rjc.mutation.PageCount(); ok {
		if err := reconcilejob.PageCountValidator(v); err != nil {
			return &ValidationError{Name: "page_count", err: fmt.Errorf(`ent: validator failed for field "ReconcileJob.page_count": %w`, err)}
		}
	}
	if _, ok := rjc.mutation.Matched(); !ok {
		return &ValidationError{Name: "matched", err: errors.New(`ent: missing required field "ReconcileJob.matched"`)}
	}
	if _, ok := rjc.mutation.Mismatched(); !ok {
		return &ValidationError{Name: "mismatched", err: errors.New(`ent: missing required field "ReconcileJob.mismatched"`)}
	}
	if _, ok := rjc.mutation.Inapplicable(); !ok {
		return &ValidationError{Name: "inapplicable", err: errors.New(`ent: missing required field "ReconcileJob.inapplicable"`)}
	}
	if _, ok := rjc.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ReconcileJob.started_at"`)}
	}
	if _, ok := rjc.mutation.FileID(); !ok {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required edge "ReconcileJob.file"`)}
	}
	return nil
}

func (rjc *ReconcileJobCreate) sqlSave(ctx context.Context) (*ReconcileJob, error) {
	if err := rjc.check(); err != nil {
		return nil, err
	}
	_node, _spec := rjc.createSpec()
	if err := sqlgraph.CreateNode(ctx, rjc.driver, _spec); err != nil {
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
	rjc.mutation.id = &_node.ID
	rjc.mutation.done = true
	return _node, nil
}

func (rjc *ReconcileJobCreate) createSpec() (*ReconcileJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ReconcileJob{config: rjc.config}
		_spec = sqlgraph.NewCreateSpec(reconcilejob.Table, sqlgraph.NewFieldSpec(reconcilejob.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = rjc.conflict
	if id, ok := rjc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := rjc.mutation.Status(); ok {
		_spec.SetField(reconcilejob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := rjc.mutation.Provider(); ok {
		_spec.SetField(reconcilejob.FieldProvider, field.TypeString, value)
		_node.Provider = &value
	}
	if value, ok := rjc.mutation.ModelName(); ok {
		_spec.SetField(reconcilejob.FieldModelName, field.TypeString, value)
		_node.ModelName = &value
	}
	if value, ok := rjc.mutation.PageCount(); ok {
		_spec.SetField(reconcilejob.FieldPageCount, field.TypeInt, value)
		_node.PageCount = value
	}
	if value, ok := rjc.mutation.ExtractedJSON(); ok {
		_spec.SetField(reconcilejob.FieldExtractedJSON, field.TypeJSON, value)
		_node.ExtractedJSON = value
	}
	if value, ok := rjc.mutation.AnnotatedJSON(); ok {
		_spec.SetField(reconcilejob.FieldAnnotatedJSON, field.TypeJSON, value)
		_node.AnnotatedJSON = value
	}
	if value, ok := rjc.mutation.Corrections(); ok {
		_spec.SetField(reconcilejob.FieldCorrections, field.TypeJSON, value)
		_node.Corrections = value
	}
	if value, ok := rjc.mutation.Passed(); ok {
		_spec.SetField(reconcilejob.FieldPassed, field.TypeBool, value)
		_node.Passed = &value
	}
	if value, ok := rjc.mutation.Matched(); ok {
		_spec.SetField(reconcilejob.FieldMatched, field.TypeInt, value)
		_node.Matched = value
	}
	if value, ok := rjc.mutation.Mismatched(); ok {
		_spec.SetField(reconcilejob.FieldMismatched, field.TypeInt, value)
		_node.Mismatched = value
	}
	if value, ok := rjc.mutation.Inapplicable(); ok {
		_spec.SetField(reconcilejob.FieldInapplicable, field.TypeInt, value)
		_node.Inapplicable = value
	}
	if value, ok := rjc.mutation.ErrorMessage(); ok {
		_spec.SetField(reconcilejob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := rjc.mutation.StartedAt(); ok {
		_spec.SetField(reconcilejob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := rjc.mutation.FinishedAt(); ok {
		_spec.SetField(reconcilejob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := rjc.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reconcilejob.FileTable,
			Columns: []string{reconcilejob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(billfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReconcileJob.Create().
//		SetFileID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReconcileJobUpsert) {
//			SetFileID(v+v).
//		}).
//		Exec(ctx)
func (rjc *ReconcileJobCreate) OnConflict(opts ...sql.ConflictOption) *ReconcileJobUpsertOne {
	rjc.conflict = opts
	return &ReconcileJobUpsertOne{
		create: rjc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReconcileJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (rjc *ReconcileJobCreate) OnConflictColumns(columns ...string) *ReconcileJobUpsertOne {
	rjc.conflict = append(rjc.conflict, sql.ConflictColumns(columns...))
	return &ReconcileJobUpsertOne{
		create: rjc,
	}
}

type (
	// ReconcileJobUpsertOne is the builder for "upsert"-ing
	//  one ReconcileJob node.
	ReconcileJobUpsertOne struct {
		create *ReconcileJobCreate
	}

	// ReconcileJobUpsert is the "OnConflict" setter.
	ReconcileJobUpsert struct {
		*sql.UpdateSet
	}
)

// SetFileID sets the "file_id" field.
func (u *ReconcileJobUpsert) SetFileID(v uuid.UUID) *ReconcileJobUpsert {
	u.Set(reconcilejob.FieldFileID, v)
	return u
}

// UpdateFileID sets the "file_id" field to the value that was provided on create.
func (u *ReconcileJobUpsert) UpdateFileID() *ReconcileJobUpsert {
	u.SetExcluded(reconcilejob.FieldFileID)
	return u
}

// SetStatus sets the "status" field.
func (u *ReconcileJobUpsert) SetStatus(v string) *ReconcileJobUpsert {
	u.Set(reconcilejob.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ReconcileJobUpsert) UpdateStatus() *ReconcileJobUpsert {
	u.SetExcluded(reconcilejob.FieldStatus)
	return u
}

// SetProvider sets the "provider" field.
func (u *ReconcileJobUpsert) SetProvider(v string) *ReconcileJobUpsert {
	u.Set(reconcilejob.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *ReconcileJobUpsert) UpdateProvider() *ReconcileJobUpsert {
	u.SetExcluded(reconcilejob.FieldProvider)
	return u
}

// ClearProvider clears the value of the "provider" field.
func (u *ReconcileJobUpsert) ClearProvider() *ReconcileJobUpsert {
	u.SetNull(reconcilejob.FieldProvider)
	return u
}

// SetModelName sets the "model_name" field.
func (u *ReconcileJobUpsert) SetModelName(v string) *ReconcileJobUpsert {
	u.Set(reconcilejob.FieldModelName, v)
	return u
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *ReconcileJobUpsert) UpdateModelName() *ReconcileJobUpsert {
	u.SetExcluded(reconcilejob.FieldModelName)
	return u
}

// ClearModelName clears the value of the "model_name" field.
func (u *ReconcileJobUpsert) ClearModelName() *ReconcileJobUpsert {
	u.SetNull(reconcilejob.FieldModelName)
	return u
}

// SetPageCount sets the "page_count" field.
func (u *ReconcileJobUpsert) SetPageCount(v int) *ReconcileJobUpsert {
	u.Set(reconcilejob.FieldPageCount, v)
	return u
}

// UpdatePageCount sets the "page_count" field to the value that was provided on create.
func (u *ReconcileJobUpsert) UpdatePageCount() *ReconcileJobUpsert {
	u.SetExcluded(reconcilejob.FieldPageCount)
	return u
}

// AddPageCount adds v to the "page_count" field.
func (u *ReconcileJobUpsert) AddPageCount(v int) *ReconcileJobUpsert {
	u.Add(reconcilejob.FieldPageCount, v)
	return u
}

// SetExtractedJSON sets the "extracted_json" field.
func (u *ReconcileJobUpsert) SetExtractedJSON(v json.RawMessage) *ReconcileJobUpsert {
	u.Set(reconcilejob.FieldExtractedJSON, v)
	return u
}

// UpdateExtractedJSON sets the "extracted_json" field to the value that was provided on create.
func (u *ReconcileJobUpsert) UpdateExtractedJSON() *ReconcileJobUpsert {
	u.SetExcluded(reconcilejob.FieldExtractedJSON)
	return u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (u *ReconcileJobUpsert) ClearExtractedJSON() *ReconcileJobUpsert {
	u.SetNull(reconcilejob.FieldExtractedJSON)
	return u
}

// SetAnnotatedJSON sets the "annotated_json" field.
func (u *ReconcileJobUpsert) SetAnnotatedJSON(v json.RawMessage) *ReconcileJobUpsert {
	u.Set(reconcilejob.FieldAnnotatedJSON, v)
	return u
}

// UpdateAnnotatedJSON sets the "annotated_json" field to the value that was provided on create.
func (u *ReconcileJobUpsert) UpdateAnnotatedJSON() *ReconcileJobUpsert {
	u.SetExcluded(reconcilejob.FieldAnnotatedJSON)
	return u
}

// ClearAnnotatedJSON clears the value of the "annotated_json" field.
func (u *ReconcileJobUpsert) ClearAnnotatedJSON() *ReconcileJobUpsert {
	u.SetNull(reconcilejob.FieldAnnotatedJSON)
	return u
}

// SetCorrections sets the "corrections" field.
func (u *ReconcileJobUpsert) SetCorrections(v json.RawMessage) *ReconcileJobUpsert {
	u.Set(reconcilejob.FieldCorrections, v)
	return u
}

// UpdateCorrections sets the "corrections" field to the value that was provided on create.
func (u *ReconcileJobUpsert) UpdateCorrections() *ReconcileJobUpsert {
	u.SetExcluded(reconcilejob.FieldCorrections)
	return u
}

// ClearCorrections clears the value of the "corrections" field.
func (u *ReconcileJobUpsert) ClearCorrections() *ReconcileJobUpsert {
	u.SetNull(reconcilejob.FieldCorrections)
	return u
}

// SetPassed sets the "passed" field.
func (u *ReconcileJobUpsert) SetPassed(v bool) *ReconcileJobUpsert {
	u.Set(reconcilejob.FieldPassed, v)
	return u
}

// UpdatePassed sets the "passed" field to the value that was provided on create.
func (u *ReconcileJobUpsert) UpdatePassed() *ReconcileJobUpsert {
	u.SetExcluded(reconcilejob.FieldPassed)
	return u
}

// ClearPassed clears the value of the "passed" field.
func (u *ReconcileJobUpsert) ClearPassed() *ReconcileJobUpsert {
	u.SetNull(reconcilejob.FieldPassed)
	return u
}

// SetMatched sets the "matched" field.
func (u *ReconcileJobUpsert) SetMatched(v int) *ReconcileJobUpsert {
	u.Set(reconcilejob.FieldMatched, v)
	return u
}

// UpdateMatched sets the "matched" field to the value that was provided on create.
func (u *ReconcileJobUpsert) UpdateMatched() *ReconcileJobUpsert {
	u.SetExcluded(reconcilejob.FieldMatched)
	return u
}

// AddMatched adds v to the "matched" field.
func (u *ReconcileJobUpsert) AddMatched(v int) *ReconcileJobUpsert {
	u.Add(reconcilejob.FieldMatched, v)
	return u
}

// SetMismatched sets the "mismatched" field.
func (u *ReconcileJobUpsert) SetMismatched(v int) *ReconcileJobUpsert {
	u.Set(reconcilejob.FieldMismatched, v)
	return u
}

// UpdateMismatched sets the "mismatched" field to the value that was provided on create.
func (u *ReconcileJobUpsert) UpdateMismatched() *ReconcileJobUpsert {
	u.SetExcluded(reconcilejob.FieldMismatched)
	return u
}

// AddMismatched adds v to the "mismatched" field.
func (u *ReconcileJobUpsert) AddMismatched(v int) *ReconcileJobUpsert {
	u.Add(reconcilejob.FieldMismatched, v)
	return u
}

// SetInapplicable sets the "inapplicable" field.
func (u *ReconcileJobUpsert) SetInapplicable(v int) *ReconcileJobUpsert {
	u.Set(reconcilejob.FieldInapplicable, v)
	return u
}

// UpdateInapplicable sets the "inapplicable" field to the value that was provided on create.
func (u *ReconcileJobUpsert) UpdateInapplicable() *ReconcileJobUpsert {
	u.SetExcluded(reconcilejob.FieldInapplicable)
	return u
}

// AddInapplicable adds v to the "inapplicable" field.
func (u *ReconcileJobUpsert) AddInapplicable(v int) *ReconcileJobUpsert {
	u.Add(reconcilejob.FieldInapplicable, v)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *ReconcileJobUpsert) SetErrorMessage(v string) *ReconcileJobUpsert {
	u.Set(reconcilejob.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ReconcileJobUpsert) UpdateErrorMessage() *ReconcileJobUpsert {
	u.SetExcluded(reconcilejob.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ReconcileJobUpsert) ClearErrorMessage() *ReconcileJobUpsert {
	u.SetNull(reconcilejob.FieldErrorMessage)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *ReconcileJobUpsert) SetStartedAt(v time.Time) *ReconcileJobUpsert {
	u.Set(reconcilejob.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ReconcileJobUpsert) UpdateStartedAt() *ReconcileJobUpsert {
	u.SetExcluded(reconcilejob.FieldStartedAt)
	return u
}

// SetFinishedAt sets the "finished_at" field.
func (u *ReconcileJobUpsert) SetFinishedAt(v time.Time) *ReconcileJobUpsert {
	u.Set(reconcilejob.FieldFinishedAt, v)
	return u
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *ReconcileJobUpsert) UpdateFinishedAt() *ReconcileJobUpsert {
	u.SetExcluded(reconcilejob.FieldFinishedAt)
	return u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *ReconcileJobUpsert) ClearFinishedAt() *ReconcileJobUpsert {
	u.SetNull(reconcilejob.FieldFinishedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ReconcileJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(reconcilejob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReconcileJobUpsertOne) UpdateNewValues() *ReconcileJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(reconcilejob.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReconcileJob.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReconcileJobUpsertOne) Ignore() *ReconcileJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReconcileJobUpsertOne) DoNothing() *ReconcileJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReconcileJobCreate.OnConflict
// documentation for more info.
func (u *ReconcileJobUpsertOne) Update(set func(*ReconcileJobUpsert)) *ReconcileJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReconcileJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetFileID sets the "file_id" field.
func (u *ReconcileJobUpsertOne) SetFileID(v uuid.UUID) *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetFileID(v)
	})
}

// UpdateFileID sets the "file_id" field to the value that was provided on create.
func (u *ReconcileJobUpsertOne) UpdateFileID() *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdateFileID()
	})
}

// SetStatus sets the "status" field.
func (u *ReconcileJobUpsertOne) SetStatus(v string) *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ReconcileJobUpsertOne) UpdateStatus() *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdateStatus()
	})
}

// SetProvider sets the "provider" field.
func (u *ReconcileJobUpsertOne) SetProvider(v string) *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *ReconcileJobUpsertOne) UpdateProvider() *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdateProvider()
	})
}

// ClearProvider clears the value of the "provider" field.
func (u *ReconcileJobUpsertOne) ClearProvider() *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.ClearProvider()
	})
}

// SetModelName sets the "model_name" field.
func (u *ReconcileJobUpsertOne) SetModelName(v string) *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetModelName(v)
	})
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *ReconcileJobUpsertOne) UpdateModelName() *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdateModelName()
	})
}

// ClearModelName clears the value of the "model_name" field.
func (u *ReconcileJobUpsertOne) ClearModelName() *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.ClearModelName()
	})
}

// SetPageCount sets the "page_count" field.
func (u *ReconcileJobUpsertOne) SetPageCount(v int) *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetPageCount(v)
	})
}

// AddPageCount adds v to the "page_count" field.
func (u *ReconcileJobUpsertOne) AddPageCount(v int) *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.AddPageCount(v)
	})
}

// UpdatePageCount sets the "page_count" field to the value that was provided on create.
func (u *ReconcileJobUpsertOne) UpdatePageCount() *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdatePageCount()
	})
}

// SetExtractedJSON sets the "extracted_json" field.
func (u *ReconcileJobUpsertOne) SetExtractedJSON(v json.RawMessage) *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetExtractedJSON(v)
	})
}

// UpdateExtractedJSON sets the "extracted_json" field to the value that was provided on create.
func (u *ReconcileJobUpsertOne) UpdateExtractedJSON() *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdateExtractedJSON()
	})
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (u *ReconcileJobUpsertOne) ClearExtractedJSON() *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.ClearExtractedJSON()
	})
}

// SetAnnotatedJSON sets the "annotated_json" field.
func (u *ReconcileJobUpsertOne) SetAnnotatedJSON(v json.RawMessage) *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetAnnotatedJSON(v)
	})
}

// UpdateAnnotatedJSON sets the "annotated_json" field to the value that was provided on create.
func (u *ReconcileJobUpsertOne) UpdateAnnotatedJSON() *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdateAnnotatedJSON()
	})
}

// ClearAnnotatedJSON clears the value of the "annotated_json" field.
func (u *ReconcileJobUpsertOne) ClearAnnotatedJSON() *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.ClearAnnotatedJSON()
	})
}

// SetCorrections sets the "corrections" field.
func (u *ReconcileJobUpsertOne) SetCorrections(v json.RawMessage) *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetCorrections(v)
	})
}

// UpdateCorrections sets the "corrections" field to the value that was provided on create.
func (u *ReconcileJobUpsertOne) UpdateCorrections() *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdateCorrections()
	})
}

// ClearCorrections clears the value of the "corrections" field.
func (u *ReconcileJobUpsertOne) ClearCorrections() *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.ClearCorrections()
	})
}

// SetPassed sets the "passed" field.
func (u *ReconcileJobUpsertOne) SetPassed(v bool) *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetPassed(v)
	})
}

// UpdatePassed sets the "passed" field to the value that was provided on create.
func (u *ReconcileJobUpsertOne) UpdatePassed() *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdatePassed()
	})
}

// ClearPassed clears the value of the "passed" field.
func (u *ReconcileJobUpsertOne) ClearPassed() *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.ClearPassed()
	})
}

// SetMatched sets the "matched" field.
func (u *ReconcileJobUpsertOne) SetMatched(v int) *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetMatched(v)
	})
}

// AddMatched adds v to the "matched" field.
func (u *ReconcileJobUpsertOne) AddMatched(v int) *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.AddMatched(v)
	})
}

// UpdateMatched sets the "matched" field to the value that was provided on create.
func (u *ReconcileJobUpsertOne) UpdateMatched() *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdateMatched()
	})
}

// SetMismatched sets the "mismatched" field.
func (u *ReconcileJobUpsertOne) SetMismatched(v int) *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetMismatched(v)
	})
}

// AddMismatched adds v to the "mismatched" field.
func (u *ReconcileJobUpsertOne) AddMismatched(v int) *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.AddMismatched(v)
	})
}

// UpdateMismatched sets the "mismatched" field to the value that was provided on create.
func (u *ReconcileJobUpsertOne) UpdateMismatched() *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdateMismatched()
	})
}

// SetInapplicable sets the "inapplicable" field.
func (u *ReconcileJobUpsertOne) SetInapplicable(v int) *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetInapplicable(v)
	})
}

// AddInapplicable adds v to the "inapplicable" field.
func (u *ReconcileJobUpsertOne) AddInapplicable(v int) *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.AddInapplicable(v)
	})
}

// UpdateInapplicable sets the "inapplicable" field to the value that was provided on create.
func (u *ReconcileJobUpsertOne) UpdateInapplicable() *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdateInapplicable()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ReconcileJobUpsertOne) SetErrorMessage(v string) *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ReconcileJobUpsertOne) UpdateErrorMessage() *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ReconcileJobUpsertOne) ClearErrorMessage() *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *ReconcileJobUpsertOne) SetStartedAt(v time.Time) *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ReconcileJobUpsertOne) UpdateStartedAt() *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdateStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *ReconcileJobUpsertOne) SetFinishedAt(v time.Time) *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *ReconcileJobUpsertOne) UpdateFinishedAt() *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *ReconcileJobUpsertOne) ClearFinishedAt() *ReconcileJobUpsertOne {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.ClearFinishedAt()
	})
}

// Exec executes the query.
func (u *ReconcileJobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReconcileJobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReconcileJobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReconcileJobUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ReconcileJobUpsertOne.ID is not supported by MySQL driver. Use ReconcileJobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReconcileJobUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReconcileJobCreateBulk is the builder for creating many ReconcileJob entities in bulk.
type ReconcileJobCreateBulk struct {
	config
	err      error
	builders []*ReconcileJobCreate
	conflict []sql.ConflictOption
}

// Save creates the ReconcileJob entities in the database.
func (rjcb *ReconcileJobCreateBulk) Save(ctx context.Context) ([]*ReconcileJob, error) {
	if rjcb.err != nil {
		return nil, rjcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(rjcb.builders))
	nodes := make([]*ReconcileJob, len(rjcb.builders))
	mutators := make([]Mutator, len(rjcb.builders))
	for i := range rjcb.builders {
		func(i int, root context.Context) {
			builder := rjcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReconcileJobMutation)
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
					_, err = mutators[i+1].Mutate(root, rjcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = rjcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, rjcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, rjcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (rjcb *ReconcileJobCreateBulk) SaveX(ctx context.Context) []*ReconcileJob {
	v, err := rjcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rjcb *ReconcileJobCreateBulk) Exec(ctx context.Context) error {
	_, err := rjcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rjcb *ReconcileJobCreateBulk) ExecX(ctx context.Context) {
	if err := rjcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReconcileJob.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReconcileJobUpsert) {
//			SetFileID(v+v).
//		}).
//		Exec(ctx)
func (rjcb *ReconcileJobCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReconcileJobUpsertBulk {
	rjcb.conflict = opts
	return &ReconcileJobUpsertBulk{
		create: rjcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReconcileJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (rjcb *ReconcileJobCreateBulk) OnConflictColumns(columns ...string) *ReconcileJobUpsertBulk {
	rjcb.conflict = append(rjcb.conflict, sql.ConflictColumns(columns...))
	return &ReconcileJobUpsertBulk{
		create: rjcb,
	}
}

// ReconcileJobUpsertBulk is the builder for "upsert"-ing
// a bulk of ReconcileJob nodes.
type ReconcileJobUpsertBulk struct {
	create *ReconcileJobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ReconcileJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(reconcilejob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReconcileJobUpsertBulk) UpdateNewValues() *ReconcileJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(reconcilejob.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReconcileJob.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReconcileJobUpsertBulk) Ignore() *ReconcileJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReconcileJobUpsertBulk) DoNothing() *ReconcileJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReconcileJobCreateBulk.OnConflict
// documentation for more info.
func (u *ReconcileJobUpsertBulk) Update(set func(*ReconcileJobUpsert)) *ReconcileJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReconcileJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetFileID sets the "file_id" field.
func (u *ReconcileJobUpsertBulk) SetFileID(v uuid.UUID) *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetFileID(v)
	})
}

// UpdateFileID sets the "file_id" field to the value that was provided on create.
func (u *ReconcileJobUpsertBulk) UpdateFileID() *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdateFileID()
	})
}

// SetStatus sets the "status" field.
func (u *ReconcileJobUpsertBulk) SetStatus(v string) *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ReconcileJobUpsertBulk) UpdateStatus() *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdateStatus()
	})
}

// SetProvider sets the "provider" field.
func (u *ReconcileJobUpsertBulk) SetProvider(v string) *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *ReconcileJobUpsertBulk) UpdateProvider() *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdateProvider()
	})
}

// ClearProvider clears the value of the "provider" field.
func (u *ReconcileJobUpsertBulk) ClearProvider() *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.ClearProvider()
	})
}

// SetModelName sets the "model_name" field.
func (u *ReconcileJobUpsertBulk) SetModelName(v string) *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetModelName(v)
	})
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *ReconcileJobUpsertBulk) UpdateModelName() *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdateModelName()
	})
}

// ClearModelName clears the value of the "model_name" field.
func (u *ReconcileJobUpsertBulk) ClearModelName() *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.ClearModelName()
	})
}

// SetPageCount sets the "page_count" field.
func (u *ReconcileJobUpsertBulk) SetPageCount(v int) *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetPageCount(v)
	})
}

// AddPageCount adds v to the "page_count" field.
func (u *ReconcileJobUpsertBulk) AddPageCount(v int) *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.AddPageCount(v)
	})
}

// UpdatePageCount sets the "page_count" field to the value that was provided on create.
func (u *ReconcileJobUpsertBulk) UpdatePageCount() *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdatePageCount()
	})
}

// SetExtractedJSON sets the "extracted_json" field.
func (u *ReconcileJobUpsertBulk) SetExtractedJSON(v json.RawMessage) *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetExtractedJSON(v)
	})
}

// UpdateExtractedJSON sets the "extracted_json" field to the value that was provided on create.
func (u *ReconcileJobUpsertBulk) UpdateExtractedJSON() *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdateExtractedJSON()
	})
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (u *ReconcileJobUpsertBulk) ClearExtractedJSON() *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.ClearExtractedJSON()
	})
}

// SetAnnotatedJSON sets the "annotated_json" field.
func (u *ReconcileJobUpsertBulk) SetAnnotatedJSON(v json.RawMessage) *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetAnnotatedJSON(v)
	})
}

// UpdateAnnotatedJSON sets the "annotated_json" field to the value that was provided on create.
func (u *ReconcileJobUpsertBulk) UpdateAnnotatedJSON() *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdateAnnotatedJSON()
	})
}

// ClearAnnotatedJSON clears the value of the "annotated_json" field.
func (u *ReconcileJobUpsertBulk) ClearAnnotatedJSON() *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.ClearAnnotatedJSON()
	})
}

// SetCorrections sets the "corrections" field.
func (u *ReconcileJobUpsertBulk) SetCorrections(v json.RawMessage) *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetCorrections(v)
	})
}

// UpdateCorrections sets the "corrections" field to the value that was provided on create.
func (u *ReconcileJobUpsertBulk) UpdateCorrections() *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdateCorrections()
	})
}

// ClearCorrections clears the value of the "corrections" field.
func (u *ReconcileJobUpsertBulk) ClearCorrections() *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.ClearCorrections()
	})
}

// SetPassed sets the "passed" field.
func (u *ReconcileJobUpsertBulk) SetPassed(v bool) *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetPassed(v)
	})
}

// UpdatePassed sets the "passed" field to the value that was provided on create.
func (u *ReconcileJobUpsertBulk) UpdatePassed() *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdatePassed()
	})
}

// ClearPassed clears the value of the "passed" field.
func (u *ReconcileJobUpsertBulk) ClearPassed() *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.ClearPassed()
	})
}

// SetMatched sets the "matched" field.
func (u *ReconcileJobUpsertBulk) SetMatched(v int) *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetMatched(v)
	})
}

// AddMatched adds v to the "matched" field.
func (u *ReconcileJobUpsertBulk) AddMatched(v int) *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.AddMatched(v)
	})
}

// UpdateMatched sets the "matched" field to the value that was provided on create.
func (u *ReconcileJobUpsertBulk) UpdateMatched() *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdateMatched()
	})
}

// SetMismatched sets the "mismatched" field.
func (u *ReconcileJobUpsertBulk) SetMismatched(v int) *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetMismatched(v)
	})
}

// AddMismatched adds v to the "mismatched" field.
func (u *ReconcileJobUpsertBulk) AddMismatched(v int) *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.AddMismatched(v)
	})
}

// UpdateMismatched sets the "mismatched" field to the value that was provided on create.
func (u *ReconcileJobUpsertBulk) UpdateMismatched() *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdateMismatched()
	})
}

// SetInapplicable sets the "inapplicable" field.
func (u *ReconcileJobUpsertBulk) SetInapplicable(v int) *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetInapplicable(v)
	})
}

// AddInapplicable adds v to the "inapplicable" field.
func (u *ReconcileJobUpsertBulk) AddInapplicable(v int) *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.AddInapplicable(v)
	})
}

// UpdateInapplicable sets the "inapplicable" field to the value that was provided on create.
func (u *ReconcileJobUpsertBulk) UpdateInapplicable() *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdateInapplicable()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ReconcileJobUpsertBulk) SetErrorMessage(v string) *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ReconcileJobUpsertBulk) UpdateErrorMessage() *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ReconcileJobUpsertBulk) ClearErrorMessage() *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *ReconcileJobUpsertBulk) SetStartedAt(v time.Time) *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ReconcileJobUpsertBulk) UpdateStartedAt() *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdateStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *ReconcileJobUpsertBulk) SetFinishedAt(v time.Time) *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *ReconcileJobUpsertBulk) UpdateFinishedAt() *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *ReconcileJobUpsertBulk) ClearFinishedAt() *ReconcileJobUpsertBulk {
	return u.Update(func(s *ReconcileJobUpsert) {
		s.ClearFinishedAt()
	})
}

// Exec executes the query.
func (u *ReconcileJobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReconcileJobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReconcileJobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReconcileJobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
