// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/utility-bills/gen/ent/billfile"
	"github.com/joseph-ayodele/utility-bills/gen/ent/predicate"
	"github.com/joseph-ayodele/utility-bills/gen/ent/reconcilejob"
)

// ReconcileJobUpdate is the builder for updating ReconcileJob entities.
type ReconcileJobUpdate struct {
	config
	hooks    []Hook
	mutation *ReconcileJobMutation
}

// Where appends a list predicates to the ReconcileJobUpdate builder.
func (rju *ReconcileJobUpdate) Where(ps ...predicate.ReconcileJob) *ReconcileJobUpdate {
	rju.mutation.Where(ps...)
	return rju
}

// SetFileID sets the "file_id" field.
func (rju *ReconcileJobUpdate) SetFileID(u uuid.UUID) *ReconcileJobUpdate {
	rju.mutation.SetFileID(u)
	return rju
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (rju *ReconcileJobUpdate) SetNillableFileID(u *uuid.UUID) *ReconcileJobUpdate {
	if u != nil {
		rju.SetFileID(*u)
	}
	return rju
}

// SetStatus sets the "status" field.
func (rju *ReconcileJobUpdate) SetStatus(s string) *ReconcileJobUpdate {
	rju.mutation.SetStatus(s)
	return rju
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (rju *ReconcileJobUpdate) SetNillableStatus(s *string) *ReconcileJobUpdate {
	if s != nil {
		rju.SetStatus(*s)
	}
	return rju
}

// SetProvider sets the "provider" field.
func (rju *ReconcileJobUpdate) SetProvider(s string) *ReconcileJobUpdate {
	rju.mutation.SetProvider(s)
	return rju
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (rju *ReconcileJobUpdate) SetNillableProvider(s *string) *ReconcileJobUpdate {
	if s != nil {
		rju.SetProvider(*s)
	}
	return rju
}

// ClearProvider clears the value of the "provider" field.
func (rju *ReconcileJobUpdate) ClearProvider() *ReconcileJobUpdate {
	rju.mutation.ClearProvider()
	return rju
}

// SetModelName sets the "model_name" field.
func (rju *ReconcileJobUpdate) SetModelName(s string) *ReconcileJobUpdate {
	rju.mutation.SetModelName(s)
	return rju
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (rju *ReconcileJobUpdate) SetNillableModelName(s *string) *ReconcileJobUpdate {
	if s != nil {
		rju.SetModelName(*s)
	}
	return rju
}

// ClearModelName clears the value of the "model_name" field.
func (rju *ReconcileJobUpdate) ClearModelName() *ReconcileJobUpdate {
	rju.mutation.ClearModelName()
	return rju
}

// SetPageCount sets the "page_count" field.
func (rju *ReconcileJobUpdate) SetPageCount(i int) *ReconcileJobUpdate {
	rju.mutation.ResetPageCount()
	rju.mutation.SetPageCount(i)
	return rju
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (rju *ReconcileJobUpdate) SetNillablePageCount(i *int) *ReconcileJobUpdate {
	if i != nil {
		rju.SetPageCount(*i)
	}
	return rju
}

// AddPageCount adds i to the "page_count" field.
func (rju *ReconcileJobUpdate) AddPageCount(i int) *ReconcileJobUpdate {
	rju.mutation.AddPageCount(i)
	return rju
}

// SetExtractedJSON sets the "extracted_json" field.
func (rju *ReconcileJobUpdate) SetExtractedJSON(jm json.RawMessage) *ReconcileJobUpdate {
	rju.mutation.SetExtractedJSON(jm)
	return rju
}

// AppendExtractedJSON appends jm to the "extracted_json" field.
func (rju *ReconcileJobUpdate) AppendExtractedJSON(jm json.RawMessage) *ReconcileJobUpdate {
	rju.mutation.AppendExtractedJSON(jm)
	return rju
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (rju *ReconcileJobUpdate) ClearExtractedJSON() *ReconcileJobUpdate {
	rju.mutation.ClearExtractedJSON()
	return rju
}

// SetAnnotatedJSON sets the "annotated_json" field.
func (rju *ReconcileJobUpdate) SetAnnotatedJSON(jm json.RawMessage) *ReconcileJobUpdate {
	rju.mutation.SetAnnotatedJSON(jm)
	return rju
}

// AppendAnnotatedJSON appends jm to the "annotated_json" field.
func (rju *ReconcileJobUpdate) AppendAnnotatedJSON(jm json.RawMessage) *ReconcileJobUpdate {
	rju.mutation.AppendAnnotatedJSON(jm)
	return rju
}

// ClearAnnotatedJSON clears the value of the "annotated_json" field.
func (rju *ReconcileJobUpdate) ClearAnnotatedJSON() *ReconcileJobUpdate {
	rju.mutation.ClearAnnotatedJSON()
	return rju
}

// SetCorrections sets the "corrections" field.
func (rju *ReconcileJobUpdate) SetCorrections(jm json.RawMessage) *ReconcileJobUpdate {
	rju.mutation.SetCorrections(jm)
	return rju
}

// AppendCorrections appends jm to the "corrections" field.
func (rju *ReconcileJobUpdate) AppendCorrections(jm json.RawMessage) *ReconcileJobUpdate {
	rju.mutation.AppendCorrections(jm)
	return rju
}

// ClearCorrections clears the value of the "corrections" field.
func (rju *ReconcileJobUpdate) ClearCorrections() *ReconcileJobUpdate {
	rju.mutation.ClearCorrections()
	return rju
}

// SetPassed sets the "passed" field.
func (rju *ReconcileJobUpdate) SetPassed(b bool) *ReconcileJobUpdate {
	rju.mutation.SetPassed(b)
	return rju
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (rju *ReconcileJobUpdate) SetNillablePassed(b *bool) *ReconcileJobUpdate {
	if b != nil {
		rju.SetPassed(*b)
	}
	return rju
}

// ClearPassed clears the value of the "passed" field.
func (rju *ReconcileJobUpdate) ClearPassed() *ReconcileJobUpdate {
	rju.mutation.ClearPassed()
	return rju
}

// SetMatched sets the "matched" field.
func (rju *ReconcileJobUpdate) SetMatched(i int) *ReconcileJobUpdate {
	rju.mutation.ResetMatched()
	rju.mutation.SetMatched(i)
	return rju
}

// SetNillableMatched sets the "matched" field if the given value is not nil.
func (rju *ReconcileJobUpdate) SetNillableMatched(i *int) *ReconcileJobUpdate {
	if i != nil {
		rju.SetMatched(*i)
	}
	return rju
}

// AddMatched adds i to the "matched" field.
func (rju *ReconcileJobUpdate) AddMatched(i int) *ReconcileJobUpdate {
	rju.mutation.AddMatched(i)
	return rju
}

// SetMismatched sets the "mismatched" field.
func (rju *ReconcileJobUpdate) SetMismatched(i int) *ReconcileJobUpdate {
	rju.mutation.ResetMismatched()
	rju.mutation.SetMismatched(i)
	return rju
}

// SetNillableMismatched sets the "mismatched" field if the given value is not nil.
func (rju *ReconcileJobUpdate) SetNillableMismatched(i *int) *ReconcileJobUpdate {
	if i != nil {
		rju.SetMismatched(*i)
	}
	return rju
}

// AddMismatched adds i to the "mismatched" field.
func (rju *ReconcileJobUpdate) AddMismatched(i int) *ReconcileJobUpdate {
	rju.mutation.AddMismatched(i)
	return rju
}

// SetInapplicable sets the "inapplicable" field.
func (rju *ReconcileJobUpdate) SetInapplicable(i int) *ReconcileJobUpdate {
	rju.mutation.ResetInapplicable()
	rju.mutation.SetInapplicable(i)
	return rju
}

// SetNillableInapplicable sets the "inapplicable" field if the given value is not nil.
func (rju *ReconcileJobUpdate) SetNillableInapplicable(i *int) *ReconcileJobUpdate {
	if i != nil {
		rju.SetInapplicable(*i)
	}
	return rju
}

// AddInapplicable adds i to the "inapplicable" field.
func (rju *ReconcileJobUpdate) AddInapplicable(i int) *ReconcileJobUpdate {
	rju.mutation.AddInapplicable(i)
	return rju
}

// SetErrorMessage sets the "error_message" field.
func (rju *ReconcileJobUpdate) SetErrorMessage(s string) *ReconcileJobUpdate {
	rju.mutation.SetErrorMessage(s)
	return rju
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (rju *ReconcileJobUpdate) SetNillableErrorMessage(s *string) *ReconcileJobUpdate {
	if s != nil {
		rju.SetErrorMessage(*s)
	}
	return rju
}

// ClearErrorMessage clears the value of the "error_message" field.
func (rju *ReconcileJobUpdate) ClearErrorMessage() *ReconcileJobUpdate {
	rju.mutation.ClearErrorMessage()
	return rju
}

// SetStartedAt sets the "started_at" field.
func (rju *ReconcileJobUpdate) SetStartedAt(t time.Time) *ReconcileJobUpdate {
	rju.mutation.SetStartedAt(t)
	return rju
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (rju *ReconcileJobUpdate) SetNillableStartedAt(t *time.Time) *ReconcileJobUpdate {
	if t != nil {
		rju.SetStartedAt(*t)
	}
	return rju
}

// SetFinishedAt sets the "finished_at" field.
func (rju *ReconcileJobUpdate) SetFinishedAt(t time.Time) *ReconcileJobUpdate {
	rju.mutation.SetFinishedAt(t)
	return rju
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (rju *ReconcileJobUpdate) SetNillableFinishedAt(t *time.Time) *ReconcileJobUpdate {
	if t != nil {
		rju.SetFinishedAt(*t)
	}
	return rju
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (rju *ReconcileJobUpdate) ClearFinishedAt() *ReconcileJobUpdate {
	rju.mutation.ClearFinishedAt()
	return rju
}

// SetFile sets the "file" edge to the BillFile entity.
func (rju *ReconcileJobUpdate) SetFile(b *BillFile) *ReconcileJobUpdate {
	return rju.SetFileID(b.ID)
}

// Mutation returns the ReconcileJobMutation object of the builder.
func (rju *ReconcileJobUpdate) Mutation() *ReconcileJobMutation {
	return rju.mutation
}

// ClearFile clears the "file" edge to the BillFile entity.
func (rju *ReconcileJobUpdate) ClearFile() *ReconcileJobUpdate {
	rju.mutation.ClearFile()
	return rju
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (rju *ReconcileJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, rju.sqlSave, rju.mutation, rju.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (rju *ReconcileJobUpdate) SaveX(ctx context.Context) int {
	affected, err := rju.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (rju *ReconcileJobUpdate) Exec(ctx context.Context) error {
	_, err := rju.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rju *ReconcileJobUpdate) ExecX(ctx context.Context) {
	if err := rju.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rju *ReconcileJobUpdate) check() error {
	if v, ok := rju.mutation.Status(); ok {
		if err := reconcilejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReconcileJob.status": %w`, err)}
		}
	}
	if v, ok := rju.mutation.PageCount(); ok {
		if err := reconcilejob.PageCountValidator(v); err != nil {
			return &ValidationError{Name: "page_count", err: fmt.Errorf(`ent: validator failed for field "ReconcileJob.page_count": %w`, err)}
		}
	}
	if _, ok := rju.mutation.FileID(); rju.mutation.FileCleared() && !ok {
		return errors.New(`ent: clearing a required unique edge "ReconcileJob.file"`)
	}
	return nil
}

func (rju *ReconcileJobUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := rju.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(reconcilejob.Table, reconcilejob.Columns, sqlgraph.NewFieldSpec(reconcilejob.FieldID, field.TypeUUID))
	if ps := rju.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := rju.mutation.Status(); ok {
		_spec.SetField(reconcilejob.FieldStatus, field.TypeString, value)
	}
	if value, ok := rju.mutation.Provider(); ok {
		_spec.SetField(reconcilejob.FieldProvider, field.TypeString, value)
	}
	if rju.mutation.ProviderCleared() {
		_spec.ClearField(reconcilejob.FieldProvider, field.TypeString)
	}
	if value, ok := rju.mutation.ModelName(); ok {
		_spec.SetField(reconcilejob.FieldModelName, field.TypeString, value)
	}
	if rju.mutation.ModelNameCleared() {
		_spec.ClearField(reconcilejob.FieldModelName, field.TypeString)
	}
	if value, ok := rju.mutation.PageCount(); ok {
		_spec.SetField(reconcilejob.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := rju.mutation.AddedPageCount(); ok {
		_spec.AddField(reconcilejob.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := rju.mutation.ExtractedJSON(); ok {
		_spec.SetField(reconcilejob.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := rju.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reconcilejob.FieldExtractedJSON, value)
		})
	}
	if rju.mutation.ExtractedJSONCleared() {
		_spec.ClearField(reconcilejob.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := rju.mutation.AnnotatedJSON(); ok {
		_spec.SetField(reconcilejob.FieldAnnotatedJSON, field.TypeJSON, value)
	}
	if value, ok := rju.mutation.AppendedAnnotatedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reconcilejob.FieldAnnotatedJSON, value)
		})
	}
	if rju.mutation.AnnotatedJSONCleared() {
		_spec.ClearField(reconcilejob.FieldAnnotatedJSON, field.TypeJSON)
	}
	if value, ok := rju.mutation.Corrections(); ok {
		_spec.SetField(reconcilejob.FieldCorrections, field.TypeJSON, value)
	}
	if value, ok := rju.mutation.AppendedCorrections(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reconcilejob.FieldCorrections, value)
		})
	}
	if rju.mutation.CorrectionsCleared() {
		_spec.ClearField(reconcilejob.FieldCorrections, field.TypeJSON)
	}
	if value, ok := rju.mutation.Passed(); ok {
		_spec.SetField(reconcilejob.FieldPassed, field.TypeBool, value)
	}
	if rju.mutation.PassedCleared() {
		_spec.ClearField(reconcilejob.FieldPassed, field.TypeBool)
	}
	if value, ok := rju.mutation.Matched(); ok {
		_spec.SetField(reconcilejob.FieldMatched, field.TypeInt, value)
	}
	if value, ok := rju.mutation.AddedMatched(); ok {
		_spec.AddField(reconcilejob.FieldMatched, field.TypeInt, value)
	}
	if value, ok := rju.mutation.Mismatched(); ok {
		_spec.SetField(reconcilejob.FieldMismatched, field.TypeInt, value)
	}
	if value, ok := rju.mutation.AddedMismatched(); ok {
		_spec.AddField(reconcilejob.FieldMismatched, field.TypeInt, value)
	}
	if value, ok := rju.mutation.Inapplicable(); ok {
		_spec.SetField(reconcilejob.FieldInapplicable, field.TypeInt, value)
	}
	if value, ok := rju.mutation.AddedInapplicable(); ok {
		_spec.AddField(reconcilejob.FieldInapplicable, field.TypeInt, value)
	}
	if value, ok := rju.mutation.ErrorMessage(); ok {
		_spec.SetField(reconcilejob.FieldErrorMessage, field.TypeString, value)
	}
	if rju.mutation.ErrorMessageCleared() {
		_spec.ClearField(reconcilejob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := rju.mutation.StartedAt(); ok {
		_spec.SetField(reconcilejob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := rju.mutation.FinishedAt(); ok {
		_spec.SetField(reconcilejob.FieldFinishedAt, field.TypeTime, value)
	}
	if rju.mutation.FinishedAtCleared() {
		_spec.ClearField(reconcilejob.FieldFinishedAt, field.TypeTime)
	}
	if rju.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := rju.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, rju.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reconcilejob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	rju.mutation.done = true
	return n, nil
}

// ReconcileJobUpdateOne is the builder for updating a single ReconcileJob entity.
type ReconcileJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReconcileJobMutation
}

// SetFileID sets the "file_id" field.
func (rjuo *ReconcileJobUpdateOne) SetFileID(u uuid.UUID) *ReconcileJobUpdateOne {
	rjuo.mutation.SetFileID(u)
	return rjuo
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (rjuo *ReconcileJobUpdateOne) SetNillableFileID(u *uuid.UUID) *ReconcileJobUpdateOne {
	if u != nil {
		rjuo.SetFileID(*u)
	}
	return rjuo
}

// SetStatus sets the "status" field.
func (rjuo *ReconcileJobUpdateOne) SetStatus(s string) *ReconcileJobUpdateOne {
	rjuo.mutation.SetStatus(s)
	return rjuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (rjuo *ReconcileJobUpdateOne) SetNillableStatus(s *string) *ReconcileJobUpdateOne {
	if s != nil {
		rjuo.SetStatus(*s)
	}
	return rjuo
}

// SetProvider sets the "provider" field.
func (rjuo *ReconcileJobUpdateOne) SetProvider(s string) *ReconcileJobUpdateOne {
	rjuo.mutation.SetProvider(s)
	return rjuo
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (rjuo *ReconcileJobUpdateOne) SetNillableProvider(s *string) *ReconcileJobUpdateOne {
	if s != nil {
		rjuo.SetProvider(*s)
	}
	return rjuo
}

// ClearProvider clears the value of the "provider" field.
func (rjuo *ReconcileJobUpdateOne) ClearProvider() *ReconcileJobUpdateOne {
	rjuo.mutation.ClearProvider()
	return rjuo
}

// SetModelName sets the "model_name" field.
func (rjuo *ReconcileJobUpdateOne) SetModelName(s string) *ReconcileJobUpdateOne {
	rjuo.mutation.SetModelName(s)
	return rjuo
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (rjuo *ReconcileJobUpdateOne) SetNillableModelName(s *string) *ReconcileJobUpdateOne {
	if s != nil {
		rjuo.SetModelName(*s)
	}
	return rjuo
}

// ClearModelName clears the value of the "model_name" field.
func (rjuo *ReconcileJobUpdateOne) ClearModelName() *ReconcileJobUpdateOne {
	rjuo.mutation.ClearModelName()
	return rjuo
}

// SetPageCount sets the "page_count" field.
func (rjuo *ReconcileJobUpdateOne) SetPageCount(i int) *ReconcileJobUpdateOne {
	rjuo.mutation.ResetPageCount()
	rjuo.mutation.SetPageCount(i)
	return rjuo
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (rjuo *ReconcileJobUpdateOne) SetNillablePageCount(i *int) *ReconcileJobUpdateOne {
	if i != nil {
		rjuo.SetPageCount(*i)
	}
	return rjuo
}

// AddPageCount adds i to the "page_count" field.
func (rjuo *ReconcileJobUpdateOne) AddPageCount(i int) *ReconcileJobUpdateOne {
	rjuo.mutation.AddPageCount(i)
	return rjuo
}

// SetExtractedJSON sets the "extracted_json" field.
func (rjuo *ReconcileJobUpdateOne) SetExtractedJSON(jm json.RawMessage) *ReconcileJobUpdateOne {
	rjuo.mutation.SetExtractedJSON(jm)
	return rjuo
}

// AppendExtractedJSON appends jm to the "extracted_json" field.
func (rjuo *ReconcileJobUpdateOne) AppendExtractedJSON(jm json.RawMessage) *ReconcileJobUpdateOne {
	rjuo.mutation.AppendExtractedJSON(jm)
	return rjuo
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (rjuo *ReconcileJobUpdateOne) ClearExtractedJSON() *ReconcileJobUpdateOne {
	rjuo.mutation.ClearExtractedJSON()
	return rjuo
}

// SetAnnotatedJSON sets the "annotated_json" field.
func (rjuo *ReconcileJobUpdateOne) SetAnnotatedJSON(jm json.RawMessage) *ReconcileJobUpdateOne {
	rjuo.mutation.SetAnnotatedJSON(jm)
	return rjuo
}

// AppendAnnotatedJSON appends jm to the "annotated_json" field.
func (rjuo *ReconcileJobUpdateOne) AppendAnnotatedJSON(jm json.RawMessage) *ReconcileJobUpdateOne {
	rjuo.mutation.AppendAnnotatedJSON(jm)
	return rjuo
}

// ClearAnnotatedJSON clears the value of the "annotated_json" field.
func (rjuo *ReconcileJobUpdateOne) ClearAnnotatedJSON() *ReconcileJobUpdateOne {
	rjuo.mutation.ClearAnnotatedJSON()
	return rjuo
}

// SetCorrections sets the "corrections" field.
func (rjuo *ReconcileJobUpdateOne) SetCorrections(jm json.RawMessage) *ReconcileJobUpdateOne {
	rjuo.mutation.SetCorrections(jm)
	return rjuo
}

// AppendCorrections appends jm to the "corrections" field.
func (rjuo *ReconcileJobUpdateOne) AppendCorrections(jm json.RawMessage) *ReconcileJobUpdateOne {
	rjuo.mutation.AppendCorrections(jm)
	return rjuo
}

// ClearCorrections clears the value of the "corrections" field.
func (rjuo *ReconcileJobUpdateOne) ClearCorrections() *ReconcileJobUpdateOne {
	rjuo.mutation.ClearCorrections()
	return rjuo
}

// SetPassed sets the "passed" field.
func (rjuo *ReconcileJobUpdateOne) SetPassed(b bool) *ReconcileJobUpdateOne {
	rjuo.mutation.SetPassed(b)
	return rjuo
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (rjuo *ReconcileJobUpdateOne) SetNillablePassed(b *bool) *ReconcileJobUpdateOne {
	if b != nil {
		rjuo.SetPassed(*b)
	}
	return rjuo
}

// ClearPassed clears the value of the "passed" field.
func (rjuo *ReconcileJobUpdateOne) ClearPassed() *ReconcileJobUpdateOne {
	rjuo.mutation.ClearPassed()
	return rjuo
}

// SetMatched sets the "matched" field.
func (rjuo *ReconcileJobUpdateOne) SetMatched(i int) *ReconcileJobUpdateOne {
	rjuo.mutation.ResetMatched()
	rjuo.mutation.SetMatched(i)
	return rjuo
}

// SetNillableMatched sets the "matched" field if the given value is not nil.
func (rjuo *ReconcileJobUpdateOne) SetNillableMatched(i *int) *ReconcileJobUpdateOne {
	if i != nil {
		rjuo.SetMatched(*i)
	}
	return rjuo
}

// AddMatched adds i to the "matched" field.
func (rjuo *ReconcileJobUpdateOne) AddMatched(i int) *ReconcileJobUpdateOne {
	rjuo.mutation.AddMatched(i)
	return rjuo
}

// SetMismatched sets the "mismatched" field.
func (rjuo *ReconcileJobUpdateOne) SetMismatched(i int) *ReconcileJobUpdateOne {
	rjuo.mutation.ResetMismatched()
	rjuo.mutation.SetMismatched(i)
	return rjuo
}

// SetNillableMismatched sets the "mismatched" field if the given value is not nil.
func (rjuo *ReconcileJobUpdateOne) SetNillableMismatched(i *int) *ReconcileJobUpdateOne {
	if i != nil {
		rjuo.SetMismatched(*i)
	}
	return rjuo
}

// AddMismatched adds i to the "mismatched" field.
func (rjuo *ReconcileJobUpdateOne) AddMismatched(i int) *ReconcileJobUpdateOne {
	rjuo.mutation.AddMismatched(i)
	return rjuo
}

// SetInapplicable sets the "inapplicable" field.
func (rjuo *ReconcileJobUpdateOne) SetInapplicable(i int) *ReconcileJobUpdateOne {
	rjuo.mutation.ResetInapplicable()
	rjuo.mutation.SetInapplicable(i)
	return rjuo
}

// SetNillableInapplicable sets the "inapplicable" field if the given value is not nil.
func (rjuo *ReconcileJobUpdateOne) SetNillableInapplicable(i *int) *ReconcileJobUpdateOne {
	if i != nil {
		rjuo.SetInapplicable(*i)
	}
	return rjuo
}

// AddInapplicable adds i to the "inapplicable" field.
func (rjuo *ReconcileJobUpdateOne) AddInapplicable(i int) *ReconcileJobUpdateOne {
	rjuo.mutation.AddInapplicable(i)
	return rjuo
}

// SetErrorMessage sets the "error_message" field.
func (rjuo *ReconcileJobUpdateOne) SetErrorMessage(s string) *ReconcileJobUpdateOne {
	rjuo.mutation.SetErrorMessage(s)
	return rjuo
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (rjuo *ReconcileJobUpdateOne) SetNillableErrorMessage(s *string) *ReconcileJobUpdateOne {
	if s != nil {
		rjuo.SetErrorMessage(*s)
	}
	return rjuo
}

// ClearErrorMessage clears the value of the "error_message" field.
func (rjuo *ReconcileJobUpdateOne) ClearErrorMessage() *ReconcileJobUpdateOne {
	rjuo.mutation.ClearErrorMessage()
	return rjuo
}

// SetStartedAt sets the "started_at" field.
func (rjuo *ReconcileJobUpdateOne) SetStartedAt(t time.Time) *ReconcileJobUpdateOne {
	rjuo.mutation.SetStartedAt(t)
	return rjuo
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (rjuo *ReconcileJobUpdateOne) SetNillableStartedAt(t *time.Time) *ReconcileJobUpdateOne {
	if t != nil {
		rjuo.SetStartedAt(*t)
	}
	return rjuo
}

// SetFinishedAt sets the "finished_at" field.
func (rjuo *ReconcileJobUpdateOne) SetFinishedAt(t time.Time) *ReconcileJobUpdateOne {
	rjuo.mutation.SetFinishedAt(t)
	return rjuo
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (rjuo *ReconcileJobUpdateOne) SetNillableFinishedAt(t *time.Time) *ReconcileJobUpdateOne {
	if t != nil {
		rjuo.SetFinishedAt(*t)
	}
	return rjuo
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (rjuo *ReconcileJobUpdateOne) ClearFinishedAt() *ReconcileJobUpdateOne {
	rjuo.mutation.ClearFinishedAt()
	return rjuo
}

// SetFile sets the "file" edge to the BillFile entity.
func (rjuo *ReconcileJobUpdateOne) SetFile(b *BillFile) *ReconcileJobUpdateOne {
	return rjuo.SetFileID(b.ID)
}

// Mutation returns the ReconcileJobMutation object of the builder.
func (rjuo *ReconcileJobUpdateOne) Mutation() *ReconcileJobMutation {
	return rjuo.mutation
}

// ClearFile clears the "file" edge to the BillFile entity.
func (rjuo *ReconcileJobUpdateOne) ClearFile() *ReconcileJobUpdateOne {
	rjuo.mutation.ClearFile()
	return rjuo
}

// Where appends a list predicates to the ReconcileJobUpdate builder.
func (rjuo *ReconcileJobUpdateOne) Where(ps ...predicate.ReconcileJob) *ReconcileJobUpdateOne {
	rjuo.mutation.Where(ps...)
	return rjuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (rjuo *ReconcileJobUpdateOne) Select(field string, fields ...string) *ReconcileJobUpdateOne {
	rjuo.fields = append([]string{field}, fields...)
	return rjuo
}

// Save executes the query and returns the updated ReconcileJob entity.
func (rjuo *ReconcileJobUpdateOne) Save(ctx context.Context) (*ReconcileJob, error) {
	return withHooks(ctx, rjuo.sqlSave, rjuo.mutation, rjuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (rjuo *ReconcileJobUpdateOne) SaveX(ctx context.Context) *ReconcileJob {
	node, err := rjuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (rjuo *ReconcileJobUpdateOne) Exec(ctx context.Context) error {
	_, err := rjuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rjuo *ReconcileJobUpdateOne) ExecX(ctx context.Context) {
	if err := rjuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rjuo *ReconcileJobUpdateOne) check() error {
	if v, ok := rjuo.mutation.Status(); ok {
		if err := reconcilejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReconcileJob.status": %w`, err)}
		}
	}
	if v, ok := rjuo.mutation.PageCount(); ok {
		if err := reconcilejob.PageCountValidator(v); err != nil {
			return &ValidationError{Name: "page_count", err: fmt.Errorf(`ent: validator failed for field "ReconcileJob.page_count": %w`, err)}
		}
	}
	if _, ok := rjuo.mutation.FileID(); rjuo.mutation.FileCleared() && !ok {
		return errors.New(`ent: clearing a required unique edge "ReconcileJob.file"`)
	}
	return nil
}

func (rjuo *ReconcileJobUpdateOne) sqlSave(ctx context.Context) (_node *ReconcileJob, err error) {
	if err := rjuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reconcilejob.Table, reconcilejob.Columns, sqlgraph.NewFieldSpec(reconcilejob.FieldID, field.TypeUUID))
	id, ok := rjuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReconcileJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := rjuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reconcilejob.FieldID)
		for _, f := range fields {
			if !reconcilejob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reconcilejob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := rjuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := rjuo.mutation.Status(); ok {
		_spec.SetField(reconcilejob.FieldStatus, field.TypeString, value)
	}
	if value, ok := rjuo.mutation.Provider(); ok {
		_spec.SetField(reconcilejob.FieldProvider, field.TypeString, value)
	}
	if rjuo.mutation.ProviderCleared() {
		_spec.ClearField(reconcilejob.FieldProvider, field.TypeString)
	}
	if value, ok := rjuo.mutation.ModelName(); ok {
		_spec.SetField(reconcilejob.FieldModelName, field.TypeString, value)
	}
	if rjuo.mutation.ModelNameCleared() {
		_spec.ClearField(reconcilejob.FieldModelName, field.TypeString)
	}
	if value, ok := rjuo.mutation.PageCount(); ok {
		_spec.SetField(reconcilejob.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := rjuo.mutation.AddedPageCount(); ok {
		_spec.AddField(reconcilejob.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := rjuo.mutation.ExtractedJSON(); ok {
		_spec.SetField(reconcilejob.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := rjuo.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reconcilejob.FieldExtractedJSON, value)
		})
	}
	if rjuo.mutation.ExtractedJSONCleared() {
		_spec.ClearField(reconcilejob.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := rjuo.mutation.AnnotatedJSON(); ok {
		_spec.SetField(reconcilejob.FieldAnnotatedJSON, field.TypeJSON, value)
	}
	if value, ok := rjuo.mutation.AppendedAnnotatedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reconcilejob.FieldAnnotatedJSON, value)
		})
	}
	if rjuo.mutation.AnnotatedJSONCleared() {
		_spec.ClearField(reconcilejob.FieldAnnotatedJSON, field.TypeJSON)
	}
	if value, ok := rjuo.mutation.Corrections(); ok {
		_spec.SetField(reconcilejob.FieldCorrections, field.TypeJSON, value)
	}
	if value, ok := rjuo.mutation.AppendedCorrections(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reconcilejob.FieldCorrections, value)
		})
	}
	if rjuo.mutation.CorrectionsCleared() {
		_spec.ClearField(reconcilejob.FieldCorrections, field.TypeJSON)
	}
	if value, ok := rjuo.mutation.Passed(); ok {
		_spec.SetField(reconcilejob.FieldPassed, field.TypeBool, value)
	}
	if rjuo.mutation.PassedCleared() {
		_spec.ClearField(reconcilejob.FieldPassed, field.TypeBool)
	}
	if value, ok := rjuo.mutation.Matched(); ok {
		_spec.SetField(reconcilejob.FieldMatched, field.TypeInt, value)
	}
	if value, ok := rjuo.mutation.AddedMatched(); ok {
		_spec.AddField(reconcilejob.FieldMatched, field.TypeInt, value)
	}
	if value, ok := rjuo.mutation.Mismatched(); ok {
		_spec.SetField(reconcilejob.FieldMismatched, field.TypeInt, value)
	}
	if value, ok := rjuo.mutation.AddedMismatched(); ok {
		_spec.AddField(reconcilejob.FieldMismatched, field.TypeInt, value)
	}
	if value, ok := rjuo.mutation.Inapplicable(); ok {
		_spec.SetField(reconcilejob.FieldInapplicable, field.TypeInt, value)
	}
	if value, ok := rjuo.mutation.AddedInapplicable(); ok {
		_spec.AddField(reconcilejob.FieldInapplicable, field.TypeInt, value)
	}
	if value, ok := rjuo.mutation.ErrorMessage(); ok {
		_spec.SetField(reconcilejob.FieldErrorMessage, field.TypeString, value)
	}
	if rjuo.mutation.ErrorMessageCleared() {
		_spec.ClearField(reconcilejob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := rjuo.mutation.StartedAt(); ok {
		_spec.SetField(reconcilejob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := rjuo.mutation.FinishedAt(); ok {
		_spec.SetField(reconcilejob.FieldFinishedAt, field.TypeTime, value)
	}
	if rjuo.mutation.FinishedAtCleared() {
		_spec.ClearField(reconcilejob.FieldFinishedAt, field.TypeTime)
	}
	if rjuo.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := rjuo.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ReconcileJob{config: rjuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, rjuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reconcilejob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	rjuo.mutation.done = true
	return _node, nil
}
