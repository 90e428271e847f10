// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/utility-bills/gen/ent/predicate"
	"github.com/joseph-ayodele/utility-bills/gen/ent/reconcilejob"
)

// ReconcileJobDelete is the builder for deleting a ReconcileJob entity.
type ReconcileJobDelete struct {
	config
	hooks    []Hook
	mutation *ReconcileJobMutation
}

// Where appends a list predicates to the ReconcileJobDelete builder.
func (rjd *ReconcileJobDelete) Where(ps ...predicate.ReconcileJob) *ReconcileJobDelete {
	rjd.mutation.Where(ps...)
	return rjd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (rjd *ReconcileJobDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, rjd.sqlExec, rjd.mutation, rjd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (rjd *ReconcileJobDelete) ExecX(ctx context.Context) int {
	n, err := rjd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (rjd *ReconcileJobDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(reconcilejob.Table, sqlgraph.NewFieldSpec(reconcilejob.FieldID, field.TypeUUID))
	if ps := rjd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, rjd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	rjd.mutation.done = true
	return affected, err
}

// ReconcileJobDeleteOne is the builder for deleting a single ReconcileJob entity.
type ReconcileJobDeleteOne struct {
	rjd *ReconcileJobDelete
}

// Where appends a list predicates to the ReconcileJobDelete builder.
func (rjdo *ReconcileJobDeleteOne) Where(ps ...predicate.ReconcileJob) *ReconcileJobDeleteOne {
	rjdo.rjd.mutation.Where(ps...)
	return rjdo
}

// Exec executes the deletion query.
func (rjdo *ReconcileJobDeleteOne) Exec(ctx context.Context) error {
	n, err := rjdo.rjd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{reconcilejob.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (rjdo *ReconcileJobDeleteOne) ExecX(ctx context.Context) {
	if err := rjdo.Exec(ctx); err != nil {
		panic(err)
	}
}
