// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/utility-bills/gen/ent/billfile"
	"github.com/joseph-ayodele/utility-bills/gen/ent/predicate"
)

// BillFileDelete is the builder for deleting a BillFile entity.
type BillFileDelete struct {
	config
	hooks    []Hook
	mutation *BillFileMutation
}

// Where appends a list predicates to the BillFileDelete builder.
func (bfd *BillFileDelete) Where(ps ...predicate.BillFile) *BillFileDelete {
	bfd.mutation.Where(ps...)
	return bfd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (bfd *BillFileDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, bfd.sqlExec, bfd.mutation, bfd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (bfd *BillFileDelete) ExecX(ctx context.Context) int {
	n, err := bfd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (bfd *BillFileDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(billfile.Table, sqlgraph.NewFieldSpec(billfile.FieldID, field.TypeUUID))
	if ps := bfd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, bfd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	bfd.mutation.done = true
	return affected, err
}

// BillFileDeleteOne is the builder for deleting a single BillFile entity.
type BillFileDeleteOne struct {
	bfd *BillFileDelete
}

// Where appends a list predicates to the BillFileDelete builder.
func (bfdo *BillFileDeleteOne) Where(ps ...predicate.BillFile) *BillFileDeleteOne {
	bfdo.bfd.mutation.Where(ps...)
	return bfdo
}

// Exec executes the deletion query.
func (bfdo *BillFileDeleteOne) Exec(ctx context.Context) error {
	n, err := bfdo.bfd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{billfile.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (bfdo *BillFileDeleteOne) ExecX(ctx context.Context) {
	if err := bfdo.Exec(ctx); err != nil {
		panic(err)
	}
}
