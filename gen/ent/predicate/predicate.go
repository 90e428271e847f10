// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BillFile is the predicate function for billfile builders.
type BillFile func(*sql.Selector)

// ReconcileJob is the predicate function for reconcilejob builders.
type ReconcileJob func(*sql.Selector)
