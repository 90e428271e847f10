// Code generated by ent, DO NOT EDIT.

package reconcilejob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the reconcilejob type in the database.
	Label = "reconcile_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFileID holds the string denoting the file_id field in the database.
	FieldFileID = "file_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldModelName holds the string denoting the model_name field in the database.
	FieldModelName = "model_name"
	// FieldPageCount holds the string denoting the page_count field in the database.
	FieldPageCount = "page_count"
	// FieldExtractedJSON holds the string denoting the extracted_json field in the database.
	FieldExtractedJSON = "extracted_json"
	// FieldAnnotatedJSON holds the string denoting the annotated_json field in the database.
	FieldAnnotatedJSON = "annotated_json"
	// FieldCorrections holds the string denoting the corrections field in the database.
	FieldCorrections = "corrections"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldMatched holds the string denoting the matched field in the database.
	FieldMatched = "matched"
	// FieldMismatched holds the string denoting the mismatched field in the database.
	FieldMismatched = "mismatched"
	// FieldInapplicable holds the string denoting the inapplicable field in the database.
	FieldInapplicable = "inapplicable"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// EdgeFile holds the string denoting the file edge name in mutations.
	EdgeFile = "file"
	// Table holds the table name of the reconcilejob in the database.
	Table = "reconcile_jobs"
	// FileTable is the table that holds the file relation/edge.
	FileTable = "reconcile_jobs"
	// FileInverseTable is the table name for the BillFile entity.
	// It exists in this package in order to avoid circular dependency with the "billfile" package.
	FileInverseTable = "bill_files"
	// FileColumn is the table column denoting the file relation/edge.
	FileColumn = "file_id"
)

// Columns holds all SQL columns for reconcilejob fields.
var Columns = []string{
	FieldID,
	FieldFileID,
	FieldStatus,
	FieldProvider,
	FieldModelName,
	FieldPageCount,
	FieldExtractedJSON,
	FieldAnnotatedJSON,
	FieldCorrections,
	FieldPassed,
	FieldMatched,
	FieldMismatched,
	FieldInapplicable,
	FieldErrorMessage,
	FieldStartedAt,
	FieldFinishedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultPageCount holds the default value on creation for the "page_count" field.
	DefaultPageCount int
	// PageCountValidator is a validator for the "page_count" field. It is called by the builders before save.
	PageCountValidator func(int) error
	// DefaultMatched holds the default value on creation for the "matched" field.
	DefaultMatched int
	// DefaultMismatched holds the default value on creation for the "mismatched" field.
	DefaultMismatched int
	// DefaultInapplicable holds the default value on creation for the "inapplicable" field.
	DefaultInapplicable int
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ReconcileJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFileID orders the results by the file_id field.
func ByFileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByModelName orders the results by the model_name field.
func ByModelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelName, opts...).ToFunc()
}

// ByPageCount orders the results by the page_count field.
func ByPageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageCount, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByMatched orders the results by the matched field.
func ByMatched(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatched, opts...).ToFunc()
}

// ByMismatched orders the results by the mismatched field.
func ByMismatched(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMismatched, opts...).ToFunc()
}

// ByInapplicable orders the results by the inapplicable field.
func ByInapplicable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInapplicable, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByFileField orders the results by file field.
func ByFileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFileStep(), sql.OrderByField(field, opts...))
	}
}
func newFileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
	)
}
