// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/utility-bills/gen/ent/billfile"
)

// BillFile is the model entity for the BillFile schema.
type BillFile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SourcePath holds the value of the "source_path" field.
	SourcePath string `json:"source_path,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int64 `json:"file_size,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider *string `json:"provider,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// RoutedPath holds the value of the "routed_path" field.
	RoutedPath *string `json:"routed_path,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BillFileQuery when eager-loading is set.
	Edges        BillFileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BillFileEdges holds the relations/edges for other nodes in the graph.
type BillFileEdges struct {
	// Jobs holds the value of the jobs edge.
	Jobs []*ReconcileJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e BillFileEdges) JobsOrErr() ([]*ReconcileJob, error) {
	if e.loadedTypes[0] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BillFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case billfile.FieldContentHash:
			values[i] = new([]byte)
		case billfile.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case billfile.FieldSourcePath, billfile.FieldFilename, billfile.FieldProvider, billfile.FieldStatus, billfile.FieldRoutedPath:
			values[i] = new(sql.NullString)
		case billfile.FieldCreatedAt, billfile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case billfile.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BillFile fields.
func (bf *BillFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case billfile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				bf.ID = *value
			}
		case billfile.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				bf.SourcePath = value.String
			}
		case billfile.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				bf.Filename = value.String
			}
		case billfile.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				bf.ContentHash = *value
			}
		case billfile.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				bf.FileSize = value.Int64
			}
		case billfile.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				bf.Provider = new(string)
				*bf.Provider = value.String
			}
		case billfile.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				bf.Status = value.String
			}
		case billfile.FieldRoutedPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field routed_path", values[i])
			} else if value.Valid {
				bf.RoutedPath = new(string)
				*bf.RoutedPath = value.String
			}
		case billfile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				bf.CreatedAt = value.Time
			}
		case billfile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				bf.UpdatedAt = value.Time
			}
		default:
			bf.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BillFile.
// This includes values selected through modifiers, order, etc.
func (bf *BillFile) Value(name string) (ent.Value, error) {
	return bf.selectValues.Get(name)
}

// QueryJobs queries the "jobs" edge of the BillFile entity.
func (bf *BillFile) QueryJobs() *ReconcileJobQuery {
	return NewBillFileClient(bf.config).QueryJobs(bf)
}

// Update returns a builder for updating this BillFile.
// Note that you need to call BillFile.Unwrap() before calling this method if this BillFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (bf *BillFile) Update() *BillFileUpdateOne {
	return NewBillFileClient(bf.config).UpdateOne(bf)
}

// Unwrap unwraps the BillFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (bf *BillFile) Unwrap() *BillFile {
	_tx, ok := bf.config.driver.(*txDriver)
	if !ok {
		panic("ent: BillFile is not a transactional entity")
	}
	bf.config.driver = _tx.drv
	return bf
}

// String implements the fmt.Stringer.
func (bf *BillFile) String() string {
	var builder strings.Builder
	builder.WriteString("BillFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", bf.ID))
	builder.WriteString("source_path=")
	builder.WriteString(bf.SourcePath)
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(bf.Filename)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", bf.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", bf.FileSize))
	builder.WriteString(", ")
	if v := bf.Provider; v != nil {
		builder.WriteString("provider=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(bf.Status)
	builder.WriteString(", ")
	if v := bf.RoutedPath; v != nil {
		builder.WriteString("routed_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(bf.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(bf.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BillFiles is a parsable slice of BillFile.
type BillFiles []*BillFile
