// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/utility-bills/gen/ent/billfile"
	"github.com/joseph-ayodele/utility-bills/gen/ent/reconcilejob"
)

// ReconcileJob is the model entity for the ReconcileJob schema.
type ReconcileJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FileID holds the value of the "file_id" field.
	FileID uuid.UUID `json:"file_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider *string `json:"provider,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName *string `json:"model_name,omitempty"`
	// PageCount holds the value of the "page_count" field.
	PageCount int `json:"page_count,omitempty"`
	// ExtractedJSON holds the value of the "extracted_json" field.
	ExtractedJSON json.RawMessage `json:"extracted_json,omitempty"`
	// AnnotatedJSON holds the value of the "annotated_json" field.
	AnnotatedJSON json.RawMessage `json:"annotated_json,omitempty"`
	// Corrections holds the value of the "corrections" field.
	Corrections json.RawMessage `json:"corrections,omitempty"`
	// Passed holds the value of the "passed" field.
	Passed *bool `json:"passed,omitempty"`
	// Matched holds the value of the "matched" field.
	Matched int `json:"matched,omitempty"`
	// Mismatched holds the value of the "mismatched" field.
	Mismatched int `json:"mismatched,omitempty"`
	// Inapplicable holds the value of the "inapplicable" field.
	Inapplicable int `json:"inapplicable,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReconcileJobQuery when eager-loading is set.
	Edges        ReconcileJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReconcileJobEdges holds the relations/edges for other nodes in the graph.
type ReconcileJobEdges struct {
	// File holds the value of the file edge.
	File *BillFile `json:"file,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FileOrErr returns the File value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReconcileJobEdges) FileOrErr() (*BillFile, error) {
	if e.File != nil {
		return e.File, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: billfile.Label}
	}
	return nil, &NotLoadedError{edge: "file"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReconcileJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reconcilejob.FieldExtractedJSON, reconcilejob.FieldAnnotatedJSON, reconcilejob.FieldCorrections:
			values[i] = new([]byte)
		case reconcilejob.FieldPassed:
			values[i] = new(sql.NullBool)
		case reconcilejob.FieldPageCount, reconcilejob.FieldMatched, reconcilejob.FieldMismatched, reconcilejob.FieldInapplicable:
			values[i] = new(sql.NullInt64)
		case reconcilejob.FieldStatus, reconcilejob.FieldProvider, reconcilejob.FieldModelName, reconcilejob.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case reconcilejob.FieldStartedAt, reconcilejob.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case reconcilejob.FieldID, reconcilejob.FieldFileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReconcileJob fields.
func (rj *ReconcileJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reconcilejob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				rj.ID = *value
			}
		case reconcilejob.FieldFileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field file_id", values[i])
			} else if value != nil {
				rj.FileID = *value
			}
		case reconcilejob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				rj.Status = value.String
			}
		case reconcilejob.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				rj.Provider = new(string)
				*rj.Provider = value.String
			}
		case reconcilejob.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				rj.ModelName = new(string)
				*rj.ModelName = value.String
			}
		case reconcilejob.FieldPageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_count", values[i])
			} else if value.Valid {
				rj.PageCount = int(value.Int64)
			}
		case reconcilejob.FieldExtractedJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &rj.ExtractedJSON); err != nil {
					return fmt.Errorf("unmarshal field extracted_json: %w", err)
				}
			}
		case reconcilejob.FieldAnnotatedJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field annotated_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &rj.AnnotatedJSON); err != nil {
					return fmt.Errorf("unmarshal field annotated_json: %w", err)
				}
			}
		case reconcilejob.FieldCorrections:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field corrections", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &rj.Corrections); err != nil {
					return fmt.Errorf("unmarshal field corrections: %w", err)
				}
			}
		case reconcilejob.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				rj.Passed = new(bool)
				*rj.Passed = value.Bool
			}
		case reconcilejob.FieldMatched:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field matched", values[i])
			} else if value.Valid {
				rj.Matched = int(value.Int64)
			}
		case reconcilejob.FieldMismatched:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mismatched", values[i])
			} else if value.Valid {
				rj.Mismatched = int(value.Int64)
			}
		case reconcilejob.FieldInapplicable:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field inapplicable", values[i])
			} else if value.Valid {
				rj.Inapplicable = int(value.Int64)
			}
		case reconcilejob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				rj.ErrorMessage = new(string)
				*rj.ErrorMessage = value.String
			}
		case reconcilejob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				rj.StartedAt = value.Time
			}
		case reconcilejob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				rj.FinishedAt = new(time.Time)
				*rj.FinishedAt = value.Time
			}
		default:
			rj.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReconcileJob.
// This includes values selected through modifiers, order, etc.
func (rj *ReconcileJob) Value(name string) (ent.Value, error) {
	return rj.selectValues.Get(name)
}

// QueryFile queries the "file" edge of the ReconcileJob entity.
func (rj *ReconcileJob) QueryFile() *BillFileQuery {
	return NewReconcileJobClient(rj.config).QueryFile(rj)
}

// Update returns a builder for updating this ReconcileJob.
// Note that you need to call ReconcileJob.Unwrap() before calling this method if this ReconcileJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (rj *ReconcileJob) Update() *ReconcileJobUpdateOne {
	return NewReconcileJobClient(rj.config).UpdateOne(rj)
}

// Unwrap unwraps the ReconcileJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (rj *ReconcileJob) Unwrap() *ReconcileJob {
	_tx, ok := rj.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReconcileJob is not a transactional entity")
	}
	rj.config.driver = _tx.drv
	return rj
}

// String implements the fmt.Stringer.
func (rj *ReconcileJob) String() string {
	var builder strings.Builder
	builder.WriteString("ReconcileJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", rj.ID))
	builder.WriteString("file_id=")
	builder.WriteString(fmt.Sprintf("%v", rj.FileID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(rj.Status)
	builder.WriteString(", ")
	if v := rj.Provider; v != nil {
		builder.WriteString("provider=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := rj.ModelName; v != nil {
		builder.WriteString("model_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("page_count=")
	builder.WriteString(fmt.Sprintf("%v", rj.PageCount))
	builder.WriteString(", ")
	builder.WriteString("extracted_json=")
	builder.WriteString(fmt.Sprintf("%v", rj.ExtractedJSON))
	builder.WriteString(", ")
	builder.WriteString("annotated_json=")
	builder.WriteString(fmt.Sprintf("%v", rj.AnnotatedJSON))
	builder.WriteString(", ")
	builder.WriteString("corrections=")
	builder.WriteString(fmt.Sprintf("%v", rj.Corrections))
	builder.WriteString(", ")
	if v := rj.Passed; v != nil {
		builder.WriteString("passed=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("matched=")
	builder.WriteString(fmt.Sprintf("%v", rj.Matched))
	builder.WriteString(", ")
	builder.WriteString("mismatched=")
	builder.WriteString(fmt.Sprintf("%v", rj.Mismatched))
	builder.WriteString(", ")
	builder.WriteString("inapplicable=")
	builder.WriteString(fmt.Sprintf("%v", rj.Inapplicable))
	builder.WriteString(", ")
	if v := rj.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(rj.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := rj.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ReconcileJobs is a parsable slice of ReconcileJob.
type ReconcileJobs []*ReconcileJob
