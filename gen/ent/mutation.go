// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/utility-bills/gen/ent/billfile"
	"github.com/joseph-ayodele/utility-bills/gen/ent/predicate"
	"github.com/joseph-ayodele/utility-bills/gen/ent/reconcilejob"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBillFile     = "BillFile"
	TypeReconcileJob = "ReconcileJob"
)

// BillFileMutation represents an operation that mutates the BillFile nodes in the graph.
type BillFileMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	source_path   *string
	filename      *string
	content_hash  *[]byte
	file_size     *int64
	addfile_size  *int64
	provider      *string
	status        *string
	routed_path   *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	jobs          map[uuid.UUID]struct{}
	removedjobs   map[uuid.UUID]struct{}
	clearedjobs   bool
	done          bool
	oldValue      func(context.Context) (*BillFile, error)
	predicates    []predicate.BillFile
}

var _ ent.Mutation = (*BillFileMutation)(nil)

// billfileOption allows management of the mutation configuration using functional options.
type billfileOption func(*BillFileMutation)

// newBillFileMutation creates new mutation for the BillFile entity.
func newBillFileMutation(c config, op Op, opts ...billfileOption) *BillFileMutation {
	m := &BillFileMutation{
		config:        c,
		op:            op,
		typ:           TypeBillFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBillFileID sets the ID field of the mutation.
func withBillFileID(id uuid.UUID) billfileOption {
	return func(m *BillFileMutation) {
		var (
			err   error
			once  sync.Once
			value *BillFile
		)
		m.oldValue = func(ctx context.Context) (*BillFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BillFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBillFile sets the old BillFile of the mutation.
func withBillFile(node *BillFile) billfileOption {
	return func(m *BillFileMutation) {
		m.oldValue = func(context.Context) (*BillFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BillFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BillFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BillFile entities.
func (m *BillFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BillFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BillFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BillFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourcePath sets the "source_path" field.
func (m *BillFileMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *BillFileMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the BillFile entity.
// If the BillFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillFileMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *BillFileMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetFilename sets the "filename" field.
func (m *BillFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *BillFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the BillFile entity.
// If the BillFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *BillFileMutation) ResetFilename() {
	m.filename = nil
}

// SetContentHash sets the "content_hash" field.
func (m *BillFileMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *BillFileMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the BillFile entity.
// If the BillFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillFileMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *BillFileMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFileSize sets the "file_size" field.
func (m *BillFileMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *BillFileMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the BillFile entity.
// If the BillFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillFileMutation) OldFileSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *BillFileMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *BillFileMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *BillFileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetProvider sets the "provider" field.
func (m *BillFileMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *BillFileMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the BillFile entity.
// If the BillFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillFileMutation) OldProvider(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ClearProvider clears the value of the "provider" field.
func (m *BillFileMutation) ClearProvider() {
	m.provider = nil
	m.clearedFields[billfile.FieldProvider] = struct{}{}
}

// ProviderCleared returns if the "provider" field was cleared in this mutation.
func (m *BillFileMutation) ProviderCleared() bool {
	_, ok := m.clearedFields[billfile.FieldProvider]
	return ok
}

// ResetProvider resets all changes to the "provider" field.
func (m *BillFileMutation) ResetProvider() {
	m.provider = nil
	delete(m.clearedFields, billfile.FieldProvider)
}

// SetStatus sets the "status" field.
func (m *BillFileMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *BillFileMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the BillFile entity.
// If the BillFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillFileMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BillFileMutation) ResetStatus() {
	m.status = nil
}

// SetRoutedPath sets the "routed_path" field.
func (m *BillFileMutation) SetRoutedPath(s string) {
	m.routed_path = &s
}

// RoutedPath returns the value of the "routed_path" field in the mutation.
func (m *BillFileMutation) RoutedPath() (r string, exists bool) {
	v := m.routed_path
	if v == nil {
		return
	}
	return *v, true
}

// OldRoutedPath returns the old "routed_path" field's value of the BillFile entity.
// If the BillFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillFileMutation) OldRoutedPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoutedPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoutedPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoutedPath: %w", err)
	}
	return oldValue.RoutedPath, nil
}

// ClearRoutedPath clears the value of the "routed_path" field.
func (m *BillFileMutation) ClearRoutedPath() {
	m.routed_path = nil
	m.clearedFields[billfile.FieldRoutedPath] = struct{}{}
}

// RoutedPathCleared returns if the "routed_path" field was cleared in this mutation.
func (m *BillFileMutation) RoutedPathCleared() bool {
	_, ok := m.clearedFields[billfile.FieldRoutedPath]
	return ok
}

// ResetRoutedPath resets all changes to the "routed_path" field.
func (m *BillFileMutation) ResetRoutedPath() {
	m.routed_path = nil
	delete(m.clearedFields, billfile.FieldRoutedPath)
}

// SetCreatedAt sets the "created_at" field.
func (m *BillFileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BillFileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BillFile entity.
// If the BillFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillFileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BillFileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BillFileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BillFileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BillFile entity.
// If the BillFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillFileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BillFileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddJobIDs adds the "jobs" edge to the ReconcileJob entity by ids.
func (m *BillFileMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ReconcileJob entity.
func (m *BillFileMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ReconcileJob entity was cleared.
func (m *BillFileMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ReconcileJob entity by IDs.
func (m *BillFileMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ReconcileJob entity.
func (m *BillFileMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *BillFileMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *BillFileMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the BillFileMutation builder.
func (m *BillFileMutation) Where(ps ...predicate.BillFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BillFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BillFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BillFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BillFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BillFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BillFile).
func (m *BillFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BillFileMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.source_path != nil {
		fields = append(fields, billfile.FieldSourcePath)
	}
	if m.filename != nil {
		fields = append(fields, billfile.FieldFilename)
	}
	if m.content_hash != nil {
		fields = append(fields, billfile.FieldContentHash)
	}
	if m.file_size != nil {
		fields = append(fields, billfile.FieldFileSize)
	}
	if m.provider != nil {
		fields = append(fields, billfile.FieldProvider)
	}
	if m.status != nil {
		fields = append(fields, billfile.FieldStatus)
	}
	if m.routed_path != nil {
		fields = append(fields, billfile.FieldRoutedPath)
	}
	if m.created_at != nil {
		fields = append(fields, billfile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, billfile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BillFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case billfile.FieldSourcePath:
		return m.SourcePath()
	case billfile.FieldFilename:
		return m.Filename()
	case billfile.FieldContentHash:
		return m.ContentHash()
	case billfile.FieldFileSize:
		return m.FileSize()
	case billfile.FieldProvider:
		return m.Provider()
	case billfile.FieldStatus:
		return m.Status()
	case billfile.FieldRoutedPath:
		return m.RoutedPath()
	case billfile.FieldCreatedAt:
		return m.CreatedAt()
	case billfile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BillFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case billfile.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case billfile.FieldFilename:
		return m.OldFilename(ctx)
	case billfile.FieldContentHash:
		return m.OldContentHash(ctx)
	case billfile.FieldFileSize:
		return m.OldFileSize(ctx)
	case billfile.FieldProvider:
		return m.OldProvider(ctx)
	case billfile.FieldStatus:
		return m.OldStatus(ctx)
	case billfile.FieldRoutedPath:
		return m.OldRoutedPath(ctx)
	case billfile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case billfile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BillFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BillFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case billfile.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case billfile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case billfile.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case billfile.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case billfile.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case billfile.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case billfile.FieldRoutedPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoutedPath(v)
		return nil
	case billfile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case billfile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BillFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BillFileMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, billfile.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BillFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case billfile.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BillFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case billfile.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown BillFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BillFileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(billfile.FieldProvider) {
		fields = append(fields, billfile.FieldProvider)
	}
	if m.FieldCleared(billfile.FieldRoutedPath) {
		fields = append(fields, billfile.FieldRoutedPath)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BillFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BillFileMutation) ClearField(name string) error {
	switch name {
	case billfile.FieldProvider:
		m.ClearProvider()
		return nil
	case billfile.FieldRoutedPath:
		m.ClearRoutedPath()
		return nil
	}
	return fmt.Errorf("unknown BillFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BillFileMutation) ResetField(name string) error {
	switch name {
	case billfile.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case billfile.FieldFilename:
		m.ResetFilename()
		return nil
	case billfile.FieldContentHash:
		m.ResetContentHash()
		return nil
	case billfile.FieldFileSize:
		m.ResetFileSize()
		return nil
	case billfile.FieldProvider:
		m.ResetProvider()
		return nil
	case billfile.FieldStatus:
		m.ResetStatus()
		return nil
	case billfile.FieldRoutedPath:
		m.ResetRoutedPath()
		return nil
	case billfile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case billfile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BillFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BillFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, billfile.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BillFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case billfile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BillFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, billfile.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BillFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case billfile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BillFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, billfile.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BillFileMutation) EdgeCleared(name string) bool {
	switch name {
	case billfile.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BillFileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown BillFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BillFileMutation) ResetEdge(name string) error {
	switch name {
	case billfile.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown BillFile edge %s", name)
}

// ReconcileJobMutation represents an operation that mutates the ReconcileJob nodes in the graph.
type ReconcileJobMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	status               *string
	provider             *string
	model_name           *string
	page_count           *int
	addpage_count        *int
	extracted_json       *json.RawMessage
	appendextracted_json json.RawMessage
	annotated_json       *json.RawMessage
	appendannotated_json json.RawMessage
	corrections          *json.RawMessage
	appendcorrections    json.RawMessage
	passed               *bool
	matched              *int
	addmatched           *int
	mismatched           *int
	addmismatched        *int
	inapplicable         *int
	addinapplicable      *int
	error_message        *string
	started_at           *time.Time
	finished_at          *time.Time
	clearedFields        map[string]struct{}
	file                 *uuid.UUID
	clearedfile          bool
	done                 bool
	oldValue             func(context.Context) (*ReconcileJob, error)
	predicates           []predicate.ReconcileJob
}

var _ ent.Mutation = (*ReconcileJobMutation)(nil)

// reconcilejobOption allows management of the mutation configuration using functional options.
type reconcilejobOption func(*ReconcileJobMutation)

// newReconcileJobMutation creates new mutation for the ReconcileJob entity.
func newReconcileJobMutation(c config, op Op, opts ...reconcilejobOption) *ReconcileJobMutation {
	m := &ReconcileJobMutation{
		config:        c,
		op:            op,
		typ:           TypeReconcileJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReconcileJobID sets the ID field of the mutation.
func withReconcileJobID(id uuid.UUID) reconcilejobOption {
	return func(m *ReconcileJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ReconcileJob
		)
		m.oldValue = func(ctx context.Context) (*ReconcileJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReconcileJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReconcileJob sets the old ReconcileJob of the mutation.
func withReconcileJob(node *ReconcileJob) reconcilejobOption {
	return func(m *ReconcileJobMutation) {
		m.oldValue = func(context.Context) (*ReconcileJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReconcileJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReconcileJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReconcileJob entities.
func (m *ReconcileJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReconcileJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReconcileJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReconcileJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *ReconcileJobMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *ReconcileJobMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the ReconcileJob entity.
// If the ReconcileJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconcileJobMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *ReconcileJobMutation) ResetFileID() {
	m.file = nil
}

// SetStatus sets the "status" field.
func (m *ReconcileJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ReconcileJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ReconcileJob entity.
// If the ReconcileJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconcileJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ReconcileJobMutation) ResetStatus() {
	m.status = nil
}

// SetProvider sets the "provider" field.
func (m *ReconcileJobMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *ReconcileJobMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the ReconcileJob entity.
// If the ReconcileJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconcileJobMutation) OldProvider(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ClearProvider clears the value of the "provider" field.
func (m *ReconcileJobMutation) ClearProvider() {
	m.provider = nil
	m.clearedFields[reconcilejob.FieldProvider] = struct{}{}
}

// ProviderCleared returns if the "provider" field was cleared in this mutation.
func (m *ReconcileJobMutation) ProviderCleared() bool {
	_, ok := m.clearedFields[reconcilejob.FieldProvider]
	return ok
}

// ResetProvider resets all changes to the "provider" field.
func (m *ReconcileJobMutation) ResetProvider() {
	m.provider = nil
	delete(m.clearedFields, reconcilejob.FieldProvider)
}

// SetModelName sets the "model_name" field.
func (m *ReconcileJobMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *ReconcileJobMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the ReconcileJob entity.
// If the ReconcileJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconcileJobMutation) OldModelName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *ReconcileJobMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[reconcilejob.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *ReconcileJobMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[reconcilejob.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *ReconcileJobMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, reconcilejob.FieldModelName)
}

// SetPageCount sets the "page_count" field.
func (m *ReconcileJobMutation) SetPageCount(i int) {
	m.page_count = &i
	m.addpage_count = nil
}

// PageCount returns the value of the "page_count" field in the mutation.
func (m *ReconcileJobMutation) PageCount() (r int, exists bool) {
	v := m.page_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPageCount returns the old "page_count" field's value of the ReconcileJob entity.
// If the ReconcileJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconcileJobMutation) OldPageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageCount: %w", err)
	}
	return oldValue.PageCount, nil
}

// AddPageCount adds i to the "page_count" field.
func (m *ReconcileJobMutation) AddPageCount(i int) {
	if m.addpage_count != nil {
		*m.addpage_count += i
	} else {
		m.addpage_count = &i
	}
}

// AddedPageCount returns the value that was added to the "page_count" field in this mutation.
func (m *ReconcileJobMutation) AddedPageCount() (r int, exists bool) {
	v := m.addpage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageCount resets all changes to the "page_count" field.
func (m *ReconcileJobMutation) ResetPageCount() {
	m.page_count = nil
	m.addpage_count = nil
}

// SetExtractedJSON sets the "extracted_json" field.
func (m *ReconcileJobMutation) SetExtractedJSON(jm json.RawMessage) {
	m.extracted_json = &jm
	m.appendextracted_json = nil
}

// ExtractedJSON returns the value of the "extracted_json" field in the mutation.
func (m *ReconcileJobMutation) ExtractedJSON() (r json.RawMessage, exists bool) {
	v := m.extracted_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedJSON returns the old "extracted_json" field's value of the ReconcileJob entity.
// If the ReconcileJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconcileJobMutation) OldExtractedJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedJSON: %w", err)
	}
	return oldValue.ExtractedJSON, nil
}

// AppendExtractedJSON adds jm to the "extracted_json" field.
func (m *ReconcileJobMutation) AppendExtractedJSON(jm json.RawMessage) {
	m.appendextracted_json = append(m.appendextracted_json, jm...)
}

// AppendedExtractedJSON returns the list of values that were appended to the "extracted_json" field in this mutation.
func (m *ReconcileJobMutation) AppendedExtractedJSON() (json.RawMessage, bool) {
	if len(m.appendextracted_json) == 0 {
		return nil, false
	}
	return m.appendextracted_json, true
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (m *ReconcileJobMutation) ClearExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	m.clearedFields[reconcilejob.FieldExtractedJSON] = struct{}{}
}

// ExtractedJSONCleared returns if the "extracted_json" field was cleared in this mutation.
func (m *ReconcileJobMutation) ExtractedJSONCleared() bool {
	_, ok := m.clearedFields[reconcilejob.FieldExtractedJSON]
	return ok
}

// ResetExtractedJSON resets all changes to the "extracted_json" field.
func (m *ReconcileJobMutation) ResetExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	delete(m.clearedFields, reconcilejob.FieldExtractedJSON)
}

// SetAnnotatedJSON sets the "annotated_json" field.
func (m *ReconcileJobMutation) SetAnnotatedJSON(jm json.RawMessage) {
	m.annotated_json = &jm
	m.appendannotated_json = nil
}

// AnnotatedJSON returns the value of the "annotated_json" field in the mutation.
func (m *ReconcileJobMutation) AnnotatedJSON() (r json.RawMessage, exists bool) {
	v := m.annotated_json
	if v == nil {
		return
	}
	return *v, true
}

// OldAnnotatedJSON returns the old "annotated_json" field's value of the ReconcileJob entity.
// If the ReconcileJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconcileJobMutation) OldAnnotatedJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnnotatedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnnotatedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnnotatedJSON: %w", err)
	}
	return oldValue.AnnotatedJSON, nil
}

// AppendAnnotatedJSON adds jm to the "annotated_json" field.
func (m *ReconcileJobMutation) AppendAnnotatedJSON(jm json.RawMessage) {
	m.appendannotated_json = append(m.appendannotated_json, jm...)
}

// AppendedAnnotatedJSON returns the list of values that were appended to the "annotated_json" field in this mutation.
func (m *ReconcileJobMutation) AppendedAnnotatedJSON() (json.RawMessage, bool) {
	if len(m.appendannotated_json) == 0 {
		return nil, false
	}
	return m.appendannotated_json, true
}

// ClearAnnotatedJSON clears the value of the "annotated_json" field.
func (m *ReconcileJobMutation) ClearAnnotatedJSON() {
	m.annotated_json = nil
	m.appendannotated_json = nil
	m.clearedFields[reconcilejob.FieldAnnotatedJSON] = struct{}{}
}

// AnnotatedJSONCleared returns if the "annotated_json" field was cleared in this mutation.
func (m *ReconcileJobMutation) AnnotatedJSONCleared() bool {
	_, ok := m.clearedFields[reconcilejob.FieldAnnotatedJSON]
	return ok
}

// ResetAnnotatedJSON resets all changes to the "annotated_json" field.
func (m *ReconcileJobMutation) ResetAnnotatedJSON() {
	m.annotated_json = nil
	m.appendannotated_json = nil
	delete(m.clearedFields, reconcilejob.FieldAnnotatedJSON)
}

// SetCorrections sets the "corrections" field.
func (m *ReconcileJobMutation) SetCorrections(jm json.RawMessage) {
	m.corrections = &jm
	m.appendcorrections = nil
}

// Corrections returns the value of the "corrections" field in the mutation.
func (m *ReconcileJobMutation) Corrections() (r json.RawMessage, exists bool) {
	v := m.corrections
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrections returns the old "corrections" field's value of the ReconcileJob entity.
// If the ReconcileJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconcileJobMutation) OldCorrections(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrections is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrections requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrections: %w", err)
	}
	return oldValue.Corrections, nil
}

// AppendCorrections adds jm to the "corrections" field.
func (m *ReconcileJobMutation) AppendCorrections(jm json.RawMessage) {
	m.appendcorrections = append(m.appendcorrections, jm...)
}

// AppendedCorrections returns the list of values that were appended to the "corrections" field in this mutation.
func (m *ReconcileJobMutation) AppendedCorrections() (json.RawMessage, bool) {
	if len(m.appendcorrections) == 0 {
		return nil, false
	}
	return m.appendcorrections, true
}

// ClearCorrections clears the value of the "corrections" field.
func (m *ReconcileJobMutation) ClearCorrections() {
	m.corrections = nil
	m.appendcorrections = nil
	m.clearedFields[reconcilejob.FieldCorrections] = struct{}{}
}

// CorrectionsCleared returns if the "corrections" field was cleared in this mutation.
func (m *ReconcileJobMutation) CorrectionsCleared() bool {
	_, ok := m.clearedFields[reconcilejob.FieldCorrections]
	return ok
}

// ResetCorrections resets all changes to the "corrections" field.
func (m *ReconcileJobMutation) ResetCorrections() {
	m.corrections = nil
	m.appendcorrections = nil
	delete(m.clearedFields, reconcilejob.FieldCorrections)
}

// SetPassed sets the "passed" field.
func (m *ReconcileJobMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *ReconcileJobMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the ReconcileJob entity.
// If the ReconcileJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconcileJobMutation) OldPassed(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ClearPassed clears the value of the "passed" field.
func (m *ReconcileJobMutation) ClearPassed() {
	m.passed = nil
	m.clearedFields[reconcilejob.FieldPassed] = struct{}{}
}

// PassedCleared returns if the "passed" field was cleared in this mutation.
func (m *ReconcileJobMutation) PassedCleared() bool {
	_, ok := m.clearedFields[reconcilejob.FieldPassed]
	return ok
}

// ResetPassed resets all changes to the "passed" field.
func (m *ReconcileJobMutation) ResetPassed() {
	m.passed = nil
	delete(m.clearedFields, reconcilejob.FieldPassed)
}

// SetMatched sets the "matched" field.
func (m *ReconcileJobMutation) SetMatched(i int) {
	m.matched = &i
	m.addmatched = nil
}

// Matched returns the value of the "matched" field in the mutation.
func (m *ReconcileJobMutation) Matched() (r int, exists bool) {
	v := m.matched
	if v == nil {
		return
	}
	return *v, true
}

// OldMatched returns the old "matched" field's value of the ReconcileJob entity.
// If the ReconcileJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconcileJobMutation) OldMatched(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatched is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatched requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatched: %w", err)
	}
	return oldValue.Matched, nil
}

// AddMatched adds i to the "matched" field.
func (m *ReconcileJobMutation) AddMatched(i int) {
	if m.addmatched != nil {
		*m.addmatched += i
	} else {
		m.addmatched = &i
	}
}

// AddedMatched returns the value that was added to the "matched" field in this mutation.
func (m *ReconcileJobMutation) AddedMatched() (r int, exists bool) {
	v := m.addmatched
	if v == nil {
		return
	}
	return *v, true
}

// ResetMatched resets all changes to the "matched" field.
func (m *ReconcileJobMutation) ResetMatched() {
	m.matched = nil
	m.addmatched = nil
}

// SetMismatched sets the "mismatched" field.
func (m *ReconcileJobMutation) SetMismatched(i int) {
	m.mismatched = &i
	m.addmismatched = nil
}

// Mismatched returns the value of the "mismatched" field in the mutation.
func (m *ReconcileJobMutation) Mismatched() (r int, exists bool) {
	v := m.mismatched
	if v == nil {
		return
	}
	return *v, true
}

// OldMismatched returns the old "mismatched" field's value of the ReconcileJob entity.
// If the ReconcileJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconcileJobMutation) OldMismatched(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMismatched is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMismatched requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMismatched: %w", err)
	}
	return oldValue.Mismatched, nil
}

// AddMismatched adds i to the "mismatched" field.
func (m *ReconcileJobMutation) AddMismatched(i int) {
	if m.addmismatched != nil {
		*m.addmismatched += i
	} else {
		m.addmismatched = &i
	}
}

// AddedMismatched returns the value that was added to the "mismatched" field in this mutation.
func (m *ReconcileJobMutation) AddedMismatched() (r int, exists bool) {
	v := m.addmismatched
	if v == nil {
		return
	}
	return *v, true
}

// ResetMismatched resets all changes to the "mismatched" field.
func (m *ReconcileJobMutation) ResetMismatched() {
	m.mismatched = nil
	m.addmismatched = nil
}

// SetInapplicable sets the "inapplicable" field.
func (m *ReconcileJobMutation) SetInapplicable(i int) {
	m.inapplicable = &i
	m.addinapplicable = nil
}

// Inapplicable returns the value of the "inapplicable" field in the mutation.
func (m *ReconcileJobMutation) Inapplicable() (r int, exists bool) {
	v := m.inapplicable
	if v == nil {
		return
	}
	return *v, true
}

// OldInapplicable returns the old "inapplicable" field's value of the ReconcileJob entity.
// If the ReconcileJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconcileJobMutation) OldInapplicable(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInapplicable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInapplicable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInapplicable: %w", err)
	}
	return oldValue.Inapplicable, nil
}

// AddInapplicable adds i to the "inapplicable" field.
func (m *ReconcileJobMutation) AddInapplicable(i int) {
	if m.addinapplicable != nil {
		*m.addinapplicable += i
	} else {
		m.addinapplicable = &i
	}
}

// AddedInapplicable returns the value that was added to the "inapplicable" field in this mutation.
func (m *ReconcileJobMutation) AddedInapplicable() (r int, exists bool) {
	v := m.addinapplicable
	if v == nil {
		return
	}
	return *v, true
}

// ResetInapplicable resets all changes to the "inapplicable" field.
func (m *ReconcileJobMutation) ResetInapplicable() {
	m.inapplicable = nil
	m.addinapplicable = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ReconcileJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ReconcileJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ReconcileJob entity.
// If the ReconcileJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconcileJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ReconcileJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[reconcilejob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ReconcileJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[reconcilejob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ReconcileJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, reconcilejob.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *ReconcileJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ReconcileJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ReconcileJob entity.
// If the ReconcileJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconcileJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ReconcileJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ReconcileJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ReconcileJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ReconcileJob entity.
// If the ReconcileJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconcileJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ReconcileJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[reconcilejob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ReconcileJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[reconcilejob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ReconcileJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, reconcilejob.FieldFinishedAt)
}

// ClearFile clears the "file" edge to the BillFile entity.
func (m *ReconcileJobMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[reconcilejob.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the BillFile entity was cleared.
func (m *ReconcileJobMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *ReconcileJobMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *ReconcileJobMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// Where appends a list predicates to the ReconcileJobMutation builder.
func (m *ReconcileJobMutation) Where(ps ...predicate.ReconcileJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReconcileJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReconcileJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReconcileJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReconcileJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReconcileJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReconcileJob).
func (m *ReconcileJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReconcileJobMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.file != nil {
		fields = append(fields, reconcilejob.FieldFileID)
	}
	if m.status != nil {
		fields = append(fields, reconcilejob.FieldStatus)
	}
	if m.provider != nil {
		fields = append(fields, reconcilejob.FieldProvider)
	}
	if m.model_name != nil {
		fields = append(fields, reconcilejob.FieldModelName)
	}
	if m.page_count != nil {
		fields = append(fields, reconcilejob.FieldPageCount)
	}
	if m.extracted_json != nil {
		fields = append(fields, reconcilejob.FieldExtractedJSON)
	}
	if m.annotated_json != nil {
		fields = append(fields, reconcilejob.FieldAnnotatedJSON)
	}
	if m.corrections != nil {
		fields = append(fields, reconcilejob.FieldCorrections)
	}
	if m.passed != nil {
		fields = append(fields, reconcilejob.FieldPassed)
	}
	if m.matched != nil {
		fields = append(fields, reconcilejob.FieldMatched)
	}
	if m.mismatched != nil {
		fields = append(fields, reconcilejob.FieldMismatched)
	}
	if m.inapplicable != nil {
		fields = append(fields, reconcilejob.FieldInapplicable)
	}
	if m.error_message != nil {
		fields = append(fields, reconcilejob.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, reconcilejob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, reconcilejob.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReconcileJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reconcilejob.FieldFileID:
		return m.FileID()
	case reconcilejob.FieldStatus:
		return m.Status()
	case reconcilejob.FieldProvider:
		return m.Provider()
	case reconcilejob.FieldModelName:
		return m.ModelName()
	case reconcilejob.FieldPageCount:
		return m.PageCount()
	case reconcilejob.FieldExtractedJSON:
		return m.ExtractedJSON()
	case reconcilejob.FieldAnnotatedJSON:
		return m.AnnotatedJSON()
	case reconcilejob.FieldCorrections:
		return m.Corrections()
	case reconcilejob.FieldPassed:
		return m.Passed()
	case reconcilejob.FieldMatched:
		return m.Matched()
	case reconcilejob.FieldMismatched:
		return m.Mismatched()
	case reconcilejob.FieldInapplicable:
		return m.Inapplicable()
	case reconcilejob.FieldErrorMessage:
		return m.ErrorMessage()
	case reconcilejob.FieldStartedAt:
		return m.StartedAt()
	case reconcilejob.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReconcileJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reconcilejob.FieldFileID:
		return m.OldFileID(ctx)
	case reconcilejob.FieldStatus:
		return m.OldStatus(ctx)
	case reconcilejob.FieldProvider:
		return m.OldProvider(ctx)
	case reconcilejob.FieldModelName:
		return m.OldModelName(ctx)
	case reconcilejob.FieldPageCount:
		return m.OldPageCount(ctx)
	case reconcilejob.FieldExtractedJSON:
		return m.OldExtractedJSON(ctx)
	case reconcilejob.FieldAnnotatedJSON:
		return m.OldAnnotatedJSON(ctx)
	case reconcilejob.FieldCorrections:
		return m.OldCorrections(ctx)
	case reconcilejob.FieldPassed:
		return m.OldPassed(ctx)
	case reconcilejob.FieldMatched:
		return m.OldMatched(ctx)
	case reconcilejob.FieldMismatched:
		return m.OldMismatched(ctx)
	case reconcilejob.FieldInapplicable:
		return m.OldInapplicable(ctx)
	case reconcilejob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case reconcilejob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case reconcilejob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReconcileJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReconcileJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reconcilejob.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case reconcilejob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case reconcilejob.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case reconcilejob.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case reconcilejob.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageCount(v)
		return nil
	case reconcilejob.FieldExtractedJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedJSON(v)
		return nil
	case reconcilejob.FieldAnnotatedJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnnotatedJSON(v)
		return nil
	case reconcilejob.FieldCorrections:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrections(v)
		return nil
	case reconcilejob.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case reconcilejob.FieldMatched:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatched(v)
		return nil
	case reconcilejob.FieldMismatched:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMismatched(v)
		return nil
	case reconcilejob.FieldInapplicable:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInapplicable(v)
		return nil
	case reconcilejob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case reconcilejob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case reconcilejob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReconcileJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReconcileJobMutation) AddedFields() []string {
	var fields []string
	if m.addpage_count != nil {
		fields = append(fields, reconcilejob.FieldPageCount)
	}
	if m.addmatched != nil {
		fields = append(fields, reconcilejob.FieldMatched)
	}
	if m.addmismatched != nil {
		fields = append(fields, reconcilejob.FieldMismatched)
	}
	if m.addinapplicable != nil {
		fields = append(fields, reconcilejob.FieldInapplicable)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReconcileJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reconcilejob.FieldPageCount:
		return m.AddedPageCount()
	case reconcilejob.FieldMatched:
		return m.AddedMatched()
	case reconcilejob.FieldMismatched:
		return m.AddedMismatched()
	case reconcilejob.FieldInapplicable:
		return m.AddedInapplicable()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReconcileJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reconcilejob.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageCount(v)
		return nil
	case reconcilejob.FieldMatched:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMatched(v)
		return nil
	case reconcilejob.FieldMismatched:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMismatched(v)
		return nil
	case reconcilejob.FieldInapplicable:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInapplicable(v)
		return nil
	}
	return fmt.Errorf("unknown ReconcileJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReconcileJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reconcilejob.FieldProvider) {
		fields = append(fields, reconcilejob.FieldProvider)
	}
	if m.FieldCleared(reconcilejob.FieldModelName) {
		fields = append(fields, reconcilejob.FieldModelName)
	}
	if m.FieldCleared(reconcilejob.FieldExtractedJSON) {
		fields = append(fields, reconcilejob.FieldExtractedJSON)
	}
	if m.FieldCleared(reconcilejob.FieldAnnotatedJSON) {
		fields = append(fields, reconcilejob.FieldAnnotatedJSON)
	}
	if m.FieldCleared(reconcilejob.FieldCorrections) {
		fields = append(fields, reconcilejob.FieldCorrections)
	}
	if m.FieldCleared(reconcilejob.FieldPassed) {
		fields = append(fields, reconcilejob.FieldPassed)
	}
	if m.FieldCleared(reconcilejob.FieldErrorMessage) {
		fields = append(fields, reconcilejob.FieldErrorMessage)
	}
	if m.FieldCleared(reconcilejob.FieldFinishedAt) {
		fields = append(fields, reconcilejob.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReconcileJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReconcileJobMutation) ClearField(name string) error {
	switch name {
	case reconcilejob.FieldProvider:
		m.ClearProvider()
		return nil
	case reconcilejob.FieldModelName:
		m.ClearModelName()
		return nil
	case reconcilejob.FieldExtractedJSON:
		m.ClearExtractedJSON()
		return nil
	case reconcilejob.FieldAnnotatedJSON:
		m.ClearAnnotatedJSON()
		return nil
	case reconcilejob.FieldCorrections:
		m.ClearCorrections()
		return nil
	case reconcilejob.FieldPassed:
		m.ClearPassed()
		return nil
	case reconcilejob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case reconcilejob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ReconcileJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReconcileJobMutation) ResetField(name string) error {
	switch name {
	case reconcilejob.FieldFileID:
		m.ResetFileID()
		return nil
	case reconcilejob.FieldStatus:
		m.ResetStatus()
		return nil
	case reconcilejob.FieldProvider:
		m.ResetProvider()
		return nil
	case reconcilejob.FieldModelName:
		m.ResetModelName()
		return nil
	case reconcilejob.FieldPageCount:
		m.ResetPageCount()
		return nil
	case reconcilejob.FieldExtractedJSON:
		m.ResetExtractedJSON()
		return nil
	case reconcilejob.FieldAnnotatedJSON:
		m.ResetAnnotatedJSON()
		return nil
	case reconcilejob.FieldCorrections:
		m.ResetCorrections()
		return nil
	case reconcilejob.FieldPassed:
		m.ResetPassed()
		return nil
	case reconcilejob.FieldMatched:
		m.ResetMatched()
		return nil
	case reconcilejob.FieldMismatched:
		m.ResetMismatched()
		return nil
	case reconcilejob.FieldInapplicable:
		m.ResetInapplicable()
		return nil
	case reconcilejob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case reconcilejob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case reconcilejob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ReconcileJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReconcileJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.file != nil {
		edges = append(edges, reconcilejob.EdgeFile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReconcileJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case reconcilejob.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReconcileJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReconcileJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReconcileJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfile {
		edges = append(edges, reconcilejob.EdgeFile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReconcileJobMutation) EdgeCleared(name string) bool {
	switch name {
	case reconcilejob.EdgeFile:
		return m.clearedfile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReconcileJobMutation) ClearEdge(name string) error {
	switch name {
	case reconcilejob.EdgeFile:
		m.ClearFile()
		return nil
	}
	return fmt.Errorf("unknown ReconcileJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReconcileJobMutation) ResetEdge(name string) error {
	switch name {
	case reconcilejob.EdgeFile:
		m.ResetFile()
		return nil
	}
	return fmt.Errorf("unknown ReconcileJob edge %s", name)
}
