// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/utility-bills/db/ent/schema"
	"github.com/joseph-ayodele/utility-bills/gen/ent/billfile"
	"github.com/joseph-ayodele/utility-bills/gen/ent/reconcilejob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	billfileFields := schema.BillFile{}.Fields()
	_ = billfileFields
	// billfileDescSourcePath is the schema descriptor for source_path field.
	billfileDescSourcePath := billfileFields[1].Descriptor()
	// billfile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	billfile.SourcePathValidator = billfileDescSourcePath.Validators[0].(func(string) error)
	// billfileDescFilename is the schema descriptor for filename field.
	billfileDescFilename := billfileFields[2].Descriptor()
	// billfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	billfile.FilenameValidator = billfileDescFilename.Validators[0].(func(string) error)
	// billfileDescContentHash is the schema descriptor for content_hash field.
	billfileDescContentHash := billfileFields[3].Descriptor()
	// billfile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	billfile.ContentHashValidator = billfileDescContentHash.Validators[0].(func([]byte) error)
	// billfileDescFileSize is the schema descriptor for file_size field.
	billfileDescFileSize := billfileFields[4].Descriptor()
	// billfile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	billfile.FileSizeValidator = billfileDescFileSize.Validators[0].(func(int64) error)
	// billfileDescStatus is the schema descriptor for status field.
	billfileDescStatus := billfileFields[6].Descriptor()
	// billfile.DefaultStatus holds the default value on creation for the status field.
	billfile.DefaultStatus = billfileDescStatus.Default.(string)
	// billfile.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	billfile.StatusValidator = billfileDescStatus.Validators[0].(func(string) error)
	// billfileDescCreatedAt is the schema descriptor for created_at field.
	billfileDescCreatedAt := billfileFields[8].Descriptor()
	// billfile.DefaultCreatedAt holds the default value on creation for the created_at field.
	billfile.DefaultCreatedAt = billfileDescCreatedAt.Default.(func() time.Time)
	// billfileDescUpdatedAt is the schema descriptor for updated_at field.
	billfileDescUpdatedAt := billfileFields[9].Descriptor()
	// billfile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	billfile.DefaultUpdatedAt = billfileDescUpdatedAt.Default.(func() time.Time)
	// billfile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	billfile.UpdateDefaultUpdatedAt = billfileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// billfileDescID is the schema descriptor for id field.
	billfileDescID := billfileFields[0].Descriptor()
	// billfile.DefaultID holds the default value on creation for the id field.
	billfile.DefaultID = billfileDescID.Default.(func() uuid.UUID)
	reconcilejobFields := schema.ReconcileJob{}.Fields()
	_ = reconcilejobFields
	// reconcilejobDescStatus is the schema descriptor for status field.
	reconcilejobDescStatus := reconcilejobFields[2].Descriptor()
	// reconcilejob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	reconcilejob.StatusValidator = reconcilejobDescStatus.Validators[0].(func(string) error)
	// reconcilejobDescPageCount is the schema descriptor for page_count field.
	reconcilejobDescPageCount := reconcilejobFields[5].Descriptor()
	// reconcilejob.DefaultPageCount holds the default value on creation for the page_count field.
	reconcilejob.DefaultPageCount = reconcilejobDescPageCount.Default.(int)
	// reconcilejob.PageCountValidator is a validator for the "page_count" field. It is called by the builders before save.
	reconcilejob.PageCountValidator = reconcilejobDescPageCount.Validators[0].(func(int) error)
	// reconcilejobDescMatched is the schema descriptor for matched field.
	reconcilejobDescMatched := reconcilejobFields[10].Descriptor()
	// reconcilejob.DefaultMatched holds the default value on creation for the matched field.
	reconcilejob.DefaultMatched = reconcilejobDescMatched.Default.(int)
	// reconcilejobDescMismatched is the schema descriptor for mismatched field.
	reconcilejobDescMismatched := reconcilejobFields[11].Descriptor()
	// reconcilejob.DefaultMismatched holds the default value on creation for the mismatched field.
	reconcilejob.DefaultMismatched = reconcilejobDescMismatched.Default.(int)
	// reconcilejobDescInapplicable is the schema descriptor for inapplicable field.
	reconcilejobDescInapplicable := reconcilejobFields[12].Descriptor()
	// reconcilejob.DefaultInapplicable holds the default value on creation for the inapplicable field.
	reconcilejob.DefaultInapplicable = reconcilejobDescInapplicable.Default.(int)
	// reconcilejobDescStartedAt is the schema descriptor for started_at field.
	reconcilejobDescStartedAt := reconcilejobFields[14].Descriptor()
	// reconcilejob.DefaultStartedAt holds the default value on creation for the started_at field.
	reconcilejob.DefaultStartedAt = reconcilejobDescStartedAt.Default.(func() time.Time)
	// reconcilejobDescID is the schema descriptor for id field.
	reconcilejobDescID := reconcilejobFields[0].Descriptor()
	// reconcilejob.DefaultID holds the default value on creation for the id field.
	reconcilejob.DefaultID = reconcilejobDescID.Default.(func() uuid.UUID)
}
