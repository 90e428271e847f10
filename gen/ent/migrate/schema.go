// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BillFilesColumns holds the columns for the "bill_files" table.
	BillFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "file_size", Type: field.TypeInt64},
		{Name: "provider", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "routed_path", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BillFilesTable holds the schema information for the "bill_files" table.
	BillFilesTable = &schema.Table{
		Name:       "bill_files",
		Columns:    BillFilesColumns,
		PrimaryKey: []*schema.Column{BillFilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "billfile_content_hash",
				Unique:  true,
				Columns: []*schema.Column{BillFilesColumns[3]},
			},
			{
				Name:    "billfile_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{BillFilesColumns[6], BillFilesColumns[9]},
			},
			{
				Name:    "billfile_provider",
				Unique:  false,
				Columns: []*schema.Column{BillFilesColumns[5]},
			},
		},
	}
	// ReconcileJobsColumns holds the columns for the "reconcile_jobs" table.
	ReconcileJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString, Nullable: true},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "page_count", Type: field.TypeInt, Default: 0},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "annotated_json", Type: field.TypeJSON, Nullable: true},
		{Name: "corrections", Type: field.TypeJSON, Nullable: true},
		{Name: "passed", Type: field.TypeBool, Nullable: true},
		{Name: "matched", Type: field.TypeInt, Default: 0},
		{Name: "mismatched", Type: field.TypeInt, Default: 0},
		{Name: "inapplicable", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// ReconcileJobsTable holds the schema information for the "reconcile_jobs" table.
	ReconcileJobsTable = &schema.Table{
		Name:       "reconcile_jobs",
		Columns:    ReconcileJobsColumns,
		PrimaryKey: []*schema.Column{ReconcileJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reconcile_jobs_bill_files_jobs",
				Columns:    []*schema.Column{ReconcileJobsColumns[15]},
				RefColumns: []*schema.Column{BillFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reconcilejob_file_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{ReconcileJobsColumns[15], ReconcileJobsColumns[13]},
			},
			{
				Name:    "reconcilejob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ReconcileJobsColumns[1], ReconcileJobsColumns[13]},
			},
			{
				Name:    "reconcilejob_provider",
				Unique:  false,
				Columns: []*schema.Column{ReconcileJobsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BillFilesTable,
		ReconcileJobsTable,
	}
)

func init() {
	BillFilesTable.Annotation = &entsql.Annotation{
		Table: "bill_files",
	}
	ReconcileJobsTable.ForeignKeys[0].RefTable = BillFilesTable
	ReconcileJobsTable.Annotation = &entsql.Annotation{
		Table: "reconcile_jobs",
	}
}
