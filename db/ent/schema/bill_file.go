package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/joseph-ayodele/utility-bills/constants"
	"github.com/joseph-ayodele/utility-bills/db/ent/schema/utils"
)

// BillFile is one ingested PDF, unique by content.
type BillFile struct {
	ent.Schema
}

func (BillFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "bill_files"},
	}
}

func (BillFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("source_path").NotEmpty(),
		field.String("filename").NotEmpty(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.Int64("file_size").NonNegative(),
		// canonical provider once detected
		field.String("provider").Optional().Nillable(),
		field.String("status").
			Default(string(constants.JobStatusQueued)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.String("routed_path").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (BillFile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("jobs", ReconcileJob.Type),
	}
}

func (BillFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_hash").Unique(),
		index.Fields("status", "updated_at"),
		index.Fields("provider"),
	}
}
