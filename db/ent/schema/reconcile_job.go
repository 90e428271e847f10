package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/joseph-ayodele/utility-bills/constants"
	"github.com/joseph-ayodele/utility-bills/db/ent/schema/utils"
)

// ReconcileJob records one processing attempt of a bill file.
type ReconcileJob struct{ ent.Schema }

func (ReconcileJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "reconcile_jobs"},
	}
}

func (ReconcileJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("file_id", uuid.UUID{}),
		field.String("status").
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.String("provider").Optional().Nillable(),
		field.String("model_name").Optional().Nillable(),
		field.Int("page_count").Default(0).NonNegative(),
		field.JSON("extracted_json", json.RawMessage{}).Optional(),
		// extracted tree with validation annotations merged in
		field.JSON("annotated_json", json.RawMessage{}).Optional(),
		field.JSON("corrections", json.RawMessage{}).Optional(),
		field.Bool("passed").Optional().Nillable(),
		field.Int("matched").Default(0),
		field.Int("mismatched").Default(0),
		field.Int("inapplicable").Default(0),
		field.String("error_message").Optional().Nillable(),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (ReconcileJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", BillFile.Type).
			Ref("jobs").
			Field("file_id").
			Unique().
			Required(),
	}
}

func (ReconcileJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("file_id", "started_at"),
		index.Fields("status", "started_at"),
		index.Fields("provider"),
	}
}
