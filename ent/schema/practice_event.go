package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeEvent records an action taken inside a code practice sandbox.
type PracticeEvent struct {
	ent.Schema
}

func (PracticeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PracticeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("visit_id").
			NotEmpty().
			Comment("UUID of the lesson visit, correlates actions of one run"),
		field.String("lesson_id").
			NotEmpty().
			Comment("Catalog ID of the lesson this challenge belongs to"),
		field.String("challenge_title").
			NotEmpty(),
		field.String("challenge_type").
			NotEmpty().
			Comment("Harness type: css, js, or html"),
		field.String("action").
			NotEmpty().
			Comment("verified or reset"),
		field.Int("edits").
			Default(0).
			Comment("Number of buffer edits in the sandbox so far"),
	}
}

func (PracticeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id"),
		index.Fields("action"),
	}
}
