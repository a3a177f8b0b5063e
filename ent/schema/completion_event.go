package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompletionEvent records a lesson being completed and the points awarded.
type CompletionEvent struct {
	ent.Schema
}

func (CompletionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CompletionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("lesson_id").
			NotEmpty().
			Comment("Catalog ID of the completed lesson"),
		field.String("source").
			NotEmpty().
			Comment("What finished the lesson: quiz, practice, or content"),
		field.Int("points").
			Default(0).
			Comment("Points awarded for this completion"),
	}
}

func (CompletionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id"),
		index.Fields("source"),
	}
}
