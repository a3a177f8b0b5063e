package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single quiz answer.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("visit_id").
			NotEmpty().
			Comment("UUID of the lesson visit, correlates answers of one run"),
		field.String("lesson_id").
			NotEmpty().
			Comment("Catalog ID of the lesson this quiz belongs to"),
		field.Int("question_index").
			Comment("Zero-based position of the question in the quiz"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.String("selected").
			NotEmpty().
			Comment("The option the learner picked"),
		field.String("correct_answer").
			NotEmpty().
			Comment("The canonical correct option"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id"),
		index.Fields("correct"),
	}
}
