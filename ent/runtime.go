// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"
	"viteroad/ent/answerevent"
	"viteroad/ent/completionevent"
	"viteroad/ent/llmrequestevent"
	"viteroad/ent/practiceevent"
	"viteroad/ent/schema"
	"viteroad/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescVisitID is the schema descriptor for visit_id field.
	answereventDescVisitID := answereventFields[0].Descriptor()
	// answerevent.VisitIDValidator is a validator for the "visit_id" field. It is called by the builders before save.
	answerevent.VisitIDValidator = answereventDescVisitID.Validators[0].(func(string) error)
	// answereventDescLessonID is the schema descriptor for lesson_id field.
	answereventDescLessonID := answereventFields[1].Descriptor()
	// answerevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	answerevent.LessonIDValidator = answereventDescLessonID.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[3].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescSelected is the schema descriptor for selected field.
	answereventDescSelected := answereventFields[4].Descriptor()
	// answerevent.SelectedValidator is a validator for the "selected" field. It is called by the builders before save.
	answerevent.SelectedValidator = answereventDescSelected.Validators[0].(func(string) error)
	// answereventDescCorrectAnswer is the schema descriptor for correct_answer field.
	answereventDescCorrectAnswer := answereventFields[5].Descriptor()
	// answerevent.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	answerevent.CorrectAnswerValidator = answereventDescCorrectAnswer.Validators[0].(func(string) error)
	completioneventMixin := schema.CompletionEvent{}.Mixin()
	completioneventMixinFields0 := completioneventMixin[0].Fields()
	_ = completioneventMixinFields0
	completioneventFields := schema.CompletionEvent{}.Fields()
	_ = completioneventFields
	// completioneventDescTimestamp is the schema descriptor for timestamp field.
	completioneventDescTimestamp := completioneventMixinFields0[1].Descriptor()
	// completionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	completionevent.DefaultTimestamp = completioneventDescTimestamp.Default.(func() time.Time)
	// completioneventDescLessonID is the schema descriptor for lesson_id field.
	completioneventDescLessonID := completioneventFields[0].Descriptor()
	// completionevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	completionevent.LessonIDValidator = completioneventDescLessonID.Validators[0].(func(string) error)
	// completioneventDescSource is the schema descriptor for source field.
	completioneventDescSource := completioneventFields[1].Descriptor()
	// completionevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	completionevent.SourceValidator = completioneventDescSource.Validators[0].(func(string) error)
	// completioneventDescPoints is the schema descriptor for points field.
	completioneventDescPoints := completioneventFields[2].Descriptor()
	// completionevent.DefaultPoints holds the default value on creation for the points field.
	completionevent.DefaultPoints = completioneventDescPoints.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	practiceeventMixin := schema.PracticeEvent{}.Mixin()
	practiceeventMixinFields0 := practiceeventMixin[0].Fields()
	_ = practiceeventMixinFields0
	practiceeventFields := schema.PracticeEvent{}.Fields()
	_ = practiceeventFields
	// practiceeventDescTimestamp is the schema descriptor for timestamp field.
	practiceeventDescTimestamp := practiceeventMixinFields0[1].Descriptor()
	// practiceevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	practiceevent.DefaultTimestamp = practiceeventDescTimestamp.Default.(func() time.Time)
	// practiceeventDescVisitID is the schema descriptor for visit_id field.
	practiceeventDescVisitID := practiceeventFields[0].Descriptor()
	// practiceevent.VisitIDValidator is a validator for the "visit_id" field. It is called by the builders before save.
	practiceevent.VisitIDValidator = practiceeventDescVisitID.Validators[0].(func(string) error)
	// practiceeventDescLessonID is the schema descriptor for lesson_id field.
	practiceeventDescLessonID := practiceeventFields[1].Descriptor()
	// practiceevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	practiceevent.LessonIDValidator = practiceeventDescLessonID.Validators[0].(func(string) error)
	// practiceeventDescChallengeTitle is the schema descriptor for challenge_title field.
	practiceeventDescChallengeTitle := practiceeventFields[2].Descriptor()
	// practiceevent.ChallengeTitleValidator is a validator for the "challenge_title" field. It is called by the builders before save.
	practiceevent.ChallengeTitleValidator = practiceeventDescChallengeTitle.Validators[0].(func(string) error)
	// practiceeventDescChallengeType is the schema descriptor for challenge_type field.
	practiceeventDescChallengeType := practiceeventFields[3].Descriptor()
	// practiceevent.ChallengeTypeValidator is a validator for the "challenge_type" field. It is called by the builders before save.
	practiceevent.ChallengeTypeValidator = practiceeventDescChallengeType.Validators[0].(func(string) error)
	// practiceeventDescAction is the schema descriptor for action field.
	practiceeventDescAction := practiceeventFields[4].Descriptor()
	// practiceevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	practiceevent.ActionValidator = practiceeventDescAction.Validators[0].(func(string) error)
	// practiceeventDescEdits is the schema descriptor for edits field.
	practiceeventDescEdits := practiceeventFields[5].Descriptor()
	// practiceevent.DefaultEdits holds the default value on creation for the edits field.
	practiceevent.DefaultEdits = practiceeventDescEdits.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
