// Code generated by ent, DO NOT EDIT.

package practiceevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the practiceevent type in the database.
	Label = "practice_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldVisitID holds the string denoting the visit_id field in the database.
	FieldVisitID = "visit_id"
	// FieldLessonID holds the string denoting the lesson_id field in the database.
	FieldLessonID = "lesson_id"
	// FieldChallengeTitle holds the string denoting the challenge_title field in the database.
	FieldChallengeTitle = "challenge_title"
	// FieldChallengeType holds the string denoting the challenge_type field in the database.
	FieldChallengeType = "challenge_type"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldEdits holds the string denoting the edits field in the database.
	FieldEdits = "edits"
	// Table holds the table name of the practiceevent in the database.
	Table = "practice_events"
)

// Columns holds all SQL columns for practiceevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldVisitID,
	FieldLessonID,
	FieldChallengeTitle,
	FieldChallengeType,
	FieldAction,
	FieldEdits,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// VisitIDValidator is a validator for the "visit_id" field. It is called by the builders before save.
	VisitIDValidator func(string) error
	// LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	LessonIDValidator func(string) error
	// ChallengeTitleValidator is a validator for the "challenge_title" field. It is called by the builders before save.
	ChallengeTitleValidator func(string) error
	// ChallengeTypeValidator is a validator for the "challenge_type" field. It is called by the builders before save.
	ChallengeTypeValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultEdits holds the default value on creation for the "edits" field.
	DefaultEdits int
)

// OrderOption defines the ordering options for the PracticeEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByVisitID orders the results by the visit_id field.
func ByVisitID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisitID, opts...).ToFunc()
}

// ByLessonID orders the results by the lesson_id field.
func ByLessonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonID, opts...).ToFunc()
}

// ByChallengeTitle orders the results by the challenge_title field.
func ByChallengeTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChallengeTitle, opts...).ToFunc()
}

// ByChallengeType orders the results by the challenge_type field.
func ByChallengeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChallengeType, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByEdits orders the results by the edits field.
func ByEdits(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEdits, opts...).ToFunc()
}
