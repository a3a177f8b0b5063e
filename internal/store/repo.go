package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the learner's progress state at a point in time.
// This is the only state the app needs to restore on startup; everything
// else (quiz runs, sandbox buffers) is session-scoped and rebuilt fresh.
type SnapshotData struct {
	Version          int      `json:"version"`
	CompletedLessons []string `json:"completed_lessons"`
	CurrentLessonID  string   `json:"current_lesson_id"`
	Points           int      `json:"points"`
}

// Snapshot represents a point-in-time capture of learner progress.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// CompletionEventData captures a lesson completion.
type CompletionEventData struct {
	LessonID string
	Source   string // quiz, practice, or content
	Points   int
}

// CompletionEventRecord is a stored completion event.
type CompletionEventRecord struct {
	LessonID  string
	Source    string
	Points    int
	Sequence  int64
	Timestamp time.Time
}

// AnswerEventData captures a single quiz answer.
type AnswerEventData struct {
	VisitID       string // UUID correlating answers of one lesson visit
	LessonID      string
	QuestionIndex int
	QuestionText  string
	Selected      string
	CorrectAnswer string
	Correct       bool
}

// PracticeEventData captures an action in a code practice sandbox.
type PracticeEventData struct {
	VisitID        string // UUID correlating actions of one lesson visit
	LessonID       string
	ChallengeTitle string
	ChallengeType  string
	Action         string // verified or reset
	Edits          int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID           int
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
	Sequence     int64
	Timestamp    time.Time
}

// AnswerStats aggregates quiz answer history.
type AnswerStats struct {
	Total   int
	Correct int
}

// PracticeStats aggregates sandbox activity.
type PracticeStats struct {
	Verified int
	Resets   int
}

// LLMStats aggregates LLM request history.
type LLMStats struct {
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// LLMPurposeUsage aggregates LLM usage for one purpose.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendCompletion records a lesson completion.
	AppendCompletion(ctx context.Context, data CompletionEventData) error

	// AppendAnswer records a quiz answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendPractice records a sandbox verify or reset.
	AppendPractice(ctx context.Context, data PracticeEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryCompletions returns completion events, newest first.
	QueryCompletions(ctx context.Context, opts QueryOpts) ([]CompletionEventRecord, error)

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns a single LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// AnswerStats returns totals over the full answer history.
	AnswerStats(ctx context.Context) (AnswerStats, error)

	// PracticeStats returns totals over the full sandbox history.
	PracticeStats(ctx context.Context) (PracticeStats, error)

	// LLMStats returns totals over the full LLM request history.
	LLMStats(ctx context.Context) (LLMStats, error)

	// LLMUsageByPurpose aggregates usage per purpose, alphabetical.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates usage per model, alphabetical.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
