package progress

import (
	"context"
	"fmt"
	"time"

	"viteroad/internal/catalog"
	"viteroad/internal/store"
)

// PointsPerLesson is the fixed award for completing any lesson.
const PointsPerLesson = 250

// keepSnapshots bounds snapshot history; only the latest matters for
// restore, the rest are kept for debugging.
const keepSnapshots = 20

// Service loads and persists learner progress. Progress values stay pure;
// the service owns the snapshot and event side effects around them.
type Service struct {
	snapshots store.SnapshotRepo
	events    store.EventRepo
	lessons   []catalog.Lesson

	// seq mirrors the sequence of the last saved snapshot so restores
	// line up with the event log.
	seq int64
}

// NewService creates a progress service over the given repositories and
// lesson catalog.
func NewService(snapshots store.SnapshotRepo, events store.EventRepo, lessons []catalog.Lesson) *Service {
	return &Service{snapshots: snapshots, events: events, lessons: lessons}
}

// Load restores progress from the latest snapshot. A missing, unreadable,
// or corrupt snapshot — and one referencing lessons no longer in the
// catalog — yields safe defaults rather than an error: stale state never
// blocks startup.
func (s *Service) Load(ctx context.Context) (Progress, error) {
	snap, err := s.snapshots.Latest(ctx)
	if err != nil || snap == nil {
		return s.defaults(), nil
	}
	s.seq = snap.Sequence

	p := Progress{
		CurrentLessonID: snap.Data.CurrentLessonID,
		Points:          snap.Data.Points,
	}
	for _, id := range snap.Data.CompletedLessons {
		if containsLesson(s.lessons, id) {
			p.CompletedLessons = append(p.CompletedLessons, id)
		}
	}
	if !containsLesson(s.lessons, p.CurrentLessonID) {
		p.CurrentLessonID = s.fallbackCurrent(p)
	}
	return p, nil
}

// Select switches the current lesson and persists the change.
func (s *Service) Select(ctx context.Context, p Progress, lessonID string) (Progress, error) {
	if !containsLesson(s.lessons, lessonID) {
		return p, fmt.Errorf("select lesson: unknown lesson %q", lessonID)
	}
	next := SelectLesson(p, lessonID)
	if err := s.save(ctx, next); err != nil {
		return p, err
	}
	return next, nil
}

// Complete marks a lesson completed, awards points, and persists the
// change with a completion event. Completing an already completed lesson
// is a no-op: no points, no event, no snapshot.
func (s *Service) Complete(ctx context.Context, p Progress, lessonID, source string) (Progress, error) {
	if !containsLesson(s.lessons, lessonID) {
		return p, fmt.Errorf("complete lesson: unknown lesson %q", lessonID)
	}
	if p.IsCompleted(lessonID) {
		return p, nil
	}

	next := CompleteLesson(p, lessonID, PointsPerLesson)
	if err := s.events.AppendCompletion(ctx, store.CompletionEventData{
		LessonID: lessonID,
		Source:   source,
		Points:   PointsPerLesson,
	}); err != nil {
		return p, fmt.Errorf("record completion: %w", err)
	}
	if err := s.save(ctx, next); err != nil {
		return p, err
	}
	return next, nil
}

// RecordAnswer appends a quiz answer to the event log.
func (s *Service) RecordAnswer(ctx context.Context, data store.AnswerEventData) error {
	return s.events.AppendAnswer(ctx, data)
}

// RecordPractice appends a sandbox verify or reset to the event log.
func (s *Service) RecordPractice(ctx context.Context, data store.PracticeEventData) error {
	return s.events.AppendPractice(ctx, data)
}

func (s *Service) save(ctx context.Context, p Progress) error {
	s.seq++
	snap := &store.Snapshot{
		Sequence:  s.seq,
		Timestamp: time.Now().UTC(),
		Data: store.SnapshotData{
			Version:          1,
			CompletedLessons: append([]string(nil), p.CompletedLessons...),
			CurrentLessonID:  p.CurrentLessonID,
			Points:           p.Points,
		},
	}
	if err := s.snapshots.Save(ctx, snap); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	if err := s.snapshots.Prune(ctx, keepSnapshots); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func (s *Service) defaults() Progress {
	if len(s.lessons) == 0 {
		return Progress{}
	}
	return Default(s.lessons[0].ID)
}

// fallbackCurrent picks a current lesson when the stored one is gone:
// the first incomplete lesson, or the first lesson overall.
func (s *Service) fallbackCurrent(p Progress) string {
	if id := NextLessonID(s.lessons, p); id != "" {
		return id
	}
	if len(s.lessons) > 0 {
		return s.lessons[0].ID
	}
	return ""
}

func containsLesson(lessons []catalog.Lesson, id string) bool {
	for _, l := range lessons {
		if l.ID == id {
			return true
		}
	}
	return false
}
