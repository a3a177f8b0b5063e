// Package progress holds the learner's mutable state: which lessons are
// completed, which lesson is active, and the points total. The state value
// is immutable — every operation returns a new Progress — and persistence
// lives behind the Service in service.go.
package progress

import "slices"

// Progress is the full learner state. A single instance exists per run,
// threaded through the orchestration layer and snapshotted after every
// accepted mutation.
type Progress struct {
	CompletedLessons []string
	CurrentLessonID  string
	Points           int
}

// Default returns the bootstrap state pointing at the first catalog lesson.
func Default(firstLessonID string) Progress {
	return Progress{
		CompletedLessons: []string{},
		CurrentLessonID:  firstLessonID,
		Points:           0,
	}
}

// IsCompleted reports whether the given lesson has been completed.
func (p Progress) IsCompleted(lessonID string) bool {
	return slices.Contains(p.CompletedLessons, lessonID)
}

// CompletedCount returns the number of completed lessons.
func (p Progress) CompletedCount() int {
	return len(p.CompletedLessons)
}

// SelectLesson returns a copy with CurrentLessonID set. The caller is
// responsible for passing a valid catalog ID.
func SelectLesson(p Progress, lessonID string) Progress {
	next := clone(p)
	next.CurrentLessonID = lessonID
	return next
}

// CompleteLesson returns a copy with the lesson recorded as completed and
// the points awarded. Idempotent: completing an already-completed lesson
// changes neither the completed set nor the points total.
func CompleteLesson(p Progress, lessonID string, awardedPoints int) Progress {
	if p.IsCompleted(lessonID) {
		return clone(p)
	}
	next := clone(p)
	next.CompletedLessons = append(next.CompletedLessons, lessonID)
	next.Points += awardedPoints
	return next
}

// clone deep-copies a Progress so callers can never alias the slice.
func clone(p Progress) Progress {
	out := p
	out.CompletedLessons = make([]string, len(p.CompletedLessons))
	copy(out.CompletedLessons, p.CompletedLessons)
	return out
}
