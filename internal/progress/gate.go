package progress

import "viteroad/internal/catalog"

// Status is a lesson's derived unlock state relative to the completed set.
type Status int

const (
	StatusLocked    Status = iota // an earlier lesson is still incomplete
	StatusNext                    // the single lesson currently eligible
	StatusCompleted               // already completed
)

// Label returns the display label for a status.
func (s Status) Label() string {
	switch s {
	case StatusCompleted:
		return "Completed"
	case StatusNext:
		return "Next"
	default:
		return "Locked"
	}
}

// Classify derives each lesson's unlock status from catalog order and the
// completed set. One linear scan with a "previous satisfied" flag: the
// first incomplete lesson in catalog order is Next, everything after it is
// Locked, so at most one lesson is ever Next.
func Classify(lessons []catalog.Lesson, p Progress) map[string]Status {
	out := make(map[string]Status, len(lessons))
	prevSatisfied := true
	for _, l := range lessons {
		switch {
		case p.IsCompleted(l.ID):
			out[l.ID] = StatusCompleted
			prevSatisfied = true
		case prevSatisfied:
			out[l.ID] = StatusNext
			prevSatisfied = false
		default:
			out[l.ID] = StatusLocked
		}
	}
	return out
}

// NextLessonID returns the ID of the lesson classified Next, or "" when
// every lesson is completed (or the catalog is empty).
func NextLessonID(lessons []catalog.Lesson, p Progress) string {
	for _, l := range lessons {
		if !p.IsCompleted(l.ID) {
			return l.ID
		}
	}
	return ""
}
