package progress

import (
	"slices"
	"testing"
)

func TestDefaultBootstrap(t *testing.T) {
	p := Default("l1")
	if p.CurrentLessonID != "l1" {
		t.Errorf("CurrentLessonID = %q, want l1", p.CurrentLessonID)
	}
	if len(p.CompletedLessons) != 0 {
		t.Errorf("CompletedLessons = %v, want empty", p.CompletedLessons)
	}
	if p.Points != 0 {
		t.Errorf("Points = %d, want 0", p.Points)
	}
}

func TestSelectLesson(t *testing.T) {
	p := Default("l1")
	next := SelectLesson(p, "l3")

	if next.CurrentLessonID != "l3" {
		t.Errorf("CurrentLessonID = %q, want l3", next.CurrentLessonID)
	}
	if p.CurrentLessonID != "l1" {
		t.Errorf("original mutated: CurrentLessonID = %q", p.CurrentLessonID)
	}
}

func TestCompleteLessonAwardsOnce(t *testing.T) {
	p := Default("l1")

	once := CompleteLesson(p, "l1", 250)
	if !slices.Equal(once.CompletedLessons, []string{"l1"}) {
		t.Errorf("CompletedLessons = %v, want [l1]", once.CompletedLessons)
	}
	if once.Points != 250 {
		t.Errorf("Points = %d, want 250", once.Points)
	}

	// Completing again must not double-award.
	twice := CompleteLesson(once, "l1", 250)
	if !slices.Equal(twice.CompletedLessons, []string{"l1"}) {
		t.Errorf("CompletedLessons = %v, want [l1]", twice.CompletedLessons)
	}
	if twice.Points != 250 {
		t.Errorf("Points after double completion = %d, want 250", twice.Points)
	}
}

func TestCompleteLessonDoesNotAliasInput(t *testing.T) {
	p := Default("l1")
	a := CompleteLesson(p, "l1", 100)
	b := CompleteLesson(a, "l2", 100)

	if len(a.CompletedLessons) != 1 {
		t.Errorf("earlier value grew: %v", a.CompletedLessons)
	}
	if len(b.CompletedLessons) != 2 {
		t.Errorf("CompletedLessons = %v, want 2 entries", b.CompletedLessons)
	}
}

func TestIsCompletedAndCount(t *testing.T) {
	p := CompleteLesson(Default("l1"), "l1", 250)
	if !p.IsCompleted("l1") {
		t.Error("l1 should be completed")
	}
	if p.IsCompleted("l2") {
		t.Error("l2 should not be completed")
	}
	if p.CompletedCount() != 1 {
		t.Errorf("CompletedCount = %d, want 1", p.CompletedCount())
	}
}
