package roadmap

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"

	"viteroad/internal/catalog"
	"viteroad/internal/course"
	"viteroad/internal/progress"
	"viteroad/internal/router"
	"viteroad/internal/screens/lesson"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testState() *course.State {
	lessons := []catalog.Lesson{
		{ID: "a", Title: "Alpha", Difficulty: catalog.Beginner, Content: "a"},
		{ID: "b", Title: "Beta", Difficulty: catalog.Beginner, Content: "b"},
		{ID: "c", Title: "Gamma", Difficulty: catalog.Advanced, Content: "c"},
	}
	return &course.State{
		Ctx:      context.Background(),
		Lessons:  lessons,
		Progress: progress.Default(lessons[0].ID),
	}
}

func TestCursorStartsOnCurrentLesson(t *testing.T) {
	state := testState()
	state.Progress = progress.CompleteLesson(state.Progress, "a", progress.PointsPerLesson)
	state.Progress = progress.SelectLesson(state.Progress, "b")

	s := New(state)
	if s.cursor != 1 {
		t.Errorf("cursor = %d, want 1 (current lesson)", s.cursor)
	}
}

func TestNavigationStaysInBounds(t *testing.T) {
	state := testState()
	s := New(state)

	s.Update(keyPress('k'))
	if s.cursor != 0 {
		t.Errorf("cursor moved above the first lesson: %d", s.cursor)
	}

	for range 10 {
		s.Update(keyPress('j'))
	}
	if s.cursor != 2 {
		t.Errorf("cursor = %d, want 2 (last lesson)", s.cursor)
	}
}

func TestEnterOnLockedLessonDoesNothing(t *testing.T) {
	state := testState()
	s := New(state)
	s.cursor = 2 // locked: only "a" is unlocked initially

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("opening a locked lesson should be refused")
	}
	if state.Progress.CurrentLessonID != "a" {
		t.Errorf("current lesson changed to %q", state.Progress.CurrentLessonID)
	}
}

func TestEnterOpensUnlockedLesson(t *testing.T) {
	state := testState()
	s := New(state)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a push command for the unlocked lesson")
	}

	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if _, ok := push.Screen.(*lesson.LessonScreen); !ok {
		t.Errorf("expected a lesson screen, got %T", push.Screen)
	}
}

func TestLongMultibyteTitleStaysValidUTF8(t *testing.T) {
	// A narrow screen forces the title to be cut. Cutting by byte would
	// split the é and leave mojibake in the row.
	state := testState()
	state.Lessons[0].Title = strings.Repeat("é", 60) + " fin"

	s := New(state)
	view := s.View(50, 24)

	if !utf8.ValidString(view) {
		t.Fatal("view contains invalid UTF-8 after truncating the title")
	}
	if !strings.Contains(view, "…") {
		t.Error("truncated title should end with an ellipsis")
	}
	if strings.Contains(view, "fin") {
		t.Error("title should have been truncated")
	}
}

func TestViewMarksStatuses(t *testing.T) {
	state := testState()
	state.Progress = progress.CompleteLesson(state.Progress, "a", progress.PointsPerLesson)

	s := New(state)
	view := s.View(100, 24)

	if !strings.Contains(view, "✓") {
		t.Error("completed lesson should be marked with a check")
	}
	if !strings.Contains(view, "●") {
		t.Error("next lesson should be marked as active")
	}
	if !strings.Contains(view, "1 of 3 units complete") {
		t.Error("summary line should show completion count")
	}
}
