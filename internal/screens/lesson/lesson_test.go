package lesson

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"viteroad/internal/catalog"
	"viteroad/internal/course"
	"viteroad/internal/practice"
	"viteroad/internal/progress"
	"viteroad/internal/router"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testLessons() []catalog.Lesson {
	return []catalog.Lesson{
		{
			ID:         "a",
			Title:      "Alpha",
			Difficulty: catalog.Beginner,
			Content:    "Alpha content",
			Quiz: []catalog.QuizQuestion{
				{
					Question:      "Pick the first option",
					Options:       []string{"right", "wrong"},
					CorrectAnswer: "right",
					Explanation:   "The first option was correct.",
				},
			},
		},
		{
			ID:         "b",
			Title:      "Beta",
			Difficulty: catalog.Beginner,
			Content:    "Beta content",
			Practice: &catalog.PracticeChallenge{
				Title:       "Style the card",
				Description: "Round the corners.",
				InitialCode: ".card {}",
				Type:        catalog.ChallengeCSS,
			},
		},
		{
			ID:         "c",
			Title:      "Gamma",
			Difficulty: catalog.Intermediate,
			Content:    "Reading only",
		},
	}
}

func testState() *course.State {
	lessons := testLessons()
	return &course.State{
		Ctx:      context.Background(),
		Lessons:  lessons,
		Progress: progress.Default(lessons[0].ID),
	}
}

func lessonByID(t *testing.T, state *course.State, id string) catalog.Lesson {
	t.Helper()
	for _, l := range state.Lessons {
		if l.ID == id {
			return l
		}
	}
	t.Fatalf("lesson %q not in test catalog", id)
	return catalog.Lesson{}
}

func TestNewLandsOnActivityTab(t *testing.T) {
	state := testState()

	quizScreen := New(state, lessonByID(t, state, "a"))
	if quizScreen.tabs[quizScreen.active] != tabQuiz {
		t.Errorf("quiz lesson should open on the quiz tab, got %v", quizScreen.tabs[quizScreen.active])
	}

	practiceScreen := New(state, lessonByID(t, state, "b"))
	if practiceScreen.tabs[practiceScreen.active] != tabPractice {
		t.Errorf("practice lesson should open on the practice tab, got %v", practiceScreen.tabs[practiceScreen.active])
	}

	readScreen := New(state, lessonByID(t, state, "c"))
	if readScreen.tabs[readScreen.active] != tabLearn {
		t.Errorf("read-only lesson should open on the learn tab, got %v", readScreen.tabs[readScreen.active])
	}
	if len(readScreen.tabs) != 1 {
		t.Errorf("read-only lesson should have one tab, got %d", len(readScreen.tabs))
	}
}

func TestQuizCompletionAwardsOnce(t *testing.T) {
	state := testState()
	s := New(state, lessonByID(t, state, "a"))

	// Answer the only question correctly (cursor starts on "right").
	s.Update(specialKey(tea.KeyEnter))
	// Advance past the explanation finishes the quiz.
	s.Update(specialKey(tea.KeyEnter))

	if !state.Progress.IsCompleted("a") {
		t.Fatal("finishing the quiz should complete the lesson")
	}
	if state.Progress.Points != progress.PointsPerLesson {
		t.Errorf("points = %d, want %d", state.Progress.Points, progress.PointsPerLesson)
	}
	if !s.celebrating {
		t.Error("first completion should raise the celebration banner")
	}

	// Retry and finish again: no second award.
	s.celebrating = false
	s.Update(keyPress('r'))
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))

	if state.Progress.Points != progress.PointsPerLesson {
		t.Errorf("retry re-awarded points: %d", state.Progress.Points)
	}
	if s.celebrating {
		t.Error("retry should not celebrate again")
	}
}

func TestQuizWrongAnswerStillAdvances(t *testing.T) {
	state := testState()
	s := New(state, lessonByID(t, state, "a"))

	s.Update(keyPress('j')) // move to "wrong"
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))

	if !state.Progress.IsCompleted("a") {
		t.Error("a finished quiz completes the lesson regardless of score")
	}
	if s.quizRun.Score() != 0 {
		t.Errorf("score = %d, want 0", s.quizRun.Score())
	}
}

func TestPracticeVerifyCompletes(t *testing.T) {
	state := testState()
	s := New(state, lessonByID(t, state, "b"))

	s.Update(keyPress('v'))

	if !state.Progress.IsCompleted("b") {
		t.Fatal("verifying the challenge should complete the lesson")
	}
	if !s.sandbox.Solved() {
		t.Error("sandbox should be marked solved")
	}

	// A second verify is inert.
	s.celebrating = false
	s.Update(keyPress('v'))
	if state.Progress.Points != progress.PointsPerLesson {
		t.Errorf("second verify re-awarded points: %d", state.Progress.Points)
	}
	if s.celebrating {
		t.Error("second verify should not celebrate")
	}
}

func TestMarkCompleteOnlyForReadOnlyLessons(t *testing.T) {
	state := testState()

	readScreen := New(state, lessonByID(t, state, "c"))
	readScreen.Update(keyPress('m'))
	if !state.Progress.IsCompleted("c") {
		t.Error("m should complete a read-only lesson")
	}

	quizScreen := New(state, lessonByID(t, state, "a"))
	quizScreen.active = quizScreen.tabIndex(tabLearn)
	quizScreen.Update(keyPress('m'))
	if state.Progress.IsCompleted("a") {
		t.Error("m must not complete a lesson that has a quiz")
	}
}

func TestTabSwitchPreservesQuizState(t *testing.T) {
	state := testState()
	s := New(state, lessonByID(t, state, "a"))

	s.Update(specialKey(tea.KeyEnter)) // answer
	s.Update(specialKey(tea.KeyTab))   // to learn
	s.Update(specialKey(tea.KeyTab))   // back to quiz

	if s.tabs[s.active] != tabQuiz {
		t.Fatalf("expected to land back on quiz, got %v", s.tabs[s.active])
	}
	if s.quizRun.Score() != 1 {
		t.Errorf("tab switch lost the quiz score: %d", s.quizRun.Score())
	}
}

func TestCelebrationAdvancesToNextLesson(t *testing.T) {
	state := testState()
	s := New(state, lessonByID(t, state, "a"))

	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))
	if !s.celebrating {
		t.Fatal("expected celebration after completing the quiz")
	}

	_, cmd := s.Update(keyPress('n'))
	if cmd == nil {
		t.Fatal("expected a replace command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected a ReplaceScreenMsg, got %T", cmd())
	}
	nextScreen, ok := msg.Screen.(*LessonScreen)
	if !ok {
		t.Fatalf("expected a lesson screen, got %T", msg.Screen)
	}
	if nextScreen.lesson.ID != "b" {
		t.Errorf("next lesson = %q, want b", nextScreen.lesson.ID)
	}
	if state.Progress.CurrentLessonID != "b" {
		t.Errorf("current lesson = %q, want b", state.Progress.CurrentLessonID)
	}
}

func TestEscLeavesEditorBeforePopping(t *testing.T) {
	state := testState()
	s := New(state, lessonByID(t, state, "b"))

	s.Update(keyPress('e'))
	if !s.editor.Focused {
		t.Fatal("e should focus the editor")
	}

	handled, _ := s.HandleEsc()
	if !handled {
		t.Fatal("esc with a focused editor must be consumed by the screen")
	}
	if s.editor.Focused {
		t.Error("editor should be blurred")
	}

	handled, _ = s.HandleEsc()
	if handled {
		t.Error("esc with nothing to dismiss should fall through to the router")
	}
}

func TestEditorKeystrokesRenderPreview(t *testing.T) {
	state := testState()
	l := lessonByID(t, state, "b")
	s := New(state, l)

	// Re-seat the sandbox with a recording renderer.
	var docs []string
	s.sandbox = practice.NewSandbox(*l.Practice, func(doc string) {
		docs = append(docs, doc)
	})

	s.Update(keyPress('e'))
	s.Update(keyPress('x'))

	if len(docs) == 0 {
		t.Fatal("typing in the editor should re-render the preview")
	}
	if !strings.Contains(docs[len(docs)-1], "x") {
		t.Errorf("rendered document missing the typed character: %q", docs[len(docs)-1])
	}
	if s.edits == 0 {
		t.Error("edit counter should advance")
	}
}

func TestViewShowsQuizQuestion(t *testing.T) {
	state := testState()
	s := New(state, lessonByID(t, state, "a"))

	view := s.View(100, 30)
	if !strings.Contains(view, "Pick the first option") {
		t.Error("quiz view should show the question text")
	}
	if !strings.Contains(view, "right") || !strings.Contains(view, "wrong") {
		t.Error("quiz view should list the options")
	}
}

func TestViewShowsProficiencyWhenFinished(t *testing.T) {
	state := testState()
	s := New(state, lessonByID(t, state, "a"))

	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))
	s.celebrating = false

	view := s.View(100, 30)
	if !strings.Contains(view, "Proficiency: 100%") {
		t.Errorf("finished view should show proficiency, got:\n%s", view)
	}
}
