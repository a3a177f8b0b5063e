package quiz

import (
	"testing"

	"viteroad/internal/catalog"
)

func twoQuestions() []catalog.QuizQuestion {
	return []catalog.QuizQuestion{
		{
			Question:      "Q1",
			Options:       []string{"right", "wrong"},
			CorrectAnswer: "right",
			Explanation:   "because",
		},
		{
			Question:      "Q2",
			Options:       []string{"yes", "no"},
			CorrectAnswer: "yes",
			Explanation:   "because",
		},
	}
}

func TestInitialState(t *testing.T) {
	s := New(twoQuestions())
	if s.Phase() != PhaseAwaitingAnswer {
		t.Errorf("phase = %v, want awaiting", s.Phase())
	}
	if s.Index() != 0 || s.Score() != 0 {
		t.Errorf("index=%d score=%d, want 0/0", s.Index(), s.Score())
	}
	if s.Question().Question != "Q1" {
		t.Errorf("question = %q, want Q1", s.Question().Question)
	}
}

func TestAnswerScoresAndLocks(t *testing.T) {
	s := New(twoQuestions())
	s.Answer("right")

	if s.Phase() != PhaseAnswered {
		t.Fatalf("phase = %v, want answered", s.Phase())
	}
	if !s.LastCorrect() || s.Score() != 1 {
		t.Errorf("correct=%v score=%d, want true/1", s.LastCorrect(), s.Score())
	}

	// Re-clicking after answering is ignored — no double scoring.
	s.Answer("right")
	s.Answer("wrong")
	if s.Score() != 1 {
		t.Errorf("score after repeated answers = %d, want 1", s.Score())
	}
	if s.Selected() != "right" {
		t.Errorf("selected = %q, want first selection kept", s.Selected())
	}
}

func TestAdvanceIgnoredWhileAwaiting(t *testing.T) {
	s := New(twoQuestions())
	if s.Advance() {
		t.Error("advance before answering should not complete")
	}
	if s.Index() != 0 || s.Phase() != PhaseAwaitingAnswer {
		t.Errorf("state changed: index=%d phase=%v", s.Index(), s.Phase())
	}
}

func TestFullRunScenario(t *testing.T) {
	// Answer Q1 correct, advance, answer Q2 incorrect, advance:
	// Finished, score 1, proficiency 50%.
	s := New(twoQuestions())

	s.Answer("right")
	if done := s.Advance(); done {
		t.Error("completion fired before the last question")
	}

	s.Answer("no")
	if s.LastCorrect() {
		t.Error("Q2 wrong answer reported correct")
	}
	if done := s.Advance(); !done {
		t.Error("completion should fire on finishing the last question")
	}

	if s.Phase() != PhaseFinished {
		t.Errorf("phase = %v, want finished", s.Phase())
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, want 1", s.Score())
	}
	if s.Proficiency() != 50 {
		t.Errorf("proficiency = %d%%, want 50%%", s.Proficiency())
	}
}

func TestScoreBound(t *testing.T) {
	s := New(twoQuestions())
	answers := []string{"right", "yes"}
	for i, a := range answers {
		s.Answer(a)
		if s.Score() > i+1 || s.Score() < 0 {
			t.Fatalf("score %d out of bounds after %d answers", s.Score(), i+1)
		}
		s.Advance()
	}
	if s.Score() != 2 || s.Proficiency() != 100 {
		t.Errorf("score=%d proficiency=%d, want 2/100", s.Score(), s.Proficiency())
	}
}

func TestRestartDoesNotReEmitCompletion(t *testing.T) {
	s := New(twoQuestions())
	s.Answer("right")
	s.Advance()
	s.Answer("yes")
	if !s.Advance() {
		t.Fatal("first finish should complete")
	}

	s.Restart()
	if s.Phase() != PhaseAwaitingAnswer || s.Index() != 0 || s.Score() != 0 {
		t.Errorf("restart state: phase=%v index=%d score=%d", s.Phase(), s.Index(), s.Score())
	}

	s.Answer("right")
	s.Advance()
	s.Answer("yes")
	if s.Advance() {
		t.Error("second finish must not re-emit the completion signal")
	}
}

func TestRestartOnlyFromFinished(t *testing.T) {
	s := New(twoQuestions())
	s.Answer("right")
	s.Restart()
	if s.Phase() != PhaseAnswered || s.Score() != 1 {
		t.Errorf("restart mid-quiz changed state: phase=%v score=%d", s.Phase(), s.Score())
	}
}

func TestSingleQuestionQuiz(t *testing.T) {
	s := New(twoQuestions()[:1])
	s.Answer("wrong")
	if !s.Advance() {
		t.Error("finishing a one-question quiz should complete")
	}
	if s.Proficiency() != 0 {
		t.Errorf("proficiency = %d, want 0", s.Proficiency())
	}
}
