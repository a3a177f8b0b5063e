package catalog

import (
	"strings"
	"testing"
)

func TestSeedCatalogIsValid(t *testing.T) {
	if err := Validate(Lessons()); err != nil {
		t.Fatalf("seed catalog invalid: %v", err)
	}
}

func TestGetAndIndexOf(t *testing.T) {
	for i, l := range Lessons() {
		got, err := Get(l.ID)
		if err != nil {
			t.Fatalf("Get(%q): %v", l.ID, err)
		}
		if got.Title != l.Title {
			t.Errorf("Get(%q).Title = %q, want %q", l.ID, got.Title, l.Title)
		}
		if idx := IndexOf(l.ID); idx != i {
			t.Errorf("IndexOf(%q) = %d, want %d", l.ID, idx, i)
		}
	}

	if _, err := Get("nope"); err == nil {
		t.Error("Get of unknown ID should fail")
	}
	if idx := IndexOf("nope"); idx != -1 {
		t.Errorf("IndexOf unknown = %d, want -1", idx)
	}
}

func TestNextWalksCatalogOrder(t *testing.T) {
	all := Lessons()
	for i := 0; i < len(all)-1; i++ {
		next, ok := Next(all[i].ID)
		if !ok {
			t.Fatalf("Next(%q) not ok", all[i].ID)
		}
		if next.ID != all[i+1].ID {
			t.Errorf("Next(%q) = %q, want %q", all[i].ID, next.ID, all[i+1].ID)
		}
	}

	if _, ok := Next(all[len(all)-1].ID); ok {
		t.Error("Next of last lesson should not be ok")
	}
	if _, ok := Next("nope"); ok {
		t.Error("Next of unknown ID should not be ok")
	}
}

func TestValidateRejectsBadCatalogs(t *testing.T) {
	base := Lesson{
		ID:         "x1",
		Title:      "X",
		Difficulty: Beginner,
		Content:    "text",
	}

	tests := []struct {
		name    string
		mutate  func([]Lesson) []Lesson
		wantSub string
	}{
		{
			name: "duplicate ids",
			mutate: func(ls []Lesson) []Lesson {
				dup := base
				return append(ls, dup, dup)
			},
			wantSub: "duplicate lesson ID",
		},
		{
			name: "correct answer not an option",
			mutate: func(ls []Lesson) []Lesson {
				l := base
				l.Quiz = []QuizQuestion{{
					Question:      "?",
					Options:       []string{"a", "b"},
					CorrectAnswer: "c",
				}}
				return append(ls, l)
			},
			wantSub: "must match exactly one option",
		},
		{
			name: "duplicate options",
			mutate: func(ls []Lesson) []Lesson {
				l := base
				l.Quiz = []QuizQuestion{{
					Question:      "?",
					Options:       []string{"a", "a"},
					CorrectAnswer: "a",
				}}
				return append(ls, l)
			},
			wantSub: "duplicate option",
		},
		{
			name: "unknown challenge type",
			mutate: func(ls []Lesson) []Lesson {
				l := base
				l.Practice = &PracticeChallenge{Title: "t", InitialCode: "x", Type: "wasm"}
				return append(ls, l)
			},
			wantSub: "unknown type",
		},
		{
			name: "unknown difficulty",
			mutate: func(ls []Lesson) []Lesson {
				l := base
				l.Difficulty = "Impossible"
				return append(ls, l)
			},
			wantSub: "unknown difficulty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.mutate(nil))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestQuizAndPracticeAttachment(t *testing.T) {
	withQuiz, withPractice := 0, 0
	for _, l := range Lessons() {
		if l.HasQuiz() {
			withQuiz++
		}
		if l.HasPractice() {
			withPractice++
		}
	}
	if withQuiz == 0 {
		t.Error("catalog has no quizzes")
	}
	if withPractice == 0 {
		t.Error("catalog has no practice challenges")
	}
}
