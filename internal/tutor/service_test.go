package tutor

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"viteroad/internal/catalog"
	"viteroad/internal/llm"
)

func validInsightJSON() json.RawMessage {
	return json.RawMessage(`{
		"headline": "HMR is module-level, not page-level",
		"body": "Vite swaps only the edited module over a websocket. CSS updates apply without losing component state because the stylesheet module accepts its own updates.",
		"key_points": [
			"import.meta.hot guards HMR-only code",
			"CSS files self-accept by default"
		]
	}`)
}

func testLesson() catalog.Lesson {
	l, err := catalog.Get("l3")
	if err != nil {
		panic(err)
	}
	return l
}

// consume polls until an insight is ready or the deadline passes.
func consume(t *testing.T, svc *Service) *Insight {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if insight, ok := svc.ConsumeInsight(); ok {
			return insight
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("no insight ready before deadline")
	return nil
}

func TestService_GeneratesInsight(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResult{JSON: validInsightJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.RequestInsight(t.Context(), InsightInput{Lesson: testLesson()})
	insight := consume(t, svc)

	if insight.LessonID != "l3" {
		t.Errorf("lesson id = %q, want l3", insight.LessonID)
	}
	if insight.Headline != "HMR is module-level, not page-level" {
		t.Errorf("headline = %q", insight.Headline)
	}
	if len(insight.KeyPoints) != 2 {
		t.Errorf("key points = %d, want 2", len(insight.KeyPoints))
	}
}

func TestService_PromptCarriesLessonContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResult{JSON: validInsightJSON()})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Insight(t.Context(), InsightInput{
		Lesson:    testLesson(),
		Completed: true,
		QuizScore: 2,
		QuizTotal: 3,
	})
	if err != nil {
		t.Fatalf("insight: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	prompt := mock.Tasks[0].Prompt
	for _, want := range []string{testLesson().Title, "already completed", "2/3"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if mock.Tasks[0].Schema != InsightSchema {
		t.Error("task should carry the insight schema")
	}
	if mock.Tasks[0].Purpose != "insight" {
		t.Errorf("purpose = %q, want insight", mock.Tasks[0].Purpose)
	}
}

func TestService_FallbackOnProviderError(t *testing.T) {
	// An exhausted mock script fails like an unreachable provider.
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	svc.RequestInsight(t.Context(), InsightInput{Lesson: testLesson()})
	insight := consume(t, svc)

	if insight.Headline != "Tutor offline" {
		t.Errorf("headline = %q, want offline fallback", insight.Headline)
	}
	if insight.LessonID != "l3" {
		t.Errorf("fallback lesson id = %q, want l3", insight.LessonID)
	}
}

func TestConsumeOnlyOnce(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResult{JSON: validInsightJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.RequestInsight(t.Context(), InsightInput{Lesson: testLesson()})
	consume(t, svc)

	if _, ok := svc.ConsumeInsight(); ok {
		t.Error("second consume should report nothing ready")
	}
}
