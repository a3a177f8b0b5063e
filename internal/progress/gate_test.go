package progress

import (
	"testing"

	"viteroad/internal/catalog"
)

func miniCatalog(ids ...string) []catalog.Lesson {
	out := make([]catalog.Lesson, len(ids))
	for i, id := range ids {
		out[i] = catalog.Lesson{ID: id, Title: id, Difficulty: catalog.Beginner, Content: "x"}
	}
	return out
}

func withCompleted(ids ...string) Progress {
	p := Default("a")
	for _, id := range ids {
		p = CompleteLesson(p, id, 250)
	}
	return p
}

func TestClassifyEmptyCompletedSet(t *testing.T) {
	lessons := miniCatalog("a", "b", "c")
	got := Classify(lessons, withCompleted())

	want := map[string]Status{"a": StatusNext, "b": StatusLocked, "c": StatusLocked}
	for id, st := range want {
		if got[id] != st {
			t.Errorf("classify[%s] = %v, want %v", id, got[id], st)
		}
	}
}

func TestClassifyMidway(t *testing.T) {
	lessons := miniCatalog("a", "b", "c")
	got := Classify(lessons, withCompleted("a"))

	if got["a"] != StatusCompleted {
		t.Errorf("a = %v, want completed", got["a"])
	}
	if got["b"] != StatusNext {
		t.Errorf("b = %v, want next", got["b"])
	}
	if got["c"] != StatusLocked {
		t.Errorf("c = %v, want locked", got["c"])
	}
}

func TestClassifyAllCompleted(t *testing.T) {
	lessons := miniCatalog("a", "b", "c")
	got := Classify(lessons, withCompleted("a", "b", "c"))

	for id, st := range got {
		if st != StatusCompleted {
			t.Errorf("%s = %v, want completed", id, st)
		}
	}
}

func TestClassifyExactlyOneNext(t *testing.T) {
	lessons := miniCatalog("a", "b", "c", "d", "e")

	// Every prefix-closed completion state yields exactly one Next,
	// except the fully completed state which yields zero.
	prefixes := [][]string{
		{}, {"a"}, {"a", "b"}, {"a", "b", "c"}, {"a", "b", "c", "d"},
		{"a", "b", "c", "d", "e"},
	}
	for _, prefix := range prefixes {
		got := Classify(lessons, withCompleted(prefix...))
		nextCount := 0
		for _, st := range got {
			if st == StatusNext {
				nextCount++
			}
		}
		wantNext := 1
		if len(prefix) == len(lessons) {
			wantNext = 0
		}
		if nextCount != wantNext {
			t.Errorf("completed=%v: next count = %d, want %d", prefix, nextCount, wantNext)
		}
	}
}

func TestNextLessonID(t *testing.T) {
	lessons := miniCatalog("a", "b", "c")

	if id := NextLessonID(lessons, withCompleted()); id != "a" {
		t.Errorf("NextLessonID = %q, want a", id)
	}
	if id := NextLessonID(lessons, withCompleted("a")); id != "b" {
		t.Errorf("NextLessonID = %q, want b", id)
	}
	if id := NextLessonID(lessons, withCompleted("a", "b", "c")); id != "" {
		t.Errorf("NextLessonID = %q, want empty", id)
	}
}

func TestClassifyAgainstSeedCatalog(t *testing.T) {
	lessons := catalog.Lessons()
	p := withCompleted(lessons[0].ID)

	got := Classify(lessons, p)
	if got[lessons[0].ID] != StatusCompleted {
		t.Errorf("first lesson should be completed")
	}
	if got[lessons[1].ID] != StatusNext {
		t.Errorf("second lesson should be next")
	}
	for _, l := range lessons[2:] {
		if got[l.ID] != StatusLocked {
			t.Errorf("%s = %v, want locked", l.ID, got[l.ID])
		}
	}
}
