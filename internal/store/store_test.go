package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version:          1,
			CompletedLessons: []string{"l1", "l2"},
			CurrentLessonID:  "l3",
			Points:           500,
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if len(snap.Data.CompletedLessons) != 2 || snap.Data.CompletedLessons[0] != "l1" {
		t.Errorf("completed lessons = %v, want [l1 l2]", snap.Data.CompletedLessons)
	}
	if snap.Data.CurrentLessonID != "l3" {
		t.Errorf("current lesson = %q, want l3", snap.Data.CurrentLessonID)
	}
	if snap.Data.Points != 500 {
		t.Errorf("points = %d, want 500", snap.Data.Points)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1, Points: (i + 1) * 250},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Points != 750 {
		t.Errorf("points = %d, want 750", snap.Data.Points)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestEventSequenceSharedAcrossTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendCompletion(ctx, CompletionEventData{
		LessonID: "l1", Source: "quiz", Points: 250,
	}); err != nil {
		t.Fatalf("append completion: %v", err)
	}
	if err := repo.AppendAnswer(ctx, AnswerEventData{
		VisitID: "visit-1", LessonID: "l1", QuestionIndex: 0, QuestionText: "q",
		Selected: "a", CorrectAnswer: "a", Correct: true,
	}); err != nil {
		t.Fatalf("append answer: %v", err)
	}
	if err := repo.AppendPractice(ctx, PracticeEventData{
		VisitID: "visit-1", LessonID: "l3", ChallengeTitle: "t", ChallengeType: "css",
		Action: "verified", Edits: 4,
	}); err != nil {
		t.Fatalf("append practice: %v", err)
	}

	recs, err := repo.QueryCompletions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query completions: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("completions = %d, want 1", len(recs))
	}
	if recs[0].Sequence != 1 {
		t.Errorf("completion sequence = %d, want 1 (first event overall)", recs[0].Sequence)
	}
}

func TestAnswerStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []bool{true, false, true, true}
	for i, correct := range answers {
		err := repo.AppendAnswer(ctx, AnswerEventData{
			VisitID: "visit-1", LessonID: "l2", QuestionIndex: i, QuestionText: "q",
			Selected: "x", CorrectAnswer: "y", Correct: correct,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.AnswerStats(ctx)
	if err != nil {
		t.Fatalf("answer stats: %v", err)
	}
	if stats.Total != 4 || stats.Correct != 3 {
		t.Errorf("stats = %+v, want total 4, correct 3", stats)
	}
}

func TestPracticeStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	actions := []string{"reset", "verified", "reset", "reset"}
	for _, a := range actions {
		err := repo.AppendPractice(ctx, PracticeEventData{
			VisitID: "visit-2", LessonID: "l7", ChallengeTitle: "t", ChallengeType: "js", Action: a,
		})
		if err != nil {
			t.Fatalf("append %s: %v", a, err)
		}
	}

	stats, err := repo.PracticeStats(ctx)
	if err != nil {
		t.Fatalf("practice stats: %v", err)
	}
	if stats.Verified != 1 || stats.Resets != 3 {
		t.Errorf("stats = %+v, want 1 verified, 3 resets", stats)
	}
}

func TestLLMStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	reqs := []LLMRequestEventData{
		{Provider: "mock", Model: "m", Purpose: "insight", InputTokens: 10, OutputTokens: 20, Success: true},
		{Provider: "mock", Model: "m", Purpose: "insight", Success: false, ErrorMessage: "boom"},
	}
	for i, r := range reqs {
		if err := repo.AppendLLMRequest(ctx, r); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.LLMStats(ctx)
	if err != nil {
		t.Fatalf("llm stats: %v", err)
	}
	if stats.Requests != 2 || stats.Failures != 1 {
		t.Errorf("stats = %+v, want 2 requests, 1 failure", stats)
	}
	if stats.InputTokens != 10 || stats.OutputTokens != 20 {
		t.Errorf("tokens = %d/%d, want 10/20", stats.InputTokens, stats.OutputTokens)
	}
}

func TestQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	reqs := []LLMRequestEventData{
		{Provider: "mock", Model: "m1", Purpose: "insight", Success: true, RequestBody: "req-1", ResponseBody: "resp-1"},
		{Provider: "mock", Model: "m2", Purpose: "insight", Success: true},
	}
	for i, r := range reqs {
		if err := repo.AppendLLMRequest(ctx, r); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Model != "m2" {
		t.Errorf("newest first: got %q, want m2", events[0].Model)
	}

	got, err := repo.GetLLMEvent(ctx, events[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.RequestBody != "req-1" || got.ResponseBody != "resp-1" {
		t.Errorf("get = %+v, want captured bodies", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing event, got %+v", missing)
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	// Check that the snapshots table exists.
	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}
