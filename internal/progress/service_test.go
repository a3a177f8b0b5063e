package progress

import (
	"context"
	"fmt"
	"testing"

	"viteroad/internal/catalog"
	"viteroad/internal/store"
)

// fakeSnapshotRepo keeps snapshots in memory, newest last.
type fakeSnapshotRepo struct {
	snaps     []*store.Snapshot
	saveErr   error
	latestErr error
}

func (f *fakeSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.snaps = append(f.snaps, snap)
	return nil
}

func (f *fakeSnapshotRepo) Latest(context.Context) (*store.Snapshot, error) {
	if f.latestErr != nil {
		return nil, f.latestErr
	}
	if len(f.snaps) == 0 {
		return nil, nil
	}
	return f.snaps[len(f.snaps)-1], nil
}

func (f *fakeSnapshotRepo) Prune(_ context.Context, keep int) error {
	if len(f.snaps) > keep {
		f.snaps = f.snaps[len(f.snaps)-keep:]
	}
	return nil
}

// fakeEventRepo records appended events.
type fakeEventRepo struct {
	completions []store.CompletionEventData
	answers     []store.AnswerEventData
	practices   []store.PracticeEventData
}

func (f *fakeEventRepo) AppendCompletion(_ context.Context, d store.CompletionEventData) error {
	f.completions = append(f.completions, d)
	return nil
}

func (f *fakeEventRepo) AppendAnswer(_ context.Context, d store.AnswerEventData) error {
	f.answers = append(f.answers, d)
	return nil
}

func (f *fakeEventRepo) AppendPractice(_ context.Context, d store.PracticeEventData) error {
	f.practices = append(f.practices, d)
	return nil
}

func (f *fakeEventRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}

func (f *fakeEventRepo) QueryCompletions(context.Context, store.QueryOpts) ([]store.CompletionEventRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) GetLLMEvent(context.Context, int) (*store.LLMRequestEventRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) AnswerStats(context.Context) (store.AnswerStats, error) {
	return store.AnswerStats{}, nil
}

func (f *fakeEventRepo) PracticeStats(context.Context) (store.PracticeStats, error) {
	return store.PracticeStats{}, nil
}

func (f *fakeEventRepo) LLMStats(context.Context) (store.LLMStats, error) {
	return store.LLMStats{}, nil
}

func (f *fakeEventRepo) LLMUsageByPurpose(context.Context) ([]store.LLMPurposeUsage, error) {
	return nil, nil
}

func (f *fakeEventRepo) LLMUsageByModel(context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func serviceCatalog() []catalog.Lesson {
	return []catalog.Lesson{
		{ID: "a", Title: "A", Difficulty: catalog.Beginner, Content: "x"},
		{ID: "b", Title: "B", Difficulty: catalog.Beginner, Content: "x"},
		{ID: "c", Title: "C", Difficulty: catalog.Intermediate, Content: "x"},
	}
}

func newTestService() (*Service, *fakeSnapshotRepo, *fakeEventRepo) {
	snaps := &fakeSnapshotRepo{}
	events := &fakeEventRepo{}
	return NewService(snaps, events, serviceCatalog()), snaps, events
}

func TestLoadWithoutSnapshotReturnsDefaults(t *testing.T) {
	svc, _, _ := newTestService()

	p, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.CurrentLessonID != "a" {
		t.Errorf("current = %q, want first lesson", p.CurrentLessonID)
	}
	if p.Points != 0 || len(p.CompletedLessons) != 0 {
		t.Errorf("fresh progress = %+v, want empty", p)
	}
}

func TestLoadCorruptSnapshotFallsBackToDefaults(t *testing.T) {
	// A snapshot whose stored data no longer unmarshals surfaces as an
	// error from the repo. That must degrade to fresh defaults, never
	// abort startup.
	svc, snaps, _ := newTestService()
	snaps.latestErr = fmt.Errorf("unmarshal snapshot data: invalid character 'x'")

	p, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("load with corrupt snapshot must not fail: %v", err)
	}
	if p.CurrentLessonID != "a" {
		t.Errorf("current = %q, want first lesson", p.CurrentLessonID)
	}
	if p.Points != 0 || len(p.CompletedLessons) != 0 {
		t.Errorf("progress = %+v, want defaults", p)
	}
}

func TestLoadRestoresSnapshot(t *testing.T) {
	svc, snaps, _ := newTestService()
	snaps.snaps = append(snaps.snaps, &store.Snapshot{
		Sequence: 9,
		Data: store.SnapshotData{
			Version:          1,
			CompletedLessons: []string{"a", "b"},
			CurrentLessonID:  "c",
			Points:           500,
		},
	})

	p, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.CurrentLessonID != "c" || p.Points != 500 || len(p.CompletedLessons) != 2 {
		t.Errorf("restored progress = %+v", p)
	}
}

func TestLoadDropsUnknownLessons(t *testing.T) {
	// Catalog shrank since the snapshot was written: unknown completed
	// ids are dropped and an unknown current falls back to the first
	// incomplete lesson.
	svc, snaps, _ := newTestService()
	snaps.snaps = append(snaps.snaps, &store.Snapshot{
		Data: store.SnapshotData{
			Version:          1,
			CompletedLessons: []string{"a", "gone"},
			CurrentLessonID:  "also-gone",
			Points:           500,
		},
	})

	p, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(p.CompletedLessons) != 1 || p.CompletedLessons[0] != "a" {
		t.Errorf("completed = %v, want [a]", p.CompletedLessons)
	}
	if p.CurrentLessonID != "b" {
		t.Errorf("current = %q, want first incomplete (b)", p.CurrentLessonID)
	}
	if p.Points != 500 {
		t.Errorf("points = %d, want preserved 500", p.Points)
	}
}

func TestSelectPersists(t *testing.T) {
	svc, snaps, _ := newTestService()
	p, _ := svc.Load(context.Background())

	p, err := svc.Select(context.Background(), p, "b")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if p.CurrentLessonID != "b" {
		t.Errorf("current = %q, want b", p.CurrentLessonID)
	}
	if len(snaps.snaps) != 1 {
		t.Fatalf("snapshots = %d, want 1", len(snaps.snaps))
	}
	if snaps.snaps[0].Data.CurrentLessonID != "b" {
		t.Errorf("persisted current = %q, want b", snaps.snaps[0].Data.CurrentLessonID)
	}
}

func TestSelectUnknownLesson(t *testing.T) {
	svc, snaps, _ := newTestService()
	p, _ := svc.Load(context.Background())

	if _, err := svc.Select(context.Background(), p, "nope"); err == nil {
		t.Error("expected error for unknown lesson")
	}
	if len(snaps.snaps) != 0 {
		t.Error("failed select must not persist")
	}
}

func TestCompleteAwardsAndRecords(t *testing.T) {
	svc, snaps, events := newTestService()
	p, _ := svc.Load(context.Background())

	p, err := svc.Complete(context.Background(), p, "a", "quiz")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if p.Points != PointsPerLesson {
		t.Errorf("points = %d, want %d", p.Points, PointsPerLesson)
	}
	if !p.IsCompleted("a") {
		t.Error("lesson a should be completed")
	}
	if len(events.completions) != 1 {
		t.Fatalf("completion events = %d, want 1", len(events.completions))
	}
	got := events.completions[0]
	if got.LessonID != "a" || got.Source != "quiz" || got.Points != PointsPerLesson {
		t.Errorf("completion event = %+v", got)
	}
	if len(snaps.snaps) != 1 {
		t.Errorf("snapshots = %d, want 1", len(snaps.snaps))
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	svc, snaps, events := newTestService()
	p, _ := svc.Load(context.Background())

	p, _ = svc.Complete(context.Background(), p, "a", "quiz")
	p, err := svc.Complete(context.Background(), p, "a", "practice")
	if err != nil {
		t.Fatalf("second complete: %v", err)
	}
	if p.Points != PointsPerLesson {
		t.Errorf("points = %d, want single award %d", p.Points, PointsPerLesson)
	}
	if len(events.completions) != 1 {
		t.Errorf("completion events = %d, want 1", len(events.completions))
	}
	if len(snaps.snaps) != 1 {
		t.Errorf("snapshots = %d, want 1 (no-op must not snapshot)", len(snaps.snaps))
	}
}

func TestSaveFailureLeavesProgressUnchanged(t *testing.T) {
	svc, snaps, _ := newTestService()
	p, _ := svc.Load(context.Background())
	snaps.saveErr = context.DeadlineExceeded

	got, err := svc.Select(context.Background(), p, "b")
	if err == nil {
		t.Fatal("expected save error")
	}
	if got.CurrentLessonID != p.CurrentLessonID {
		t.Errorf("progress changed despite failed save: %+v", got)
	}
}

func TestSequenceAdvancesAcrossSaves(t *testing.T) {
	svc, snaps, _ := newTestService()
	p, _ := svc.Load(context.Background())

	p, _ = svc.Select(context.Background(), p, "b")
	p, _ = svc.Complete(context.Background(), p, "b", "quiz")

	if len(snaps.snaps) != 2 {
		t.Fatalf("snapshots = %d, want 2", len(snaps.snaps))
	}
	if snaps.snaps[0].Sequence >= snaps.snaps[1].Sequence {
		t.Errorf("sequences not increasing: %d then %d",
			snaps.snaps[0].Sequence, snaps.snaps[1].Sequence)
	}
}
