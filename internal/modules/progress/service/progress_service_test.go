package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"rightsdaily/internal/modules/progress/domain"
	"rightsdaily/internal/modules/progress/service"
	"rightsdaily/internal/platform/clock"
)

type failingStore struct {
	loaded domain.Progress
	saves  int
}

func (f *failingStore) Load(context.Context) domain.Progress { return f.loaded.Clone() }
func (f *failingStore) Save(context.Context, domain.Progress) error {
	f.saves++
	return errors.New("quota exceeded")
}

type recordingStore struct {
	saved []domain.Progress
}

func (r *recordingStore) Load(context.Context) domain.Progress {
	if len(r.saved) == 0 {
		return domain.DefaultProgress()
	}
	return r.saved[len(r.saved)-1].Clone()
}

func (r *recordingStore) Save(_ context.Context, p domain.Progress) error {
	r.saved = append(r.saved, p.Clone())
	return nil
}

type stubContent struct {
	rewards map[string]bool
	quizzes map[int]bool
	err     error
}

func (s stubContent) ArticleFor(_ context.Context, date domain.LessonDate) (domain.ArticleInfo, bool, error) {
	if s.err != nil {
		return domain.ArticleInfo{}, false, s.err
	}
	reward, ok := s.rewards[date.String()]
	return domain.ArticleInfo{Title: "Article " + date.String(), RewardDay: reward}, ok, nil
}

func (s stubContent) HasQuizFor(_ context.Context, month int) (bool, error) {
	return s.quizzes[month], s.err
}

func day(t *testing.T, raw string) domain.LessonDate {
	t.Helper()
	d, err := domain.ParseLessonDate(raw)
	if err != nil {
		t.Fatalf("parse %s: %v", raw, err)
	}
	return d
}

func at(y int, m time.Month, d int) clock.Fixed {
	return clock.Fixed(time.Date(y, m, d, 8, 30, 0, 0, time.Local))
}

func TestFailedSaveKeepsInMemoryState(t *testing.T) {
	t.Parallel()
	store := &failingStore{loaded: domain.DefaultProgress()}
	svc := service.NewProgressService(at(2024, time.January, 30), store, stubContent{rewards: map[string]bool{"2024-01-30": true}}, nil)

	opened := svc.Open(context.Background())
	if opened.CurrentStreak != 1 {
		t.Fatalf("expected streak 1 after open, got %d", opened.CurrentStreak)
	}
	done, err := svc.Complete(context.Background(), day(t, "2024-01-30"))
	if err != nil {
		t.Fatalf("complete should not surface save errors: %v", err)
	}
	if !done.After.HasReward(day(t, "2024-01-30")) || done.After.CurrentLevel != 2 {
		t.Fatalf("unexpected completion %+v", done.After)
	}
	current := svc.Current(context.Background())
	if !current.Equal(done.After) || current.CurrentStreak != 1 {
		t.Fatalf("in-memory state lost after failed save: %+v", current)
	}
	if store.saves != 2 {
		t.Fatalf("expected a save attempt per mutation, got %d", store.saves)
	}
}

func TestCompletePersistsOnlyOnChange(t *testing.T) {
	t.Parallel()
	store := &recordingStore{}
	svc := service.NewProgressService(at(2024, time.January, 5), store, nil, nil)
	if _, err := svc.Complete(context.Background(), day(t, "2024-01-05")); err != nil {
		t.Fatalf("complete: %v", err)
	}
	done, err := svc.Complete(context.Background(), day(t, "2024-01-05"))
	if err != nil {
		t.Fatalf("complete again: %v", err)
	}
	if !done.Before.Equal(done.After) {
		t.Fatalf("second completion changed state")
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected one save, got %d", len(store.saved))
	}
}

func TestCompleteUnscheduledDayRecordsWithoutReward(t *testing.T) {
	t.Parallel()
	svc := service.NewProgressService(at(2024, time.March, 3), &recordingStore{}, stubContent{}, nil)
	done, err := svc.Complete(context.Background(), day(t, "2024-03-03"))
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.Scheduled || len(done.After.EarnedRewards) != 0 || !done.After.HasCompleted(day(t, "2024-03-03")) {
		t.Fatalf("unexpected completion %+v", done)
	}
}

func TestCompleteTreatsContentErrorsAsUnscheduled(t *testing.T) {
	t.Parallel()
	store := &recordingStore{}
	svc := service.NewProgressService(at(2024, time.March, 3), store, stubContent{err: errors.New("content dir unreadable")}, nil)
	done, err := svc.Complete(context.Background(), day(t, "2024-03-03"))
	if err != nil {
		t.Fatalf("complete should not fail on content errors: %v", err)
	}
	if done.Scheduled || len(done.After.EarnedRewards) != 0 || !done.After.HasCompleted(day(t, "2024-03-03")) {
		t.Fatalf("unexpected completion %+v", done)
	}
	if len(store.saved) != 1 || !store.saved[0].HasCompleted(day(t, "2024-03-03")) {
		t.Fatalf("completion was not persisted: %+v", store.saved)
	}

	_, state, err := svc.Month(context.Background(), time.March, 2024)
	if err != nil || state != domain.QuizComingSoon {
		t.Fatalf("expected coming-soon when quiz lookup fails, got %s %v", state, err)
	}
}

func TestOpenKeepsUnsavedCompletions(t *testing.T) {
	t.Parallel()
	store := &failingStore{loaded: domain.DefaultProgress()}
	svc := service.NewProgressService(at(2024, time.January, 30), store, nil, nil)
	ctx := context.Background()

	svc.Open(ctx)
	if _, err := svc.Complete(ctx, day(t, "2024-01-30")); err != nil {
		t.Fatalf("complete: %v", err)
	}
	reopened := svc.Open(ctx)
	if !reopened.HasCompleted(day(t, "2024-01-30")) || reopened.CurrentStreak != 1 {
		t.Fatalf("reopen dropped unsaved state: %+v", reopened)
	}
}

func TestOpenReloadsFromStore(t *testing.T) {
	t.Parallel()
	last := day(t, "2024-01-05")
	stored := domain.DefaultProgress()
	stored.LastActiveDate = &last
	stored.CurrentStreak = 3
	store := &recordingStore{saved: []domain.Progress{stored}}
	svc := service.NewProgressService(at(2024, time.January, 6), store, nil, nil)
	got := svc.Open(context.Background())
	if got.CurrentStreak != 4 || got.LastActiveDate.String() != "2024-01-06" {
		t.Fatalf("unexpected open result %+v", got)
	}
	again := svc.Open(context.Background())
	if !again.Equal(got) {
		t.Fatalf("same-day reopen changed state: %+v", again)
	}
}

func TestMonthQuizStates(t *testing.T) {
	t.Parallel()
	store := &recordingStore{}
	svc := service.NewProgressService(at(2024, time.April, 30), store, stubContent{quizzes: map[int]bool{4: true}}, nil)
	ctx := context.Background()

	_, state, err := svc.Month(ctx, time.May, 2024)
	if err != nil || state != domain.QuizComingSoon {
		t.Fatalf("expected coming-soon for may, got %s %v", state, err)
	}
	_, state, err = svc.Month(ctx, time.April, 2024)
	if err != nil || state != domain.QuizLocked {
		t.Fatalf("expected locked april, got %s %v", state, err)
	}
	for d := 1; d <= 24; d++ {
		if _, err := svc.Complete(ctx, domain.LessonDate{Year: 2024, Month: time.April, Day: d}); err != nil {
			t.Fatalf("complete april %d: %v", d, err)
		}
	}
	completion, state, err := svc.Month(ctx, time.April, 2024)
	if err != nil || state != domain.QuizAvailable || completion.Completed != 24 {
		t.Fatalf("expected available april at 24/30, got %s %+v %v", state, completion, err)
	}
	if _, _, err := svc.Month(ctx, 13, 2024); err == nil {
		t.Fatalf("month 13 should fail")
	}
}

func TestResetPersistsDefaults(t *testing.T) {
	t.Parallel()
	store := &recordingStore{}
	svc := service.NewProgressService(at(2024, time.January, 30), store, stubContent{rewards: map[string]bool{"2024-01-30": true}}, nil)
	svc.Open(context.Background())
	if _, err := svc.Complete(context.Background(), day(t, "2024-01-30")); err != nil {
		t.Fatalf("complete: %v", err)
	}
	reset := svc.Reset(context.Background())
	if !reset.Equal(domain.DefaultProgress()) {
		t.Fatalf("reset should restore defaults, got %+v", reset)
	}
	if last := store.saved[len(store.saved)-1]; !last.Equal(domain.DefaultProgress()) {
		t.Fatalf("reset was not persisted: %+v", last)
	}
}

func TestJournalResolvesScheduledTitles(t *testing.T) {
	t.Parallel()
	stored := domain.DefaultProgress()
	stored.CompletedLessons = []domain.LessonDate{day(t, "2024-01-30"), day(t, "2024-01-02")}
	store := &failingStore{loaded: stored}
	svc := service.NewProgressService(at(2024, time.January, 30), store, stubContent{rewards: map[string]bool{"2024-01-30": true}}, nil)

	months, stats, err := svc.Journal(context.Background())
	if err != nil {
		t.Fatalf("journal: %v", err)
	}
	if stats.Completed != 2 || len(months) != 1 || len(months[0].Lessons) != 2 {
		t.Fatalf("unexpected journal: stats=%+v months=%+v", stats, months)
	}
	if months[0].Lessons[0].Title != "" || months[0].Lessons[1].Title != "Article 2024-01-30" {
		t.Fatalf("unexpected titles: %+v", months[0].Lessons)
	}
	if store.saves != 0 {
		t.Fatalf("journal must not persist anything")
	}

	broken := service.NewProgressService(at(2024, time.January, 30), &failingStore{loaded: stored}, stubContent{err: errors.New("disk gone")}, nil)
	months, stats, err = broken.Journal(context.Background())
	if err != nil {
		t.Fatalf("journal should not fail on content errors: %v", err)
	}
	if stats.Completed != 2 || len(months) != 1 || months[0].Lessons[0].Title != "" || months[0].Lessons[1].Title != "" {
		t.Fatalf("expected untitled lessons, got %+v", months)
	}
}
