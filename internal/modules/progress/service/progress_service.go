package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	"rightsdaily/internal/modules/progress/domain"
	progressout "rightsdaily/internal/modules/progress/port/out"
	"rightsdaily/internal/platform/clock"
	apperrors "rightsdaily/internal/platform/errors"
	"rightsdaily/internal/platform/logging"
)

// ProgressService owns the single in-memory progress record of the running
// process. Every mutation is persisted; a failed save is logged and the
// in-memory record stays authoritative until the next successful save.
type ProgressService struct {
	clock   clock.Clock
	store   progressout.ProgressStore
	content progressout.ContentLookup
	logger  hclog.Logger

	mu      sync.Mutex
	current *domain.Progress
}

type Completion struct {
	Date      domain.LessonDate
	Before    domain.Progress
	After     domain.Progress
	Scheduled bool
}

func NewProgressService(clock clock.Clock, store progressout.ProgressStore, content progressout.ContentLookup, logger hclog.Logger) *ProgressService {
	return &ProgressService{
		clock:   clock,
		store:   store,
		content: content,
		logger:  logging.OrDiscard(logger).Named("progress"),
	}
}

func (s *ProgressService) Today() domain.LessonDate {
	return domain.LessonDateOf(s.clock.Now())
}

// Open applies today's app open to the record. The store is read only on the
// first call; later opens reuse the in-memory record so a failed save does
// not roll anything back.
func (s *ProgressService) Open(ctx context.Context) domain.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	today := s.Today()
	next := domain.ReconcileStreakOnOpen(s.snapshot(ctx), today)
	s.logger.Debug("app opened", "today", today.String(), "streak", next.CurrentStreak)
	s.commit(ctx, next)
	return next.Clone()
}

func (s *ProgressService) Current(ctx context.Context) domain.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(ctx).Clone()
}

// Complete records date. An unreadable content source counts as an
// unscheduled day: the date is recorded without a reward.
func (s *ProgressService) Complete(ctx context.Context, date domain.LessonDate) (Completion, error) {
	var article *domain.ArticleInfo
	if info, found := s.articleFor(ctx, date); found {
		article = &info
	}
	scheduled := article != nil

	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.snapshot(ctx)
	after := domain.CompleteLesson(before, date, article)
	if !before.Equal(after) {
		s.logger.Info("lesson completed", "date", date.String(), "reward", article != nil && article.RewardDay, "level", after.CurrentLevel)
		s.commit(ctx, after)
	}
	return Completion{Date: date, Before: before.Clone(), After: after.Clone(), Scheduled: scheduled}, nil
}

func (s *ProgressService) IsCompleted(ctx context.Context, date domain.LessonDate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(ctx).HasCompleted(date)
}

func (s *ProgressService) Month(ctx context.Context, month time.Month, year int) (domain.MonthCompletion, domain.QuizState, error) {
	if month < time.January || month > time.December {
		return domain.MonthCompletion{}, "", fmt.Errorf("%w: month %d", apperrors.ErrInvalidInput, month)
	}
	s.mu.Lock()
	completion := domain.CompletionForMonth(month, year, s.snapshot(ctx).CompletedLessons)
	s.mu.Unlock()

	hasQuiz := false
	if s.content != nil {
		var err error
		if hasQuiz, err = s.content.HasQuizFor(ctx, int(month)); err != nil {
			s.logger.Warn("quiz lookup failed, treating month as without quiz", "month", int(month), "error", err)
			hasQuiz = false
		}
	}
	return completion, domain.QuizStateFor(hasQuiz, completion.Done()), nil
}

// Journal groups the completed lessons by month and resolves their titles.
func (s *ProgressService) Journal(ctx context.Context) ([]domain.JournalMonth, domain.Stats, error) {
	s.mu.Lock()
	current := s.snapshot(ctx).Clone()
	s.mu.Unlock()

	titles := make(map[domain.LessonDate]string, len(current.CompletedLessons))
	for _, date := range current.CompletedLessons {
		if info, found := s.articleFor(ctx, date); found {
			titles[date] = info.Title
		}
	}
	return domain.Journal(current, titles), domain.StatsOf(current), nil
}

func (s *ProgressService) Reset(ctx context.Context) domain.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := domain.DefaultProgress()
	s.logger.Info("progress reset")
	s.commit(ctx, next)
	return next.Clone()
}

// articleFor reports a content lookup failure as "no article" after logging it.
func (s *ProgressService) articleFor(ctx context.Context, date domain.LessonDate) (domain.ArticleInfo, bool) {
	if s.content == nil {
		return domain.ArticleInfo{}, false
	}
	info, found, err := s.content.ArticleFor(ctx, date)
	if err != nil {
		s.logger.Warn("article lookup failed, treating day as unscheduled", "date", date.String(), "error", err)
		return domain.ArticleInfo{}, false
	}
	return info, found
}

func (s *ProgressService) snapshot(ctx context.Context) domain.Progress {
	if s.current == nil {
		loaded := s.store.Load(ctx)
		s.current = &loaded
	}
	return *s.current
}

func (s *ProgressService) commit(ctx context.Context, next domain.Progress) {
	s.current = &next
	if err := s.store.Save(ctx, next); err != nil {
		s.logger.Error("save progress", "error", err)
	}
}
