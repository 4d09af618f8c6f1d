package out

import (
	"context"

	"rightsdaily/internal/modules/progress/domain"
)

// Storage is a string key/value primitive for persisted state.
type Storage interface {
	Read(ctx context.Context, key string) (string, bool, error)
	Write(ctx context.Context, key, value string) error
}

// ProgressStore loads and saves the progress record. Load never fails: an
// absent or unreadable record yields domain.DefaultProgress.
type ProgressStore interface {
	Load(ctx context.Context) domain.Progress
	Save(ctx context.Context, progress domain.Progress) error
}

// ContentLookup answers which lessons and quizzes exist.
type ContentLookup interface {
	ArticleFor(ctx context.Context, date domain.LessonDate) (domain.ArticleInfo, bool, error)
	HasQuizFor(ctx context.Context, month int) (bool, error)
}

// JournalWriter renders a progress journal note. An empty path selects the
// writer's default location; the written path is returned.
type JournalWriter interface {
	WriteJournal(ctx context.Context, path string, stats domain.Stats, months []domain.JournalMonth) (string, error)
}
