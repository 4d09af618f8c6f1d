package in

import (
	"context"

	"rightsdaily/internal/modules/progress/dto"
)

type Usecase interface {
	Open(ctx context.Context) (dto.StatsOutput, error)
	CompleteLesson(ctx context.Context, input dto.CompleteLessonInput) (dto.CompleteLessonOutput, error)
	IsLessonCompleted(ctx context.Context, date string) (bool, error)
	ResolveDate(ctx context.Context, date string) (dto.LessonDateOutput, error)
	MonthStatus(ctx context.Context, input dto.MonthInput) (dto.MonthStatusOutput, error)
	Calendar(ctx context.Context, input dto.MonthInput) (dto.CalendarOutput, error)
	Stats(ctx context.Context) (dto.StatsOutput, error)
	Reset(ctx context.Context) (dto.StatsOutput, error)
	ExportJournal(ctx context.Context, input dto.ExportJournalInput) (dto.ExportJournalOutput, error)
}
