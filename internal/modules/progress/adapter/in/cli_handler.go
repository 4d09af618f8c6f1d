package in

import (
	"context"

	"rightsdaily/internal/modules/progress/dto"
	progressin "rightsdaily/internal/modules/progress/port/in"
)

type CLIHandler struct {
	usecase progressin.Usecase
}

func NewCLIHandler(usecase progressin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Open(ctx context.Context) (dto.StatsOutput, error) {
	return h.usecase.Open(ctx)
}

func (h CLIHandler) CompleteLesson(ctx context.Context, date string) (dto.CompleteLessonOutput, error) {
	return h.usecase.CompleteLesson(ctx, dto.CompleteLessonInput{Date: date})
}

func (h CLIHandler) IsLessonCompleted(ctx context.Context, date string) (bool, error) {
	return h.usecase.IsLessonCompleted(ctx, date)
}

// ResolveDate validates date against the app clock; empty means today.
func (h CLIHandler) ResolveDate(ctx context.Context, date string) (dto.LessonDateOutput, error) {
	return h.usecase.ResolveDate(ctx, date)
}

func (h CLIHandler) MonthStatus(ctx context.Context, month, year int) (dto.MonthStatusOutput, error) {
	return h.usecase.MonthStatus(ctx, dto.MonthInput{Month: month, Year: year})
}

func (h CLIHandler) Calendar(ctx context.Context, month, year int) (dto.CalendarOutput, error) {
	return h.usecase.Calendar(ctx, dto.MonthInput{Month: month, Year: year})
}

func (h CLIHandler) Stats(ctx context.Context) (dto.StatsOutput, error) {
	return h.usecase.Stats(ctx)
}

func (h CLIHandler) Reset(ctx context.Context) (dto.StatsOutput, error) {
	return h.usecase.Reset(ctx)
}

func (h CLIHandler) ExportJournal(ctx context.Context, path string) (dto.ExportJournalOutput, error) {
	return h.usecase.ExportJournal(ctx, dto.ExportJournalInput{Path: path})
}
