package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rightsdaily/internal/modules/progress/domain"
	"rightsdaily/internal/modules/progress/dto"
	progressin "rightsdaily/internal/modules/progress/port/in"
	progressout "rightsdaily/internal/modules/progress/port/out"
	"rightsdaily/internal/modules/progress/service"
	apperrors "rightsdaily/internal/platform/errors"
)

type Interactor struct {
	svc     *service.ProgressService
	journal progressout.JournalWriter
}

func NewInteractor(svc *service.ProgressService, journal progressout.JournalWriter) progressin.Usecase {
	return &Interactor{svc: svc, journal: journal}
}

func (i *Interactor) Open(ctx context.Context) (dto.StatsOutput, error) {
	return toStats(i.svc.Open(ctx)), nil
}

func (i *Interactor) CompleteLesson(ctx context.Context, input dto.CompleteLessonInput) (dto.CompleteLessonOutput, error) {
	date, err := i.dateOrToday(input.Date)
	if err != nil {
		return dto.CompleteLessonOutput{}, err
	}
	done, err := i.svc.Complete(ctx, date)
	if err != nil {
		return dto.CompleteLessonOutput{}, err
	}
	return dto.CompleteLessonOutput{
		Date:          date.String(),
		AlreadyDone:   done.Before.HasCompleted(date),
		Scheduled:     done.Scheduled,
		RewardEarned:  !done.Before.HasReward(date) && done.After.HasReward(date),
		LevelBefore:   done.Before.CurrentLevel,
		LevelAfter:    done.After.CurrentLevel,
		CompletedDays: len(done.After.CompletedLessons),
	}, nil
}

func (i *Interactor) IsLessonCompleted(ctx context.Context, date string) (bool, error) {
	d, err := i.dateOrToday(date)
	if err != nil {
		return false, err
	}
	return i.svc.IsCompleted(ctx, d), nil
}

func (i *Interactor) ResolveDate(_ context.Context, date string) (dto.LessonDateOutput, error) {
	d, err := i.dateOrToday(date)
	if err != nil {
		return dto.LessonDateOutput{}, err
	}
	return dto.LessonDateOutput{Date: d.String(), Year: d.Year, Month: int(d.Month), Day: d.Day}, nil
}

func (i *Interactor) MonthStatus(ctx context.Context, input dto.MonthInput) (dto.MonthStatusOutput, error) {
	month, year := i.monthOrCurrent(input)
	completion, quiz, err := i.svc.Month(ctx, month, year)
	if err != nil {
		return dto.MonthStatusOutput{}, err
	}
	return dto.MonthStatusOutput{
		Month:         int(month),
		Year:          year,
		CompletedDays: completion.Completed,
		DaysInMonth:   completion.Days,
		Ratio:         completion.Ratio,
		Completed:     completion.Done(),
		QuizState:     string(quiz),
	}, nil
}

func (i *Interactor) Calendar(ctx context.Context, input dto.MonthInput) (dto.CalendarOutput, error) {
	month, year := i.monthOrCurrent(input)
	if month < time.January || month > time.December {
		return dto.CalendarOutput{}, fmt.Errorf("%w: month %d", apperrors.ErrInvalidInput, month)
	}
	progress := i.svc.Current(ctx)
	today := i.svc.Today()
	first := domain.LessonDate{Year: year, Month: month, Day: 1}
	out := dto.CalendarOutput{
		Month:  int(month),
		Year:   year,
		Offset: int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()),
	}
	for n := 0; n < domain.DaysInMonth(year, month); n++ {
		d := first.AddDays(n)
		out.Days = append(out.Days, dto.CalendarDay{
			Date:         d.String(),
			Day:          d.Day,
			Completed:    progress.HasCompleted(d),
			RewardEarned: progress.HasReward(d),
			Today:        d == today,
		})
	}
	return out, nil
}

func (i *Interactor) Stats(ctx context.Context) (dto.StatsOutput, error) {
	return toStats(i.svc.Current(ctx)), nil
}

func (i *Interactor) Reset(ctx context.Context) (dto.StatsOutput, error) {
	return toStats(i.svc.Reset(ctx)), nil
}

func (i *Interactor) ExportJournal(ctx context.Context, input dto.ExportJournalInput) (dto.ExportJournalOutput, error) {
	if i.journal == nil {
		return dto.ExportJournalOutput{}, fmt.Errorf("%w: journal export is not configured", apperrors.ErrInvalidInput)
	}
	months, stats, err := i.svc.Journal(ctx)
	if err != nil {
		return dto.ExportJournalOutput{}, err
	}
	path, err := i.journal.WriteJournal(ctx, strings.TrimSpace(input.Path), stats, months)
	if err != nil {
		return dto.ExportJournalOutput{}, fmt.Errorf("write journal: %w", err)
	}
	out := dto.ExportJournalOutput{Path: path, Months: len(months)}
	for _, m := range months {
		out.Lessons += len(m.Lessons)
	}
	return out, nil
}

func (i *Interactor) dateOrToday(raw string) (domain.LessonDate, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return i.svc.Today(), nil
	}
	return domain.ParseLessonDate(raw)
}

func (i *Interactor) monthOrCurrent(input dto.MonthInput) (time.Month, int) {
	today := i.svc.Today()
	month, year := time.Month(input.Month), input.Year
	if input.Month == 0 {
		month = today.Month
	}
	if year == 0 {
		year = today.Year
	}
	return month, year
}

func toStats(p domain.Progress) dto.StatsOutput {
	stats := domain.StatsOf(p)
	out := dto.StatsOutput{Completed: stats.Completed, Streak: stats.Streak, Level: stats.Level}
	if p.LastActiveDate != nil {
		out.LastActiveDate = p.LastActiveDate.String()
	}
	return out
}
