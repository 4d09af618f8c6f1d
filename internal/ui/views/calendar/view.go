package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	progressdto "rightsdaily/internal/modules/progress/dto"
	"rightsdaily/internal/ui/theme"
)

const cellWidth = 4

var weekdayHeader = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Render draws a month grid. Completed days are green, earned rewards are
// marked with '*', today is highlighted.
func Render(cal progressdto.CalendarOutput, status progressdto.MonthStatusOutput) string {
	var sb strings.Builder
	title := fmt.Sprintf("%s %d", time.Month(cal.Month), cal.Year)
	sb.WriteString(theme.Title.Render(title) + "\n")

	header := make([]string, 0, len(weekdayHeader))
	for _, d := range weekdayHeader {
		header = append(header, pad(d))
	}
	sb.WriteString(theme.Muted.Render(strings.Join(header, "")) + "\n")

	col := 0
	row := make([]string, 0, 7)
	for ; col < cal.Offset; col++ {
		row = append(row, pad(""))
	}
	for _, day := range cal.Days {
		row = append(row, cell(day))
		col++
		if col == 7 {
			sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...) + "\n")
			row = row[:0]
			col = 0
		}
	}
	if len(row) > 0 {
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...) + "\n")
	}

	if status.DaysInMonth > 0 {
		summary := fmt.Sprintf("%d/%d days (%.0f%%)", status.CompletedDays, status.DaysInMonth, status.Ratio*100)
		if status.Completed {
			summary = theme.DayDone.Render(summary + "  month completed")
		} else {
			summary = theme.Muted.Render(summary)
		}
		sb.WriteString(summary + "  quiz: " + theme.Quiz(status.QuizState).Render(status.QuizState) + "\n")
	}
	return sb.String()
}

func cell(day progressdto.CalendarDay) string {
	label := fmt.Sprintf("%d", day.Day)
	if day.RewardEarned {
		label += "*"
	}
	text := pad(label)
	switch {
	case day.Today:
		return theme.DayToday.Render(text)
	case day.RewardEarned:
		return theme.DayReward.Render(text)
	case day.Completed:
		return theme.DayDone.Render(text)
	default:
		return text
	}
}

func pad(s string) string {
	return fmt.Sprintf("%*s", cellWidth-1, s) + " "
}
