package dashboard

import (
	"fmt"
	"strings"

	contentdto "rightsdaily/internal/modules/content/dto"
	progressdto "rightsdaily/internal/modules/progress/dto"
	"rightsdaily/internal/ui/theme"
)

// Lesson is today's article, or nothing when no lesson is scheduled.
type Lesson struct {
	Article   contentdto.ArticleOutput
	Scheduled bool
	Done      bool
}

func Render(stats progressdto.StatsOutput, lesson Lesson, width int) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Progress") + "\n")
	sb.WriteString(fmt.Sprintf("Streak  %s\n", theme.Hot.Render(fmt.Sprintf("%d day(s)", stats.Streak))))
	sb.WriteString(fmt.Sprintf("Level   %d\n", stats.Level))
	sb.WriteString(fmt.Sprintf("Lessons %d completed\n", stats.Completed))
	sb.WriteString("\n" + theme.Title.Render("Today") + "\n")

	if !lesson.Scheduled {
		sb.WriteString(theme.Muted.Render("No lesson scheduled for today.") + "\n")
		return sb.String()
	}
	a := lesson.Article
	sb.WriteString(a.Title + "\n")
	if a.Description != "" {
		sb.WriteString(theme.Muted.Width(max(width-4, 20)).Render(a.Description) + "\n")
	}
	if a.FullContent != "" {
		sb.WriteString("\n" + a.FullContent + "\n")
	}
	if a.ExternalLink != "" {
		sb.WriteString(theme.Muted.Render(a.ExternalLink) + "\n")
	}
	sb.WriteString(theme.Muted.Render("challenge: "+a.ChallengeType) + "\n")
	switch {
	case lesson.Done && a.RewardDay && a.RewardTitle != "":
		sb.WriteString(theme.DayReward.Render(a.RewardTitle) + "\n")
		if a.RewardMessage != "" {
			sb.WriteString(a.RewardMessage + "\n")
		}
	case lesson.Done:
		sb.WriteString(theme.DayDone.Render("Completed") + "\n")
	case a.RewardDay:
		sb.WriteString(theme.DayReward.Render("Reward day: complete this lesson to earn a reward") + "\n")
	}
	return sb.String()
}
