package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"rightsdaily/internal/bootstrap"
	"rightsdaily/internal/platform/config"
	apperrors "rightsdaily/internal/platform/errors"
	"rightsdaily/internal/platform/logging"
	calendarview "rightsdaily/internal/ui/views/calendar"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &config.Options{}

	root := &cobra.Command{
		Use:           "rightsdaily",
		Short:         "Daily human-rights lessons with streaks, levels and rewards",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.DataPath, "data", "", "data directory (default \".\", env "+config.EnvDataPath+")")
	flags.StringVar(&opts.ContentPath, "content", "", "content directory (default <data>/content, env "+config.EnvContentPath+")")
	flags.StringVar(&opts.Storage, "storage", "", "progress storage: file|sqlite (env "+config.EnvStorage+")")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level: trace|debug|info|warn|error (env "+config.EnvLogLevel+")")
	flags.StringVar(&opts.EnvFile, "env", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newOpenCmd(opts))
	root.AddCommand(newCompleteCmd(opts))
	root.AddCommand(newStatsCmd(opts))
	root.AddCommand(newLessonCmd(opts))
	root.AddCommand(newMonthCmd(opts))
	root.AddCommand(newCalendarCmd(opts))
	root.AddCommand(newQuizCmd(opts))
	root.AddCommand(newJournalCmd(opts))
	root.AddCommand(newResetCmd(opts))
	return root
}

func loadApp(opts *config.Options) (*bootstrap.App, error) {
	cfg, err := config.New(*opts)
	if err != nil {
		return nil, err
	}
	logger := logging.New("rightsdaily", cfg.LogLevel, os.Stderr)
	return bootstrap.New(cfg, logger)
}

// openApp loads the app and records an app open for today's streak.
func openApp(ctx context.Context, opts *config.Options) (*bootstrap.App, error) {
	app, err := loadApp(opts)
	if err != nil {
		return nil, err
	}
	if _, err := app.ProgressCLI.Open(ctx); err != nil {
		_ = app.Close()
		return nil, err
	}
	return app, nil
}

func newTUICmd(opts *config.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal dashboard",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			return bootstrap.RunTUI(app)
		},
	}
}

func newOpenCmd(opts *config.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Record an app open and update the streak",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			stats, err := app.ProgressCLI.Open(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "streak=%d level=%d completed=%d last_active=%s\n", stats.Streak, stats.Level, stats.Completed, stats.LastActiveDate)
			return nil
		},
	}
}

func newCompleteCmd(opts *config.Options) *cobra.Command {
	var date string
	complete := &cobra.Command{
		Use:   "complete [--date YYYY-MM-DD]",
		Short: "Mark a lesson as completed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := openApp(ctx, opts)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.ProgressCLI.CompleteLesson(ctx, date)
			if err != nil {
				return err
			}
			printCompletion(cmd, out.Date, out.AlreadyDone, out.Scheduled, out.RewardEarned, out.LevelBefore, out.LevelAfter, out.CompletedDays)
			return nil
		},
	}
	complete.Flags().StringVar(&date, "date", "", "lesson date (defaults to today)")
	return complete
}

func printCompletion(cmd *cobra.Command, date string, alreadyDone, scheduled, reward bool, levelBefore, levelAfter, completed int) {
	w := cmd.OutOrStdout()
	if alreadyDone {
		_, _ = fmt.Fprintf(w, "lesson %s already completed\n", date)
		return
	}
	_, _ = fmt.Fprintf(w, "completed %s (%d lessons total)\n", date, completed)
	if !scheduled {
		_, _ = fmt.Fprintln(w, "no lesson is scheduled for this date")
	}
	if reward {
		_, _ = fmt.Fprintln(w, "reward earned")
	}
	if levelAfter > levelBefore {
		_, _ = fmt.Fprintf(w, "level up: %d -> %d\n", levelBefore, levelAfter)
	}
}

func newStatsCmd(opts *config.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show completed lessons, streak and level",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			stats, err := app.ProgressCLI.Stats(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "completed: %d\nstreak: %d\nlevel: %d\n", stats.Completed, stats.Streak, stats.Level)
			return nil
		},
	}
}

func newLessonCmd(opts *config.Options) *cobra.Command {
	lesson := &cobra.Command{Use: "lesson", Short: "Daily lesson commands"}

	var showDate string
	show := &cobra.Command{
		Use:   "show [--date YYYY-MM-DD]",
		Short: "Show the lesson scheduled for a date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			app, err := openApp(ctx, opts)
			if err != nil {
				return err
			}
			defer app.Close()
			day, err := app.ProgressCLI.ResolveDate(ctx, showDate)
			if err != nil {
				return err
			}
			article, err := app.ContentCLI.ArticleFor(ctx, day.Month, day.Day)
			if errors.Is(err, apperrors.ErrNotFound) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no lesson scheduled for %s\n", day.Date)
				return nil
			}
			if err != nil {
				return err
			}
			done, err := app.ProgressCLI.IsLessonCompleted(ctx, day.Date)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s\n%s\n", article.Title, article.Description)
			if strings.TrimSpace(article.FullContent) != "" {
				_, _ = fmt.Fprintf(w, "\n%s\n", strings.TrimSpace(article.FullContent))
			}
			if article.ExternalLink != "" {
				_, _ = fmt.Fprintf(w, "link: %s\n", article.ExternalLink)
			}
			_, _ = fmt.Fprintf(w, "challenge: %s reward_day=%t completed=%t\n", article.ChallengeType, article.RewardDay, done)
			if done && article.RewardDay && article.RewardTitle != "" {
				_, _ = fmt.Fprintf(w, "reward: %s\n%s\n", article.RewardTitle, article.RewardMessage)
			}
			return nil
		},
	}
	show.Flags().StringVar(&showDate, "date", "", "lesson date (defaults to today)")

	var doneDate string
	done := &cobra.Command{
		Use:   "done [--date YYYY-MM-DD]",
		Short: "Report whether the lesson for a date is completed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			completed, err := app.ProgressCLI.IsLessonCompleted(context.Background(), doneDate)
			if err != nil {
				return err
			}
			label := doneDate
			if label == "" {
				label = "today"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s completed=%t\n", label, completed)
			return nil
		},
	}
	done.Flags().StringVar(&doneDate, "date", "", "lesson date (defaults to today)")

	var listMonth int
	list := &cobra.Command{
		Use:   "list [--month N]",
		Short: "List scheduled lessons",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			articles, err := app.ContentCLI.ListArticles(context.Background(), listMonth)
			if err != nil {
				return err
			}
			if len(articles) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no lessons")
				return nil
			}
			for _, a := range articles {
				marker := ""
				if a.RewardDay {
					marker = " *"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%02d-%02d\t%s%s\n", a.Month, a.Day, a.Title, marker)
			}
			return nil
		},
	}
	list.Flags().IntVar(&listMonth, "month", 0, "month 1-12 (0 lists every month)")

	lesson.AddCommand(show, done, list)
	return lesson
}

func newMonthCmd(opts *config.Options) *cobra.Command {
	var month, year int
	cmd := &cobra.Command{
		Use:   "month [--month N --year YYYY]",
		Short: "Show month completion and quiz availability",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.ProgressCLI.MonthStatus(context.Background(), month, year)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%04d-%02d completed=%d/%d (%.0f%%) month_completed=%t quiz=%s\n",
				out.Year, out.Month, out.CompletedDays, out.DaysInMonth, out.Ratio*100, out.Completed, out.QuizState)
			return nil
		},
	}
	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (defaults to the current month)")
	cmd.Flags().IntVar(&year, "year", 0, "year (defaults to the current year)")
	return cmd
}

func newCalendarCmd(opts *config.Options) *cobra.Command {
	var month, year int
	cmd := &cobra.Command{
		Use:   "calendar [--month N --year YYYY]",
		Short: "Draw the completion calendar for a month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			ctx := context.Background()
			cal, err := app.ProgressCLI.Calendar(ctx, month, year)
			if err != nil {
				return err
			}
			status, err := app.ProgressCLI.MonthStatus(ctx, cal.Month, cal.Year)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), calendarview.Render(cal, status))
			return nil
		},
	}
	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (defaults to the current month)")
	cmd.Flags().IntVar(&year, "year", 0, "year (defaults to the current year)")
	return cmd
}

func newQuizCmd(opts *config.Options) *cobra.Command {
	quiz := &cobra.Command{Use: "quiz", Short: "Monthly quiz commands"}

	var showMonth int
	show := &cobra.Command{
		Use:   "show --month N",
		Short: "Show a month's quiz questions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			ctx := context.Background()
			status, err := app.ProgressCLI.MonthStatus(ctx, showMonth, 0)
			if err != nil {
				return err
			}
			if status.QuizState != "available" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "quiz for month %d is %s\n", status.Month, status.QuizState)
				return nil
			}
			q, err := app.ContentCLI.QuizFor(ctx, status.Month)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s (pass %d%%)\n%s\n", q.Title, q.PassingScore, q.Description)
			for i, question := range q.Questions {
				_, _ = fmt.Fprintf(w, "\n%d. %s\n", i+1, question.Prompt)
				for j, option := range question.Options {
					_, _ = fmt.Fprintf(w, "   [%d] %s\n", j, option)
				}
			}
			return nil
		},
	}
	show.Flags().IntVar(&showMonth, "month", 0, "month 1-12 (defaults to the current month)")

	var gradeMonth int
	var answersRaw string
	grade := &cobra.Command{
		Use:   "grade --month N --answers 0,2,1",
		Short: "Grade answers for a month's quiz",
		RunE: func(cmd *cobra.Command, _ []string) error {
			answers, err := parseAnswers(answersRaw)
			if err != nil {
				return err
			}
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			ctx := context.Background()
			status, err := app.ProgressCLI.MonthStatus(ctx, gradeMonth, 0)
			if err != nil {
				return err
			}
			if status.QuizState != "available" {
				return fmt.Errorf("quiz for month %d is %s: %w", status.Month, status.QuizState, apperrors.ErrInvalidInput)
			}
			out, err := app.ContentCLI.GradeQuiz(ctx, status.Month, answers)
			if err != nil {
				return err
			}
			verdict := "failed"
			if out.Passed {
				verdict = "passed"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d/%d correct, score %d%% (need %d%%)\n", verdict, out.Correct, out.Total, out.Score, out.PassingScore)
			return nil
		},
	}
	grade.Flags().IntVar(&gradeMonth, "month", 0, "month 1-12 (defaults to the current month)")
	grade.Flags().StringVar(&answersRaw, "answers", "", "comma separated option indexes, one per question")

	quiz.AddCommand(show, grade)
	return quiz
}

func newJournalCmd(opts *config.Options) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "journal [--out path.md]",
		Short: "Write completed lessons into a markdown journal note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.ProgressCLI.ExportJournal(context.Background(), outPath)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "journal written: %s (%d lessons over %d months)\n", out.Path, out.Lessons, out.Months)
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "journal note path (default <data>/progress-journal.md)")
	return cmd
}

func newResetCmd(opts *config.Options) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset --yes",
		Short: "Discard all progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to reset progress without --yes")
			}
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			if _, err := app.ProgressCLI.Reset(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "progress reset")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm reset")
	return cmd
}

func parseAnswers(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("--answers is required")
	}
	parts := strings.Split(raw, ",")
	answers := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("answer %q: %w", part, apperrors.ErrInvalidInput)
		}
		answers = append(answers, n)
	}
	return answers, nil
}
