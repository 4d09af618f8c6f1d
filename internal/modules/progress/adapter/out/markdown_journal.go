package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"rightsdaily/internal/modules/progress/domain"
	progressout "rightsdaily/internal/modules/progress/port/out"
	"rightsdaily/internal/platform/clock"
	"rightsdaily/internal/platform/markdown"
)

var journalBlock = markdown.Block{
	Start: "<!-- rightsdaily:journal:start -->",
	End:   "<!-- rightsdaily:journal:end -->",
}

// MarkdownJournal writes progress into a markdown note. Stats live in the
// frontmatter and the lesson list in a managed block; anything else the
// learner writes in the note is kept.
type MarkdownJournal struct {
	defaultPath string
	clock       clock.Clock
}

func NewMarkdownJournal(defaultPath string, clk clock.Clock) progressout.JournalWriter {
	if clk == nil {
		clk = clock.SystemClock{}
	}
	return &MarkdownJournal{defaultPath: defaultPath, clock: clk}
}

func (j *MarkdownJournal) WriteJournal(_ context.Context, path string, stats domain.Stats, months []domain.JournalMonth) (string, error) {
	if path == "" {
		path = j.defaultPath
	}
	meta := markdown.Frontmatter{}
	body := "# Human rights journal\n\nNotes outside the generated block are kept.\n"
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		meta, body, err = markdown.Split(string(existing))
		if err != nil {
			return "", fmt.Errorf("parse %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	meta["completed_lessons"] = stats.Completed
	meta["current_streak"] = stats.Streak
	meta["current_level"] = stats.Level
	meta["updated_at"] = j.clock.Now().Format("2006-01-02T15:04:05Z07:00")
	body = journalBlock.Replace(body, renderJournal(months))

	rendered, err := markdown.Render(meta, body)
	if err != nil {
		return "", err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create journal dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write journal note: %w", err)
	}
	return path, nil
}

func renderJournal(months []domain.JournalMonth) string {
	if len(months) == 0 {
		return "_No lessons completed yet._"
	}
	var sb strings.Builder
	for i, m := range months {
		if i > 0 {
			sb.WriteString("\n")
		}
		status := ""
		if m.Completion.Done() {
			status = " (month completed)"
		}
		sb.WriteString(fmt.Sprintf("## %s %d: %d/%d days%s\n\n", m.Month, m.Year, m.Completion.Completed, m.Completion.Days, status))
		for _, lesson := range m.Lessons {
			line := "- [x] " + lesson.Date.String()
			if lesson.Title != "" {
				line += " " + lesson.Title
			}
			if lesson.Reward {
				line += " (reward)"
			}
			sb.WriteString(line + "\n")
		}
	}
	return sb.String()
}
