package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"rightsdaily/internal/modules/content/domain"
	contentout "rightsdaily/internal/modules/content/port/out"
)

type YAMLQuizStore struct {
	contentPath string
}

func NewYAMLQuizStore(contentPath string) contentout.QuizSource {
	return &YAMLQuizStore{contentPath: contentPath}
}

type quizFile struct {
	Month        int            `yaml:"month"`
	Title        string         `yaml:"title"`
	Description  string         `yaml:"description"`
	PassingScore *int           `yaml:"passing_score"`
	Questions    []questionFile `yaml:"questions"`
}

type questionFile struct {
	ID            int      `yaml:"id"`
	Question      string   `yaml:"question"`
	Options       []string `yaml:"options"`
	CorrectAnswer int      `yaml:"correct_answer"`
	Explanation   string   `yaml:"explanation"`
}

func (s *YAMLQuizStore) ListQuizzes(_ context.Context) ([]domain.Quiz, error) {
	dir := filepath.Join(s.contentPath, "quizzes")
	var matches []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		found, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("glob quiz files: %w", err)
		}
		matches = append(matches, found...)
	}
	sort.Strings(matches)

	out := make([]domain.Quiz, 0, len(matches))
	for _, path := range matches {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		file := quizFile{}
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("decode quiz %s: %w", path, err)
		}
		quiz := file.toDomain()
		if err := quiz.Validate(); err != nil {
			return nil, fmt.Errorf("validate quiz %s: %w", path, err)
		}
		out = append(out, quiz)
	}
	return out, nil
}

func (f quizFile) toDomain() domain.Quiz {
	quiz := domain.Quiz{
		Month:        f.Month,
		Title:        f.Title,
		Description:  f.Description,
		PassingScore: domain.DefaultPassingScore,
		Questions:    make([]domain.Question, 0, len(f.Questions)),
	}
	if f.PassingScore != nil {
		quiz.PassingScore = *f.PassingScore
	}
	for i, q := range f.Questions {
		id := q.ID
		if id == 0 {
			id = i + 1
		}
		quiz.Questions = append(quiz.Questions, domain.Question{
			ID:            id,
			Prompt:        q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}
	return quiz
}
