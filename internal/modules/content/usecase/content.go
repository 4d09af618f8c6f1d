package usecase

import (
	"context"
	"fmt"

	"rightsdaily/internal/modules/content/domain"
	"rightsdaily/internal/modules/content/dto"
	contentin "rightsdaily/internal/modules/content/port/in"
	"rightsdaily/internal/modules/content/service"
	apperrors "rightsdaily/internal/platform/errors"
)

type Interactor struct {
	svc *service.ContentService
}

func NewInteractor(svc *service.ContentService) contentin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ArticleFor(ctx context.Context, input dto.ArticleInput) (dto.ArticleOutput, error) {
	article, ok, err := i.svc.Article(ctx, input.Month, input.Day)
	if err != nil {
		return dto.ArticleOutput{}, err
	}
	if !ok {
		return dto.ArticleOutput{}, apperrors.ErrNotFound
	}
	return toArticleOutput(article), nil
}

func (i *Interactor) ListArticles(ctx context.Context, month int) ([]dto.ArticleOutput, error) {
	if month < 0 || month > 12 {
		return nil, fmt.Errorf("%w: month %d", apperrors.ErrInvalidInput, month)
	}
	articles, err := i.svc.Articles(ctx, month)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ArticleOutput, 0, len(articles))
	for _, a := range articles {
		out = append(out, toArticleOutput(a))
	}
	return out, nil
}

func (i *Interactor) QuizFor(ctx context.Context, month int) (dto.QuizOutput, error) {
	quiz, err := i.quiz(ctx, month)
	if err != nil {
		return dto.QuizOutput{}, err
	}
	out := dto.QuizOutput{
		Month:        quiz.Month,
		Title:        quiz.Title,
		Description:  quiz.Description,
		PassingScore: quiz.PassingScore,
		Questions:    make([]dto.QuestionOutput, 0, len(quiz.Questions)),
	}
	for _, q := range quiz.Questions {
		out.Questions = append(out.Questions, dto.QuestionOutput{ID: q.ID, Prompt: q.Prompt, Options: q.Options, Explanation: q.Explanation})
	}
	return out, nil
}

func (i *Interactor) HasQuizFor(ctx context.Context, month int) (bool, error) {
	_, ok, err := i.svc.Quiz(ctx, month)
	return ok, err
}

func (i *Interactor) GradeQuiz(ctx context.Context, input dto.GradeQuizInput) (dto.GradeQuizOutput, error) {
	quiz, err := i.quiz(ctx, input.Month)
	if err != nil {
		return dto.GradeQuizOutput{}, err
	}
	grade := domain.GradeQuiz(quiz, input.Answers)
	return dto.GradeQuizOutput{
		Month:        quiz.Month,
		Correct:      grade.Correct,
		Total:        grade.Total,
		Score:        grade.Score,
		PassingScore: quiz.PassingScore,
		Passed:       grade.Passed,
	}, nil
}

func (i *Interactor) quiz(ctx context.Context, month int) (domain.Quiz, error) {
	if month < 1 || month > 12 {
		return domain.Quiz{}, fmt.Errorf("%w: month %d", apperrors.ErrInvalidInput, month)
	}
	quiz, ok, err := i.svc.Quiz(ctx, month)
	if err != nil {
		return domain.Quiz{}, err
	}
	if !ok {
		return domain.Quiz{}, fmt.Errorf("%w %d", apperrors.ErrNoQuiz, month)
	}
	return quiz, nil
}

func toArticleOutput(a domain.Article) dto.ArticleOutput {
	out := dto.ArticleOutput{
		Month:         a.Month,
		Day:           a.Day,
		Title:         a.Title,
		Description:   a.Description,
		FullContent:   a.FullContent,
		ExternalLink:  a.ExternalLink,
		ChallengeType: string(a.Challenge),
		RewardDay:     a.RewardDay,
	}
	if a.Reward != nil {
		out.RewardTitle = a.Reward.Title
		out.RewardMessage = a.Reward.Message
	}
	return out
}
