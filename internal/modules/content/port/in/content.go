package in

import (
	"context"

	"rightsdaily/internal/modules/content/dto"
)

type Usecase interface {
	// ArticleFor returns apperrors.ErrNotFound when no lesson is scheduled.
	ArticleFor(ctx context.Context, input dto.ArticleInput) (dto.ArticleOutput, error)
	ListArticles(ctx context.Context, month int) ([]dto.ArticleOutput, error)
	QuizFor(ctx context.Context, month int) (dto.QuizOutput, error)
	HasQuizFor(ctx context.Context, month int) (bool, error)
	GradeQuiz(ctx context.Context, input dto.GradeQuizInput) (dto.GradeQuizOutput, error)
}
