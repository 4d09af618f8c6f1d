package out

import (
	"context"

	"rightsdaily/internal/modules/content/domain"
)

type ArticleSource interface {
	ListArticles(ctx context.Context) ([]domain.Article, error)
}

type QuizSource interface {
	ListQuizzes(ctx context.Context) ([]domain.Quiz, error)
}
