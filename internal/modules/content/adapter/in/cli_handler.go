package in

import (
	"context"

	"rightsdaily/internal/modules/content/dto"
	contentin "rightsdaily/internal/modules/content/port/in"
)

type CLIHandler struct {
	usecase contentin.Usecase
}

func NewCLIHandler(usecase contentin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ArticleFor(ctx context.Context, month, day int) (dto.ArticleOutput, error) {
	return h.usecase.ArticleFor(ctx, dto.ArticleInput{Month: month, Day: day})
}

func (h CLIHandler) ListArticles(ctx context.Context, month int) ([]dto.ArticleOutput, error) {
	return h.usecase.ListArticles(ctx, month)
}

func (h CLIHandler) QuizFor(ctx context.Context, month int) (dto.QuizOutput, error) {
	return h.usecase.QuizFor(ctx, month)
}

func (h CLIHandler) GradeQuiz(ctx context.Context, month int, answers []int) (dto.GradeQuizOutput, error) {
	return h.usecase.GradeQuiz(ctx, dto.GradeQuizInput{Month: month, Answers: answers})
}
