package out

import (
	"context"
	"errors"

	contentdto "rightsdaily/internal/modules/content/dto"
	contentin "rightsdaily/internal/modules/content/port/in"
	"rightsdaily/internal/modules/progress/domain"
	progressout "rightsdaily/internal/modules/progress/port/out"
	apperrors "rightsdaily/internal/platform/errors"
)

type ContentLookupAdapter struct {
	content contentin.Usecase
}

func NewContentLookupAdapter(content contentin.Usecase) progressout.ContentLookup {
	return &ContentLookupAdapter{content: content}
}

func (a *ContentLookupAdapter) ArticleFor(ctx context.Context, date domain.LessonDate) (domain.ArticleInfo, bool, error) {
	article, err := a.content.ArticleFor(ctx, contentdto.ArticleInput{Month: int(date.Month), Day: date.Day})
	if errors.Is(err, apperrors.ErrNotFound) {
		return domain.ArticleInfo{}, false, nil
	}
	if err != nil {
		return domain.ArticleInfo{}, false, err
	}
	return domain.ArticleInfo{Title: article.Title, RewardDay: article.RewardDay}, true, nil
}

func (a *ContentLookupAdapter) HasQuizFor(ctx context.Context, month int) (bool, error) {
	return a.content.HasQuizFor(ctx, month)
}
