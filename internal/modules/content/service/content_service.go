package service

import (
	"context"
	"fmt"
	"sync"

	hclog "github.com/hashicorp/go-hclog"

	"rightsdaily/internal/modules/content/domain"
	contentout "rightsdaily/internal/modules/content/port/out"
	"rightsdaily/internal/platform/logging"
)

// ContentService loads the catalog once per process and serves lookups from it.
type ContentService struct {
	articles contentout.ArticleSource
	quizzes  contentout.QuizSource
	logger   hclog.Logger

	mu      sync.Mutex
	catalog *domain.Catalog
}

func NewContentService(articles contentout.ArticleSource, quizzes contentout.QuizSource, logger hclog.Logger) *ContentService {
	return &ContentService{articles: articles, quizzes: quizzes, logger: logging.OrDiscard(logger).Named("content")}
}

func (s *ContentService) Catalog(ctx context.Context) (domain.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.catalog != nil {
		return *s.catalog, nil
	}
	articles, err := s.articles.ListArticles(ctx)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("load articles: %w", err)
	}
	quizzes, err := s.quizzes.ListQuizzes(ctx)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("load quizzes: %w", err)
	}
	catalog, err := domain.NewCatalog(articles, quizzes)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("build catalog: %w", err)
	}
	s.logger.Debug("catalog loaded", "articles", len(articles), "quizzes", len(quizzes))
	s.catalog = &catalog
	return catalog, nil
}

func (s *ContentService) Article(ctx context.Context, month, day int) (domain.Article, bool, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return domain.Article{}, false, err
	}
	a, ok := catalog.Article(month, day)
	return a, ok, nil
}

func (s *ContentService) Articles(ctx context.Context, month int) ([]domain.Article, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Articles(month), nil
}

func (s *ContentService) Quiz(ctx context.Context, month int) (domain.Quiz, bool, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return domain.Quiz{}, false, err
	}
	q, ok := catalog.Quiz(month)
	return q, ok, nil
}
