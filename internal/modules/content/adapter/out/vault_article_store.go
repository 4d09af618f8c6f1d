package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"rightsdaily/internal/modules/content/domain"
	contentout "rightsdaily/internal/modules/content/port/out"
	"rightsdaily/internal/platform/markdown"
)

// VaultArticleStore reads articles/*.md notes. Frontmatter carries the
// schedule and metadata; the note body is the article's full content.
type VaultArticleStore struct {
	contentPath string
}

func NewVaultArticleStore(contentPath string) contentout.ArticleSource {
	return &VaultArticleStore{contentPath: contentPath}
}

func (s *VaultArticleStore) ListArticles(_ context.Context) ([]domain.Article, error) {
	glob := filepath.Join(s.contentPath, "articles", "*.md")
	matches, err := filepath.Glob(glob)
	if err != nil {
		return nil, fmt.Errorf("glob article notes: %w", err)
	}
	sort.Strings(matches)

	out := make([]domain.Article, 0, len(matches))
	for _, path := range matches {
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("read %s: %w", path, readErr)
		}
		meta, body, splitErr := markdown.Split(string(content))
		if splitErr != nil {
			return nil, fmt.Errorf("parse %s: %w", path, splitErr)
		}
		article, convErr := fromFrontmatter(meta, body)
		if convErr != nil {
			return nil, fmt.Errorf("decode article %s: %w", path, convErr)
		}
		out = append(out, article)
	}
	return out, nil
}

func fromFrontmatter(meta markdown.Frontmatter, body string) (domain.Article, error) {
	article := domain.Article{
		Day:          meta.Int("day"),
		Month:        meta.Int("month"),
		Title:        meta.String("title"),
		Description:  meta.String("description"),
		FullContent:  strings.TrimSpace(body),
		ExternalLink: meta.String("external_link"),
		Challenge:    domain.ChallengeType(meta.String("challenge_type")),
		RewardDay:    meta.Bool("reward_day"),
	}
	if article.Challenge == "" {
		article.Challenge = domain.ChallengeIndividual
	}
	if article.RewardDay {
		title, message := meta.String("reward_title"), meta.String("reward_message")
		if title != "" || message != "" {
			article.Reward = &domain.Reward{Title: title, Message: message}
		}
	}
	if err := article.Validate(); err != nil {
		return domain.Article{}, err
	}
	return article, nil
}
