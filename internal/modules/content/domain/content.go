package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

type ChallengeType string

const (
	ChallengeIndividual  ChallengeType = "individual"
	ChallengeFamily      ChallengeType = "family"
	ChallengeSocialMedia ChallengeType = "social-media"

	DefaultPassingScore = 70
)

func (c ChallengeType) Validate() error {
	switch c {
	case ChallengeIndividual, ChallengeFamily, ChallengeSocialMedia:
		return nil
	default:
		return fmt.Errorf("unsupported challenge type %q", string(c))
	}
}

type Reward struct {
	Title   string
	Message string
}

// Article is the lesson scheduled for a (month, day) in every year.
type Article struct {
	Day          int
	Month        int
	Title        string
	Description  string
	FullContent  string
	ExternalLink string
	Challenge    ChallengeType
	RewardDay    bool
	Reward       *Reward
}

func (a Article) Validate() error {
	if a.Month < 1 || a.Month > 12 {
		return fmt.Errorf("month %d out of range", a.Month)
	}
	if a.Day < 1 || a.Day > daysInMonth[a.Month-1] {
		return fmt.Errorf("day %d out of range for month %d", a.Day, a.Month)
	}
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("title is required")
	}
	return a.Challenge.Validate()
}

type Question struct {
	ID            int
	Prompt        string
	Options       []string
	CorrectAnswer int
	Explanation   string
}

type Quiz struct {
	Month        int
	Title        string
	Description  string
	PassingScore int
	Questions    []Question
}

func (q Quiz) Validate() error {
	if q.Month < 1 || q.Month > 12 {
		return fmt.Errorf("month %d out of range", q.Month)
	}
	if strings.TrimSpace(q.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if q.PassingScore < 0 || q.PassingScore > 100 {
		return fmt.Errorf("passing score %d out of range", q.PassingScore)
	}
	if len(q.Questions) == 0 {
		return fmt.Errorf("quiz has no questions")
	}
	for _, question := range q.Questions {
		if len(question.Options) < 2 {
			return fmt.Errorf("question %d needs at least two options", question.ID)
		}
		if question.CorrectAnswer < 0 || question.CorrectAnswer >= len(question.Options) {
			return fmt.Errorf("question %d correct answer %d out of range", question.ID, question.CorrectAnswer)
		}
	}
	return nil
}

type Grade struct {
	Correct int
	Total   int
	Score   int
	Passed  bool
}

// GradeQuiz scores answers by position. Missing answers count as wrong; the
// score is the rounded percentage of correct answers.
func GradeQuiz(q Quiz, answers []int) Grade {
	correct := 0
	for i, question := range q.Questions {
		if i < len(answers) && answers[i] == question.CorrectAnswer {
			correct++
		}
	}
	total := len(q.Questions)
	score := 0
	if total > 0 {
		score = int(math.Round(float64(correct) / float64(total) * 100))
	}
	return Grade{Correct: correct, Total: total, Score: score, Passed: score >= q.PassingScore}
}

// Catalog is the immutable article and quiz set of one content load.
type Catalog struct {
	articles map[[2]int]Article
	quizzes  map[int]Quiz
}

func NewCatalog(articles []Article, quizzes []Quiz) (Catalog, error) {
	c := Catalog{
		articles: make(map[[2]int]Article, len(articles)),
		quizzes:  make(map[int]Quiz, len(quizzes)),
	}
	for _, a := range articles {
		if err := a.Validate(); err != nil {
			return Catalog{}, fmt.Errorf("article %02d-%02d: %w", a.Month, a.Day, err)
		}
		key := [2]int{a.Month, a.Day}
		if _, dup := c.articles[key]; dup {
			return Catalog{}, fmt.Errorf("duplicate article for %02d-%02d", a.Month, a.Day)
		}
		c.articles[key] = a
	}
	for _, q := range quizzes {
		if err := q.Validate(); err != nil {
			return Catalog{}, fmt.Errorf("quiz for month %d: %w", q.Month, err)
		}
		if _, dup := c.quizzes[q.Month]; dup {
			return Catalog{}, fmt.Errorf("duplicate quiz for month %d", q.Month)
		}
		c.quizzes[q.Month] = q
	}
	return c, nil
}

func (c Catalog) Article(month, day int) (Article, bool) {
	a, ok := c.articles[[2]int{month, day}]
	return a, ok
}

// Articles lists a month's articles ordered by day; month 0 lists all.
func (c Catalog) Articles(month int) []Article {
	out := make([]Article, 0)
	for _, a := range c.articles {
		if month == 0 || a.Month == month {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Month != out[j].Month {
			return out[i].Month < out[j].Month
		}
		return out[i].Day < out[j].Day
	})
	return out
}

func (c Catalog) Quiz(month int) (Quiz, bool) {
	q, ok := c.quizzes[month]
	return q, ok
}

// Leap-year February so a 29 February lesson can be authored.
var daysInMonth = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
