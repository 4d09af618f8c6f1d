package dto

type ArticleInput struct {
	Month int
	Day   int
}

type ArticleOutput struct {
	Month         int
	Day           int
	Title         string
	Description   string
	FullContent   string
	ExternalLink  string
	ChallengeType string
	RewardDay     bool
	RewardTitle   string
	RewardMessage string
}

type QuestionOutput struct {
	ID          int
	Prompt      string
	Options     []string
	Explanation string
}

type QuizOutput struct {
	Month        int
	Title        string
	Description  string
	PassingScore int
	Questions    []QuestionOutput
}

type GradeQuizInput struct {
	Month   int
	Answers []int
}

type GradeQuizOutput struct {
	Month        int
	Correct      int
	Total        int
	Score        int
	PassingScore int
	Passed       bool
}
