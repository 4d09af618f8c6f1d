package domain

type QuizState string

const (
	QuizComingSoon QuizState = "coming-soon"
	QuizLocked     QuizState = "locked"
	QuizAvailable  QuizState = "available"
)

// QuizStateFor gates a month's quiz on the month being completed.
func QuizStateFor(hasQuiz, monthCompleted bool) QuizState {
	switch {
	case !hasQuiz:
		return QuizComingSoon
	case monthCompleted:
		return QuizAvailable
	default:
		return QuizLocked
	}
}
