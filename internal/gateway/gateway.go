package gateway

import (
	"context"

	"github.com/learncheck/learncheck/internal/quiz"
)

// QuizData is the payload returned by a quiz fetch.
type QuizData struct {
	Questions   []quiz.Question
	ModuleTitle string
	ContextText string
	Preferences quiz.Preferences
}

// HintParams carries everything the backend needs to generate a hint for
// an incorrectly answered question.
type HintParams struct {
	TutorialID       string
	QuestionID       string
	QuestionText     string
	ContextText      string
	StudentAnswerIDs []string
	Options          []quiz.Option
}

// Gateway is the boundary to the remote quiz service. All operations may
// fail; callers decide what failures mean.
type Gateway interface {
	// FetchQuizData loads the question set, module metadata and user
	// preferences for an identity.
	FetchQuizData(ctx context.Context, id quiz.Identity) (*QuizData, error)

	// GenerateHint produces a guiding hint for a wrong answer.
	GenerateHint(ctx context.Context, params HintParams) (string, error)

	// ResetSingleQuestion regenerates the question at the given index and
	// returns the replacement.
	ResetSingleQuestion(ctx context.Context, id quiz.Identity, questionIndex int) (*quiz.Question, error)

	// ResetAllQuestions resets the whole question set server-side. The
	// caller reloads afterwards.
	ResetAllQuestions(ctx context.Context, id quiz.Identity) error
}
