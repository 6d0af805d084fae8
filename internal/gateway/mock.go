package gateway

import (
	"context"
	"sync"

	"github.com/learncheck/learncheck/internal/quiz"
)

// Mock is a scripted Gateway for tests. Each operation runs its func
// field when set and fails with ErrServiceUnavailable otherwise. Calls
// are counted per operation.
type Mock struct {
	mu sync.Mutex

	FetchQuizDataFunc       func(ctx context.Context, id quiz.Identity) (*QuizData, error)
	GenerateHintFunc        func(ctx context.Context, params HintParams) (string, error)
	ResetSingleQuestionFunc func(ctx context.Context, id quiz.Identity, questionIndex int) (*quiz.Question, error)
	ResetAllQuestionsFunc   func(ctx context.Context, id quiz.Identity) error

	FetchCalls    int
	HintCalls     int
	ResetOneCalls int
	ResetAllCalls int
}

func (m *Mock) FetchQuizData(ctx context.Context, id quiz.Identity) (*QuizData, error) {
	m.mu.Lock()
	m.FetchCalls++
	fn := m.FetchQuizDataFunc
	m.mu.Unlock()

	if fn == nil {
		return nil, ErrServiceUnavailable
	}
	return fn(ctx, id)
}

func (m *Mock) GenerateHint(ctx context.Context, params HintParams) (string, error) {
	m.mu.Lock()
	m.HintCalls++
	fn := m.GenerateHintFunc
	m.mu.Unlock()

	if fn == nil {
		return "", ErrServiceUnavailable
	}
	return fn(ctx, params)
}

func (m *Mock) ResetSingleQuestion(ctx context.Context, id quiz.Identity, questionIndex int) (*quiz.Question, error) {
	m.mu.Lock()
	m.ResetOneCalls++
	fn := m.ResetSingleQuestionFunc
	m.mu.Unlock()

	if fn == nil {
		return nil, ErrServiceUnavailable
	}
	return fn(ctx, id, questionIndex)
}

func (m *Mock) ResetAllQuestions(ctx context.Context, id quiz.Identity) error {
	m.mu.Lock()
	m.ResetAllCalls++
	fn := m.ResetAllQuestionsFunc
	m.mu.Unlock()

	if fn == nil {
		return ErrServiceUnavailable
	}
	return fn(ctx, id)
}
