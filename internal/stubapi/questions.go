package stubapi

import "github.com/learncheck/learncheck/internal/quiz"

const sampleContext = `Go programs are organized into packages. A goroutine is a ` +
	`lightweight thread managed by the Go runtime; channels let goroutines ` +
	`communicate. Errors are values returned explicitly from functions, and ` +
	`the defer statement schedules a call to run when the surrounding ` +
	`function returns.`

// sampleQuestions returns a fresh copy of the fixed stub question set.
func sampleQuestions() []quiz.Question {
	return []quiz.Question{
		{
			ID:       "stub-q1",
			Question: "Which statements about goroutines are true?",
			Options: []quiz.Option{
				{ID: "q1-a", Text: "They are managed by the Go runtime", IsCorrect: true},
				{ID: "q1-b", Text: "They map one-to-one onto OS threads"},
				{ID: "q1-c", Text: "They are cheaper to create than OS threads", IsCorrect: true},
				{ID: "q1-d", Text: "They require manual stack sizing"},
			},
			Feedback: "Goroutines are multiplexed onto OS threads by the runtime scheduler and start with small, growable stacks.",
			PreHint:  "Think about what the runtime scheduler does for you.",
		},
		{
			ID:       "stub-q2",
			Question: "How are errors conventionally handled in Go?",
			Options: []quiz.Option{
				{ID: "q2-a", Text: "Thrown and caught with try/catch blocks"},
				{ID: "q2-b", Text: "Returned as the last return value and checked explicitly", IsCorrect: true},
				{ID: "q2-c", Text: "Ignored until the program crashes"},
			},
			Feedback: "Errors are ordinary values. Callers check the returned error and decide what to do.",
			Hint:     "Go has no exceptions in the try/catch sense.",
		},
		{
			ID:       "stub-q3",
			Question: "When does a deferred call run?",
			Options: []quiz.Option{
				{ID: "q3-a", Text: "Immediately, on a new goroutine"},
				{ID: "q3-b", Text: "When the surrounding function returns", IsCorrect: true},
				{ID: "q3-c", Text: "When the garbage collector next runs"},
			},
			Feedback: "Deferred calls run in LIFO order as the surrounding function returns, even on panic.",
		},
		{
			ID:       "stub-q4",
			Question: "Which of these are valid ways for goroutines to communicate safely?",
			Options: []quiz.Option{
				{ID: "q4-a", Text: "Sending values over a channel", IsCorrect: true},
				{ID: "q4-b", Text: "Guarding shared state with a sync.Mutex", IsCorrect: true},
				{ID: "q4-c", Text: "Writing to a shared map without synchronization"},
			},
			Feedback: "Unsynchronized concurrent map writes are a data race; channels and mutexes are the sanctioned tools.",
			PreHint:  "More than one option is correct here.",
		},
	}
}
