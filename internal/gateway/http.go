package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/learncheck/learncheck/internal/quiz"
)

// ErrServiceUnavailable wraps transport-level failures reaching the
// backend.
var ErrServiceUnavailable = errors.New("quiz backend unavailable")

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

// HTTPClient implements Gateway against the quiz backend HTTP API.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient creates a Gateway client. An empty baseURL falls back to
// the local stub default; a nil httpClient gets a 30s-timeout default.
func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = "http://127.0.0.1:8077"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

type quizResponse struct {
	Questions []quiz.Question `json:"questions"`
	Metadata  struct {
		ModuleTitle string `json:"module_title"`
		ContextText string `json:"context_text"`
	} `json:"metadata"`
	UserPreferences quiz.Preferences `json:"user_preferences"`
}

type hintRequest struct {
	TutorialID       string        `json:"tutorial_id"`
	QuestionID       string        `json:"question_id"`
	QuestionText     string        `json:"question_text"`
	ContextText      string        `json:"context_text"`
	StudentAnswerIDs []string      `json:"student_answer_ids"`
	Options          []quiz.Option `json:"options"`
}

type hintResponse struct {
	Hint string `json:"hint"`
}

type resetOneRequest struct {
	TutorialID    string `json:"tutorial_id"`
	UserID        string `json:"user_id"`
	QuestionIndex int    `json:"question_index"`
}

type resetOneResponse struct {
	Questions []quiz.Question `json:"questions"`
}

type resetAllRequest struct {
	TutorialID string `json:"tutorial_id"`
	UserID     string `json:"user_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *HTTPClient) FetchQuizData(ctx context.Context, id quiz.Identity) (*QuizData, error) {
	query := url.Values{}
	query.Set("tutorial_id", id.TutorialID)
	query.Set("user_id", id.UserID)

	var payload quizResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/quiz?"+query.Encode(), nil, &payload); err != nil {
		return nil, err
	}

	return &QuizData{
		Questions:   payload.Questions,
		ModuleTitle: payload.Metadata.ModuleTitle,
		ContextText: payload.Metadata.ContextText,
		Preferences: payload.UserPreferences,
	}, nil
}

func (c *HTTPClient) GenerateHint(ctx context.Context, params HintParams) (string, error) {
	request := hintRequest{
		TutorialID:       params.TutorialID,
		QuestionID:       params.QuestionID,
		QuestionText:     params.QuestionText,
		ContextText:      params.ContextText,
		StudentAnswerIDs: params.StudentAnswerIDs,
		Options:          params.Options,
	}

	var payload hintResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/hint", request, &payload); err != nil {
		return "", err
	}

	if strings.TrimSpace(payload.Hint) == "" {
		return "", fmt.Errorf("backend returned an empty hint")
	}
	return payload.Hint, nil
}

func (c *HTTPClient) ResetSingleQuestion(ctx context.Context, id quiz.Identity, questionIndex int) (*quiz.Question, error) {
	request := resetOneRequest{
		TutorialID:    id.TutorialID,
		UserID:        id.UserID,
		QuestionIndex: questionIndex,
	}

	var payload resetOneResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/questions/reset-one", request, &payload); err != nil {
		return nil, err
	}

	if len(payload.Questions) != 1 {
		return nil, fmt.Errorf("expected 1 replacement question, got %d", len(payload.Questions))
	}
	q := payload.Questions[0]
	return &q, nil
}

func (c *HTTPClient) ResetAllQuestions(ctx context.Context, id quiz.Identity) error {
	request := resetAllRequest{
		TutorialID: id.TutorialID,
		UserID:     id.UserID,
	}
	return c.doJSON(ctx, http.MethodPost, "/api/questions/reset-all", request, nil)
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, requestBody any, responseBody any) error {
	fullURL := c.baseURL + path

	var body io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return err
	}
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		apiErr := APIError{StatusCode: response.StatusCode}
		var payload errorResponse
		if err := json.NewDecoder(response.Body).Decode(&payload); err == nil && strings.TrimSpace(payload.Error) != "" {
			apiErr.Message = payload.Error
		}
		if apiErr.Message == "" {
			apiErr.Message = response.Status
		}
		return &apiErr
	}

	if responseBody == nil {
		return nil
	}
	return json.NewDecoder(response.Body).Decode(responseBody)
}
