package stubapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/learncheck/learncheck/internal/quiz"
)

// Server is a deterministic stub backend for offline development. It
// speaks the same HTTP contract as the real quiz backend: quiz fetch,
// hint generation, single-question regeneration and full reset.
type Server struct {
	mu sync.Mutex

	// resetCounter feeds regenerated question IDs so repeated resets of
	// the same slot produce distinct questions.
	resetCounter int
}

// NewServer creates a stub backend.
func NewServer() *Server {
	return &Server{}
}

// Handler returns the routed HTTP handler with request logging.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/quiz", s.handleQuiz).Methods(http.MethodGet)
	r.HandleFunc("/api/hint", s.handleHint).Methods(http.MethodPost)
	r.HandleFunc("/api/questions/reset-one", s.handleResetOne).Methods(http.MethodPost)
	r.HandleFunc("/api/questions/reset-all", s.handleResetAll).Methods(http.MethodPost)

	return handlers.LoggingHandler(os.Stderr, r)
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
	QuestionID       string        `json:"question_id"`
	QuestionText     string        `json:"question_text"`
	StudentAnswerIDs []string      `json:"student_answer_ids"`
	Options          []quiz.Option `json:"options"`
}

type resetOneRequest struct {
	TutorialID    string `json:"tutorial_id"`
	UserID        string `json:"user_id"`
	QuestionIndex int    `json:"question_index"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleQuiz(w http.ResponseWriter, r *http.Request) {
	tutorialID := strings.TrimSpace(r.URL.Query().Get("tutorial_id"))
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if tutorialID == "" || userID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "tutorial_id and user_id are required"})
		return
	}

	var payload quizResponse
	payload.Questions = sampleQuestions()
	payload.Metadata.ModuleTitle = "Go Fundamentals: Self Check"
	payload.Metadata.ContextText = sampleContext
	payload.UserPreferences = quiz.Preferences{Theme: "dark"}

	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	var req hintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.QuestionID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "question_id is required"})
		return
	}

	hint := "Re-read the question and rule out the options that contradict the lesson text."
	if len(req.StudentAnswerIDs) == 0 {
		hint = "You have not selected anything yet. Start by eliminating the options you know are wrong."
	}

	writeJSON(w, http.StatusOK, map[string]string{"hint": hint})
}

func (s *Server) handleResetOne(w http.ResponseWriter, r *http.Request) {
	var req resetOneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	questions := sampleQuestions()
	if req.QuestionIndex < 0 || req.QuestionIndex >= len(questions) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "question index out of range"})
		return
	}

	s.mu.Lock()
	s.resetCounter++
	n := s.resetCounter
	s.mu.Unlock()

	replacement := questions[req.QuestionIndex]
	replacement.ID = fmt.Sprintf("%s-r%d", replacement.ID, n)
	replacement.Question = fmt.Sprintf("(regenerated) %s", replacement.Question)

	writeJSON(w, http.StatusOK, map[string]any{
		"questions": []quiz.Question{replacement},
	})
}

func (s *Server) handleResetAll(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
