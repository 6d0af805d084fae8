package controller

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/learncheck/learncheck/internal/gateway"
	"github.com/learncheck/learncheck/internal/quiz"
	"github.com/learncheck/learncheck/internal/store"
)

// Action precondition failures. Callers treat these as no-ops: the
// session is untouched and the action can be re-issued later.
var (
	ErrBusy           = errors.New("an action is already in progress")
	ErrNoIdentity     = errors.New("user and tutorial identity not set")
	ErrNoSession      = errors.New("no quiz session loaded")
	ErrNoQuestion     = errors.New("no question at the current index")
	ErrQuestionLocked = errors.New("question already submitted")
	ErrAtBoundary     = errors.New("no question in that direction")
	ErrNotAllChecked  = errors.New("not every question has been checked")
)

// Pacing holds the minimum visible duration per action kind. The busy
// flag stays up for at least this long so the loading state never
// flickers on fast responses. Zero values release immediately.
type Pacing struct {
	Load       time.Duration
	Start      time.Duration
	Navigation time.Duration
	Check      time.Duration
	Regenerate time.Duration
	ResetAll   time.Duration
	Score      time.Duration
}

// DefaultPacing returns the standard pacing delays.
func DefaultPacing() Pacing {
	return Pacing{
		Load:       800 * time.Millisecond,
		Start:      800 * time.Millisecond,
		Navigation: 300 * time.Millisecond,
		Check:      300 * time.Millisecond,
		Regenerate: 700 * time.Millisecond,
		ResetAll:   time.Second,
		Score:      time.Second,
	}
}

// Phase is the transient screen the quiz is on.
type Phase int

const (
	PhaseWelcome Phase = iota
	PhaseQuestion
	PhaseResults
)

func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "welcome"
	case PhaseQuestion:
		return "question"
	case PhaseResults:
		return "results"
	}
	return "unknown"
}

// ViewState is the transient, non-persisted presentation state.
type ViewState struct {
	Phase       Phase
	Index       int
	HintVisible bool
}

// Snapshot is the read-only view handed to the presentation layer. The
// session is a deep copy; mutating it has no effect on the controller.
type Snapshot struct {
	Session *quiz.Session
	View    ViewState
	Busy    bool
	Notice  string
}

// Controller owns the session and its transient view-state. It is the
// sole writer of both; everything else reads snapshots. A busy gate
// serializes the asynchronous actions: while one is in flight every
// other mutating action fails fast with ErrBusy, it never queues.
type Controller struct {
	mu    sync.Mutex
	busy  bool
	epoch uint64

	identity quiz.Identity
	session  *quiz.Session
	view     ViewState
	notice   string

	gw       gateway.Gateway
	sessions store.SessionRepo
	events   store.EventRepo
	pacing   Pacing
}

// New creates a Controller. events may be nil to disable event logging.
func New(gw gateway.Gateway, sessions store.SessionRepo, events store.EventRepo, pacing Pacing) *Controller {
	return &Controller{
		gw:       gw,
		sessions: sessions,
		events:   events,
		pacing:   pacing,
	}
}

// SetIdentity switches the controller to a new (user, tutorial) pair and
// resets the transient view-state to its baseline. Any response still in
// flight for the previous identity is discarded when it lands.
func (c *Controller) SetIdentity(id quiz.Identity) error {
	if !id.Valid() {
		return ErrNoIdentity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if id == c.identity {
		return nil
	}

	c.identity = id
	c.epoch++
	c.session = nil
	c.view = ViewState{Phase: PhaseWelcome}
	c.notice = ""
	return nil
}

// Snapshot returns a deep-copied view of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		Session: c.session.Clone(),
		View:    c.view,
		Busy:    c.busy,
		Notice:  c.notice,
	}
}

// ClearNotice dismisses the current user-visible notice.
func (c *Controller) ClearNotice() {
	c.mu.Lock()
	c.notice = ""
	c.mu.Unlock()
}

// begin acquires the busy gate, failing fast when an action is already
// in flight. It returns the identity epoch the action was issued
// against; async results are discarded when the epoch has moved on.
func (c *Controller) begin() (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busy {
		return 0, ErrBusy
	}
	c.busy = true
	return c.epoch, nil
}

// finish holds the busy flag up for the pacing delay, then releases it.
func (c *Controller) finish(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
}

// Load populates the session for the current identity. A valid stored
// session is resumed without a network fetch; otherwise fresh quiz data
// is fetched and overwrites whatever the store held. On fetch failure
// the previous session state is kept untouched and a notice is set.
func (c *Controller) Load(ctx context.Context) error {
	epoch, err := c.begin()
	if err != nil {
		return err
	}
	defer c.finish(c.pacing.Load)

	c.mu.Lock()
	id := c.identity
	c.mu.Unlock()

	if !id.Valid() {
		return ErrNoIdentity
	}

	if stored, err := c.sessions.Get(ctx, id); err == nil && stored != nil && stored.Valid() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if epoch != c.epoch {
			return nil
		}
		c.session = stored
		c.view = ViewState{Phase: PhaseWelcome}
		c.notice = ""
		return nil
	}

	return c.fetchFresh(ctx, epoch, id, "")
}

// fetchFresh fetches quiz data and replaces the session wholesale.
// keepTheme, when non-empty, survives the reload.
func (c *Controller) fetchFresh(ctx context.Context, epoch uint64, id quiz.Identity, keepTheme string) error {
	data, err := c.gw.FetchQuizData(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()

	if epoch != c.epoch {
		return nil
	}

	if err != nil {
		c.notice = "Could not load the quiz. Please try again."
		return fmt.Errorf("load quiz: %w", err)
	}

	prefs := data.Preferences
	if keepTheme != "" {
		prefs.Theme = keepTheme
	}

	c.session = quiz.NewSession(id, uuid.NewString(), data.Questions, data.ModuleTitle, data.ContextText, prefs)
	c.view = ViewState{Phase: PhaseWelcome}
	c.notice = ""
	c.persistLocked(ctx)
	return nil
}

// StartQuiz moves from the welcome screen to the first question.
func (c *Controller) StartQuiz(ctx context.Context) error {
	_, err := c.begin()
	if err != nil {
		return err
	}
	defer c.finish(c.pacing.Start)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil || c.session.Total() == 0 {
		return ErrNoSession
	}

	c.view = ViewState{Phase: PhaseQuestion, Index: 0}
	return nil
}

// SelectAnswer toggles an option in the current question's selection.
// Locked (submitted) questions and busy periods make this a no-op.
func (c *Controller) SelectAnswer(ctx context.Context, questionID, optionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busy {
		return ErrBusy
	}
	if c.session == nil {
		return ErrNoSession
	}
	if c.session.Submitted(questionID) {
		return ErrQuestionLocked
	}

	c.session.ToggleAnswer(questionID, optionID)
	c.persistLocked(ctx)
	return nil
}

// Next advances to the next question and hides the hint.
func (c *Controller) Next(ctx context.Context) error {
	return c.navigate(ctx, +1)
}

// Prev goes back to the previous question and hides the hint.
func (c *Controller) Prev(ctx context.Context) error {
	return c.navigate(ctx, -1)
}

func (c *Controller) navigate(ctx context.Context, delta int) error {
	_, err := c.begin()
	if err != nil {
		return err
	}
	defer c.finish(c.pacing.Navigation)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return ErrNoSession
	}
	if c.view.Phase != PhaseQuestion {
		return ErrNoQuestion
	}

	target := c.view.Index + delta
	if target < 0 || target >= c.session.Total() {
		return ErrAtBoundary
	}

	c.view.Index = target
	c.view.HintVisible = false
	return nil
}

// ToggleHint flips the hint visibility flag. Never gated.
func (c *Controller) ToggleHint() {
	c.mu.Lock()
	c.view.HintVisible = !c.view.HintVisible
	c.mu.Unlock()
}

// ExitToFirstQuestion leaves the results screen and returns to question
// one, keeping the persisted session untouched. Never gated.
func (c *Controller) ExitToFirstQuestion() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.view.Phase != PhaseResults {
		return
	}
	c.view = ViewState{Phase: PhaseQuestion, Index: 0}
}

// CheckAnswer evaluates the current question and locks it with a stored
// verdict. When the answer is wrong and the question has no static hint,
// a best-effort hint fetch runs in the background; its failure never
// surfaces, and its result is discarded if the identity changed or the
// question was regenerated in the meantime.
func (c *Controller) CheckAnswer(ctx context.Context) error {
	epoch, err := c.begin()
	if err != nil {
		return err
	}
	defer c.finish(c.pacing.Check)

	c.mu.Lock()

	if c.session == nil {
		c.mu.Unlock()
		return ErrNoSession
	}
	q := c.session.QuestionAt(c.view.Index)
	if q == nil {
		c.mu.Unlock()
		return ErrNoQuestion
	}
	if c.session.Submitted(q.ID) {
		c.mu.Unlock()
		return ErrQuestionLocked
	}

	selected := append([]string(nil), c.session.Selected(q.ID)...)
	correct := quiz.IsQuestionCorrect(*q, selected)

	prev := c.session.CheckedStatus[q.ID]
	c.session.CheckedStatus[q.ID] = quiz.CheckedStatus{
		Submitted:    true,
		IsCorrect:    correct,
		AttemptCount: prev.AttemptCount + 1,
	}

	seeded := false
	if q.Hint != "" {
		c.session.AIHints[q.ID] = q.Hint
		seeded = true
	}

	c.persistLocked(ctx)

	params := gateway.HintParams{
		TutorialID:       c.session.TutorialID,
		QuestionID:       q.ID,
		QuestionText:     q.Question,
		ContextText:      c.session.ContextText,
		StudentAnswerIDs: selected,
		Options:          append([]quiz.Option(nil), q.Options...),
	}
	staticHint := q.Hint
	attemptID := c.session.AttemptID
	id := c.identity
	c.mu.Unlock()

	if seeded {
		c.appendHintEvent(store.HintEventData{
			UserID:     id.UserID,
			TutorialID: id.TutorialID,
			AttemptID:  attemptID,
			QuestionID: params.QuestionID,
			Source:     store.HintSourceStatic,
			Success:    true,
			HintText:   staticHint,
		})
	}

	if !correct && !seeded {
		go c.enrichHint(epoch, id, attemptID, params)
	}

	return nil
}

// enrichHint fetches a generated hint in the background. Runs outside
// the busy gate: it is enrichment, not a state transition.
func (c *Controller) enrichHint(epoch uint64, id quiz.Identity, attemptID string, params gateway.HintParams) {
	hint, err := c.gw.GenerateHint(context.Background(), params)

	event := store.HintEventData{
		UserID:     id.UserID,
		TutorialID: id.TutorialID,
		AttemptID:  attemptID,
		QuestionID: params.QuestionID,
		Source:     store.HintSourceBackend,
		Success:    err == nil,
		HintText:   hint,
	}
	if err != nil {
		event.ErrorMessage = err.Error()
		fmt.Fprintf(os.Stderr, "warning: hint generation failed for question %s: %v\n", params.QuestionID, err)
	}
	c.appendHintEvent(event)

	if err != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if epoch != c.epoch || c.session == nil {
		return
	}
	if !c.questionExistsLocked(params.QuestionID) {
		return
	}

	c.session.AIHints[params.QuestionID] = hint
	c.persistLocked(context.Background())
}

func (c *Controller) questionExistsLocked(questionID string) bool {
	for _, q := range c.session.Questions {
		if q.ID == questionID {
			return true
		}
	}
	return false
}

// ResetCurrentQuestion regenerates the question at the current index.
// On success the replacement swaps in and the old bookkeeping entries
// are deleted; on failure a notice is set and the stale answer/verdict
// entries are still cleared so the learner is not stuck on a locked,
// unregenerated question.
func (c *Controller) ResetCurrentQuestion(ctx context.Context) error {
	epoch, err := c.begin()
	if err != nil {
		return err
	}
	defer c.finish(c.pacing.Regenerate)

	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		return ErrNoSession
	}
	q := c.session.QuestionAt(c.view.Index)
	if q == nil {
		c.mu.Unlock()
		return ErrNoQuestion
	}
	questionID := q.ID
	index := c.view.Index
	id := c.identity
	c.mu.Unlock()

	replacement, gwErr := c.gw.ResetSingleQuestion(ctx, id, index)

	c.mu.Lock()
	defer c.mu.Unlock()

	if epoch != c.epoch || c.session == nil {
		return nil
	}

	if gwErr != nil {
		// Fallback: clear both bookkeeping entries together so the
		// question unlocks even though it was not regenerated.
		c.session.ResetQuestion(questionID)
		c.view.HintVisible = false
		c.notice = "Could not regenerate the question. Your answer for it was cleared."
		c.persistLocked(ctx)
		return fmt.Errorf("reset question: %w", gwErr)
	}

	c.session.ReplaceQuestion(index, *replacement)
	c.view.HintVisible = false
	c.persistLocked(ctx)
	return nil
}

// ResetAll resets the whole question set server-side and reloads. The
// theme preference survives the reload. On failure a notice is set and
// the view still returns to the welcome screen so the UI cannot be left
// stuck mid-operation.
func (c *Controller) ResetAll(ctx context.Context) error {
	epoch, err := c.begin()
	if err != nil {
		return err
	}
	defer c.finish(c.pacing.ResetAll)

	c.mu.Lock()
	id := c.identity
	theme := ""
	if c.session != nil {
		theme = c.session.Preferences.Theme
	}
	c.mu.Unlock()

	if !id.Valid() {
		return ErrNoIdentity
	}

	if gwErr := c.gw.ResetAllQuestions(ctx, id); gwErr != nil {
		c.mu.Lock()
		defer c.mu.Unlock()
		if epoch != c.epoch {
			return nil
		}
		c.notice = "Could not reset the quiz. Please try again."
		c.view = ViewState{Phase: PhaseWelcome}
		return fmt.Errorf("reset all: %w", gwErr)
	}

	return c.fetchFresh(ctx, epoch, id, theme)
}

// ViewScore finalizes the attempt: requires a verdict for every
// question, then computes and persists the score and records the
// attempt in the event log.
func (c *Controller) ViewScore(ctx context.Context) error {
	_, err := c.begin()
	if err != nil {
		return err
	}
	defer c.finish(c.pacing.Score)

	c.mu.Lock()

	if c.session == nil {
		c.mu.Unlock()
		return ErrNoSession
	}
	if !c.session.AllChecked() {
		c.mu.Unlock()
		return ErrNotAllChecked
	}

	result := quiz.ComputeScore(c.session)
	c.session.Score = result.Score
	c.session.CorrectCount = result.CorrectCount
	c.session.IsCompleted = true
	c.view = ViewState{Phase: PhaseResults}
	c.persistLocked(ctx)

	event := store.AttemptEventData{
		UserID:         c.session.UserID,
		TutorialID:     c.session.TutorialID,
		AttemptID:      c.session.AttemptID,
		Score:          result.Score,
		CorrectCount:   result.CorrectCount,
		TotalQuestions: c.session.Total(),
	}
	c.mu.Unlock()

	if c.events != nil {
		if err := c.events.AppendAttemptEvent(ctx, event); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record attempt: %v\n", err)
		}
	}
	return nil
}

// persistLocked writes the whole session blob. Callers hold c.mu.
// Write failures degrade to a warning; the in-memory session stays the
// source of truth for the rest of the run.
func (c *Controller) persistLocked(ctx context.Context) {
	if c.session == nil {
		return
	}
	if err := c.sessions.Put(ctx, c.session); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to persist session: %v\n", err)
	}
}

func (c *Controller) appendHintEvent(data store.HintEventData) {
	if c.events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.events.AppendHintEvent(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record hint event: %v\n", err)
	}
}
