package session

import (
	"errors"
	"strings"
)

// TotalQuestions is the fixed length of one interview.
const TotalQuestions = 5

const lastIndex = TotalQuestions - 1

// Phase represents the interview phase
type Phase string

const (
	PhaseNotStarted     Phase = "not_started"
	PhaseInProgress     Phase = "in_progress"
	PhaseAwaitingSubmit Phase = "awaiting_submit"
	PhaseEvaluating     Phase = "evaluating"
	PhaseComplete       Phase = "complete"
)

// ErrEmptyAnswer is returned by Next when the candidate submits an empty answer.
var ErrEmptyAnswer = errors.New("please provide an answer before continuing")

// Record holds one question/answer pair and its evaluation
type Record struct {
	Question        string `json:"question"`
	Answer          string `json:"answer"`
	Score           int    `json:"score"`
	Explanation     string `json:"explanation"`
	DifficultyLevel int    `json:"difficulty_level"`
	Skipped         bool   `json:"skipped"`
	MarkedForReview bool   `json:"marked_for_review"`
	Evaluated       bool   `json:"evaluated"`
}

// QuestionGenerator produces the question for a difficulty tier (1..5).
type QuestionGenerator interface {
	Generate(tier int) string
}

// BatchEvaluator scores all records of a finished interview in place.
type BatchEvaluator interface {
	EvaluateAll(records []*Record)
}

// Session holds the state of one candidate's interview. It is owned by a
// single handler goroutine at a time; there is no internal locking.
type Session struct {
	Phase          Phase        `json:"phase"`
	CurrentIndex   int          `json:"current_index"`
	Records        []*Record    `json:"records"`
	SkippedIndices map[int]bool `json:"skipped_indices"`
	Report         string       `json:"report"`
}

// New creates a fresh session in the NotStarted phase
func New() *Session {
	return &Session{
		Phase:          PhaseNotStarted,
		CurrentIndex:   0,
		Records:        make([]*Record, 0, TotalQuestions),
		SkippedIndices: make(map[int]bool),
	}
}

// Start begins the interview. Replays are no-ops.
func (s *Session) Start() {
	if s.Phase != PhaseNotStarted {
		return
	}
	s.Phase = PhaseInProgress
	s.CurrentIndex = 0
}

// EnsureQuestion lazily generates the question for the current index.
// Questions are generated strictly in increasing tier order, one at a time.
func (s *Session) EnsureQuestion(gen QuestionGenerator) {
	if s.Phase != PhaseInProgress {
		return
	}
	if s.CurrentIndex < len(s.Records) {
		return
	}
	tier := s.CurrentIndex + 1
	s.Records = append(s.Records, &Record{
		Question:        gen.Generate(tier),
		DifficultyLevel: tier,
	})
}

// SaveAnswer stores the typed answer for the current question without advancing
func (s *Session) SaveAnswer(text string) {
	if s.Phase != PhaseInProgress || s.CurrentIndex >= len(s.Records) {
		return
	}
	s.Records[s.CurrentIndex].Answer = text
}

// Skip marks the current question as skipped and advances. Any partially
// typed text is kept as the answer without being required.
func (s *Session) Skip(text string) {
	if s.Phase != PhaseInProgress || s.CurrentIndex >= len(s.Records) {
		return
	}
	s.SkippedIndices[s.CurrentIndex] = true
	s.Records[s.CurrentIndex].Skipped = true
	if strings.TrimSpace(text) != "" {
		s.Records[s.CurrentIndex].Answer = text
	}
	if s.CurrentIndex < lastIndex {
		s.CurrentIndex++
	} else {
		s.Phase = PhaseAwaitingSubmit
	}
}

// Next saves the answer and advances to the next question. An empty or
// whitespace-only answer is a validation error and changes nothing.
func (s *Session) Next(text string) error {
	if s.Phase != PhaseInProgress || s.CurrentIndex >= len(s.Records) {
		return nil
	}
	if strings.TrimSpace(text) == "" {
		return ErrEmptyAnswer
	}
	s.Records[s.CurrentIndex].Answer = text
	if s.SkippedIndices[s.CurrentIndex] {
		delete(s.SkippedIndices, s.CurrentIndex)
		s.Records[s.CurrentIndex].Skipped = false
	}
	s.CurrentIndex++
	if s.CurrentIndex > lastIndex {
		s.CurrentIndex = lastIndex
		s.Phase = PhaseAwaitingSubmit
	}
	return nil
}

// MarkForReview toggles the informational review flag on a question.
// It never affects scoring.
func (s *Session) MarkForReview(index int, marked bool) {
	if s.Phase != PhaseInProgress || index < 0 || index >= len(s.Records) {
		return
	}
	s.Records[index].MarkedForReview = marked
}

// SubmitAll arms the evaluation pass
func (s *Session) SubmitAll() {
	if s.Phase != PhaseAwaitingSubmit {
		return
	}
	s.Phase = PhaseEvaluating
}

// RunEvaluation scores all records and completes the interview. Evaluation
// is idempotent per record, so an interrupted pass can safely run again.
func (s *Session) RunEvaluation(ev BatchEvaluator) {
	if s.Phase != PhaseEvaluating {
		return
	}
	ev.EvaluateAll(s.Records)
	s.Phase = PhaseComplete
}

// TotalScore sums the per-question scores (0..10)
func (s *Session) TotalScore() int {
	total := 0
	for _, rec := range s.Records {
		total += rec.Score
	}
	return total
}

// Percentage converts the total score to 0..100
func (s *Session) Percentage() float64 {
	return float64(s.TotalScore()) / float64(2*TotalQuestions) * 100
}

// Restart resets a completed session back to a fresh NotStarted state
func (s *Session) Restart() {
	if s.Phase != PhaseComplete {
		return
	}
	*s = *New()
}
