// Package server exposes the interview state machine as an HTTP JSON API.
// Each browser session is identified by a cookie and owns one session object.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"excel-mock-interviewer/internal/config"
	"excel-mock-interviewer/internal/evaluator"
	"excel-mock-interviewer/internal/interviewer"
	"excel-mock-interviewer/internal/metrics"
	"excel-mock-interviewer/internal/report"
	"excel-mock-interviewer/internal/session"
	"excel-mock-interviewer/internal/storage"
)

const sessionCookie = "interview_session"

// sessionEntry pairs a session with its bookkeeping. The entry mutex
// serializes actions on one session; concurrent sessions never contend.
type sessionEntry struct {
	mu           sync.Mutex
	session      *session.Session
	interviewID  string
	saved        bool
	lastActivity time.Time
}

type Handler struct {
	cfg           *config.Config
	generator     *interviewer.Service
	evaluator     *evaluator.Service
	reporter      *report.Service
	metrics       *metrics.Metrics
	sessions      map[string]*sessionEntry
	sessionsMutex sync.RWMutex
	rateLimiter   *RateLimiter
}

func NewHandler(cfg *config.Config, gen *interviewer.Service, ev *evaluator.Service, rep *report.Service, m *metrics.Metrics) *Handler {
	h := &Handler{
		cfg:         cfg,
		generator:   gen,
		evaluator:   ev,
		reporter:    rep,
		metrics:     m,
		sessions:    make(map[string]*sessionEntry),
		rateLimiter: NewRateLimiter(cfg.Limits.RateLimitPerMinute, time.Minute),
	}
	h.startSessionCleanup()
	return h
}

func (h *Handler) startSessionCleanup() {
	ticker := time.NewTicker(1 * time.Hour)
	go func() {
		for range ticker.C {
			h.cleanupInactiveSessions()
		}
	}()
}

func (h *Handler) cleanupInactiveSessions() {
	h.sessionsMutex.Lock()
	defer h.sessionsMutex.Unlock()

	cutoff := time.Now().Add(-time.Duration(h.cfg.Limits.SessionTTLHours) * time.Hour)
	for id, entry := range h.sessions {
		if entry.lastActivity.Before(cutoff) {
			delete(h.sessions, id)
			h.rateLimiter.Forget(id)
		}
	}
}

// Routes builds the API router
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/interview/start", h.action(h.handleStart))
	mux.HandleFunc("/api/interview", h.withSession(h.handleState))
	mux.HandleFunc("/api/interview/answer", h.action(h.handleAnswer))
	mux.HandleFunc("/api/interview/skip", h.action(h.handleSkip))
	mux.HandleFunc("/api/interview/next", h.action(h.handleNext))
	mux.HandleFunc("/api/interview/review", h.action(h.handleReview))
	mux.HandleFunc("/api/interview/submit", h.action(h.handleSubmit))
	mux.HandleFunc("/api/interview/restart", h.action(h.handleRestart))
	mux.HandleFunc("/api/metrics", h.handleMetrics)
	mux.HandleFunc("/healthz", h.handleHealth)
	return mux
}

// action wraps POST-only state transitions
func (h *Handler) action(fn func(http.ResponseWriter, *http.Request, *sessionEntry)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.withSession(fn)(w, r)
	}
}

// withSession resolves (or creates) the caller's session and applies the
// rate limit before dispatching
func (h *Handler) withSession(fn func(http.ResponseWriter, *http.Request, *sessionEntry)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, entry := h.getOrCreateSession(w, r)

		if !h.rateLimiter.IsAllowed(id) {
			writeError(w, http.StatusTooManyRequests, "Too many requests. Please wait a minute.")
			return
		}

		entry.mu.Lock()
		defer entry.mu.Unlock()
		entry.lastActivity = time.Now()
		fn(w, r, entry)
	}
}

func (h *Handler) getOrCreateSession(w http.ResponseWriter, r *http.Request) (string, *sessionEntry) {
	var id string
	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		id = cookie.Value
	} else {
		id = uuid.New().String()
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	h.sessionsMutex.Lock()
	defer h.sessionsMutex.Unlock()

	entry, exists := h.sessions[id]
	if !exists {
		entry = &sessionEntry{
			session:      session.New(),
			lastActivity: time.Now(),
		}
		h.sessions[id] = entry
	}
	return id, entry
}

func (h *Handler) handleStart(w http.ResponseWriter, r *http.Request, entry *sessionEntry) {
	if entry.session.Phase == session.PhaseNotStarted {
		entry.session.Start()
		entry.interviewID = uuid.New().String()
		entry.saved = false
		h.metrics.IncrementInterviewsStarted()
	}
	entry.session.EnsureQuestion(h.generator)
	h.writeState(w, entry)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request, entry *sessionEntry) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	entry.session.EnsureQuestion(h.generator)
	h.writeState(w, entry)
}

func (h *Handler) handleAnswer(w http.ResponseWriter, r *http.Request, entry *sessionEntry) {
	req, ok := decodeAction(w, r)
	if !ok {
		return
	}
	entry.session.SaveAnswer(req.Text)
	h.writeState(w, entry)
}

func (h *Handler) handleSkip(w http.ResponseWriter, r *http.Request, entry *sessionEntry) {
	req, ok := decodeAction(w, r)
	if !ok {
		return
	}
	entry.session.Skip(req.Text)
	entry.session.EnsureQuestion(h.generator)
	h.writeState(w, entry)
}

func (h *Handler) handleNext(w http.ResponseWriter, r *http.Request, entry *sessionEntry) {
	req, ok := decodeAction(w, r)
	if !ok {
		return
	}
	if err := entry.session.Next(req.Text); err != nil {
		if errors.Is(err, session.ErrEmptyAnswer) {
			writeError(w, http.StatusBadRequest, "Please provide an answer before continuing.")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	entry.session.EnsureQuestion(h.generator)
	h.writeState(w, entry)
}

func (h *Handler) handleReview(w http.ResponseWriter, r *http.Request, entry *sessionEntry) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	entry.session.MarkForReview(req.Index, req.Marked)
	h.writeState(w, entry)
}

// handleSubmit arms and runs the evaluation pass, then generates the final
// report. Evaluation and report generation are synchronous; the fallback
// paths guarantee they cannot fail.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request, entry *sessionEntry) {
	sess := entry.session
	sess.SubmitAll()
	sess.RunEvaluation(h.evaluator)

	if sess.Phase == session.PhaseComplete && sess.Report == "" {
		sess.Report = h.reporter.Generate(sess.Records)
		h.metrics.IncrementInterviewsCompleted()
	}
	if sess.Phase == session.PhaseComplete && !entry.saved {
		if err := storage.SaveResult(h.buildResult(entry)); err != nil {
			log.Printf("error saving interview result %s: %v", entry.interviewID, err)
		} else {
			entry.saved = true
		}
	}

	h.writeState(w, entry)
}

func (h *Handler) handleRestart(w http.ResponseWriter, r *http.Request, entry *sessionEntry) {
	entry.session.Restart()
	h.writeState(w, entry)
}

func (h *Handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, h.metrics.GetSnapshot())
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// buildResult converts the completed session into its persisted form
func (h *Handler) buildResult(entry *sessionEntry) *storage.InterviewResult {
	sess := entry.session
	result := &storage.InterviewResult{
		InterviewID: entry.interviewID,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		TotalScore:  sess.TotalScore(),
		Percentage:  sess.Percentage(),
		SkillLevel:  report.SkillLevel(sess.Percentage()),
		Report:      sess.Report,
	}
	for i, rec := range sess.Records {
		result.Questions = append(result.Questions, storage.QuestionResult{
			Question:        rec.Question,
			Answer:          rec.Answer,
			CorrectAnswer:   report.CorrectAnswer(i),
			Score:           rec.Score,
			Explanation:     rec.Explanation,
			DifficultyLevel: rec.DifficultyLevel,
			Skipped:         rec.Skipped,
			MarkedForReview: rec.MarkedForReview,
		})
	}
	return result
}

// writeState renders the session as the state payload
func (h *Handler) writeState(w http.ResponseWriter, entry *sessionEntry) {
	sess := entry.session
	resp := stateResponse{
		Phase:          string(sess.Phase),
		CurrentIndex:   sess.CurrentIndex,
		TotalQuestions: session.TotalQuestions,
	}

	shown := sess.CurrentIndex + 1
	if sess.Phase == session.PhaseNotStarted {
		shown = 0
	}
	resp.Progress = progressIndicator(shown)

	complete := sess.Phase == session.PhaseComplete

	for i, rec := range sess.Records {
		view := questionView{
			Number:          i + 1,
			DifficultyLevel: rec.DifficultyLevel,
			DifficultyLabel: interviewer.TierLabel(rec.DifficultyLevel),
			Question:        rec.Question,
			Answer:          rec.Answer,
			Skipped:         rec.Skipped,
			MarkedForReview: rec.MarkedForReview,
		}
		if complete {
			score := rec.Score
			view.Score = &score
			view.Explanation = rec.Explanation
			view.CorrectAnswer = report.CorrectAnswer(i)
		}
		resp.Questions = append(resp.Questions, view)
		if i == sess.CurrentIndex {
			current := view
			resp.CurrentQuestion = &current
		}
	}

	if complete {
		total := sess.TotalScore()
		percentage := sess.Percentage()
		resp.TotalScore = &total
		resp.Percentage = &percentage
		resp.SkillLevel = report.SkillLevel(percentage)
		resp.Report = sess.Report
	}

	writeJSON(w, http.StatusOK, resp)
}

func progressIndicator(current int) string {
	if current > session.TotalQuestions {
		current = session.TotalQuestions
	}
	return fmt.Sprintf("%d/%d", current, session.TotalQuestions)
}

func decodeAction(w http.ResponseWriter, r *http.Request) (actionRequest, bool) {
	var req actionRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return req, false
		}
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
