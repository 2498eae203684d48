// Package evaluator scores candidate answers, with a deterministic keyword
// heuristic whenever the completion service cannot score them.
package evaluator

import (
	"strings"
	"unicode/utf8"

	"excel-mock-interviewer/internal/config"
	"excel-mock-interviewer/internal/metrics"
	"excel-mock-interviewer/internal/prompts"
	"excel-mock-interviewer/internal/session"
)

// Completer is the text-completion collaborator
type Completer interface {
	Complete(prompt string, maxTokens int, temperature float64) (string, error)
}

// Service represents the answer evaluation service
type Service struct {
	client  Completer
	cfg     *config.Config
	metrics *metrics.Metrics
}

// New creates a new answer evaluator
func New(client Completer, cfg *config.Config, m *metrics.Metrics) *Service {
	return &Service{
		client:  client,
		cfg:     cfg,
		metrics: m,
	}
}

// Vocabulary used by the fallback heuristic. Matched case-insensitively as
// substrings, each term counted at most once.
var excelKeywords = []string{
	"vlookup", "hlookup", "index", "match", "pivot", "pivot table",
	"formula", "function", "conditional formatting", "data validation",
	"array formula", "sumif", "countif", "averageif", "sumifs", "countifs",
	"if statement", "nested if", "concatenate", "text functions",
	"pmt", "fv", "pv", "financial functions", "date functions",
	"chart", "dashboard", "slicer", "filter", "sort", "macro",
}

var generalTerms = []string{"excel", "spreadsheet", "data", "table"}

// Evaluate scores a single answer and returns (score 0..2, explanation).
// It never fails: if the completion service is unavailable, the deterministic
// keyword heuristic takes over.
func (s *Service) Evaluate(question, answer string) (int, string) {
	prompt := prompts.EvaluationPrompt(question, answer)

	response, err := s.client.Complete(prompt, s.cfg.GetEvaluationMaxTokens(), s.cfg.GetTemperature())
	s.metrics.IncrementAPICall(err == nil)
	if err != nil {
		s.metrics.IncrementFallbacksUsed()
		return fallbackEvaluate(answer)
	}

	return parseEvaluation(response)
}

// parseEvaluation extracts the Score and Explanation lines from the
// completion. Malformed or absent lines yield the neutral defaults.
func parseEvaluation(response string) (int, string) {
	score := 0
	explanation := "No explanation provided"

	for _, line := range strings.Split(response, "\n") {
		if strings.HasPrefix(line, "Score:") {
			scoreText := strings.TrimSpace(strings.TrimPrefix(line, "Score:"))
			// Digit checks run in fixed order, so "0" wins over "1" wins over "2".
			if strings.Contains(scoreText, "0") {
				score = 0
			} else if strings.Contains(scoreText, "1") {
				score = 1
			} else if strings.Contains(scoreText, "2") {
				score = 2
			}
		} else if strings.HasPrefix(line, "Explanation:") {
			explanation = strings.TrimSpace(strings.TrimPrefix(line, "Explanation:"))
		}
	}

	return score, explanation
}

// fallbackEvaluate applies the keyword/length heuristic. Rules are checked
// in this exact order; the first match wins.
func fallbackEvaluate(answer string) (int, string) {
	length := utf8.RuneCountInString(answer)
	if length < 20 {
		return 0, "Answer too brief - please provide more detail"
	}

	lower := strings.ToLower(answer)
	keywordCount := 0
	for _, keyword := range excelKeywords {
		if strings.Contains(lower, keyword) {
			keywordCount++
		}
	}

	switch {
	case keywordCount >= 3 && length > 100:
		return 2, "Excellent technical knowledge demonstrated"
	case keywordCount >= 2 && length > 50:
		return 2, "Good technical knowledge with relevant Excel concepts"
	case keywordCount >= 1 && length > 30:
		return 1, "Shows some Excel knowledge but could be more detailed"
	}

	for _, term := range generalTerms {
		if strings.Contains(lower, term) {
			return 1, "Basic understanding shown but needs more technical detail"
		}
	}

	return 0, "Limited Excel knowledge demonstrated"
}

// EvaluateAll scores every record of a finished interview in place. Skipped
// questions are force-scored 0 and never reach the completion service.
// Records already evaluated are left untouched, so an interrupted pass can
// be resumed safely.
func (s *Service) EvaluateAll(records []*session.Record) {
	for _, rec := range records {
		if rec.Skipped {
			rec.Score = 0
			rec.Explanation = "Question was skipped"
			rec.Evaluated = true
			continue
		}
		if rec.Evaluated {
			continue
		}
		score, explanation := s.Evaluate(rec.Question, rec.Answer)
		rec.Score = score
		rec.Explanation = explanation
		rec.Evaluated = true
		s.metrics.IncrementAnswersEvaluated()
	}
}
