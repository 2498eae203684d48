// Package interviewer generates the tiered interview questions.
package interviewer

import (
	"math/rand"

	"excel-mock-interviewer/internal/config"
	"excel-mock-interviewer/internal/metrics"
	"excel-mock-interviewer/internal/prompts"
)

// Completer is the text-completion collaborator
type Completer interface {
	Complete(prompt string, maxTokens int, temperature float64) (string, error)
}

// Service represents the question generator service
type Service struct {
	client  Completer
	cfg     *config.Config
	metrics *metrics.Metrics
}

// New creates a new question generator
func New(client Completer, cfg *config.Config, m *metrics.Metrics) *Service {
	return &Service{
		client:  client,
		cfg:     cfg,
		metrics: m,
	}
}

// Generate produces one interview question for the given difficulty tier
// (1..5). It never fails: if the completion service is unavailable or the
// tier is unknown, a literal fallback question for that tier is returned.
func (s *Service) Generate(tier int) string {
	level, ok := TierByOrdinal(tier)
	if !ok {
		return s.fallbackQuestion(tier)
	}

	topic := level.Topics[rand.Intn(len(level.Topics))]
	prompt := prompts.QuestionPrompt(level.Level, topic, level.Description)

	question, err := s.client.Complete(prompt, s.cfg.GetQuestionMaxTokens(), s.cfg.GetTemperature())
	s.metrics.IncrementAPICall(err == nil)
	if err != nil || question == "" {
		return s.fallbackQuestion(tier)
	}

	s.metrics.IncrementQuestionsGenerated()
	return question
}

// fallbackQuestion picks a random literal question for the tier
func (s *Service) fallbackQuestion(tier int) string {
	if tier < 1 {
		tier = 1
	}
	if tier > 5 {
		tier = 5
	}
	list := FallbackQuestions(tier)
	s.metrics.IncrementFallbacksUsed()
	s.metrics.IncrementQuestionsGenerated()
	return list[rand.Intn(len(list))]
}
