package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu                  sync.RWMutex
	InterviewsStarted   int64
	InterviewsCompleted int64
	QuestionsGenerated  int64
	AnswersEvaluated    int64
	ReportsGenerated    int64
	FallbacksUsed       int64
	APICallsTotal       int64
	APICallsSuccessful  int64
	LastUpdateTime      time.Time
}

func NewMetrics() *Metrics {
	return &Metrics{
		LastUpdateTime: time.Now(),
	}
}

func (m *Metrics) IncrementInterviewsStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InterviewsStarted++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementInterviewsCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InterviewsCompleted++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementQuestionsGenerated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QuestionsGenerated++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementAnswersEvaluated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnswersEvaluated++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementReportsGenerated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReportsGenerated++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementFallbacksUsed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FallbacksUsed++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementAPICall(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.APICallsTotal++
	if success {
		m.APICallsSuccessful++
	}
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) GetSnapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{
		InterviewsStarted:   m.InterviewsStarted,
		InterviewsCompleted: m.InterviewsCompleted,
		QuestionsGenerated:  m.QuestionsGenerated,
		AnswersEvaluated:    m.AnswersEvaluated,
		ReportsGenerated:    m.ReportsGenerated,
		FallbacksUsed:       m.FallbacksUsed,
		APICallsTotal:       m.APICallsTotal,
		APICallsSuccessful:  m.APICallsSuccessful,
		LastUpdateTime:      m.LastUpdateTime,
	}
}

// Snapshot is a copyable view of the counters
type Snapshot struct {
	InterviewsStarted   int64     `json:"interviews_started"`
	InterviewsCompleted int64     `json:"interviews_completed"`
	QuestionsGenerated  int64     `json:"questions_generated"`
	AnswersEvaluated    int64     `json:"answers_evaluated"`
	ReportsGenerated    int64     `json:"reports_generated"`
	FallbacksUsed       int64     `json:"fallbacks_used"`
	APICallsTotal       int64     `json:"api_calls_total"`
	APICallsSuccessful  int64     `json:"api_calls_successful"`
	LastUpdateTime      time.Time `json:"last_update_time"`
}
