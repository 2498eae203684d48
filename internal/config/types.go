package config

// Config represents the interview application configuration
type Config struct {
	Interview InterviewConfig `yaml:"interview"`
	Server    ServerConfig    `yaml:"server"`
	Limits    LimitsConfig    `yaml:"limits"`
}

// InterviewConfig contains the interview flow settings
type InterviewConfig struct {
	TotalQuestions      int     `yaml:"total_questions"`
	QuestionMaxTokens   int     `yaml:"question_max_tokens"`
	EvaluationMaxTokens int     `yaml:"evaluation_max_tokens"`
	ReportMaxTokens     int     `yaml:"report_max_tokens"`
	Temperature         float64 `yaml:"temperature"`
}

// ServerConfig contains the HTTP server settings
type ServerConfig struct {
	Port                int `yaml:"port"`
	ReadTimeoutSeconds  int `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int `yaml:"write_timeout_seconds"`
}

// LimitsConfig contains per-session protection settings
type LimitsConfig struct {
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`
	SessionTTLHours    int `yaml:"session_ttl_hours"`
}

// Convenience accessors

func (c *Config) GetTotalQuestions() int {
	return c.Interview.TotalQuestions
}

func (c *Config) GetQuestionMaxTokens() int {
	return c.Interview.QuestionMaxTokens
}

func (c *Config) GetEvaluationMaxTokens() int {
	return c.Interview.EvaluationMaxTokens
}

func (c *Config) GetReportMaxTokens() int {
	return c.Interview.ReportMaxTokens
}

func (c *Config) GetTemperature() float64 {
	return c.Interview.Temperature
}
