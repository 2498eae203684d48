package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the interview configuration from a YAML file
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filename, err)
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("error parsing YAML: %w", err)
	}

	applyDefaults(&config)

	err = validateConfig(&config)
	if err != nil {
		return nil, fmt.Errorf("error validating configuration: %w", err)
	}

	return &config, nil
}

// applyDefaults fills in settings omitted from the file
func applyDefaults(config *Config) {
	if config.Interview.TotalQuestions == 0 {
		config.Interview.TotalQuestions = 5
	}
	if config.Interview.QuestionMaxTokens == 0 {
		config.Interview.QuestionMaxTokens = 200
	}
	if config.Interview.EvaluationMaxTokens == 0 {
		config.Interview.EvaluationMaxTokens = 150
	}
	if config.Interview.ReportMaxTokens == 0 {
		config.Interview.ReportMaxTokens = 500
	}
	if config.Interview.Temperature == 0 {
		config.Interview.Temperature = 0.7
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.ReadTimeoutSeconds == 0 {
		config.Server.ReadTimeoutSeconds = 15
	}
	if config.Server.WriteTimeoutSeconds == 0 {
		config.Server.WriteTimeoutSeconds = 120
	}
	if config.Limits.RateLimitPerMinute == 0 {
		config.Limits.RateLimitPerMinute = 30
	}
	if config.Limits.SessionTTLHours == 0 {
		config.Limits.SessionTTLHours = 24
	}
}

// validateConfig checks the configuration for consistency
func validateConfig(config *Config) error {
	if config.Interview.TotalQuestions != 5 {
		return fmt.Errorf("total_questions must be 5, got %d", config.Interview.TotalQuestions)
	}

	if config.Interview.QuestionMaxTokens <= 0 {
		return fmt.Errorf("question_max_tokens must be greater than 0")
	}

	if config.Interview.EvaluationMaxTokens <= 0 {
		return fmt.Errorf("evaluation_max_tokens must be greater than 0")
	}

	if config.Interview.ReportMaxTokens <= 0 {
		return fmt.Errorf("report_max_tokens must be greater than 0")
	}

	if config.Interview.Temperature < 0 || config.Interview.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2, got %g", config.Interview.Temperature)
	}

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Limits.RateLimitPerMinute <= 0 {
		return fmt.Errorf("rate_limit_per_minute must be greater than 0")
	}

	if config.Limits.SessionTTLHours <= 0 {
		return fmt.Errorf("session_ttl_hours must be greater than 0")
	}

	return nil
}
