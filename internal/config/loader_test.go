package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "interview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfigFile(t, `
interview:
  total_questions: 5
  question_max_tokens: 250
  evaluation_max_tokens: 100
  report_max_tokens: 600
  temperature: 0.5
server:
  port: 9090
  read_timeout_seconds: 10
  write_timeout_seconds: 60
limits:
  rate_limit_per_minute: 15
  session_ttl_hours: 12
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.GetTotalQuestions())
	assert.Equal(t, 250, cfg.GetQuestionMaxTokens())
	assert.Equal(t, 100, cfg.GetEvaluationMaxTokens())
	assert.Equal(t, 600, cfg.GetReportMaxTokens())
	assert.Equal(t, 0.5, cfg.GetTemperature())
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 15, cfg.Limits.RateLimitPerMinute)
	assert.Equal(t, 12, cfg.Limits.SessionTTLHours)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, "interview:\n  total_questions: 5\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.GetQuestionMaxTokens())
	assert.Equal(t, 150, cfg.GetEvaluationMaxTokens())
	assert.Equal(t, 500, cfg.GetReportMaxTokens())
	assert.Equal(t, 0.7, cfg.GetTemperature())
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30, cfg.Limits.RateLimitPerMinute)
	assert.Equal(t, 24, cfg.Limits.SessionTTLHours)
}

func TestLoadRejectsWrongQuestionCount(t *testing.T) {
	path := writeConfigFile(t, "interview:\n  total_questions: 3\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "total_questions")
}

func TestLoadRejectsBadTemperature(t *testing.T) {
	path := writeConfigFile(t, "interview:\n  total_questions: 5\n  temperature: 3.5\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "temperature")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "interview: [not: a map\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestOpenAIConfigValidation(t *testing.T) {
	cfg := &OpenAIConfig{APIKey: "", Model: "gpt-4o-mini"}
	assert.Error(t, cfg.ValidateConfig())

	cfg.APIKey = "sk-test"
	assert.NoError(t, cfg.ValidateConfig())
}
