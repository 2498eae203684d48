package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const resultsDir = "results"

// SaveResult writes a completed interview to a JSON file
func SaveResult(result *InterviewResult) error {
	err := os.MkdirAll(resultsDir, 0755)
	if err != nil {
		return fmt.Errorf("error creating directory %s: %w", resultsDir, err)
	}

	filename := fmt.Sprintf("interview_%s.json", result.InterviewID)
	path := filepath.Join(resultsDir, filename)

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling result: %w", err)
	}

	err = os.WriteFile(path, jsonData, 0644)
	if err != nil {
		return fmt.Errorf("error writing file %s: %w", path, err)
	}

	return nil
}

// LoadResult reads a saved interview from its JSON file
func LoadResult(interviewID string) (*InterviewResult, error) {
	filename := fmt.Sprintf("interview_%s.json", interviewID)
	path := filepath.Join(resultsDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", path, err)
	}

	var result InterviewResult
	err = json.Unmarshal(data, &result)
	if err != nil {
		return nil, fmt.Errorf("error unmarshaling JSON: %w", err)
	}

	return &result, nil
}

// ListResults returns the IDs of all saved interviews
func ListResults() ([]string, error) {
	if _, err := os.Stat(resultsDir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(resultsDir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", resultsDir, err)
	}

	var results []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "interview_") {
			results = append(results, strings.TrimSuffix(strings.TrimPrefix(name, "interview_"), ".json"))
		}
	}

	return results, nil
}
