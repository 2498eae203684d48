package storage

// InterviewResult represents one completed, scored interview
type InterviewResult struct {
	InterviewID string           `json:"interview_id"`
	Timestamp   string           `json:"timestamp"`
	TotalScore  int              `json:"total_score"`
	Percentage  float64          `json:"percentage"`
	SkillLevel  string           `json:"skill_level"`
	Questions   []QuestionResult `json:"questions"`
	Report      string           `json:"report"`
}

// QuestionResult represents one scored question
type QuestionResult struct {
	Question        string `json:"question"`
	Answer          string `json:"answer"`
	CorrectAnswer   string `json:"correct_answer"`
	Score           int    `json:"score"`
	Explanation     string `json:"explanation"`
	DifficultyLevel int    `json:"difficulty_level"`
	Skipped         bool   `json:"skipped"`
	MarkedForReview bool   `json:"marked_for_review"`
}
