package server

// actionRequest carries the typed answer text for answer/skip/next actions
type actionRequest struct {
	Text string `json:"text"`
}

// reviewRequest toggles the mark-for-review flag on one question
type reviewRequest struct {
	Index  int  `json:"index"`
	Marked bool `json:"marked"`
}

// questionView is the per-question slice of the state payload. CorrectAnswer,
// Score and Explanation are only populated once the interview is complete.
type questionView struct {
	Number          int    `json:"number"`
	DifficultyLevel int    `json:"difficulty_level"`
	DifficultyLabel string `json:"difficulty_label"`
	Question        string `json:"question"`
	Answer          string `json:"answer"`
	Skipped         bool   `json:"skipped"`
	MarkedForReview bool   `json:"marked_for_review"`
	Score           *int   `json:"score,omitempty"`
	Explanation     string `json:"explanation,omitempty"`
	CorrectAnswer   string `json:"correct_answer,omitempty"`
}

// stateResponse is the full session state returned after every action
type stateResponse struct {
	Phase           string         `json:"phase"`
	Progress        string         `json:"progress"`
	CurrentIndex    int            `json:"current_index"`
	TotalQuestions  int            `json:"total_questions"`
	CurrentQuestion *questionView  `json:"current_question,omitempty"`
	Questions       []questionView `json:"questions,omitempty"`
	TotalScore      *int           `json:"total_score,omitempty"`
	Percentage      *float64       `json:"percentage,omitempty"`
	SkillLevel      string         `json:"skill_level,omitempty"`
	Report          string         `json:"report,omitempty"`
}

// errorResponse carries a user-visible error message
type errorResponse struct {
	Error string `json:"error"`
}
