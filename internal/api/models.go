package api

// Common request/response structures

// SubmissionRequest defines the payload for the sentence submission endpoint.
type SubmissionRequest struct {
	Sentence string `json:"sentence" validate:"required,min=1,max=2000"`
}

// SubmissionResponse defines the successful response for the submission endpoint.
type SubmissionResponse struct {
	// CorrectorOutput is the corrected sentence plus improvement notes.
	CorrectorOutput string `json:"corrector_output"`

	// Phrase is the canonical phrase the lesson teaches.
	Phrase string `json:"phrase"`

	// LessonText is the plain-text lesson body.
	LessonText string `json:"lesson_text"`

	// LessonHTML is the HTML rendering of the lesson.
	LessonHTML string `json:"lesson_html,omitempty"`

	// RecordID identifies the stored lesson record.
	RecordID string `json:"record_id"`

	// DateAdded is when the record was stored, formatted "2006-01-02 15:04:05".
	DateAdded string `json:"date_added"`
}

// LessonResponse is one entry of the review listing.
type LessonResponse struct {
	Phrase     string   `json:"phrase"`
	Definition string   `json:"definition"`
	Examples   []string `json:"examples"`
	DateAdded  string   `json:"date_added"`
}

// LessonListResponse defines the response for the lesson listing endpoint.
type LessonListResponse struct {
	Lessons []LessonResponse `json:"lessons"`
	Total   int              `json:"total"`
}

// QuizResponse defines the response for the quiz endpoint. The correct
// index is included so clients can grade a choice locally; free-text
// answers still go through the evaluation endpoint.
type QuizResponse struct {
	Phrase       string   `json:"phrase"`
	Question     string   `json:"question"`
	Choices      []string `json:"choices"`
	CorrectIndex int      `json:"correct_index"`
}

// HealthResponse defines the response for the health endpoint, including
// the size of the memory bank.
type HealthResponse struct {
	Status  string `json:"status"`
	Lessons int    `json:"lessons"`
}

// EvaluationRequest defines the payload for the answer evaluation endpoint.
type EvaluationRequest struct {
	Phrase string `json:"phrase" validate:"required,min=1"`
	Answer string `json:"answer" validate:"required,min=1"`
}

// EvaluationResponse defines the successful response for the evaluation endpoint.
type EvaluationResponse struct {
	Correct  bool    `json:"correct"`
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}
