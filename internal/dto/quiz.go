package dto

// GenerateQuizRequest is the request body for quiz generation.
// @Description Request body for generating quiz questions on a topic
type GenerateQuizRequest struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

// GenerateDescribeRequest is the request body for description generation.
type GenerateDescribeRequest struct {
	Topic string `json:"topic"`
}

// SubmitAnswerRequest is the request body for answering a quiz question.
type SubmitAnswerRequest struct {
	UserAnswer string `json:"user_answer"`
}

// QuizResponse represents a persisted quiz question in the API response
// @Description Quiz question with its options and answer state
type QuizResponse struct {
	ID            int64    `json:"id"`
	Topic         string   `json:"topic"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	UserAnswer    string   `json:"user_answer"`
	IsCorrect     bool     `json:"is_correct"`
}

// DescribeResponse represents a generated description in the API response.
// The description text is returned here but never persisted.
type DescribeResponse struct {
	Topic       string `json:"topic"`
	OwnerID     string `json:"owner_id"`
	Description string `json:"description"`
}

// OwnerStatsResponse aggregates an owner's generation activity.
type OwnerStatsResponse struct {
	OwnerID          string `json:"owner_id"`
	QuestionsCovered int64  `json:"questions_covered"`
	TopicsCovered    int64  `json:"topics_covered"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
