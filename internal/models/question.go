package models

import "time"

const (
	QuestionStatusPending  = "pending"
	QuestionStatusApproved = "approved"
	QuestionStatusRejected = "rejected"
)

const (
	ReviewVerdictApprove = "approve"
	ReviewVerdictReject  = "reject"
)

// Question — вопрос с вариантами a..d, пояснениями и источниками.
// Choices и Explanations хранятся в jsonb, ключ — буква варианта.
type Question struct {
	ID           int               `json:"id"`
	Text         string            `json:"question"`
	Choices      map[string]string `json:"choices"`
	Explanations map[string]string `json:"explanations"`
	Answer       string            `json:"answer"`
	Sources      []string          `json:"sources"`
	Status       string            `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// Answer — попытка ответа пользователя на вопрос.
type Answer struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	QuestionID int       `json:"question_id"`
	Choice     string    `json:"choice"`
	IsCorrect  bool      `json:"is_correct"`
	CreatedAt  time.Time `json:"created_at"`
}

// QuestionReview — запись аудита: вердикт администратора по вопросу.
type QuestionReview struct {
	ID         int       `json:"id"`
	QuestionID int       `json:"question_id"`
	ReviewerID int       `json:"reviewer_id"`
	Verdict    string    `json:"verdict"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
