package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission is one respondent's answers. Created once, never updated.
type Submission struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	QuestionnaireID primitive.ObjectID `bson:"questionnaireId" json:"questionnaireId"`
	Answers         map[string]Answer  `bson:"answers" json:"answers"`
	SubmittedAt     time.Time          `bson:"submittedAt" json:"submittedAt"`
}

type CreateSubmissionRequest struct {
	QuestionnaireID string            `json:"questionnaireId"`
	Answers         map[string]Answer `json:"answers"`
}

type CreateSubmissionResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Message string `json:"message"`
}

// QuestionAnswer is a single submission's answer to one question.
type QuestionAnswer struct {
	ID          string    `json:"id"`
	Answer      Answer    `json:"answer"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type QuestionAnswers struct {
	QuestionLabel string           `json:"questionLabel"`
	Answers       []QuestionAnswer `json:"answers"`
}
