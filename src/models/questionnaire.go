package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Layout only changes how the questionnaire is presented.
type Layout string

const (
	LayoutMultiPage  Layout = "multi-page"
	LayoutSinglePage Layout = "single-page"
)

// QuestionType discriminates which optional question fields apply.
type QuestionType string

const (
	QuestionRadio       QuestionType = "radio"
	QuestionText        QuestionType = "text"
	QuestionImageSelect QuestionType = "image-select"
)

// --- Questionnaire ---
type Questionnaire struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Layout      Layout             `bson:"layout" json:"layout"`
	Password    string             `bson:"password" json:"-"` // bcrypt hash, never serialized
	Questions   []Question         `bson:"questions" json:"questions"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// --- Question (embedded) ---
type Question struct {
	ID           string       `bson:"id" json:"id"`
	Label        string       `bson:"label" json:"label"`
	Type         QuestionType `bson:"type" json:"type"`
	Options      []string     `bson:"options,omitempty" json:"options,omitempty"`
	Instructions string       `bson:"instructions,omitempty" json:"instructions,omitempty"`
	ImageOptions []string     `bson:"imageOptions,omitempty" json:"imageOptions,omitempty"`
	ImageLabels  []string     `bson:"imageLabels,omitempty" json:"imageLabels,omitempty"`
	Reasons      []string     `bson:"reasons,omitempty" json:"reasons,omitempty"`
	ViewPassword string       `bson:"viewPassword,omitempty" json:"-"`

	PasswordProtected bool `bson:"-" json:"passwordProtected"`
}

// FindQuestion returns the question with the given id.
func (q *Questionnaire) FindQuestion(id string) (*Question, bool) {
	for i := range q.Questions {
		if q.Questions[i].ID == id {
			return &q.Questions[i], true
		}
	}
	return nil, false
}

// Public returns a copy with every secret removed.
func (q Questionnaire) Public() Questionnaire {
	q.Password = ""
	questions := make([]Question, len(q.Questions))
	for i, question := range q.Questions {
		question.PasswordProtected = question.ViewPassword != ""
		question.ViewPassword = ""
		questions[i] = question
	}
	q.Questions = questions
	return q
}

// QuestionnaireSummary is the listing projection: no question bodies, no hashes.
type QuestionnaireSummary struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	QuestionCount int                `bson:"questionCount" json:"questionCount"`
}

// --- Requests ---

type QuestionInput struct {
	ID                 string       `json:"id"`
	Label              string       `json:"label" validate:"required"`
	Type               QuestionType `json:"type" validate:"omitempty,oneof=radio text image-select"`
	Options            []string     `json:"options"`
	Instructions       string       `json:"instructions"`
	ImageOptions       []string     `json:"imageOptions"`
	ImageLabels        []string     `json:"imageLabels"`
	Reasons            []string     `json:"reasons"`
	ViewPassword       string       `json:"viewPassword"`
	RemoveViewPassword bool         `json:"removeViewPassword"`
}

type QuestionnaireInput struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Layout      Layout          `json:"layout" validate:"omitempty,oneof=multi-page single-page"`
	Questions   []QuestionInput `json:"questions" validate:"dive"`
}

type CreateQuestionnaireResponse struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	GeneratedPassword string `json:"generatedPassword"`
}

type VerifyPasswordRequest struct {
	Password string `json:"password"`
}

type VerifyPasswordResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token,omitempty"`
	ExpiresIn int    `json:"expiresIn,omitempty"`
}
