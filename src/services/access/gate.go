// Package access holds the password gate shared by questionnaires, questions
// and the operator listing. Every check is stateless: no lockout, no backoff.
package access

import (
	"crypto/subtle"
	"errors"
	"log"
	"time"

	"Backend-Questionnaire/src/models"
	"Backend-Questionnaire/src/utils"

	"golang.org/x/crypto/bcrypt"
)

const (
	msgAuthRequired       = "authorization required"
	msgInvalidCredentials = "invalid credentials"
	msgNotProtected       = "question is not password-protected"
)

// Cost is the bcrypt cost used by Hash.
var Cost = bcrypt.DefaultCost

var ErrSecretTooLong = errors.New("password is longer than 72 bytes")

func Hash(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), Cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrSecretTooLong
		}
		return "", err
	}
	return string(digest), nil
}

func Verify(secret, digest string) bool {
	if secret == "" || digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}

type Gate struct {
	operatorSecret string
	tokenSecret    []byte
	tokenTTL       time.Duration
}

func NewGate(operatorSecret string, tokenSecret []byte, tokenTTL time.Duration) *Gate {
	return &Gate{operatorSecret: operatorSecret, tokenSecret: tokenSecret, tokenTTL: tokenTTL}
}

// CheckOperator guards the deployment-wide listing. An unset operator secret
// rejects everyone.
func (g *Gate) CheckOperator(secret string) error {
	if secret == "" {
		return models.NewUnauthorizedError(msgAuthRequired)
	}
	if g.operatorSecret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(g.operatorSecret)) != 1 {
		log.Println("[gate] operator secret rejected")
		return models.NewUnauthorizedError(msgInvalidCredentials)
	}
	return nil
}

// CheckQuestionnaire verifies the plaintext admin password of q.
func (g *Gate) CheckQuestionnaire(q *models.Questionnaire, secret string) error {
	if secret == "" {
		return models.NewUnauthorizedError(msgAuthRequired)
	}
	if !Verify(secret, q.Password) {
		log.Printf("[gate] questionnaire=%s password rejected", q.ID.Hex())
		return models.NewUnauthorizedError(msgInvalidCredentials)
	}
	return nil
}

// CheckQuestionnaireAccess accepts either the admin password or an access token
// issued for this questionnaire.
func (g *Gate) CheckQuestionnaireAccess(q *models.Questionnaire, credential string) error {
	if credential == "" {
		return models.NewUnauthorizedError(msgAuthRequired)
	}
	if utils.LooksLikeJWT(credential) {
		claims, err := utils.ParseAccessToken(g.tokenSecret, credential)
		if err == nil && claims.Scope == utils.ScopeSubmissions && claims.QuestionnaireID == q.ID.Hex() {
			return nil
		}
		log.Printf("[gate] questionnaire=%s token rejected", q.ID.Hex())
		return models.NewUnauthorizedError(msgInvalidCredentials)
	}
	return g.CheckQuestionnaire(q, credential)
}

// CheckQuestion verifies a question's own view password. Questions without one
// cannot be viewed on their own.
func (g *Gate) CheckQuestion(question *models.Question, secret string) error {
	if question.ViewPassword == "" {
		return models.NewForbiddenError(msgNotProtected)
	}
	if secret == "" {
		return models.NewUnauthorizedError(msgAuthRequired)
	}
	if !Verify(secret, question.ViewPassword) {
		log.Printf("[gate] question=%s password rejected", question.ID)
		return models.NewUnauthorizedError(msgInvalidCredentials)
	}
	return nil
}

// IssueToken mints a submissions-scoped token for one questionnaire.
func (g *Gate) IssueToken(questionnaireID string) (string, int, error) {
	token, err := utils.GenerateAccessToken(g.tokenSecret, questionnaireID, g.tokenTTL)
	if err != nil {
		return "", 0, err
	}
	return token, int(g.tokenTTL.Seconds()), nil
}
