package submissions

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"Backend-Questionnaire/src/models"
	"Backend-Questionnaire/src/repository"
	"Backend-Questionnaire/src/services/access"
	"Backend-Questionnaire/src/services/answers"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Service struct {
	questionnaires repository.QuestionnaireRepo
	submissions    repository.SubmissionRepo
	gate           *access.Gate
	now            func() time.Time
}

func NewService(questionnaires repository.QuestionnaireRepo, submissions repository.SubmissionRepo, gate *access.Gate) *Service {
	return &Service{
		questionnaires: questionnaires,
		submissions:    submissions,
		gate:           gate,
		now:            time.Now,
	}
}

// Create validates answers against the questionnaire and stores a new
// submission. Nothing here prevents the same respondent submitting twice.
func (s *Service) Create(ctx context.Context, req *models.CreateSubmissionRequest) (*models.Submission, error) {
	if req == nil || strings.TrimSpace(req.QuestionnaireID) == "" || req.Answers == nil {
		return nil, models.NewValidationError("a valid questionnaireId and answers object are required")
	}
	qid, err := primitive.ObjectIDFromHex(strings.TrimSpace(req.QuestionnaireID))
	if err != nil {
		return nil, models.NewInvalidIdentifierError("invalid questionnaire id")
	}

	q, err := s.loadQuestionnaire(ctx, qid, "create submission")
	if err != nil {
		return nil, err
	}

	accepted, err := checkAnswers(q, req.Answers)
	if err != nil {
		return nil, err
	}

	sub := &models.Submission{
		QuestionnaireID: q.ID,
		Answers:         accepted,
		SubmittedAt:     s.now().UTC(),
	}
	if _, err := s.submissions.Create(ctx, sub); err != nil {
		return nil, models.NewInternalError("create submission for "+q.ID.Hex(), err)
	}
	return sub, nil
}

// checkAnswers drops null answers and rejects keys or shapes the questionnaire
// does not allow.
func checkAnswers(q *models.Questionnaire, in map[string]models.Answer) (map[string]models.Answer, error) {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]models.Answer, len(in))
	for _, key := range keys {
		answer := in[key]
		if answer.IsZero() {
			continue
		}
		question, ok := q.FindQuestion(key)
		if !ok {
			return nil, models.NewValidationError("answers contains unknown question %q", key)
		}
		if err := checkShape(question, answer); err != nil {
			return nil, err
		}
		out[key] = answer
	}
	return out, nil
}

// checkShape only looks at the answer's variant. Option values and image
// names are stored as given.
func checkShape(question *models.Question, answer models.Answer) error {
	if answer.Kind() == models.AnswerOther {
		return nil
	}

	switch question.Type {
	case models.QuestionRadio, models.QuestionText:
		if _, ok := answer.Text(); !ok {
			return models.NewValidationError("answer to %q must be text", question.ID)
		}
	case models.QuestionImageSelect:
		if _, ok := answer.ImageSelection(); !ok {
			return models.NewValidationError("answer to %q must be an image selection", question.ID)
		}
	}
	return nil
}

// ListForQuestionnaire returns every submission once the admin password (or a
// token issued for this questionnaire) checks out.
func (s *Service) ListForQuestionnaire(ctx context.Context, questionnaireID, credential string) ([]models.Submission, error) {
	q, err := s.authorizedQuestionnaire(ctx, questionnaireID, credential, "list submissions")
	if err != nil {
		return nil, err
	}

	subs, err := s.submissions.ListByQuestionnaire(ctx, q.ID)
	if err != nil {
		return nil, models.NewInternalError("list submissions for "+q.ID.Hex(), err)
	}
	return subs, nil
}

// Export renders the questionnaire's submissions as CSV.
func (s *Service) Export(ctx context.Context, questionnaireID, credential string) (string, []byte, error) {
	q, err := s.authorizedQuestionnaire(ctx, questionnaireID, credential, "export submissions")
	if err != nil {
		return "", nil, err
	}

	subs, err := s.submissions.ListByQuestionnaire(ctx, q.ID)
	if err != nil {
		return "", nil, models.NewInternalError("export submissions for "+q.ID.Hex(), err)
	}
	data, err := answers.ExportCSV(q, subs)
	if err != nil {
		return "", nil, models.NewInternalError("render csv for "+q.ID.Hex(), err)
	}

	log.Printf("[submission] exported questionnaire=%s rows=%d", q.ID.Hex(), len(subs))
	return answers.ExportFilename(q.Title), data, nil
}

// ListForQuestion returns the answers to one question, gated by the
// question's own view password. Question ids are only unique per
// questionnaire, so every questionnaire holding the id is tried and the first
// whose question accepts the password wins.
func (s *Service) ListForQuestion(ctx context.Context, questionID, password string) (*models.QuestionAnswers, error) {
	if password == "" {
		return nil, models.NewValidationError("password is required")
	}

	candidates, err := s.questionnaires.FindByQuestionID(ctx, questionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewNotFoundError("question not found")
		}
		return nil, models.NewInternalError("find question "+questionID, err)
	}

	var denied error
	for i := range candidates {
		q := &candidates[i]
		question, ok := q.FindQuestion(questionID)
		if !ok {
			continue
		}
		err := s.gate.CheckQuestion(question, password)
		if err == nil {
			return s.collectAnswers(ctx, q, question)
		}
		// A wrong password outranks a question that has no view password.
		if denied == nil || models.KindOf(err) == models.KindUnauthorized {
			denied = err
		}
	}
	if denied == nil {
		return nil, models.NewNotFoundError("question not found")
	}
	return nil, denied
}

// ListForQuestionInQuestionnaire is ListForQuestion with the owner known up front.
func (s *Service) ListForQuestionInQuestionnaire(ctx context.Context, questionnaireID, questionID, password string) (*models.QuestionAnswers, error) {
	qid, err := primitive.ObjectIDFromHex(strings.TrimSpace(questionnaireID))
	if err != nil {
		return nil, models.NewInvalidIdentifierError("invalid questionnaire id")
	}
	if password == "" {
		return nil, models.NewValidationError("password is required")
	}

	q, err := s.loadQuestionnaire(ctx, qid, "list question answers")
	if err != nil {
		return nil, err
	}
	question, ok := q.FindQuestion(questionID)
	if !ok {
		return nil, models.NewNotFoundError("question not found")
	}
	if err := s.gate.CheckQuestion(question, password); err != nil {
		return nil, err
	}
	return s.collectAnswers(ctx, q, question)
}

func (s *Service) collectAnswers(ctx context.Context, q *models.Questionnaire, question *models.Question) (*models.QuestionAnswers, error) {
	subs, err := s.submissions.ListByQuestionnaire(ctx, q.ID)
	if err != nil {
		return nil, models.NewInternalError("list answers for question "+question.ID, err)
	}

	out := &models.QuestionAnswers{QuestionLabel: question.Label, Answers: []models.QuestionAnswer{}}
	for _, sub := range subs {
		answer, ok := sub.Answers[question.ID]
		if !ok || answer.IsZero() {
			continue
		}
		out.Answers = append(out.Answers, models.QuestionAnswer{
			ID:          sub.ID.Hex(),
			Answer:      answer,
			SubmittedAt: sub.SubmittedAt,
		})
	}
	return out, nil
}

// Get returns one submission to the operator, whether or not its questionnaire
// still exists.
func (s *Service) Get(ctx context.Context, id, operatorSecret string) (*models.Submission, error) {
	if err := s.gate.CheckOperator(operatorSecret); err != nil {
		return nil, err
	}
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, models.NewInvalidIdentifierError("invalid submission id")
	}

	sub, err := s.submissions.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewNotFoundError("submission not found")
		}
		return nil, models.NewInternalError("get submission "+oid.Hex(), err)
	}
	return sub, nil
}

func (s *Service) authorizedQuestionnaire(ctx context.Context, questionnaireID, credential, op string) (*models.Questionnaire, error) {
	qid, err := primitive.ObjectIDFromHex(strings.TrimSpace(questionnaireID))
	if err != nil {
		return nil, models.NewInvalidIdentifierError("invalid questionnaire id")
	}
	q, err := s.loadQuestionnaire(ctx, qid, op)
	if err != nil {
		return nil, err
	}
	if err := s.gate.CheckQuestionnaireAccess(q, credential); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *Service) loadQuestionnaire(ctx context.Context, id primitive.ObjectID, op string) (*models.Questionnaire, error) {
	q, err := s.questionnaires.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewNotFoundError("questionnaire not found")
		}
		return nil, models.NewInternalError(op+" "+id.Hex(), err)
	}
	return q, nil
}
