// Package memrepo is an in-memory stand-in for the Mongo repositories, used by
// tests that exercise services and routes without a database.
package memrepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"Backend-Questionnaire/src/models"
	"Backend-Questionnaire/src/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Store struct {
	mu             sync.RWMutex
	questionnaires map[primitive.ObjectID]models.Questionnaire
	submissions    map[primitive.ObjectID]models.Submission
	clock          func() time.Time
}

func New() *Store {
	return &Store{
		questionnaires: map[primitive.ObjectID]models.Questionnaire{},
		submissions:    map[primitive.ObjectID]models.Submission{},
		clock:          time.Now,
	}
}

func (s *Store) Questionnaires() repository.QuestionnaireRepo { return questionnaireRepo{s} }

func (s *Store) Submissions() repository.SubmissionRepo { return submissionRepo{s} }

func cloneQuestionnaire(q models.Questionnaire) models.Questionnaire {
	questions := make([]models.Question, len(q.Questions))
	for i, question := range q.Questions {
		question.Options = append([]string(nil), question.Options...)
		question.ImageOptions = append([]string(nil), question.ImageOptions...)
		question.ImageLabels = append([]string(nil), question.ImageLabels...)
		question.Reasons = append([]string(nil), question.Reasons...)
		questions[i] = question
	}
	q.Questions = questions
	return q
}

func cloneSubmission(sub models.Submission) models.Submission {
	answers := make(map[string]models.Answer, len(sub.Answers))
	for k, v := range sub.Answers {
		answers[k] = v
	}
	sub.Answers = answers
	return sub
}

type questionnaireRepo struct{ s *Store }

func (r questionnaireRepo) Create(_ context.Context, q *models.Questionnaire) (primitive.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.clock()
	q.CreatedAt, q.UpdatedAt = now, now
	if q.ID.IsZero() {
		q.ID = primitive.NewObjectID()
	}
	r.s.questionnaires[q.ID] = cloneQuestionnaire(*q)
	return q.ID, nil
}

func (r questionnaireRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Questionnaire, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	q, ok := r.s.questionnaires[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := cloneQuestionnaire(q)
	return &out, nil
}

func (r questionnaireRepo) FindByQuestionID(_ context.Context, questionID string) ([]models.Questionnaire, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Questionnaire{}
	for _, q := range r.s.questionnaires {
		if _, ok := q.FindQuestion(questionID); ok {
			out = append(out, cloneQuestionnaire(q))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.Hex() < out[j].ID.Hex()
	})
	return out, nil
}

func (r questionnaireRepo) List(_ context.Context, skip, limit int64) ([]models.QuestionnaireSummary, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := make([]models.Questionnaire, 0, len(r.s.questionnaires))
	for _, q := range r.s.questionnaires {
		all = append(all, q)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID.Hex() > all[j].ID.Hex()
	})

	out := []models.QuestionnaireSummary{}
	for i, q := range all {
		if int64(i) < skip {
			continue
		}
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
		out = append(out, models.QuestionnaireSummary{
			ID:            q.ID,
			Title:         q.Title,
			Description:   q.Description,
			QuestionCount: len(q.Questions),
		})
	}
	return out, int64(len(all)), nil
}

func (r questionnaireRepo) Replace(_ context.Context, q *models.Questionnaire) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.questionnaires[q.ID]; !ok {
		return repository.ErrNotFound
	}
	q.UpdatedAt = r.s.clock()
	r.s.questionnaires[q.ID] = cloneQuestionnaire(*q)
	return nil
}

func (r questionnaireRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.questionnaires[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.questionnaires, id)
	return nil
}

type submissionRepo struct{ s *Store }

func (r submissionRepo) Create(_ context.Context, sub *models.Submission) (primitive.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if sub.ID.IsZero() {
		sub.ID = primitive.NewObjectID()
	}
	if sub.SubmittedAt.IsZero() {
		sub.SubmittedAt = r.s.clock()
	}
	r.s.submissions[sub.ID] = cloneSubmission(*sub)
	return sub.ID, nil
}

func (r submissionRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Submission, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sub, ok := r.s.submissions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := cloneSubmission(sub)
	return &out, nil
}

func (r submissionRepo) ListByQuestionnaire(_ context.Context, questionnaireID primitive.ObjectID) ([]models.Submission, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Submission{}
	for _, sub := range r.s.submissions {
		if sub.QuestionnaireID == questionnaireID {
			out = append(out, cloneSubmission(sub))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return out[i].SubmittedAt.Before(out[j].SubmittedAt)
		}
		return out[i].ID.Hex() < out[j].ID.Hex()
	})
	return out, nil
}

func (r submissionRepo) CountByQuestionnaire(ctx context.Context, questionnaireID primitive.ObjectID) (int64, error) {
	subs, err := r.ListByQuestionnaire(ctx, questionnaireID)
	if err != nil {
		return 0, err
	}
	return int64(len(subs)), nil
}
