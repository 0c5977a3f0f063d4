package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"Backend-Questionnaire/src/database"
	"Backend-Questionnaire/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SubmissionRepo handles MongoDB operations for submissions. There is no update
// or delete: submissions are immutable once stored.
type SubmissionRepo interface {
	Create(ctx context.Context, s *models.Submission) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Submission, error)
	ListByQuestionnaire(ctx context.Context, questionnaireID primitive.ObjectID) ([]models.Submission, error)
	CountByQuestionnaire(ctx context.Context, questionnaireID primitive.ObjectID) (int64, error)
}

type submissionRepo struct {
	provider database.Provider
}

// NewSubmissionRepo creates a new submission repository
func NewSubmissionRepo(p database.Provider) SubmissionRepo {
	return &submissionRepo{provider: p}
}

func (r *submissionRepo) coll(ctx context.Context) (*mongo.Collection, error) {
	return collection(ctx, r.provider, database.SubmissionCollection)
}

func (r *submissionRepo) Create(ctx context.Context, s *models.Submission) (primitive.ObjectID, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return primitive.NilObjectID, err
	}

	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	if s.SubmittedAt.IsZero() {
		s.SubmittedAt = time.Now()
	}

	res, err := coll.InsertOne(ctx, s)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.ID = oid
	}

	log.Printf("[submission] inserted id=%s questionnaire=%s answers=%d",
		s.ID.Hex(), s.QuestionnaireID.Hex(), len(s.Answers))
	return s.ID, nil
}

func (r *submissionRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Submission, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}

	var s models.Submission
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListByQuestionnaire returns submissions oldest first.
func (r *submissionRepo) ListByQuestionnaire(ctx context.Context, questionnaireID primitive.ObjectID) ([]models.Submission, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := coll.Find(ctx, bson.M{"questionnaireId": questionnaireID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Submission{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *submissionRepo) CountByQuestionnaire(ctx context.Context, questionnaireID primitive.ObjectID) (int64, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return 0, err
	}
	return coll.CountDocuments(ctx, bson.M{"questionnaireId": questionnaireID})
}
