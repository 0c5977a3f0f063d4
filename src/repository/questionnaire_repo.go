package repository

import (
	"context"
	"errors"
	"time"

	"Backend-Questionnaire/src/database"
	"Backend-Questionnaire/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// QuestionnaireRepo handles MongoDB operations for questionnaires
type QuestionnaireRepo interface {
	Create(ctx context.Context, q *models.Questionnaire) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Questionnaire, error)
	FindByQuestionID(ctx context.Context, questionID string) ([]models.Questionnaire, error)
	List(ctx context.Context, skip, limit int64) ([]models.QuestionnaireSummary, int64, error)
	Replace(ctx context.Context, q *models.Questionnaire) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type questionnaireRepo struct {
	provider database.Provider
}

// NewQuestionnaireRepo creates a new questionnaire repository
func NewQuestionnaireRepo(p database.Provider) QuestionnaireRepo {
	return &questionnaireRepo{provider: p}
}

func (r *questionnaireRepo) coll(ctx context.Context) (*mongo.Collection, error) {
	return collection(ctx, r.provider, database.QuestionnaireCollection)
}

func (r *questionnaireRepo) Create(ctx context.Context, q *models.Questionnaire) (primitive.ObjectID, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return primitive.NilObjectID, err
	}

	now := time.Now()
	q.CreatedAt = now
	q.UpdatedAt = now
	if q.ID.IsZero() {
		q.ID = primitive.NewObjectID()
	}

	res, err := coll.InsertOne(ctx, q)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		q.ID = oid
	}
	return q.ID, nil
}

func (r *questionnaireRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Questionnaire, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}
	return decodeQuestionnaire(coll.FindOne(ctx, bson.M{"_id": id}))
}

// FindByQuestionID returns every questionnaire holding a question with this
// id, oldest first. Question ids are only unique inside one questionnaire.
func (r *questionnaireRepo) FindByQuestionID(ctx context.Context, questionID string) ([]models.Questionnaire, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := coll.Find(ctx, bson.M{"questions.id": questionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Questionnaire{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeQuestionnaire(res *mongo.SingleResult) (*models.Questionnaire, error) {
	var q models.Questionnaire
	if err := res.Decode(&q); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &q, nil
}

// List returns summaries newest first plus the total count. limit 0 means all.
func (r *questionnaireRepo) List(ctx context.Context, skip, limit int64) ([]models.QuestionnaireSummary, int64, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return nil, 0, err
	}

	total, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}},
	}
	if skip > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$skip", Value: skip}})
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}
	pipeline = append(pipeline, bson.D{{Key: "$project", Value: bson.M{
		"title":         1,
		"description":   1,
		"questionCount": bson.M{"$size": bson.M{"$ifNull": bson.A{"$questions", bson.A{}}}},
	}}})

	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	out := []models.QuestionnaireSummary{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// Replace swaps the whole document, keeping _id.
func (r *questionnaireRepo) Replace(ctx context.Context, q *models.Questionnaire) error {
	coll, err := r.coll(ctx)
	if err != nil {
		return err
	}

	q.UpdatedAt = time.Now()
	res, err := coll.ReplaceOne(ctx, bson.M{"_id": q.ID}, q, options.Replace())
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *questionnaireRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	coll, err := r.coll(ctx)
	if err != nil {
		return err
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
