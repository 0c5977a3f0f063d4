package repository

import (
	"context"
	"errors"

	"Backend-Questionnaire/src/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a well-formed id matches no document.
var ErrNotFound = errors.New("document not found")

func collection(ctx context.Context, p database.Provider, name string) (*mongo.Collection, error) {
	db, err := p.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

// EnsureIndexes creates the lookup indexes used by the services.
func EnsureIndexes(ctx context.Context, p database.Provider) error {
	questionnaires, err := collection(ctx, p, database.QuestionnaireCollection)
	if err != nil {
		return err
	}
	if _, err := questionnaires.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "questions.id", Value: 1}},
	}); err != nil {
		return err
	}

	submissions, err := collection(ctx, p, database.SubmissionCollection)
	if err != nil {
		return err
	}
	_, err = submissions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "questionnaireId", Value: 1}, {Key: "submittedAt", Value: 1}},
		Options: options.Index().SetName("questionnaire_submitted"),
	})
	return err
}
