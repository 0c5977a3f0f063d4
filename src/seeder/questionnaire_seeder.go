package seeder

import (
	"context"
	"log"

	"Backend-Questionnaire/src/models"
	"Backend-Questionnaire/src/repository"
	"Backend-Questionnaire/src/services/questionnaires"
)

// SampleQuestionnaire is the customer feedback survey used for demos.
func SampleQuestionnaire() *models.QuestionnaireInput {
	return &models.QuestionnaireInput{
		Title:       "Customer Feedback Survey",
		Description: "Thank you for taking the time to provide your feedback. Your input is valuable to us and will help improve our services.",
		Questions: []models.QuestionInput{
			{
				Label:   "How would you rate your overall experience with our service?",
				Type:    models.QuestionRadio,
				Options: []string{"Excellent", "Good", "Fair", "Poor", "Very Poor"},
			},
			{
				Label:   "Which of these words would you use to describe our product?",
				Type:    models.QuestionRadio,
				Options: []string{"Reliable", "High-quality", "Useful", "Overpriced", "Impractical"},
			},
			{
				Label:   "How likely are you to recommend our company to a friend or colleague?",
				Type:    models.QuestionRadio,
				Options: []string{"Very Likely", "Likely", "Neutral", "Unlikely", "Very Unlikely"},
			},
			{
				Label: "What was the primary reason for your visit today?",
				Type:  models.QuestionText,
			},
		},
	}
}

// SeedSampleQuestionnaire inserts the sample survey when the store holds no
// questionnaire yet. It returns nil with nothing created otherwise.
func SeedSampleQuestionnaire(ctx context.Context, repo repository.QuestionnaireRepo, svc *questionnaires.Service) (*models.CreateQuestionnaireResponse, error) {
	_, total, err := repo.List(ctx, 0, 1)
	if err != nil {
		return nil, err
	}
	if total > 0 {
		log.Println("ℹ️ [seeder] questionnaires already present, skipping")
		return nil, nil
	}

	created, err := svc.Create(ctx, SampleQuestionnaire())
	if err != nil {
		return nil, err
	}
	log.Printf("✅ [seeder] seeded %q id=%s admin password=%s", created.Title, created.ID, created.GeneratedPassword)
	return created, nil
}
