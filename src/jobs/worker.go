package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"Backend-Questionnaire/src/repository"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrQuestionnaireStillExists means the audit ran for a questionnaire that was
// not deleted after all; there is nothing orphaned to report.
var ErrQuestionnaireStillExists = errors.New("questionnaire still exists")

// AuditOrphans counts the submissions left behind by a deleted questionnaire.
// It never deletes anything.
func AuditOrphans(ctx context.Context, questionnaires repository.QuestionnaireRepo, submissions repository.SubmissionRepo, questionnaireID string) (int64, error) {
	id, err := primitive.ObjectIDFromHex(questionnaireID)
	if err != nil {
		return 0, fmt.Errorf("invalid questionnaire id %q: %w", questionnaireID, err)
	}

	if _, err := questionnaires.GetByID(ctx, id); err == nil {
		return 0, ErrQuestionnaireStillExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return 0, err
	}

	return submissions.CountByQuestionnaire(ctx, id)
}

func HandleOrphanAuditTask(questionnaires repository.QuestionnaireRepo, submissions repository.SubmissionRepo) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload OrphanAuditPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Println("❌ Payload decode error:", err)
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		count, err := AuditOrphans(ctx, questionnaires, submissions, payload.QuestionnaireID)
		switch {
		case errors.Is(err, ErrQuestionnaireStillExists):
			log.Println("⚠️ [jobs] questionnaire still exists, skipping orphan audit:", payload.QuestionnaireID)
			return nil
		case err != nil:
			log.Println("❌ [jobs] orphan audit failed:", payload.QuestionnaireID, err)
			return err
		}

		if count > 0 {
			log.Printf("⚠️ [jobs] questionnaire=%s deleted with %d orphaned submissions", payload.QuestionnaireID, count)
		} else {
			log.Printf("✅ [jobs] questionnaire=%s deleted with no submissions", payload.QuestionnaireID)
		}
		return nil
	}
}

// NewServeMux registers every task handler of this service.
func NewServeMux(questionnaires repository.QuestionnaireRepo, submissions repository.SubmissionRepo) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeOrphanAudit, HandleOrphanAuditTask(questionnaires, submissions))
	return mux
}

// StartWorker runs the task server in the background. Callers stop it with Shutdown.
func StartWorker(redisAddr string, mux *asynq.ServeMux) (*asynq.Server, error) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{Concurrency: 2},
	)
	if err := srv.Start(mux); err != nil {
		return nil, err
	}
	log.Println("✅ Asynq worker started")
	return srv, nil
}
