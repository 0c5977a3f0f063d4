package jobs

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TypeOrphanAudit = "questionnaire:orphan-audit"

type OrphanAuditPayload struct {
	QuestionnaireID string `json:"questionnaireId"`
}

func NewOrphanAuditTask(questionnaireID string) (*asynq.Task, error) {
	payload, err := json.Marshal(OrphanAuditPayload{QuestionnaireID: questionnaireID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeOrphanAudit, payload), nil
}

// Enqueuer schedules orphan audits after a questionnaire is deleted.
type Enqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

// EnqueueOrphanAudit is a no-op without an asynq client.
func (e *Enqueuer) EnqueueOrphanAudit(ctx context.Context, questionnaireID string) error {
	if e == nil || e.client == nil {
		return nil
	}

	task, err := NewOrphanAuditTask(questionnaireID)
	if err != nil {
		return err
	}
	taskID := "orphan-audit-" + questionnaireID + "-" + uuid.NewString()
	if _, err := e.client.EnqueueContext(ctx, task, asynq.TaskID(taskID), asynq.MaxRetry(3)); err != nil {
		return err
	}
	log.Println("✅ Enqueued orphan audit:", taskID)
	return nil
}
