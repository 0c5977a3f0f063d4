package questionnaires

import (
	"context"
	"errors"
	"log"
	"strings"

	"Backend-Questionnaire/src/models"
	"Backend-Questionnaire/src/repository"
	"Backend-Questionnaire/src/services/access"
	"Backend-Questionnaire/src/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeneratedPasswordLength is the length of the hex admin password handed out on create.
const GeneratedPasswordLength = 8

// OrphanAuditor is told about deleted questionnaires so the submissions they
// leave behind can be reported.
type OrphanAuditor interface {
	EnqueueOrphanAudit(ctx context.Context, questionnaireID string) error
}

type Service struct {
	repo    repository.QuestionnaireRepo
	gate    *access.Gate
	auditor OrphanAuditor
}

// NewService wires the questionnaire service. auditor may be nil.
func NewService(repo repository.QuestionnaireRepo, gate *access.Gate, auditor OrphanAuditor) *Service {
	return &Service{repo: repo, gate: gate, auditor: auditor}
}

// ParseID converts a path id into a store key.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, models.NewInvalidIdentifierError("invalid questionnaire id")
	}
	return oid, nil
}

// Create stores a new questionnaire and returns its admin password. The
// plaintext is never stored and cannot be recovered later.
func (s *Service) Create(ctx context.Context, in *models.QuestionnaireInput) (*models.CreateQuestionnaireResponse, error) {
	if in == nil {
		return nil, models.NewValidationError("questionnaire body is required")
	}
	normalizeInput(in)
	if err := ValidateInput(in); err != nil {
		return nil, err
	}
	questions, err := buildQuestions(in.Questions, nil)
	if err != nil {
		return nil, err
	}

	password, err := utils.GenerateRandomString(GeneratedPasswordLength)
	if err != nil {
		return nil, models.NewInternalError("generate password", err)
	}
	digest, err := access.Hash(password)
	if err != nil {
		return nil, models.NewInternalError("hash password", err)
	}

	q := &models.Questionnaire{
		Title:       in.Title,
		Description: in.Description,
		Layout:      layoutOrDefault(in.Layout),
		Password:    digest,
		Questions:   questions,
	}
	id, err := s.repo.Create(ctx, q)
	if err != nil {
		return nil, models.NewInternalError("create questionnaire", err)
	}

	log.Printf("[questionnaire] created id=%s questions=%d", id.Hex(), len(questions))
	return &models.CreateQuestionnaireResponse{
		ID:                id.Hex(),
		Title:             q.Title,
		GeneratedPassword: password,
	}, nil
}

// Get returns the questionnaire without any password material.
func (s *Service) Get(ctx context.Context, id string) (*models.Questionnaire, error) {
	q, err := s.load(ctx, id, "get questionnaire")
	if err != nil {
		return nil, err
	}
	public := q.Public()
	return &public, nil
}

// List returns summaries behind the operator secret.
func (s *Service) List(ctx context.Context, operatorSecret string, page models.PaginationParams) ([]models.QuestionnaireSummary, int64, error) {
	if err := s.gate.CheckOperator(operatorSecret); err != nil {
		return nil, 0, err
	}

	page = page.Normalize()
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}
	items, total, err := s.repo.List(ctx, page.GetSkip(), int64(page.Limit))
	if err != nil {
		return nil, 0, models.NewInternalError("list questionnaires", err)
	}
	return items, total, nil
}

// Update replaces the questionnaire after checking its admin password. The
// password hash and creation time survive the replace.
func (s *Service) Update(ctx context.Context, id, credential string, in *models.QuestionnaireInput) (*models.Questionnaire, error) {
	existing, err := s.load(ctx, id, "update questionnaire")
	if err != nil {
		return nil, err
	}
	if err := s.gate.CheckQuestionnaire(existing, credential); err != nil {
		return nil, err
	}
	if in == nil {
		return nil, models.NewValidationError("questionnaire body is required")
	}

	normalizeInput(in)
	if err := ValidateInput(in); err != nil {
		return nil, err
	}
	previous := make(map[string]models.Question, len(existing.Questions))
	for _, q := range existing.Questions {
		previous[q.ID] = q
	}
	questions, err := buildQuestions(in.Questions, previous)
	if err != nil {
		return nil, err
	}

	updated := &models.Questionnaire{
		ID:          existing.ID,
		Title:       in.Title,
		Description: in.Description,
		Layout:      layoutOrDefault(in.Layout),
		Password:    existing.Password,
		Questions:   questions,
		CreatedAt:   existing.CreatedAt,
	}
	if err := s.repo.Replace(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewNotFoundError("questionnaire not found")
		}
		return nil, models.NewInternalError("update questionnaire "+existing.ID.Hex(), err)
	}

	log.Printf("[questionnaire] updated id=%s questions=%d", updated.ID.Hex(), len(questions))
	public := updated.Public()
	return &public, nil
}

// Delete removes the questionnaire only. Its submissions stay in place.
func (s *Service) Delete(ctx context.Context, id, credential string) error {
	existing, err := s.load(ctx, id, "delete questionnaire")
	if err != nil {
		return err
	}
	if err := s.gate.CheckQuestionnaire(existing, credential); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, existing.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.NewNotFoundError("questionnaire not found")
		}
		return models.NewInternalError("delete questionnaire "+existing.ID.Hex(), err)
	}
	log.Printf("[questionnaire] deleted id=%s", existing.ID.Hex())

	if s.auditor != nil {
		if err := s.auditor.EnqueueOrphanAudit(ctx, existing.ID.Hex()); err != nil {
			log.Printf("⚠️ [questionnaire] orphan audit not scheduled for %s: %v", existing.ID.Hex(), err)
		}
	}
	return nil
}

// Verify checks the admin password and, on success, issues a submissions token.
func (s *Service) Verify(ctx context.Context, id, password string) (*models.VerifyPasswordResponse, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, models.NewValidationError("password is required")
	}

	q, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, mapLoadError(err, "verify questionnaire "+oid.Hex())
	}
	if err := s.gate.CheckQuestionnaire(q, password); err != nil {
		return nil, err
	}

	token, expiresIn, err := s.gate.IssueToken(q.ID.Hex())
	if err != nil {
		return nil, models.NewInternalError("issue access token", err)
	}
	return &models.VerifyPasswordResponse{Success: true, Token: token, ExpiresIn: expiresIn}, nil
}

func (s *Service) load(ctx context.Context, id, op string) (*models.Questionnaire, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	q, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, mapLoadError(err, op+" "+oid.Hex())
	}
	return q, nil
}

func mapLoadError(err error, op string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return models.NewNotFoundError("questionnaire not found")
	}
	return models.NewInternalError(op, err)
}

func layoutOrDefault(l models.Layout) models.Layout {
	if l == "" {
		return models.LayoutMultiPage
	}
	return l
}
