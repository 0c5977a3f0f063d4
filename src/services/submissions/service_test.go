package submissions

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"Backend-Questionnaire/src/models"
	"Backend-Questionnaire/src/repository"
	"Backend-Questionnaire/src/repository/memrepo"
	"Backend-Questionnaire/src/services/access"
)

func init() {
	access.Cost = bcrypt.MinCost
}

type fixture struct {
	store *memrepo.Store
	svc   *Service
	gate  *access.Gate
	q     *models.Questionnaire
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memrepo.New()
	gate := access.NewGate("operator", []byte("token-secret"), time.Minute)

	admin, err := access.Hash("admin")
	require.NoError(t, err)
	view, err := access.Hash("view")
	require.NoError(t, err)

	q := &models.Questionnaire{
		Title:    "Feedback",
		Password: admin,
		Questions: []models.Question{
			{ID: "q1", Label: "Happy?", Type: models.QuestionRadio, Options: []string{"Yes", "No"}, ViewPassword: view},
			{ID: "q2", Label: "Why?", Type: models.QuestionText},
			{ID: "q3", Label: "Pick", Type: models.QuestionImageSelect, ImageOptions: []string{"a.png", "b.png"}},
		},
	}
	_, err = store.Questionnaires().Create(context.Background(), q)
	require.NoError(t, err)

	return &fixture{
		store: store,
		svc:   NewService(store.Questionnaires(), store.Submissions(), gate),
		gate:  gate,
		q:     q,
	}
}

func decodeAnswers(t *testing.T, raw string) map[string]models.Answer {
	t.Helper()
	var out map[string]models.Answer
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	return out
}

func TestCreateAndListRoundTrip(t *testing.T) {
	f := newFixture(t)

	sub, err := f.svc.Create(context.Background(), &models.CreateSubmissionRequest{
		QuestionnaireID: f.q.ID.Hex(),
		Answers:         map[string]models.Answer{"q1": models.TextAnswer("Yes")},
	})
	require.NoError(t, err)
	assert.False(t, sub.ID.IsZero())
	assert.False(t, sub.SubmittedAt.IsZero())

	subs, err := f.svc.ListForQuestionnaire(context.Background(), f.q.ID.Hex(), "admin")
	require.NoError(t, err)
	require.Len(t, subs, 1)

	text, ok := subs[0].Answers["q1"].Text()
	assert.True(t, ok)
	assert.Equal(t, "Yes", text)
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, nil)
	assert.Equal(t, models.KindValidation, models.KindOf(err))

	_, err = f.svc.Create(ctx, &models.CreateSubmissionRequest{QuestionnaireID: f.q.ID.Hex()})
	assert.Equal(t, models.KindValidation, models.KindOf(err), "nil answers")

	_, err = f.svc.Create(ctx, &models.CreateSubmissionRequest{QuestionnaireID: "xyz", Answers: map[string]models.Answer{}})
	assert.Equal(t, models.KindInvalidIdentifier, models.KindOf(err))

	_, err = f.svc.Create(ctx, &models.CreateSubmissionRequest{QuestionnaireID: primitive.NewObjectID().Hex(), Answers: map[string]models.Answer{}})
	assert.Equal(t, models.KindNotFound, models.KindOf(err))

	bad := []string{
		`{"nope": "Yes"}`,
		`{"q1": {"image": "a.png", "reasons": []}}`,
		`{"q2": {"image": null, "reasons": []}}`,
		`{"q3": "a.png"}`,
	}
	for _, raw := range bad {
		_, err := f.svc.Create(ctx, &models.CreateSubmissionRequest{QuestionnaireID: f.q.ID.Hex(), Answers: decodeAnswers(t, raw)})
		assert.Equal(t, models.KindValidation, models.KindOf(err), raw)
	}
}

func TestCreateAcceptsShapes(t *testing.T) {
	f := newFixture(t)

	answers := decodeAnswers(t, `{
		"q1": "No",
		"q2": "",
		"q3": {"image": "b.png", "reasons": ["Colour"], "customReason": "nice"},
		"ignored": null
	}`)
	sub, err := f.svc.Create(context.Background(), &models.CreateSubmissionRequest{QuestionnaireID: f.q.ID.Hex(), Answers: answers})
	require.NoError(t, err)

	assert.Len(t, sub.Answers, 3)
	assert.NotContains(t, sub.Answers, "ignored")
	sel, ok := sub.Answers["q3"].ImageSelection()
	require.True(t, ok)
	assert.Equal(t, "nice", sel.CustomReason)
}

func TestCreateStoresValuesOutsideOptions(t *testing.T) {
	f := newFixture(t)

	answers := decodeAnswers(t, `{"q1": "Maybe", "q3": {"image": "c.png", "reasons": []}}`)
	sub, err := f.svc.Create(context.Background(), &models.CreateSubmissionRequest{QuestionnaireID: f.q.ID.Hex(), Answers: answers})
	require.NoError(t, err)

	text, ok := sub.Answers["q1"].Text()
	require.True(t, ok)
	assert.Equal(t, "Maybe", text)
	sel, ok := sub.Answers["q3"].ImageSelection()
	require.True(t, ok)
	require.NotNil(t, sel.Image)
	assert.Equal(t, "c.png", *sel.Image)
}

func TestCreateAllowsEmptyAnswers(t *testing.T) {
	f := newFixture(t)

	sub, err := f.svc.Create(context.Background(), &models.CreateSubmissionRequest{
		QuestionnaireID: f.q.ID.Hex(),
		Answers:         map[string]models.Answer{},
	})
	require.NoError(t, err)
	assert.Empty(t, sub.Answers)
}

func TestListForQuestionnaireAccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	subs, err := f.svc.ListForQuestionnaire(ctx, f.q.ID.Hex(), "admin")
	require.NoError(t, err)
	assert.NotNil(t, subs)
	assert.Empty(t, subs)

	subs, err = f.svc.ListForQuestionnaire(ctx, f.q.ID.Hex(), "wrong")
	assert.Nil(t, subs)
	assert.Equal(t, models.KindUnauthorized, models.KindOf(err))

	_, err = f.svc.ListForQuestionnaire(ctx, f.q.ID.Hex(), "view")
	assert.Equal(t, models.KindUnauthorized, models.KindOf(err), "question password must not open the questionnaire")

	_, err = f.svc.ListForQuestionnaire(ctx, f.q.ID.Hex(), "")
	assert.Equal(t, models.KindUnauthorized, models.KindOf(err))

	_, err = f.svc.ListForQuestionnaire(ctx, "bad", "admin")
	assert.Equal(t, models.KindInvalidIdentifier, models.KindOf(err))

	_, err = f.svc.ListForQuestionnaire(ctx, primitive.NewObjectID().Hex(), "admin")
	assert.Equal(t, models.KindNotFound, models.KindOf(err))
}

func TestListForQuestionnaireWithToken(t *testing.T) {
	f := newFixture(t)

	token, _, err := f.gate.IssueToken(f.q.ID.Hex())
	require.NoError(t, err)

	_, err = f.svc.ListForQuestionnaire(context.Background(), f.q.ID.Hex(), token)
	assert.NoError(t, err)
}

func TestListForQuestion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, raw := range []string{`{"q1": "Yes", "q2": "a"}`, `{"q2": "b"}`, `{"q1": "No"}`} {
		_, err := f.svc.Create(ctx, &models.CreateSubmissionRequest{QuestionnaireID: f.q.ID.Hex(), Answers: decodeAnswers(t, raw)})
		require.NoError(t, err)
	}

	res, err := f.svc.ListForQuestion(ctx, "q1", "view")
	require.NoError(t, err)
	assert.Equal(t, "Happy?", res.QuestionLabel)
	require.Len(t, res.Answers, 2)
	for _, a := range res.Answers {
		assert.NotEmpty(t, a.ID)
		assert.Equal(t, models.AnswerText, a.Answer.Kind())
	}

	direct, err := f.svc.ListForQuestionInQuestionnaire(ctx, f.q.ID.Hex(), "q1", "view")
	require.NoError(t, err)
	assert.Len(t, direct.Answers, 2)
}

func TestListForQuestionGate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.ListForQuestion(ctx, "q1", "admin")
	assert.Equal(t, models.KindUnauthorized, models.KindOf(err), "admin password must not open a question")

	_, err = f.svc.ListForQuestion(ctx, "q1", "")
	assert.Equal(t, models.KindValidation, models.KindOf(err))

	_, err = f.svc.ListForQuestion(ctx, "q2", "view")
	assert.Equal(t, models.KindForbidden, models.KindOf(err))

	_, err = f.svc.ListForQuestion(ctx, "missing", "view")
	assert.Equal(t, models.KindNotFound, models.KindOf(err))

	_, err = f.svc.ListForQuestionInQuestionnaire(ctx, f.q.ID.Hex(), "missing", "view")
	assert.Equal(t, models.KindNotFound, models.KindOf(err))

	_, err = f.svc.ListForQuestionInQuestionnaire(ctx, "nope", "q1", "view")
	assert.Equal(t, models.KindInvalidIdentifier, models.KindOf(err))
}

func TestListForQuestionSharedID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	admin, err := access.Hash("admin2")
	require.NoError(t, err)
	view, err := access.Hash("view2")
	require.NoError(t, err)
	other := &models.Questionnaire{
		Title:    "Second",
		Password: admin,
		Questions: []models.Question{
			{ID: "q1", Label: "Sleep well?", Type: models.QuestionRadio, Options: []string{"Yes", "No"}, ViewPassword: view},
		},
	}
	_, err = f.store.Questionnaires().Create(ctx, other)
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, &models.CreateSubmissionRequest{QuestionnaireID: f.q.ID.Hex(), Answers: decodeAnswers(t, `{"q1": "Yes"}`)})
	require.NoError(t, err)
	for _, raw := range []string{`{"q1": "No"}`, `{"q1": "Yes"}`} {
		_, err = f.svc.Create(ctx, &models.CreateSubmissionRequest{QuestionnaireID: other.ID.Hex(), Answers: decodeAnswers(t, raw)})
		require.NoError(t, err)
	}

	for i := 0; i < 5; i++ {
		first, err := f.svc.ListForQuestion(ctx, "q1", "view")
		require.NoError(t, err)
		assert.Equal(t, "Happy?", first.QuestionLabel)
		assert.Len(t, first.Answers, 1)

		second, err := f.svc.ListForQuestion(ctx, "q1", "view2")
		require.NoError(t, err)
		assert.Equal(t, "Sleep well?", second.QuestionLabel)
		assert.Len(t, second.Answers, 2)
	}

	_, err = f.svc.ListForQuestion(ctx, "q1", "admin2")
	assert.Equal(t, models.KindUnauthorized, models.KindOf(err))
}

func TestListForQuestionSharedIDPrefersUnauthorized(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	open := &models.Questionnaire{
		Title:     "No viewer",
		Questions: []models.Question{{ID: "q1", Label: "Open", Type: models.QuestionText}},
	}
	_, err := f.store.Questionnaires().Create(ctx, open)
	require.NoError(t, err)

	_, err = f.svc.ListForQuestion(ctx, "q1", "wrong")
	assert.Equal(t, models.KindUnauthorized, models.KindOf(err))
}

func TestOrphanedSubmissionSurvivesDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sub, err := f.svc.Create(ctx, &models.CreateSubmissionRequest{
		QuestionnaireID: f.q.ID.Hex(),
		Answers:         map[string]models.Answer{"q1": models.TextAnswer("Yes")},
	})
	require.NoError(t, err)

	require.NoError(t, f.store.Questionnaires().Delete(ctx, f.q.ID))

	got, err := f.svc.Get(ctx, sub.ID.Hex(), "operator")
	require.NoError(t, err)
	assert.Equal(t, f.q.ID, got.QuestionnaireID)

	count, err := f.store.Submissions().CountByQuestionnaire(ctx, f.q.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGetRequiresOperator(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Get(ctx, primitive.NewObjectID().Hex(), "")
	assert.Equal(t, models.KindUnauthorized, models.KindOf(err))

	_, err = f.svc.Get(ctx, "bad", "operator")
	assert.Equal(t, models.KindInvalidIdentifier, models.KindOf(err))

	_, err = f.svc.Get(ctx, primitive.NewObjectID().Hex(), "operator")
	assert.Equal(t, models.KindNotFound, models.KindOf(err))
}

func TestExport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, &models.CreateSubmissionRequest{
		QuestionnaireID: f.q.ID.Hex(),
		Answers:         decodeAnswers(t, `{"q1": "Yes", "q3": {"image": "a.png", "reasons": ["x", "y"]}}`),
	})
	require.NoError(t, err)

	name, data, err := f.svc.Export(ctx, f.q.ID.Hex(), "admin")
	require.NoError(t, err)
	assert.Equal(t, "Feedback_submissions.csv", name)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Submission #,Submitted At,Happy?,Why?,Pick", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1,"))
	assert.True(t, strings.HasSuffix(lines[1], ",Yes,,\"Image: a.png | Reasons: x, y\""))

	_, _, err = f.svc.Export(ctx, f.q.ID.Hex(), "view")
	assert.Equal(t, models.KindUnauthorized, models.KindOf(err))
}

// MockSubmissionRepo fails on demand to exercise the internal error path.
type MockSubmissionRepo struct {
	mock.Mock
}

func (m *MockSubmissionRepo) Create(ctx context.Context, s *models.Submission) (primitive.ObjectID, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockSubmissionRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Submission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Submission), args.Error(1)
}

func (m *MockSubmissionRepo) ListByQuestionnaire(ctx context.Context, id primitive.ObjectID) ([]models.Submission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Submission), args.Error(1)
}

func (m *MockSubmissionRepo) CountByQuestionnaire(ctx context.Context, id primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

var _ repository.SubmissionRepo = (*MockSubmissionRepo)(nil)

func TestStoreFailuresAreInternal(t *testing.T) {
	f := newFixture(t)
	subs := new(MockSubmissionRepo)
	subs.On("Create", mock.Anything, mock.Anything).Return(primitive.NilObjectID, errors.New("write concern"))
	subs.On("ListByQuestionnaire", mock.Anything, f.q.ID).Return(nil, errors.New("cursor died"))
	svc := NewService(f.store.Questionnaires(), subs, f.gate)

	_, err := svc.Create(context.Background(), &models.CreateSubmissionRequest{
		QuestionnaireID: f.q.ID.Hex(),
		Answers:         map[string]models.Answer{},
	})
	assert.Equal(t, models.KindInternal, models.KindOf(err))

	_, err = svc.ListForQuestionnaire(context.Background(), f.q.ID.Hex(), "admin")
	assert.Equal(t, models.KindInternal, models.KindOf(err))
	assert.Equal(t, "internal server error", models.PublicMessage(err))
}
