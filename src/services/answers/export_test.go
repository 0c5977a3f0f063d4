package answers

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Backend-Questionnaire/src/models"
)

func TestExportCSV(t *testing.T) {
	q := &models.Questionnaire{
		Title: "Customer Feedback",
		Questions: []models.Question{
			{ID: "q1", Label: "Satisfied?"},
			{ID: "q2", Label: "Comments, if any"},
			{ID: "q3", Label: "Favourite"},
		},
	}
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.FixedZone("ICT", 7*3600))
	subs := []models.Submission{
		{
			SubmittedAt: at,
			Answers: map[string]models.Answer{
				"q1": models.TextAnswer("Yes"),
				"q3": models.ImageAnswer(models.ImageSelection{Image: strPtr("a.png"), Reasons: []string{"x", "y"}}),
			},
		},
		{
			SubmittedAt: at.Add(time.Hour),
			Answers:     map[string]models.Answer{"q2": models.TextAnswer(`said "hi"`)},
		},
	}

	data, err := ExportCSV(q, subs)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Submission #", "Submitted At", "Satisfied?", "Comments, if any", "Favourite"}, records[0])
	assert.Equal(t, []string{"1", "2024-03-01T02:30:00Z", "Yes", "", "Image: a.png | Reasons: x, y"}, records[1])
	assert.Equal(t, []string{"2", "2024-03-01T03:30:00Z", "", `said "hi"`, ""}, records[2])
}

func TestExportCSVHeaderOnly(t *testing.T) {
	data, err := ExportCSV(&models.Questionnaire{Questions: []models.Question{{ID: "q1", Label: "One"}}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Submission #,Submitted At,One\n", string(data))
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "Customer_Feedback_Survey_submissions.csv", ExportFilename("Customer Feedback Survey"))
	assert.Equal(t, "ab_submissions.csv", ExportFilename(`a/"b`))
	assert.Equal(t, "questionnaire_submissions.csv", ExportFilename(""))
}
