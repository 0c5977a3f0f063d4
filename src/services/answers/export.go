package answers

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"Backend-Questionnaire/src/models"
)

// ExportCSV renders one row per submission and one column per question, in
// questionnaire order. Rows are numbered from 1 in the order given.
func ExportCSV(questionnaire *models.Questionnaire, submissions []models.Submission) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := make([]string, 0, 2+len(questionnaire.Questions))
	header = append(header, "Submission #", "Submitted At")
	for _, q := range questionnaire.Questions {
		header = append(header, q.Label)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i, sub := range submissions {
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(i+1), sub.SubmittedAt.UTC().Format(time.RFC3339))
		for _, q := range questionnaire.Questions {
			answer, ok := sub.Answers[q.ID]
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, Reduce(answer))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// ExportFilename mirrors the title with whitespace replaced by underscores.
func ExportFilename(title string) string {
	var b bytes.Buffer
	for _, r := range title {
		switch r {
		case ' ', '\t', '\n', '\r':
			b.WriteByte('_')
		case '"', '/', '\\':
			// dropped: unsafe inside Content-Disposition
		default:
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		b.WriteString("questionnaire")
	}
	b.WriteString("_submissions.csv")
	return b.String()
}
