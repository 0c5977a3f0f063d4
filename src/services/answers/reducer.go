// Package answers turns stored answers into display and export strings.
package answers

import (
	"strings"

	"Backend-Questionnaire/src/models"
)

// Reduce renders an answer as a single canonical string. It is pure: the same
// answer always yields the same bytes.
func Reduce(a models.Answer) string {
	switch a.Kind() {
	case models.AnswerText:
		text, _ := a.Text()
		return text
	case models.AnswerImageSelection:
		sel, _ := a.ImageSelection()
		return reduceImageSelection(sel)
	case models.AnswerOther:
		raw, _ := a.Raw()
		return string(raw)
	default:
		return ""
	}
}

func reduceImageSelection(sel models.ImageSelection) string {
	image := "null"
	if sel.Image != nil {
		image = *sel.Image
	}

	var b strings.Builder
	b.WriteString("Image: ")
	b.WriteString(image)
	b.WriteString(" | Reasons: ")
	b.WriteString(strings.Join(sel.Reasons, ", "))
	if sel.CustomReason != "" {
		b.WriteString(" | Custom: ")
		b.WriteString(sel.CustomReason)
	}
	return b.String()
}
