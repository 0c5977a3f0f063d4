package questionnaires

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"Backend-Questionnaire/src/models"
	"Backend-Questionnaire/src/services/access"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const minChoices = 2

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// normalizeInput trims every free-text field in place.
func normalizeInput(in *models.QuestionnaireInput) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	for i := range in.Questions {
		q := &in.Questions[i]
		q.ID = strings.TrimSpace(q.ID)
		q.Label = strings.TrimSpace(q.Label)
		q.Instructions = strings.TrimSpace(q.Instructions)
		q.Type = models.QuestionType(strings.TrimSpace(string(q.Type)))
	}
}

// ValidateInput runs the struct tag rules, then the per-type option rules.
// in must already be normalized.
func ValidateInput(in *models.QuestionnaireInput) error {
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return models.NewValidationError("%s", describe(verrs[0]))
		}
		return models.NewValidationError("invalid questionnaire: %v", err)
	}
	return nil
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed the %s rule", field, fe.Tag())
	}
}

// buildQuestions turns validated input into stored questions. existing maps
// question ids of the stored document to their current state, so a kept
// question without a new view password keeps its hash.
func buildQuestions(in []models.QuestionInput, existing map[string]models.Question) ([]models.Question, error) {
	out := make([]models.Question, 0, len(in))
	seen := make(map[string]struct{}, len(in))

	for i, qi := range in {
		id := qi.ID
		if id == "" {
			id = primitive.NewObjectID().Hex()
		}
		if _, dup := seen[id]; dup {
			return nil, models.NewValidationError("questions[%d].id %q is used twice", i, id)
		}
		seen[id] = struct{}{}

		typ := qi.Type
		if typ == "" {
			typ = models.QuestionRadio
		}

		q := models.Question{ID: id, Label: qi.Label, Type: typ}

		switch typ {
		case models.QuestionRadio:
			options, err := choiceSet(qi.Options, fmt.Sprintf("questions[%d].options", i))
			if err != nil {
				return nil, err
			}
			q.Options = options

		case models.QuestionImageSelect:
			images, labels, err := imageChoices(qi.ImageOptions, qi.ImageLabels, i)
			if err != nil {
				return nil, err
			}
			q.ImageOptions = images
			q.ImageLabels = labels
			q.Instructions = qi.Instructions
			reasons, err := uniqueNonEmpty(qi.Reasons, fmt.Sprintf("questions[%d].reasons", i))
			if err != nil {
				return nil, err
			}
			q.Reasons = reasons

		case models.QuestionText:
			// no choices
		}

		switch {
		case qi.ViewPassword != "":
			digest, err := access.Hash(qi.ViewPassword)
			if err != nil {
				if errors.Is(err, access.ErrSecretTooLong) {
					return nil, models.NewValidationError("questions[%d].viewPassword is too long", i)
				}
				return nil, models.NewInternalError("hash view password", err)
			}
			q.ViewPassword = digest
		case qi.RemoveViewPassword:
			q.ViewPassword = ""
		default:
			if prev, ok := existing[id]; ok {
				q.ViewPassword = prev.ViewPassword
			}
		}

		out = append(out, q)
	}
	return out, nil
}

// choiceSet trims values, drops blanks and requires at least two distinct entries.
func choiceSet(values []string, field string) ([]string, error) {
	out, err := uniqueNonEmpty(values, field)
	if err != nil {
		return nil, err
	}
	if len(out) < minChoices {
		return nil, models.NewValidationError("%s needs at least %d unique non-empty values", field, minChoices)
	}
	return out, nil
}

func uniqueNonEmpty(values []string, field string) ([]string, error) {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			return nil, models.NewValidationError("%s contains %q more than once", field, v)
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// imageChoices keeps image options and their labels aligned while dropping
// blank image references.
func imageChoices(images, labels []string, i int) ([]string, []string, error) {
	if len(labels) > 0 && len(labels) != len(images) {
		return nil, nil, models.NewValidationError("questions[%d].imageLabels must have one label per image option", i)
	}

	outImages := make([]string, 0, len(images))
	var outLabels []string
	seen := make(map[string]struct{}, len(images))
	for j, img := range images {
		img = strings.TrimSpace(img)
		if img == "" {
			continue
		}
		if _, dup := seen[img]; dup {
			return nil, nil, models.NewValidationError("questions[%d].imageOptions contains %q more than once", i, img)
		}
		seen[img] = struct{}{}
		outImages = append(outImages, img)
		if len(labels) > 0 {
			outLabels = append(outLabels, strings.TrimSpace(labels[j]))
		}
	}
	if len(outImages) < minChoices {
		return nil, nil, models.NewValidationError("questions[%d].imageOptions needs at least %d unique non-empty values", i, minChoices)
	}
	return outImages, outLabels, nil
}
