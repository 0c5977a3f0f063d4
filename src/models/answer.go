package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// AnswerKind tags the Answer variant.
type AnswerKind int

const (
	AnswerNone AnswerKind = iota // null or absent
	AnswerText
	AnswerImageSelection
	AnswerOther // any other structured value, kept verbatim
)

func (k AnswerKind) String() string {
	switch k {
	case AnswerText:
		return "text"
	case AnswerImageSelection:
		return "image-selection"
	case AnswerOther:
		return "other"
	default:
		return "none"
	}
}

// ImageSelection is the answer to an image-select question.
type ImageSelection struct {
	Image        *string  `json:"image" bson:"image"`
	Reasons      []string `json:"reasons" bson:"reasons"`
	CustomReason string   `json:"customReason,omitempty" bson:"customReason,omitempty"`
}

// Answer is the value given for one question. Exactly one variant is set.
type Answer struct {
	kind  AnswerKind
	text  string
	image ImageSelection
	raw   json.RawMessage
}

func TextAnswer(s string) Answer {
	return Answer{kind: AnswerText, text: s}
}

func ImageAnswer(sel ImageSelection) Answer {
	if sel.Reasons == nil {
		sel.Reasons = []string{}
	}
	return Answer{kind: AnswerImageSelection, image: sel}
}

// OtherAnswer keeps raw as compact JSON. raw must be valid JSON.
func OtherAnswer(raw json.RawMessage) (Answer, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return Answer{}, err
	}
	return Answer{kind: AnswerOther, raw: buf.Bytes()}, nil
}

func (a Answer) Kind() AnswerKind { return a.kind }

func (a Answer) IsZero() bool { return a.kind == AnswerNone }

// Text is the plain text variant.
func (a Answer) Text() (string, bool) {
	return a.text, a.kind == AnswerText
}

// ImageSelection is the structured image-select variant.
func (a Answer) ImageSelection() (ImageSelection, bool) {
	return a.image, a.kind == AnswerImageSelection
}

// Raw is the compact JSON of the "other" variant.
func (a Answer) Raw() (json.RawMessage, bool) {
	return a.raw, a.kind == AnswerOther
}

// --- JSON ---

func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case AnswerText:
		return json.Marshal(a.text)
	case AnswerImageSelection:
		return json.Marshal(a.image)
	case AnswerOther:
		return a.raw, nil
	default:
		return []byte("null"), nil
	}
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Answer{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = TextAnswer(s)
		return nil
	case '{':
		if sel, ok := parseImageSelectionJSON(data); ok {
			*a = ImageAnswer(sel)
			return nil
		}
	}

	other, err := OtherAnswer(data)
	if err != nil {
		return err
	}
	*a = other
	return nil
}

// parseImageSelectionJSON accepts an object carrying both "image" and "reasons",
// where image is a string or null and reasons is an array of strings.
func parseImageSelectionJSON(data []byte) (ImageSelection, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return ImageSelection{}, false
	}
	if _, ok := fields["image"]; !ok {
		return ImageSelection{}, false
	}
	if _, ok := fields["reasons"]; !ok {
		return ImageSelection{}, false
	}

	var shape struct {
		Image        *string  `json:"image"`
		Reasons      []string `json:"reasons"`
		CustomReason *string  `json:"customReason"`
	}
	if err := json.Unmarshal(data, &shape); err != nil {
		return ImageSelection{}, false
	}
	if shape.Reasons == nil && !bytes.Equal(bytes.TrimSpace(fields["reasons"]), []byte("[]")) {
		// "reasons": null is not an array
		return ImageSelection{}, false
	}

	sel := ImageSelection{Image: shape.Image, Reasons: shape.Reasons}
	if shape.CustomReason != nil {
		sel.CustomReason = *shape.CustomReason
	}
	return sel, true
}

// --- BSON ---

func (a Answer) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch a.kind {
	case AnswerText:
		return bson.MarshalValue(a.text)
	case AnswerImageSelection:
		return bson.MarshalValue(a.image)
	case AnswerOther:
		return otherToBSON(a.raw)
	default:
		return bson.TypeNull, nil, nil
	}
}

func (a *Answer) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bson.TypeNull, bson.TypeUndefined:
		*a = Answer{}
		return nil
	case bson.TypeString:
		s, ok := bson.RawValue{Type: t, Value: data}.StringValueOK()
		if !ok {
			return errors.New("answer from bson: malformed string")
		}
		*a = TextAnswer(s)
		return nil
	case bson.TypeEmbeddedDocument:
		if isImageSelectionDoc(bson.Raw(data)) {
			var sel ImageSelection
			if err := bson.Unmarshal(data, &sel); err != nil {
				return fmt.Errorf("answer from bson: %w", err)
			}
			*a = ImageAnswer(sel)
			return nil
		}
	}

	raw, err := otherFromBSON(bson.RawValue{Type: t, Value: data})
	if err != nil {
		return err
	}
	other, err := OtherAnswer(raw)
	if err != nil {
		return err
	}
	*a = other
	return nil
}

func isImageSelectionDoc(doc bson.Raw) bool {
	image, err := doc.LookupErr("image")
	if err != nil || (image.Type != bson.TypeString && image.Type != bson.TypeNull) {
		return false
	}
	reasons, err := doc.LookupErr("reasons")
	if err != nil || reasons.Type != bson.TypeArray {
		return false
	}
	values, err := reasons.Array().Values()
	if err != nil {
		return false
	}
	for _, v := range values {
		if v.Type != bson.TypeString {
			return false
		}
	}
	if custom, err := doc.LookupErr("customReason"); err == nil && custom.Type != bson.TypeString {
		return false
	}
	return true
}
