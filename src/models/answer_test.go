package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestAnswerUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind AnswerKind
	}{
		{"null", `null`, AnswerNone},
		{"text", `"Yes"`, AnswerText},
		{"image", `{"image":"a.png","reasons":["x"]}`, AnswerImageSelection},
		{"null image", `{"image":null,"reasons":[]}`, AnswerImageSelection},
		{"image with custom", `{"image":"a.png","reasons":[],"customReason":"c"}`, AnswerImageSelection},
		{"missing reasons", `{"image":"a.png"}`, AnswerOther},
		{"null reasons", `{"image":"a.png","reasons":null}`, AnswerOther},
		{"numeric reasons", `{"image":"a.png","reasons":[1]}`, AnswerOther},
		{"number", `42`, AnswerOther},
		{"array", `["a","b"]`, AnswerOther},
		{"bool", `true`, AnswerOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Answer
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &a))
			assert.Equal(t, tt.kind, a.Kind())
		})
	}
}

func TestAnswerJSONRoundTrip(t *testing.T) {
	in := `{"a":"Yes","b":{"image":null,"reasons":["r"]},"c":{"z":1,"y":[1,2]}}`

	var answers map[string]Answer
	require.NoError(t, json.Unmarshal([]byte(in), &answers))

	out, err := json.Marshal(answers)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))

	raw, ok := answers["c"].Raw()
	require.True(t, ok)
	assert.Equal(t, `{"z":1,"y":[1,2]}`, string(raw))
}

func TestAnswerBSONRoundTrip(t *testing.T) {
	image := "b.png"
	other, err := OtherAnswer(json.RawMessage(`{"z":"last","a":[1,"two",{"k":false}]}`))
	require.NoError(t, err)

	type holder struct {
		Answers map[string]Answer `bson:"answers"`
	}
	in := holder{Answers: map[string]Answer{
		"text":  TextAnswer("hello"),
		"image": ImageAnswer(ImageSelection{Image: &image, Reasons: []string{"x"}, CustomReason: "because"}),
		"blank": ImageAnswer(ImageSelection{}),
		"other": other,
	}}

	data, err := bson.Marshal(in)
	require.NoError(t, err)

	var out holder
	require.NoError(t, bson.Unmarshal(data, &out))

	text, ok := out.Answers["text"].Text()
	assert.True(t, ok)
	assert.Equal(t, "hello", text)

	sel, ok := out.Answers["image"].ImageSelection()
	require.True(t, ok)
	require.NotNil(t, sel.Image)
	assert.Equal(t, "b.png", *sel.Image)
	assert.Equal(t, []string{"x"}, sel.Reasons)
	assert.Equal(t, "because", sel.CustomReason)

	blank, ok := out.Answers["blank"].ImageSelection()
	require.True(t, ok)
	assert.Nil(t, blank.Image)
	assert.Empty(t, blank.Reasons)

	raw, ok := out.Answers["other"].Raw()
	require.True(t, ok)
	assert.Equal(t, `{"z":"last","a":[1,"two",{"k":false}]}`, string(raw))
}

func TestAnswerBSONKeepsNumbers(t *testing.T) {
	inputs := []string{
		`12345678901234567890`,
		`{"n":12345678901234567890,"small":7,"wide":9007199254740993,"f":0.1,"d":100.0,"neg":-12345678901234567890123}`,
		`[1.5,true,null,{"x":2.5,"y":-0}]`,
		`{"s":"<a&b>","z":{"b":1,"a":2}}`,
	}

	type holder struct {
		Answer Answer `bson:"answer"`
	}
	for _, input := range inputs {
		other, err := OtherAnswer(json.RawMessage(input))
		require.NoError(t, err, input)

		data, err := bson.Marshal(holder{Answer: other})
		require.NoError(t, err, input)

		var out holder
		require.NoError(t, bson.Unmarshal(data, &out), input)

		raw, ok := out.Answer.Raw()
		require.True(t, ok, input)
		assert.Equal(t, input, string(raw))
	}
}

func TestAnswerBSONStoresBigIntegersAsDecimal(t *testing.T) {
	other, err := OtherAnswer(json.RawMessage(`{"n":12345678901234567890,"i":5}`))
	require.NoError(t, err)

	data, err := bson.Marshal(struct {
		Answer Answer `bson:"answer"`
	}{other})
	require.NoError(t, err)

	doc := bson.Raw(data).Lookup("answer").Document()
	assert.Equal(t, bson.TypeDecimal128, doc.Lookup("n").Type)
	assert.Equal(t, bson.TypeInt32, doc.Lookup("i").Type)
}

func TestQuestionnairePublicStripsSecrets(t *testing.T) {
	q := Questionnaire{
		Password: "hash",
		Questions: []Question{
			{ID: "q1", ViewPassword: "vhash"},
			{ID: "q2"},
		},
	}

	public := q.Public()
	assert.Empty(t, public.Password)
	assert.Empty(t, public.Questions[0].ViewPassword)
	assert.True(t, public.Questions[0].PasswordProtected)
	assert.False(t, public.Questions[1].PasswordProtected)
	assert.Equal(t, "vhash", q.Questions[0].ViewPassword, "original must be untouched")

	found, ok := q.FindQuestion("q2")
	require.True(t, ok)
	assert.Equal(t, "q2", found.ID)
	_, ok = q.FindQuestion("q9")
	assert.False(t, ok)
}
