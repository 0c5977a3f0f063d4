package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// otherToBSON stores verbatim JSON as native BSON. Numbers never pass through
// float64 unless a double reproduces their literal exactly; everything else
// that fits becomes int32, int64 or Decimal128. Object key order is kept.
func otherToBSON(raw json.RawMessage) (bsontype.Type, []byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err != nil {
		return 0, nil, fmt.Errorf("answer to bson: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return 0, nil, errors.New("answer to bson: trailing data")
	}
	return bson.MarshalValue(v)
}

func decodeJSONValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			doc := bson.D{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key %v", keyTok)
				}
				v, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				doc = append(doc, bson.E{Key: key, Value: v})
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return doc, nil
		case '[':
			arr := bson.A{}
			for dec.More() {
				v, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case json.Number:
		return numberToBSON(t)
	default:
		// string, bool or nil
		return t, nil
	}
}

func numberToBSON(n json.Number) (interface{}, error) {
	s := n.String()
	if i, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(i, 10) == s {
		if i >= math.MinInt32 && i <= math.MaxInt32 {
			return int32(i), nil
		}
		return i, nil
	}

	f, floatErr := strconv.ParseFloat(s, 64)
	if floatErr == nil && formatFloat(f) == s {
		return f, nil
	}
	if d, err := primitive.ParseDecimal128(s); err == nil {
		return d, nil
	}
	if floatErr == nil {
		return f, nil
	}
	return nil, fmt.Errorf("number %s is out of range", s)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// otherFromBSON renders a stored value back to compact JSON, keeping key
// order and writing Decimal128 as a plain JSON number.
func otherFromBSON(v bson.RawValue) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := writeJSONValue(&buf, v); err != nil {
		return nil, fmt.Errorf("answer from bson: %w", err)
	}
	return buf.Bytes(), nil
}

func writeJSONValue(buf *bytes.Buffer, v bson.RawValue) error {
	switch v.Type {
	case bson.TypeEmbeddedDocument:
		elems, err := v.Document().Elements()
		if err != nil {
			return err
		}
		buf.WriteByte('{')
		for i, e := range elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, e.Key()); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSONValue(buf, e.Value()); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case bson.TypeArray:
		values, err := v.Array().Values()
		if err != nil {
			return err
		}
		buf.WriteByte('[')
		for i, item := range values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case bson.TypeString:
		return writeJSONString(buf, v.StringValue())
	case bson.TypeBoolean:
		buf.WriteString(strconv.FormatBool(v.Boolean()))
	case bson.TypeNull, bson.TypeUndefined:
		buf.WriteString("null")
	case bson.TypeInt32:
		buf.WriteString(strconv.FormatInt(int64(v.Int32()), 10))
	case bson.TypeInt64:
		buf.WriteString(strconv.FormatInt(v.Int64(), 10))
	case bson.TypeDouble:
		f := v.Double()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return writeExtJSON(buf, v)
		}
		buf.WriteString(formatFloat(f))
	case bson.TypeDecimal128:
		d := v.Decimal128()
		if d.IsNaN() || d.IsInf() != 0 {
			return writeExtJSON(buf, v)
		}
		buf.WriteString(d.String())
	default:
		// dates, object ids and the like written by other tools
		return writeExtJSON(buf, v)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1) // Encode appends a newline
	return nil
}

func writeExtJSON(buf *bytes.Buffer, v bson.RawValue) error {
	doc, err := bson.Marshal(bson.D{{Key: "v", Value: v}})
	if err != nil {
		return err
	}
	ext, err := bson.MarshalExtJSON(bson.Raw(doc), false, false)
	if err != nil {
		return err
	}
	var unwrapped struct {
		V json.RawMessage `json:"v"`
	}
	if err := json.Unmarshal(ext, &unwrapped); err != nil {
		return err
	}
	buf.Write(unwrapped.V)
	return nil
}
