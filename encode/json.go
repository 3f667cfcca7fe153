package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ciacob/go-shard/shard"
)

func marshalJSON(n *shard.Node, o *options) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSONNode(buf, n); err != nil {
		return nil, err
	}
	if o.indent <= 0 {
		return buf.Bytes(), nil
	}
	out := bytes.NewBuffer(nil)
	if err := json.Indent(out, buf.Bytes(), "", strings.Repeat(" ", o.indent)); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// writeJSONNode mirrors the binary schema textually. The content object is
// written key by key in insertion order; encoding/json's map marshaling
// would re-sort it.
func writeJSONNode(buf *bytes.Buffer, n *shard.Node) error {
	buf.WriteString(`{"id":`)
	writeJSONString(buf, n.ID())
	buf.WriteString(`,"fqn":`)
	writeJSONString(buf, n.FQN())
	fmt.Fprintf(buf, `,"intrinsic":{"isFlat":%t},"content":{`, n.NumChildren() == 0)
	for i, e := range n.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONString(buf, e.Key)
		buf.WriteByte(':')
		if err := writeJSONValue(buf, e.Value); err != nil {
			return fmt.Errorf("key %q: %w", e.Key, err)
		}
	}
	buf.WriteString(`},"children":[`)
	for i, c := range n.Children() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONNode(buf, c); err != nil {
			return err
		}
	}
	buf.WriteString("]}")
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	d, _ := json.Marshal(s)
	buf.Write(d)
}

func writeJSONValue(buf *bytes.Buffer, v any) error {
	k, err := shard.KindOf(v)
	if err != nil {
		return err
	}
	switch k {
	case shard.KindNull:
		buf.WriteString("null")
	case shard.KindBool:
		buf.WriteString(strconv.FormatBool(v.(bool)))
	case shard.KindInt:
		buf.WriteString(strconv.FormatInt(v.(int64), 10))
	case shard.KindFloat:
		f := v.(float64)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %v has no JSON encoding", ErrValue, f)
		}
		s := strconv.FormatFloat(f, 'g', -1, 64)
		// Keep the float kind recoverable: an integral float must not
		// read back as an integer.
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		buf.WriteString(s)
	case shard.KindString:
		writeJSONString(buf, v.(string))
	}
	return nil
}

func unmarshalJSON(data []byte, o *options) (*shard.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	n, err := readJSONNode(dec, o)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data", ErrDecode)
	}
	return n, nil
}

func readJSONNode(dec *json.Decoder, o *options) (*shard.Node, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	raw := &rawNode{}
	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return nil, err
		}
		switch key {
		case "id":
			if raw.id, err = stringToken(dec); err != nil {
				return nil, err
			}
		case "fqn":
			if raw.fqn, err = stringToken(dec); err != nil {
				return nil, err
			}
		case "intrinsic":
			// Tolerated when missing or null; the children array governs.
			if err := skipValue(dec); err != nil {
				return nil, err
			}
		case "content":
			if err := readJSONContent(dec, raw); err != nil {
				return nil, err
			}
		case "children":
			if err := readJSONChildren(dec, o, raw); err != nil {
				return nil, err
			}
		default:
			if err := skipValue(dec); err != nil {
				return nil, err
			}
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return o.build(raw)
}

func readJSONContent(dec *json.Decoder, raw *rawNode) error {
	tok, err := token(dec)
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("%w: content must be an object", ErrDecode)
	}
	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return err
		}
		v, err := valueToken(dec)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		raw.entries = append(raw.entries, shard.Entry{Key: key, Value: v})
	}
	return expectDelim(dec, '}')
}

func readJSONChildren(dec *json.Decoder, o *options, raw *rawNode) error {
	tok, err := token(dec)
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return fmt.Errorf("%w: children must be an array", ErrDecode)
	}
	for dec.More() {
		c, err := readJSONNode(dec, o)
		if err != nil {
			return err
		}
		raw.children = append(raw.children, c)
	}
	return expectDelim(dec, ']')
}

func token(dec *json.Decoder) (json.Token, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return tok, nil
}

func expectDelim(dec *json.Decoder, want rune) error {
	tok, err := token(dec)
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || rune(d) != want {
		return fmt.Errorf("%w: expected %q, got %v", ErrDecode, want, tok)
	}
	return nil
}

// stringToken reads a string, tolerating null as "".
func stringToken(dec *json.Decoder) (string, error) {
	tok, err := token(dec)
	if err != nil {
		return "", err
	}
	switch x := tok.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	}
	return "", fmt.Errorf("%w: expected string, got %v", ErrDecode, tok)
}

// valueToken reads one content value: null, bool, number or string.
func valueToken(dec *json.Decoder) (any, error) {
	tok, err := token(dec)
	if err != nil {
		return nil, err
	}
	switch x := tok.(type) {
	case nil:
		return nil, nil
	case bool:
		return x, nil
	case string:
		return x, nil
	case json.Number:
		return numberValue(x)
	}
	return nil, fmt.Errorf("%w: content value must be a primitive", ErrDecode)
}

// numberValue keeps the int/float distinction: a plain digit run is an
// int64, anything with a fraction or exponent is a float64.
func numberValue(num json.Number) (any, error) {
	s := num.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad number %q", ErrDecode, s)
	}
	return f, nil
}

// skipValue consumes one JSON value of any shape.
func skipValue(dec *json.Decoder) error {
	tok, err := token(dec)
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok {
		return nil
	}
	switch d {
	case '{', '[':
		for dec.More() {
			if err := skipValue(dec); err != nil {
				return err
			}
		}
		_, err := token(dec)
		return err
	}
	return fmt.Errorf("%w: unexpected %v", ErrDecode, d)
}
