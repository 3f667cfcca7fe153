package shard

import "fmt"

// Kind identifies the concrete type of a content value. Content values are a
// closed tagged-variant set; anything outside it fails at the codec boundary.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindNull:   "Null",
		KindBool:   "Bool",
		KindInt:    "Int",
		KindFloat:  "Float",
		KindString: "String",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":   KindNull,
		"Bool":   KindBool,
		"Int":    KindInt,
		"Float":  KindFloat,
		"String": KindString,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		KindNull,
		KindBool,
		KindInt,
		KindFloat,
		KindString,
	}
}

// KindOf reports the Kind of a normalized content value. Values that are not
// in the supported set yield ErrValue.
func KindOf(v any) (Kind, error) {
	switch v.(type) {
	case nil:
		return KindNull, nil
	case bool:
		return KindBool, nil
	case int64:
		return KindInt, nil
	case float64:
		return KindFloat, nil
	case string:
		return KindString, nil
	}
	return 0, fmt.Errorf("%w: %T", ErrValue, v)
}
