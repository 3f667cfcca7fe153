package encode

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/google/uuid"

	"github.com/ciacob/go-shard/shard"
)

// idLen is the width of a canonical UUID string on the wire.
const idLen = 36

// Kind tags on the wire.
const (
	tagNull byte = iota
	tagBool
	tagInt
	tagFloat
	tagString
)

func marshalBinary(n *shard.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeBinaryNode(buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeBinaryNode(buf *bytes.Buffer, n *shard.Node) error {
	id := n.ID()
	if len(id) != idLen {
		return fmt.Errorf("%w: id %q is not a canonical UUID", ErrValue, id)
	}
	buf.WriteString(id)
	if err := writeString16(buf, n.FQN()); err != nil {
		return err
	}
	flat := n.NumChildren() == 0
	writeBool(buf, flat)
	entries := n.Entries()
	writeU32(buf, uint32(len(entries)))
	for _, e := range entries {
		if err := writeString16(buf, e.Key); err != nil {
			return err
		}
		if err := writeValue(buf, e.Value); err != nil {
			return fmt.Errorf("key %q: %w", e.Key, err)
		}
	}
	if flat {
		return nil
	}
	writeU32(buf, uint32(n.NumChildren()))
	for _, c := range n.Children() {
		if err := writeBinaryNode(buf, c); err != nil {
			return err
		}
	}
	return nil
}

func writeValue(buf *bytes.Buffer, v any) error {
	k, err := shard.KindOf(v)
	if err != nil {
		return err
	}
	switch k {
	case shard.KindNull:
		buf.WriteByte(tagNull)
	case shard.KindBool:
		buf.WriteByte(tagBool)
		writeBool(buf, v.(bool))
	case shard.KindInt:
		buf.WriteByte(tagInt)
		writeU64(buf, uint64(v.(int64)))
	case shard.KindFloat:
		buf.WriteByte(tagFloat)
		writeU64(buf, math.Float64bits(v.(float64)))
	case shard.KindString:
		buf.WriteByte(tagString)
		writeString32(buf, v.(string))
	}
	return nil
}

func writeBool(buf *bytes.Buffer, v bool) {
	b := byte(0)
	if v {
		b = 1
	}
	buf.WriteByte(b)
}

func writeU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeU64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

func writeString16(buf *bytes.Buffer, s string) error {
	if len(s) > math.MaxUint16 {
		return fmt.Errorf("%w: string of %d bytes exceeds uint16 prefix", ErrValue, len(s))
	}
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(len(s)))
	buf.Write(b[:])
	buf.WriteString(s)
	return nil
}

func writeString32(buf *bytes.Buffer, s string) {
	writeU32(buf, uint32(len(s)))
	buf.WriteString(s)
}

// reader wraps the input buffer with truncation-aware helpers. Every short
// read surfaces as ErrDecode.
type reader struct {
	r *bytes.Reader
}

func (rd *reader) take(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rd.r, b); err != nil {
		return nil, fmt.Errorf("%w: truncated input", ErrDecode)
	}
	return b, nil
}

func (rd *reader) byte() (byte, error) {
	b, err := rd.r.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("%w: truncated input", ErrDecode)
	}
	return b, nil
}

func (rd *reader) bool() (bool, error) {
	b, err := rd.byte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, fmt.Errorf("%w: invalid bool byte %#x", ErrDecode, b)
}

func (rd *reader) u16() (uint16, error) {
	b, err := rd.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (rd *reader) u32() (uint32, error) {
	b, err := rd.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (rd *reader) u64() (uint64, error) {
	b, err := rd.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (rd *reader) string16() (string, error) {
	n, err := rd.u16()
	if err != nil {
		return "", err
	}
	b, err := rd.take(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (rd *reader) string32() (string, error) {
	n, err := rd.u32()
	if err != nil {
		return "", err
	}
	if int(n) > rd.r.Len() {
		return "", fmt.Errorf("%w: truncated input", ErrDecode)
	}
	b, err := rd.take(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalBinary(data []byte, o *options) (*shard.Node, error) {
	rd := &reader{r: bytes.NewReader(data)}
	n, err := readBinaryNode(rd, o)
	if err != nil {
		return nil, err
	}
	if rd.r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrDecode, rd.r.Len())
	}
	return n, nil
}

func readBinaryNode(rd *reader, o *options) (*shard.Node, error) {
	idb, err := rd.take(idLen)
	if err != nil {
		return nil, err
	}
	id := string(idb)
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: malformed id %q", ErrDecode, id)
	}
	fqn, err := rd.string16()
	if err != nil {
		return nil, err
	}
	flat, err := rd.bool()
	if err != nil {
		return nil, err
	}
	raw := &rawNode{id: id, fqn: fqn}
	count, err := rd.u32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < count; i++ {
		key, err := rd.string16()
		if err != nil {
			return nil, err
		}
		v, err := readValue(rd)
		if err != nil {
			return nil, err
		}
		raw.entries = append(raw.entries, shard.Entry{Key: key, Value: v})
	}
	if !flat {
		cc, err := rd.u32()
		if err != nil {
			return nil, err
		}
		for i := uint32(0); i < cc; i++ {
			c, err := readBinaryNode(rd, o)
			if err != nil {
				return nil, err
			}
			raw.children = append(raw.children, c)
		}
	}
	return o.build(raw)
}

func readValue(rd *reader) (any, error) {
	tag, err := rd.byte()
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagNull:
		return nil, nil
	case tagBool:
		return rd.bool()
	case tagInt:
		v, err := rd.u64()
		if err != nil {
			return nil, err
		}
		return int64(v), nil
	case tagFloat:
		v, err := rd.u64()
		if err != nil {
			return nil, err
		}
		return math.Float64frombits(v), nil
	case tagString:
		return rd.string32()
	}
	return nil, fmt.Errorf("%w: unknown value tag %#x", ErrDecode, tag)
}
