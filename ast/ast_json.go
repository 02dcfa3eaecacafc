package ast

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

var (
	nodeType    = reflect.TypeOf((*Node)(nil)).Elem()
	docListType = reflect.TypeOf(DocList(nil))
)

type decodeOpts struct {
	allowUnknown bool
}

type DecodeOption func(*decodeOpts)

// AllowUnknownKinds makes Unmarshal decode nodes with an unrecognized
// discriminator as *UnknownNode instead of failing. Only the base fields
// survive such a decode.
func AllowUnknownKinds() DecodeOption {
	return func(o *decodeOpts) { o.allowUnknown = true }
}

// Marshal encodes n as a JSON object whose "kind" member is the numeric
// discriminator, followed by the fields of n's concrete type.
func Marshal(n Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encodeNode(buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func MarshalIndent(n Node, prefix, indent string) ([]byte, error) {
	d, err := Marshal(n)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := json.Indent(buf, d, prefix, indent); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a node produced by Marshal. The "kind" member may be
// numeric or a kind name; member names match case-insensitively.
func Unmarshal(d []byte, opts ...DecodeOption) (Node, error) {
	dOpts := &decodeOpts{}
	for _, f := range opts {
		f(dOpts)
	}
	return decodeNode(d, dOpts)
}

// Box adapts a Node to encoding/json so that nodes can be embedded in
// other JSON documents.
type Box struct {
	Node Node
}

func (b Box) MarshalJSON() ([]byte, error) {
	return Marshal(b.Node)
}

func (b *Box) UnmarshalJSON(d []byte) error {
	n, err := Unmarshal(d)
	if err != nil {
		return err
	}
	b.Node = n
	return nil
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func isNodeType(t reflect.Type) bool {
	return t == nodeType || (t.Kind() == reflect.Pointer && t.Implements(nodeType))
}

func isNodeList(t reflect.Type) bool {
	return t.Kind() == reflect.Slice && isNodeType(t.Elem())
}

func jsonName(f reflect.StructField) (name string, omitEmpty, skip bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	if name == "" {
		name = f.Name
	}
	for _, p := range parts[1:] {
		if p == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}

func isEmptyValue(v reflect.Value) bool {
	if v.Kind() == reflect.Slice {
		return v.Len() == 0
	}
	return v.IsZero()
}

func encodeNode(buf *bytes.Buffer, n Node) error {
	if isNil(n) {
		buf.WriteString("null")
		return nil
	}
	v := reflect.ValueOf(n)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T is not a pointer to a struct", ErrEncode, n)
	}
	buf.WriteString(`{"kind":`)
	buf.WriteString(strconv.Itoa(int(n.Kind())))
	if err := encodeFields(buf, v.Elem()); err != nil {
		return fmt.Errorf("%s: %w", n.Kind(), err)
	}
	buf.WriteByte('}')
	return nil
}

func encodeFields(buf *bytes.Buffer, v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := v.Field(i)
		if f.Anonymous {
			if err := encodeFields(buf, fv); err != nil {
				return err
			}
			continue
		}
		if !f.IsExported() {
			continue
		}
		name, omitEmpty, skip := jsonName(f)
		if skip || (omitEmpty && isEmptyValue(fv)) {
			continue
		}
		buf.WriteByte(',')
		buf.WriteString(strconv.Quote(name))
		buf.WriteByte(':')
		if err := encodeValue(buf, fv); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func encodeValue(buf *bytes.Buffer, fv reflect.Value) error {
	ft := fv.Type()
	switch {
	case isNodeType(ft):
		if fv.IsNil() {
			buf.WriteString("null")
			return nil
		}
		return encodeNode(buf, fv.Interface().(Node))
	case isNodeList(ft):
		return encodeList(buf, fv)
	default:
		d, err := json.Marshal(fv.Interface())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncode, err)
		}
		buf.Write(d)
		return nil
	}
}

func encodeList(buf *bytes.Buffer, lv reflect.Value) error {
	buf.WriteByte('[')
	for i := 0; i < lv.Len(); i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		ev := lv.Index(i)
		if ev.IsNil() {
			buf.WriteString("null")
			continue
		}
		if err := encodeNode(buf, ev.Interface().(Node)); err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
	}
	buf.WriteByte(']')
	return nil
}

func isNull(d []byte) bool {
	return bytes.Equal(d, []byte("null"))
}

func decodeNode(d []byte, opts *decodeOpts) (Node, error) {
	d = bytes.TrimSpace(d)
	if len(d) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrDecode)
	}
	if isNull(d) {
		return nil, nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(d, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	fields := make(map[string]json.RawMessage, len(m))
	for k, v := range m {
		fields[strings.ToLower(k)] = v
	}
	rawKind, ok := fields["kind"]
	if !ok {
		return nil, fmt.Errorf("%w: missing kind", ErrDecode)
	}
	var k Kind
	if err := k.UnmarshalJSON(rawKind); err != nil {
		if !opts.allowUnknown || !errors.Is(err, ErrUnknownKind) {
			return nil, err
		}
		k = KindUnknown
	}
	node := New(k)
	if node == nil {
		if !opts.allowUnknown {
			return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
		}
		node = &UnknownNode{RawKind: k}
	}
	if err := decodeFields(reflect.ValueOf(node).Elem(), fields, opts); err != nil {
		return nil, fmt.Errorf("%s: %w", k, err)
	}
	return node, nil
}

func decodeFields(v reflect.Value, fields map[string]json.RawMessage, opts *decodeOpts) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := v.Field(i)
		if f.Anonymous {
			if err := decodeFields(fv, fields, opts); err != nil {
				return err
			}
			continue
		}
		if !f.IsExported() {
			continue
		}
		name, _, skip := jsonName(f)
		if skip {
			continue
		}
		raw, ok := fields[strings.ToLower(name)]
		if !ok {
			continue
		}
		if err := decodeValue(fv, raw, opts); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func decodeValue(fv reflect.Value, raw json.RawMessage, opts *decodeOpts) error {
	ft := fv.Type()
	switch {
	case ft == docListType:
		docs, err := decodeDocList(raw, opts)
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(docs))
		return nil
	case isNodeType(ft):
		n, err := decodeNode(raw, opts)
		if err != nil {
			return err
		}
		return setNode(fv, n)
	case isNodeList(ft):
		if isNull(bytes.TrimSpace(raw)) {
			return nil
		}
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return fmt.Errorf("%w: %w", ErrDecode, err)
		}
		lv := reflect.MakeSlice(ft, len(items), len(items))
		for i, item := range items {
			n, err := decodeNode(item, opts)
			if err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
			if err := setNode(lv.Index(i), n); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		fv.Set(lv)
		return nil
	default:
		if err := json.Unmarshal(raw, fv.Addr().Interface()); err != nil {
			return fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return nil
	}
}

func setNode(fv reflect.Value, n Node) error {
	if n == nil {
		return nil
	}
	nv := reflect.ValueOf(n)
	if !nv.Type().AssignableTo(fv.Type()) {
		return fmt.Errorf("%w: %s cannot hold %s", ErrKindMismatch, fv.Type(), n.Kind())
	}
	fv.Set(nv)
	return nil
}
