package ast

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// DocList is the documentation attached to a node. In JSON it is read
// either as a bare string, which becomes a single JSDocText leaf, or as a
// list of doc nodes. It is always written as a list.
type DocList []Node

func (l DocList) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encodeList(buf, reflect.ValueOf(l)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (l *DocList) UnmarshalJSON(d []byte) error {
	docs, err := decodeDocList(d, &decodeOpts{})
	if err != nil {
		return err
	}
	*l = docs
	return nil
}

// Text joins the comment text of the list's JSDoc and JSDocText nodes.
func (l DocList) Text() string {
	parts := make([]string, 0, len(l))
	for _, n := range l {
		switch x := n.(type) {
		case *JSDoc:
			parts = append(parts, x.Comment)
		case *JSDocText:
			parts = append(parts, x.Text)
		}
	}
	return strings.Join(parts, "\n")
}

func decodeDocList(raw []byte, opts *decodeOpts) (DocList, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || isNull(raw) {
		return nil, nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return DocList{&JSDocText{Text: s}}, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: jsDoc: %w", ErrDecode, err)
	}
	res := make(DocList, 0, len(items))
	for i, item := range items {
		n, err := decodeNode(item, opts)
		if err != nil {
			return nil, fmt.Errorf("jsDoc[%d]: %w", i, err)
		}
		if n != nil {
			res = append(res, n)
		}
	}
	return res, nil
}
