// Package bill holds the extracted bill as a decoded JSON tree and the
// selectors used to address its sections.
package bill

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNotObject is returned when the extracted payload is not a JSON object.
var ErrNotObject = errors.New("bill: document root is not an object")

// Document is one extracted bill. Root is owned by the caller; reconciliation
// only mutates it to apply corrections.
type Document struct {
	Provider string
	Root     map[string]any
}

// New wraps an already-decoded tree.
func New(provider string, root map[string]any) *Document {
	if root == nil {
		root = map[string]any{}
	}
	if provider == "" {
		provider = providerOf(root)
	}
	return &Document{Provider: provider, Root: root}
}

// Decode reads a JSON object. Numbers are kept as json.Number so amounts are
// never routed through float64.
func Decode(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("bill: decode: %w", err)
	}
	root, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return New("", root), nil
}

// Parse decodes a JSON document from bytes.
func Parse(b []byte) (*Document, error) {
	return Decode(bytes.NewReader(b))
}

// Clone returns a deep copy, so callers can keep the extraction untouched.
func (d *Document) Clone() *Document {
	return &Document{Provider: d.Provider, Root: DeepCopy(d.Root).(map[string]any)}
}

// MarshalJSON writes the tree.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Root)
}

// String returns a field as trimmed text.
func (d *Document) String(path string) string {
	v, ok := Get(d.Root, path)
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

func providerOf(root map[string]any) string {
	for _, k := range []string{"provider", "provider_id", "company"} {
		if s, ok := root[k].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// DeepCopy copies maps and slices recursively; scalars are shared.
func DeepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = DeepCopy(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = DeepCopy(val)
		}
		return out
	default:
		return v
	}
}
