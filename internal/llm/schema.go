package llm

import (
	"github.com/joseph-ayodele/utility-bills/internal/bill"
	"github.com/joseph-ayodele/utility-bills/internal/reconcile"
)

// BuildBillJSONSchema returns a JSON Schema for the fields rule reads. Bills
// carry much more than that, so additional properties are allowed everywhere;
// only the object holding the stated total is required.
func BuildBillJSONSchema(rule reconcile.Rule) map[string]any {
	root := newNode()
	for _, fp := range rule.FieldPaths() {
		segs, err := bill.Segments(fp.Path)
		if err != nil || len(segs) == 0 {
			continue
		}
		root.add(segs, fp.Kind)
	}

	schema := root.schema()
	props := schema["properties"].(map[string]any)
	props["provider"] = map[string]any{"type": "string", "minLength": 1}

	required := []string{"provider"}
	if rule.Total != nil && len(rule.Total.Target) > 0 {
		if segs, err := bill.Segments(rule.Total.Target[0]); err == nil && len(segs) > 1 {
			required = append(required, segs[0].Key)
		}
	}
	schema["required"] = required
	return schema
}

type node struct {
	children map[string]*node
	order    []string
	list     bool
	leaf     bool
	kind     reconcile.FieldKind
}

func newNode() *node {
	return &node{children: map[string]*node{}}
}

func (n *node) add(segs []bill.Segment, kind reconcile.FieldKind) {
	seg := segs[0]
	child, ok := n.children[seg.Key]
	if !ok {
		child = newNode()
		n.children[seg.Key] = child
		n.order = append(n.order, seg.Key)
	}
	child.list = child.list || seg.List
	if len(segs) == 1 {
		child.leaf = true
		child.kind = kind
		return
	}
	child.add(segs[1:], kind)
}

func (n *node) schema() map[string]any {
	if n.leaf && len(n.children) == 0 {
		if n.kind == reconcile.FieldItemList {
			return lineItemsProp()
		}
		return moneyProp()
	}
	props := make(map[string]any, len(n.children))
	for _, k := range n.order {
		c := n.children[k]
		s := c.schema()
		if c.list && !(c.leaf && c.kind == reconcile.FieldItemList) {
			s = map[string]any{"type": "array", "items": s}
		}
		props[k] = s
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": true,
		"properties":           props,
	}
}

// moneyProp accepts anything the amount parser understands.
func moneyProp() map[string]any {
	return map[string]any{"type": []string{"string", "number", "null"}}
}

func lineItemsProp() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": true,
			"properties": map[string]any{
				"description": map[string]any{"type": []string{"string", "null"}},
				"category":    map[string]any{"type": []string{"string", "null"}},
				"amount":      moneyProp(),
				"charge":      moneyProp(),
			},
		},
	}
}
