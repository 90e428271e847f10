package bill

import (
	"fmt"
	"strconv"
	"strings"
)

// Match is one node reached by a selector, with its concrete path.
type Match struct {
	Path  string
	Value any
}

type segment struct {
	key      string
	index    int
	hasIndex bool
	wildcard bool
}

// parseSelector splits "services[*].line_item_charges" style selectors.
// Keys may be followed by one bracket: [*] for every element or [N] for one.
func parseSelector(sel string) ([]segment, error) {
	sel = strings.TrimSpace(sel)
	if sel == "" {
		return nil, nil
	}
	parts := strings.Split(sel, ".")
	segs := make([]segment, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("bill: empty segment in selector %q", sel)
		}
		seg := segment{key: p}
		if open := strings.IndexByte(p, '['); open >= 0 {
			if !strings.HasSuffix(p, "]") {
				return nil, fmt.Errorf("bill: unterminated index in selector %q", sel)
			}
			seg.key = p[:open]
			idx := p[open+1 : len(p)-1]
			seg.hasIndex = true
			if idx == "*" {
				seg.wildcard = true
			} else {
				n, err := strconv.Atoi(idx)
				if err != nil || n < 0 {
					return nil, fmt.Errorf("bill: bad index %q in selector %q", idx, sel)
				}
				seg.index = n
			}
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

// Select returns every node under root matched by selector, in document order.
// Missing keys and type mismatches simply produce no match. A malformed
// selector also yields no matches; rules are static so this is caught in tests.
func Select(root any, selector string) []Match {
	segs, err := parseSelector(selector)
	if err != nil {
		return nil
	}
	var out []Match
	walk(root, "", segs, &out)
	return out
}

func walk(node any, path string, segs []segment, out *[]Match) {
	if len(segs) == 0 {
		*out = append(*out, Match{Path: path, Value: node})
		return
	}
	seg := segs[0]
	next := node
	nextPath := path
	if seg.key != "" {
		obj, ok := node.(map[string]any)
		if !ok {
			return
		}
		v, ok := obj[seg.key]
		if !ok {
			return
		}
		next = v
		nextPath = Join(path, seg.key)
	}
	if !seg.hasIndex {
		walk(next, nextPath, segs[1:], out)
		return
	}
	arr, ok := next.([]any)
	if !ok {
		return
	}
	if seg.wildcard {
		for i, el := range arr {
			walk(el, nextPath+"["+strconv.Itoa(i)+"]", segs[1:], out)
		}
		return
	}
	if seg.index < len(arr) {
		walk(arr[seg.index], nextPath+"["+strconv.Itoa(seg.index)+"]", segs[1:], out)
	}
}

// Get returns the single node at a concrete path.
func Get(root any, path string) (any, bool) {
	ms := Select(root, path)
	if len(ms) != 1 {
		return nil, false
	}
	return ms[0].Value, true
}

// Object returns the object at path, if there is one.
func Object(root any, path string) (map[string]any, bool) {
	v, ok := Get(root, path)
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok
}

// Set replaces the value at a concrete path. The parent must already exist;
// the final key is created on an object parent if missing.
func Set(root any, path string, value any) error {
	segs, err := parseSelector(path)
	if err != nil {
		return err
	}
	if len(segs) == 0 {
		return fmt.Errorf("bill: cannot set root")
	}
	for _, s := range segs {
		if s.wildcard {
			return fmt.Errorf("bill: wildcard not allowed in set path %q", path)
		}
	}
	last := segs[len(segs)-1]
	parent := root
	if len(segs) > 1 {
		ms := make([]Match, 0, 1)
		walk(root, "", segs[:len(segs)-1], &ms)
		if len(ms) != 1 {
			return fmt.Errorf("bill: parent of %q not found", path)
		}
		parent = ms[0].Value
	}
	obj, ok := parent.(map[string]any)
	if !ok {
		return fmt.Errorf("bill: parent of %q is not an object", path)
	}
	if !last.hasIndex {
		obj[last.key] = value
		return nil
	}
	arr, ok := obj[last.key].([]any)
	if !ok || last.index >= len(arr) {
		return fmt.Errorf("bill: index out of range in %q", path)
	}
	arr[last.index] = value
	return nil
}

// Join appends a relative selector to a base path.
func Join(base, rel string) string {
	switch {
	case base == "":
		return rel
	case rel == "":
		return base
	default:
		return base + "." + rel
	}
}

// ValidateSelector reports whether sel is well formed.
func ValidateSelector(sel string) error {
	_, err := parseSelector(sel)
	return err
}

// Segment is one step of a selector as seen by schema builders. List is set
// when the step indexes into an array.
type Segment struct {
	Key  string
	List bool
}

// Segments splits a selector into its keys.
func Segments(sel string) ([]Segment, error) {
	segs, err := parseSelector(sel)
	if err != nil {
		return nil, err
	}
	out := make([]Segment, len(segs))
	for i, s := range segs {
		out[i] = Segment{Key: s.key, List: s.hasIndex}
	}
	return out, nil
}

// Leaf returns the final key of a selector, or "" when it is empty or malformed.
func Leaf(sel string) string {
	segs, err := parseSelector(sel)
	if err != nil || len(segs) == 0 {
		return ""
	}
	return segs[len(segs)-1].key
}
