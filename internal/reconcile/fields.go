package reconcile

import "github.com/joseph-ayodele/utility-bills/internal/bill"

// FieldKind says what a rule expects to find at a path.
type FieldKind int

const (
	FieldAmount FieldKind = iota
	FieldItemList
)

// FieldPath is one location a rule reads.
type FieldPath struct {
	Path string
	Kind FieldKind
}

// FieldPaths lists the locations the rule reads, in check order and without
// duplicates. Only the preferred alias of each stated value is listed.
func (r Rule) FieldPaths() []FieldPath {
	var out []FieldPath
	seen := map[string]bool{}
	add := func(path string, kind FieldKind) {
		if path == "" || seen[path] {
			return
		}
		seen[path] = true
		out = append(out, FieldPath{Path: path, Kind: kind})
	}
	for _, c := range r.LineItems {
		add(bill.Join(c.Containers, c.Items), FieldItemList)
		if len(c.Stated) > 0 {
			add(bill.Join(c.Containers, c.Stated[0]), FieldAmount)
		}
	}
	if r.Total != nil {
		if len(r.Total.Target) > 0 {
			add(r.Total.Target[0], FieldAmount)
		}
		for _, f := range r.Total.Formulas {
			for _, t := range f.Terms {
				add(t.Name(), FieldAmount)
			}
		}
	}
	return out
}

// AmountFieldNames returns the leaf names of every amount the rule reads.
func (r Rule) AmountFieldNames() []string {
	var names []string
	seen := map[string]bool{}
	for _, fp := range r.FieldPaths() {
		if fp.Kind != FieldAmount {
			continue
		}
		leaf := bill.Leaf(fp.Path)
		if leaf != "" && !seen[leaf] {
			seen[leaf] = true
			names = append(names, leaf)
		}
	}
	return names
}
