package llm

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/joseph-ayodele/utility-bills/internal/reconcile"
)

// BuildSystemPrompt composes the extraction instructions for one provider,
// naming every field path its reconciliation rule reads.
func BuildSystemPrompt(rule reconcile.Rule) string {
	var fields []string
	for _, fp := range rule.FieldPaths() {
		switch fp.Kind {
		case reconcile.FieldItemList:
			fields = append(fields, fp.Path+" (list of charge rows, each with 'description' and 'amount')")
		default:
			fields = append(fields, fp.Path+" (amount)")
		}
	}

	parts := []string{
		"You are a utility bill parser. Return ONLY JSON that matches the provided JSON Schema.",
		"Set 'provider' to \"" + string(rule.Provider) + "\".",
	}
	if rule.Description != "" {
		parts = append(parts, "Bill layout: "+rule.Description+".")
	}
	if len(fields) > 0 {
		parts = append(parts, "Use exactly these field paths, where [*] means one entry per service, meter or section: "+strings.Join(fields, "; ")+".")
	}
	parts = append(parts,
		"Copy amounts exactly as printed, as decimal numbers without currency symbols.",
		"Credits and payments keep the sign printed on the bill; amounts shown in parentheses or with CR are negative.",
		"Include every charge row printed in a charge table, including subtotal rows, in printed order.",
		"For meters, copy previous and current readings and the multiplier as printed.",
		"If a field is not on the bill, omit it. Never invent amounts.",
	)
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages filename and folder hints.
func BuildUserPrompt(filename, folder string, pages int) string {
	var b strings.Builder
	if f := strings.TrimSpace(filename); f != "" {
		b.WriteString("Filename: ")
		b.WriteString(f)
		b.WriteString("\n")
	}
	if f := strings.TrimSpace(folder); f != "" {
		b.WriteString("Folder path: ")
		b.WriteString(f)
		b.WriteString("\n")
	}
	b.WriteString("\nThe attached images are the bill's pages in order")
	if pages > 0 {
		b.WriteString(" (")
		b.WriteString(strconv.Itoa(pages))
		b.WriteString(" pages)")
	}
	b.WriteString(". Return ONLY JSON that matches the provided schema.")
	return b.String()
}

// BuildDetectPrompt asks for the issuing provider, chosen from candidates.
func BuildDetectPrompt(candidates []string) string {
	return "Identify the utility company that issued the attached bill. " +
		"Answer with a JSON object {\"provider\": \"...\"} whose value is exactly one of: " +
		strings.Join(candidates, ", ") + ". " +
		"If none fits, answer {\"provider\": \"unknown\"}."
}

// SchemaInstruction renders the schema for inclusion in a system message.
func SchemaInstruction(schema map[string]any) string {
	b, _ := json.MarshalIndent(schema, "", "  ")
	return "JSON Schema:\n" + string(b)
}

