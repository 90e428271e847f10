package openai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joseph-ayodele/utility-bills/internal/common"
	"github.com/joseph-ayodele/utility-bills/internal/llm"
	"github.com/joseph-ayodele/utility-bills/internal/reconcile"
)

// fakeChat answers every chat completion with content and records request bodies.
func fakeChat(t *testing.T, content string, bodies *[]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		b, _ := io.ReadAll(r.Body)
		if bodies != nil {
			*bodies = append(*bodies, string(b))
		}
		resp := map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1,
			"model":   "gpt-4o",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func page(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page-1.png")
	if err := os.WriteFile(path, []byte("\x89PNG fake"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func rule(t *testing.T, name string) reconcile.Rule {
	t.Helper()
	r, ok := reconcile.DefaultRegistry().Lookup(name)
	if !ok {
		t.Fatalf("no rule for %s", name)
	}
	return r
}

func newTestClient(url string, lenient bool) *Client {
	return NewClient(Config{APIKey: "sk-test", BaseURL: url + "/v1", LenientOptional: lenient}, nil)
}

func TestExtractBill_Valid(t *testing.T) {
	var bodies []string
	content := `{"provider":"kent","statement":{"total_amount_due":"45.00","balance_forward":"0","current_billing":"45.00"}}`
	srv := fakeChat(t, content, &bodies)

	out, err := newTestClient(srv.URL, true).ExtractBill(context.Background(), llm.ExtractRequest{
		Rule:         rule(t, "kent"),
		Images:       []string{page(t)},
		FilenameHint: "kent-2024-01.pdf",
	})
	if err != nil {
		t.Fatalf("ExtractBill: %v", err)
	}
	if out.Document == nil || out.Document.Provider != "kent" {
		t.Fatalf("document = %+v", out.Document)
	}
	if got := out.Document.String("statement.total_amount_due"); got != "45.00" {
		t.Errorf("total = %q, want 45.00", got)
	}
	if len(out.Dropped) != 0 {
		t.Errorf("dropped = %v, want none", out.Dropped)
	}
	if len(bodies) != 1 {
		t.Fatalf("requests = %d, want 1", len(bodies))
	}
	if !strings.Contains(bodies[0], "data:image/png;base64,") {
		t.Error("request should carry the page as a data URL")
	}
	if !strings.Contains(bodies[0], `"json_object"`) {
		t.Error("request should ask for a JSON object response")
	}
}

func TestExtractBill_LenientSanitize(t *testing.T) {
	// no provider, so the strict pass fails
	content := `{"statement":{"total_amount_due":" $45 "},"services":[{"current_service_amount":"45","line_item_charges":[]}]}`
	srv := fakeChat(t, content, nil)

	out, err := newTestClient(srv.URL, true).ExtractBill(context.Background(), llm.ExtractRequest{
		Rule:   rule(t, "kent"),
		Images: []string{page(t)},
	})
	if err != nil {
		t.Fatalf("ExtractBill: %v", err)
	}
	if out.Document.Provider != "kent" {
		t.Errorf("provider = %q, want kent", out.Document.Provider)
	}
	if len(out.Dropped) == 0 {
		t.Error("expected sanitizer changes to be reported")
	}
	if got := out.Document.String("services[0].current_service"); got != "45.00" {
		t.Errorf("current_service = %q, want 45.00", got)
	}
}

func TestExtractBill_StrictRejects(t *testing.T) {
	srv := fakeChat(t, `{"statement":{}}`, nil)
	_, err := newTestClient(srv.URL, false).ExtractBill(context.Background(), llm.ExtractRequest{
		Rule:   rule(t, "kent"),
		Images: []string{page(t)},
	})
	if !errors.Is(err, common.ErrExtraction) {
		t.Fatalf("err = %v, want ErrExtraction", err)
	}
}

func TestExtractBill_MissingImage(t *testing.T) {
	srv := fakeChat(t, `{}`, nil)
	_, err := newTestClient(srv.URL, true).ExtractBill(context.Background(), llm.ExtractRequest{
		Rule:   rule(t, "kent"),
		Images: []string{filepath.Join(t.TempDir(), "missing.png")},
	})
	var appErr *common.AppError
	if !errors.As(err, &appErr) || appErr.Code != "LLM_IMAGE" {
		t.Fatalf("err = %v, want LLM_IMAGE", err)
	}
}

func TestDetectProvider(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{"known", `{"provider":"Puget Sound Energy"}`, "Puget Sound Energy", false},
		{"unknown", `{"provider":"unknown"}`, "", true},
		{"not json", `kent`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := fakeChat(t, tt.content, nil)
			got, err := newTestClient(srv.URL, true).DetectProvider(context.Background(), llm.DetectRequest{
				Images:     []string{page(t), page(t)},
				Candidates: []string{"pse", "kent"},
			})
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("provider = %q, want %q", got, tt.want)
			}
		})
	}
}
