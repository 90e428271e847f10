package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	goopenai "github.com/sashabaranov/go-openai"

	"github.com/joseph-ayodele/utility-bills/internal/bill"
	"github.com/joseph-ayodele/utility-bills/internal/common"
	"github.com/joseph-ayodele/utility-bills/internal/llm"
	"github.com/joseph-ayodele/utility-bills/internal/observability/metrics"
)

var _ llm.BillExtractor = (*Client)(nil)

// ExtractBill implements llm.BillExtractor with a vision chat completion.
// The response is validated against the provider schema; when that fails and
// LenientOptional is set, it is sanitized and validated once more.
func (c *Client) ExtractBill(ctx context.Context, req llm.ExtractRequest) (llm.Extraction, error) {
	rid := uuid.New().String()
	start := time.Now()
	provider := string(req.Rule.Provider)

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"provider", provider,
		"pages", len(req.Images),
	)

	schema := llm.BuildBillJSONSchema(req.Rule)
	parts, err := c.imageParts(llm.BuildUserPrompt(req.FilenameHint, req.FolderHint, len(req.Images)), req.Images)
	if err != nil {
		c.logger.Error("llm.extract.image_error", "req_id", rid, "error", err)
		metrics.ObserveLLM("extract", metrics.ResultError, time.Since(start))
		return llm.Extraction{}, common.NewAppError("LLM_IMAGE", "cannot attach bill pages", err)
	}

	content, err := c.complete(ctx, []goopenai.ChatCompletionMessage{
		{Role: goopenai.ChatMessageRoleSystem, Content: llm.BuildSystemPrompt(req.Rule)},
		{Role: goopenai.ChatMessageRoleSystem, Content: llm.SchemaInstruction(schema)},
		{Role: goopenai.ChatMessageRoleUser, MultiContent: parts},
	})
	if err != nil {
		c.logger.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		metrics.ObserveLLM("extract", metrics.ResultError, time.Since(start))
		return llm.Extraction{}, fmt.Errorf("%w: %w", common.ErrExtraction, err)
	}
	rawContent := []byte(content)

	var dropped []string
	if err := llm.ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		if !c.cfg.LenientOptional {
			c.logger.Error("llm.extract.schema_validation_failed",
				"req_id", rid, "error", err, "content", content,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			metrics.ObserveLLM("extract", metrics.ResultFailed, time.Since(start))
			return llm.Extraction{Raw: rawContent}, fmt.Errorf("%w: schema validation failed: %w", common.ErrExtraction, err)
		}
		cleaned, d, sErr := llm.SanitizeBillJSON(rawContent, req.Rule, c.logger)
		if sErr != nil {
			c.logger.Error("llm.extract.sanitize_failed", "req_id", rid, "error", sErr)
			metrics.ObserveLLM("extract", metrics.ResultFailed, time.Since(start))
			return llm.Extraction{Raw: rawContent}, fmt.Errorf("%w: sanitize failed: %w", common.ErrExtraction, sErr)
		}
		if vErr := llm.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			c.logger.Error("llm.extract.schema_validation_failed",
				"req_id", rid, "error", vErr, "content", string(cleaned),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			metrics.ObserveLLM("extract", metrics.ResultFailed, time.Since(start))
			return llm.Extraction{Raw: cleaned}, fmt.Errorf("%w: schema validation failed: %w", common.ErrExtraction, vErr)
		}
		c.logger.Warn("llm.extract.lenient_sanitize_applied", "req_id", rid, "dropped", d)
		rawContent, dropped = cleaned, d
	}

	doc, err := bill.Parse(rawContent)
	if err != nil {
		metrics.ObserveLLM("extract", metrics.ResultFailed, time.Since(start))
		return llm.Extraction{Raw: rawContent}, fmt.Errorf("%w: %w", common.ErrExtraction, err)
	}
	if doc.Provider == "" {
		doc.Provider = provider
	}

	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"provider", doc.Provider,
		"total_amount_due", doc.String("statement.total_amount_due"),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	metrics.ObserveLLM("extract", metrics.ResultSuccess, time.Since(start))
	return llm.Extraction{Document: doc, Raw: rawContent, Model: c.cfg.Model, Dropped: dropped}, nil
}

// DetectProvider asks the model which provider issued the bill. Only the
// first page is sent. The answer is returned as written; callers canonicalize it.
func (c *Client) DetectProvider(ctx context.Context, req llm.DetectRequest) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	images := req.Images
	if len(images) > 1 {
		images = images[:1]
	}
	hint := llm.BuildUserPrompt(req.FilenameHint, req.FolderHint, len(images))
	parts, err := c.imageParts(hint, images)
	if err != nil {
		metrics.ObserveLLM("detect", metrics.ResultError, time.Since(start))
		return "", common.NewAppError("LLM_IMAGE", "cannot attach bill pages", err)
	}

	content, err := c.complete(ctx, []goopenai.ChatCompletionMessage{
		{Role: goopenai.ChatMessageRoleSystem, Content: llm.BuildDetectPrompt(req.Candidates)},
		{Role: goopenai.ChatMessageRoleUser, MultiContent: parts},
	})
	if err != nil {
		c.logger.Error("llm.detect.http_error", "req_id", rid, "error", err)
		metrics.ObserveLLM("detect", metrics.ResultError, time.Since(start))
		return "", fmt.Errorf("%w: %w", common.ErrExtraction, err)
	}

	var out struct {
		Provider string `json:"provider"`
	}
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		metrics.ObserveLLM("detect", metrics.ResultFailed, time.Since(start))
		return "", fmt.Errorf("%w: decode provider answer: %w", common.ErrExtraction, err)
	}
	name := strings.TrimSpace(out.Provider)
	if name == "" || strings.EqualFold(name, "unknown") {
		metrics.ObserveLLM("detect", metrics.ResultFailed, time.Since(start))
		return "", fmt.Errorf("%w: provider not recognized", common.ErrExtraction)
	}

	c.logger.Info("llm.detect.ok", "req_id", rid, "provider", name, "elapsed_ms", time.Since(start).Milliseconds())
	metrics.ObserveLLM("detect", metrics.ResultSuccess, time.Since(start))
	return name, nil
}

func (c *Client) complete(ctx context.Context, messages []goopenai.ChatCompletionMessage) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Temperature: c.cfg.Temperature,
		Messages:    messages,
		ResponseFormat: &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in openai response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (c *Client) imageParts(text string, images []string) ([]goopenai.ChatMessagePart, error) {
	parts := []goopenai.ChatMessagePart{{Type: goopenai.ChatMessagePartTypeText, Text: text}}
	for i, path := range images {
		url, err := llm.ImageDataURL(path, c.cfg.MaxImageMB)
		if err != nil {
			return nil, err
		}
		parts = append(parts,
			goopenai.ChatMessagePart{Type: goopenai.ChatMessagePartTypeText, Text: fmt.Sprintf("Page %d (%s):", i+1, filepath.Base(path))},
			goopenai.ChatMessagePart{
				Type:     goopenai.ChatMessagePartTypeImageURL,
				ImageURL: &goopenai.ChatMessageImageURL{URL: url, Detail: goopenai.ImageURLDetailHigh},
			},
		)
	}
	return parts, nil
}
