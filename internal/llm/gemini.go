package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// geminiAliases maps the short names used in config to released models.
var geminiAliases = map[string]string{
	"gemini-flash": "gemini-2.0-flash",
	"gemini-pro":   "gemini-2.0-pro",
}

// GeminiProvider runs tasks against the Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a Gemini-backed provider.
func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &GeminiProvider{
		client: client,
		model:  canonicalModel(cfg.Model, geminiAliases),
	}, nil
}

func (p *GeminiProvider) Complete(ctx context.Context, task Task) (*Result, error) {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(task.MaxTokens),
	}
	if task.Temperature > 0 {
		temp := float32(task.Temperature)
		config.Temperature = &temp
	}
	if task.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: task.System}},
		}
	}
	if task.Schema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = geminiSchema(task.Schema.Definition)
	}

	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: task.Prompt}},
	}}

	out, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		return nil, geminiFailure(err)
	}

	raw := json.RawMessage(out.Text())
	if geminiTruncated(out) {
		return nil, &ErrTruncated{Raw: raw}
	}
	if task.Schema != nil {
		if err := task.Schema.Check(raw); err != nil {
			return nil, err
		}
	}

	res := &Result{JSON: raw, Model: p.model}
	if out.UsageMetadata != nil {
		res.Tokens = TokenCount{
			Input:  int(out.UsageMetadata.PromptTokenCount),
			Output: int(out.UsageMetadata.CandidatesTokenCount),
		}
	}
	return res, nil
}

func (p *GeminiProvider) ModelID() string { return p.model }

func geminiTruncated(out *genai.GenerateContentResponse) bool {
	return len(out.Candidates) > 0 && out.Candidates[0].FinishReason == "MAX_TOKENS"
}

// geminiSchema translates the JSON Schema subset the insight schema uses
// into the typed schema Gemini wants; it takes no raw schema documents.
func geminiSchema(def map[string]any) *genai.Schema {
	s := &genai.Schema{}
	for key, val := range def {
		switch key {
		case "type":
			if t, ok := val.(string); ok {
				s.Type = geminiType(t)
			}
		case "description":
			if d, ok := val.(string); ok {
				s.Description = d
			}
		case "properties":
			props, ok := val.(map[string]any)
			if !ok {
				continue
			}
			s.Properties = make(map[string]*genai.Schema, len(props))
			for name, sub := range props {
				if subDef, ok := sub.(map[string]any); ok {
					s.Properties[name] = geminiSchema(subDef)
				}
			}
		case "items":
			if subDef, ok := val.(map[string]any); ok {
				s.Items = geminiSchema(subDef)
			}
		case "required":
			s.Required = append(s.Required, stringList(val)...)
		case "enum":
			s.Enum = append(s.Enum, stringList(val)...)
		}
	}
	return s
}

func stringList(val any) []string {
	list, ok := val.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func geminiType(t string) genai.Type {
	switch t {
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	default:
		return genai.TypeString
	}
}

func geminiFailure(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return &ErrRateLimited{Err: err}
	}
	return &ErrUnavailable{Err: err}
}
