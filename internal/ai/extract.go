package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
)

// TextStrategy pulls reply text out of one family of response shapes.
// ok is false when the shape is not recognised or carries no text.
type TextStrategy func(resp any) (text string, ok bool)

// Extractor tries its strategies in order; the first non-empty text wins.
// Unrecognised responses degrade to their %+v rendering, so Extract never fails.
type Extractor struct {
	strategies []TextStrategy
}

// NewExtractor builds an Extractor over strategies, tried in the given order.
func NewExtractor(strategies ...TextStrategy) *Extractor {
	return &Extractor{strategies: strategies}
}

// DefaultExtractor knows plain text, Gemini candidates and OpenAI choices.
func DefaultExtractor() *Extractor {
	return NewExtractor(DirectText, CandidateText, ChoiceText)
}

// ExtractText runs the default strategy chain over resp.
func ExtractText(resp any) string {
	return DefaultExtractor().Extract(resp)
}

func (e *Extractor) Extract(resp any) string {
	for _, s := range e.strategies {
		if text, ok := try(s, resp); ok {
			return text
		}
	}
	return fmt.Sprintf("%+v", resp)
}

func try(s TextStrategy, resp any) (text string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			text, ok = "", false
		}
	}()
	text, ok = s(resp)
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, ok
}

// DirectText handles strings, values with a Text() method and objects with a
// top-level "text" field.
func DirectText(resp any) (string, bool) {
	switch v := resp.(type) {
	case string:
		return v, true
	case interface{ Text() string }:
		return v.Text(), true
	case map[string]any:
		s, ok := v["text"].(string)
		return s, ok
	case []byte, json.RawMessage:
		m, ok := decodeObject(v)
		if !ok {
			return "", false
		}
		return DirectText(m)
	}
	return "", false
}

// CandidateText handles Gemini responses and the equivalent generic maps:
// candidates[0].content[0].text and candidates[0].content.parts[*].text.
func CandidateText(resp any) (string, bool) {
	switch v := resp.(type) {
	case *genai.GenerateContentResponse:
		return genaiText(v)
	case genai.GenerateContentResponse:
		return genaiText(&v)
	case map[string]any:
		return mapCandidateText(v)
	case []byte, json.RawMessage:
		m, ok := decodeObject(v)
		if !ok {
			return "", false
		}
		return mapCandidateText(m)
	}
	return "", false
}

// ChoiceText handles OpenAI chat completion responses.
func ChoiceText(resp any) (string, bool) {
	var r openai.ChatCompletionResponse
	switch v := resp.(type) {
	case openai.ChatCompletionResponse:
		r = v
	case *openai.ChatCompletionResponse:
		if v == nil {
			return "", false
		}
		r = *v
	default:
		return "", false
	}
	if len(r.Choices) == 0 {
		return "", false
	}
	return r.Choices[0].Message.Content, true
}

func genaiText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", false
	}
	var parts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok && strings.TrimSpace(string(txt)) != "" {
			parts = append(parts, string(txt))
		}
	}
	return strings.Join(parts, "\n"), len(parts) > 0
}

func mapCandidateText(m map[string]any) (string, bool) {
	cands, ok := m["candidates"].([]any)
	if !ok || len(cands) == 0 {
		return "", false
	}
	first, ok := cands[0].(map[string]any)
	if !ok {
		return "", false
	}
	switch content := first["content"].(type) {
	case []any:
		if len(content) == 0 {
			return "", false
		}
		item, ok := content[0].(map[string]any)
		if !ok {
			return "", false
		}
		s, ok := item["text"].(string)
		return s, ok
	case map[string]any:
		parts, ok := content["parts"].([]any)
		if !ok {
			return "", false
		}
		var texts []string
		for _, p := range parts {
			pm, ok := p.(map[string]any)
			if !ok {
				continue
			}
			if s, ok := pm["text"].(string); ok && strings.TrimSpace(s) != "" {
				texts = append(texts, s)
			}
		}
		return strings.Join(texts, "\n"), len(texts) > 0
	}
	return "", false
}

func decodeObject(v any) (map[string]any, bool) {
	var raw []byte
	switch b := v.(type) {
	case []byte:
		raw = b
	case json.RawMessage:
		raw = b
	default:
		return nil, false
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, false
	}
	return m, true
}

// StripCodeFences drops markdown fence lines (``` or ```json) so a fenced
// POINTS object sits directly after its label.
func StripCodeFences(text string) string {
	lines := strings.Split(text, "\n")
	out := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
