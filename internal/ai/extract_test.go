package ai

import (
	"encoding/json"
	"testing"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
)

type textResponse struct{ body string }

func (r textResponse) Text() string { return r.body }

func TestExtract_Shapes(t *testing.T) {
	genaiResp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text("Day 1: beach"), genai.Text("Day 2: fort")}},
		}},
	}
	chat := openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: "Day 1: museum"}}},
	}

	tests := []struct {
		name string
		resp any
		want string
	}{
		{"plain string", "Day 1: hello", "Day 1: hello"},
		{"text method", textResponse{body: "from method"}, "from method"},
		{"map text field", map[string]any{"text": "direct"}, "direct"},
		{"json text field", []byte(`{"text":"raw json"}`), "raw json"},
		{"genai response", genaiResp, "Day 1: beach\nDay 2: fort"},
		{"map content list", map[string]any{
			"candidates": []any{map[string]any{"content": []any{map[string]any{"text": "nested"}}}},
		}, "nested"},
		{"map content parts", map[string]any{
			"candidates": []any{map[string]any{"content": map[string]any{"parts": []any{
				map[string]any{"text": "a"}, map[string]any{"text": "b"},
			}}}},
		}, "a\nb"},
		{"empty text falls through to candidates", map[string]any{
			"text":       "",
			"candidates": []any{map[string]any{"content": []any{map[string]any{"text": "second"}}}},
		}, "second"},
		{"json candidates", json.RawMessage(`{"candidates":[{"content":[{"text":"from raw"}]}]}`), "from raw"},
		{"openai choices", chat, "Day 1: museum"},
		{"openai choices pointer", &chat, "Day 1: museum"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractText(tt.resp))
		})
	}
}

func TestExtract_FallbackString(t *testing.T) {
	type odd struct{ Code int }
	assert.Equal(t, "{Code:7}", ExtractText(odd{Code: 7}))
	assert.Equal(t, "<nil>", ExtractText(nil))
	assert.Equal(t, "map[candidates:[]]", ExtractText(map[string]any{"candidates": []any{}}))
	assert.Contains(t, ExtractText(openai.ChatCompletionResponse{ID: "chatcmpl-1"}), "chatcmpl-1")
}

func TestExtract_PanickingStrategyIsAMiss(t *testing.T) {
	boom := func(any) (string, bool) { panic("boom") }
	e := NewExtractor(boom, DirectText)
	assert.Equal(t, "still works", e.Extract("still works"))

	only := NewExtractor(boom)
	assert.Equal(t, "42", only.Extract(42))
}

func TestExtract_EmptyGenaiResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{}
	got := ExtractText(resp)
	assert.Contains(t, got, "Candidates:[]")
}

func TestStripCodeFences(t *testing.T) {
	in := "Day 1: beach\nPOINTS:\n```json\n{\"points\":[]}\n```"
	assert.Equal(t, "Day 1: beach\nPOINTS:\n{\"points\":[]}", StripCodeFences(in))
}
