package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/examcoach-ai/coach-server/internal/ai"
)

// AIDay is one day of an AI-generated plan. The shape matches what the
// model is prompted to return and what the frontend renders directly.
type AIDay struct {
	Day   int      `json:"day"`
	Title string   `json:"title"`
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
	Time  string   `json:"time"`
	MCQs  int      `json:"mcqs"`
	Color string   `json:"color"`
	Light string   `json:"light"`
}

// aiPlanSchema validates the model's reply before it is trusted.
const aiPlanSchema = `{
	"type": "array",
	"minItems": 7,
	"maxItems": 7,
	"items": {
		"type": "object",
		"required": ["day", "title", "focus", "tasks", "time", "mcqs"],
		"properties": {
			"day":   {"type": "integer", "minimum": 1, "maximum": 7},
			"title": {"type": "string", "minLength": 1},
			"focus": {"type": "string", "minLength": 1},
			"tasks": {"type": "array", "items": {"type": "string"}, "minItems": 1},
			"time":  {"type": "string"},
			"mcqs":  {"type": "integer", "minimum": 0},
			"color": {"type": "string"},
			"light": {"type": "string"}
		}
	}
}`

var planSchema = gojsonschema.NewStringLoader(aiPlanSchema)

// BuildPrompt renders the plan-generation prompt for one exam and set
// of weak topic names.
func BuildPrompt(exam string, weakTopics []string) string {
	topics := "General revision"
	if len(weakTopics) > 0 {
		topics = strings.Join(weakTopics, ", ")
	}

	return fmt.Sprintf(`You are an expert entrance exam coach for %s.

Generate a personalized 7-day revision plan based on these weak topics: %s

Return ONLY a valid JSON array (no other text) with exactly 7 objects, each having these keys:
- day: number (1-7)
- title: string (short day title)
- focus: string (main topic focus)
- tasks: array of strings (3-4 study tasks)
- time: string (e.g., "2 hours")
- mcqs: number (practice questions count)
- color: string (hex color like "#ff6b35")
- light: string (light rgba like "rgba(255,107,53,0.08)")

Example format:
[
  {"day": 1, "title": "Foundation Day", "focus": "Topic Name", "tasks": ["Task 1", "Task 2"], "time": "2 hours", "mcqs": 10, "color": "#ff6b35", "light": "rgba(255,107,53,0.08)"}
]

JSON:`, exam, topics)
}

// ExtractPlanJSON pulls the JSON array out of a model reply (models
// often wrap it in prose or markdown fences), validates it against the
// plan schema and decodes it.
func ExtractPlanJSON(reply string) ([]AIDay, error) {
	start := strings.Index(reply, "[")
	end := strings.LastIndex(reply, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array in model reply")
	}
	raw := reply[start : end+1]

	result, err := gojsonschema.Validate(planSchema, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("validating plan JSON: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			errs = append(errs, e.String())
		}
		return nil, fmt.Errorf("plan JSON failed schema validation: %s", strings.Join(errs, "; "))
	}

	var days []AIDay
	if err := json.Unmarshal([]byte(raw), &days); err != nil {
		return nil, fmt.Errorf("decoding plan JSON: %w", err)
	}
	return days, nil
}

// Completer is the single-call surface Generate needs from the AI
// layer.
type Completer interface {
	Complete(ctx context.Context, req ai.CompletionRequest) (ai.CompletionResponse, error)
}

// Generate asks the model for a 7-day plan. Any failure (transport,
// malformed reply, schema violation) is returned to the caller, who
// decides whether to fall back.
func Generate(ctx context.Context, completer Completer, exam string, weakTopics []string) ([]AIDay, error) {
	resp, err := completer.Complete(ctx, ai.CompletionRequest{
		Messages: []ai.Message{
			{Role: "user", Content: BuildPrompt(exam, weakTopics)},
		},
		Task: ai.TaskPlanning,
	})
	if err != nil {
		return nil, fmt.Errorf("generating plan: %w", err)
	}
	return ExtractPlanJSON(resp.Content)
}
