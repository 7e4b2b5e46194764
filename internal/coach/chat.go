package coach

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/examcoach-ai/coach-server/internal/ai"
)

// chatResponses are the canned replies served when no AI provider is
// reachable, keyed by subject keyword.
var chatResponses = map[string]string{
	"thermodynamics": "Thermodynamics is all about heat, work, and energy. Key concepts:\n\n• First Law: Energy can be transformed but not created/destroyed\n• Second Law: Entropy always increases in spontaneous processes\n• Key formulas: ΔU = Q - W, ΔH = ΔU + PΔV\n\nFocus on understanding the laws and practice problems involving heat capacity!",

	"carnot": "The Carnot cycle is an ideal reversible cycle:\n\n1. Isothermal Expansion (heat absorbed)\n2. Adiabatic Expansion (temp drops)\n3. Isothermal Compression (heat rejected)\n\nEfficiency = 1 - Tc/Th (cold temp / hot temp). It's the most efficient heat engine possible!",

	"organic": "Organic Chemistry tips:\n\n• Focus on reaction mechanisms (curly arrows!)\n• Know the functional groups and their properties\n• Practice named reactions: SN1, SN2, E1, E2\n\nStart with mechanism basics - electron flow is key!",

	"hours": "For JEE/NEET preparation, aim for:\n\n• 6-8 hours daily during study phase\n• Focus on weak topics first\n• Take short breaks every 45 minutes\n\nQuality over quantity - it's not about how long you study, but how effectively!",

	"practice": "Here are 3 practice tips:\n\n1. Start with easier questions to build confidence\n2. Time yourself - aim for 2 min per question\n3. Review mistakes immediately - don't let them accumulate\n\nConsistent practice is the key to success!",

	"default": "Great question! Here are some general tips:\n\n1. Focus on your weak topics first\n2. Practice regularly with mock tests\n3. Review mistakes and understand concepts\n4. Stay consistent with your study schedule\n\nKeep pushing forward - every step counts towards your goal! 💪",
}

// FallbackReply picks a canned coaching reply by keyword.
func FallbackReply(message string) string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "thermodynamics") || strings.Contains(lower, "thermo"):
		return chatResponses["thermodynamics"]
	case strings.Contains(lower, "carnot"):
		return chatResponses["carnot"]
	case strings.Contains(lower, "organic") || strings.Contains(lower, "sn1") || strings.Contains(lower, "sn2"):
		return chatResponses["organic"]
	case strings.Contains(lower, "hour") || (strings.Contains(lower, "study") && strings.Contains(lower, "how")):
		return chatResponses["hours"]
	case strings.Contains(lower, "practice") || strings.Contains(lower, "question") || strings.Contains(lower, "mcq"):
		return chatResponses["practice"]
	default:
		return chatResponses["default"]
	}
}

// chatPrompt frames the student's question for the model, with weak
// topics as optional context.
func chatPrompt(message string, weakTopics []string) string {
	topicContext := ""
	if len(weakTopics) > 0 {
		topicContext = "Student weak topics: " + strings.Join(weakTopics, ", ")
	}

	return fmt.Sprintf(`%s

You are a helpful AI exam coach. Answer the student's question clearly and concisely:

Student question: %s

Provide a helpful, educational response.`, topicContext, message)
}

// Chat answers a student question. AI failures degrade to a keyword
// fallback reply rather than an error.
func (e *Engine) Chat(ctx context.Context, message string, weakTopics []string) string {
	if e.ai == nil {
		return FallbackReply(message)
	}

	resp, err := e.ai.Complete(ctx, ai.CompletionRequest{
		Messages: []ai.Message{
			{Role: "user", Content: chatPrompt(message, weakTopics)},
		},
		Task: ai.TaskChat,
	})
	if err != nil {
		slog.Warn("AI chat failed, using fallback reply", "error", err)
		return FallbackReply(message)
	}

	if err := e.events.Log(ctx, "chat", map[string]any{"message": message}); err != nil {
		slog.Warn("event log failed", "event", "chat", "error", err)
	}

	return resp.Content
}
