package coach

import (
	"fmt"
	"math"
	"strings"

	"github.com/examcoach-ai/coach-server/internal/analysis"
	"github.com/examcoach-ai/coach-server/internal/plan"
	"github.com/examcoach-ai/coach-server/internal/resources"
)

// ocrCompleteMinChars is the minimum usable OCR text length; anything
// shorter is treated as a partial extraction.
const ocrCompleteMinChars = 50

// AccuracyStats summarises overall test performance.
type AccuracyStats struct {
	TotalQuestions     int     `json:"total_questions"`
	CorrectAnswers     int     `json:"correct_answers"`
	AccuracyPercentage float64 `json:"accuracy_percentage"`
	WeakTopicCount     int     `json:"weak_topic_count"`
}

// WeakTopic is one prioritized weak topic in the report.
type WeakTopic struct {
	Topic          string   `json:"topic"`
	Subject        string   `json:"subject"`
	Accuracy       float64  `json:"accuracy"`
	Strength       string   `json:"strength"`
	QuestionsCount int      `json:"questions_count"`
	ErrorPatterns  []string `json:"error_patterns"`
}

// Report is the complete analysis response.
type Report struct {
	Student              string                          `json:"student"`
	Exam                 string                          `json:"exam"`
	MockTestID           string                          `json:"mock_test_id"`
	DataStatus           string                          `json:"data_status"`
	AccuracyStats        AccuracyStats                   `json:"accuracy_stats"`
	WeakTopics           []WeakTopic                     `json:"weak_topics"`
	RecommendedResources map[string][]resources.Resource `json:"recommended_resources"`
	RevisionPlan         []plan.DayPlan                  `json:"revision_plan_7_days"`
	HumanReadable        string                          `json:"human_readable"`
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// dataStatus reports whether OCR extraction produced usable text.
func dataStatus(ocrText string) string {
	if len(strings.TrimSpace(ocrText)) > ocrCompleteMinChars {
		return "complete"
	}
	return "partial_ocr"
}

func formatWeakTopics(weak []analysis.PrioritizedTopic) []WeakTopic {
	out := make([]WeakTopic, 0, len(weak))
	for _, w := range weak {
		patterns := make([]string, 0, len(w.Analysis.ErrorPatterns))
		for _, p := range w.Analysis.ErrorPatterns {
			patterns = append(patterns, p.String())
		}
		out = append(out, WeakTopic{
			Topic:          w.Analysis.TopicName,
			Subject:        w.Analysis.Subject,
			Accuracy:       round1(w.Analysis.AccuracyPercentage),
			Strength:       w.Analysis.Strength.String(),
			QuestionsCount: w.Analysis.TotalQuestions,
			ErrorPatterns:  patterns,
		})
	}
	return out
}

// buildSummary renders the student-facing plain-text summary.
func buildSummary(studentName, examType string, totalQuestions int, accuracy float64, weak []analysis.PrioritizedTopic) string {
	lines := []string{
		"📊 ANALYSIS SUMMARY",
		fmt.Sprintf("Hi %s! Based on your %s mock test:", studentName, examType),
		"",
		fmt.Sprintf("🎯 You scored %v%% accuracy across %d questions.", accuracy, totalQuestions),
		"",
		"⚠️ AREAS NEEDING IMPROVEMENT:",
	}

	top := weak
	if len(top) > 5 {
		top = top[:5]
	}
	for _, t := range top {
		marker := "🟠"
		if t.Analysis.Strength == analysis.StrengthVeryWeak {
			marker = "🔴"
		}
		lines = append(lines, fmt.Sprintf("  %s %s (%s) - %.0f%% accuracy",
			marker, t.Analysis.TopicName, t.Analysis.Subject, t.Analysis.AccuracyPercentage))
	}

	lines = append(lines,
		"",
		"📚 STUDY RESOURCES:",
		"We've recommended videos and notes from trusted sources like",
		"Khan Academy, Physics Wallah, Vedantu, and Unacademy.",
		"",
		"📅 7-DAY REVISION PLAN:",
		"Day 1-2: Foundation building",
		"Day 3-4: Practice & focus on weak areas",
		"Day 5: Full mock test simulation",
		"Day 6-7: Revision & final prep",
		"",
		"💡 STUDY TIPS:",
		"• Focus on topics with lowest accuracy first",
		"• Practice consistently every day",
		"• Use recommended resources for better understanding",
		"• Take breaks every 45 minutes during study",
		"",
		fmt.Sprintf("Best of luck, %s! You've got this! 💪", studentName),
	)

	return strings.Join(lines, "\n")
}
