// Package coach orchestrates the study-coach pipeline: normalize the
// raw mock-test payload, analyze per-topic performance, prioritize
// weak topics by syllabus weight, attach trusted resources and a 7-day
// revision plan, and render the report.
package coach

import (
	"context"
	"log/slog"

	"github.com/examcoach-ai/coach-server/internal/analysis"
	"github.com/examcoach-ai/coach-server/internal/plan"
	"github.com/examcoach-ai/coach-server/internal/resources"
	"github.com/examcoach-ai/coach-server/internal/syllabus"
)

// DefaultExamType applies when a request does not name an exam.
const DefaultExamType = "JEE Mains"

// EngineConfig wires the engine's collaborators. AI is optional; the
// deterministic pipeline never needs it. Events defaults to a no-op
// logger.
type EngineConfig struct {
	AI            plan.Completer
	Weightage     *syllabus.Table
	Events        EventLogger
	MaxWeakTopics int
}

// Engine is the study-coach pipeline. Safe for concurrent use: all
// request state lives on the stack.
type Engine struct {
	ai            plan.Completer
	weightage     *syllabus.Table
	events        EventLogger
	maxWeakTopics int
}

func NewEngine(cfg EngineConfig) *Engine {
	events := cfg.Events
	if events == nil {
		events = NopEventLogger{}
	}
	weightage := cfg.Weightage
	if weightage == nil {
		weightage = syllabus.NewTable()
	}
	maxTopics := cfg.MaxWeakTopics
	if maxTopics <= 0 {
		maxTopics = analysis.DefaultMaxWeakTopics
	}
	return &Engine{
		ai:            cfg.AI,
		weightage:     weightage,
		events:        events,
		maxWeakTopics: maxTopics,
	}
}

// AnalyzeRequest is the full mock-test analysis payload.
type AnalyzeRequest struct {
	StudentName string                 `json:"student_name"`
	ExamType    string                 `json:"exam_type"`
	MockTestID  string                 `json:"mock_test_id"`
	Questions   []analysis.RawQuestion `json:"questions"`
	OCRText     string                 `json:"ocr_text,omitempty"`
}

// AnalyzeAndPlan runs the whole pipeline and returns the report. It
// never fails on sparse input: missing OCR text only downgrades
// data_status, and an empty question list yields an empty-but-valid
// report.
func (e *Engine) AnalyzeAndPlan(ctx context.Context, req *AnalyzeRequest) *Report {
	studentName := req.StudentName
	if studentName == "" {
		studentName = "Student"
	}
	examType := req.ExamType
	if examType == "" {
		examType = DefaultExamType
	}

	questions := analysis.NormalizeAll(req.Questions)
	topics := analysis.Analyze(questions)
	weights := e.weightage.ForExam(examType)
	weak := analysis.PrioritizeWeakTopics(topics, weights, e.maxWeakTopics)

	topicRefs := make([]resources.TopicRef, 0, len(weak))
	planRefs := make([]plan.TopicRef, 0, len(weak))
	for _, w := range weak {
		topicRefs = append(topicRefs, resources.TopicRef{Name: w.Analysis.TopicName, Subject: w.Analysis.Subject})
		planRefs = append(planRefs, plan.TopicRef{Name: w.Analysis.TopicName, Subject: w.Analysis.Subject})
	}

	totalQuestions := len(questions)
	correct := 0
	for _, q := range questions {
		if q.IsCorrect {
			correct++
		}
	}
	accuracy := 0.0
	if totalQuestions > 0 {
		accuracy = round1(float64(correct) / float64(totalQuestions) * 100)
	}

	report := &Report{
		Student:    studentName,
		Exam:       examType,
		MockTestID: req.MockTestID,
		DataStatus: dataStatus(req.OCRText),
		AccuracyStats: AccuracyStats{
			TotalQuestions:     totalQuestions,
			CorrectAnswers:     correct,
			AccuracyPercentage: accuracy,
			WeakTopicCount:     len(weak),
		},
		WeakTopics:           formatWeakTopics(weak),
		RecommendedResources: resources.Recommend(topicRefs),
		RevisionPlan:         plan.Build7Day(planRefs),
		HumanReadable:        buildSummary(studentName, examType, totalQuestions, accuracy, weak),
	}

	if err := e.events.Log(ctx, "analysis", map[string]any{
		"student":    studentName,
		"exam":       examType,
		"mock_test":  req.MockTestID,
		"questions":  totalQuestions,
		"weak_count": len(weak),
		"accuracy":   accuracy,
	}); err != nil {
		slog.Warn("event log failed", "event", "analysis", "error", err)
	}

	return report
}

// GeneratePlan asks the AI for a 7-day plan for the given weak topic
// names, falling back to the static plan when the provider is missing
// or its reply is unusable.
func (e *Engine) GeneratePlan(ctx context.Context, examType string, weakTopics []string) []plan.AIDay {
	if examType == "" {
		examType = DefaultExamType
	}
	if e.ai == nil {
		return plan.FallbackPlan()
	}

	days, err := plan.Generate(ctx, e.ai, examType, weakTopics)
	if err != nil {
		slog.Warn("AI plan generation failed, using fallback plan", "exam", examType, "error", err)
		return plan.FallbackPlan()
	}
	return days
}

// SummarizeTopics runs the lightweight aggregate-score analysis over
// pre-summarized topic stats.
func (e *Engine) SummarizeTopics(topics []analysis.TopicScore) analysis.Summary {
	return analysis.SummarizeTopics(topics)
}

// SynthesizeQuestions converts pre-aggregated topic scores into one
// representative question per topic, so topic-summary clients can run
// the full analysis pipeline. A topic counts as answered correctly
// when more than half its attempts were correct.
func SynthesizeQuestions(topics []analysis.TopicScore) []analysis.RawQuestion {
	questions := make([]analysis.RawQuestion, 0, len(topics))
	for _, t := range topics {
		if t.Attempted <= 0 {
			continue
		}
		isCorrect := t.Correct > t.Attempted/2
		studentAnswer := "A"
		if !isCorrect {
			studentAnswer = "B"
		}
		questions = append(questions, analysis.RawQuestion{
			ID:               "Q_" + t.Name,
			Topic:            t.Name,
			Subtopic:         "General",
			Subject:          t.Subject,
			CorrectAnswer:    "A",
			StudentAnswer:    studentAnswer,
			IsCorrect:        isCorrect,
			TimeSpentSeconds: t.Attempted * 60,
			Difficulty:       analysis.DifficultyMedium,
		})
	}
	return questions
}
