package coach_test

import (
	"context"
	"strings"
	"testing"

	"github.com/examcoach-ai/coach-server/internal/analysis"
	"github.com/examcoach-ai/coach-server/internal/coach"
)

// mockTestQuestions builds a small mock test: thermodynamics 1/4
// correct (very weak), mechanics 3/3 correct (strong).
func mockTestQuestions() []analysis.RawQuestion {
	qs := []analysis.RawQuestion{
		{ID: "q1", Topic: "Thermodynamics", Subject: "Physics", IsCorrect: true, TimeSpentSeconds: 90, Difficulty: "medium"},
		{ID: "q2", Topic: "Thermodynamics", Subject: "Physics", IsCorrect: false, TimeSpentSeconds: 200, Difficulty: "hard"},
		{ID: "q3", Topic: "Thermodynamics", Subject: "Physics", IsCorrect: false, TimeSpentSeconds: 210, Difficulty: "hard"},
		{ID: "q4", Topic: "Thermodynamics", Subject: "Physics", IsCorrect: false, TimeSpentSeconds: 60, Difficulty: "easy"},
	}
	for i := 0; i < 3; i++ {
		qs = append(qs, analysis.RawQuestion{
			ID: "m", Topic: "Mechanics", Subject: "Physics", IsCorrect: true, TimeSpentSeconds: 100, Difficulty: "medium",
		})
	}
	return qs
}

func TestAnalyzeAndPlan_FullReport(t *testing.T) {
	engine := coach.NewEngine(coach.EngineConfig{})

	report := engine.AnalyzeAndPlan(context.Background(), &coach.AnalyzeRequest{
		StudentName: "Asha",
		ExamType:    "JEE Mains",
		MockTestID:  "mock-42",
		Questions:   mockTestQuestions(),
	})

	if report.Student != "Asha" || report.Exam != "JEE Mains" || report.MockTestID != "mock-42" {
		t.Errorf("report header = %q/%q/%q", report.Student, report.Exam, report.MockTestID)
	}

	stats := report.AccuracyStats
	if stats.TotalQuestions != 7 || stats.CorrectAnswers != 4 {
		t.Errorf("stats = %+v, want 7 total / 4 correct", stats)
	}
	if stats.AccuracyPercentage != 57.1 {
		t.Errorf("AccuracyPercentage = %v, want 57.1", stats.AccuracyPercentage)
	}
	if stats.WeakTopicCount != 1 {
		t.Errorf("WeakTopicCount = %d, want 1 (only Thermodynamics)", stats.WeakTopicCount)
	}

	if len(report.WeakTopics) != 1 {
		t.Fatalf("WeakTopics = %+v, want exactly Thermodynamics", report.WeakTopics)
	}
	weak := report.WeakTopics[0]
	if weak.Topic != "Thermodynamics" || weak.Subject != "Physics" {
		t.Errorf("weak topic = %+v", weak)
	}
	if weak.Accuracy != 25.0 {
		t.Errorf("weak accuracy = %v, want 25.0", weak.Accuracy)
	}
	if weak.Strength != "Very Weak" {
		t.Errorf("weak strength = %q, want Very Weak", weak.Strength)
	}

	if len(report.RecommendedResources["Thermodynamics"]) != 3 {
		t.Errorf("resources for Thermodynamics = %d, want 3", len(report.RecommendedResources["Thermodynamics"]))
	}
	if len(report.RevisionPlan) != 7 {
		t.Errorf("revision plan has %d days, want 7", len(report.RevisionPlan))
	}
	if !strings.Contains(report.HumanReadable, "Asha") || !strings.Contains(report.HumanReadable, "Thermodynamics") {
		t.Errorf("summary missing student or topic:\n%s", report.HumanReadable)
	}
}

func TestAnalyzeAndPlan_Defaults(t *testing.T) {
	engine := coach.NewEngine(coach.EngineConfig{})

	report := engine.AnalyzeAndPlan(context.Background(), &coach.AnalyzeRequest{})

	if report.Student != "Student" {
		t.Errorf("Student = %q, want default Student", report.Student)
	}
	if report.Exam != "JEE Mains" {
		t.Errorf("Exam = %q, want default JEE Mains", report.Exam)
	}
	if report.AccuracyStats.TotalQuestions != 0 {
		t.Errorf("TotalQuestions = %d, want 0", report.AccuracyStats.TotalQuestions)
	}
	if len(report.RevisionPlan) != 7 {
		t.Errorf("empty input still gets a %d-day plan, want 7", len(report.RevisionPlan))
	}
	if report.RevisionPlan[0].FocusSubject != "General" {
		t.Errorf("FocusSubject = %q, want General for empty input", report.RevisionPlan[0].FocusSubject)
	}
}

func TestAnalyzeAndPlan_DataStatus(t *testing.T) {
	engine := coach.NewEngine(coach.EngineConfig{})

	tests := []struct {
		name string
		ocr  string
		want string
	}{
		{"no OCR", "", "partial_ocr"},
		{"short OCR", "Q1 A Q2 B", "partial_ocr"},
		{"whitespace only", strings.Repeat(" ", 100), "partial_ocr"},
		{"full OCR", strings.Repeat("Q1 A Q2 B Q3 C ", 10), "complete"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := engine.AnalyzeAndPlan(context.Background(), &coach.AnalyzeRequest{OCRText: tt.ocr})
			if report.DataStatus != tt.want {
				t.Errorf("DataStatus = %q, want %q", report.DataStatus, tt.want)
			}
		})
	}
}

func TestAnalyzeAndPlan_Deterministic(t *testing.T) {
	engine := coach.NewEngine(coach.EngineConfig{})
	req := &coach.AnalyzeRequest{StudentName: "Ravi", ExamType: "NEET", Questions: mockTestQuestions()}

	a := engine.AnalyzeAndPlan(context.Background(), req)
	b := engine.AnalyzeAndPlan(context.Background(), req)

	if a.HumanReadable != b.HumanReadable {
		t.Error("identical requests produced different summaries")
	}
	for i := range a.RevisionPlan {
		if a.RevisionPlan[i].FocusSubject != b.RevisionPlan[i].FocusSubject {
			t.Errorf("day %d focus differs between runs", i+1)
		}
	}
}

func TestAnalyzeAndPlan_LogsEvent(t *testing.T) {
	events := &coach.MemoryEventLogger{}
	engine := coach.NewEngine(coach.EngineConfig{Events: events})

	engine.AnalyzeAndPlan(context.Background(), &coach.AnalyzeRequest{
		StudentName: "Asha",
		Questions:   mockTestQuestions(),
	})

	logged := events.Events()
	if len(logged) != 1 || logged[0].EventType != "analysis" {
		t.Fatalf("events = %+v, want one analysis event", logged)
	}
	if !strings.Contains(string(logged[0].Data), `"student":"Asha"`) {
		t.Errorf("event data = %s", logged[0].Data)
	}
}

func TestAnalyzeAndPlan_WeightedPriority(t *testing.T) {
	// Two equally weak topics; Mechanics carries JEE Mains weight 25 vs
	// default 10 for an unlisted topic, so it must rank first.
	engine := coach.NewEngine(coach.EngineConfig{})
	var qs []analysis.RawQuestion
	for i := 0; i < 4; i++ {
		qs = append(qs,
			analysis.RawQuestion{Topic: "Mechanics", Subject: "Physics", IsCorrect: i == 0},
			analysis.RawQuestion{Topic: "Astrophysics", Subject: "Physics", IsCorrect: i == 0},
		)
	}

	report := engine.AnalyzeAndPlan(context.Background(), &coach.AnalyzeRequest{ExamType: "JEE Mains", Questions: qs})

	if len(report.WeakTopics) != 2 {
		t.Fatalf("WeakTopics = %+v, want 2", report.WeakTopics)
	}
	if report.WeakTopics[0].Topic != "Mechanics" {
		t.Errorf("first weak topic = %q, want Mechanics (higher syllabus weight)", report.WeakTopics[0].Topic)
	}
}

func TestSummarizeTopics_PassThrough(t *testing.T) {
	engine := coach.NewEngine(coach.EngineConfig{})

	summary := engine.SummarizeTopics([]analysis.TopicScore{
		{Name: "Thermodynamics", Subject: "Physics", Attempted: 10, Correct: 3},
		{Name: "Algebra", Subject: "Mathematics", Attempted: 10, Correct: 8},
	})

	if len(summary.WeakTopics) != 1 || summary.WeakTopics[0].Name != "Thermodynamics" {
		t.Errorf("WeakTopics = %+v", summary.WeakTopics)
	}
	if len(summary.StrongTopics) != 1 || summary.StrongTopics[0].Name != "Algebra" {
		t.Errorf("StrongTopics = %+v", summary.StrongTopics)
	}
	if summary.OverallScore != 55 {
		t.Errorf("OverallScore = %d, want 55", summary.OverallScore)
	}
}
