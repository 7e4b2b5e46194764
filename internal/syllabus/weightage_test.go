package syllabus_test

import (
	"testing"

	"github.com/examcoach-ai/coach-server/internal/syllabus"
)

func TestForExam_KnownTopic(t *testing.T) {
	table := syllabus.NewTable()

	tests := []struct {
		exam    string
		subject string
		topic   string
		want    float64
	}{
		{"JEE Mains", "Physics", "Mechanics", 25},
		{"JEE Mains", "Chemistry", "Organic Chemistry", 35},
		{"JEE Advanced", "Mathematics", "Calculus", 35},
		{"NEET", "Biology", "Human Physiology", 25},
	}

	for _, tt := range tests {
		t.Run(tt.exam+"/"+tt.topic, func(t *testing.T) {
			got := table.ForExam(tt.exam).Weight(tt.subject, tt.topic)
			if got != tt.want {
				t.Errorf("Weight(%s, %s) = %v, want %v", tt.subject, tt.topic, got, tt.want)
			}
		})
	}
}

func TestForExam_UnknownTopicDefault(t *testing.T) {
	table := syllabus.NewTable()

	got := table.ForExam("JEE Mains").Weight("Physics", "Astrophysics")
	if got != syllabus.DefaultWeight {
		t.Errorf("Weight(unknown topic) = %v, want %v", got, syllabus.DefaultWeight)
	}
}

func TestForExam_UnrecognizedExamFlatDefault(t *testing.T) {
	table := syllabus.NewTable()

	weights := table.ForExam("SAT")
	if got := weights.Weight("Physics", "Mechanics"); got != syllabus.DefaultWeight {
		t.Errorf("Weight for unrecognized exam = %v, want flat %v", got, syllabus.DefaultWeight)
	}
}

func TestExamTypes_Builtins(t *testing.T) {
	table := syllabus.NewTable()

	want := map[string]bool{"JEE Mains": true, "JEE Advanced": true, "NEET": true}
	for _, name := range table.ExamTypes() {
		delete(want, name)
	}
	if len(want) != 0 {
		t.Errorf("missing built-in exam types: %v", want)
	}
}
