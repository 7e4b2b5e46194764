package importer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/examcoach-ai/coach-server/internal/importer"
)

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	header := []any{"question_id", "topic", "subtopic", "subject", "correct_answer", "student_answer", "is_correct", "time_spent_seconds", "difficulty"}
	if err := f.SetSheetRow("Sheet1", "A1", &header); err != nil {
		t.Fatalf("writing header: %v", err)
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("writing row %d: %v", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("serializing workbook: %v", err)
	}
	return &buf
}

func TestParseQuestions(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"q1", "Thermodynamics", "Entropy", "Physics", "A", "B", "false", "200", "hard"},
		{"q2", "Mechanics", "Kinematics", "Physics", "C", "C", "true", "90", "medium"},
	})

	result, err := importer.ParseQuestions(buf)
	if err != nil {
		t.Fatalf("ParseQuestions() error = %v", err)
	}

	if result.Imported != 2 || result.Skipped != 0 {
		t.Fatalf("result = %+v, want 2 imported", result)
	}

	q := result.Questions[0]
	if q.ID != "q1" || q.Topic != "Thermodynamics" || q.Subject != "Physics" {
		t.Errorf("question[0] = %+v", q)
	}
	if q.IsCorrect || q.TimeSpentSeconds != 200 || q.Difficulty != "hard" {
		t.Errorf("question[0] = %+v", q)
	}
	if !result.Questions[1].IsCorrect {
		t.Error("question[1].IsCorrect = false, want true")
	}
}

func TestParseQuestions_SkipsBadRows(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"q1", "", "", "Physics", "A", "B", "false", "100", "easy"},        // no topic
		{"q2", "Algebra", "", "Mathematics", "A", "A", "maybe", "60", ""},  // bad is_correct
		{"q3", "Algebra", "", "Mathematics", "A", "A", "yes", "abc", ""},   // bad time
		{"q4", "Algebra", "", "Mathematics", "A", "A", "1", "45", "Easy"},  // ok
	})

	result, err := importer.ParseQuestions(buf)
	if err != nil {
		t.Fatalf("ParseQuestions() error = %v", err)
	}

	if result.Imported != 1 || result.Skipped != 3 {
		t.Fatalf("result = %+v, want 1 imported / 3 skipped", result)
	}
	if len(result.Errors) != 3 {
		t.Errorf("errors = %v, want 3", result.Errors)
	}
	q := result.Questions[0]
	if !q.IsCorrect || q.Difficulty != "easy" {
		t.Errorf("question = %+v, want is_correct true and lowercased difficulty", q)
	}
}

func TestParseQuestions_BoolSpellings(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"q1", "Optics", "", "Physics", "A", "A", "TRUE", "10", ""},
		{"q2", "Optics", "", "Physics", "A", "B", "no", "10", ""},
		{"q3", "Optics", "", "Physics", "A", "", "", "10", ""},
	})

	result, err := importer.ParseQuestions(buf)
	if err != nil {
		t.Fatalf("ParseQuestions() error = %v", err)
	}
	if result.Imported != 3 {
		t.Fatalf("result = %+v, want 3 imported", result)
	}
	if !result.Questions[0].IsCorrect || result.Questions[1].IsCorrect || result.Questions[2].IsCorrect {
		t.Errorf("bool parsing wrong: %+v", result.Questions)
	}
}

func TestParseQuestions_NotAWorkbook(t *testing.T) {
	if _, err := importer.ParseQuestions(strings.NewReader("this is not xlsx")); err == nil {
		t.Error("ParseQuestions() error = nil, want error for invalid file")
	}
}

func TestParseQuestions_EmptySheet(t *testing.T) {
	buf := buildWorkbook(t, nil)

	result, err := importer.ParseQuestions(buf)
	if err != nil {
		t.Fatalf("ParseQuestions() error = %v", err)
	}
	if result.Imported != 0 || len(result.Questions) != 0 {
		t.Errorf("result = %+v, want empty", result)
	}
}
