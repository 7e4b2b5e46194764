// Package importer reads mock-test question results from spreadsheet
// uploads, so coaching centers can submit results straight from the
// sheets they already maintain.
package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/examcoach-ai/coach-server/internal/analysis"
)

// Column layout of a question sheet. Row 1 is a header.
//
//	A: question_id  B: topic  C: subtopic  D: subject
//	E: correct_answer  F: student_answer  G: is_correct
//	H: time_spent_seconds  I: difficulty
const questionColumns = 9

// Result summarises one import.
type Result struct {
	Questions []analysis.RawQuestion `json:"-"`
	Imported  int                    `json:"imported"`
	Skipped   int                    `json:"skipped"`
	Errors    []string               `json:"errors,omitempty"`
}

// ParseQuestions reads question rows from the first sheet of an xlsx
// upload. Rows that cannot be interpreted are skipped and reported in
// Result.Errors; the import itself only fails when the file is not a
// readable workbook.
func ParseQuestions(r io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}

	result := &Result{}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if isBlankRow(row) {
			continue
		}

		q, err := parseRow(row)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		result.Questions = append(result.Questions, q)
		result.Imported++
	}
	return result, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func parseRow(row []string) (analysis.RawQuestion, error) {
	cells := make([]string, questionColumns)
	for i := range cells {
		if i < len(row) {
			cells[i] = strings.TrimSpace(row[i])
		}
	}

	if cells[1] == "" {
		return analysis.RawQuestion{}, fmt.Errorf("missing topic")
	}

	isCorrect, err := parseBool(cells[6])
	if err != nil {
		return analysis.RawQuestion{}, fmt.Errorf("is_correct: %w", err)
	}

	timeSpent := 0
	if cells[7] != "" {
		timeSpent, err = strconv.Atoi(cells[7])
		if err != nil {
			return analysis.RawQuestion{}, fmt.Errorf("time_spent_seconds: %w", err)
		}
	}

	return analysis.RawQuestion{
		ID:               cells[0],
		Topic:            cells[1],
		Subtopic:         cells[2],
		Subject:          cells[3],
		CorrectAnswer:    cells[4],
		StudentAnswer:    cells[5],
		IsCorrect:        isCorrect,
		TimeSpentSeconds: timeSpent,
		Difficulty:       strings.ToLower(cells[8]),
	}, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "yes", "1":
		return true, nil
	case "false", "no", "0", "":
		return false, nil
	}
	return false, fmt.Errorf("unrecognized value %q", s)
}
