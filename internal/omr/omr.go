// Package omr parses answers out of OCR'd OMR sheet text and scores
// them against an answer key. Parsing is pattern based and tolerant:
// sheets in practice mix "Q1 A", "1. A" and "Question 1: A" styles.
package omr

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	inlinePattern   = regexp.MustCompile(`[Qq](\d+)\s*([A-Da-d])`)
	numberedPattern = regexp.MustCompile(`^(\d+)\.\s*([A-Da-d])`)
	verbosePattern  = regexp.MustCompile(`[Qq]uestion\s*(\d+)[:\s]+([A-Da-d])`)
)

// ParseAnswers extracts question-number to answer mappings from raw
// OCR text. Later pattern matches overwrite earlier ones for the same
// question number.
func ParseAnswers(text string) map[int]string {
	answers := make(map[int]string)

	for _, m := range inlinePattern.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil {
			answers[n] = strings.ToUpper(m[2])
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if m := numberedPattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				answers[n] = strings.ToUpper(m[2])
			}
		}
	}

	for _, m := range verbosePattern.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil {
			answers[n] = strings.ToUpper(m[2])
		}
	}

	return answers
}

// ScoreResult is the outcome of grading extracted answers against a
// key.
type ScoreResult struct {
	Correct    int     `json:"correct"`
	Wrong      int     `json:"wrong"`
	Unanswered int     `json:"unanswered"`
	Total      int     `json:"total"`
	Score      float64 `json:"score"`
}

// Score grades extracted answers against the answer key. Questions in
// the key but missing from the extraction count as unanswered.
func Score(extracted, key map[int]string) ScoreResult {
	result := ScoreResult{Total: len(key)}

	for q, want := range key {
		got, ok := extracted[q]
		switch {
		case !ok:
			result.Unanswered++
		case got == want:
			result.Correct++
		default:
			result.Wrong++
		}
	}

	if result.Total > 0 {
		result.Score = math.Round(float64(result.Correct)/float64(result.Total)*100*100) / 100
	}
	return result
}

// DemoAnswerKey is the 25-question sample key used until answer keys
// are stored per mock test.
func DemoAnswerKey() map[int]string {
	options := []string{"A", "B", "C", "D"}
	key := make(map[int]string, 25)
	for q := 1; q <= 25; q++ {
		key[q] = options[(q-1)%4]
	}
	return key
}
