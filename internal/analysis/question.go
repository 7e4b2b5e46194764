// Package analysis implements the mock-test performance core: question
// normalization, per-topic aggregation, strength classification,
// error-pattern detection and weak-topic prioritization.
//
// Everything in this package is a pure, request-scoped computation over
// an in-memory question set. It never returns errors: malformed input
// is absorbed with safe defaults.
package analysis

// Question difficulty levels.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// RawQuestion is the permissive wire shape of a question result. Any
// field may be absent; Normalize resolves defaults.
type RawQuestion struct {
	ID               string `json:"question_id"`
	Topic            string `json:"topic"`
	Subtopic         string `json:"subtopic"`
	Subject          string `json:"subject"`
	CorrectAnswer    string `json:"correct_answer"`
	StudentAnswer    string `json:"student_answer,omitempty"`
	IsCorrect        bool   `json:"is_correct"`
	TimeSpentSeconds int    `json:"time_spent_seconds"`
	Difficulty       string `json:"difficulty"`
}

// Question is the canonical normalized question record. Immutable once
// built.
type Question struct {
	ID               string
	Topic            string
	Subtopic         string
	Subject          string
	CorrectAnswer    string
	StudentAnswer    string
	IsCorrect        bool
	TimeSpentSeconds int
	Difficulty       string
}

// Normalize converts a raw question into the canonical record,
// resolving missing fields to safe defaults. This is the single place
// input representation is handled; the rest of the pipeline only sees
// Question values.
func Normalize(raw RawQuestion) Question {
	q := Question{
		ID:               raw.ID,
		Topic:            raw.Topic,
		Subtopic:         raw.Subtopic,
		Subject:          raw.Subject,
		CorrectAnswer:    raw.CorrectAnswer,
		StudentAnswer:    raw.StudentAnswer,
		IsCorrect:        raw.IsCorrect,
		TimeSpentSeconds: raw.TimeSpentSeconds,
		Difficulty:       raw.Difficulty,
	}
	if q.Topic == "" {
		q.Topic = "General"
	}
	if q.Subtopic == "" {
		q.Subtopic = "General"
	}
	if q.Subject == "" {
		q.Subject = "General"
	}
	if q.TimeSpentSeconds < 0 {
		q.TimeSpentSeconds = 0
	}
	switch q.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		q.Difficulty = DifficultyMedium
	}
	return q
}

// NormalizeAll normalizes a full question list, preserving order.
func NormalizeAll(raw []RawQuestion) []Question {
	questions := make([]Question, 0, len(raw))
	for _, r := range raw {
		questions = append(questions, Normalize(r))
	}
	return questions
}
