package analysis

import "strings"

// ErrorPattern is a qualitative failure mode detected in a topic's
// incorrect answers.
type ErrorPattern int

const (
	PatternConceptualGap ErrorPattern = iota
	PatternCalculationMistake
	PatternTimeManagement
	PatternMisreadQuestion
	PatternFormulaForgotten
	PatternApplicationError
)

func (p ErrorPattern) String() string {
	switch p {
	case PatternConceptualGap:
		return "Conceptual Gap"
	case PatternCalculationMistake:
		return "Calculation Mistake"
	case PatternTimeManagement:
		return "Time Management"
	case PatternMisreadQuestion:
		return "Misread Question"
	case PatternFormulaForgotten:
		return "Formula Forgotten"
	case PatternApplicationError:
		return "Application Error"
	default:
		return "unknown"
	}
}

const (
	// slowAnswerSeconds marks an incorrect answer as a time sink.
	slowAnswerSeconds = 180
	// maxPatterns caps the tags reported per topic.
	maxPatterns = 3
)

// formulaTopics are topic-name keywords that indicate formula-heavy
// material where wrong answers usually trace to calculation slips.
var formulaTopics = []string{
	"mechanics",
	"thermodynamics",
	"electrodynamics",
	"calculus",
	"physical chemistry",
}

// DetectPatterns tags failure modes over one topic's incorrect
// questions. Rules run in fixed order (time management, conceptual
// gap, calculation mistake) and at most maxPatterns distinct tags are
// returned. No tag is produced for an empty incorrect list.
func DetectPatterns(topicName string, incorrect []Question) []ErrorPattern {
	if len(incorrect) == 0 {
		return nil
	}

	var patterns []ErrorPattern

	slow := 0
	hard := 0
	for _, q := range incorrect {
		if q.TimeSpentSeconds > slowAnswerSeconds {
			slow++
		}
		if q.Difficulty == DifficultyHard {
			hard++
		}
	}

	if float64(slow) >= float64(len(incorrect))*0.3 {
		patterns = append(patterns, PatternTimeManagement)
	}
	if float64(hard) >= float64(len(incorrect))*0.5 {
		patterns = append(patterns, PatternConceptualGap)
	}

	lower := strings.ToLower(topicName)
	for _, keyword := range formulaTopics {
		if strings.Contains(lower, keyword) {
			patterns = append(patterns, PatternCalculationMistake)
			break
		}
	}

	if len(patterns) > maxPatterns {
		patterns = patterns[:maxPatterns]
	}
	return patterns
}
