package analysis

// TopicScore is the topic-summary input shape used by the lightweight
// analyze endpoint (pre-aggregated per-topic results, no question
// detail).
type TopicScore struct {
	Name      string  `json:"name"`
	Subject   string  `json:"subject"`
	Attempted int     `json:"attempted"`
	Correct   int     `json:"correct"`
	Score     float64 `json:"score,omitempty"`
}

// TopicSummary is one classified topic in a Summary.
type TopicSummary struct {
	Name      string `json:"name"`
	Subject   string `json:"subject"`
	Correct   int    `json:"correct"`
	Attempted int    `json:"attempted"`
	Score     int    `json:"score"`
}

// Summary splits topic scores into weak and strong sets with an
// overall score.
type Summary struct {
	WeakTopics   []TopicSummary `json:"weak_topics"`
	StrongTopics []TopicSummary `json:"strong_topics"`
	OverallScore int            `json:"overall_score"`
}

const (
	// minAttempted filters out topics with too few attempts to judge.
	minAttempted = 3
	// weakCutoff is the accuracy below which a topic counts as weak.
	weakCutoff = 50
)

// SummarizeTopics classifies pre-aggregated topic scores into weak and
// strong. A provided positive score wins over the computed accuracy;
// topics with fewer than minAttempted attempts are skipped entirely.
func SummarizeTopics(topics []TopicScore) Summary {
	summary := Summary{
		WeakTopics:   []TopicSummary{},
		StrongTopics: []TopicSummary{},
	}

	totalCorrect := 0
	totalAttempted := 0

	for _, t := range topics {
		if t.Attempted < minAttempted {
			continue
		}

		accuracy := int(t.Score)
		if accuracy <= 0 && t.Attempted > 0 {
			accuracy = t.Correct * 100 / t.Attempted
		}

		totalCorrect += t.Correct
		totalAttempted += t.Attempted

		item := TopicSummary{
			Name:      t.Name,
			Subject:   t.Subject,
			Correct:   t.Correct,
			Attempted: t.Attempted,
			Score:     accuracy,
		}

		if accuracy < weakCutoff {
			summary.WeakTopics = append(summary.WeakTopics, item)
		} else {
			summary.StrongTopics = append(summary.StrongTopics, item)
		}
	}

	if totalAttempted > 0 {
		summary.OverallScore = totalCorrect * 100 / totalAttempted
	}
	return summary
}
