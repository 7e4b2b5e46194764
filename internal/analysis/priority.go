package analysis

import "sort"

// DefaultMaxWeakTopics bounds the prioritized weak-topic list.
const DefaultMaxWeakTopics = 10

// WeightLookup resolves the syllabus weightage for a subject+topic
// pair. Implemented by syllabus.ExamWeights.
type WeightLookup interface {
	Weight(subject, topic string) float64
}

// PrioritizedTopic pairs a weak topic with its priority score.
type PrioritizedTopic struct {
	Analysis TopicAnalysis
	Weight   float64
	Score    float64
}

// PrioritizeWeakTopics filters topics in the Very Weak and Weak tiers
// and ranks them by accuracy deficit weighted by syllabus importance:
// (100 - accuracy) * (weight / 100). The sort is stable and descending,
// so equal scores keep first-appearance order. At most maxTopics
// entries are returned; an empty result is valid.
func PrioritizeWeakTopics(topics []TopicAnalysis, weights WeightLookup, maxTopics int) []PrioritizedTopic {
	if maxTopics <= 0 {
		maxTopics = DefaultMaxWeakTopics
	}

	var weak []PrioritizedTopic
	for _, t := range topics {
		if !t.Strength.IsWeak() {
			continue
		}
		weight := weights.Weight(t.Subject, t.TopicName)
		weak = append(weak, PrioritizedTopic{
			Analysis: t,
			Weight:   weight,
			Score:    (100 - t.AccuracyPercentage) * (weight / 100),
		})
	}

	sort.SliceStable(weak, func(i, j int) bool {
		return weak[i].Score > weak[j].Score
	})

	if len(weak) > maxTopics {
		weak = weak[:maxTopics]
	}
	return weak
}
