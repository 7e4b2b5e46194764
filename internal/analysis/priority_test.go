package analysis_test

import (
	"testing"

	"github.com/examcoach-ai/coach-server/internal/analysis"
)

// mapWeights is a WeightLookup backed by a subject:topic map.
type mapWeights map[string]float64

func (m mapWeights) Weight(subject, topic string) float64 {
	if w, ok := m[analysis.TopicKey(subject, topic)]; ok {
		return w
	}
	return 10
}

func weakTopic(subject, topic string, accuracy float64) analysis.TopicAnalysis {
	return analysis.TopicAnalysis{
		TopicName:          topic,
		Subject:            subject,
		AccuracyPercentage: accuracy,
		Strength:           analysis.ClassifyStrength(accuracy),
	}
}

func TestPrioritizeWeakTopics_FiltersStrongTiers(t *testing.T) {
	topics := []analysis.TopicAnalysis{
		weakTopic("Physics", "Mechanics", 30),
		weakTopic("Physics", "Optics", 70),
		weakTopic("Physics", "Waves", 90),
		weakTopic("Chemistry", "Organic Chemistry", 55),
	}

	got := analysis.PrioritizeWeakTopics(topics, mapWeights{}, 10)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (only Very Weak and Weak tiers)", len(got))
	}
	for _, p := range got {
		if !p.Analysis.Strength.IsWeak() {
			t.Errorf("%s should not be in the weak list", p.Analysis.TopicName)
		}
	}
}

func TestPrioritizeWeakTopics_ScoreOrdering(t *testing.T) {
	weights := mapWeights{
		"Physics:Mechanics":          25,
		"Chemistry:Organic Chemistry": 35,
	}
	topics := []analysis.TopicAnalysis{
		weakTopic("Physics", "Mechanics", 40),           // (100-40)*0.25 = 15
		weakTopic("Chemistry", "Organic Chemistry", 50), // (100-50)*0.35 = 17.5
	}

	got := analysis.PrioritizeWeakTopics(topics, weights, 10)

	if got[0].Analysis.TopicName != "Organic Chemistry" {
		t.Errorf("top topic = %q, want Organic Chemistry", got[0].Analysis.TopicName)
	}
	if got[0].Score != 17.5 {
		t.Errorf("top score = %v, want 17.5", got[0].Score)
	}
	if got[1].Score != 15 {
		t.Errorf("second score = %v, want 15", got[1].Score)
	}
}

func TestPrioritizeWeakTopics_EqualWeightLowerAccuracyFirst(t *testing.T) {
	topics := []analysis.TopicAnalysis{
		weakTopic("Physics", "Waves", 50),
		weakTopic("Physics", "Optics", 20),
	}

	got := analysis.PrioritizeWeakTopics(topics, mapWeights{}, 10)

	if got[0].Analysis.TopicName != "Optics" {
		t.Errorf("top topic = %q, want Optics (lower accuracy at equal weight)", got[0].Analysis.TopicName)
	}
}

func TestPrioritizeWeakTopics_StableTieBreak(t *testing.T) {
	// Identical scores keep first-appearance order.
	topics := []analysis.TopicAnalysis{
		weakTopic("Physics", "Waves", 40),
		weakTopic("Physics", "Optics", 40),
	}

	got := analysis.PrioritizeWeakTopics(topics, mapWeights{}, 10)

	if got[0].Analysis.TopicName != "Waves" || got[1].Analysis.TopicName != "Optics" {
		t.Errorf("tie order = [%s %s], want [Waves Optics]",
			got[0].Analysis.TopicName, got[1].Analysis.TopicName)
	}
}

func TestPrioritizeWeakTopics_MaxTopics(t *testing.T) {
	var topics []analysis.TopicAnalysis
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		topics = append(topics, weakTopic("Physics", name, 30))
	}

	got := analysis.PrioritizeWeakTopics(topics, mapWeights{}, 3)

	if len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
}

func TestPrioritizeWeakTopics_DefaultMax(t *testing.T) {
	var topics []analysis.TopicAnalysis
	for i := 0; i < 15; i++ {
		topics = append(topics, weakTopic("Physics", string(rune('A'+i)), 30))
	}

	got := analysis.PrioritizeWeakTopics(topics, mapWeights{}, 0)

	if len(got) != analysis.DefaultMaxWeakTopics {
		t.Errorf("len = %d, want default %d", len(got), analysis.DefaultMaxWeakTopics)
	}
}

func TestPrioritizeWeakTopics_Empty(t *testing.T) {
	got := analysis.PrioritizeWeakTopics(nil, mapWeights{}, 10)
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
