// Package plan builds 7-day revision plans. The deterministic builder
// rotates weak topics across fixed day themes; the AI builder asks a
// language model for a richer plan and validates the reply against a
// JSON schema, falling back to a static plan on any failure.
package plan

import (
	"fmt"
	"math"
)

// Activity is one study block inside a day.
type Activity struct {
	Type        string `json:"type"`
	Description string `json:"desc"`
	Duration    string `json:"time"`
}

// DayPlan is a single day of the deterministic revision plan.
type DayPlan struct {
	Day             int        `json:"day"`
	Title           string     `json:"title"`
	FocusSubject    string     `json:"focus_subject"`
	Topics          []string   `json:"topics"`
	Activities      []Activity `json:"activities"`
	TotalHours      float64    `json:"total_hours"`
	MCQPractice     int        `json:"mcq_practice"`
	ExpectedOutcome string     `json:"expected_outcome"`
}

// TopicRef identifies a weak topic feeding the plan.
type TopicRef struct {
	Name    string
	Subject string
}

type dayTheme struct {
	title    string
	subtitle string
}

var dayThemes = [7]dayTheme{
	{"Foundation Day", "Build conceptual foundations"},
	{"Deep Dive", "Intensive topic coverage"},
	{"Mixed Practice", "Combine multiple topics"},
	{"Focus Weak Areas", "Target weak topics"},
	{"Full Mock Test", "Simulate exam conditions"},
	{"Rapid Revision", "Quick review of all topics"},
	{"Final Prep", "Last minute tips & strategy"},
}

// Build7Day produces the deterministic 7-day plan. Weak topics rotate
// across days in input order; with no weak topics the plan falls back
// to a general revision schedule.
func Build7Day(weakTopics []TopicRef) []DayPlan {
	subjects := distinctSubjects(weakTopics)
	if len(subjects) == 0 {
		subjects = []string{"General"}
	}
	topicNames := make([]string, 0, len(weakTopics))
	for _, t := range weakTopics {
		topicNames = append(topicNames, t.Name)
	}
	if len(topicNames) == 0 {
		topicNames = []string{"General Revision"}
	}

	days := make([]DayPlan, 0, 7)
	for day := 1; day <= 7; day++ {
		topic := topicNames[(day-1)%len(topicNames)]
		activities := dayActivities(day, topic, topicNames)

		totalMinutes := 0
		for _, a := range activities {
			var m int
			fmt.Sscanf(a.Duration, "%d min", &m)
			totalMinutes += m
		}

		days = append(days, DayPlan{
			Day:             day,
			Title:           dayThemes[day-1].title,
			FocusSubject:    subjects[(day-1)%len(subjects)],
			Topics:          []string{topic},
			Activities:      activities,
			TotalHours:      math.Round(float64(totalMinutes)/60*100) / 100,
			MCQPractice:     10 + day*2,
			ExpectedOutcome: fmt.Sprintf("Improved understanding of %s", topic),
		})
	}
	return days
}

// distinctSubjects keeps first-appearance order so plans are stable
// for identical input.
func distinctSubjects(topics []TopicRef) []string {
	seen := make(map[string]bool, len(topics))
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		if !seen[t.Subject] {
			seen[t.Subject] = true
			out = append(out, t.Subject)
		}
	}
	return out
}

func dayActivities(day int, topic string, topicNames []string) []Activity {
	switch day {
	case 1:
		return []Activity{
			{"Warm-up", "Quick basics review", "15 min"},
			{"Concept Learning", fmt.Sprintf("Learn %s fundamentals", topic), "45 min"},
			{"Video Lecture", "Watch recommended video", "30 min"},
			{"MCQ Practice", fmt.Sprintf("Solve 10 MCQs on %s", topic), "30 min"},
		}
	case 2:
		return []Activity{
			{"Quick Review", "Revise previous topic", "15 min"},
			{"Deep Dive", fmt.Sprintf("Advanced %s concepts", topic), "60 min"},
			{"Practice", fmt.Sprintf("Solve 15 problems on %s", topic), "45 min"},
			{"Doubt Clearing", "Clear doubts", "20 min"},
		}
	case 3:
		second := topicNames[day%len(topicNames)]
		return []Activity{
			{"Topic Review", fmt.Sprintf("Review %s", topic), "30 min"},
			{"Mixed Practice", fmt.Sprintf("Practice %s and %s", topic, second), "60 min"},
			{"Error Analysis", "Analyze mistakes", "30 min"},
			{"MCQ Test", "Topic-wise test", "30 min"},
		}
	case 4:
		return []Activity{
			{"Focus Practice", fmt.Sprintf("Intensive %s practice", topic), "60 min"},
			{"Timer Practice", "Timed questions (2 min each)", "30 min"},
			{"Formula Review", "Key formulas", "20 min"},
			{"Quick Quiz", "10 quick MCQs", "20 min"},
		}
	case 5:
		return []Activity{
			{"Mock Test", "Full 25Q practice test", "75 min"},
			{"Analysis", "Analyze results", "30 min"},
			{"Error Review", "Review mistakes", "25 min"},
			{"Planning", "Plan next focus", "10 min"},
		}
	case 6:
		return []Activity{
			{"Rapid Review", "Quick revision of weak topics", "45 min"},
			{"Key Concepts", "Important formulas & concepts", "30 min"},
			{"Previous Errors", "Review past mistakes", "30 min"},
			{"Confidence", "Easy questions for confidence", "20 min"},
		}
	default:
		return []Activity{
			{"Light Review", "Relaxed key topics revision", "30 min"},
			{"Formula Sheet", "Quick formula revision", "20 min"},
			{"Strategy", "Exam tips & time management", "20 min"},
			{"Rest", "Stay calm and prepared", "10 min"},
		}
	}
}
