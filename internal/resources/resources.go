// Package resources recommends study material for weak topics,
// strictly from a fixed registry of trusted educational sources. Links
// are templated, never fetched or validated.
package resources

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Source describes one trusted educational source.
type Source struct {
	Name        string
	BaseURL     string
	Types       []string
	Description string
}

// TrustedSources is the full allow-list of sources resource links may
// point at.
var TrustedSources = []Source{
	{Name: "NCERT", BaseURL: "https://ncert.nic.in/textbook", Types: []string{"PDF", "Textbook"}, Description: "Official CBSE textbooks"},
	{Name: "Khan Academy", BaseURL: "https://www.khanacademy.org/science", Types: []string{"Video", "Practice", "Article"}, Description: "Free world-class education"},
	{Name: "Physics Wallah", BaseURL: "https://www.pw.live/study", Types: []string{"Video", "Notes", "Practice"}, Description: "Free IIT-JEE preparation"},
	{Name: "Unacademy", BaseURL: "https://unacademy.com", Types: []string{"Video", "Notes", "Test Series"}, Description: "India's largest learning platform"},
	{Name: "Vedantu", BaseURL: "https://www.vedantu.com", Types: []string{"Video", "Notes", "Live Classes"}, Description: "Personalized learning"},
	{Name: "MIT OpenCourseWare", BaseURL: "https://ocw.mit.edu/courses", Types: []string{"Video", "Lecture Notes"}, Description: "Free MIT materials"},
}

// sourceConfig selects one source + content type + time estimate for
// recommendation. The first perTopic entries are emitted for every
// topic, in this order.
type sourceConfig struct {
	Name          string
	BaseURL       string
	Type          string
	EstimatedTime string
}

var sourceConfigs = []sourceConfig{
	{Name: "Khan Academy", BaseURL: "https://www.khanacademy.org/science", Type: "Video", EstimatedTime: "15-20 min"},
	{Name: "Physics Wallah", BaseURL: "https://www.pw.live/study", Type: "Video", EstimatedTime: "25-30 min"},
	{Name: "Vedantu", BaseURL: "https://www.vedantu.com", Type: "Notes", EstimatedTime: "20 min"},
	{Name: "Unacademy", BaseURL: "https://unacademy.com", Type: "Practice", EstimatedTime: "30 min"},
}

// perTopic is how many resources each topic gets.
const perTopic = 3

// topicSlugs maps known topic names to their URL slugs. Unknown topics
// fall back to Slug.
var topicSlugs = map[string]string{
	"Thermodynamics":      "thermodynamics",
	"Mechanics":           "mechanics",
	"Electrodynamics":     "electrodynamics",
	"Modern Physics":      "modern-physics",
	"Organic Chemistry":   "organic-chemistry",
	"Inorganic Chemistry": "inorganic-chemistry",
	"Physical Chemistry":  "physical-chemistry",
	"Calculus":            "calculus",
	"Integration":         "integral-calculus",
	"Differentiation":     "differential-calculus",
	"Algebra":             "algebra",
	"Coordinate Geometry": "coordinate-geometry",
	"Current Electricity": "current-electricity",
	"Chemical Bonding":    "chemical-bonding",
	"Human Physiology":    "human-physiology",
	"Genetics":            "genetics",
}

var titleCaser = cases.Title(language.English)

// Resource is one recommended study link.
type Resource struct {
	Topic         string `json:"topic"`
	Title         string `json:"title"`
	Source        string `json:"source"`
	Type          string `json:"type"`
	EstimatedTime string `json:"time"`
	URL           string `json:"link"`
}

// TopicRef identifies one weak topic to recommend for.
type TopicRef struct {
	Name    string
	Subject string
}

// Slug derives a URL slug from a topic name.
func Slug(topic string) string {
	if slug, ok := topicSlugs[topic]; ok {
		return slug
	}
	return strings.ReplaceAll(strings.ToLower(topic), " ", "-")
}

// ForTopic builds the fixed set of resources for one topic: exactly
// perTopic entries, one per source configuration, in registry order.
func ForTopic(topic TopicRef) []Resource {
	slug := Slug(topic.Name)
	display := titleCaser.String(topic.Name)

	out := make([]Resource, 0, perTopic)
	for _, cfg := range sourceConfigs[:perTopic] {
		out = append(out, Resource{
			Topic:         topic.Name,
			Title:         fmt.Sprintf("%s - %s Lesson", display, cfg.Type),
			Source:        cfg.Name,
			Type:          cfg.Type,
			EstimatedTime: cfg.EstimatedTime,
			URL:           fmt.Sprintf("%s/%s/%s", cfg.BaseURL, strings.ToLower(topic.Subject), slug),
		})
	}
	return out
}

// Recommend maps each weak topic to its recommended resources.
func Recommend(topics []TopicRef) map[string][]Resource {
	out := make(map[string][]Resource, len(topics))
	for _, topic := range topics {
		out[topic.Name] = ForTopic(topic)
	}
	return out
}
