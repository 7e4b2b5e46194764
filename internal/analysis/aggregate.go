package analysis

// SubtopicStat holds per-subtopic counters.
type SubtopicStat struct {
	Total   int `json:"total"`
	Correct int `json:"correct"`
}

// TopicAnalysis is the derived per-topic result, one per distinct
// subject+topic pair observed in the question set. Built once per run,
// never mutated afterwards.
type TopicAnalysis struct {
	TopicName          string
	Subject            string
	Subtopics          map[string]SubtopicStat
	TotalQuestions     int
	CorrectCount       int
	AccuracyPercentage float64
	Strength           StrengthLevel
	ErrorPatterns      []ErrorPattern
	AvgTimePerQuestion float64
}

// TopicKey builds the aggregation key for a subject+topic pair.
func TopicKey(subject, topic string) string {
	return subject + ":" + topic
}

type topicBucket struct {
	subject   string
	topic     string
	subtopics map[string]SubtopicStat
	total     int
	correct   int
	timeSpent int
	incorrect []Question
}

// Analyze aggregates questions by subject+topic in a single pass and
// derives the per-topic analysis. Results are returned in first-
// appearance order, which downstream sorting relies on for stable
// tie-breaking.
func Analyze(questions []Question) []TopicAnalysis {
	buckets := make(map[string]*topicBucket)
	var order []string

	for _, q := range questions {
		key := TopicKey(q.Subject, q.Topic)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &topicBucket{
				subject:   q.Subject,
				topic:     q.Topic,
				subtopics: make(map[string]SubtopicStat),
			}
			buckets[key] = bucket
			order = append(order, key)
		}

		bucket.total++
		bucket.timeSpent += q.TimeSpentSeconds
		if q.IsCorrect {
			bucket.correct++
		} else {
			bucket.incorrect = append(bucket.incorrect, q)
		}

		stat := bucket.subtopics[q.Subtopic]
		stat.Total++
		if q.IsCorrect {
			stat.Correct++
		}
		bucket.subtopics[q.Subtopic] = stat
	}

	analyses := make([]TopicAnalysis, 0, len(order))
	for _, key := range order {
		bucket := buckets[key]

		accuracy := 0.0
		avgTime := 0.0
		if bucket.total > 0 {
			accuracy = float64(bucket.correct) / float64(bucket.total) * 100
			avgTime = float64(bucket.timeSpent) / float64(bucket.total)
		}

		analyses = append(analyses, TopicAnalysis{
			TopicName:          bucket.topic,
			Subject:            bucket.subject,
			Subtopics:          bucket.subtopics,
			TotalQuestions:     bucket.total,
			CorrectCount:       bucket.correct,
			AccuracyPercentage: accuracy,
			Strength:           ClassifyStrength(accuracy),
			ErrorPatterns:      DetectPatterns(bucket.topic, bucket.incorrect),
			AvgTimePerQuestion: avgTime,
		})
	}
	return analyses
}
