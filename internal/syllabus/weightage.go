// Package syllabus holds exam weightage reference tables: per exam
// type, the syllabus importance of each subject+topic. Tables are
// built once at startup (built-ins plus optional YAML overlays) and
// are read-only afterwards, so concurrent request reads are safe.
package syllabus

import "sync"

// DefaultWeight applies when a topic (or the whole exam type) has no
// explicit weightage entry.
const DefaultWeight = 10

// subjectWeights maps topic name to weight within one subject.
type subjectWeights map[string]float64

// examWeights maps subject name to its topic weights.
type examWeights map[string]subjectWeights

// Table holds weightage data for all known exam types.
type Table struct {
	exams map[string]examWeights
	mu    sync.RWMutex
}

// NewTable creates a table pre-loaded with the built-in JEE Mains,
// JEE Advanced and NEET weightages.
func NewTable() *Table {
	return &Table{exams: builtinWeightage()}
}

// ExamTypes returns the known exam type names.
func (t *Table) ExamTypes() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.exams))
	for name := range t.exams {
		names = append(names, name)
	}
	return names
}

// ForExam returns the weight lookup view for one exam type. An
// unrecognized exam type yields a view that answers DefaultWeight for
// every topic.
func (t *Table) ForExam(examType string) ExamWeights {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return ExamWeights{subjects: t.exams[examType]}
}

// setExam installs or replaces the weightage for one exam type.
func (t *Table) setExam(examType string, weights examWeights) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.exams[examType] = weights
}

// ExamWeights is the per-exam weight lookup handed to the prioritizer.
// It satisfies analysis.WeightLookup.
type ExamWeights struct {
	subjects examWeights
}

// Weight returns the syllabus weight for a subject+topic pair, or
// DefaultWeight when unknown.
func (w ExamWeights) Weight(subject, topic string) float64 {
	if w.subjects == nil {
		return DefaultWeight
	}
	if topics, ok := w.subjects[subject]; ok {
		if weight, ok := topics[topic]; ok {
			return weight
		}
	}
	return DefaultWeight
}

func builtinWeightage() map[string]examWeights {
	return map[string]examWeights{
		"JEE Mains": {
			"Physics": {
				"Mechanics": 25, "Electrodynamics": 20, "Modern Physics": 15,
				"Thermodynamics": 15, "Waves & Optics": 15, "SHM & Waves": 10,
			},
			"Chemistry": {
				"Physical Chemistry": 30, "Organic Chemistry": 35, "Inorganic Chemistry": 35,
			},
			"Mathematics": {
				"Calculus": 30, "Algebra": 25, "Coordinate Geometry": 20,
				"Trigonometry": 15, "Vectors & 3D": 10,
			},
		},
		"JEE Advanced": {
			"Physics": {
				"Mechanics": 30, "Electrodynamics": 25, "Modern Physics": 15,
				"Thermodynamics": 10, "Optics": 10, "Waves": 10,
			},
			"Chemistry": {
				"Physical Chemistry": 25, "Organic Chemistry": 40, "Inorganic Chemistry": 35,
			},
			"Mathematics": {
				"Calculus": 35, "Algebra": 30, "Coordinate Geometry": 20,
				"Trigonometry": 10, "Vectors": 5,
			},
		},
		"NEET": {
			"Physics": {
				"Mechanics": 20, "Electrodynamics": 18, "Modern Physics": 16,
				"Thermodynamics": 12, "Waves & Optics": 10, "Fluid Mechanics": 8,
				"SHM & Waves": 8, "Properties of Matter": 8,
			},
			"Chemistry": {
				"Physical Chemistry": 25, "Organic Chemistry": 28, "Inorganic Chemistry": 27,
			},
			"Biology": {
				"Human Physiology": 25, "Genetics": 20, "Ecology": 15,
				"Cell Biology": 15, "Plant Diversity": 10, "Animal Diversity": 10,
				"Biotechnology": 5,
			},
		},
	}
}
