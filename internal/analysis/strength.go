package analysis

// StrengthLevel is the qualitative accuracy tier for a topic.
type StrengthLevel int

const (
	StrengthVeryWeak StrengthLevel = iota
	StrengthWeak
	StrengthModerate
	StrengthStrong
)

func (s StrengthLevel) String() string {
	switch s {
	case StrengthVeryWeak:
		return "Very Weak"
	case StrengthWeak:
		return "Weak"
	case StrengthModerate:
		return "Moderate"
	case StrengthStrong:
		return "Strong"
	default:
		return "unknown"
	}
}

// IsWeak reports whether the tier qualifies for weak-topic
// prioritization.
func (s StrengthLevel) IsWeak() bool {
	return s == StrengthVeryWeak || s == StrengthWeak
}

// ClassifyStrength maps an accuracy percentage to a strength tier.
// Boundaries are inclusive on the lower tier: exactly 40 is Very Weak,
// exactly 60 is Weak, exactly 75 is Moderate.
func ClassifyStrength(accuracy float64) StrengthLevel {
	switch {
	case accuracy <= 40:
		return StrengthVeryWeak
	case accuracy <= 60:
		return StrengthWeak
	case accuracy <= 75:
		return StrengthModerate
	default:
		return StrengthStrong
	}
}
