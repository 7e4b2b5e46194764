package plan

// FallbackPlan returns the static 7-day plan served when the AI
// provider is unavailable or returns an unusable reply.
func FallbackPlan() []AIDay {
	return []AIDay{
		{Day: 1, Title: "Foundation Day", Focus: "Thermodynamics Basics", Tasks: []string{"Learn laws of thermodynamics", "Solve 10 MCQs", "Review formulas"}, Time: "2 hours", MCQs: 10, Color: "#ff6b35", Light: "rgba(255,107,53,0.08)"},
		{Day: 2, Title: "Deep Dive", Focus: "Organic Chemistry Fundamentals", Tasks: []string{"Study reaction mechanisms", "Practice named reactions", "Solve 8 MCQs"}, Time: "2.5 hours", MCQs: 8, Color: "#6c47ff", Light: "rgba(108,71,255,0.08)"},
		{Day: 3, Title: "Problem Solving", Focus: "Calculus Integration", Tasks: []string{"Learn integration techniques", "Practice problems", "Take quiz"}, Time: "2 hours", MCQs: 12, Color: "#00c896", Light: "rgba(0,200,150,0.08)"},
		{Day: 4, Title: "Mixed Practice", Focus: "Weak Topics Review", Tasks: []string{"Revise all weak topics", "Solve mixed MCQs", "Review mistakes"}, Time: "3 hours", MCQs: 15, Color: "#ff6b35", Light: "rgba(255,107,53,0.08)"},
		{Day: 5, Title: "Full Mock", Focus: "Simulate Exam", Tasks: []string{"Take full mock test", "Analyze results", "Note improvements"}, Time: "3 hours", MCQs: 25, Color: "#6c47ff", Light: "rgba(108,71,255,0.08)"},
		{Day: 6, Title: "Rapid Revision", Focus: "Quick Recap", Tasks: []string{"Quick revision of all topics", "Solve previous year questions", "Clarify doubts"}, Time: "2 hours", MCQs: 20, Color: "#00c896", Light: "rgba(0,200,150,0.08)"},
		{Day: 7, Title: "Final Prep", Focus: "Last Minute Tips", Tasks: []string{"Important formulas recap", "Stress management", "Exam strategy"}, Time: "1.5 hours", MCQs: 10, Color: "#ff6b35", Light: "rgba(255,107,53,0.08)"},
	}
}
