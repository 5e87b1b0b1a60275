package model

// Milestone marks a lifetime-completion threshold with a badge.
type Milestone struct {
	Count   int
	Badge   string
	Message string
}

var Milestones = []Milestone{
	{Count: 10, Badge: "Dust Buster 🏆", Message: "10 tasks completed! You're on a roll!"},
	{Count: 25, Badge: "Tidy Titan 💪", Message: "25 tasks! This house has never looked better."},
	{Count: 50, Badge: "Clean Machine 🤖", Message: "50 tasks! You are unstoppable!"},
	{Count: 100, Badge: "Domestic Legend 👑", Message: "100 tasks! You are the undisputed champion of clean."},
	{Count: 250, Badge: "Spotless Sovereign ✨", Message: "250 tasks! Your house could be in a magazine."},
	{Count: 500, Badge: "Immaculate Icon 🌟", Message: "500 tasks! We bow to your cleanliness."},
}

// MilestoneFor returns the milestone whose count exactly equals total.
// Exact match is intentional: a milestone surfaces only at the instant the
// counter passes through its value, so a counter that jumps past one (bulk
// import) misses it silently.
func MilestoneFor(total int) (Milestone, bool) {
	for _, m := range Milestones {
		if m.Count == total {
			return m, true
		}
	}
	return Milestone{}, false
}
