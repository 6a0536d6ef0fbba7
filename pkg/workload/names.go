package workload

import "math/rand/v2"

// Small adjective-noun vocabulary for generated list names and item
// descriptions, so simulated traffic stays readable in logs.
var (
	adjectives = []string{
		"urgent", "weekly", "personal", "shared", "pending",
		"quick", "daily", "overdue", "optional", "tiny",
	}
	nouns = []string{
		"errands", "groceries", "chores", "calls", "emails",
		"reading", "repairs", "ideas", "projects", "plans",
	}
)

func randomName() string {
	return adjectives[rand.IntN(len(adjectives))] + "-" + nouns[rand.IntN(len(nouns))]
}
