// Package catalog holds the static curriculum configuration: milestones,
// their topics, difficulty tags and XP weight multipliers. Loaded once,
// immutable at runtime.
package catalog

type Topic struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Weight        float64 `json:"weight"`
	DifficultyTag string  `json:"difficultyTag"`
}

type Milestone struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Topics []Topic `json:"topics"`
}

var milestones = []Milestone{
	{
		ID:   1,
		Name: "Milestone 1",
		Topics: []Topic{
			{ID: 101, Name: "Number System", Weight: 1.0, DifficultyTag: "easy"},
			{ID: 102, Name: "HCF and LCM", Weight: 1.0, DifficultyTag: "easy"},
			{ID: 103, Name: "Average", Weight: 1.0, DifficultyTag: "easy"},
			{ID: 104, Name: "Blood Relation", Weight: 1.0, DifficultyTag: "easy"},
			{ID: 105, Name: "Number Series", Weight: 1.0, DifficultyTag: "easy"},
		},
	},
	{
		ID:   2,
		Name: "Milestone 2",
		Topics: []Topic{
			{ID: 201, Name: "Ratio & Proportion", Weight: 1.0, DifficultyTag: "easy"},
			{ID: 202, Name: "Problems on Ages", Weight: 1.25, DifficultyTag: "medium"},
			{ID: 203, Name: "Mixture & Alligation", Weight: 1.25, DifficultyTag: "medium"},
			{ID: 204, Name: "Directions", Weight: 1.0, DifficultyTag: "easy"},
			{ID: 205, Name: "Alphanumeric Series", Weight: 1.0, DifficultyTag: "easy"},
		},
	},
	{
		ID:   3,
		Name: "Milestone 3",
		Topics: []Topic{
			{ID: 301, Name: "Percentage", Weight: 1.0, DifficultyTag: "easy"},
			{ID: 302, Name: "Profit or Loss, Discount", Weight: 1.25, DifficultyTag: "medium"},
			{ID: 303, Name: "Simple Interest", Weight: 1.0, DifficultyTag: "easy"},
			{ID: 304, Name: "Compound Interest", Weight: 1.25, DifficultyTag: "medium"},
			{ID: 305, Name: "Seating Arrangement 1", Weight: 1.5, DifficultyTag: "hard"},
		},
	},
	{
		ID:   4,
		Name: "Milestone 4",
		Topics: []Topic{
			{ID: 401, Name: "Time & Work", Weight: 1.25, DifficultyTag: "medium"},
			{ID: 402, Name: "Pipes & Cisterns", Weight: 1.25, DifficultyTag: "medium"},
			{ID: 403, Name: "Data Interpretation", Weight: 1.5, DifficultyTag: "hard"},
			{ID: 404, Name: "Seating Arrangement 2", Weight: 1.5, DifficultyTag: "hard"},
			{ID: 405, Name: "Coding Decoding", Weight: 1.0, DifficultyTag: "easy"},
		},
	},
	{
		ID:   5,
		Name: "Milestone 5",
		Topics: []Topic{
			{ID: 501, Name: "Permutation", Weight: 1.25, DifficultyTag: "medium"},
			{ID: 502, Name: "Combination", Weight: 1.25, DifficultyTag: "medium"},
			{ID: 503, Name: "Probability", Weight: 1.25, DifficultyTag: "medium"},
			{ID: 504, Name: "Syllogism", Weight: 1.0, DifficultyTag: "easy"},
			{ID: 505, Name: "Inequalities", Weight: 1.0, DifficultyTag: "easy"},
			{ID: 506, Name: "Analogy & Non-Verbal Reasoning", Weight: 1.0, DifficultyTag: "easy"},
		},
	},
	{
		ID:   6,
		Name: "Milestone 6",
		Topics: []Topic{
			{ID: 601, Name: "Time, Speed and Distance", Weight: 1.25, DifficultyTag: "medium"},
			{ID: 602, Name: "Problems on Trains", Weight: 1.25, DifficultyTag: "medium"},
			{ID: 603, Name: "Boats and Stream", Weight: 1.25, DifficultyTag: "medium"},
			{ID: 604, Name: "Ranking & Ordering", Weight: 1.0, DifficultyTag: "easy"},
			{ID: 605, Name: "Data Sufficiency", Weight: 1.5, DifficultyTag: "hard"},
			{ID: 606, Name: "Statement & Argument", Weight: 1.5, DifficultyTag: "hard"},
		},
	},
}

// All returns every milestone with its topics.
func All() []Milestone {
	return milestones
}

// MilestoneByID returns the milestone with the given id, or false.
func MilestoneByID(id int) (Milestone, bool) {
	for _, m := range milestones {
		if m.ID == id {
			return m, true
		}
	}
	return Milestone{}, false
}

// TopicByID returns a topic and its parent milestone, or false.
func TopicByID(id int) (Topic, Milestone, bool) {
	for _, m := range milestones {
		for _, t := range m.Topics {
			if t.ID == id {
				return t, m, true
			}
		}
	}
	return Topic{}, Milestone{}, false
}

// TopicWeight returns the configured XP multiplier for a topic, defaulting
// to 1.0 when the topic is unknown.
func TopicWeight(id int) float64 {
	if t, _, ok := TopicByID(id); ok {
		return t.Weight
	}
	return 1.0
}
