package models

import "fmt"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyMixed  Difficulty = "mixed"
)

// ParseDifficulty maps a client-supplied string onto the closed difficulty
// set. An empty string defaults to medium; anything else unrecognized is a
// validation failure rather than a silent fall-through.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyMixed:
		return Difficulty(s), nil
	case "":
		return DifficultyMedium, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// Question is immutable after creation. Options are in display order and
// CorrectOptionIndex is zero-based into them.
type Question struct {
	Text               string   `bson:"question" json:"question"`
	Options            []string `bson:"options" json:"options"`
	CorrectOptionIndex int      `bson:"correctOptionIndex" json:"correctOptionIndex"`
	Solution           string   `bson:"solution" json:"solution"`
	Difficulty         string   `bson:"difficulty" json:"difficulty"`
	Category           string   `bson:"category" json:"category"`
}
