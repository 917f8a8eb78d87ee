package models

import (
	"sync"
	"time"
)

// Answer records one selected option for a question position.
type Answer struct {
	SelectedOption int       `json:"selectedOption"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

// PracticeSession is the live, process-local session record. Answers is
// position-indexed and sparse: a nil entry means the question was never
// answered. The mutex guards the answer list, the cursor and finalization.
// Once Finalized is set the session is read-only and Result holds the cached
// outcome.
type PracticeSession struct {
	ID              string
	UserID          string
	TopicID         int
	TopicName       string
	MilestoneName   string
	Difficulty      Difficulty
	Questions       []Question
	Answers         []*Answer
	CurrentIndex    int
	StartTime       time.Time
	DurationSeconds int

	Finalized bool
	Result    *SessionResult

	Mu sync.Mutex
}

// QuestionReview is the per-question line of a session result. UserAnswer is
// nil when the position was never answered.
type QuestionReview struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correctOptionIndex"`
	UserAnswer         *int     `json:"userAnswer"`
	IsCorrect          bool     `json:"isCorrect"`
	Solution           string   `json:"solution"`
}

type SessionResult struct {
	SessionID       string           `json:"sessionId"`
	Total           int              `json:"total"`
	Correct         int              `json:"correct"`
	Accuracy        int              `json:"accuracy"`
	XPEarned        int              `json:"xpEarned"`
	Details         []QuestionReview `json:"details"`
	DurationSeconds int              `json:"duration"`
}

// SessionRecord is the finalized summary persisted for history and weak-area
// review. Live sessions never touch the database.
type SessionRecord struct {
	ID              string    `bson:"_id" json:"id"`
	UserID          string    `bson:"userId" json:"userId"`
	TopicID         int       `bson:"topicId" json:"topicId"`
	TopicName       string    `bson:"topicName" json:"topicName"`
	MilestoneName   string    `bson:"milestoneName,omitempty" json:"milestoneName,omitempty"`
	TotalQuestions  int       `bson:"totalQuestions" json:"totalQuestions"`
	CorrectAnswers  int       `bson:"correctAnswers" json:"correctAnswers"`
	Accuracy        int       `bson:"accuracy" json:"accuracy"`
	XPEarned        int       `bson:"xpEarned" json:"xpEarned"`
	Difficulty      string    `bson:"difficulty" json:"difficulty"`
	DurationSeconds int       `bson:"durationSeconds" json:"durationSeconds"`
	CompletedAt     time.Time `bson:"completedAt" json:"completedAt"`
}
