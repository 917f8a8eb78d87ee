package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/Mrvatsan/APTITUDE-AI/internal/catalog"
	"github.com/Mrvatsan/APTITUDE-AI/internal/models"
)

const baseXP = 10

// durationTable maps question-set sizes onto expected session lengths.
// Sizes not listed fall back to 90 seconds per question.
var durationTable = map[int]int{
	5:  8 * 60,
	10: 15 * 60,
	15: 23 * 60,
	20: 30 * 60,
}

// QuestionSource produces a question set for a topic. The generator never
// fails; it substitutes bank questions instead.
type QuestionSource interface {
	Generate(ctx context.Context, topic, milestone string, n int, difficulty models.Difficulty) []models.Question
}

// SessionArchive persists finalized session summaries.
type SessionArchive interface {
	Save(ctx context.Context, record *models.SessionRecord) error
	ListByUser(ctx context.Context, userID string) ([]models.SessionRecord, error)
}

type SessionService struct {
	Store   SessionStore
	Source  QuestionSource
	Users   *UserService
	Archive SessionArchive
	events  EventSink
}

func NewSessionService(store SessionStore, source QuestionSource, users *UserService, archive SessionArchive, events EventSink) *SessionService {
	return &SessionService{
		Store:   store,
		Source:  source,
		Users:   users,
		Archive: archive,
		events:  events,
	}
}

// QuestionView is a question as shown to the client: no correct index, no
// solution. Those are only revealed with answer feedback.
type QuestionView struct {
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	CurrentIndex   int      `json:"currentIndex"`
	TotalQuestions int      `json:"totalQuestions"`
	IsLast         bool     `json:"isLast"`
}

type StartOutcome struct {
	SessionID       string       `json:"sessionId"`
	TotalQuestions  int          `json:"totalQuestions"`
	CurrentQuestion QuestionView `json:"currentQuestion"`
	CurrentIndex    int          `json:"currentIndex"`
	DurationSeconds int          `json:"durationSeconds"`
}

type AnswerFeedback struct {
	IsCorrect          bool   `json:"isCorrect"`
	CorrectOptionIndex int    `json:"correctOptionIndex"`
	Solution           string `json:"solution"`
	NextIndex          int    `json:"nextIndex"`
	IsComplete         bool   `json:"isComplete"`
}

// autoQuestionCount picks a set size from the user's completed-session
// history: newcomers get short sets, veterans longer ones. Monotonic in the
// history count.
func autoQuestionCount(completedSessions int) int {
	switch {
	case completedSessions < 10:
		return 5
	case completedSessions < 25:
		return 10
	default:
		return 15
	}
}

func expectedDuration(n int) int {
	if d, ok := durationTable[n]; ok {
		return d
	}
	return n * 90
}

// Start creates a session in answering state and returns the first question.
// count <= 0 means "auto": the size is derived from the user's history.
func (s *SessionService) Start(ctx context.Context, userID string, topicID int, topicName, milestoneName string, count int, difficulty models.Difficulty) (*StartOutcome, error) {
	if count <= 0 {
		user, err := s.Users.Get(ctx, userID)
		if err != nil {
			return nil, err
		}
		count = autoQuestionCount(user.SessionsCompleted)
	}

	if topicName == "" {
		topicName = "General Aptitude"
	}
	if milestoneName == "" {
		milestoneName = "Milestone 1"
	}

	log.Printf("[Session] Starting session for topic=%q difficulty=%s questions=%d", topicName, difficulty, count)
	questions := s.Source.Generate(ctx, topicName, milestoneName, count, difficulty)
	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions available for topic %q", topicName)
	}

	session := &models.PracticeSession{
		ID:              fmt.Sprintf("sess_%d_%s", time.Now().UnixMilli(), userID),
		UserID:          userID,
		TopicID:         topicID,
		TopicName:       topicName,
		MilestoneName:   milestoneName,
		Difficulty:      difficulty,
		Questions:       questions,
		Answers:         make([]*models.Answer, len(questions)),
		StartTime:       time.Now(),
		DurationSeconds: expectedDuration(count),
	}
	s.Store.Put(session)

	return &StartOutcome{
		SessionID:       session.ID,
		TotalQuestions:  len(questions),
		CurrentQuestion: s.questionView(session, 0),
		CurrentIndex:    0,
		DurationSeconds: session.DurationSeconds,
	}, nil
}

func (s *SessionService) questionView(session *models.PracticeSession, index int) QuestionView {
	q := session.Questions[index]
	return QuestionView{
		Question:       q.Text,
		Options:        q.Options,
		CurrentIndex:   index,
		TotalQuestions: len(session.Questions),
		IsLast:         index == len(session.Questions)-1,
	}
}

func (s *SessionService) ownedSession(sessionID, userID string) (*models.PracticeSession, error) {
	session, ok := s.Store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	// Sessions are private to their owner; a foreign session looks absent.
	if session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *SessionService) Question(sessionID, userID string, index int) (*QuestionView, error) {
	session, err := s.ownedSession(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(session.Questions) {
		return nil, ErrInvalidIndex
	}
	view := s.questionView(session, index)
	return &view, nil
}

// SubmitAnswer records the selection at the given position and returns
// immediate feedback. Out-of-order and repeated submissions are legitimate
// (retries, review flows); a resubmission overwrites. The cursor is
// informational only.
func (s *SessionService) SubmitAnswer(sessionID, userID string, index, selected int) (*AnswerFeedback, error) {
	session, err := s.ownedSession(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(session.Questions) {
		return nil, ErrInvalidIndex
	}
	if selected < 0 || selected > 3 {
		return nil, ErrInvalidOption
	}

	session.Mu.Lock()
	defer session.Mu.Unlock()
	if session.Finalized {
		return nil, ErrSessionFinalized
	}

	session.Answers[index] = &models.Answer{SelectedOption: selected, SubmittedAt: time.Now()}
	session.CurrentIndex = index + 1

	question := session.Questions[index]
	return &AnswerFeedback{
		IsCorrect:          selected == question.CorrectOptionIndex,
		CorrectOptionIndex: question.CorrectOptionIndex,
		Solution:           question.Solution,
		NextIndex:          session.CurrentIndex,
		IsComplete:         session.CurrentIndex >= len(session.Questions),
	}, nil
}

// Result finalizes the session: scores every position (absent answers count
// as incorrect), folds XP and accuracy into the user aggregate exactly once,
// and archives the summary. Repeat calls return the cached result without
// touching the aggregate again. The boolean reports whether this call did
// the finalizing, so callers can tell a fresh completion from a re-read.
func (s *SessionService) Result(ctx context.Context, sessionID, userID string) (*models.SessionResult, bool, error) {
	session, err := s.ownedSession(sessionID, userID)
	if err != nil {
		return nil, false, err
	}

	session.Mu.Lock()
	defer session.Mu.Unlock()

	if session.Finalized {
		return session.Result, false, nil
	}

	result := score(session)

	if _, err := s.Users.ApplyResult(ctx, userID, result.XPEarned, &result.Accuracy); err != nil {
		return nil, false, err
	}
	session.Finalized = true
	session.Result = result

	record := &models.SessionRecord{
		UserID:          userID,
		TopicID:         session.TopicID,
		TopicName:       session.TopicName,
		MilestoneName:   session.MilestoneName,
		TotalQuestions:  result.Total,
		CorrectAnswers:  result.Correct,
		Accuracy:        result.Accuracy,
		XPEarned:        result.XPEarned,
		Difficulty:      string(session.Difficulty),
		DurationSeconds: result.DurationSeconds,
		CompletedAt:     time.Now(),
	}
	if err := s.Archive.Save(ctx, record); err != nil {
		log.Printf("[Session] Failed to archive session %s: %v", sessionID, err)
	}

	log.Printf("[Session] Session completed: user=%s accuracy=%d%% xp=%d", userID, result.Accuracy, result.XPEarned)
	s.publish("quiz.session.completed", map[string]any{
		"sessionId": sessionID,
		"userId":    userID,
		"accuracy":  result.Accuracy,
		"xpEarned":  result.XPEarned,
	})

	return result, true, nil
}

// score derives the result from the session record. Pure with respect to
// the session contents; callers hold the session lock.
func score(session *models.PracticeSession) *models.SessionResult {
	total := len(session.Questions)
	correct := 0
	details := make([]models.QuestionReview, 0, total)

	for i, q := range session.Questions {
		review := models.QuestionReview{
			Question:           q.Text,
			Options:            q.Options,
			CorrectOptionIndex: q.CorrectOptionIndex,
			Solution:           q.Solution,
		}
		if ans := session.Answers[i]; ans != nil {
			selected := ans.SelectedOption
			review.UserAnswer = &selected
			review.IsCorrect = selected == q.CorrectOptionIndex
		}
		if review.IsCorrect {
			correct++
		}
		details = append(details, review)
	}

	accuracy := int(math.Round(float64(correct) / float64(total) * 100))
	weight := catalog.TopicWeight(session.TopicID)
	xp := int(math.Round(float64(correct) * baseXP * weight))

	return &models.SessionResult{
		SessionID:       session.ID,
		Total:           total,
		Correct:         correct,
		Accuracy:        accuracy,
		XPEarned:        xp,
		Details:         details,
		DurationSeconds: int(math.Round(time.Since(session.StartTime).Seconds())),
	}
}

func (s *SessionService) History(ctx context.Context, userID string) ([]models.SessionRecord, error) {
	return s.Archive.ListByUser(ctx, userID)
}

func (s *SessionService) publish(eventType string, payload any) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(eventType, payload); err != nil {
		log.Printf("[Event] Failed to publish %s: %v", eventType, err)
	}
}
