package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/Mrvatsan/APTITUDE-AI/internal/models"
)

// stubSource returns a fixed-shape question set where option 0 is always the
// correct answer.
type stubSource struct{}

func (stubSource) Generate(_ context.Context, topic, _ string, n int, _ models.Difficulty) []models.Question {
	questions := make([]models.Question, n)
	for i := range questions {
		questions[i] = models.Question{
			Text:               topic + " question",
			Options:            []string{"right", "wrong", "wrong", "wrong"},
			CorrectOptionIndex: 0,
			Solution:           "option A",
			Difficulty:         "medium",
			Category:           topic,
		}
	}
	return questions
}

type fakeArchive struct {
	mu      sync.Mutex
	records []models.SessionRecord
	fail    bool
}

func (f *fakeArchive) Save(_ context.Context, record *models.SessionRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("archive unavailable")
	}
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeArchive) ListByUser(_ context.Context, userID string) ([]models.SessionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.SessionRecord
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func newTestSessionService(t *testing.T) (*SessionService, *fakeArchive, string) {
	t.Helper()
	users, _, _, _, _ := newTestUserService()
	user := seedUser(t, users, "ananya", "ananya@example.com", "secret")
	archive := &fakeArchive{}
	svc := NewSessionService(NewMemorySessionStore(), stubSource{}, users, archive, nil)
	return svc, archive, user.ID
}

func startSession(t *testing.T, svc *SessionService, userID string, count int) *StartOutcome {
	t.Helper()
	out, err := svc.Start(context.Background(), userID, 101, "Number System", "Milestone 1", count, models.DifficultyMedium)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return out
}

func TestStartReturnsFirstQuestion(t *testing.T) {
	svc, _, userID := newTestSessionService(t)

	out := startSession(t, svc, userID, 5)
	if out.TotalQuestions != 5 {
		t.Errorf("totalQuestions = %d, want 5", out.TotalQuestions)
	}
	if out.DurationSeconds != 8*60 {
		t.Errorf("duration = %d, want %d", out.DurationSeconds, 8*60)
	}
	if out.CurrentQuestion.CurrentIndex != 0 || out.CurrentQuestion.IsLast {
		t.Errorf("first question = %+v, want index 0 and not last", out.CurrentQuestion)
	}
	if !strings.HasPrefix(out.SessionID, "sess_") {
		t.Errorf("session id %q missing sess_ prefix", out.SessionID)
	}
	if len(out.CurrentQuestion.Options) != 4 {
		t.Errorf("question has %d options, want 4", len(out.CurrentQuestion.Options))
	}
}

func TestStartDefaultsTopicAndMilestone(t *testing.T) {
	svc, archive, userID := newTestSessionService(t)

	out, err := svc.Start(context.Background(), userID, 0, "", "", 5, models.DifficultyMedium)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, _, err := svc.Result(context.Background(), out.SessionID, userID); err != nil {
		t.Fatalf("Result failed: %v", err)
	}
	if len(archive.records) != 1 {
		t.Fatalf("archived %d records, want 1", len(archive.records))
	}
	if archive.records[0].TopicName != "General Aptitude" || archive.records[0].MilestoneName != "Milestone 1" {
		t.Errorf("archived topic/milestone = %q/%q, want defaults", archive.records[0].TopicName, archive.records[0].MilestoneName)
	}
}

func TestAutoQuestionCount(t *testing.T) {
	tests := []struct {
		completed int
		want      int
	}{
		{0, 5},
		{9, 5},
		{10, 10},
		{24, 10},
		{25, 15},
		{100, 15},
	}
	for _, tt := range tests {
		if got := autoQuestionCount(tt.completed); got != tt.want {
			t.Errorf("autoQuestionCount(%d) = %d, want %d", tt.completed, got, tt.want)
		}
	}
}

func TestExpectedDuration(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{5, 480},
		{10, 900},
		{15, 1380},
		{20, 1800},
		{7, 630},
	}
	for _, tt := range tests {
		if got := expectedDuration(tt.n); got != tt.want {
			t.Errorf("expectedDuration(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestQuestionViewHidesSolution(t *testing.T) {
	svc, _, userID := newTestSessionService(t)
	out := startSession(t, svc, userID, 5)

	view, err := svc.Question(out.SessionID, userID, 4)
	if err != nil {
		t.Fatalf("Question failed: %v", err)
	}
	if !view.IsLast {
		t.Error("index 4 of 5 should be the last question")
	}

	if _, err := svc.Question(out.SessionID, userID, 5); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("out-of-range index error = %v, want ErrInvalidIndex", err)
	}
	if _, err := svc.Question("sess_missing", userID, 0); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("missing session error = %v, want ErrSessionNotFound", err)
	}
}

func TestForeignSessionLooksAbsent(t *testing.T) {
	svc, _, userID := newTestSessionService(t)
	out := startSession(t, svc, userID, 5)

	if _, err := svc.Question(out.SessionID, "someone-else", 0); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("foreign access error = %v, want ErrSessionNotFound", err)
	}
	if _, err := svc.SubmitAnswer(out.SessionID, "someone-else", 0, 0); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("foreign submit error = %v, want ErrSessionNotFound", err)
	}
}

func TestSubmitAnswerFeedback(t *testing.T) {
	svc, _, userID := newTestSessionService(t)
	out := startSession(t, svc, userID, 5)

	fb, err := svc.SubmitAnswer(out.SessionID, userID, 0, 0)
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if !fb.IsCorrect || fb.CorrectOptionIndex != 0 || fb.Solution == "" {
		t.Errorf("feedback = %+v, want correct with solution", fb)
	}
	if fb.NextIndex != 1 || fb.IsComplete {
		t.Errorf("feedback cursor = %d complete=%v, want 1/false", fb.NextIndex, fb.IsComplete)
	}

	fb, err = svc.SubmitAnswer(out.SessionID, userID, 4, 2)
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if fb.IsCorrect {
		t.Error("wrong option reported correct")
	}
	if !fb.IsComplete {
		t.Error("answering the last position should report completion")
	}

	if _, err := svc.SubmitAnswer(out.SessionID, userID, 0, 4); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("option 4 error = %v, want ErrInvalidOption", err)
	}
	if _, err := svc.SubmitAnswer(out.SessionID, userID, -1, 0); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("negative index error = %v, want ErrInvalidIndex", err)
	}
}

func TestSubmitAnswerOutOfOrderAndOverwrite(t *testing.T) {
	svc, _, userID := newTestSessionService(t)
	out := startSession(t, svc, userID, 5)

	// Answer positions out of order, then overwrite one.
	for _, idx := range []int{3, 0, 2} {
		if _, err := svc.SubmitAnswer(out.SessionID, userID, idx, 1); err != nil {
			t.Fatalf("SubmitAnswer(%d) failed: %v", idx, err)
		}
	}
	if _, err := svc.SubmitAnswer(out.SessionID, userID, 3, 0); err != nil {
		t.Fatalf("resubmission failed: %v", err)
	}

	result, _, err := svc.Result(context.Background(), out.SessionID, userID)
	if err != nil {
		t.Fatalf("Result failed: %v", err)
	}
	// Only the overwritten position 3 holds the correct option.
	if result.Correct != 1 {
		t.Errorf("correct = %d, want 1", result.Correct)
	}
	if got := result.Details[3].UserAnswer; got == nil || *got != 0 {
		t.Errorf("position 3 answer = %v, want overwritten to 0", got)
	}
	if result.Details[1].UserAnswer != nil {
		t.Error("unanswered position 1 should have no recorded answer")
	}
	if result.Details[1].IsCorrect {
		t.Error("unanswered position scored as correct")
	}
}

func TestResultScoringAndRounding(t *testing.T) {
	svc, _, userID := newTestSessionService(t)
	out := startSession(t, svc, userID, 5)

	// 2 of 5 correct: accuracy 40, XP 2*10*1.0 for topic 101.
	for _, idx := range []int{0, 1} {
		if _, err := svc.SubmitAnswer(out.SessionID, userID, idx, 0); err != nil {
			t.Fatalf("SubmitAnswer failed: %v", err)
		}
	}
	result, _, err := svc.Result(context.Background(), out.SessionID, userID)
	if err != nil {
		t.Fatalf("Result failed: %v", err)
	}
	if result.Total != 5 || result.Correct != 2 {
		t.Errorf("score = %d/%d, want 2/5", result.Correct, result.Total)
	}
	if result.Accuracy != 40 {
		t.Errorf("accuracy = %d, want 40", result.Accuracy)
	}
	if result.XPEarned != 20 {
		t.Errorf("xp = %d, want 20", result.XPEarned)
	}
}

func TestResultWeightedXP(t *testing.T) {
	svc, _, userID := newTestSessionService(t)

	// Topic 305 carries a 1.5 multiplier: 3 correct of 5 earns round(3*10*1.5).
	out, err := svc.Start(context.Background(), userID, 305, "Seating Arrangement 1", "Milestone 3", 5, models.DifficultyHard)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	for _, idx := range []int{0, 1, 2} {
		if _, err := svc.SubmitAnswer(out.SessionID, userID, idx, 0); err != nil {
			t.Fatalf("SubmitAnswer failed: %v", err)
		}
	}
	result, _, err := svc.Result(context.Background(), out.SessionID, userID)
	if err != nil {
		t.Fatalf("Result failed: %v", err)
	}
	if result.XPEarned != 45 {
		t.Errorf("xp = %d, want 45", result.XPEarned)
	}
	if result.Accuracy != 60 {
		t.Errorf("accuracy = %d, want 60", result.Accuracy)
	}
}

func TestResultFinalizesOnce(t *testing.T) {
	svc, archive, userID := newTestSessionService(t)
	out := startSession(t, svc, userID, 5)

	for i := 0; i < 5; i++ {
		if _, err := svc.SubmitAnswer(out.SessionID, userID, i, 0); err != nil {
			t.Fatalf("SubmitAnswer failed: %v", err)
		}
	}

	first, finalized, err := svc.Result(context.Background(), out.SessionID, userID)
	if err != nil {
		t.Fatalf("Result failed: %v", err)
	}
	if !finalized {
		t.Error("first Result call did not report finalization")
	}
	second, finalized, err := svc.Result(context.Background(), out.SessionID, userID)
	if err != nil {
		t.Fatalf("repeat Result failed: %v", err)
	}
	if finalized {
		t.Error("repeat Result reported finalization again")
	}
	if first != second {
		t.Error("repeat Result did not return the cached value")
	}

	// XP and counters applied exactly once.
	user, err := svc.Users.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if user.TotalXP != first.XPEarned {
		t.Errorf("totalXP = %d after repeat results, want %d", user.TotalXP, first.XPEarned)
	}
	if user.SessionsCompleted != 1 {
		t.Errorf("sessionsCompleted = %d, want 1", user.SessionsCompleted)
	}
	if len(archive.records) != 1 {
		t.Errorf("archived %d records, want 1", len(archive.records))
	}

	if _, err := svc.SubmitAnswer(out.SessionID, userID, 0, 1); !errors.Is(err, ErrSessionFinalized) {
		t.Errorf("submit after finalize error = %v, want ErrSessionFinalized", err)
	}
}

func TestResultSurvivesArchiveFailure(t *testing.T) {
	svc, archive, userID := newTestSessionService(t)
	archive.fail = true
	out := startSession(t, svc, userID, 5)

	result, _, err := svc.Result(context.Background(), out.SessionID, userID)
	if err != nil {
		t.Fatalf("Result failed despite archive being best effort: %v", err)
	}
	if result.Total != 5 {
		t.Errorf("total = %d, want 5", result.Total)
	}
}

func TestHistoryListsOwnSessionsOnly(t *testing.T) {
	svc, _, userID := newTestSessionService(t)

	for i := 0; i < 2; i++ {
		out := startSession(t, svc, userID, 5)
		if _, _, err := svc.Result(context.Background(), out.SessionID, userID); err != nil {
			t.Fatalf("Result failed: %v", err)
		}
	}

	records, err := svc.History(context.Background(), userID)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("history has %d records, want 2", len(records))
	}

	other, err := svc.History(context.Background(), "someone-else")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("foreign history has %d records, want 0", len(other))
	}
}
