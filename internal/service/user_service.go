package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Mrvatsan/APTITUDE-AI/internal/badge"
	"github.com/Mrvatsan/APTITUDE-AI/internal/models"
)

const otpTTL = 5 * time.Minute

// UserStore is what the user service needs from persistence. The Mongo
// repository satisfies it; tests use an in-memory fake.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, id string, fields map[string]any) error
}

// CodeStore holds one-time login codes with a TTL.
type CodeStore interface {
	SaveCode(ctx context.Context, email, code string, ttl time.Duration) error
	GetCode(ctx context.Context, email string) (string, error)
	DeleteCode(ctx context.Context, email string) error
}

type OTPMailer interface {
	SendOTP(toEmail, code, username string) error
}

type EventSink interface {
	Publish(eventType string, payload any) error
}

type UserService struct {
	Users  UserStore
	Codes  CodeStore
	Mailer OTPMailer
	events EventSink

	// Per-user locks serialize aggregate updates: two sessions finishing at
	// once for the same user must not lose an XP increment.
	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

func NewUserService(users UserStore, codes CodeStore, mail OTPMailer, events EventSink) *UserService {
	return &UserService{
		Users:     users,
		Codes:     codes,
		Mailer:    mail,
		events:    events,
		userLocks: make(map[string]*sync.Mutex),
	}
}

func (s *UserService) lockFor(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.userLocks[userID] = l
	}
	return l
}

func (s *UserService) Register(ctx context.Context, username, email, password, goal string, selectedMilestones []int) (*models.User, error) {
	existing, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return nil, err
	}

	if goal == "" {
		goal = "placements"
	}
	if len(selectedMilestones) == 0 {
		selectedMilestones = []int{1, 2, 3}
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Preferences: models.Preferences{
			Goal:               goal,
			SelectedMilestones: selectedMilestones,
		},
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	log.Printf("[Auth] New user registered: %s", username)

	s.publish("user.registered", map[string]any{"userId": user.ID, "username": username})
	return user, nil
}

// Login checks credentials and, on success, advances the daily streak. The
// distinct account-not-found and wrong-password outcomes are intentional.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		log.Printf("[Auth] Failed login attempt: user %q not found", username)
		return nil, ErrAccountNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		log.Printf("[Auth] Failed login attempt: incorrect password for %q", username)
		return nil, ErrWrongPassword
	}

	if err := s.touchStreak(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// LoginStep1 validates credentials by email and sends a 6-digit code.
func (s *UserService) LoginStep1(ctx context.Context, email, password string) error {
	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrAccountNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return ErrWrongPassword
	}

	code := fmt.Sprintf("%06d", rand.Intn(1000000))
	if err := s.Codes.SaveCode(ctx, email, code, otpTTL); err != nil {
		return err
	}
	return s.Mailer.SendOTP(email, code, user.Username)
}

// LoginStep2 verifies the code, consumes it and completes login.
func (s *UserService) LoginStep2(ctx context.Context, email, code string) (*models.User, error) {
	stored, err := s.Codes.GetCode(ctx, email)
	if err != nil {
		return nil, err
	}
	if stored == "" || stored != code {
		return nil, ErrInvalidCode
	}
	if err := s.Codes.DeleteCode(ctx, email); err != nil {
		log.Printf("[Auth] Failed to clear used code for %s: %v", email, err)
	}

	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrAccountNotFound
	}
	if err := s.touchStreak(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.Users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile applies a partial update. Nil fields are left untouched.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, username, email *string, prefs *models.Preferences) (*models.User, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if username != nil && *username != user.Username {
		taken, err := s.Users.FindByUsername(ctx, *username)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, ErrUsernameTaken
		}
		fields["username"] = *username
		user.Username = *username
	}
	if email != nil {
		fields["email"] = *email
		user.Email = *email
	}
	if prefs != nil {
		fields["preferences"] = *prefs
		user.Preferences = *prefs
	}
	if len(fields) == 0 {
		return user, nil
	}
	if err := s.Users.Update(ctx, userID, fields); err != nil {
		return nil, err
	}
	return user, nil
}

type Progression struct {
	TotalXP       int    `json:"totalXP"`
	Badge         string `json:"currentBadge"`
	BadgeUpgraded bool   `json:"badgeUpgrade"`
	PreviousBadge string `json:"previousBadge,omitempty"`
}

// ApplyResult folds a finished session into the user aggregate. When
// accuracy is non-nil the session counters advance too; a bare XP delta
// (the update-xp endpoint) leaves them alone. Serialized per user.
func (s *UserService) ApplyResult(ctx context.Context, userID string, xpEarned int, accuracy *int) (*Progression, error) {
	lock := s.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	oldBadge := badge.BadgeFor(user.TotalXP)
	newXP := user.TotalXP + xpEarned

	fields := map[string]any{"totalXP": newXP}
	if accuracy != nil {
		fields["sessionsCompleted"] = user.SessionsCompleted + 1
		fields["totalAccuracySum"] = user.TotalAccuracySum + *accuracy
	}
	if err := s.Users.Update(ctx, userID, fields); err != nil {
		return nil, err
	}

	newBadge := badge.BadgeFor(newXP)
	upgraded := oldBadge != newBadge

	log.Printf("[Auth] XP updated for user %s: +%d XP (total: %d)", user.Username, xpEarned, newXP)
	if upgraded {
		log.Printf("[Auth] Badge upgrade for %s: %s -> %s", user.Username, oldBadge, newBadge)
		s.publish("user.badge_upgraded", map[string]any{
			"userId": userID,
			"from":   oldBadge,
			"to":     newBadge,
		})
	}

	p := &Progression{TotalXP: newXP, Badge: newBadge, BadgeUpgraded: upgraded}
	if upgraded {
		p.PreviousBadge = oldBadge
	}
	return p, nil
}

// touchStreak runs once per login: same calendar day is a no-op, logging in
// the day after the last activity extends the streak, any longer gap resets
// it to 1. Days compare in UTC.
func (s *UserService) touchStreak(ctx context.Context, user *models.User) error {
	now := time.Now()
	if user.LastActiveDate != nil && sameDay(*user.LastActiveDate, now) {
		return nil
	}

	if user.LastActiveDate != nil && sameDay(*user.LastActiveDate, now.AddDate(0, 0, -1)) {
		user.StreakCount++
	} else {
		user.StreakCount = 1
	}
	user.LastActiveDate = &now

	return s.Users.Update(ctx, user.ID, map[string]any{
		"streakCount":    user.StreakCount,
		"lastActiveDate": now,
	})
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

func (s *UserService) publish(eventType string, payload any) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(eventType, payload); err != nil {
		log.Printf("[Event] Failed to publish %s: %v", eventType, err)
	}
}
