package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is the persistent aggregate for a platform user. Accuracy is kept as a
// running sum so the average can be derived without rounding drift. The badge
// is never stored; it is derived from TotalXP on every read.
type User struct {
	ID                string      `bson:"_id,omitempty" json:"id"`
	Username          string      `bson:"username" json:"username"`
	Email             string      `bson:"email,omitempty" json:"email,omitempty"`
	PasswordHash      string      `bson:"passwordHash" json:"-"`
	TotalXP           int         `bson:"totalXP" json:"totalXP"`
	SessionsCompleted int         `bson:"sessionsCompleted" json:"sessionsCompleted"`
	TotalAccuracySum  int         `bson:"totalAccuracySum" json:"-"`
	StreakCount       int         `bson:"streakCount" json:"streakCount"`
	LastActiveDate    *time.Time  `bson:"lastActiveDate,omitempty" json:"lastActiveDate,omitempty"`
	Preferences       Preferences `bson:"preferences" json:"preferences"`
	CreatedAt         time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time   `bson:"updatedAt" json:"updatedAt"`
}

type Preferences struct {
	Goal               string `bson:"goal" json:"goal"`
	SelectedMilestones []int  `bson:"selectedMilestones" json:"selectedMilestones"`
}

// AverageAccuracy derives the running average from the stored sum. Zero when
// the user has not completed any session yet.
func (u *User) AverageAccuracy() int {
	if u.SessionsCompleted == 0 {
		return 0
	}
	return u.TotalAccuracySum / u.SessionsCompleted
}

type Claims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
