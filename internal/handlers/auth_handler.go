package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Mrvatsan/APTITUDE-AI/internal/badge"
	"github.com/Mrvatsan/APTITUDE-AI/internal/middleware"
	"github.com/Mrvatsan/APTITUDE-AI/internal/models"
	"github.com/Mrvatsan/APTITUDE-AI/internal/service"
)

var (
	loginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aptirise_login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"status", "method"},
	)

	registrationAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aptirise_registration_attempts_total",
			Help: "Total number of registration attempts",
		},
		[]string{"status"},
	)
)

type AuthHandler struct {
	Users *service.UserService
}

func NewAuthHandler(users *service.UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

// userSummary is the authenticated-user payload returned from register and
// login. The badge is derived, never read from storage.
func userSummary(u *models.User) gin.H {
	return gin.H{
		"id":           u.ID,
		"username":     u.Username,
		"totalXP":      u.TotalXP,
		"currentBadge": badge.BadgeFor(u.TotalXP),
		"streakCount":  u.StreakCount,
		"preferences":  u.Preferences,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Username           string `json:"username"`
		Email              string `json:"email"`
		Password           string `json:"password"`
		Goal               string `json:"goal"`
		SelectedMilestones []int  `json:"selectedMilestones"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password required"})
		return
	}

	user, err := h.Users.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.Goal, req.SelectedMilestones)
	if errors.Is(err, service.ErrUsernameTaken) {
		registrationAttempts.WithLabelValues("failure").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already taken"})
		return
	}
	if err != nil {
		registrationAttempts.WithLabelValues("failure").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed. Please try again."})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed. Please try again."})
		return
	}

	registrationAttempts.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user":    userSummary(user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password required"})
		return
	}

	user, err := h.Users.Login(c.Request.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrAccountNotFound):
		loginAttempts.WithLabelValues("failure", "regular").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found. Please check your username or register."})
		return
	case errors.Is(err, service.ErrWrongPassword):
		loginAttempts.WithLabelValues("failure", "regular").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect password. Please try again."})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed. Please try again."})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed. Please try again."})
		return
	}

	loginAttempts.WithLabelValues("success", "regular").Inc()
	c.JSON(http.StatusOK, gin.H{"token": token, "user": userSummary(user)})
}

// LoginStep1 validates credentials and sends a one-time code to the user's
// email. The token is only issued after step 2.
func (h *AuthHandler) LoginStep1(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	err := h.Users.LoginStep1(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrAccountNotFound):
		loginAttempts.WithLabelValues("failure", "otp").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found. Please check your email or register."})
		return
	case errors.Is(err, service.ErrWrongPassword):
		loginAttempts.WithLabelValues("failure", "otp").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect password. Please try again."})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send verification code. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent to your email"})
}

func (h *AuthHandler) LoginStep2(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
		Code  string `json:"otp"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and verification code required"})
		return
	}

	user, err := h.Users.LoginStep2(c.Request.Context(), req.Email, req.Code)
	switch {
	case errors.Is(err, service.ErrInvalidCode):
		loginAttempts.WithLabelValues("failure", "otp").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired verification code"})
		return
	case errors.Is(err, service.ErrAccountNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired verification code"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed. Please try again."})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed. Please try again."})
		return
	}

	loginAttempts.WithLabelValues("success", "otp").Inc()
	c.JSON(http.StatusOK, gin.H{"token": token, "user": userSummary(user)})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.Users.Get(c.Request.Context(), middleware.UserID(c))
	if errors.Is(err, service.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                user.ID,
		"username":          user.Username,
		"email":             user.Email,
		"totalXP":           user.TotalXP,
		"currentBadge":      badge.BadgeFor(user.TotalXP),
		"streakCount":       user.StreakCount,
		"sessionsCompleted": user.SessionsCompleted,
		"averageAccuracy":   user.AverageAccuracy(),
		"preferences":       user.Preferences,
		"badgeProgress":     badge.Progress(user.TotalXP),
	})
}

// UpdateXP applies a bare XP delta without advancing session counters. Used
// by the client after session completion flows that bypass the result
// endpoint.
func (h *AuthHandler) UpdateXP(c *gin.Context) {
	var req struct {
		XPGained int `json:"xpGained"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "xpGained required"})
		return
	}

	progression, err := h.Users.ApplyResult(c.Request.Context(), middleware.UserID(c), req.XPGained, nil)
	if errors.Is(err, service.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update XP"})
		return
	}

	c.JSON(http.StatusOK, progression)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req struct {
		Username    *string             `json:"username"`
		Email       *string             `json:"email"`
		Preferences *models.Preferences `json:"preferences"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user, err := h.Users.UpdateProfile(c.Request.Context(), middleware.UserID(c), req.Username, req.Email, req.Preferences)
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already taken"})
		return
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "user": userSummary(user)})
}
