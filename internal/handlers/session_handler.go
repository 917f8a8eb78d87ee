package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Mrvatsan/APTITUDE-AI/internal/middleware"
	"github.com/Mrvatsan/APTITUDE-AI/internal/models"
	"github.com/Mrvatsan/APTITUDE-AI/internal/service"
)

var (
	sessionsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aptirise_sessions_started_total",
		Help: "Total number of practice sessions started",
	})

	sessionsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aptirise_sessions_completed_total",
		Help: "Total number of practice sessions finalized",
	})
)

type SessionHandler struct {
	Sessions *service.SessionService
}

func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{Sessions: sessions}
}

func (h *SessionHandler) Start(c *gin.Context) {
	var req struct {
		TopicID       int    `json:"topicId"`
		TopicName     string `json:"topicName"`
		MilestoneName string `json:"milestoneName"`
		NumQuestions  any    `json:"numQuestions"`
		Difficulty    string `json:"difficulty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	difficulty, err := models.ParseDifficulty(req.Difficulty)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown difficulty"})
		return
	}

	// numQuestions is either a number or the sentinel "auto" (also the
	// default when absent).
	count := 0
	switch v := req.NumQuestions.(type) {
	case float64:
		if v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "numQuestions must be a non-negative number or \"auto\""})
			return
		}
		count = int(v)
	case string:
		if v != "auto" && v != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "numQuestions must be a number or \"auto\""})
			return
		}
	case nil:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "numQuestions must be a number or \"auto\""})
		return
	}

	outcome, err := h.Sessions.Start(c.Request.Context(), middleware.UserID(c), req.TopicID, req.TopicName, req.MilestoneName, count, difficulty)
	if errors.Is(err, service.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
		return
	}

	sessionsStarted.Inc()
	c.JSON(http.StatusOK, outcome)
}

func (h *SessionHandler) Question(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question index"})
		return
	}

	view, err := h.Sessions.Question(c.Param("sessionId"), middleware.UserID(c), index)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	case errors.Is(err, service.ErrInvalidIndex):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question index"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch question"})
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *SessionHandler) Answer(c *gin.Context) {
	var req struct {
		SessionID      string `json:"sessionId"`
		QuestionIndex  *int   `json:"questionIndex"`
		SelectedOption *int   `json:"selectedOption"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" || req.QuestionIndex == nil || req.SelectedOption == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId, questionIndex and selectedOption required"})
		return
	}

	feedback, err := h.Sessions.SubmitAnswer(req.SessionID, middleware.UserID(c), *req.QuestionIndex, *req.SelectedOption)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	case errors.Is(err, service.ErrInvalidIndex):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question index"})
		return
	case errors.Is(err, service.ErrInvalidOption):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid option index"})
		return
	case errors.Is(err, service.ErrSessionFinalized):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session already completed"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record answer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":            "Answer recorded",
		"isCorrect":          feedback.IsCorrect,
		"correctOptionIndex": feedback.CorrectOptionIndex,
		"solution":           feedback.Solution,
		"nextIndex":          feedback.NextIndex,
		"isComplete":         feedback.IsComplete,
	})
}

// Result finalizes a session. The first call applies the progression
// update; later calls return the same cached numbers.
func (h *SessionHandler) Result(c *gin.Context) {
	result, finalized, err := h.Sessions.Result(c.Request.Context(), c.Param("sessionId"), middleware.UserID(c))
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute result"})
		return
	}

	// Re-reads of a finished session must not inflate the counter.
	if finalized {
		sessionsCompleted.Inc()
	}
	c.JSON(http.StatusOK, result)
}

func (h *SessionHandler) History(c *gin.Context) {
	records, err := h.Sessions.History(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch session history"})
		return
	}
	if records == nil {
		records = []models.SessionRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"sessions": records})
}
