package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mrvatsan/APTITUDE-AI/internal/catalog"
)

// MilestoneHandler serves the static curriculum configuration.
type MilestoneHandler struct{}

func NewMilestoneHandler() *MilestoneHandler {
	return &MilestoneHandler{}
}

func (h *MilestoneHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"milestones": catalog.All()})
}

func (h *MilestoneHandler) Topics(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("milestoneId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "milestoneId required"})
		return
	}
	milestone, ok := catalog.MilestoneByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Milestone not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"milestone": milestone.Name, "topics": milestone.Topics})
}

func (h *MilestoneHandler) Topic(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("topicId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid topic id"})
		return
	}
	topic, milestone, ok := catalog.TopicByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Topic not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"topic": topic, "milestone": gin.H{"id": milestone.ID, "name": milestone.Name}})
}
