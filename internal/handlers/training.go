package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/charanreddy9081/sports-vision-trainer/internal/platform/apierr"
	"github.com/charanreddy9081/sports-vision-trainer/internal/requestdata"
	"github.com/charanreddy9081/sports-vision-trainer/internal/services"
)

type TrainingHandler struct {
	trainingService services.TrainingService
}

func NewTrainingHandler(trainingService services.TrainingService) *TrainingHandler {
	return &TrainingHandler{trainingService: trainingService}
}

// POST /api/training/create
func (th *TrainingHandler) CreateSession(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		RespondServiceError(c, apierr.Unauthorized("not authenticated"))
		return
	}
	var in services.CreateSessionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	session, err := th.trainingService.CreateSession(c.Request.Context(), rd.UserID, in)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, gin.H{
		"message":          "Training session created",
		"training_session": session,
	})
}

// GET /api/training/user/:id — own sessions, or any user's for admins.
func (th *TrainingHandler) GetUserSessions(c *gin.Context) {
	userID := uuid.Nil
	if raw := c.Param("id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondServiceError(c, apierr.Validation("id", "must be a uuid"))
			return
		}
		userID = id
	}
	sessions, err := th.trainingService.GetUserSessions(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"sessions": sessions})
}

// GET /api/training/stats
func (th *TrainingHandler) GetStats(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		RespondServiceError(c, apierr.Unauthorized("not authenticated"))
		return
	}
	stats, err := th.trainingService.GetStats(c.Request.Context(), rd.UserID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, stats)
}
