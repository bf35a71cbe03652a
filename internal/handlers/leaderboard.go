package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/charanreddy9081/sports-vision-trainer/internal/requestdata"
	"github.com/charanreddy9081/sports-vision-trainer/internal/services"
)

const leaderboardSize = 10

type LeaderboardHandler struct {
	leaderboardService services.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// GET /api/leaderboard
func (lh *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	requestingUserID := uuid.Nil
	if rd := requestdata.GetRequestData(c.Request.Context()); rd != nil {
		requestingUserID = rd.UserID
	}
	view, err := lh.leaderboardService.GetLeaderboard(c.Request.Context(), leaderboardSize, requestingUserID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, view)
}
