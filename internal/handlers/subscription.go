package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charanreddy9081/sports-vision-trainer/internal/platform/apierr"
	"github.com/charanreddy9081/sports-vision-trainer/internal/requestdata"
	"github.com/charanreddy9081/sports-vision-trainer/internal/services"
)

type SubscriptionHandler struct {
	subscriptionService services.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

type upgradeRequest struct {
	Plan string `json:"plan"`
}

// POST /api/subscription/upgrade
func (sh *SubscriptionHandler) Upgrade(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		RespondServiceError(c, apierr.Unauthorized("not authenticated"))
		return
	}
	var req upgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := sh.subscriptionService.ChangePlan(c.Request.Context(), rd.UserID, req.Plan); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{
		"message":      "Subscription updated",
		"subscription": req.Plan,
	})
}

// GET /api/subscription/status
func (sh *SubscriptionHandler) Status(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		RespondServiceError(c, apierr.Unauthorized("not authenticated"))
		return
	}
	status, err := sh.subscriptionService.Status(c.Request.Context(), rd.UserID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, status)
}
