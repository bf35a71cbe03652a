package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/charanreddy9081/sports-vision-trainer/internal/platform/apierr"
	"github.com/charanreddy9081/sports-vision-trainer/internal/services"
)

type AdminHandler struct {
	adminService services.AdminService
}

func NewAdminHandler(adminService services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// GET /api/admin/users
func (ah *AdminHandler) ListUsers(c *gin.Context) {
	users, err := ah.adminService.ListUsers(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"users": users})
}

// DELETE /api/admin/user/:id
func (ah *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondServiceError(c, apierr.Validation("id", "must be a uuid"))
		return
	}
	if err := ah.adminService.DeleteUser(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "User deleted successfully"})
}

// GET /api/admin/analytics
func (ah *AdminHandler) Analytics(c *gin.Context) {
	analytics, err := ah.adminService.Analytics(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, analytics)
}
