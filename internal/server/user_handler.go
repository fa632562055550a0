package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ai4life/career-advisor-go/internal/domain"
	"github.com/ai4life/career-advisor-go/internal/service/database"
	"github.com/ai4life/career-advisor-go/internal/util"
)

type UserHandler struct {
	users *database.UserRepository
}

func NewUserHandler(users *database.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

type registerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

// POST /api/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	user := &domain.User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     util.Normalize(req.Email),
		Phone:     req.Phone,
		CreatedAt: time.Now(),
	}
	if err := h.users.Save(c.Request.Context(), user); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, user)
}

// GET /api/auth/user/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.users.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	if user == nil {
		RespondError(c, http.StatusNotFound, "user_not_found", nil)
		return
	}
	RespondOK(c, user)
}
