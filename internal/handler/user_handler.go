package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/wes-io-social/internal/domain"
	"github.com/weiawesome/wes-io-social/internal/service"
	"github.com/weiawesome/wes-io-social/pkg/log"
	"github.com/weiawesome/wes-io-social/pkg/response"
)

// ListUsers returns every user with counts.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Data(c, users)
}

// GetUser returns one user with counts.
func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.users.GetUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		fail(c, err, on(service.ErrUserNotFound, http.StatusBadRequest, "User not found"))
		return
	}
	response.Data(c, user)
}

// CreateUser handles account creation.
func (h *Handler) CreateUser(c *gin.Context) {
	ctx := c.Request.Context()
	var req domain.CreateUserRequest
	if !bind(c, &req) {
		return
	}

	user, err := h.users.CreateUser(ctx, &req)
	if err != nil {
		fail(c, err,
			onMissing(http.StatusBadRequest, "Email are required", service.FieldEmailAddress),
			onMissing(http.StatusBadRequest, "First name are required", service.FieldFirstName),
			on(service.ErrEmailExists, http.StatusBadRequest, "Email already exists"),
		)
		return
	}

	log.SetActor(c, user.ID)
	response.Created(c, "User created")
}

// UpdateUser handles account edits.
func (h *Handler) UpdateUser(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("userId")
	var req domain.UpdateUserRequest
	if !bind(c, &req) {
		return
	}

	log.SetActor(c, userID)
	if err := h.users.UpdateUser(ctx, userID, &req); err != nil {
		fail(c, err,
			on(service.ErrUserNotFound, http.StatusBadRequest, "User not found"),
			on(service.ErrEmailExists, http.StatusBadRequest, "Email already exists"),
		)
		return
	}
	response.OK(c, "User updated")
}

// DeleteUser handles account removal.
func (h *Handler) DeleteUser(c *gin.Context) {
	userID := c.Param("userId")
	log.SetActor(c, userID)
	if err := h.users.DeleteUser(c.Request.Context(), userID); err != nil {
		fail(c, err, on(service.ErrUserNotFound, http.StatusBadRequest, "User not found"))
		return
	}
	response.OK(c, "User deleted")
}
