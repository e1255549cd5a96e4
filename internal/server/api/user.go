package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"go.uber.org/fx"

	"github.com/looplj/authhub/internal/ent"
	"github.com/looplj/authhub/internal/objects"
	"github.com/looplj/authhub/internal/server/biz"
)

type UserHandlersParams struct {
	fx.In

	UserService *biz.UserService
}

type UserHandlers struct {
	UserService *biz.UserService
}

func NewUserHandlers(params UserHandlersParams) *UserHandlers {
	return &UserHandlers{UserService: params.UserService}
}

func pathID(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}

	return id, nil
}

// ListUsers returns all live users.
func (h *UserHandlers) ListUsers(c *gin.Context) {
	users, err := h.UserService.ListUsers(c.Request.Context())
	if err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, lo.Map(users, func(u *ent.User, _ int) objects.UserInfo {
		return userInfoFromEnt(u)
	}))
}

// GetUser returns one user with group and overrides.
func (h *UserHandlers) GetUser(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		JSONBadRequest(c, err)
		return
	}

	u, err := h.UserService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, userInfoFromEnt(u))
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	GroupID  int    `json:"group_id" binding:"required"`
}

// CreateUser creates a user in an explicit group.
func (h *UserHandlers) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONBadRequest(c, err)
		return
	}

	u, err := h.UserService.CreateUser(c.Request.Context(), biz.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		GroupID:  req.GroupID,
	})
	if err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusCreated, userInfoFromEnt(u))
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	GroupID  *int    `json:"group_id"`
}

// UpdateUser applies a partial update to a user.
func (h *UserHandlers) UpdateUser(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		JSONBadRequest(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONBadRequest(c, err)
		return
	}

	u, err := h.UserService.UpdateUser(c.Request.Context(), id, biz.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		GroupID:  req.GroupID,
	})
	if err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, userInfoFromEnt(u))
}

// DeleteUser tombstones a user.
func (h *UserHandlers) DeleteUser(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		JSONBadRequest(c, err)
		return
	}

	if err := h.UserService.DeleteUser(c.Request.Context(), id); err != nil {
		JSONError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type SetOverrideRequest struct {
	Allow *bool `json:"allow" binding:"required"`
}

// SetPermissionOverride creates or updates an identity-level override.
func (h *UserHandlers) SetPermissionOverride(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		JSONBadRequest(c, err)
		return
	}

	permission := c.Param("permission")
	if permission == "" {
		JSONBadRequest(c, errors.New("missing permission name"))
		return
	}

	var req SetOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONBadRequest(c, err)
		return
	}

	err = h.UserService.SetPermissionOverride(c.Request.Context(), id, permission, *req.Allow)
	if err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, objects.PermissionEntry{Permission: permission, Allow: *req.Allow})
}

// RemovePermissionOverride deletes an identity-level override so the group
// grant decides again.
func (h *UserHandlers) RemovePermissionOverride(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		JSONBadRequest(c, err)
		return
	}

	permission := c.Param("permission")
	if permission == "" {
		JSONBadRequest(c, errors.New("missing permission name"))
		return
	}

	err = h.UserService.RemovePermissionOverride(c.Request.Context(), id, permission)
	if err != nil {
		JSONError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
