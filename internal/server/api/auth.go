package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/looplj/authhub/internal/contexts"
	"github.com/looplj/authhub/internal/server/biz"
)

type AuthHandlersParams struct {
	fx.In

	AuthService *biz.AuthService
	UserService *biz.UserService
}

type AuthHandlers struct {
	AuthService *biz.AuthService
	UserService *biz.UserService
}

func NewAuthHandlers(params AuthHandlersParams) *AuthHandlers {
	return &AuthHandlers{
		AuthService: params.AuthService,
		UserService: params.UserService,
	}
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// SignIn exchanges credentials for a login token.
func (h *AuthHandlers) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONBadRequest(c, err)
		return
	}

	ctx := c.Request.Context()

	u, err := h.AuthService.AuthenticateUser(ctx, req.Email, req.Password)
	if err != nil {
		JSONError(c, err)
		return
	}

	token, err := h.AuthService.IssueLoginToken(ctx, u)
	if err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token})
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register creates an account in the default group.
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONBadRequest(c, err)
		return
	}

	ctx := c.Request.Context()

	u, err := h.UserService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusCreated, userInfoFromEnt(u))
}

// Refresh issues a fresh token for the authenticated caller. The identity
// snapshot is re-read from the store; the new token carries the default TTL,
// not the login one.
func (h *AuthHandlers) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	u, ok := contexts.GetUser(ctx)
	if !ok {
		JSONError(c, fmt.Errorf("%w: no authenticated user", biz.ErrUnauthenticated))
		return
	}

	token, err := h.AuthService.IssueRefreshedToken(ctx, u.ID)
	if err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token})
}

// Me returns the authenticated caller's profile.
func (h *AuthHandlers) Me(c *gin.Context) {
	ctx := c.Request.Context()

	u, ok := contexts.GetUser(ctx)
	if !ok {
		JSONError(c, fmt.Errorf("%w: no authenticated user", biz.ErrUnauthenticated))
		return
	}

	c.JSON(http.StatusOK, userInfoFromEnt(u))
}
