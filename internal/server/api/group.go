package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"go.uber.org/fx"

	"github.com/looplj/authhub/internal/ent"
	"github.com/looplj/authhub/internal/objects"
	"github.com/looplj/authhub/internal/server/biz"
)

type GroupHandlersParams struct {
	fx.In

	GroupService *biz.GroupService
}

type GroupHandlers struct {
	GroupService *biz.GroupService
}

func NewGroupHandlers(params GroupHandlersParams) *GroupHandlers {
	return &GroupHandlers{GroupService: params.GroupService}
}

// ListGroups returns all live groups.
func (h *GroupHandlers) ListGroups(c *gin.Context) {
	groups, err := h.GroupService.ListGroups(c.Request.Context())
	if err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, lo.Map(groups, func(g *ent.Group, _ int) objects.GroupInfo {
		return groupInfoFromEnt(g)
	}))
}

// GetGroup returns one group with its grants.
func (h *GroupHandlers) GetGroup(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		JSONBadRequest(c, err)
		return
	}

	g, err := h.GroupService.GetGroup(c.Request.Context(), id, true)
	if err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, groupInfoFromEnt(g))
}

type CreateGroupRequest struct {
	Name        string   `json:"name" binding:"required"`
	Permissions []string `json:"permissions"`
}

// CreateGroup creates a group with an initial grant set.
func (h *GroupHandlers) CreateGroup(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONBadRequest(c, err)
		return
	}

	g, err := h.GroupService.CreateGroup(c.Request.Context(), biz.CreateGroupInput{
		Name:        req.Name,
		Permissions: req.Permissions,
	})
	if err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusCreated, groupInfoFromEnt(g))
}

type UpdateGroupRequest struct {
	Name        *string   `json:"name"`
	Permissions *[]string `json:"permissions"`
}

// UpdateGroup renames a group and reconciles its grants when a desired
// permission set is present in the request.
func (h *GroupHandlers) UpdateGroup(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		JSONBadRequest(c, err)
		return
	}

	var req UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONBadRequest(c, err)
		return
	}

	g, err := h.GroupService.UpdateGroup(c.Request.Context(), id, biz.UpdateGroupInput{
		Name:        req.Name,
		Permissions: req.Permissions,
	})
	if err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, groupInfoFromEnt(g))
}

// DeleteGroup tombstones a group. Protected groups are rejected.
func (h *GroupHandlers) DeleteGroup(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		JSONBadRequest(c, err)
		return
	}

	if err := h.GroupService.DeleteGroup(c.Request.Context(), id); err != nil {
		JSONError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
