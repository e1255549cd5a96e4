package api

import (
	"github.com/samber/lo"

	"github.com/looplj/authhub/internal/ent"
	"github.com/looplj/authhub/internal/objects"
)

func userInfoFromEnt(u *ent.User) objects.UserInfo {
	info := objects.UserInfo{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}

	if u.Edges.Group != nil {
		g := groupInfoFromEnt(u.Edges.Group)
		info.Group = &g
	}

	info.Permissions = lo.Map(u.Edges.Permissions, func(p *ent.UserPermission, _ int) objects.PermissionEntry {
		return objects.PermissionEntry{Permission: p.Permission, Allow: p.Allow}
	})

	return info
}

func groupInfoFromEnt(g *ent.Group) objects.GroupInfo {
	info := objects.GroupInfo{
		ID:        g.ID,
		Name:      g.Name,
		Protected: g.Protected,
	}

	info.Permissions = lo.Map(g.Edges.Permissions, func(p *ent.GroupPermission, _ int) objects.PermissionEntry {
		return objects.PermissionEntry{Permission: p.Permission, Allow: p.Allow}
	})

	return info
}
