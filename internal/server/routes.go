package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/looplj/authhub/internal/authz"
	"github.com/looplj/authhub/internal/ent"
	"github.com/looplj/authhub/internal/server/api"
	"github.com/looplj/authhub/internal/server/biz"
	"github.com/looplj/authhub/internal/server/middleware"
)

type Handlers struct {
	fx.In

	System *api.SystemHandlers
	Auth   *api.AuthHandlers
	User   *api.UserHandlers
	Group  *api.GroupHandlers
}

type Services struct {
	fx.In

	AuthService *biz.AuthService
	UserService *biz.UserService
}

// route is one entry of the declarative route table: method, path, the
// authorization metadata the guards evaluate, and the handler. All
// authorization requirements live here, next to the route they protect.
type route struct {
	method  string
	path    string
	meta    middleware.RouteMeta
	handler gin.HandlerFunc
}

func routeTable(handlers Handlers) []route {
	public := middleware.RouteMeta{Public: true}
	authed := middleware.RouteMeta{}

	return []route{
		{"GET", "/health", public, handlers.System.Health},

		{"POST", "/auth/signin", public, handlers.Auth.SignIn},
		{"POST", "/auth/register", public, handlers.Auth.Register},
		{"POST", "/auth/refresh", authed, handlers.Auth.Refresh},
		{"GET", "/auth/me", authed, handlers.Auth.Me},

		{"GET", "/admin/users", perm(authz.PermUserList), handlers.User.ListUsers},
		{"GET", "/admin/users/:id", perm(authz.PermUserGet), handlers.User.GetUser},
		{"POST", "/admin/users", perm(authz.PermUserCreate), handlers.User.CreateUser},
		{"PATCH", "/admin/users/:id", perm(authz.PermUserUpdate), handlers.User.UpdateUser},
		{"DELETE", "/admin/users/:id", perm(authz.PermUserDelete), handlers.User.DeleteUser},
		{"PUT", "/admin/users/:id/permissions/:permission", perm(authz.PermUserUpdate), handlers.User.SetPermissionOverride},
		{"DELETE", "/admin/users/:id/permissions/:permission", perm(authz.PermUserUpdate), handlers.User.RemovePermissionOverride},

		{"GET", "/admin/groups", perm(authz.PermGroupList), handlers.Group.ListGroups},
		{"GET", "/admin/groups/:id", perm(authz.PermGroupGet), handlers.Group.GetGroup},
		{"POST", "/admin/groups", perm(authz.PermGroupCreate), handlers.Group.CreateGroup},
		{"PATCH", "/admin/groups/:id", perm(authz.PermGroupUpdate), handlers.Group.UpdateGroup},
		{"DELETE", "/admin/groups/:id", perm(authz.PermGroupDelete), handlers.Group.DeleteGroup},
	}
}

func perm(permission string) middleware.RouteMeta {
	return middleware.RouteMeta{Permission: permission}
}

func SetupRoutes(server *Server, handlers Handlers, client *ent.Client, services Services) {
	server.Use(middleware.AccessLog())
	server.Use(middleware.WithEntClient(client))
	server.Use(middleware.WithLoggingTracing(server.Config.Trace))
	server.Use(middleware.WithTimeout(server.Config.RequestTimeout))

	if server.Config.CORS.Enabled {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = server.Config.CORS.AllowedOrigins
		corsConfig.AllowMethods = server.Config.CORS.AllowedMethods
		corsConfig.AllowHeaders = server.Config.CORS.AllowedHeaders
		corsConfig.ExposeHeaders = server.Config.CORS.ExposedHeaders
		corsConfig.AllowCredentials = server.Config.CORS.AllowCredentials
		corsConfig.MaxAge = server.Config.CORS.MaxAge

		corsHandler := cors.New(corsConfig)
		server.Use(corsHandler)
		server.OPTIONS("*any", corsHandler)
	}

	for _, r := range routeTable(handlers) {
		server.Handle(r.method, r.path,
			middleware.WithAuth(services.AuthService, r.meta),
			middleware.WithPermission(services.UserService, r.meta),
			r.handler,
		)
	}
}
