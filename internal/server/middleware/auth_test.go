package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/looplj/authhub/internal/authz"
	"github.com/looplj/authhub/internal/contexts"
	"github.com/looplj/authhub/internal/ent"
	"github.com/looplj/authhub/internal/ent/enttest"
	"github.com/looplj/authhub/internal/pkg/xcache"
	"github.com/looplj/authhub/internal/server/biz"
)

type guardFixture struct {
	client      *ent.Client
	authService *biz.AuthService
	userService *biz.UserService
	router      *gin.Engine
}

func setupGuardFixture(t *testing.T) *guardFixture {
	t.Helper()

	gin.SetMode(gin.TestMode)

	client := enttest.NewEntClient(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))

	userService := biz.NewUserService(biz.UserServiceParams{
		Config:      biz.Config{},
		CacheConfig: xcache.Config{},
		Ent:         client,
	})
	authService := biz.NewAuthService(biz.AuthServiceParams{
		JWT:         biz.JWTConfig{Secret: "guard-test-secret"},
		UserService: userService,
		Ent:         client,
	})

	router := gin.New()
	router.Use(WithEntClient(client))

	handler := func(c *gin.Context) {
		if u, ok := contexts.GetUser(c.Request.Context()); ok {
			c.JSON(http.StatusOK, gin.H{"user_id": u.ID})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user_id": 0})
	}

	register := func(path string, meta RouteMeta) {
		router.GET(path,
			WithAuth(authService, meta),
			WithPermission(userService, meta),
			handler,
		)
	}

	register("/public", RouteMeta{Public: true})
	register("/authed", RouteMeta{})
	register("/guarded", RouteMeta{Permission: authz.PermUserList})

	return &guardFixture{
		client:      client,
		authService: authService,
		userService: userService,
		router:      router,
	}
}

func (f *guardFixture) createUser(t *testing.T, email string, grants []string) *ent.User {
	t.Helper()

	ctx := context.Background()

	g, err := f.client.Group.Create().SetName("Group-" + email).Save(ctx)
	require.NoError(t, err)

	for _, name := range grants {
		_, err := f.client.GroupPermission.Create().
			SetGroupID(g.ID).
			SetPermission(name).
			SetAllow(true).
			Save(ctx)
		require.NoError(t, err)
	}

	hashedPassword, err := biz.HashPassword("password-123")
	require.NoError(t, err)

	u, err := f.client.User.Create().
		SetUsername("user-" + email).
		SetEmail(email).
		SetPassword(hashedPassword).
		SetGroupID(g.ID).
		Save(ctx)
	require.NoError(t, err)

	return u
}

func (f *guardFixture) get(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	return w
}

func TestWithAuth_PublicRoute(t *testing.T) {
	f := setupGuardFixture(t)

	w := f.get("/public", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWithAuth_MissingToken(t *testing.T) {
	f := setupGuardFixture(t)

	w := f.get("/authed", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWithAuth_InvalidToken(t *testing.T) {
	f := setupGuardFixture(t)

	w := f.get("/authed", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWithAuth_ValidToken(t *testing.T) {
	f := setupGuardFixture(t)
	ctx := context.Background()

	u := f.createUser(t, "valid@example.com", nil)

	token, err := f.authService.IssueLoginToken(ctx, u)
	require.NoError(t, err)

	w := f.get("/authed", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), fmt.Sprintf("%d", u.ID))
}

func TestWithAuth_TombstonedUser(t *testing.T) {
	f := setupGuardFixture(t)
	ctx := context.Background()

	u := f.createUser(t, "tombstone@example.com", nil)

	token, err := f.authService.IssueLoginToken(ctx, u)
	require.NoError(t, err)

	require.NoError(t, f.userService.DeleteUser(ctx, u.ID))

	w := f.get("/authed", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWithPermission_Granted(t *testing.T) {
	f := setupGuardFixture(t)
	ctx := context.Background()

	u := f.createUser(t, "granted@example.com", []string{authz.PermUserList})

	token, err := f.authService.IssueLoginToken(ctx, u)
	require.NoError(t, err)

	w := f.get("/guarded", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWithPermission_Denied(t *testing.T) {
	f := setupGuardFixture(t)
	ctx := context.Background()

	u := f.createUser(t, "denied@example.com", nil)

	token, err := f.authService.IssueLoginToken(ctx, u)
	require.NoError(t, err)

	w := f.get("/guarded", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestWithPermission_OverrideDenyBeatsGroupGrant(t *testing.T) {
	f := setupGuardFixture(t)
	ctx := context.Background()

	u := f.createUser(t, "revoked@example.com", []string{authz.PermUserList})

	require.NoError(t, f.userService.SetPermissionOverride(ctx, u.ID, authz.PermUserList, false))

	token, err := f.authService.IssueLoginToken(ctx, u)
	require.NoError(t, err)

	w := f.get("/guarded", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestWithPermission_NoPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	f := setupGuardFixture(t)

	// A permission-guarded route reached without WithAuth attaching a
	// principal denies defensively.
	f.router.GET("/bare",
		WithPermission(f.userService, RouteMeta{Permission: authz.PermUserList}),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	w := f.get("/bare", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}
