package biz

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/looplj/authhub/internal/ent"
	"github.com/looplj/authhub/internal/ent/enttest"
	"github.com/looplj/authhub/internal/pkg/xcache"
)

func TestHashPassword(t *testing.T) {
	password := "test-password-123"

	hashedPassword, err := HashPassword(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hashedPassword)
	assert.NotEqual(t, password, hashedPassword)

	// Test that same password produces different hashes (due to salt)
	hashedPassword2, err := HashPassword(password)
	require.NoError(t, err)
	assert.NotEqual(t, hashedPassword, hashedPassword2)
}

func TestVerifyPassword(t *testing.T) {
	password := "test-password-123"
	wrongPassword := "wrong-password"

	hashedPassword, err := HashPassword(password)
	require.NoError(t, err)

	// Test correct password
	err = VerifyPassword(hashedPassword, password)
	assert.NoError(t, err)

	// Test wrong password
	err = VerifyPassword(hashedPassword, wrongPassword)
	assert.Error(t, err)

	// Test invalid hash
	err = VerifyPassword("invalid-hash", password)
	assert.Error(t, err)
}

func TestGenerateSecretKey(t *testing.T) {
	secretKey, err := GenerateSecretKey()
	require.NoError(t, err)
	assert.NotEmpty(t, secretKey)
	assert.Len(t, secretKey, 64) // 32 bytes * 2 (hex encoding)

	// Test that multiple calls produce different keys
	secretKey2, err := GenerateSecretKey()
	require.NoError(t, err)
	assert.NotEqual(t, secretKey, secretKey2)
}

func setupTestDB(t *testing.T) *ent.Client {
	t.Helper()

	return enttest.NewEntClient(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
}

func setupServices(t *testing.T) (*AuthService, *UserService, *GroupService, *ent.Client) {
	t.Helper()

	client := setupTestDB(t)

	userService := NewUserService(UserServiceParams{
		Config:      Config{},
		CacheConfig: xcache.Config{},
		Ent:         client,
	})
	groupService := NewGroupService(GroupServiceParams{Ent: client})
	authService := NewAuthService(AuthServiceParams{
		JWT:         JWTConfig{Secret: "test-secret"},
		UserService: userService,
		Ent:         client,
	})

	return authService, userService, groupService, client
}

func createTestUser(t *testing.T, client *ent.Client, email, password string) *ent.User {
	t.Helper()

	ctx := context.Background()

	g, err := client.Group.Create().SetName("Group-" + email).Save(ctx)
	require.NoError(t, err)

	hashedPassword, err := HashPassword(password)
	require.NoError(t, err)

	u, err := client.User.Create().
		SetUsername("user-" + email).
		SetEmail(email).
		SetPassword(hashedPassword).
		SetGroupID(g.ID).
		Save(ctx)
	require.NoError(t, err)

	return u
}

func TestIssueAndValidateToken(t *testing.T) {
	authService, _, _, client := setupServices(t)
	ctx := context.Background()

	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	authService.now = func() time.Time { return issuedAt }

	u := createTestUser(t, client, "token@example.com", "password-123")

	token, err := authService.IssueToken(ctx, u, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := authService.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.Sub)
	assert.Equal(t, u.Email, claims.User.Email)
	assert.Equal(t, u.Username, claims.User.Username)
	assert.Equal(t, issuedAt.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, issuedAt.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestValidateToken_Expired(t *testing.T) {
	authService, _, _, client := setupServices(t)
	ctx := context.Background()

	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	authService.now = func() time.Time { return issuedAt }

	u := createTestUser(t, client, "expired@example.com", "password-123")

	token, err := authService.IssueToken(ctx, u, time.Hour)
	require.NoError(t, err)

	// Still valid just before the deadline.
	authService.now = func() time.Time { return issuedAt.Add(time.Hour - time.Second) }

	_, err = authService.ValidateToken(ctx, token)
	require.NoError(t, err)

	// Invalid once the deadline has passed.
	authService.now = func() time.Time { return issuedAt.Add(time.Hour + time.Second) }

	_, err = authService.ValidateToken(ctx, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestValidateToken_Garbage(t *testing.T) {
	authService, _, _, _ := setupServices(t)
	ctx := context.Background()

	_, err := authService.ValidateToken(ctx, "not-a-jwt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	authService, userService, _, client := setupServices(t)
	ctx := context.Background()

	u := createTestUser(t, client, "secret@example.com", "password-123")

	token, err := authService.IssueToken(ctx, u, time.Hour)
	require.NoError(t, err)

	other := NewAuthService(AuthServiceParams{
		JWT:         JWTConfig{Secret: "a-different-secret"},
		UserService: userService,
		Ent:         client,
	})

	_, err = other.ValidateToken(ctx, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthenticateUser(t *testing.T) {
	authService, _, _, client := setupServices(t)
	ctx := context.Background()

	u := createTestUser(t, client, "login@example.com", "password-123")

	got, err := authService.AuthenticateUser(ctx, "login@example.com", "password-123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	require.NotNil(t, got.Edges.Group)

	_, err = authService.AuthenticateUser(ctx, "login@example.com", "wrong-password")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = authService.AuthenticateUser(ctx, "nobody@example.com", "password-123")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthenticateToken(t *testing.T) {
	authService, userService, _, client := setupServices(t)
	ctx := context.Background()

	u := createTestUser(t, client, "bearer@example.com", "password-123")

	token, err := authService.IssueLoginToken(ctx, u)
	require.NoError(t, err)

	got, err := authService.AuthenticateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	// A tombstoned user fails token authentication even with a valid token.
	require.NoError(t, userService.DeleteUser(ctx, u.ID))

	_, err = authService.AuthenticateToken(ctx, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestIssueRefreshedToken(t *testing.T) {
	authService, userService, _, client := setupServices(t)
	ctx := context.Background()

	u := createTestUser(t, client, "refresh@example.com", "password-123")

	// Refresh embeds the current identity, not the one captured at login.
	newName := "renamed"
	_, err := userService.UpdateUser(ctx, u.ID, UpdateUserInput{Username: &newName})
	require.NoError(t, err)

	token, err := authService.IssueRefreshedToken(ctx, u.ID)
	require.NoError(t, err)

	claims, err := authService.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "renamed", claims.User.Username)

	// Refreshed tokens carry the default TTL, not the login one.
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, DefaultTokenTTL, ttl)

	require.NoError(t, userService.DeleteUser(ctx, u.ID))

	_, err = authService.IssueRefreshedToken(ctx, u.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestLoginTokenTTL(t *testing.T) {
	authService, _, _, client := setupServices(t)
	ctx := context.Background()

	u := createTestUser(t, client, "ttl@example.com", "password-123")

	token, err := authService.IssueLoginToken(ctx, u)
	require.NoError(t, err)

	claims, err := authService.ValidateToken(ctx, token)
	require.NoError(t, err)

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, DefaultLoginTokenTTL, ttl)
}
