package biz

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"

	"github.com/looplj/authhub/internal/authz"
	"github.com/looplj/authhub/internal/ent"
	"github.com/looplj/authhub/internal/ent/group"
	"github.com/looplj/authhub/internal/ent/grouppermission"
	"github.com/looplj/authhub/internal/ent/user"
	"github.com/looplj/authhub/internal/ent/userpermission"
	"github.com/looplj/authhub/internal/log"
	"github.com/looplj/authhub/internal/pkg/xcache"
)

type UserServiceParams struct {
	fx.In

	Config      Config
	CacheConfig xcache.Config
	Ent         *ent.Client
}

type UserService struct {
	*AbstractService

	Config    Config
	UserCache xcache.Cache[ent.User]
}

func NewUserService(params UserServiceParams) *UserService {
	cfg := params.Config
	if cfg.DefaultGroupID == 0 {
		cfg.DefaultGroupID = DefaultGroupID
	}

	return &UserService{
		AbstractService: &AbstractService{
			db: params.Ent,
		},
		Config:    cfg,
		UserCache: xcache.NewFromConfig[ent.User](params.CacheConfig),
	}
}

type CreateUserInput struct {
	Username string
	Email    string
	Password string
	GroupID  int
}

type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
	GroupID  *int
}

// GetUserByID returns a live (non-tombstoned) user with its group and
// overrides loaded, caching the result.
func (s *UserService) GetUserByID(ctx context.Context, id int) (*ent.User, error) {
	cacheKey := buildUserCacheKey(id)
	if u, err := s.UserCache.Get(ctx, cacheKey); err == nil {
		return &u, nil
	}

	client := s.entFromContext(ctx)

	u, err := client.User.Query().
		Where(user.IDEQ(id)).
		Where(user.DeletedAtIsNil()).
		WithGroup().
		WithPermissions().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}

		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	err = s.UserCache.Set(ctx, cacheKey, *u)
	if err != nil {
		log.Warn(ctx, "failed to cache user", log.Cause(err))
	}

	return u, nil
}

// ListUsers returns all live users with their groups loaded.
func (s *UserService) ListUsers(ctx context.Context) ([]*ent.User, error) {
	client := s.entFromContext(ctx)

	users, err := client.User.Query().
		Where(user.DeletedAtIsNil()).
		WithGroup().
		Order(ent.Asc(user.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// Register creates a user bound to the default group, for the public
// registration operation.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*ent.User, error) {
	return s.CreateUser(ctx, CreateUserInput{
		Username: username,
		Email:    email,
		Password: password,
		GroupID:  s.Config.DefaultGroupID,
	})
}

// CreateUser creates a user in the given group with a hashed password.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*ent.User, error) {
	client := s.entFromContext(ctx)

	taken, err := client.User.Query().
		Where(user.EmailEQ(input.Email)).
		Where(user.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	if taken {
		return nil, fmt.Errorf("%w: user with this email address already exists", ErrConflict)
	}

	groupExists, err := client.Group.Query().
		Where(group.IDEQ(input.GroupID)).
		Where(group.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check group: %w", err)
	}

	if !groupExists {
		return nil, fmt.Errorf("%w: group %d", ErrNotFound, input.GroupID)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	u, err := client.User.Create().
		SetUsername(input.Username).
		SetEmail(input.Email).
		SetPassword(hashedPassword).
		SetGroupID(input.GroupID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: user with this email address already exists", ErrConflict)
		}

		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// UpdateUser applies the non-nil fields of input to an existing user.
func (s *UserService) UpdateUser(ctx context.Context, id int, input UpdateUserInput) (*ent.User, error) {
	client := s.entFromContext(ctx)

	exists, err := client.User.Query().
		Where(user.IDEQ(id)).
		Where(user.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !exists {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
	}

	if input.Email != nil {
		taken, err := client.User.Query().
			Where(user.EmailEQ(*input.Email)).
			Where(user.IDNEQ(id)).
			Where(user.DeletedAtIsNil()).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}

		if taken {
			return nil, fmt.Errorf("%w: user with this email address already exists", ErrConflict)
		}
	}

	if input.GroupID != nil {
		groupExists, err := client.Group.Query().
			Where(group.IDEQ(*input.GroupID)).
			Where(group.DeletedAtIsNil()).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check group: %w", err)
		}

		if !groupExists {
			return nil, fmt.Errorf("%w: group %d", ErrNotFound, *input.GroupID)
		}
	}

	mut := client.User.UpdateOneID(id).
		SetNillableUsername(input.Username).
		SetNillableEmail(input.Email).
		SetNillableGroupID(input.GroupID)

	if input.Password != nil {
		hashedPassword, err := HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}

		mut.SetPassword(hashedPassword)
	}

	u, err := mut.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: user with this email address already exists", ErrConflict)
		}

		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.invalidateUserCache(ctx, id)

	return u, nil
}

// DeleteUser tombstones a user. The user no longer authenticates or
// resolves; its rows remain for audit.
func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	client := s.entFromContext(ctx)

	u, err := client.User.Query().
		Where(user.IDEQ(id)).
		Where(user.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: user %d", ErrNotFound, id)
		}

		return fmt.Errorf("failed to get user: %w", err)
	}

	err = client.User.UpdateOne(u).
		SetDeletedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.invalidateUserCache(ctx, id)

	return nil
}

// SetPermissionOverride creates or updates the identity-level override for
// one permission name. An explicit deny here beats any group grant.
func (s *UserService) SetPermissionOverride(ctx context.Context, userID int, permission string, allow bool) error {
	client := s.entFromContext(ctx)

	exists, err := client.User.Query().
		Where(user.IDEQ(userID)).
		Where(user.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if !exists {
		return fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	override, err := client.UserPermission.Query().
		Where(userpermission.UserID(userID)).
		Where(userpermission.PermissionEQ(permission)).
		Only(ctx)

	switch {
	case err == nil:
		err = client.UserPermission.UpdateOne(override).
			SetAllow(allow).
			Exec(ctx)
	case ent.IsNotFound(err):
		err = client.UserPermission.Create().
			SetUserID(userID).
			SetPermission(permission).
			SetAllow(allow).
			Exec(ctx)
	}

	if err != nil {
		return fmt.Errorf("failed to set permission override: %w", err)
	}

	s.invalidateUserCache(ctx, userID)

	return nil
}

// RemovePermissionOverride deletes the identity-level override, falling the
// decision back to the group grant (or default deny).
func (s *UserService) RemovePermissionOverride(ctx context.Context, userID int, permission string) error {
	client := s.entFromContext(ctx)

	n, err := client.UserPermission.Delete().
		Where(userpermission.UserID(userID)).
		Where(userpermission.PermissionEQ(permission)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove permission override: %w", err)
	}

	if n == 0 {
		return fmt.Errorf("%w: no override for %q on user %d", ErrNotFound, permission, userID)
	}

	s.invalidateUserCache(ctx, userID)

	return nil
}

// GetSnapshot hydrates the immutable permission snapshot consumed by
// authz.Resolve: all overrides of the user plus all grants of its group.
func (s *UserService) GetSnapshot(ctx context.Context, userID int) (authz.Snapshot, error) {
	client := s.entFromContext(ctx)

	u, err := client.User.Query().
		Where(user.IDEQ(userID)).
		Where(user.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return authz.Snapshot{}, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}

		return authz.Snapshot{}, fmt.Errorf("failed to get user: %w", err)
	}

	overrides, err := client.UserPermission.Query().
		Where(userpermission.UserID(userID)).
		All(ctx)
	if err != nil {
		return authz.Snapshot{}, fmt.Errorf("failed to load overrides: %w", err)
	}

	grants, err := client.GroupPermission.Query().
		Where(grouppermission.GroupID(u.GroupID)).
		All(ctx)
	if err != nil {
		return authz.Snapshot{}, fmt.Errorf("failed to load group grants: %w", err)
	}

	snapshot := authz.Snapshot{
		UserID:      userID,
		Overrides:   make(map[string]bool, len(overrides)),
		GroupGrants: make(map[string]bool, len(grants)),
	}

	for _, o := range overrides {
		snapshot.Overrides[o.Permission] = o.Allow
	}

	for _, g := range grants {
		snapshot.GroupGrants[g.Permission] = g.Allow
	}

	return snapshot, nil
}

func buildUserCacheKey(id int) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *UserService) invalidateUserCache(ctx context.Context, id int) {
	_ = s.UserCache.Delete(ctx, buildUserCacheKey(id))
}
