package biz

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"github.com/looplj/authhub/internal/authz"
	"github.com/looplj/authhub/internal/ent"
	"github.com/looplj/authhub/internal/log"
)

type SystemServiceParams struct {
	fx.In

	Config       Config
	GroupService *GroupService
	UserService  *UserService
	Ent          *ent.Client
}

// SystemService owns first-boot bootstrap of the store.
type SystemService struct {
	*AbstractService

	Config       Config
	GroupService *GroupService
	UserService  *UserService
}

func NewSystemService(params SystemServiceParams) *SystemService {
	return &SystemService{
		AbstractService: &AbstractService{
			db: params.Ent,
		},
		Config:       params.Config,
		GroupService: params.GroupService,
		UserService:  params.UserService,
	}
}

// EnsureSeedData creates the built-in groups and the initial administrator
// account when the store is empty. It is idempotent and safe to run on every
// start.
func (s *SystemService) EnsureSeedData(ctx context.Context) error {
	client := s.entFromContext(ctx)

	groupCount, err := client.Group.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count groups: %w", err)
	}

	var adminGroupID int

	if groupCount == 0 {
		err = s.RunInTransaction(ctx, func(txCtx context.Context) error {
			txClient := s.entFromContext(txCtx)

			admin, err := txClient.Group.Create().
				SetName("Admin").
				SetProtected(true).
				Save(txCtx)
			if err != nil {
				return fmt.Errorf("failed to create admin group: %w", err)
			}

			adminGroupID = admin.ID

			if _, err := s.GroupService.reconcileGrants(txCtx, admin.ID, authz.AllPermissions()); err != nil {
				return err
			}

			users, err := txClient.Group.Create().
				SetName("User").
				Save(txCtx)
			if err != nil {
				return fmt.Errorf("failed to create user group: %w", err)
			}

			readOnly := []string{
				authz.PermGroupList, authz.PermGroupGet,
				authz.PermUserList, authz.PermUserGet,
			}
			if _, err := s.GroupService.reconcileGrants(txCtx, users.ID, readOnly); err != nil {
				return err
			}

			_, err = txClient.Group.Create().
				SetName("Guest").
				Save(txCtx)
			if err != nil {
				return fmt.Errorf("failed to create guest group: %w", err)
			}

			return nil
		})
		if err != nil {
			return err
		}

		log.Info(ctx, "seeded built-in groups")
	}

	userCount, err := client.User.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}

	if userCount > 0 {
		return nil
	}

	if adminGroupID == 0 {
		admin, err := client.Group.Query().First(ctx)
		if err != nil {
			return fmt.Errorf("failed to find a group for the initial admin: %w", err)
		}

		adminGroupID = admin.ID
	}

	email := s.Config.SeedAdminEmail
	if email == "" {
		email = "admin@localhost"
	}

	password := s.Config.SeedAdminPassword
	if password == "" {
		password, err = GenerateSecretKey()
		if err != nil {
			return err
		}

		log.Warn(ctx, "seed admin password not configured, generated one",
			log.String("email", email),
			log.String("password", password),
		)
	}

	_, err = s.UserService.CreateUser(ctx, CreateUserInput{
		Username: "Admin",
		Email:    email,
		Password: password,
		GroupID:  adminGroupID,
	})
	if err != nil {
		return fmt.Errorf("failed to create initial admin: %w", err)
	}

	log.Info(ctx, "seeded initial admin user", log.String("email", email))

	return nil
}
