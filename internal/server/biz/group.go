package biz

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.uber.org/fx"

	"github.com/looplj/authhub/internal/ent"
	"github.com/looplj/authhub/internal/ent/group"
	"github.com/looplj/authhub/internal/ent/grouppermission"
	"github.com/looplj/authhub/internal/log"
)

type GroupServiceParams struct {
	fx.In

	Ent *ent.Client
}

type GroupService struct {
	*AbstractService
}

func NewGroupService(params GroupServiceParams) *GroupService {
	return &GroupService{
		AbstractService: &AbstractService{
			db: params.Ent,
		},
	}
}

type CreateGroupInput struct {
	Name        string
	Permissions []string
}

type UpdateGroupInput struct {
	Name *string
	// Permissions, when non-nil, is the desired grant set the group is
	// reconciled against. Nil leaves the grants untouched.
	Permissions *[]string
}

// GetGroup returns a live group, optionally with its grants loaded.
func (s *GroupService) GetGroup(ctx context.Context, id int, includeGrants bool) (*ent.Group, error) {
	client := s.entFromContext(ctx)

	query := client.Group.Query().
		Where(group.IDEQ(id)).
		Where(group.DeletedAtIsNil())

	if includeGrants {
		query.WithPermissions()
	}

	g, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: group %d", ErrNotFound, id)
		}

		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return g, nil
}

// ListGroups returns all live groups.
func (s *GroupService) ListGroups(ctx context.Context) ([]*ent.Group, error) {
	client := s.entFromContext(ctx)

	groups, err := client.Group.Query().
		Where(group.DeletedAtIsNil()).
		Order(ent.Asc(group.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	return groups, nil
}

// CreateGroup creates a group and reconciles its grants against the desired
// permission names in one transaction.
func (s *GroupService) CreateGroup(ctx context.Context, input CreateGroupInput) (*ent.Group, error) {
	var created *ent.Group

	err := s.RunInTransaction(ctx, func(txCtx context.Context) error {
		client := s.entFromContext(txCtx)

		g, err := client.Group.Create().
			SetName(input.Name).
			Save(txCtx)
		if err != nil {
			return fmt.Errorf("failed to create group: %w", err)
		}

		if _, err := s.reconcileGrants(txCtx, g.ID, input.Permissions); err != nil {
			return err
		}

		created = g

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetGroup(ctx, created.ID, true)
}

// UpdateGroup renames a group and, when a desired permission set is given,
// reconciles its grants, all in one transaction.
func (s *GroupService) UpdateGroup(ctx context.Context, id int, input UpdateGroupInput) (*ent.Group, error) {
	if _, err := s.GetGroup(ctx, id, false); err != nil {
		return nil, err
	}

	err := s.RunInTransaction(ctx, func(txCtx context.Context) error {
		client := s.entFromContext(txCtx)

		err := client.Group.UpdateOneID(id).
			SetNillableName(input.Name).
			Exec(txCtx)
		if err != nil {
			return fmt.Errorf("failed to update group: %w", err)
		}

		if input.Permissions != nil {
			if _, err := s.reconcileGrants(txCtx, id, *input.Permissions); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetGroup(ctx, id, true)
}

// DeleteGroup tombstones a group. Protected groups are never deletable.
func (s *GroupService) DeleteGroup(ctx context.Context, id int) error {
	g, err := s.GetGroup(ctx, id, false)
	if err != nil {
		return err
	}

	if g.Protected {
		return fmt.Errorf("%w: cannot remove a protected group", ErrConflict)
	}

	client := s.entFromContext(ctx)

	err = client.Group.UpdateOne(g).
		SetDeletedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	return nil
}

// ReconcileGrants converts the group's current grant set into the desired
// one inside a single transaction and returns the final grants. Applying the
// same desired set twice is a no-op on the second call.
func (s *GroupService) ReconcileGrants(ctx context.Context, groupID int, desired []string) ([]*ent.GroupPermission, error) {
	if _, err := s.GetGroup(ctx, groupID, false); err != nil {
		return nil, err
	}

	var grants []*ent.GroupPermission

	err := s.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		grants, err = s.reconcileGrants(txCtx, groupID, desired)

		return err
	})
	if err != nil {
		return nil, err
	}

	return grants, nil
}

// reconcileGrants performs the diff/apply against the client bound to ctx,
// which must be transactional: grants named in desired are kept (flipping
// allow back to true when needed), grants not named are hard deleted, and
// missing names are created with allow=true.
func (s *GroupService) reconcileGrants(ctx context.Context, groupID int, desired []string) ([]*ent.GroupPermission, error) {
	client := s.entFromContext(ctx)

	desired = lo.Uniq(desired)
	desiredSet := make(map[string]bool, len(desired))

	for _, name := range desired {
		desiredSet[name] = true
	}

	current, err := client.GroupPermission.Query().
		Where(grouppermission.GroupID(groupID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load grants: %w", err)
	}

	existing := make(map[string]bool, len(current))

	for _, grant := range current {
		if !desiredSet[grant.Permission] {
			if err := client.GroupPermission.DeleteOne(grant).Exec(ctx); err != nil {
				return nil, fmt.Errorf("failed to remove grant %q: %w", grant.Permission, err)
			}

			continue
		}

		existing[grant.Permission] = true

		if !grant.Allow {
			err := client.GroupPermission.UpdateOne(grant).
				SetAllow(true).
				Exec(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to enable grant %q: %w", grant.Permission, err)
			}
		}
	}

	for _, name := range desired {
		if existing[name] {
			continue
		}

		err := client.GroupPermission.Create().
			SetGroupID(groupID).
			SetPermission(name).
			SetAllow(true).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create grant %q: %w", name, err)
		}
	}

	grants, err := client.GroupPermission.Query().
		Where(grouppermission.GroupID(groupID)).
		Order(ent.Asc(grouppermission.FieldPermission)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload grants: %w", err)
	}

	log.Debug(ctx, "group grants reconciled",
		log.Int("group_id", groupID),
		log.Int("grants", len(grants)),
	)

	return grants, nil
}
