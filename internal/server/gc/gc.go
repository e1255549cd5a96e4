package gc

import (
	"context"
	"fmt"
	"time"

	"github.com/zhenzou/executors"
	"go.uber.org/fx"

	"github.com/looplj/authhub/internal/ent"
	"github.com/looplj/authhub/internal/ent/group"
	"github.com/looplj/authhub/internal/ent/grouppermission"
	"github.com/looplj/authhub/internal/ent/user"
	"github.com/looplj/authhub/internal/ent/userpermission"
	"github.com/looplj/authhub/internal/log"
)

// defaultBatchSize is the default batch size for purge operations.
// This can be overridden for testing.
var defaultBatchSize = 500

type Config struct {
	Enabled bool   `conf:"enabled" yaml:"enabled" json:"enabled"`
	CRON    string `conf:"cron" yaml:"cron" json:"cron"`
	// Retention is how long tombstoned rows are kept before being purged.
	Retention time.Duration `conf:"retention" yaml:"retention" json:"retention"`
}

const (
	DefaultCRON      = "0 0 3 * * *"
	DefaultRetention = 30 * 24 * time.Hour
)

// Worker purges tombstoned users and groups past the retention window.
// Soft deletes keep rows for audit; the worker is what eventually reclaims
// them.
type Worker struct {
	Executor   executors.ScheduledExecutor
	Ent        *ent.Client
	Config     Config
	CancelFunc context.CancelFunc
}

type Params struct {
	fx.In

	Config Config
	Client *ent.Client
}

func NewWorker(params Params) *Worker {
	cfg := params.Config
	if cfg.CRON == "" {
		cfg.CRON = DefaultCRON
	}

	if cfg.Retention <= 0 {
		cfg.Retention = DefaultRetention
	}

	return &Worker{
		Executor: executors.NewPoolScheduleExecutor(executors.WithMaxConcurrent(1)),
		Ent:      params.Client,
		Config:   cfg,
	}
}

func (w *Worker) Start(ctx context.Context) error {
	if !w.Config.Enabled {
		log.Debug(ctx, "purge worker disabled")
		return nil
	}

	cancelFunc, err := w.Executor.ScheduleFuncAtCronRate(
		w.runPurge,
		executors.CRONRule{Expr: w.Config.CRON},
	)
	if err != nil {
		return err
	}

	w.CancelFunc = cancelFunc

	log.Info(ctx, "purge worker started",
		log.String("cron", w.Config.CRON),
		log.Duration("retention", w.Config.Retention),
	)

	return nil
}

func (w *Worker) Stop(ctx context.Context) error {
	if w.CancelFunc != nil {
		w.CancelFunc()
	}

	return w.Executor.Shutdown(ctx)
}

func (w *Worker) runPurge(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-w.Config.Retention)

	deletedUsers, err := w.purgeUsers(ctx, cutoff)
	if err != nil {
		log.Error(ctx, "failed to purge tombstoned users", log.Cause(err))
	}

	deletedGroups, err := w.purgeGroups(ctx, cutoff)
	if err != nil {
		log.Error(ctx, "failed to purge tombstoned groups", log.Cause(err))
	}

	log.Info(ctx, "purge completed",
		log.Time("cutoff", cutoff),
		log.Int("users", deletedUsers),
		log.Int("groups", deletedGroups),
	)
}

// purgeUsers hard-deletes users tombstoned before cutoff, batch by batch,
// together with their permission overrides.
func (w *Worker) purgeUsers(ctx context.Context, cutoff time.Time) (int, error) {
	totalDeleted := 0

	for {
		ids, err := w.Ent.User.Query().
			Where(user.DeletedAtNotNil()).
			Where(user.DeletedAtLTE(cutoff)).
			Order(ent.Asc(user.FieldID)).
			Limit(defaultBatchSize).
			IDs(ctx)
		if err != nil {
			return totalDeleted, fmt.Errorf("failed to query tombstoned users: %w", err)
		}

		if len(ids) == 0 {
			break
		}

		_, err = w.Ent.UserPermission.Delete().
			Where(userpermission.UserIDIn(ids...)).
			Exec(ctx)
		if err != nil {
			return totalDeleted, fmt.Errorf("failed to purge user overrides: %w", err)
		}

		deleted, err := w.Ent.User.Delete().
			Where(user.IDIn(ids...)).
			Exec(ctx)
		if err != nil {
			return totalDeleted, fmt.Errorf("failed to purge users: %w", err)
		}

		totalDeleted += deleted

		log.Debug(ctx, "purged batch of users", log.Int("batch_size", deleted))
	}

	return totalDeleted, nil
}

// purgeGroups hard-deletes groups tombstoned before cutoff together with
// their grants. Groups still referenced by any user row are skipped until
// those users are purged.
func (w *Worker) purgeGroups(ctx context.Context, cutoff time.Time) (int, error) {
	totalDeleted := 0

	for {
		ids, err := w.Ent.Group.Query().
			Where(group.DeletedAtNotNil()).
			Where(group.DeletedAtLTE(cutoff)).
			Where(group.Not(group.HasUsers())).
			Order(ent.Asc(group.FieldID)).
			Limit(defaultBatchSize).
			IDs(ctx)
		if err != nil {
			return totalDeleted, fmt.Errorf("failed to query tombstoned groups: %w", err)
		}

		if len(ids) == 0 {
			break
		}

		_, err = w.Ent.GroupPermission.Delete().
			Where(grouppermission.GroupIDIn(ids...)).
			Exec(ctx)
		if err != nil {
			return totalDeleted, fmt.Errorf("failed to purge group grants: %w", err)
		}

		deleted, err := w.Ent.Group.Delete().
			Where(group.IDIn(ids...)).
			Exec(ctx)
		if err != nil {
			return totalDeleted, fmt.Errorf("failed to purge groups: %w", err)
		}

		totalDeleted += deleted

		log.Debug(ctx, "purged batch of groups", log.Int("batch_size", deleted))
	}

	return totalDeleted, nil
}
