package repair

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/red-stick-digital/brga-backend/internal/roles"
	"github.com/red-stick-digital/brga-backend/pkg/db/models"
	"github.com/red-stick-digital/brga-backend/pkg/enums"
	"github.com/red-stick-digital/brga-backend/pkg/logger"
)

type backfillUserRepository interface {
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}

type backfillRoleRepository interface {
	ListMissingForUsers(ctx context.Context, userIDs []uuid.UUID) ([]uuid.UUID, error)
	Create(ctx context.Context, dto roles.CreateRoleDTO) (*models.UserRole, error)
}

type backfillProfileRepository interface {
	ListMissingForUsers(ctx context.Context, userIDs []uuid.UUID) ([]uuid.UUID, error)
}

// RoleBackfillJob finds accounts that have a profile but no role row and
// writes a default approved member role. Accounts without a profile are
// only logged, they need operator attention rather than a silent default.
type RoleBackfillJob struct {
	users    backfillUserRepository
	roles    backfillRoleRepository
	profiles backfillProfileRepository
	logg     *logger.Logger
}

// RoleBackfillJobParams bundle the job dependencies.
type RoleBackfillJobParams struct {
	UserRepo    backfillUserRepository
	RoleRepo    backfillRoleRepository
	ProfileRepo backfillProfileRepository
	Logger      *logger.Logger
}

// NewRoleBackfillJob constructs the backfill job.
func NewRoleBackfillJob(params RoleBackfillJobParams) (*RoleBackfillJob, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository required")
	}
	if params.RoleRepo == nil {
		return nil, fmt.Errorf("role repository required")
	}
	if params.ProfileRepo == nil {
		return nil, fmt.Errorf("profile repository required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &RoleBackfillJob{
		users:    params.UserRepo,
		roles:    params.RoleRepo,
		profiles: params.ProfileRepo,
		logg:     params.Logger,
	}, nil
}

// Name implements Job.
func (j *RoleBackfillJob) Name() string { return "role_backfill" }

// Run implements Job.
func (j *RoleBackfillJob) Run(ctx context.Context) error {
	userIDs, err := j.users.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	if len(userIDs) == 0 {
		return nil
	}

	missingRoles, err := j.roles.ListMissingForUsers(ctx, userIDs)
	if err != nil {
		return fmt.Errorf("scan missing roles: %w", err)
	}
	if len(missingRoles) == 0 {
		return nil
	}

	missingProfiles, err := j.profiles.ListMissingForUsers(ctx, missingRoles)
	if err != nil {
		return fmt.Errorf("scan missing profiles: %w", err)
	}
	noProfile := make(map[uuid.UUID]struct{}, len(missingProfiles))
	for _, id := range missingProfiles {
		noProfile[id] = struct{}{}
	}

	var errs error
	backfilled := 0
	for _, userID := range missingRoles {
		if _, ok := noProfile[userID]; ok {
			warnCtx := j.logg.WithField(ctx, "user_id", userID.String())
			j.logg.Warn(warnCtx, "account has neither profile nor role, skipping backfill")
			continue
		}
		if _, err := j.roles.Create(ctx, roles.CreateRoleDTO{
			UserID:         userID,
			Role:           enums.MemberRoleMember,
			ApprovalStatus: enums.ApprovalStatusApproved,
		}); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("backfill role for %s: %w", userID, err))
			continue
		}
		backfilled++
	}

	infoCtx := j.logg.WithField(ctx, "backfilled", backfilled)
	j.logg.Info(infoCtx, "role backfill pass complete")
	return errs
}
