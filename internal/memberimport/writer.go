package memberimport

import (
	"context"

	"github.com/google/uuid"

	"github.com/red-stick-digital/brga-backend/internal/profiles"
	"github.com/red-stick-digital/brga-backend/internal/roles"
	"github.com/red-stick-digital/brga-backend/pkg/db/models"
	"github.com/red-stick-digital/brga-backend/pkg/enums"
	pkgerrors "github.com/red-stick-digital/brga-backend/pkg/errors"
	"github.com/red-stick-digital/brga-backend/pkg/logger"
)

type writerRoleRepository interface {
	Create(ctx context.Context, dto roles.CreateRoleDTO) (*models.UserRole, error)
}

type writerProfileRepository interface {
	Create(ctx context.Context, dto profiles.CreateProfileDTO) (*models.MemberProfile, error)
}

// RecordWriter writes the role and profile rows for a freshly provisioned
// account. The two writes are independent: a failed role write is logged
// and left for the repair worker, a failed profile write fails the record.
type RecordWriter struct {
	roles    writerRoleRepository
	profiles writerProfileRepository
	logg     *logger.Logger
}

// NewRecordWriter constructs a writer over the provided repos.
func NewRecordWriter(roleRepo writerRoleRepository, profileRepo writerProfileRepository, logg *logger.Logger) *RecordWriter {
	return &RecordWriter{
		roles:    roleRepo,
		profiles: profileRepo,
		logg:     logg,
	}
}

// Write persists the role row then the profile row for the member.
func (w *RecordWriter) Write(ctx context.Context, userID uuid.UUID, member NormalizedMember, homeGroupID *uuid.UUID) error {
	if _, err := w.roles.Create(ctx, roles.CreateRoleDTO{
		UserID:         userID,
		Role:           enums.MemberRoleMember,
		ApprovalStatus: enums.ApprovalStatusApproved,
	}); err != nil {
		warnCtx := w.logg.WithField(ctx, "user_id", userID.String())
		w.logg.Warn(warnCtx, "role write failed, continuing with profile: "+err.Error())
	}

	if _, err := w.profiles.Create(ctx, profiles.CreateProfileDTO{
		UserID:      userID,
		FirstName:   member.FirstName,
		LastName:    member.LastName,
		Email:       member.Email,
		Phone:       member.Phone,
		CleanDate:   member.CleanDate,
		HomeGroupID: homeGroupID,

		ListedInDirectory: member.ListedInDirectory,
		WillingToSponsor:  member.WillingToSponsor,
	}); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create profile")
	}
	return nil
}
