package profiles

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/red-stick-digital/brga-backend/pkg/db/models"
	"github.com/red-stick-digital/brga-backend/pkg/enums"
)

// Repository exposes member-profile persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a profiles repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new member profile.
func (r *Repository) Create(ctx context.Context, dto CreateProfileDTO) (*models.MemberProfile, error) {
	profile := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// FindByUserID loads the profile belonging to the provided user.
func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.MemberProfile, error) {
	var profile models.MemberProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update applies the patch to the profile owned by userID and reloads it.
func (r *Repository) Update(ctx context.Context, userID uuid.UUID, patch UpdateProfileDTO) (*models.MemberProfile, error) {
	updates := patch.ToUpdates()
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).
			Model(&models.MemberProfile{}).
			Where("user_id = ?", userID).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByUserID(ctx, userID)
}

// ListDirectory returns profiles that opted into the member directory,
// ordered by last then first name. Only approved members appear; a
// pending member who set the listed flag stays hidden until approval.
func (r *Repository) ListDirectory(ctx context.Context) ([]models.MemberProfile, error) {
	var profiles []models.MemberProfile
	if err := r.db.WithContext(ctx).
		Model(&models.MemberProfile{}).
		Joins("JOIN user_roles ON user_roles.user_id = member_profiles.user_id").
		Where("member_profiles.listed_in_directory = ?", true).
		Where("user_roles.approval_status IN ?", []enums.ApprovalStatus{
			enums.ApprovalStatusApproved,
			enums.ApprovalStatusSuperadmin,
		}).
		Order("member_profiles.last_name ASC, member_profiles.first_name ASC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// ListMissingForUsers returns the subset of userIDs that have no profile row.
func (r *Repository) ListMissingForUsers(ctx context.Context, userIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var present []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&models.MemberProfile{}).
		Where("user_id IN ?", userIDs).
		Pluck("user_id", &present).Error; err != nil {
		return nil, err
	}

	have := make(map[uuid.UUID]struct{}, len(present))
	for _, id := range present {
		have[id] = struct{}{}
	}
	var missing []uuid.UUID
	for _, id := range userIDs {
		if _, ok := have[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
