package roles

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/red-stick-digital/brga-backend/pkg/db/models"
	"github.com/red-stick-digital/brga-backend/pkg/enums"
)

// Repository exposes role-row persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a roles repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a role row for the user.
func (r *Repository) Create(ctx context.Context, dto CreateRoleDTO) (*models.UserRole, error) {
	role := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(role).Error; err != nil {
		return nil, err
	}
	return role, nil
}

// FindByUserID loads the role row belonging to the provided user.
func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.UserRole, error) {
	var role models.UserRole
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// UpdateApprovalStatus moves a user's role row to the given status.
func (r *Repository) UpdateApprovalStatus(ctx context.Context, userID uuid.UUID, status enums.ApprovalStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.UserRole{}).
		Where("user_id = ?", userID).
		UpdateColumn("approval_status", status).Error
}

// UpdateRole changes the role assigned to a user.
func (r *Repository) UpdateRole(ctx context.Context, userID uuid.UUID, role enums.MemberRole) error {
	return r.db.WithContext(ctx).
		Model(&models.UserRole{}).
		Where("user_id = ?", userID).
		UpdateColumn("role", role).Error
}

// ListMissingForUsers returns the subset of userIDs that have no role row.
func (r *Repository) ListMissingForUsers(ctx context.Context, userIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var present []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&models.UserRole{}).
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
