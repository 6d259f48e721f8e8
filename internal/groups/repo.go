package groups

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/red-stick-digital/brga-backend/pkg/db/models"
)

// PlaceholderValue is stored for schedule and address fields when a
// group row is created from a bare name during import.
const PlaceholderValue = "TBD"

// Repository exposes home-group persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a groups repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByName looks up a group by name, ignoring case and surrounding
// whitespace. Returns gorm.ErrRecordNotFound when no row matches.
func (r *Repository) FindByName(ctx context.Context, name string) (*models.HomeGroup, error) {
	var group models.HomeGroup
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name)).
		First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// FindByID loads a group by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.HomeGroup, error) {
	var group models.HomeGroup
	if err := r.db.WithContext(ctx).First(&group, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// CreatePlaceholder inserts a group row carrying only a name. Schedule
// and address fields receive PlaceholderValue until an admin fills them in.
func (r *Repository) CreatePlaceholder(ctx context.Context, name string) (*models.HomeGroup, error) {
	group := &models.HomeGroup{
		Name:        strings.TrimSpace(name),
		MeetingTime: PlaceholderValue,
		Address:     PlaceholderValue,
		City:        PlaceholderValue,
		State:       PlaceholderValue,
		Zip:         PlaceholderValue,
	}
	if err := r.db.WithContext(ctx).Create(group).Error; err != nil {
		return nil, err
	}
	return group, nil
}

// Create inserts a fully specified group.
func (r *Repository) Create(ctx context.Context, dto CreateGroupDTO) (*models.HomeGroup, error) {
	group := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(group).Error; err != nil {
		return nil, err
	}
	return group, nil
}

// List returns all groups ordered by name.
func (r *Repository) List(ctx context.Context) ([]models.HomeGroup, error) {
	var out []models.HomeGroup
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
