package memberimport

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/red-stick-digital/brga-backend/pkg/db/models"
)

type groupRepository interface {
	FindByName(ctx context.Context, name string) (*models.HomeGroup, error)
	CreatePlaceholder(ctx context.Context, name string) (*models.HomeGroup, error)
}

// GroupResolver maps free-text group names onto home-group rows,
// creating placeholder rows for names it has never seen.
type GroupResolver struct {
	repo groupRepository
}

// NewGroupResolver constructs a resolver over the provided repo.
func NewGroupResolver(repo groupRepository) *GroupResolver {
	return &GroupResolver{repo: repo}
}

// Resolve returns the id of the matching group, creating a placeholder
// when no case-insensitive match exists. Blank input resolves to nil.
func (r *GroupResolver) Resolve(ctx context.Context, name string) (*uuid.UUID, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, nil
	}

	group, err := r.repo.FindByName(ctx, trimmed)
	if err == nil {
		return &group.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	group, err = r.repo.CreatePlaceholder(ctx, trimmed)
	if err != nil {
		return nil, err
	}
	return &group.ID, nil
}
