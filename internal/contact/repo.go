package contact

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/red-stick-digital/brga-backend/pkg/db/models"
	"github.com/red-stick-digital/brga-backend/pkg/enums"
)

// SpeakerRequestRepository persists speaker requests.
type SpeakerRequestRepository struct {
	db *gorm.DB
}

// NewSpeakerRequestRepository constructs the repo bound to the provided GORM DB.
func NewSpeakerRequestRepository(db *gorm.DB) *SpeakerRequestRepository {
	return &SpeakerRequestRepository{db: db}
}

// Create inserts a new speaker request.
func (r *SpeakerRequestRepository) Create(ctx context.Context, request *models.SpeakerRequest) error {
	if request.Status == "" {
		request.Status = enums.SpeakerRequestStatusNew
	}
	return r.db.WithContext(ctx).Create(request).Error
}

// ListByStatus returns requests matching the given status, newest first.
func (r *SpeakerRequestRepository) ListByStatus(ctx context.Context, status enums.SpeakerRequestStatus) ([]models.SpeakerRequest, error) {
	var rows []models.SpeakerRequest
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// MarkHandled transitions the request to handled.
func (r *SpeakerRequestRepository) MarkHandled(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.SpeakerRequest{}).
		Where("id = ? AND status = ?", id, enums.SpeakerRequestStatusNew).
		UpdateColumn("status", enums.SpeakerRequestStatusHandled)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
