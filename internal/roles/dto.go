package roles

import (
	"time"

	"github.com/google/uuid"

	"github.com/red-stick-digital/brga-backend/pkg/db/models"
	"github.com/red-stick-digital/brga-backend/pkg/enums"
)

// RoleDTO is the transport shape for a user's access-control row.
type RoleDTO struct {
	ID             uuid.UUID            `json:"id"`
	UserID         uuid.UUID            `json:"user_id"`
	Role           enums.MemberRole     `json:"role"`
	ApprovalStatus enums.ApprovalStatus `json:"approval_status"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// CreateRoleDTO holds the data required to persist a role row.
type CreateRoleDTO struct {
	UserID         uuid.UUID
	Role           enums.MemberRole
	ApprovalStatus enums.ApprovalStatus
}

func FromModel(m *models.UserRole) *RoleDTO {
	if m == nil {
		return nil
	}
	return &RoleDTO{
		ID:             m.ID,
		UserID:         m.UserID,
		Role:           m.Role,
		ApprovalStatus: m.ApprovalStatus,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func (c CreateRoleDTO) ToModel() *models.UserRole {
	role := c.Role
	if role == "" {
		role = enums.MemberRoleMember
	}
	status := c.ApprovalStatus
	if status == "" {
		status = enums.ApprovalStatusPending
	}
	return &models.UserRole{
		UserID:         c.UserID,
		Role:           role,
		ApprovalStatus: status,
	}
}
