package groups

import (
	"time"

	"github.com/google/uuid"

	"github.com/red-stick-digital/brga-backend/pkg/db/models"
)

// GroupDTO is the transport shape for a home group.
type GroupDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	MeetingTime string    `json:"meeting_time"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Zip         string    `json:"zip"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateGroupDTO holds the data required to persist a new group.
type CreateGroupDTO struct {
	Name        string
	MeetingTime string
	Address     string
	City        string
	State       string
	Zip         string
}

func FromModel(g *models.HomeGroup) *GroupDTO {
	if g == nil {
		return nil
	}
	return &GroupDTO{
		ID:          g.ID,
		Name:        g.Name,
		MeetingTime: g.MeetingTime,
		Address:     g.Address,
		City:        g.City,
		State:       g.State,
		Zip:         g.Zip,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func (c CreateGroupDTO) ToModel() *models.HomeGroup {
	orPlaceholder := func(v string) string {
		if v == "" {
			return PlaceholderValue
		}
		return v
	}
	return &models.HomeGroup{
		Name:        c.Name,
		MeetingTime: orPlaceholder(c.MeetingTime),
		Address:     orPlaceholder(c.Address),
		City:        orPlaceholder(c.City),
		State:       orPlaceholder(c.State),
		Zip:         orPlaceholder(c.Zip),
	}
}
