package announcements

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/red-stick-digital/brga-backend/pkg/db/models"
	pkgerrors "github.com/red-stick-digital/brga-backend/pkg/errors"
	"github.com/red-stick-digital/brga-backend/pkg/pagination"
)

// Service defines announcement read/write operations.
type Service interface {
	List(ctx context.Context, params ListParams) (*ListResult, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Announcement, error)
	Create(ctx context.Context, req CreateRequest) (*models.Announcement, error)
	Publish(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// ListParams configures pagination for announcements.
type ListParams struct {
	Limit         int
	Cursor        string
	PublishedOnly bool
}

// ListResult wraps returned announcements and the cursor for the next page.
type ListResult struct {
	Items  []models.Announcement `json:"items"`
	Cursor string                `json:"cursor"`
}

// CreateRequest carries a new announcement draft.
type CreateRequest struct {
	Title    string    `json:"title" validate:"required"`
	Body     string    `json:"body" validate:"required"`
	AuthorID uuid.UUID `json:"-"`
	Publish  bool      `json:"publish"`
}

// NewService wires announcement dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "announcements repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	query := listParams{
		Limit:         params.Limit,
		PublishedOnly: params.PublishedOnly,
	}
	if params.Cursor != "" {
		cursor, err := pagination.ParseCursor(params.Cursor)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
		}
		query.Cursor = cursor
	}

	rows, next, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list announcements")
	}

	cursor := ""
	if next != nil {
		cursor = pagination.EncodeCursor(*next)
	}

	return &ListResult{
		Items:  rows,
		Cursor: cursor,
	}, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Announcement, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "announcement id required")
	}
	announcement, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "announcement not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load announcement")
	}
	return announcement, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*models.Announcement, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}
	if strings.TrimSpace(req.Body) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "body is required")
	}
	if req.AuthorID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "author id required")
	}

	announcement := &models.Announcement{
		Title:    strings.TrimSpace(req.Title),
		Body:     req.Body,
		AuthorID: req.AuthorID,
	}
	if req.Publish {
		now := time.Now().UTC()
		announcement.PublishedAt = &now
	}
	if err := s.repo.Create(ctx, announcement); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create announcement")
	}
	return announcement, nil
}

func (s *service) Publish(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "announcement id required")
	}
	updated, err := s.repo.Publish(ctx, id, time.Now().UTC())
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "publish announcement")
	}
	if !updated {
		return pkgerrors.New(pkgerrors.CodeNotFound, "announcement not found or already published")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "announcement id required")
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete announcement")
	}
	if !deleted {
		return pkgerrors.New(pkgerrors.CodeNotFound, "announcement not found")
	}
	return nil
}
