package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/red-stick-digital/brga-backend/internal/groups"
	"github.com/red-stick-digital/brga-backend/internal/profiles"
	"github.com/red-stick-digital/brga-backend/internal/roles"
	"github.com/red-stick-digital/brga-backend/internal/users"
	"github.com/red-stick-digital/brga-backend/pkg/config"
	"github.com/red-stick-digital/brga-backend/pkg/db/models"
	"github.com/red-stick-digital/brga-backend/pkg/enums"
	pkgerrors "github.com/red-stick-digital/brga-backend/pkg/errors"
	"github.com/red-stick-digital/brga-backend/pkg/security"
)

// RegisterRequest contains the payload required to self-register a member.
type RegisterRequest struct {
	FirstName     string  `json:"first_name" validate:"required"`
	LastName      string  `json:"last_name" validate:"required"`
	Email         string  `json:"email" validate:"required,email"`
	Password      string  `json:"password" validate:"required,min=8"`
	Phone         *string `json:"phone,omitempty"`
	CleanDate     *string `json:"clean_date,omitempty"`
	HomeGroupName *string `json:"home_group_name,omitempty"`
}

// RegisterService handles the member onboarding transaction.
type RegisterService interface {
	Register(ctx context.Context, req RegisterRequest) error
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type registerUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error)
}

type registerProfileRepository interface {
	Create(ctx context.Context, dto profiles.CreateProfileDTO) (*models.MemberProfile, error)
}

type registerRoleRepository interface {
	Create(ctx context.Context, dto roles.CreateRoleDTO) (*models.UserRole, error)
}

type registerGroupRepository interface {
	FindByName(ctx context.Context, name string) (*models.HomeGroup, error)
	CreatePlaceholder(ctx context.Context, name string) (*models.HomeGroup, error)
}

// RegisterServiceParams packages the dependencies for the registration flow.
// The repo factories receive the transaction handle so every write joins
// the same transaction.
type RegisterServiceParams struct {
	TxRunner           txRunner
	UserRepoFactory    func(tx *gorm.DB) registerUserRepository
	ProfileRepoFactory func(tx *gorm.DB) registerProfileRepository
	RoleRepoFactory    func(tx *gorm.DB) registerRoleRepository
	GroupRepoFactory   func(tx *gorm.DB) registerGroupRepository
	PasswordConfig     config.PasswordConfig
}

// DefaultRegisterServiceParams wires the real repositories over the
// provided transaction runner.
func DefaultRegisterServiceParams(runner txRunner, passwordCfg config.PasswordConfig) RegisterServiceParams {
	return RegisterServiceParams{
		TxRunner: runner,
		UserRepoFactory: func(tx *gorm.DB) registerUserRepository {
			return users.NewRepository(tx)
		},
		ProfileRepoFactory: func(tx *gorm.DB) registerProfileRepository {
			return profiles.NewRepository(tx)
		},
		RoleRepoFactory: func(tx *gorm.DB) registerRoleRepository {
			return roles.NewRepository(tx)
		},
		GroupRepoFactory: func(tx *gorm.DB) registerGroupRepository {
			return groups.NewRepository(tx)
		},
		PasswordConfig: passwordCfg,
	}
}

type registerService struct {
	params RegisterServiceParams
}

// NewRegisterService builds a registration service with the provided dependencies.
func NewRegisterService(params RegisterServiceParams) (RegisterService, error) {
	if params.TxRunner == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "transaction runner required")
	}
	if params.UserRepoFactory == nil || params.ProfileRepoFactory == nil ||
		params.RoleRepoFactory == nil || params.GroupRepoFactory == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "repository factories required")
	}
	return &registerService{params: params}, nil
}

func (s *registerService) Register(ctx context.Context, req RegisterRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	var cleanDate *time.Time
	if req.CleanDate != nil && strings.TrimSpace(*req.CleanDate) != "" {
		parsed, err := time.Parse("2006-01-02", strings.TrimSpace(*req.CleanDate))
		if err != nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "clean_date must be YYYY-MM-DD")
		}
		cleanDate = &parsed
	}

	passwordHash, err := security.HashPassword(req.Password, s.params.PasswordConfig)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	return s.params.TxRunner.WithTx(ctx, func(tx *gorm.DB) error {
		userRepo := s.params.UserRepoFactory(tx)
		profileRepo := s.params.ProfileRepoFactory(tx)
		roleRepo := s.params.RoleRepoFactory(tx)
		groupRepo := s.params.GroupRepoFactory(tx)

		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check user email")
		}

		user, err := userRepo.Create(ctx, users.CreateUserDTO{
			Email:        email,
			PasswordHash: passwordHash,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
		}

		createProfile := profiles.CreateProfileDTO{
			UserID:    user.ID,
			FirstName: strings.TrimSpace(req.FirstName),
			LastName:  strings.TrimSpace(req.LastName),
			Email:     email,
			Phone:     req.Phone,
			CleanDate: cleanDate,
		}

		if req.HomeGroupName != nil && strings.TrimSpace(*req.HomeGroupName) != "" {
			group, err := groupRepo.FindByName(ctx, *req.HomeGroupName)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				group, err = groupRepo.CreatePlaceholder(ctx, *req.HomeGroupName)
			}
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve home group")
			}
			createProfile.HomeGroupID = &group.ID
		}

		if _, err := profileRepo.Create(ctx, createProfile); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create profile")
		}

		if _, err := roleRepo.Create(ctx, roles.CreateRoleDTO{
			UserID:         user.ID,
			Role:           enums.MemberRoleMember,
			ApprovalStatus: enums.ApprovalStatusPending,
		}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create role")
		}

		return nil
	})
}
