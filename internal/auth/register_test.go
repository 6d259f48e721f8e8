package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/red-stick-digital/brga-backend/internal/groups"
	"github.com/red-stick-digital/brga-backend/internal/profiles"
	"github.com/red-stick-digital/brga-backend/internal/roles"
	"github.com/red-stick-digital/brga-backend/internal/users"
	"github.com/red-stick-digital/brga-backend/pkg/config"
	pkgmodels "github.com/red-stick-digital/brga-backend/pkg/db/models"
	"github.com/red-stick-digital/brga-backend/pkg/enums"
	pkgerrors "github.com/red-stick-digital/brga-backend/pkg/errors"
)

type stubTxRunner struct{}

func (s stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type stubRegisterUserRepo struct {
	data    map[string]*pkgmodels.User
	created *pkgmodels.User
}

func newStubRegisterUserRepo() *stubRegisterUserRepo {
	return &stubRegisterUserRepo{data: map[string]*pkgmodels.User{}}
}

func (s *stubRegisterUserRepo) FindByEmail(_ context.Context, email string) (*pkgmodels.User, error) {
	if user, ok := s.data[email]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRegisterUserRepo) Create(_ context.Context, dto users.CreateUserDTO) (*pkgmodels.User, error) {
	user := &pkgmodels.User{
		ID:           uuid.New(),
		Email:        dto.Email,
		PasswordHash: dto.PasswordHash,
	}
	s.data[dto.Email] = user
	s.created = user
	return user, nil
}

type stubProfileRepo struct {
	created *pkgmodels.MemberProfile
}

func (s *stubProfileRepo) Create(_ context.Context, dto profiles.CreateProfileDTO) (*pkgmodels.MemberProfile, error) {
	profile := dto.ToModel()
	profile.ID = uuid.New()
	s.created = profile
	return profile, nil
}

type stubRegisterRoleRepo struct {
	created *pkgmodels.UserRole
}

func (s *stubRegisterRoleRepo) Create(_ context.Context, dto roles.CreateRoleDTO) (*pkgmodels.UserRole, error) {
	role := dto.ToModel()
	role.ID = uuid.New()
	s.created = role
	return role, nil
}

type stubGroupRepo struct {
	existing     map[string]*pkgmodels.HomeGroup
	placeholders []string
}

func newStubGroupRepo() *stubGroupRepo {
	return &stubGroupRepo{existing: map[string]*pkgmodels.HomeGroup{}}
}

func (s *stubGroupRepo) FindByName(_ context.Context, name string) (*pkgmodels.HomeGroup, error) {
	if group, ok := s.existing[name]; ok {
		return group, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubGroupRepo) CreatePlaceholder(_ context.Context, name string) (*pkgmodels.HomeGroup, error) {
	group := &pkgmodels.HomeGroup{
		ID:          uuid.New(),
		Name:        name,
		MeetingTime: groups.PlaceholderValue,
	}
	s.existing[name] = group
	s.placeholders = append(s.placeholders, name)
	return group, nil
}

type registerTestSetup struct {
	service     RegisterService
	userRepo    *stubRegisterUserRepo
	profileRepo *stubProfileRepo
	roleRepo    *stubRegisterRoleRepo
	groupRepo   *stubGroupRepo
}

func newRegisterTestSetup(t *testing.T) *registerTestSetup {
	t.Helper()
	userRepo := newStubRegisterUserRepo()
	profileRepo := &stubProfileRepo{}
	roleRepo := &stubRegisterRoleRepo{}
	groupRepo := newStubGroupRepo()
	svc, err := NewRegisterService(RegisterServiceParams{
		TxRunner: stubTxRunner{},
		UserRepoFactory: func(tx *gorm.DB) registerUserRepository {
			return userRepo
		},
		ProfileRepoFactory: func(tx *gorm.DB) registerProfileRepository {
			return profileRepo
		},
		RoleRepoFactory: func(tx *gorm.DB) registerRoleRepository {
			return roleRepo
		},
		GroupRepoFactory: func(tx *gorm.DB) registerGroupRepository {
			return groupRepo
		},
		PasswordConfig: config.PasswordConfig{},
	})
	if err != nil {
		t.Fatalf("new register service: %v", err)
	}
	return &registerTestSetup{
		service:     svc,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		roleRepo:    roleRepo,
		groupRepo:   groupRepo,
	}
}

func TestRegisterCreatesUserProfileAndPendingRole(t *testing.T) {
	setup := newRegisterTestSetup(t)

	err := setup.service.Register(context.Background(), RegisterRequest{
		FirstName: "Jamie",
		LastName:  "Rivera",
		Email:     "Jamie.Rivera@Example.com",
		Password:  "Secret123!",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if setup.userRepo.created == nil {
		t.Fatalf("expected user to be created")
	}
	if setup.userRepo.created.Email != "jamie.rivera@example.com" {
		t.Fatalf("expected lowercased email, got %s", setup.userRepo.created.Email)
	}
	if setup.profileRepo.created == nil {
		t.Fatalf("expected profile to be created")
	}
	if setup.profileRepo.created.UserID != setup.userRepo.created.ID {
		t.Fatalf("profile not linked to created user")
	}
	if setup.roleRepo.created == nil {
		t.Fatalf("expected role row to be created")
	}
	if setup.roleRepo.created.Role != enums.MemberRoleMember {
		t.Fatalf("expected member role, got %s", setup.roleRepo.created.Role)
	}
	if setup.roleRepo.created.ApprovalStatus != enums.ApprovalStatusPending {
		t.Fatalf("expected pending approval, got %s", setup.roleRepo.created.ApprovalStatus)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	setup := newRegisterTestSetup(t)
	setup.userRepo.data["taken@example.com"] = &pkgmodels.User{
		ID:    uuid.New(),
		Email: "taken@example.com",
	}

	err := setup.service.Register(context.Background(), RegisterRequest{
		FirstName: "Jamie",
		LastName:  "Rivera",
		Email:     "taken@example.com",
		Password:  "Secret123!",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestRegisterCreatesPlaceholderGroup(t *testing.T) {
	setup := newRegisterTestSetup(t)
	groupName := "Primary Purpose"

	err := setup.service.Register(context.Background(), RegisterRequest{
		FirstName:     "Jamie",
		LastName:      "Rivera",
		Email:         "jamie@example.com",
		Password:      "Secret123!",
		HomeGroupName: &groupName,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if len(setup.groupRepo.placeholders) != 1 || setup.groupRepo.placeholders[0] != groupName {
		t.Fatalf("expected placeholder group %q, got %v", groupName, setup.groupRepo.placeholders)
	}
	if setup.profileRepo.created.HomeGroupID == nil {
		t.Fatalf("expected profile to reference the new group")
	}
}

func TestRegisterRejectsBadCleanDate(t *testing.T) {
	setup := newRegisterTestSetup(t)
	bad := "06/01/2010"

	err := setup.service.Register(context.Background(), RegisterRequest{
		FirstName: "Jamie",
		LastName:  "Rivera",
		Email:     "jamie@example.com",
		Password:  "Secret123!",
		CleanDate: &bad,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
