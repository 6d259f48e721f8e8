package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgAuth "github.com/red-stick-digital/brga-backend/pkg/auth"
	"github.com/red-stick-digital/brga-backend/pkg/config"
	"github.com/red-stick-digital/brga-backend/pkg/db/models"
	"github.com/red-stick-digital/brga-backend/pkg/enums"
	pkgerrors "github.com/red-stick-digital/brga-backend/pkg/errors"
	"github.com/red-stick-digital/brga-backend/pkg/security"
)

func TestServiceLoginSuccess(t *testing.T) {
	password := "member-secret"
	hashed := mustHashPassword(t, password)
	user := &models.User{
		ID:                 uuid.New(),
		Email:              "member@example.com",
		PasswordHash:       hashed,
		MustChangePassword: true,
	}
	role := &models.UserRole{
		UserID:         user.ID,
		Role:           enums.MemberRoleMember,
		ApprovalStatus: enums.ApprovalStatusApproved,
	}
	cfg := config.JWTConfig{
		Secret:            "secret",
		Issuer:            "brga",
		ExpirationMinutes: 30,
	}

	svc, _, err := buildTestService(user, role, cfg)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    user.Email,
		Password: password,
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := pkgAuth.ParseAccessToken(cfg, resp.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.Role != enums.MemberRoleMember {
		t.Fatalf("expected member role claim, got %s", claims.Role)
	}
	if claims.ApprovalStatus != enums.ApprovalStatusApproved {
		t.Fatalf("expected approved claim, got %s", claims.ApprovalStatus)
	}
	if !resp.MustChangePassword {
		t.Fatalf("expected must_change_password to carry through")
	}
	if resp.RefreshToken == "" {
		t.Fatalf("expected refresh token to be set")
	}
}

func TestServiceLoginWrongPassword(t *testing.T) {
	hashed := mustHashPassword(t, "right-password")
	user := &models.User{
		ID:           uuid.New(),
		Email:        "member@example.com",
		PasswordHash: hashed,
	}
	role := &models.UserRole{
		UserID:         user.ID,
		Role:           enums.MemberRoleMember,
		ApprovalStatus: enums.ApprovalStatusApproved,
	}
	cfg := config.JWTConfig{Secret: "secret", Issuer: "brga", ExpirationMinutes: 30}

	svc, _, err := buildTestService(user, role, cfg)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	_, err = svc.Login(context.Background(), LoginRequest{
		Email:    user.Email,
		Password: "wrong-password",
	})
	if err == nil {
		t.Fatalf("expected unauthorized for wrong password")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestServiceLoginMissingRoleRow(t *testing.T) {
	password := "member-secret"
	hashed := mustHashPassword(t, password)
	user := &models.User{
		ID:           uuid.New(),
		Email:        "orphan@example.com",
		PasswordHash: hashed,
	}
	cfg := config.JWTConfig{Secret: "secret", Issuer: "brga", ExpirationMinutes: 30}

	svc, _, err := buildTestService(user, nil, cfg)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	_, err = svc.Login(context.Background(), LoginRequest{
		Email:    user.Email,
		Password: password,
	})
	if err == nil {
		t.Fatalf("expected unauthorized for user without role row")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestServiceChangePassword(t *testing.T) {
	current := "old-password"
	hashed := mustHashPassword(t, current)
	user := &models.User{
		ID:           uuid.New(),
		Email:        "member@example.com",
		PasswordHash: hashed,
	}
	role := &models.UserRole{
		UserID:         user.ID,
		Role:           enums.MemberRoleMember,
		ApprovalStatus: enums.ApprovalStatusApproved,
	}
	cfg := config.JWTConfig{Secret: "secret", Issuer: "brga", ExpirationMinutes: 30}

	svc, _, err := buildTestService(user, role, cfg)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	err = svc.ChangePassword(context.Background(), user.ID, ChangePasswordRequest{
		CurrentPassword: current,
		NewPassword:     "new-password-123",
	})
	if err != nil {
		t.Fatalf("change password: %v", err)
	}

	err = svc.ChangePassword(context.Background(), user.ID, ChangePasswordRequest{
		CurrentPassword: "not-the-password",
		NewPassword:     "new-password-456",
	})
	if err == nil {
		t.Fatalf("expected unauthorized for wrong current password")
	}

	err = svc.ChangePassword(context.Background(), user.ID, ChangePasswordRequest{
		CurrentPassword: current,
		NewPassword:     current,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for unchanged password, got %v", err)
	}
}

type stubUserRepo struct {
	user *models.User
}

func (s stubUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if s.user != nil && s.user.Email == email {
		return s.user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s stubUserRepo) UpdateLastLogin(context.Context, uuid.UUID, time.Time) error {
	return nil
}

func (s stubUserRepo) UpdatePasswordHash(context.Context, uuid.UUID, string) error {
	return nil
}

type stubRoleRepo struct {
	role *models.UserRole
}

func (s stubRoleRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*models.UserRole, error) {
	if s.role != nil && s.role.UserID == userID {
		return s.role, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubSessionManager struct {
	refreshToken string
	revoked      []string
}

func (s *stubSessionManager) Generate(context.Context, string) (string, error) {
	return s.refreshToken, nil
}

func (s *stubSessionManager) Rotate(_ context.Context, _, _ string) (string, string, error) {
	return uuid.NewString(), s.refreshToken, nil
}

func (s *stubSessionManager) Revoke(_ context.Context, accessID string) error {
	s.revoked = append(s.revoked, accessID)
	return nil
}

func buildTestService(user *models.User, role *models.UserRole, jwtCfg config.JWTConfig) (Service, *stubSessionManager, error) {
	sessionMgr := &stubSessionManager{refreshToken: "refresh-token"}
	svc, err := NewService(ServiceParams{
		UserRepo:       stubUserRepo{user: user},
		RoleRepo:       stubRoleRepo{role: role},
		SessionManager: sessionMgr,
		JWTConfig:      jwtCfg,
	})
	return svc, sessionMgr, err
}

func mustHashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.HashPassword(password, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}
