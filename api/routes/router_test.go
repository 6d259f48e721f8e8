package routes

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/red-stick-digital/brga-backend/internal/auth"
	"github.com/red-stick-digital/brga-backend/internal/directory"
	pkgAuth "github.com/red-stick-digital/brga-backend/pkg/auth"
	"github.com/red-stick-digital/brga-backend/pkg/auth/session"
	"github.com/red-stick-digital/brga-backend/pkg/config"
	"github.com/red-stick-digital/brga-backend/pkg/enums"
	"github.com/red-stick-digital/brga-backend/pkg/logger"
)

type stubAuthService struct{}

func (stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (stubAuthService) Refresh(ctx context.Context, req auth.RefreshRequest) (*auth.RefreshResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (stubAuthService) Logout(ctx context.Context, req auth.LogoutRequest) error {
	return nil
}

func (stubAuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req auth.ChangePasswordRequest) error {
	return nil
}

type stubRegisterService struct{}

func (stubRegisterService) Register(ctx context.Context, req auth.RegisterRequest) error {
	return nil
}

type stubSessionChecker struct{}

func (stubSessionChecker) HasSession(ctx context.Context, accessID string) (bool, error) {
	return true, nil
}

type stubDirectoryService struct{}

func (stubDirectoryService) List(ctx context.Context, params directory.ListParams) ([]directory.Entry, error) {
	return []directory.Entry{}, nil
}

func testRouter(t *testing.T) (http.Handler, config.JWTConfig) {
	t.Helper()
	jwtCfg := config.JWTConfig{Secret: "secret", Issuer: "issuer", ExpirationMinutes: 60}
	cfg := &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: jwtCfg,
	}
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	router := NewRouter(Deps{
		Config:           cfg,
		Logger:           logg,
		SessionChecker:   stubSessionChecker{},
		AuthService:      stubAuthService{},
		RegisterService:  stubRegisterService{},
		DirectoryService: stubDirectoryService{},
	})
	return router, jwtCfg
}

func mintToken(t *testing.T, cfg config.JWTConfig, role enums.MemberRole, status enums.ApprovalStatus) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(cfg, time.Now(), pkgAuth.AccessTokenPayload{
		UserID:         uuid.New(),
		Role:           role,
		ApprovalStatus: status,
		JTI:            session.NewAccessID(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestHealthLive(t *testing.T) {
	router, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}

func TestDirectoryRequiresAuth(t *testing.T) {
	router, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/directory", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestDirectoryBlocksPendingMembers(t *testing.T) {
	router, jwtCfg := testRouter(t)
	token := mintToken(t, jwtCfg, enums.MemberRoleMember, enums.ApprovalStatusPending)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/directory", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", rec.Code)
	}
}

func TestDirectoryAllowsApprovedMembers(t *testing.T) {
	router, jwtCfg := testRouter(t)
	token := mintToken(t, jwtCfg, enums.MemberRoleMember, enums.ApprovalStatusApproved)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/directory", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}

func TestAdminRoutesRejectMembers(t *testing.T) {
	router, jwtCfg := testRouter(t)
	token := mintToken(t, jwtCfg, enums.MemberRoleMember, enums.ApprovalStatusApproved)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/members/"+uuid.NewString()+"/approve", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", rec.Code)
	}
}
