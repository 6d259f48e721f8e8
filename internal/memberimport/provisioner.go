package memberimport

import (
	"context"
	"time"

	"github.com/red-stick-digital/brga-backend/internal/users"
	"github.com/red-stick-digital/brga-backend/pkg/config"
	"github.com/red-stick-digital/brga-backend/pkg/db"
	"github.com/red-stick-digital/brga-backend/pkg/db/models"
	pkgerrors "github.com/red-stick-digital/brga-backend/pkg/errors"
	"github.com/red-stick-digital/brga-backend/pkg/security"
)

// ErrDuplicateEmailMessage is the per-record rejection reason for emails
// that already have an account.
const ErrDuplicateEmailMessage = "User with this email already exists"

type provisionUserRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error)
}

// Provisioner creates login accounts with generated temporary passwords.
type Provisioner struct {
	repo        provisionUserRepository
	passwordCfg config.PasswordConfig
	importCfg   config.ImportConfig
}

// NewProvisioner constructs an account provisioner.
func NewProvisioner(repo provisionUserRepository, passwordCfg config.PasswordConfig, importCfg config.ImportConfig) *Provisioner {
	return &Provisioner{
		repo:        repo,
		passwordCfg: passwordCfg,
		importCfg:   importCfg,
	}
}

// Provision creates an account for the email with a temporary password.
// The account is marked migrated and email-verified so the member can log
// in immediately with the issued credential.
//
// The exists check and the create are two separate calls; a concurrent
// writer can still slip in between them. The unique index on email makes
// the create fail rather than duplicate.
func (p *Provisioner) Provision(ctx context.Context, email string) (*models.User, string, error) {
	exists, err := p.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check existing account")
	}
	if exists {
		return nil, "", pkgerrors.New(pkgerrors.CodeConflict, ErrDuplicateEmailMessage)
	}

	tempPassword, err := security.GenerateTempPassword(p.importCfg.TempPasswordLength)
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate temp password")
	}
	hash, err := security.HashPassword(tempPassword, p.passwordCfg)
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash temp password")
	}

	now := time.Now().UTC()
	user, err := p.repo.Create(ctx, users.CreateUserDTO{
		Email:              email,
		PasswordHash:       hash,
		EmailVerified:      true,
		MustChangePassword: true,
		Migrated:           true,
		MigratedAt:         &now,
	})
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, "", pkgerrors.New(pkgerrors.CodeConflict, ErrDuplicateEmailMessage)
		}
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create account")
	}
	return user, tempPassword, nil
}
