package memberimport

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/red-stick-digital/brga-backend/pkg/config"
	"github.com/red-stick-digital/brga-backend/pkg/db/models"
	pkgerrors "github.com/red-stick-digital/brga-backend/pkg/errors"
	"github.com/red-stick-digital/brga-backend/pkg/logger"
	"github.com/red-stick-digital/brga-backend/pkg/metrics"
)

// Outcome is the terminal state of one input row.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailed  Outcome = "failed"
	OutcomeSkipped Outcome = "skipped"
)

// Result is the per-row outcome of a batch run.
type Result struct {
	RowNumber    int
	Email        string
	Name         string
	Outcome      Outcome
	Reason       string
	Warnings     []string
	TempPassword string
}

// Summary aggregates a whole batch run.
type Summary struct {
	Total      int
	Successful int
	Failed     int
	Skipped    int
	Results    []Result
}

type groupIDResolver interface {
	Resolve(ctx context.Context, name string) (*uuid.UUID, error)
}

type accountProvisioner interface {
	Provision(ctx context.Context, email string) (*models.User, string, error)
}

type profileRoleWriter interface {
	Write(ctx context.Context, userID uuid.UUID, member NormalizedMember, homeGroupID *uuid.UUID) error
}

type welcomeNotifier interface {
	Notify(ctx context.Context, email, displayName, tempPassword string) error
}

// Runner drives rows through normalize, resolve, provision, write and
// notify, strictly one row at a time.
type Runner struct {
	resolver    groupIDResolver
	provisioner accountProvisioner
	writer      profileRoleWriter
	notifier    welcomeNotifier
	logg        *logger.Logger
	jobMetrics  *metrics.JobMetrics
	delay       time.Duration
}

// RunnerParams bundles the orchestrator dependencies.
type RunnerParams struct {
	Resolver    groupIDResolver
	Provisioner accountProvisioner
	Writer      profileRoleWriter
	Notifier    welcomeNotifier
	Logger      *logger.Logger
	JobMetrics  *metrics.JobMetrics
	Import      config.ImportConfig
}

// NewRunner constructs the batch orchestrator.
func NewRunner(params RunnerParams) (*Runner, error) {
	if params.Resolver == nil {
		return nil, fmt.Errorf("group resolver is required")
	}
	if params.Provisioner == nil {
		return nil, fmt.Errorf("account provisioner is required")
	}
	if params.Writer == nil {
		return nil, fmt.Errorf("record writer is required")
	}
	if params.Notifier == nil {
		return nil, fmt.Errorf("welcome notifier is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &Runner{
		resolver:    params.Resolver,
		provisioner: params.Provisioner,
		writer:      params.Writer,
		notifier:    params.Notifier,
		logg:        params.Logger,
		jobMetrics:  params.JobMetrics,
		delay:       params.Import.RecordDelay,
	}, nil
}

// Run processes every row sequentially and returns the batch summary.
// The error is non-nil only when the context is cancelled mid-batch;
// per-row errors land in the summary instead.
func (r *Runner) Run(ctx context.Context, rows []Row) (*Summary, error) {
	started := time.Now()
	summary := &Summary{Total: len(rows)}

	for i, row := range rows {
		if i > 0 && r.delay > 0 {
			select {
			case <-ctx.Done():
				r.finish(started, summary)
				return summary, ctx.Err()
			case <-time.After(r.delay):
			}
		}
		if err := ctx.Err(); err != nil {
			r.finish(started, summary)
			return summary, err
		}

		result := r.processRow(ctx, i+1, row)
		summary.Results = append(summary.Results, result)
		switch result.Outcome {
		case OutcomeSuccess:
			summary.Successful++
		case OutcomeFailed:
			summary.Failed++
		case OutcomeSkipped:
			summary.Skipped++
		}
	}

	r.finish(started, summary)
	return summary, nil
}

func (r *Runner) finish(started time.Time, summary *Summary) {
	if r.jobMetrics != nil {
		r.jobMetrics.ObserveDuration("member_import", time.Since(started))
		if summary.Failed > 0 {
			r.jobMetrics.IncFailure("member_import")
		} else {
			r.jobMetrics.IncSuccess("member_import")
		}
	}
}

func (r *Runner) processRow(ctx context.Context, rowNumber int, row Row) Result {
	result := Result{
		RowNumber: rowNumber,
		Email:     strings.TrimSpace(row[ColEmail]),
		Name:      strings.TrimSpace(strings.TrimSpace(row[ColFirstName]) + " " + strings.TrimSpace(row[ColLastName])),
	}

	member, warnings, err := Normalize(row)
	if err != nil {
		var rejection *RejectionError
		if errors.As(err, &rejection) {
			result.Outcome = OutcomeSkipped
			result.Reason = rejection.Reason
			return result
		}
		result.Outcome = OutcomeSkipped
		result.Reason = err.Error()
		return result
	}
	result.Email = member.Email
	result.Name = member.DisplayName()
	result.Warnings = warnings

	rowCtx := r.logg.WithField(ctx, "email", member.Email)

	homeGroupID, err := r.resolver.Resolve(rowCtx, member.HomeGroupName)
	if err != nil {
		// the member still migrates, just without a home group
		result.Warnings = append(result.Warnings, "home group resolution failed: "+err.Error())
		r.logg.Warn(rowCtx, "home group resolution failed: "+err.Error())
		homeGroupID = nil
	}

	user, tempPassword, err := r.provisioner.Provision(rowCtx, member.Email)
	if err != nil {
		result.Outcome = OutcomeFailed
		result.Reason = reasonFromError(err)
		return result
	}
	result.TempPassword = tempPassword

	if err := r.writer.Write(rowCtx, user.ID, *member, homeGroupID); err != nil {
		result.Outcome = OutcomeFailed
		result.Reason = reasonFromError(err)
		return result
	}

	if err := r.notifier.Notify(rowCtx, member.Email, member.DisplayName(), tempPassword); err != nil {
		result.Warnings = append(result.Warnings, "welcome email failed to send: "+err.Error())
		r.logg.Warn(rowCtx, "welcome email failed to send: "+err.Error())
	}

	result.Outcome = OutcomeSuccess
	r.logg.Info(rowCtx, "member migrated")
	return result
}

func reasonFromError(err error) string {
	if err == nil {
		return ""
	}
	if typed := pkgerrors.As(err); typed != nil {
		return typed.Message()
	}
	return err.Error()
}
