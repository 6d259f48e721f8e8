package contact

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/red-stick-digital/brga-backend/pkg/config"
	"github.com/red-stick-digital/brga-backend/pkg/db/models"
	pkgerrors "github.com/red-stick-digital/brga-backend/pkg/errors"
	"github.com/red-stick-digital/brga-backend/pkg/logger"
	"github.com/red-stick-digital/brga-backend/pkg/mailer"
)

// MessageRequest is the public contact form payload.
type MessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body" validate:"required"`
}

// SpeakerRequestInput is the public speaker request payload.
type SpeakerRequestInput struct {
	Name      string  `json:"name" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone,omitempty"`
	EventDate *string `json:"event_date,omitempty"`
	Topic     string  `json:"topic"`
}

// Service handles public contact submissions.
type Service interface {
	SendMessage(ctx context.Context, req MessageRequest) error
	SubmitSpeakerRequest(ctx context.Context, req SpeakerRequestInput) (*models.SpeakerRequest, error)
}

type speakerRequestRepository interface {
	Create(ctx context.Context, request *models.SpeakerRequest) error
}

type service struct {
	mailer    mailer.Sender
	speakers  speakerRequestRepository
	mailerCfg config.MailerConfig
	logg      *logger.Logger
}

// ServiceParams bundles the contact service dependencies.
type ServiceParams struct {
	Mailer       mailer.Sender
	SpeakerRepo  speakerRequestRepository
	MailerConfig config.MailerConfig
	Logger       *logger.Logger
}

// NewService wires the contact service.
func NewService(params ServiceParams) (Service, error) {
	if params.Mailer == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "mail sender required")
	}
	if params.SpeakerRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "speaker request repository required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "logger required")
	}
	return &service{
		mailer:    params.Mailer,
		speakers:  params.SpeakerRepo,
		mailerCfg: params.MailerConfig,
		logg:      params.Logger,
	}, nil
}

func (s *service) SendMessage(ctx context.Context, req MessageRequest) error {
	if strings.TrimSpace(s.mailerCfg.ContactInbox) == "" {
		return pkgerrors.New(pkgerrors.CodeInternal, "contact inbox not configured")
	}

	body := fmt.Sprintf(
		"<p>From: %s &lt;%s&gt;</p><p>%s</p>",
		html.EscapeString(req.Name),
		html.EscapeString(req.Email),
		html.EscapeString(req.Body),
	)
	msgID, err := s.mailer.Send(ctx, mailer.Message{
		ToEmail: s.mailerCfg.ContactInbox,
		Subject: fmt.Sprintf("[Contact] %s", req.Subject),
		HTML:    body,
		Text:    fmt.Sprintf("From: %s <%s>\n\n%s", req.Name, req.Email, req.Body),
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "send contact email")
	}

	s.logg.Info(s.logg.WithField(ctx, "message_id", msgID), "contact message forwarded")
	return nil
}

func (s *service) SubmitSpeakerRequest(ctx context.Context, req SpeakerRequestInput) (*models.SpeakerRequest, error) {
	var eventDate *time.Time
	if req.EventDate != nil && strings.TrimSpace(*req.EventDate) != "" {
		parsed, err := time.Parse(time.DateOnly, strings.TrimSpace(*req.EventDate))
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "event_date must be YYYY-MM-DD")
		}
		eventDate = &parsed
	}

	request := &models.SpeakerRequest{
		RequesterName:  strings.TrimSpace(req.Name),
		RequesterEmail: strings.ToLower(strings.TrimSpace(req.Email)),
		RequesterPhone: req.Phone,
		EventDate:      eventDate,
		Topic:          strings.TrimSpace(req.Topic),
	}
	if err := s.speakers.Create(ctx, request); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store speaker request")
	}

	// notification failure does not fail the submission, the row is already stored
	if strings.TrimSpace(s.mailerCfg.ContactInbox) != "" {
		_, err := s.mailer.Send(ctx, mailer.Message{
			ToEmail: s.mailerCfg.ContactInbox,
			Subject: "New speaker request",
			HTML: fmt.Sprintf(
				"<p>%s &lt;%s&gt; requested a speaker.</p><p>Topic: %s</p>",
				html.EscapeString(request.RequesterName),
				html.EscapeString(request.RequesterEmail),
				html.EscapeString(request.Topic),
			),
			Text: fmt.Sprintf("%s <%s> requested a speaker.\nTopic: %s",
				request.RequesterName, request.RequesterEmail, request.Topic),
		})
		if err != nil {
			warnCtx := s.logg.WithField(ctx, "speaker_request_id", request.ID.String())
			s.logg.Warn(warnCtx, "speaker request notification failed: "+err.Error())
		}
	}

	return request, nil
}
