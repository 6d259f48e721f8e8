package contact

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/red-stick-digital/brga-backend/pkg/config"
	"github.com/red-stick-digital/brga-backend/pkg/db/models"
	pkgerrors "github.com/red-stick-digital/brga-backend/pkg/errors"
	"github.com/red-stick-digital/brga-backend/pkg/logger"
	"github.com/red-stick-digital/brga-backend/pkg/mailer"
)

type stubSender struct {
	sent    []mailer.Message
	sendErr error
}

func (s *stubSender) Send(_ context.Context, msg mailer.Message) (string, error) {
	if s.sendErr != nil {
		return "", s.sendErr
	}
	s.sent = append(s.sent, msg)
	return "msg-id", nil
}

type stubSpeakerRepo struct {
	created []*models.SpeakerRequest
}

func (s *stubSpeakerRepo) Create(_ context.Context, request *models.SpeakerRequest) error {
	s.created = append(s.created, request)
	return nil
}

func newTestService(t *testing.T, sender *stubSender, repo *stubSpeakerRepo) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Mailer:      sender,
		SpeakerRepo: repo,
		MailerConfig: config.MailerConfig{
			ContactInbox: "board@example.org",
		},
		Logger: logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestSendMessageForwardsToInbox(t *testing.T) {
	sender := &stubSender{}
	svc := newTestService(t, sender, &stubSpeakerRepo{})

	err := svc.SendMessage(context.Background(), MessageRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Meeting times",
		Body:    "When does the Tuesday group meet?",
	})
	if err != nil {
		t.Fatalf("send message: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected one email, got %d", len(sender.sent))
	}
	if sender.sent[0].ToEmail != "board@example.org" {
		t.Fatalf("expected inbox recipient, got %s", sender.sent[0].ToEmail)
	}
}

func TestSendMessageMailerFailure(t *testing.T) {
	sender := &stubSender{sendErr: fmt.Errorf("smtp down")}
	svc := newTestService(t, sender, &stubSpeakerRepo{})

	err := svc.SendMessage(context.Background(), MessageRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Body:    "Hi",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestSubmitSpeakerRequestStoresRowDespiteMailFailure(t *testing.T) {
	sender := &stubSender{sendErr: fmt.Errorf("smtp down")}
	repo := &stubSpeakerRepo{}
	svc := newTestService(t, sender, repo)

	request, err := svc.SubmitSpeakerRequest(context.Background(), SpeakerRequestInput{
		Name:  "Chair Person",
		Email: "Chair@Example.COM",
		Topic: "Step study",
	})
	if err != nil {
		t.Fatalf("submit speaker request: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected stored speaker request")
	}
	if request.RequesterEmail != "chair@example.com" {
		t.Fatalf("expected lowercased email, got %s", request.RequesterEmail)
	}
}

func TestSubmitSpeakerRequestRejectsBadDate(t *testing.T) {
	svc := newTestService(t, &stubSender{}, &stubSpeakerRepo{})
	bad := "03/14/2026"

	_, err := svc.SubmitSpeakerRequest(context.Background(), SpeakerRequestInput{
		Name:      "Chair Person",
		Email:     "chair@example.com",
		EventDate: &bad,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
