package mailer

import (
	"fmt"

	"github.com/resend/resend-go/v3"

	"candidate-tracker/internal/config"
)

// Service sends operator-facing alert mail. Sending is best-effort; the
// store logs failures and moves on.
type Service interface {
	SendDuplicateRejectionAlert(candidateName, nationalID, previousDate string) error
}

type service struct {
	client *resend.Client
	cfg    *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		cfg:    cfg,
	}
}

func (s *service) SendDuplicateRejectionAlert(candidateName, nationalID, previousDate string) error {
	if s.cfg.AlertEmail == "" {
		return nil
	}

	html := fmt.Sprintf(
		`<p>A new candidate <strong>%s</strong> (national id %s) was registered, `+
			`but this identity was previously rejected on %s.</p>`+
			`<p>Review the archive record before proceeding.</p>`,
		candidateName, nationalID, previousDate,
	)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Candidate Tracker <%s>", s.cfg.FromEmail),
		To:      []string{s.cfg.AlertEmail},
		Subject: fmt.Sprintf("Previously rejected candidate registered: %s", candidateName),
		Html:    html,
	}

	_, err := s.client.Emails.Send(params)
	return err
}
