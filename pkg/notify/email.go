package notify

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/faretex/faretex/pkg/fares"
	"github.com/faretex/faretex/pkg/util"
	"github.com/rs/zerolog/log"
	"github.com/wneessen/go-mail"
)

type EmailManager struct {
	client *mail.Client

	fromAddress string
}

func (m *EmailManager) Setup() error {
	env := util.GetEnvironmentVariables()

	host := env["FARETEX_SMTP_HOST"]
	if host == "" {
		host = "localhost"
	}

	port := 587
	if env["FARETEX_SMTP_PORT"] != "" {
		if n, err := strconv.Atoi(env["FARETEX_SMTP_PORT"]); err == nil {
			port = n
		}
	}

	m.fromAddress = env["FARETEX_SMTP_FROM"]
	if m.fromAddress == "" {
		m.fromAddress = "no-reply@faretex.org.uk"
	}

	options := []mail.Option{mail.WithPort(port)}

	if env["FARETEX_SMTP_USERNAME"] != "" {
		options = append(options,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(env["FARETEX_SMTP_USERNAME"]),
			mail.WithPassword(env["FARETEX_SMTP_PASSWORD"]),
		)
	}

	client, err := mail.NewClient(host, options...)
	if err != nil {
		return err
	}

	m.client = client

	return nil
}

// SendValidatedDocument emails the validated NeTEx document back to the
// original submitter with the artifact attached.
func (m *EmailManager) SendValidatedDocument(event fares.NotificationEvent, document []byte) error {
	if event.SubmitterEmail == "" {
		log.Warn().Str("artifact", event.ObjectKey).Msg("Submission has no contact address, skipping notification")
		return nil
	}

	msg := mail.NewMsg()

	if err := msg.From(m.fromAddress); err != nil {
		return err
	}
	if err := msg.To(event.SubmitterEmail); err != nil {
		return err
	}

	msg.Subject(fmt.Sprintf("Your %s fares data is ready", event.OperatorName))
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"The fares data you submitted for %s has been converted to NeTEx and passed schema validation.\n\nThe validated document is attached.\n", event.OperatorName))

	if err := msg.AttachReader(event.ObjectKey, bytes.NewReader(document)); err != nil {
		return err
	}

	if err := m.client.DialAndSend(msg); err != nil {
		return err
	}

	log.Info().Str("target", event.SubmitterEmail).Str("artifact", event.ObjectKey).Msg("Sent notification email")

	return nil
}
