// Package mailer sends contact-form notifications through the Resend
// transactional email API.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/resend/resend-go/v2"

	"go-portfolio-backend/config"
)

// Mailer is the outbound email collaborator. The endpoint treats it as a
// black box that either resolves or rejects; delivery guarantees are the
// provider's problem.
type Mailer interface {
	SendContactEmail(ctx context.Context, data ContactEmailData) error
}

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Message     string
}

// ResendMailer sends contact emails to a fixed recipient via Resend.
type ResendMailer struct {
	client *resend.Client
	from   string
	to     string
}

// NewResendMailer creates a mailer backed by the Resend API.
func NewResendMailer(cfg *config.Config) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(cfg.ResendAPIKey),
		from:   cfg.ContactEmailFrom,
		to:     cfg.ContactEmailTo,
	}
}

// contactEmailTemplate is the HTML body for contact notifications. MessageHTML
// is pre-escaped with newlines converted to <br>.
const contactEmailTemplate = `<h2>Novo contato do portfólio</h2>
<p><strong>Nome:</strong> {{.SenderName}}</p>
<p><strong>Email:</strong> {{.SenderEmail}}</p>
<p><strong>Mensagem:</strong></p>
<p>{{.MessageHTML}}</p>`

var contactTmpl = template.Must(template.New("contact").Parse(contactEmailTemplate))

type contactEmailView struct {
	SenderName  string
	SenderEmail string
	MessageHTML template.HTML
}

// renderContactEmail builds the HTML body. The message is escaped first and
// its newlines become <br> so multi-line messages keep their shape.
func renderContactEmail(data ContactEmailData) (string, error) {
	escaped := template.HTMLEscapeString(data.Message)
	view := contactEmailView{
		SenderName:  data.SenderName,
		SenderEmail: data.SenderEmail,
		MessageHTML: template.HTML(strings.ReplaceAll(escaped, "\n", "<br>")),
	}

	var body bytes.Buffer
	if err := contactTmpl.Execute(&body, view); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}

// SendContactEmail sends a contact form email to the configured recipient.
// The caller is expected to bound ctx; Resend is awaited, never fire-and-forget.
func (m *ResendMailer) SendContactEmail(ctx context.Context, data ContactEmailData) error {
	html, err := renderContactEmail(data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		ReplyTo: data.SenderEmail,
		Subject: fmt.Sprintf("💼 Contato de %s", data.SenderName),
		Html:    html,
	}

	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
