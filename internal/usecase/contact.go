package usecase

import (
	"context"
	"net/http"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/mailer"
	"go-portfolio-backend/pkg/validation"
)

type contactUsecase struct {
	mailer      mailer.Mailer
	mailTimeout time.Duration
}

// NewContactUsecase creates a new contact usecase. mailTimeout bounds the
// outbound Resend call; the upstream design had no timeout at all, which left
// the handler hostage to a slow provider.
func NewContactUsecase(m mailer.Mailer, mailTimeout time.Duration) domain.ContactUsecase {
	return &contactUsecase{
		mailer:      m,
		mailTimeout: mailTimeout,
	}
}

// ClassifySubmission runs the abuse heuristics in pipeline order and returns
// the first matching outcome. Pure function of its input.
func ClassifySubmission(req *domain.ContactRequest) domain.Outcome {
	if validation.ContainsSpam(req.Name, req.Email, req.Message) {
		return domain.OutcomeSpamDetected
	}
	if validation.RuneLen(req.Message) > validation.MaxMessageLen {
		return domain.OutcomeTooLong
	}
	if validation.HasDisposableMarker(req.Email) {
		return domain.OutcomeDisposableEmail
	}
	return domain.OutcomeClean
}

// SendContactMessage re-validates the submission (the client is never
// trusted), applies the abuse heuristics, and dispatches the email. Checks
// short-circuit: the error always reflects the first failing rule.
//
// The server intentionally keeps a combined "name or message too short"
// response where the form validator reports the two fields separately; the
// coarser message is part of the public contract.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return domain.ErrMissingFields
	}
	if validation.RuneLen(req.Name) < validation.MinNameLen ||
		validation.RuneLen(req.Message) < validation.MinMessageLen {
		return domain.ErrTooShort
	}
	if !validation.ValidEmail(req.Email) {
		return domain.ErrInvalidEmail
	}

	switch ClassifySubmission(req) {
	case domain.OutcomeSpamDetected:
		return domain.ErrSpamBlocked
	case domain.OutcomeTooLong:
		return domain.ErrMessageTooLong
	case domain.OutcomeDisposableEmail:
		return domain.ErrDisposableEmail
	}

	sendCtx, cancel := context.WithTimeout(ctx, uc.mailTimeout)
	defer cancel()

	data := mailer.ContactEmailData{
		SenderName:  req.Name,
		SenderEmail: req.Email,
		Message:     req.Message,
	}
	if err := uc.mailer.SendContactEmail(sendCtx, data); err != nil {
		logger.Log.Error("contact email delivery failed", "error", err, "sender", req.Email)
		return apperror.New(http.StatusInternalServerError, "Erro ao enviar mensagem", err)
	}

	return nil
}
