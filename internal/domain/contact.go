package domain

import (
	"context"

	"go-portfolio-backend/pkg/apperror"
)

// ContactRequest represents a contact form submission. It is a one-shot unit
// of work: never persisted, its lifecycle ends when the email is dispatched
// or the request is rejected.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,contact_email"`
	Message string `json:"message" validate:"required,min=10"`
}

// Outcome is the result of running the abuse heuristics against a submission.
type Outcome int

const (
	OutcomeClean Outcome = iota
	OutcomeSpamDetected
	OutcomeDisposableEmail
	OutcomeTooLong
)

func (o Outcome) String() string {
	switch o {
	case OutcomeClean:
		return "clean"
	case OutcomeSpamDetected:
		return "spam_detected"
	case OutcomeDisposableEmail:
		return "disposable_email"
	case OutcomeTooLong:
		return "too_long"
	default:
		return "unknown"
	}
}

// Rejection reasons, in pipeline order. Status codes and messages are part of
// the public wire contract and must not change.
var (
	ErrMissingFields   = apperror.BadRequest("Todos os campos são obrigatórios")
	ErrTooShort        = apperror.BadRequest("Nome ou mensagem muito curtos")
	ErrInvalidEmail    = apperror.BadRequest("Email inválido")
	ErrSpamBlocked     = apperror.Forbidden("Mensagem bloqueada")
	ErrMessageTooLong  = apperror.BadRequest("Mensagem muito longa")
	ErrDisposableEmail = apperror.Forbidden("Email temporário não permitido")
)

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates and sends a contact form message
	SendContactMessage(ctx context.Context, req *ContactRequest) error
}
