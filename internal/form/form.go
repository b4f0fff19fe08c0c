// Package form implements the contact form's client-side state machine:
// per-field validation on every change, an in-flight guard against double
// submission, and localized success/error notifications.
package form

import (
	"context"
	"sync"
)

// Notifier receives user-facing feedback after a submit attempt (the toast
// layer, in UI terms).
type Notifier interface {
	Success(title, description string)
	Error(message string)
}

// Form tracks field values, per-field errors, and the submitting flag.
type Form struct {
	mu         sync.Mutex
	draft      Draft
	errors     ValidationResult
	submitting bool

	validator *Validator
	client    *Client
	notifier  Notifier
	msgs      Messages
}

// New creates an empty form bound to a backend client and a notifier.
func New(client *Client, notifier Notifier, lang Language) *Form {
	return &Form{
		errors:    ValidationResult{},
		validator: NewValidator(lang),
		client:    client,
		notifier:  notifier,
		msgs:      MessagesFor(lang),
	}
}

// SetName updates the field and re-validates the draft.
func (f *Form) SetName(v string) { f.setField(func(d *Draft) { d.Name = v }) }

// SetEmail updates the field and re-validates the draft.
func (f *Form) SetEmail(v string) { f.setField(func(d *Draft) { d.Email = v }) }

// SetMessage updates the field and re-validates the draft.
func (f *Form) SetMessage(v string) { f.setField(func(d *Draft) { d.Message = v }) }

func (f *Form) setField(apply func(*Draft)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	apply(&f.draft)
	f.errors = f.validator.Validate(f.draft)
}

// Values returns the current field values.
func (f *Form) Values() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Errors returns a copy of the current per-field errors.
func (f *Form) Errors() ValidationResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(ValidationResult, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Submitting reports whether a submission is in flight.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Submit validates the draft and sends it to the backend. It returns true
// only when the server accepted the submission.
//
// While a submission is in flight, further Submit calls are no-ops: no
// queueing, no cancellation of the prior request. On success the fields are
// cleared and a success notification fires; on any failure the user's values
// are preserved and a single generic error notification fires. The user
// retries manually; nothing is retried automatically.
func (f *Form) Submit(ctx context.Context) bool {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return false
	}
	f.errors = f.validator.Validate(f.draft)
	if !f.errors.Valid() {
		f.mu.Unlock()
		return false
	}
	f.submitting = true
	draft := f.draft
	f.mu.Unlock()

	err := f.client.Submit(ctx, draft)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		f.notifier.Error(f.msgs.GenericError)
		return false
	}
	f.draft = Draft{}
	f.errors = ValidationResult{}
	f.notifier.Success(f.msgs.SuccessTitle, f.msgs.SuccessDesc)
	return true
}
