package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sokobo/storefront/internal/events"
	apperrors "github.com/sokobo/storefront/pkg/util"
)

// ContactInput is a contact-form submission. Service is the optional
// service line the enquiry is about.
type ContactInput struct {
	FirstName string
	LastName  string
	Email     string
	Service   string
	Message   string
}

// ContactService accepts contact-form submissions. Delivery is handled
// by notification handlers subscribed to the dispatcher; nothing is
// persisted.
type ContactService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewContactService constructs the service.
func NewContactService(dispatcher events.Dispatcher, logger *zap.Logger) *ContactService {
	return &ContactService{dispatcher: dispatcher, logger: logger}
}

// Submit validates and publishes a submission.
func (s *ContactService) Submit(ctx context.Context, input ContactInput) error {
	details := map[string]any{}
	if input.FirstName == "" {
		details["firstName"] = "required"
	}
	if input.LastName == "" {
		details["lastName"] = "required"
	}
	if input.Email == "" {
		details["email"] = "required"
	}
	if input.Message == "" {
		details["message"] = "required"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid contact submission", details)
	}

	s.logger.Info("contact form submitted",
		zap.String("email", input.Email),
		zap.String("service", input.Service),
	)

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type: events.EventContactSubmitted,
			Payload: events.ContactSubmittedPayload{
				FirstName: input.FirstName,
				LastName:  input.LastName,
				Email:     input.Email,
				Service:   input.Service,
				Message:   input.Message,
			},
		})
	}
	return nil
}
