package service

import (
	"context"

	"degrondvraag-be/internal/dto"
	"degrondvraag-be/internal/pkg/logger"
	"degrondvraag-be/internal/pkg/mailer"
)

type IFeedbackService interface {
	// Send forwards visitor feedback to the site inbox. The caller always
	// gets a generic acknowledgement; delivery problems stay in the logs.
	Send(ctx context.Context, req *dto.SendFeedbackRequest) error
}

type feedbackService struct {
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewFeedbackService(emailService mailer.IEmailService, logger logger.ILogger) IFeedbackService {
	return &feedbackService{emailService: emailService, logger: logger}
}

func (s *feedbackService) Send(ctx context.Context, req *dto.SendFeedbackRequest) error {
	if err := s.emailService.SendFeedback(req.Email, req.Message); err != nil {
		s.logger.Error("Feedback", "Failed to deliver feedback mail", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return nil
}
