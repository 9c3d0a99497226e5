package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"aura/internal/email"
)

// ContactService отправка сообщений с формы обратной связи
type ContactService struct {
	mailer email.Mailer
}

func NewContactService(mailer email.Mailer) *ContactService {
	return &ContactService{mailer: mailer}
}

var ErrMissingMessage = errors.New("message is required")

func (s *ContactService) Send(ctx context.Context, p email.ContactEmail) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(p.Message) == "" {
		return ErrMissingMessage
	}
	if err := s.mailer.SendContact(ctx, p); err != nil {
		return fmt.Errorf("%w: %v", ErrEmailSend, err)
	}
	return nil
}
