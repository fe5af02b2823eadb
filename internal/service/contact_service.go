package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
)

// ErrDatabase marca fallas de persistencia para que el handler responda 500.
var ErrDatabase = errors.New("database failure")

// ContactService coordina el flujo de un envio de contacto:
// validación, persistencia y notificación best-effort.
type ContactService struct {
	logger   *zap.Logger
	messages repository.ContactRepository
	notifier *Notifier
}

func NewContactService(logger *zap.Logger, messages repository.ContactRepository, notifier *Notifier) *ContactService {
	return &ContactService{
		logger:   logger,
		messages: messages,
		notifier: notifier,
	}
}

type SubmitInput struct {
	Name      string
	Email     string
	Subject   string
	Message   string
	IPAddress string
}

// Submit valida y persiste un mensaje, luego despacha las notificaciones.
// Una falla de email se registra y se descarta: el mensaje ya quedó guardado
// y el remitente recibe éxito igual.
func (s *ContactService) Submit(ctx context.Context, input SubmitInput) (domain.ContactMessage, error) {
	if verr := ValidateContactInput(input.Name, input.Email, input.Subject, input.Message); verr != nil {
		return domain.ContactMessage{}, verr
	}

	if s.messages == nil {
		return domain.ContactMessage{}, fmt.Errorf("%w: contact repository not configured", ErrDatabase)
	}

	msg := domain.ContactMessage{
		Name:      strings.TrimSpace(input.Name),
		Email:     normalizeEmail(input.Email),
		Subject:   strings.TrimSpace(input.Subject),
		Message:   strings.TrimSpace(input.Message),
		IPAddress: strings.TrimSpace(input.IPAddress),
		Status:    domain.StatusNew,
		CreatedAt: time.Now().UTC(),
	}

	stored, err := s.messages.Insert(ctx, msg)
	if err != nil {
		return domain.ContactMessage{}, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	if s.notifier != nil {
		if err := s.notifier.NotifySubmission(ctx, stored); err != nil {
			s.logger.Error("contact notification failed",
				zap.String("message_id", stored.ID),
				zap.Error(err),
			)
		}
	}

	return stored, nil
}

// ListMessages devuelve todos los mensajes, del más reciente al más antiguo.
func (s *ContactService) ListMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	if s.messages == nil {
		return nil, fmt.Errorf("%w: contact repository not configured", ErrDatabase)
	}
	messages, err := s.messages.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	return messages, nil
}
