package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/brightwash/booking-service/internal/domain/entities"
	"github.com/brightwash/booking-service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidQuoteEmail = errors.New("invalid quote email")

// IQuoteLogUseCase records quotes at the moment a customer submits contact
// details, before the booking exists. The log is append-only and feeds
// conversion analytics; it is never read back on the booking path.

type IQuoteLogUseCase interface {
	LogQuote(ctx context.Context, email string, services []entities.ServiceQuote, total float64) error
	List(ctx context.Context) ([]entities.LoggedQuote, error)
}

type QuoteLogUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IQuoteLogUseCase = (*QuoteLogUseCase)(nil)

func NewQuoteLogUseCase(repo interfaces.IQuoteRepository) *QuoteLogUseCase {
	return &QuoteLogUseCase{repo: repo}
}

func (u *QuoteLogUseCase) LogQuote(ctx context.Context, email string, services []entities.ServiceQuote, total float64) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidQuoteEmail
	}

	q := entities.LoggedQuote{
		ID:          uuid.NewString(),
		Email:       email,
		Services:    services,
		TotalAmount: total,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := u.repo.Create(ctx, q); err != nil {
		log.Printf("[quote][usecase] quote log create failed email=%s err=%v", email, err)
		return err
	}
	return nil
}

func (u *QuoteLogUseCase) List(ctx context.Context) ([]entities.LoggedQuote, error) {
	return u.repo.List(ctx)
}
