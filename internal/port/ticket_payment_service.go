package port

import (
	"context"

	"github.com/rl1809/ticket-service/internal/core/domain"
)

type TicketPaymentService interface {
	// MakePayment charges amount to the account
	MakePayment(ctx context.Context, accountID domain.AccountID, amount int) error
}
