package port

import (
	"context"

	"github.com/rl1809/ticket-service/internal/core/domain"
)

type SeatReservationService interface {
	// ReserveSeat books numberOfSeats seats for the account
	ReserveSeat(ctx context.Context, accountID domain.AccountID, numberOfSeats int) error
}
