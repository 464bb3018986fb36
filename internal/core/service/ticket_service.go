package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rl1809/ticket-service/internal/core/domain"
	"github.com/rl1809/ticket-service/internal/port"
)

type TicketService struct {
	seats   port.SeatReservationService
	payment port.TicketPaymentService
	logger  logrus.FieldLogger
}

func NewTicketService(seats port.SeatReservationService, payment port.TicketPaymentService, logger logrus.FieldLogger) *TicketService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &TicketService{
		seats:   seats,
		payment: payment,
		logger:  logger,
	}
}

// PurchaseTickets validates the line items and, if every rule passes,
// reserves the seats and then takes payment for the account.
func (s *TicketService) PurchaseTickets(ctx context.Context, accountID domain.AccountID, lineItems []domain.TicketTypeRequest) error {
	_, err := s.Purchase(ctx, accountID, lineItems)
	return err
}

// Purchase behaves like PurchaseTickets and also returns what was reserved
// and charged.
func (s *TicketService) Purchase(ctx context.Context, accountID domain.AccountID, lineItems []domain.TicketTypeRequest) (domain.Purchase, error) {
	if accountID.IsZero() {
		return domain.Purchase{}, &domain.InvalidArgumentError{Argument: "accountId", Detail: "cannot be empty"}
	}

	// nil is a caller bug; an empty batch is rejected by Validate
	if lineItems == nil {
		return domain.Purchase{}, &domain.InvalidArgumentError{Argument: "lineItems", Detail: "cannot be nil"}
	}

	counts := Aggregate(lineItems)
	if err := Validate(counts); err != nil {
		return domain.Purchase{}, err
	}

	purchase := domain.Purchase{
		AccountID: accountID,
		Counts:    counts,
		Seats:     SeatsToReserve(counts),
		Amount:    AmountToCharge(counts),
	}

	log := s.logger.WithFields(logrus.Fields{
		"account_id": int64(accountID),
		"seats":      purchase.Seats,
		"amount":     purchase.Amount,
	})

	// TODO: reservation and payment are not atomic; a failed payment leaves
	// the seats reserved until a compensating release exists.
	if err := s.seats.ReserveSeat(ctx, accountID, purchase.Seats); err != nil {
		log.WithError(err).Error("seat reservation failed")
		return domain.Purchase{}, fmt.Errorf("reserve seats: %w", err)
	}

	if err := s.payment.MakePayment(ctx, accountID, purchase.Amount); err != nil {
		log.WithError(err).Error("payment failed after seats were reserved")
		return domain.Purchase{}, fmt.Errorf("make payment: %w", err)
	}

	log.Info("tickets purchased")

	return purchase, nil
}
