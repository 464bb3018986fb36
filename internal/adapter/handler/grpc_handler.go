package handler

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rl1809/ticket-service/internal/adapter/handler/ticketrpc"
	"github.com/rl1809/ticket-service/internal/core/domain"
	"github.com/rl1809/ticket-service/internal/core/service"
)

type GRPCHandler struct {
	ticketService *service.TicketService
	logger        logrus.FieldLogger
}

func NewGRPCHandler(ticketService *service.TicketService, logger logrus.FieldLogger) *GRPCHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &GRPCHandler{ticketService: ticketService, logger: logger}
}

func (h *GRPCHandler) PurchaseTickets(ctx context.Context, req *ticketrpc.PurchaseRequest) (*ticketrpc.PurchaseResponse, error) {
	items, err := toLineItems(req.GetTickets())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	purchase, err := h.ticketService.Purchase(ctx, domain.AccountID(req.GetAccountId()), items)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}

		var rejected domain.InvalidPurchaseError
		if errors.As(err, &rejected) {
			return &ticketrpc.PurchaseResponse{
				Success: false,
				Message: rejected.Reason.Message(),
				Reason:  string(rejected.Reason),
			}, nil
		}

		h.logger.WithError(err).WithField("account_id", req.GetAccountId()).Error("grpc purchase failed")
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &ticketrpc.PurchaseResponse{
		Success:       true,
		Message:       "tickets purchased",
		SeatsReserved: int32(purchase.Seats),
		AmountCharged: int32(purchase.Amount),
	}, nil
}
