package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/rl1809/ticket-service/internal/adapter/handler/ticketrpc"
	"github.com/rl1809/ticket-service/internal/core/domain"
	"github.com/rl1809/ticket-service/internal/core/service"
)

type HTTPHandler struct {
	ticketService *service.TicketService
	logger        logrus.FieldLogger
}

type PurchaseHTTPRequest struct {
	AccountID int64                  `json:"account_id"`
	Tickets   []ticketrpc.TicketLine `json:"tickets"`
}

type PurchaseHTTPResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	Reason        string `json:"reason,omitempty"`
	SeatsReserved int    `json:"seats_reserved,omitempty"`
	AmountCharged int    `json:"amount_charged,omitempty"`
}

func NewHTTPHandler(ticketService *service.TicketService, logger logrus.FieldLogger) *HTTPHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &HTTPHandler{ticketService: ticketService, logger: logger}
}

// Routes mounts the handler on a fresh mux.
func (h *HTTPHandler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.HealthCheck)
	mux.HandleFunc("/api/tickets/purchase", h.PurchaseTickets)
	return mux
}

func (h *HTTPHandler) PurchaseTickets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req PurchaseHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, PurchaseHTTPResponse{
			Success: false,
			Message: "invalid request body",
		})
		return
	}

	items, err := toLineItems(req.Tickets)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, PurchaseHTTPResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	purchase, err := h.ticketService.Purchase(r.Context(), domain.AccountID(req.AccountID), items)
	if err != nil {
		var rejected domain.InvalidPurchaseError

		switch {
		case errors.Is(err, domain.ErrInvalidArgument):
			writeJSON(w, http.StatusBadRequest, PurchaseHTTPResponse{
				Success: false,
				Message: err.Error(),
			})
		case errors.As(err, &rejected):
			writeJSON(w, http.StatusUnprocessableEntity, PurchaseHTTPResponse{
				Success: false,
				Message: rejected.Reason.Message(),
				Reason:  string(rejected.Reason),
			})
		default:
			h.logger.WithError(err).WithField("account_id", req.AccountID).Error("http purchase failed")
			writeJSON(w, http.StatusInternalServerError, PurchaseHTTPResponse{
				Success: false,
				Message: "internal error",
			})
		}
		return
	}

	writeJSON(w, http.StatusOK, PurchaseHTTPResponse{
		Success:       true,
		Message:       "tickets purchased",
		SeatsReserved: purchase.Seats,
		AmountCharged: purchase.Amount,
	})
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
