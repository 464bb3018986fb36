package handler

import (
	"github.com/rl1809/ticket-service/internal/adapter/handler/ticketrpc"
	"github.com/rl1809/ticket-service/internal/core/domain"
)

// toLineItems keeps a nil batch nil so the service can tell it apart from an
// empty one.
func toLineItems(lines []ticketrpc.TicketLine) ([]domain.TicketTypeRequest, error) {
	if lines == nil {
		return nil, nil
	}

	items := make([]domain.TicketTypeRequest, 0, len(lines))
	for _, line := range lines {
		ticketType, err := domain.ParseTicketType(line.Type)
		if err != nil {
			return nil, err
		}
		item, err := domain.NewTicketTypeRequest(ticketType, int(line.Count))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
