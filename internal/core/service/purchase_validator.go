package service

import "github.com/rl1809/ticket-service/internal/core/domain"

const (
	AdultTicketPrice  = 20
	ChildTicketPrice  = 10
	InfantTicketPrice = 0
)

// countCap is one past the purchase limit. Per-type sums stop there, which
// is enough for Validate to reject them and keeps Total from overflowing.
const countCap = domain.MaxTicketsPerPurchase + 1

// Aggregate sums ticket counts per type across all line items, saturating
// each type at countCap.
func Aggregate(lineItems []domain.TicketTypeRequest) domain.AggregatedCounts {
	var counts domain.AggregatedCounts
	for _, item := range lineItems {
		switch item.Type() {
		case domain.TicketTypeAdult:
			counts.Adult = addCapped(counts.Adult, item.NoOfTickets())
		case domain.TicketTypeChild:
			counts.Child = addCapped(counts.Child, item.NoOfTickets())
		case domain.TicketTypeInfant:
			counts.Infant = addCapped(counts.Infant, item.NoOfTickets())
		}
	}
	return counts
}

func addCapped(sum, n int) int {
	if n >= countCap-sum {
		return countCap
	}
	return sum + n
}

// Validate returns the first purchase rule the counts break, or nil.
func Validate(counts domain.AggregatedCounts) error {
	total := counts.Total()

	if total == 0 {
		return domain.ErrNoTickets
	}

	if total > domain.MaxTicketsPerPurchase {
		return domain.ErrTooManyTickets
	}

	// infants sit on an adult's lap
	if counts.Infant > counts.Adult {
		return domain.ErrTooManyInfantTickets
	}

	if counts.Child > 0 && counts.Adult == 0 {
		return domain.ErrTooManyChildTickets
	}

	return nil
}

// SeatsToReserve counts adults and children; infants take no seat.
func SeatsToReserve(counts domain.AggregatedCounts) int {
	return counts.Adult + counts.Child
}

func AmountToCharge(counts domain.AggregatedCounts) int {
	return counts.Adult*AdultTicketPrice +
		counts.Child*ChildTicketPrice +
		counts.Infant*InfantTicketPrice
}
