package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/ticket-service/internal/core/domain"
)

func ticket(t *testing.T, ticketType domain.TicketType, n int) domain.TicketTypeRequest {
	t.Helper()
	req, err := domain.NewTicketTypeRequest(ticketType, n)
	require.NoError(t, err)
	return req
}

func TestAggregate(t *testing.T) {
	counts := Aggregate([]domain.TicketTypeRequest{
		ticket(t, domain.TicketTypeAdult, 2),
		ticket(t, domain.TicketTypeChild, 1),
		ticket(t, domain.TicketTypeAdult, 3),
		ticket(t, domain.TicketTypeInfant, 4),
	})

	assert.Equal(t, domain.AggregatedCounts{Adult: 5, Child: 1, Infant: 4}, counts)
	assert.Equal(t, 10, counts.Total())
}

func TestAggregate_Empty(t *testing.T) {
	assert.Equal(t, domain.AggregatedCounts{}, Aggregate(nil))
	assert.Equal(t, domain.AggregatedCounts{}, Aggregate([]domain.TicketTypeRequest{}))
}

func TestAggregate_SaturatesHugeCounts(t *testing.T) {
	counts := Aggregate([]domain.TicketTypeRequest{
		ticket(t, domain.TicketTypeAdult, math.MaxInt),
		ticket(t, domain.TicketTypeChild, 1),
		ticket(t, domain.TicketTypeInfant, math.MaxInt),
		ticket(t, domain.TicketTypeInfant, math.MaxInt),
	})

	assert.Equal(t, domain.AggregatedCounts{Adult: 21, Child: 1, Infant: 21}, counts)
	assert.Positive(t, counts.Total())
	assert.ErrorIs(t, Validate(counts), domain.ErrTooManyTickets)
}

func TestAggregate_CapReachedAcrossLines(t *testing.T) {
	counts := Aggregate([]domain.TicketTypeRequest{
		ticket(t, domain.TicketTypeAdult, 20),
		ticket(t, domain.TicketTypeAdult, 1),
		ticket(t, domain.TicketTypeAdult, 5),
	})
	assert.Equal(t, 21, counts.Adult)

	counts = Aggregate([]domain.TicketTypeRequest{
		ticket(t, domain.TicketTypeAdult, 19),
		ticket(t, domain.TicketTypeAdult, 1),
	})
	assert.Equal(t, 20, counts.Adult)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		counts domain.AggregatedCounts
		want   error
	}{
		{"no tickets", domain.AggregatedCounts{}, domain.ErrNoTickets},
		{"21 adults", domain.AggregatedCounts{Adult: 21}, domain.ErrTooManyTickets},
		{"1 adult 20 children", domain.AggregatedCounts{Adult: 1, Child: 20}, domain.ErrTooManyTickets},
		{"too many beats infant rule", domain.AggregatedCounts{Infant: 21}, domain.ErrTooManyTickets},
		{"infant alone", domain.AggregatedCounts{Infant: 1}, domain.ErrTooManyInfantTickets},
		{"more infants than adults", domain.AggregatedCounts{Adult: 1, Infant: 2}, domain.ErrTooManyInfantTickets},
		{"infant rule before child rule", domain.AggregatedCounts{Child: 1, Infant: 1}, domain.ErrTooManyInfantTickets},
		{"child alone", domain.AggregatedCounts{Child: 1}, domain.ErrTooManyChildTickets},
		{"20 adults", domain.AggregatedCounts{Adult: 20}, nil},
		{"family", domain.AggregatedCounts{Adult: 1, Child: 1, Infant: 1}, nil},
		{"10 adults 10 children", domain.AggregatedCounts{Adult: 10, Child: 10}, nil},
		{"infants equal adults", domain.AggregatedCounts{Adult: 2, Infant: 2}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.counts)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSeatsAndAmount(t *testing.T) {
	tests := []struct {
		counts domain.AggregatedCounts
		seats  int
		amount int
	}{
		{domain.AggregatedCounts{Adult: 1, Child: 1, Infant: 1}, 2, 30},
		{domain.AggregatedCounts{Adult: 1, Infant: 1}, 1, 20},
		{domain.AggregatedCounts{Adult: 20}, 20, 400},
		{domain.AggregatedCounts{Adult: 10, Child: 10}, 20, 300},
		{domain.AggregatedCounts{Adult: 5, Child: 3, Infant: 5}, 8, 130},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.seats, SeatsToReserve(tt.counts), "seats for %+v", tt.counts)
		assert.Equal(t, tt.amount, AmountToCharge(tt.counts), "amount for %+v", tt.counts)
	}
}
