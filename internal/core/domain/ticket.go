package domain

import (
	"fmt"
	"strings"
)

type TicketType int

const (
	TicketTypeAdult TicketType = iota + 1
	TicketTypeChild
	TicketTypeInfant
)

func (t TicketType) String() string {
	switch t {
	case TicketTypeAdult:
		return "ADULT"
	case TicketTypeChild:
		return "CHILD"
	case TicketTypeInfant:
		return "INFANT"
	default:
		return fmt.Sprintf("TicketType(%d)", int(t))
	}
}

func (t TicketType) Valid() bool {
	return t >= TicketTypeAdult && t <= TicketTypeInfant
}

// ParseTicketType accepts the names produced by String, case-insensitively.
func ParseTicketType(s string) (TicketType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ADULT":
		return TicketTypeAdult, nil
	case "CHILD":
		return TicketTypeChild, nil
	case "INFANT":
		return TicketTypeInfant, nil
	}
	return 0, &InvalidArgumentError{Argument: "type", Detail: fmt.Sprintf("unknown ticket type %q", s)}
}

// TicketTypeRequest is one line item of a purchase. The zero value is not
// valid; build it with NewTicketTypeRequest.
type TicketTypeRequest struct {
	ticketType  TicketType
	noOfTickets int
}

func NewTicketTypeRequest(ticketType TicketType, noOfTickets int) (TicketTypeRequest, error) {
	if !ticketType.Valid() {
		return TicketTypeRequest{}, &InvalidArgumentError{Argument: "type", Detail: "unknown ticket type"}
	}
	if noOfTickets <= 0 {
		return TicketTypeRequest{}, &InvalidArgumentError{Argument: "noOfTickets", Detail: "must be greater than 0"}
	}
	return TicketTypeRequest{ticketType: ticketType, noOfTickets: noOfTickets}, nil
}

func (r TicketTypeRequest) Type() TicketType {
	return r.ticketType
}

func (r TicketTypeRequest) NoOfTickets() int {
	return r.noOfTickets
}

// AccountID identifies the purchasing account. Zero means no account was given.
type AccountID int64

func (id AccountID) IsZero() bool {
	return id == 0
}

type AggregatedCounts struct {
	Adult  int
	Child  int
	Infant int
}

func (c AggregatedCounts) Total() int {
	return c.Adult + c.Child + c.Infant
}

// Purchase summarises a fulfilled purchase.
type Purchase struct {
	AccountID AccountID
	Counts    AggregatedCounts
	Seats     int
	Amount    int
}
