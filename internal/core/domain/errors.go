package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument matches every *InvalidArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports a caller bug: a required argument was absent
// or malformed. It is not a rejected purchase.
type InvalidArgumentError struct {
	Argument string
	Detail   string
}

func (e *InvalidArgumentError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("invalid argument %s", e.Argument)
	}
	return fmt.Sprintf("invalid argument %s: %s", e.Argument, e.Detail)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

type RejectionReason string

const (
	ReasonNoTickets            RejectionReason = "no_tickets"
	ReasonTooManyTickets       RejectionReason = "too_many_tickets"
	ReasonTooManyInfantTickets RejectionReason = "too_many_infant_tickets"
	ReasonTooManyChildTickets  RejectionReason = "too_many_child_tickets"
)

var reasonMessages = map[RejectionReason]string{
	ReasonNoTickets:            "at least one ticket must be purchased",
	ReasonTooManyTickets:       fmt.Sprintf("cannot purchase more than %d tickets in one transaction", MaxTicketsPerPurchase),
	ReasonTooManyInfantTickets: "cannot purchase more infant tickets than adult tickets",
	ReasonTooManyChildTickets:  "cannot purchase child tickets without adult tickets",
}

func (r RejectionReason) Message() string {
	if msg, ok := reasonMessages[r]; ok {
		return msg
	}
	return string(r)
}

// InvalidPurchaseError is a business rejection of a well-formed request.
// Values compare equal when their reasons match, so errors.Is works against
// the Err* variables below.
type InvalidPurchaseError struct {
	Reason RejectionReason
}

func (e InvalidPurchaseError) Error() string {
	return "invalid purchase: " + e.Reason.Message()
}

var (
	ErrNoTickets            = InvalidPurchaseError{Reason: ReasonNoTickets}
	ErrTooManyTickets       = InvalidPurchaseError{Reason: ReasonTooManyTickets}
	ErrTooManyInfantTickets = InvalidPurchaseError{Reason: ReasonTooManyInfantTickets}
	ErrTooManyChildTickets  = InvalidPurchaseError{Reason: ReasonTooManyChildTickets}
)

// MaxTicketsPerPurchase caps the total tickets of all types in one purchase.
const MaxTicketsPerPurchase = 20
