package handler

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/rl1809/ticket-service/internal/core/domain"
	"github.com/rl1809/ticket-service/internal/core/service"
)

type fakeCollaborators struct {
	mu       sync.Mutex
	reserved map[domain.AccountID]int
	charged  map[domain.AccountID]int
	err      error
}

func newFakeCollaborators() *fakeCollaborators {
	return &fakeCollaborators{
		reserved: make(map[domain.AccountID]int),
		charged:  make(map[domain.AccountID]int),
	}
}

func (f *fakeCollaborators) ReserveSeat(ctx context.Context, accountID domain.AccountID, numberOfSeats int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.reserved[accountID] += numberOfSeats
	return nil
}

func (f *fakeCollaborators) MakePayment(ctx context.Context, accountID domain.AccountID, amount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.charged[accountID] += amount
	return nil
}

func (f *fakeCollaborators) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reserved) + len(f.charged)
}

func newService() (*service.TicketService, *fakeCollaborators, logrus.FieldLogger, *test.Hook) {
	fake := newFakeCollaborators()
	logger, hook := test.NewNullLogger()
	return service.NewTicketService(fake, fake, logger), fake, logger, hook
}
