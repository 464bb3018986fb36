package storage

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/ticket-service/internal/core/domain"
)

const (
	seatsKeyPrefix   = "seats:"
	totalReservedKey = "seats:total"
)

var reserveSeatsScript = redis.NewScript(`
local accountKey = KEYS[1]
local totalKey = KEYS[2]
local seats = tonumber(ARGV[1])

redis.call('INCRBY', accountKey, seats)
return redis.call('INCRBY', totalKey, seats)
`)

// RedisSeatReservation keeps a running count of seats reserved per account
// and in total.
type RedisSeatReservation struct {
	client *redis.Client
}

func NewRedisSeatReservation(client *redis.Client) *RedisSeatReservation {
	return &RedisSeatReservation{client: client}
}

func accountSeatsKey(accountID domain.AccountID) string {
	return seatsKeyPrefix + strconv.FormatInt(int64(accountID), 10)
}

func (r *RedisSeatReservation) ReserveSeat(ctx context.Context, accountID domain.AccountID, numberOfSeats int) error {
	if numberOfSeats <= 0 {
		return fmt.Errorf("reserve %d seats: count must be positive", numberOfSeats)
	}

	keys := []string{accountSeatsKey(accountID), totalReservedKey}
	if err := reserveSeatsScript.Run(ctx, r.client, keys, numberOfSeats).Err(); err != nil {
		return fmt.Errorf("run reserve script: %w", err)
	}

	return nil
}

// ReservedSeats returns how many seats the account holds; zero if none.
func (r *RedisSeatReservation) ReservedSeats(ctx context.Context, accountID domain.AccountID) (int, error) {
	return r.getCount(ctx, accountSeatsKey(accountID))
}

func (r *RedisSeatReservation) TotalReserved(ctx context.Context) (int, error) {
	return r.getCount(ctx, totalReservedKey)
}

func (r *RedisSeatReservation) getCount(ctx context.Context, key string) (int, error) {
	n, err := r.client.Get(ctx, key).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get %s: %w", key, err)
	}
	return n, nil
}
