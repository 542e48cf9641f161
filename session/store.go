// Package session keeps per-browser cart state between requests. Carts are
// ephemeral by design: one Redis hash per (session, event) with a short TTL,
// so navigating away or abandoning the flow simply lets the selection expire.
package session

import (
	"context"
	"fmt"
	"strconv"
	"tikiti/cart"
	"tikiti/entities"
	"time"

	"github.com/lithammer/shortuuid/v3"
	"github.com/redis/go-redis/v9"
)

const cartTTL = 30 * time.Minute

// decrementScript floors the quantity at zero atomically, so a burst of
// decrement clicks can never drive a tier negative. At zero it writes
// nothing, so decrementing an empty cart never creates the hash.
const decrementScript = `
local qty = tonumber(redis.call("HGET", KEYS[1], ARGV[1]) or "0")
if qty <= 0 then
	return 0
end
return redis.call("HINCRBY", KEYS[1], ARGV[1], -1)
`

// NewID mints a session identifier for the cart cookie.
func NewID() string {
	return shortuuid.New()
}

type CartStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCartStore(rdb *redis.Client) *CartStore {
	if rdb == nil {
		panic("redis client is nil")
	}
	return &CartStore{rdb: rdb, ttl: cartTTL}
}

func cartKey(sessionID string, eventID int) string {
	return fmt.Sprintf("cart:%s:%d", sessionID, eventID)
}

func (s *CartStore) Increment(ctx context.Context, sessionID string, eventID int, ticketType entities.TicketType) error {
	key := cartKey(sessionID, eventID)
	if err := s.rdb.HIncrBy(ctx, key, string(ticketType), 1).Err(); err != nil {
		return fmt.Errorf("could not increment cart tier: %w", err)
	}
	if err := s.rdb.Expire(ctx, key, s.ttl).Err(); err != nil {
		return fmt.Errorf("could not refresh cart TTL: %w", err)
	}
	return nil
}

func (s *CartStore) Decrement(ctx context.Context, sessionID string, eventID int, ticketType entities.TicketType) error {
	key := cartKey(sessionID, eventID)
	if err := s.rdb.Eval(ctx, decrementScript, []string{key}, string(ticketType)).Err(); err != nil {
		return fmt.Errorf("could not decrement cart tier: %w", err)
	}
	if err := s.rdb.Expire(ctx, key, s.ttl).Err(); err != nil {
		return fmt.Errorf("could not refresh cart TTL: %w", err)
	}
	return nil
}

func (s *CartStore) Get(ctx context.Context, sessionID string, eventID int) (*cart.Selection, error) {
	fields, err := s.rdb.HGetAll(ctx, cartKey(sessionID, eventID)).Result()
	if err != nil {
		return nil, fmt.Errorf("could not load cart: %w", err)
	}

	quantities := make(map[entities.TicketType]int, len(fields))
	for field, value := range fields {
		qty, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("corrupt cart quantity for %s: %w", field, err)
		}
		quantities[entities.TicketType(field)] = qty
	}
	return cart.FromQuantities(quantities), nil
}

// Clear drops the selection, as after a successful checkout.
func (s *CartStore) Clear(ctx context.Context, sessionID string, eventID int) error {
	if err := s.rdb.Del(ctx, cartKey(sessionID, eventID)).Err(); err != nil {
		return fmt.Errorf("could not clear cart: %w", err)
	}
	return nil
}
