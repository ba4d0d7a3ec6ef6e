package redis

import (
	"context"
	"fmt"
	"time"

	"token-vault/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// WindowStore implements ports.VolumeWindow with fixed-window counters in
// Redis. Buckets are derived lazily from the clock: a new bucket id means a
// fresh key, so there is no reset job, and expired windows age out via TTL.
type WindowStore struct {
	client *goredis.Client
	prefix string
	now    func() time.Time
}

// NewWindowStore creates a Redis-backed volume window.
func NewWindowStore(client *goredis.Client) *WindowStore {
	return &WindowStore{
		client: client,
		prefix: "volume:",
		now:    time.Now,
	}
}

// reserveScript adds amount to the bucket counter only when the result
// stays within the ceiling. Check and commit run as one script, so two
// concurrent reservations cannot both squeeze under the ceiling.
var reserveScript = goredis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
local amount = tonumber(ARGV[1])
local ceiling = tonumber(ARGV[2])
if current + amount > ceiling then
	return 0
end
redis.call('INCRBYFLOAT', KEYS[1], ARGV[1])
redis.call('EXPIRE', KEYS[1], ARGV[3])
return 1
`)

// releaseScript subtracts a prior reservation, clamping at zero.
var releaseScript = goredis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
local next = current - tonumber(ARGV[1])
if next < 0 then
	next = 0
end
redis.call('SET', KEYS[1], tostring(next))
redis.call('EXPIRE', KEYS[1], ARGV[2])
return 1
`)

func (s *WindowStore) key(direction domain.Direction, window time.Duration) string {
	bucket := domain.WindowBucket(s.now(), window)
	return fmt.Sprintf("%s%s:%d", s.prefix, direction, bucket)
}

// expiry keeps a bucket around for twice its window so Usage stays readable
// right up to the rollover.
func expiry(window time.Duration) int64 {
	return int64((2 * window).Seconds())
}

// Reserve atomically adds amount to the active window if the result stays
// within ceiling. Returns false with no mutation otherwise.
func (s *WindowStore) Reserve(ctx context.Context, direction domain.Direction, amount, ceiling decimal.Decimal, window time.Duration) (bool, error) {
	res, err := reserveScript.Run(ctx, s.client,
		[]string{s.key(direction, window)},
		amount.String(), ceiling.String(), expiry(window),
	).Int64()
	if err != nil {
		return false, fmt.Errorf("redis window reserve: %w", err)
	}
	return res == 1, nil
}

// Release backs out a prior reservation.
func (s *WindowStore) Release(ctx context.Context, direction domain.Direction, amount decimal.Decimal, window time.Duration) error {
	err := releaseScript.Run(ctx, s.client,
		[]string{s.key(direction, window)},
		amount.String(), expiry(window),
	).Err()
	if err != nil {
		return fmt.Errorf("redis window release: %w", err)
	}
	return nil
}

// Usage returns the cumulative volume of the active window.
func (s *WindowStore) Usage(ctx context.Context, direction domain.Direction, window time.Duration) (decimal.Decimal, error) {
	val, err := s.client.Get(ctx, s.key(direction, window)).Result()
	if err == goredis.Nil {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("redis window usage: %w", err)
	}
	usage, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse window usage %q: %w", val, err)
	}
	return usage, nil
}
