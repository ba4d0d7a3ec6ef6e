package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

const blocklistKey = "compliance:blocklist"

// ComplianceStore implements ports.ComplianceRegistry as a Redis set. A
// listing change is visible to the next check immediately; nothing caches
// membership.
type ComplianceStore struct {
	client *goredis.Client
}

// NewComplianceStore creates a Redis-backed compliance registry.
func NewComplianceStore(client *goredis.Client) *ComplianceStore {
	return &ComplianceStore{client: client}
}

// IsBlocked reports whether the account is on the blocklist.
func (s *ComplianceStore) IsBlocked(ctx context.Context, account string) (bool, error) {
	blocked, err := s.client.SIsMember(ctx, blocklistKey, account).Result()
	if err != nil {
		return false, fmt.Errorf("redis blocklist check: %w", err)
	}
	return blocked, nil
}

// Block adds the account to the blocklist. Idempotent.
func (s *ComplianceStore) Block(ctx context.Context, account string) error {
	if err := s.client.SAdd(ctx, blocklistKey, account).Err(); err != nil {
		return fmt.Errorf("redis blocklist add: %w", err)
	}
	return nil
}

// Unblock removes the account from the blocklist. Idempotent.
func (s *ComplianceStore) Unblock(ctx context.Context, account string) error {
	if err := s.client.SRem(ctx, blocklistKey, account).Err(); err != nil {
		return fmt.Errorf("redis blocklist remove: %w", err)
	}
	return nil
}
