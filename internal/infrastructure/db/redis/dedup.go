package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/peopleops/employee-system/internal/core/domain"
)

// punchDedupTTL is the window within which a repeated punch of the same kind
// is treated as a double tap and suppressed.
const punchDedupTTL = time.Minute

// PunchDedup provides duplicate-punch suppression backed by Redis.
// Key format: punch:<user_id>:<kind>
type PunchDedup struct {
	client *redis.Client
}

// NewPunchDedup creates a PunchDedup wrapping the given Redis client.
func NewPunchDedup(client *redis.Client) *PunchDedup {
	return &PunchDedup{client: client}
}

// IsDuplicate reports whether the user punched this kind within the window.
func (d *PunchDedup) IsDuplicate(ctx context.Context, userID string, kind domain.PunchKind) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(userID, kind)).Result()
	if err != nil {
		return false, fmt.Errorf("punch dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this punch has been accepted (expires after punchDedupTTL).
func (d *PunchDedup) Mark(ctx context.Context, userID string, kind domain.PunchKind) error {
	return d.client.Set(ctx, d.key(userID, kind), "1", punchDedupTTL).Err()
}

func (d *PunchDedup) key(userID string, kind domain.PunchKind) string {
	return fmt.Sprintf("punch:%s:%s", userID, kind)
}
