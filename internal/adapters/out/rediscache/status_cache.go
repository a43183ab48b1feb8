// Package rediscache caches resolved waybill status snapshots in Redis.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/waybill"
	"logistics/internal/core/domain/services"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "logistics:status:"

// Connect creates a Redis client and verifies the server answers PING.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}
	return rdb, nil
}

// StatusCache implements ports.StatusCache on Redis. Entries expire after ttl so a missed
// invalidation heals on its own. Redis failures are logged and reported as misses.
type StatusCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewStatusCache(rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *StatusCache {
	return &StatusCache{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger.With("component", "status-cache"),
	}
}

// snapshotDTO is the JSON form of a cached snapshot.
type snapshotDTO struct {
	TrackingNumber string     `json:"tracking_number"`
	Status         string     `json:"status"`
	Reason         string     `json:"reason,omitempty"`
	Courier        string     `json:"courier,omitempty"`
	Zone           string     `json:"zone,omitempty"`
	DispatchedAt   *time.Time `json:"dispatched_at,omitempty"`
}

func (c *StatusCache) Get(ctx context.Context, tn kernel.TrackingNumber) (services.Snapshot, bool) {
	raw, err := c.rdb.Get(ctx, key(tn)).Bytes()
	if errors.Is(err, redis.Nil) {
		return services.Snapshot{}, false
	}
	if err != nil {
		c.logger.Warn("status cache read failed", "tracking_number", tn.String(), "error", err)
		return services.Snapshot{}, false
	}

	var dto snapshotDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		c.logger.Warn("discarding malformed status cache entry", "tracking_number", tn.String(), "error", err)
		return services.Snapshot{}, false
	}

	snapshot, err := toSnapshot(dto)
	if err != nil || !snapshot.TrackingNumber.IsEqual(tn) {
		c.logger.Warn("discarding invalid status cache entry", "tracking_number", tn.String(), "error", err)
		return services.Snapshot{}, false
	}
	return snapshot, true
}

func (c *StatusCache) Set(ctx context.Context, snapshot services.Snapshot) {
	raw, err := json.Marshal(fromSnapshot(snapshot))
	if err != nil {
		c.logger.Warn("status cache encode failed", "tracking_number", snapshot.TrackingNumber.String(), "error", err)
		return
	}

	if err := c.rdb.Set(ctx, key(snapshot.TrackingNumber), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("status cache write failed", "tracking_number", snapshot.TrackingNumber.String(), "error", err)
	}
}

func (c *StatusCache) Invalidate(ctx context.Context, tns ...kernel.TrackingNumber) {
	if len(tns) == 0 {
		return
	}

	keys := make([]string, 0, len(tns))
	for _, tn := range tns {
		keys = append(keys, key(tn))
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("status cache invalidation failed", "keys", len(keys), "error", err)
	}
}

func key(tn kernel.TrackingNumber) string {
	return keyPrefix + tn.String()
}

func fromSnapshot(s services.Snapshot) snapshotDTO {
	return snapshotDTO{
		TrackingNumber: s.TrackingNumber.String(),
		Status:         s.Status.String(),
		Reason:         s.Reason,
		Courier:        s.Courier.String(),
		Zone:           s.Zone.String(),
		DispatchedAt:   s.DispatchedAt,
	}
}

func toSnapshot(dto snapshotDTO) (services.Snapshot, error) {
	tn, err := kernel.NewTrackingNumber(dto.TrackingNumber)
	if err != nil {
		return services.Snapshot{}, err
	}
	status, err := waybill.ParseStatus(dto.Status)
	if err != nil {
		return services.Snapshot{}, err
	}

	snapshot := services.Snapshot{
		TrackingNumber: tn,
		Status:         status,
		Reason:         dto.Reason,
	}
	if dto.Courier != "" {
		if snapshot.Courier, err = kernel.NewName("courier", dto.Courier); err != nil {
			return services.Snapshot{}, err
		}
	}
	if dto.Zone != "" {
		if snapshot.Zone, err = kernel.NewName("zone", dto.Zone); err != nil {
			return services.Snapshot{}, err
		}
	}
	if dto.DispatchedAt != nil {
		at := dto.DispatchedAt.UTC()
		snapshot.DispatchedAt = &at
	}
	return snapshot, nil
}

// NoCache is the StatusCache used when Redis is not configured: every lookup misses.
type NoCache struct{}

func (NoCache) Get(context.Context, kernel.TrackingNumber) (services.Snapshot, bool) {
	return services.Snapshot{}, false
}

func (NoCache) Set(context.Context, services.Snapshot) {}

func (NoCache) Invalidate(context.Context, ...kernel.TrackingNumber) {}
