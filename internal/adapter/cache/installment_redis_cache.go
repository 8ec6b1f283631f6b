package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"stuff3d_checkout/internal/domain/entities"
	"stuff3d_checkout/internal/usecase/interfaces"
)

const (
	installmentKeyPrefix   = "stuff3d:installments:"
	DefaultInstallmentsTTL = 10 * time.Minute
)

// kv is the part of *redis.Client the cache needs.
type kv interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// InstallmentRedisCache stores computed installment tiers as JSON per product.
type InstallmentRedisCache struct {
	client kv
	ttl    time.Duration
	log    *zap.Logger
}

var _ interfaces.IInstallmentCache = (*InstallmentRedisCache)(nil)

// NewRedisClient accepts host:port or a redis:// URL and pings the server.
func NewRedisClient(ctx context.Context, addr, password string, db int, log *zap.Logger) (*redis.Client, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var opts *redis.Options
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr, Password: password, DB: db}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Info("[cache] connected to redis", zap.String("addr", opts.Addr))
	return client, nil
}

func NewInstallmentRedisCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *InstallmentRedisCache {
	return newInstallmentCache(client, ttl, log)
}

func newInstallmentCache(client kv, ttl time.Duration, log *zap.Logger) *InstallmentRedisCache {
	if ttl <= 0 {
		ttl = DefaultInstallmentsTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &InstallmentRedisCache{client: client, ttl: ttl, log: log}
}

func (c *InstallmentRedisCache) Get(ctx context.Context, productID string) ([]entities.InstallmentOption, bool, error) {
	raw, err := c.client.Get(ctx, installmentKeyPrefix+productID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var options []entities.InstallmentOption
	if err := json.Unmarshal(raw, &options); err != nil {
		// a corrupt entry behaves as a miss and gets overwritten
		c.log.Warn("[cache] discarding unreadable installments entry",
			zap.String("product_id", productID), zap.Error(err))
		return nil, false, nil
	}
	return options, true, nil
}

func (c *InstallmentRedisCache) Set(ctx context.Context, productID string, options []entities.InstallmentOption) error {
	b, err := json.Marshal(options)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, installmentKeyPrefix+productID, b, c.ttl).Err()
}
