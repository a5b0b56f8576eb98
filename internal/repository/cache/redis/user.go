package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gotomicro/ego/core/elog"
	"github.com/redis/go-redis/v9"
	"github.com/robinlg/broadcast-platform/internal/domain"
	"github.com/robinlg/broadcast-platform/internal/repository/cache"
)

type Cache struct {
	rdb    *redis.Client
	logger *elog.Component
}

func NewCache(rdb *redis.Client) *Cache {
	return &Cache{
		rdb: rdb,
	}
}

func (c *Cache) Get(ctx context.Context, userID string) (domain.DirectoryUser, error) {
	key := cache.UserKey(userID)
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// 键不存在
			return domain.DirectoryUser{}, cache.ErrKeyNotFound
		}
		return domain.DirectoryUser{}, fmt.Errorf("failed to get user from redis %w", err)
	}

	var user domain.DirectoryUser
	err = json.Unmarshal([]byte(val), &user)
	if err != nil {
		return domain.DirectoryUser{}, fmt.Errorf("failed to unmarshal user data %w", err)
	}
	return user, nil
}

func (c *Cache) Set(ctx context.Context, user domain.DirectoryUser) error {
	key := cache.UserKey(user.ID)
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user data %w", err)
	}
	err = c.rdb.Set(ctx, key, data, cache.DefaultExpiredTime).Err()
	if err != nil {
		return fmt.Errorf("failed to set user to redis %w", err)
	}
	return nil
}

func (c *Cache) SetUsers(ctx context.Context, users []domain.DirectoryUser) error {
	if len(users) == 0 {
		return nil
	}

	// 使用管道批量设置，提高性能
	// 在集群模式下，命中同一个节点的 key 会被打包作为一个 pipeline
	pipe := c.rdb.Pipeline()
	for _, user := range users {
		data, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("failed to marshal user data for ID %s: %w", user.ID, err)
		}
		pipe.Set(ctx, cache.UserKey(user.ID), data, cache.DefaultExpiredTime)
	}
	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to execute pipeline for setting users: %w", err)
	}
	return nil
}

func (c *Cache) GetSyncToken(ctx context.Context) (string, error) {
	val, err := c.rdb.Get(ctx, cache.SyncTokenKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", cache.ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to get sync token from redis %w", err)
	}
	return val, nil
}

func (c *Cache) SetSyncToken(ctx context.Context, token string) error {
	// 同步令牌不过期，由目录服务判定失效
	return c.rdb.Set(ctx, cache.SyncTokenKey, token, 0).Err()
}
