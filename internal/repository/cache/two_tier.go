package cache

import (
	"context"
	"errors"

	"github.com/gotomicro/ego/core/elog"
	"github.com/robinlg/broadcast-platform/internal/domain"
)

// twoTierCache 本地 + Redis 两级用户目录缓存。
// 读取先走本地，未命中再查Redis并回填本地；
// 同步令牌必须跨进程一致，只走Redis
type twoTierCache struct {
	local  UserCache
	redis  UserCache
	logger *elog.Component
}

// NewTwoTierCache 组合本地和Redis缓存
func NewTwoTierCache(local, redis UserCache) UserCache {
	return &twoTierCache{
		local:  local,
		redis:  redis,
		logger: elog.DefaultLogger,
	}
}

func (c *twoTierCache) Get(ctx context.Context, userID string) (domain.DirectoryUser, error) {
	user, err := c.local.Get(ctx, userID)
	if err == nil {
		return user, nil
	}
	user, err = c.redis.Get(ctx, userID)
	if err != nil {
		return domain.DirectoryUser{}, err
	}
	if lerr := c.local.Set(ctx, user); lerr != nil {
		c.logger.Warn("回填本地缓存失败", elog.FieldErr(lerr))
	}
	return user, nil
}

func (c *twoTierCache) Set(ctx context.Context, user domain.DirectoryUser) error {
	if err := c.local.Set(ctx, user); err != nil {
		c.logger.Warn("写入本地缓存失败", elog.FieldErr(err))
	}
	return c.redis.Set(ctx, user)
}

func (c *twoTierCache) SetUsers(ctx context.Context, users []domain.DirectoryUser) error {
	if err := c.local.SetUsers(ctx, users); err != nil {
		c.logger.Warn("写入本地缓存失败", elog.FieldErr(err))
	}
	return c.redis.SetUsers(ctx, users)
}

func (c *twoTierCache) GetSyncToken(ctx context.Context) (string, error) {
	token, err := c.redis.GetSyncToken(ctx)
	if err != nil && !errors.Is(err, ErrKeyNotFound) {
		return "", err
	}
	return token, err
}

func (c *twoTierCache) SetSyncToken(ctx context.Context, token string) error {
	return c.redis.SetSyncToken(ctx, token)
}
