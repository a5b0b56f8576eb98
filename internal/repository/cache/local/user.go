package local

import (
	"context"
	"errors"

	ca "github.com/patrickmn/go-cache"
	"github.com/robinlg/broadcast-platform/internal/domain"
	"github.com/robinlg/broadcast-platform/internal/repository/cache"
)

type Cache struct {
	c *ca.Cache
}

func NewCache() *Cache {
	return &Cache{
		c: ca.New(cache.DefaultExpiredTime, cache.DefaultExpiredTime),
	}
}

func (l *Cache) Get(_ context.Context, userID string) (domain.DirectoryUser, error) {
	v, ok := l.c.Get(cache.UserKey(userID))
	if !ok {
		return domain.DirectoryUser{}, cache.ErrKeyNotFound
	}
	vv, ok := v.(domain.DirectoryUser)
	if !ok {
		return domain.DirectoryUser{}, errors.New("数据类型不正确")
	}
	return vv, nil
}

func (l *Cache) Set(_ context.Context, user domain.DirectoryUser) error {
	l.c.Set(cache.UserKey(user.ID), user, cache.DefaultExpiredTime)
	return nil
}

func (l *Cache) SetUsers(_ context.Context, users []domain.DirectoryUser) error {
	for _, user := range users {
		l.c.Set(cache.UserKey(user.ID), user, cache.DefaultExpiredTime)
	}
	return nil
}

func (l *Cache) GetSyncToken(_ context.Context) (string, error) {
	v, ok := l.c.Get(cache.SyncTokenKey)
	if !ok {
		return "", cache.ErrKeyNotFound
	}
	token, ok := v.(string)
	if !ok {
		return "", errors.New("数据类型不正确")
	}
	return token, nil
}

func (l *Cache) SetSyncToken(_ context.Context, token string) error {
	l.c.Set(cache.SyncTokenKey, token, ca.NoExpiration)
	return nil
}
