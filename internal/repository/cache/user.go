package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robinlg/broadcast-platform/internal/domain"
)

var ErrKeyNotFound = errors.New("key not found")

const (
	UserPrefix         = "directory:user"
	SyncTokenKey       = "directory:sync_token"
	DefaultExpiredTime = 10 * time.Minute
)

// UserCache 用户目录缓存，避免重复任务反复解析同一批身份
type UserCache interface {
	Get(ctx context.Context, userID string) (domain.DirectoryUser, error)
	Set(ctx context.Context, user domain.DirectoryUser) error
	SetUsers(ctx context.Context, users []domain.DirectoryUser) error
	// GetSyncToken 读取全量/增量同步令牌
	GetSyncToken(ctx context.Context) (string, error)
	SetSyncToken(ctx context.Context, token string) error
}

func UserKey(userID string) string {
	return fmt.Sprintf("%s:%s", UserPrefix, userID)
}
