package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"github.com/robinlg/broadcast-platform/internal/errs"
	"gorm.io/gorm"
)

// 限流状态是全局单行记录，固定主键
const throttleStateID = 1

// ThrottleState 全局限流状态表，有且仅有一行
type ThrottleState struct {
	ID         uint64 `gorm:"primaryKey"`
	ResumeTime int64  `gorm:"NOT NULL;DEFAULT:0;comment:'冷却截止时间，毫秒'"`
	Version    int    `gorm:"type:INT;NOT NULL;DEFAULT:1;comment:'版本号，用于CAS操作'"`
	Ctime      int64
	Utime      int64
}

type ThrottleStateDAO interface {
	// Get 读取全局限流状态，不存在时初始化一行
	Get(ctx context.Context) (ThrottleState, error)
	// CompareAndSwap 以版本号为条件更新冷却截止时间
	CompareAndSwap(ctx context.Context, state ThrottleState) error
}

type throttleStateDAO struct {
	db *egorm.Component
}

// NewThrottleStateDAO 创建限流状态DAO实例
func NewThrottleStateDAO(db *egorm.Component) ThrottleStateDAO {
	return &throttleStateDAO{db: db}
}

func (d *throttleStateDAO) Get(ctx context.Context) (ThrottleState, error) {
	var state ThrottleState
	err := d.db.WithContext(ctx).Where("id = ?", throttleStateID).First(&state).Error
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ThrottleState{}, err
	}
	now := time.Now().UnixMilli()
	state = ThrottleState{
		ID:      throttleStateID,
		Version: 1,
		Ctime:   now,
		Utime:   now,
	}
	// 并发初始化时以先写入者为准
	createErr := d.db.WithContext(ctx).Create(&state).Error
	if createErr == nil {
		return state, nil
	}
	err = d.db.WithContext(ctx).Where("id = ?", throttleStateID).First(&state).Error
	return state, err
}

func (d *throttleStateDAO) CompareAndSwap(ctx context.Context, state ThrottleState) error {
	result := d.db.WithContext(ctx).Model(&ThrottleState{}).
		Where("id = ? AND version = ?", throttleStateID, state.Version).
		Updates(map[string]any{
			"resume_time": state.ResumeTime,
			"version":     gorm.Expr("version + 1"),
			"utime":       time.Now().UnixMilli(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected < 1 {
		return fmt.Errorf("并发竞争失败 %w", errs.ErrThrottleStateVersionMismatch)
	}
	return nil
}
