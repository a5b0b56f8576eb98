package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"github.com/robinlg/broadcast-platform/internal/errs"
	"gorm.io/gorm"
)

// Broadcast 广播任务表
type Broadcast struct {
	ID              uint64 `gorm:"primaryKey;comment:'雪花算法ID'"`
	BizID           int64  `gorm:"type:BIGINT;NOT NULL;uniqueIndex:idx_biz_id_key,priority:1;comment:'租户标识'"`
	Key             string `gorm:"type:VARCHAR(256);NOT NULL;uniqueIndex:idx_biz_id_key,priority:2;comment:'租户内唯一标识'"`
	Audience        string `gorm:"type:TEXT;NOT NULL;comment:'受众说明，JSON'"`
	ContentRef      string `gorm:"type:VARCHAR(512);NOT NULL;comment:'渲染内容引用'"`
	TotalRecipients int64  `gorm:"type:BIGINT;NOT NULL;DEFAULT:0;comment:'受众解析后的接收者总数'"`
	Status          string `gorm:"type:ENUM('PENDING','SENDING','COMPLETED','FAILED');DEFAULT:'PENDING';index:idx_status;comment:'任务状态'"`
	SucceededCount  int64  `gorm:"type:BIGINT;NOT NULL;DEFAULT:0"`
	FailedCount     int64  `gorm:"type:BIGINT;NOT NULL;DEFAULT:0"`
	ThrottledCount  int64  `gorm:"type:BIGINT;NOT NULL;DEFAULT:0"`
	UnknownCount    int64  `gorm:"type:BIGINT;NOT NULL;DEFAULT:0"`
	WarningText     string `gorm:"type:TEXT;comment:'受众片段级失败的告警文本'"`
	ErrorText       string `gorm:"type:TEXT;comment:'编排失败的异常文本'"`
	SentTime        int64  `gorm:"comment:'分批完成、开始分发的时间'"`
	Version         int    `gorm:"type:INT;NOT NULL;DEFAULT:1;comment:'版本号，用于CAS操作'"`
	Ctime           int64
	Utime           int64
}

type BroadcastDAO interface {
	// Create 创建广播任务记录
	Create(ctx context.Context, data Broadcast) (Broadcast, error)
	// GetByID 根据ID获取广播任务
	GetByID(ctx context.Context, id uint64) (Broadcast, error)
	// GetByKey 根据租户和租户内唯一标识获取广播任务
	GetByKey(ctx context.Context, bizID int64, key string) (Broadcast, error)
	// SetTotalRecipients 写入受众解析后的总数，可以安全地重复执行
	SetTotalRecipients(ctx context.Context, id uint64, total int64) error
	// SetContentRef 写入渲染内容引用
	SetContentRef(ctx context.Context, id uint64, ref string) error
	// CASStatus 更新任务状态，使用乐观锁控制并发
	CASStatus(ctx context.Context, broadcast Broadcast) error
	// AppendWarning 追加告警文本，不影响任务状态
	AppendWarning(ctx context.Context, id uint64, warning string) error
	// MarkFailed 标记任务失败并记录异常文本
	MarkFailed(ctx context.Context, id uint64, errText string) error
	// UpdateRollup 写入汇总计数，completed 为真时同时收口
	UpdateRollup(ctx context.Context, id uint64, succeeded, failed, throttled, unknown int64, completed bool) error
	// FindIncomplete 查询处于分发中的任务，用于兜底重挂汇总触发器
	FindIncomplete(ctx context.Context, offset, limit int) ([]Broadcast, error)
}

type broadcastDAO struct {
	db *egorm.Component
}

// NewBroadcastDAO 创建广播任务DAO实例
func NewBroadcastDAO(db *egorm.Component) BroadcastDAO {
	return &broadcastDAO{db: db}
}

func (d *broadcastDAO) Create(ctx context.Context, data Broadcast) (Broadcast, error) {
	now := time.Now().UnixMilli()
	data.Ctime, data.Utime = now, now
	data.Version = 1
	if err := d.db.WithContext(ctx).Create(&data).Error; err != nil {
		if d.isUniqueConstraintError(err) {
			return Broadcast{}, fmt.Errorf("%w", errs.ErrBroadcastDuplicate)
		}
		return Broadcast{}, err
	}
	return data, nil
}

// isUniqueConstraintError 检查是否是唯一索引冲突错误
func (d *broadcastDAO) isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	me := new(mysql.MySQLError)
	if ok := errors.As(err, &me); ok {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}

func (d *broadcastDAO) GetByID(ctx context.Context, id uint64) (Broadcast, error) {
	var b Broadcast
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Broadcast{}, fmt.Errorf("%w: id %d", errs.ErrBroadcastNotFound, id)
		}
		return Broadcast{}, err
	}
	return b, nil
}

func (d *broadcastDAO) GetByKey(ctx context.Context, bizID int64, key string) (Broadcast, error) {
	var b Broadcast
	err := d.db.WithContext(ctx).Where("biz_id = ? AND `key` = ?", bizID, key).First(&b).Error
	if err != nil {
		return Broadcast{}, fmt.Errorf("查询广播任务失败: bizID %d, key %s %w", bizID, key, err)
	}
	return b, nil
}

func (d *broadcastDAO) SetTotalRecipients(ctx context.Context, id uint64, total int64) error {
	return d.db.WithContext(ctx).Model(&Broadcast{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"total_recipients": total,
			"unknown_count":    total,
			"utime":            time.Now().UnixMilli(),
		}).Error
}

func (d *broadcastDAO) SetContentRef(ctx context.Context, id uint64, ref string) error {
	return d.db.WithContext(ctx).Model(&Broadcast{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"content_ref": ref,
			"utime":       time.Now().UnixMilli(),
		}).Error
}

// CASStatus 更新任务状态
func (d *broadcastDAO) CASStatus(ctx context.Context, broadcast Broadcast) error {
	updates := map[string]any{
		"status":  broadcast.Status,
		"version": gorm.Expr("version + 1"),
		"utime":   time.Now().UnixMilli(),
	}
	if broadcast.SentTime > 0 {
		updates["sent_time"] = broadcast.SentTime
	}

	result := d.db.WithContext(ctx).Model(&Broadcast{}).
		Where("id = ? AND version = ?", broadcast.ID, broadcast.Version).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected < 1 {
		return fmt.Errorf("并发竞争失败 %w, id %d", errs.ErrBroadcastVersionMismatch, broadcast.ID)
	}
	return nil
}

func (d *broadcastDAO) AppendWarning(ctx context.Context, id uint64, warning string) error {
	return d.db.WithContext(ctx).Model(&Broadcast{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"warning_text": gorm.Expr("CONCAT(IFNULL(warning_text, ''), ?)", warning+"\n"),
			"utime":        time.Now().UnixMilli(),
		}).Error
}

func (d *broadcastDAO) MarkFailed(ctx context.Context, id uint64, errText string) error {
	return d.db.WithContext(ctx).Model(&Broadcast{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     "FAILED",
			"error_text": errText,
			"version":    gorm.Expr("version + 1"),
			"utime":      time.Now().UnixMilli(),
		}).Error
}

func (d *broadcastDAO) UpdateRollup(ctx context.Context, id uint64, succeeded, failed, throttled, unknown int64, completed bool) error {
	updates := map[string]any{
		"succeeded_count": succeeded,
		"failed_count":    failed,
		"throttled_count": throttled,
		"unknown_count":   unknown,
		"version":         gorm.Expr("version + 1"),
		"utime":           time.Now().UnixMilli(),
	}
	if completed {
		updates["status"] = "COMPLETED"
	}
	return d.db.WithContext(ctx).Model(&Broadcast{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (d *broadcastDAO) FindIncomplete(ctx context.Context, offset, limit int) ([]Broadcast, error) {
	var broadcasts []Broadcast
	err := d.db.WithContext(ctx).
		Where("status = ?", "SENDING").
		Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&broadcasts).Error
	return broadcasts, err
}
