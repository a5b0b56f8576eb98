package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"github.com/robinlg/broadcast-platform/internal/errs"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Recipient 接收者表，一行对应一个 (广播任务, 接收者) 对
type Recipient struct {
	ID              uint64 `gorm:"primaryKey;autoIncrement"`
	BroadcastID     uint64 `gorm:"type:BIGINT UNSIGNED;NOT NULL;uniqueIndex:idx_broadcast_recipient,priority:1;index:idx_broadcast_status,priority:1;comment:'广播任务ID'"`
	RecipientID     string `gorm:"type:VARCHAR(256);NOT NULL;uniqueIndex:idx_broadcast_recipient,priority:2;comment:'接收者标识'"`
	Kind            string `gorm:"type:ENUM('USER','TEAM');NOT NULL;DEFAULT:'USER';comment:'接收者类型'"`
	Address         string `gorm:"type:VARCHAR(512);NOT NULL;comment:'渠道地址'"`
	ConversationID  string `gorm:"type:VARCHAR(256);comment:'会话句柄，首次建立会话前为空'"`
	Status          string `gorm:"type:ENUM('UNKNOWN','SUCCEEDED','FAILED','THROTTLED','NOT_FOUND','FAULTED_RETRYING','FAULTED_FINAL');DEFAULT:'UNKNOWN';index:idx_broadcast_status,priority:2;comment:'投递状态'"`
	StatusHistory   string `gorm:"type:TEXT;comment:'历次尝试的状态码，JSON数组'"`
	ThrottleCount   int32  `gorm:"type:INT;NOT NULL;DEFAULT:0;comment:'被限流次数'"`
	LastAttemptTime int64  `gorm:"comment:'最近一次尝试时间'"`
	Ctime           int64
	Utime           int64
}

// StatusCount 按状态聚合的计数行
type StatusCount struct {
	Status string
	Cnt    int64
}

type RecipientDAO interface {
	// Upsert 以 (broadcast_id, recipient_id) 为键写入最近一次尝试的结果，幂等
	Upsert(ctx context.Context, data Recipient) error
	// BatchUpsert 批量初始化接收者行。已存在的行保持原状态不变，重复执行安全
	BatchUpsert(ctx context.Context, datas []Recipient) error
	// Get 获取单个接收者行
	Get(ctx context.Context, broadcastID uint64, recipientID string) (Recipient, error)
	// GetAll 按广播任务读取全部接收者行
	GetAll(ctx context.Context, broadcastID uint64) ([]Recipient, error)
	// CountByStatus 按状态聚合计数，供汇总重算使用
	CountByStatus(ctx context.Context, broadcastID uint64) ([]StatusCount, error)
	// CountByBroadcast 接收者总行数
	CountByBroadcast(ctx context.Context, broadcastID uint64) (int64, error)
}

type recipientDAO struct {
	db *egorm.Component
}

// NewRecipientDAO 创建接收者DAO实例
func NewRecipientDAO(db *egorm.Component) RecipientDAO {
	return &recipientDAO{db: db}
}

// Upsert 最后写入获胜：冲突时覆盖状态、历史、会话句柄
func (d *recipientDAO) Upsert(ctx context.Context, data Recipient) error {
	now := time.Now().UnixMilli()
	data.Ctime, data.Utime = now, now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "broadcast_id"}, {Name: "recipient_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"conversation_id", "status", "status_history",
			"throttle_count", "last_attempt_time", "utime",
		}),
	}).Create(&data).Error
}

// BatchUpsert 初始化行冲突时不做任何更新，保证重放分批步骤不会重置已有进度
func (d *recipientDAO) BatchUpsert(ctx context.Context, datas []Recipient) error {
	if len(datas) == 0 {
		return nil
	}
	const batchSize = 100
	now := time.Now().UnixMilli()
	for i := range datas {
		datas[i].Ctime, datas[i].Utime = now, now
	}
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "broadcast_id"}, {Name: "recipient_id"}},
		DoNothing: true,
	}).CreateInBatches(datas, batchSize).Error
}

func (d *recipientDAO) Get(ctx context.Context, broadcastID uint64, recipientID string) (Recipient, error) {
	var r Recipient
	err := d.db.WithContext(ctx).
		Where("broadcast_id = ? AND recipient_id = ?", broadcastID, recipientID).
		First(&r).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Recipient{}, fmt.Errorf("%w: broadcastID %d, recipientID %s",
				errs.ErrRecipientRecordNotFound, broadcastID, recipientID)
		}
		return Recipient{}, err
	}
	return r, nil
}

func (d *recipientDAO) GetAll(ctx context.Context, broadcastID uint64) ([]Recipient, error) {
	var recipients []Recipient
	err := d.db.WithContext(ctx).
		Where("broadcast_id = ?", broadcastID).
		Order("recipient_id ASC").
		Find(&recipients).Error
	return recipients, err
}

func (d *recipientDAO) CountByStatus(ctx context.Context, broadcastID uint64) ([]StatusCount, error) {
	var counts []StatusCount
	err := d.db.WithContext(ctx).Model(&Recipient{}).
		Select("status, COUNT(*) AS cnt").
		Where("broadcast_id = ?", broadcastID).
		Group("status").
		Find(&counts).Error
	return counts, err
}

func (d *recipientDAO) CountByBroadcast(ctx context.Context, broadcastID uint64) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Recipient{}).
		Where("broadcast_id = ?", broadcastID).
		Count(&cnt).Error
	return cnt, err
}
