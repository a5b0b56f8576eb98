package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/robinlg/broadcast-platform/internal/domain"
	"github.com/robinlg/broadcast-platform/internal/repository/dao"
)

// RecipientRepository 接收者仓储接口
//
//go:generate mockgen -source=./recipient.go -destination=./mocks/recipient.mock.go -package=repomocks -typed RecipientRepository
type RecipientRepository interface {
	// Upsert 以 (broadcastID, recipientID) 为键写入最近一次尝试的结果，幂等
	Upsert(ctx context.Context, recipient domain.Recipient) error
	// BatchUpsert 批量初始化接收者行，已存在的行保持原状态
	BatchUpsert(ctx context.Context, recipients []domain.Recipient) error
	// Get 获取单个接收者行
	Get(ctx context.Context, broadcastID uint64, recipientID string) (domain.Recipient, error)
	// GetAll 按广播任务读取全部接收者行
	GetAll(ctx context.Context, broadcastID uint64) ([]domain.Recipient, error)
	// CountByStatus 按状态聚合计数
	CountByStatus(ctx context.Context, broadcastID uint64) (map[domain.DeliveryStatus]int64, error)
	// CountByBroadcast 接收者总行数
	CountByBroadcast(ctx context.Context, broadcastID uint64) (int64, error)
}

// recipientRepository 接收者仓储实现
type recipientRepository struct {
	dao    dao.RecipientDAO
	logger *elog.Component
}

// NewRecipientRepository 创建接收者仓储实例
func NewRecipientRepository(d dao.RecipientDAO) RecipientRepository {
	return &recipientRepository{
		dao:    d,
		logger: elog.DefaultLogger,
	}
}

func (r *recipientRepository) Upsert(ctx context.Context, recipient domain.Recipient) error {
	return r.dao.Upsert(ctx, r.toEntity(recipient))
}

func (r *recipientRepository) BatchUpsert(ctx context.Context, recipients []domain.Recipient) error {
	datas := slice.Map(recipients, func(_ int, src domain.Recipient) dao.Recipient {
		return r.toEntity(src)
	})
	return r.dao.BatchUpsert(ctx, datas)
}

func (r *recipientRepository) Get(ctx context.Context, broadcastID uint64, recipientID string) (domain.Recipient, error) {
	rec, err := r.dao.Get(ctx, broadcastID, recipientID)
	if err != nil {
		return domain.Recipient{}, err
	}
	return r.toDomain(rec), nil
}

func (r *recipientRepository) GetAll(ctx context.Context, broadcastID uint64) ([]domain.Recipient, error) {
	recs, err := r.dao.GetAll(ctx, broadcastID)
	return slice.Map(recs, func(_ int, src dao.Recipient) domain.Recipient {
		return r.toDomain(src)
	}), err
}

func (r *recipientRepository) CountByStatus(ctx context.Context, broadcastID uint64) (map[domain.DeliveryStatus]int64, error) {
	counts, err := r.dao.CountByStatus(ctx, broadcastID)
	if err != nil {
		return nil, err
	}
	res := make(map[domain.DeliveryStatus]int64, len(counts))
	for _, c := range counts {
		res[domain.DeliveryStatus(c.Status)] = c.Cnt
	}
	return res, nil
}

func (r *recipientRepository) CountByBroadcast(ctx context.Context, broadcastID uint64) (int64, error) {
	return r.dao.CountByBroadcast(ctx, broadcastID)
}

// toEntity 将领域对象转换为DAO实体
func (r *recipientRepository) toEntity(recipient domain.Recipient) dao.Recipient {
	history, _ := recipient.MarshalStatusHistory()
	return dao.Recipient{
		BroadcastID:     recipient.BroadcastID,
		RecipientID:     recipient.RecipientID,
		Kind:            recipient.Kind.String(),
		Address:         recipient.Address,
		ConversationID:  recipient.ConversationID,
		Status:          recipient.Status.String(),
		StatusHistory:   history,
		ThrottleCount:   recipient.ThrottleCount,
		LastAttemptTime: recipient.LastAttemptTime.UnixMilli(),
	}
}

// toDomain 将DAO实体转换为领域对象
func (r *recipientRepository) toDomain(rec dao.Recipient) domain.Recipient {
	var history []domain.AttemptCode
	_ = json.Unmarshal([]byte(rec.StatusHistory), &history)
	return domain.Recipient{
		BroadcastID:     rec.BroadcastID,
		RecipientID:     rec.RecipientID,
		Kind:            domain.RecipientKind(rec.Kind),
		Address:         rec.Address,
		ConversationID:  rec.ConversationID,
		Status:          domain.DeliveryStatus(rec.Status),
		StatusHistory:   history,
		ThrottleCount:   rec.ThrottleCount,
		LastAttemptTime: time.UnixMilli(rec.LastAttemptTime),
	}
}
