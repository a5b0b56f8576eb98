package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/robinlg/broadcast-platform/internal/domain"
	idgen "github.com/robinlg/broadcast-platform/internal/pkg/id_generator"
	"github.com/robinlg/broadcast-platform/internal/repository/dao"
)

// BroadcastRepository 广播任务仓储接口
//
//go:generate mockgen -source=./broadcast.go -destination=./mocks/broadcast.mock.go -package=repomocks -typed BroadcastRepository
type BroadcastRepository interface {
	// Create 创建广播任务
	Create(ctx context.Context, broadcast domain.Broadcast) (domain.Broadcast, error)
	// GetByID 根据ID获取广播任务
	GetByID(ctx context.Context, id uint64) (domain.Broadcast, error)
	// GetByKey 根据租户和租户内唯一标识获取广播任务
	GetByKey(ctx context.Context, bizID int64, key string) (domain.Broadcast, error)
	// SetTotalRecipients 写入受众解析后的接收者总数
	SetTotalRecipients(ctx context.Context, id uint64, total int64) error
	// SetContentRef 写入渲染内容引用
	SetContentRef(ctx context.Context, id uint64, ref string) error
	// CASStatus 更新任务状态
	CASStatus(ctx context.Context, broadcast domain.Broadcast) error
	// AppendWarning 追加受众片段级失败的告警文本
	AppendWarning(ctx context.Context, id uint64, warning string) error
	// MarkFailed 标记任务失败并记录异常文本
	MarkFailed(ctx context.Context, id uint64, errText string) error
	// UpdateRollup 写入汇总计数，completed 为真时同时收口
	UpdateRollup(ctx context.Context, id uint64, rollup domain.Rollup, completed bool) error
	// FindIncomplete 查询处于分发中的任务
	FindIncomplete(ctx context.Context, offset, limit int) ([]domain.Broadcast, error)
}

// broadcastRepository 广播任务仓储实现
type broadcastRepository struct {
	dao    dao.BroadcastDAO
	idGen  *idgen.Generator
	logger *elog.Component
}

// NewBroadcastRepository 创建广播任务仓储实例
func NewBroadcastRepository(d dao.BroadcastDAO) BroadcastRepository {
	return &broadcastRepository{
		dao:    d,
		idGen:  idgen.NewGenerator(),
		logger: elog.DefaultLogger,
	}
}

func (r *broadcastRepository) Create(ctx context.Context, broadcast domain.Broadcast) (domain.Broadcast, error) {
	if broadcast.ID == 0 {
		broadcast.ID = uint64(r.idGen.GenerateID(broadcast.BizID, broadcast.Key))
	}
	created, err := r.dao.Create(ctx, r.toEntity(broadcast))
	if err != nil {
		return domain.Broadcast{}, err
	}
	return r.toDomain(created), nil
}

func (r *broadcastRepository) GetByID(ctx context.Context, id uint64) (domain.Broadcast, error) {
	b, err := r.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Broadcast{}, err
	}
	return r.toDomain(b), nil
}

func (r *broadcastRepository) GetByKey(ctx context.Context, bizID int64, key string) (domain.Broadcast, error) {
	b, err := r.dao.GetByKey(ctx, bizID, key)
	return r.toDomain(b), err
}

func (r *broadcastRepository) SetTotalRecipients(ctx context.Context, id uint64, total int64) error {
	return r.dao.SetTotalRecipients(ctx, id, total)
}

func (r *broadcastRepository) SetContentRef(ctx context.Context, id uint64, ref string) error {
	return r.dao.SetContentRef(ctx, id, ref)
}

func (r *broadcastRepository) CASStatus(ctx context.Context, broadcast domain.Broadcast) error {
	return r.dao.CASStatus(ctx, r.toEntity(broadcast))
}

func (r *broadcastRepository) AppendWarning(ctx context.Context, id uint64, warning string) error {
	return r.dao.AppendWarning(ctx, id, warning)
}

func (r *broadcastRepository) MarkFailed(ctx context.Context, id uint64, errText string) error {
	return r.dao.MarkFailed(ctx, id, errText)
}

func (r *broadcastRepository) UpdateRollup(ctx context.Context, id uint64, rollup domain.Rollup, completed bool) error {
	return r.dao.UpdateRollup(ctx, id, rollup.Succeeded, rollup.Failed, rollup.Throttled, rollup.Unknown, completed)
}

func (r *broadcastRepository) FindIncomplete(ctx context.Context, offset, limit int) ([]domain.Broadcast, error) {
	bs, err := r.dao.FindIncomplete(ctx, offset, limit)
	return slice.Map(bs, func(_ int, src dao.Broadcast) domain.Broadcast {
		return r.toDomain(src)
	}), err
}

// toEntity 将领域对象转换为DAO实体
func (r *broadcastRepository) toEntity(broadcast domain.Broadcast) dao.Broadcast {
	audience, _ := broadcast.MarshalAudience()
	return dao.Broadcast{
		ID:              broadcast.ID,
		BizID:           broadcast.BizID,
		Key:             broadcast.Key,
		Audience:        audience,
		ContentRef:      broadcast.ContentRef,
		TotalRecipients: broadcast.TotalRecipients,
		Status:          broadcast.Status.String(),
		SucceededCount:  broadcast.Rollup.Succeeded,
		FailedCount:     broadcast.Rollup.Failed,
		ThrottledCount:  broadcast.Rollup.Throttled,
		UnknownCount:    broadcast.Rollup.Unknown,
		WarningText:     broadcast.WarningText,
		ErrorText:       broadcast.ErrorText,
		SentTime:        broadcast.SentTime.UnixMilli(),
		Version:         broadcast.Version,
	}
}

// toDomain 将DAO实体转换为领域对象
func (r *broadcastRepository) toDomain(b dao.Broadcast) domain.Broadcast {
	var audience domain.Audience
	_ = json.Unmarshal([]byte(b.Audience), &audience)
	return domain.Broadcast{
		ID:              b.ID,
		BizID:           b.BizID,
		Key:             b.Key,
		Audience:        audience,
		ContentRef:      b.ContentRef,
		TotalRecipients: b.TotalRecipients,
		Status:          domain.BroadcastStatus(b.Status),
		Rollup: domain.Rollup{
			Succeeded: b.SucceededCount,
			Failed:    b.FailedCount,
			Throttled: b.ThrottledCount,
			Unknown:   b.UnknownCount,
		},
		WarningText: b.WarningText,
		ErrorText:   b.ErrorText,
		SentTime:    time.UnixMilli(b.SentTime),
		Version:     b.Version,
	}
}
