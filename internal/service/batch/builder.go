package batch

import (
	"context"
	"fmt"
	"sort"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/robinlg/broadcast-platform/internal/domain"
	"github.com/robinlg/broadcast-platform/internal/errs"
	"github.com/robinlg/broadcast-platform/internal/pkg/metrics"
	"github.com/robinlg/broadcast-platform/internal/pkg/mq"
	"github.com/robinlg/broadcast-platform/internal/repository"
	"github.com/robinlg/broadcast-platform/internal/service/trigger"
	"golang.org/x/sync/errgroup"
)

// BatchSize 渠道批量接口的硬上限
const BatchSize = 100

// Builder 分批构建接口
//
//go:generate mockgen -source=./builder.go -destination=./mocks/builder.mock.go -package=batchmocks -typed Builder
type Builder interface {
	// Build 持久化初始化的接收者行并切分批次。
	// 初始化是记录级幂等Upsert，重复执行产生完全相同的批次划分，
	// 供外层工作流在崩溃后安全重放
	Build(ctx context.Context, broadcastID uint64, recipients []domain.Recipient) (int64, []trigger.SendBatch, error)
	// EmitTriggers 为每个批次投递一个发送触发器
	EmitTriggers(ctx context.Context, batches []trigger.SendBatch) error
}

// builder 分批构建实现
type builder struct {
	broadcastRepo repository.BroadcastRepository
	recipientRepo repository.RecipientRepository
	queue         mq.Queue
	logger        *elog.Component
}

// NewBuilder 创建分批构建器
func NewBuilder(
	broadcastRepo repository.BroadcastRepository,
	recipientRepo repository.RecipientRepository,
	queue mq.Queue,
) Builder {
	return &builder{
		broadcastRepo: broadcastRepo,
		recipientRepo: recipientRepo,
		queue:         queue,
		logger:        elog.DefaultLogger,
	}
}

func (b *builder) Build(ctx context.Context, broadcastID uint64, recipients []domain.Recipient) (int64, []trigger.SendBatch, error) {
	if len(recipients) == 0 {
		return 0, nil, fmt.Errorf("%w", errs.ErrNoAudienceSelected)
	}

	// 初始化行冲突时不覆盖，重放不会重置已有进度
	for i := range recipients {
		recipients[i].BroadcastID = broadcastID
		recipients[i].Status = domain.DeliveryStatusUnknown
	}
	if err := b.recipientRepo.BatchUpsert(ctx, recipients); err != nil {
		return 0, nil, fmt.Errorf("初始化接收者行失败: %w", err)
	}

	total := int64(len(recipients))
	if err := b.broadcastRepo.SetTotalRecipients(ctx, broadcastID, total); err != nil {
		return 0, nil, fmt.Errorf("写入接收者总数失败: %w", err)
	}

	batches := b.partition(broadcastID, recipients)
	b.logger.Info("分批完成",
		elog.Any("broadcastID", broadcastID),
		elog.Int64("total", total),
		elog.Any("batchCount", len(batches)))
	return total, batches, nil
}

// partition 排序后按固定大小切分，保证重复执行得到相同的批次划分
func (b *builder) partition(broadcastID uint64, recipients []domain.Recipient) []trigger.SendBatch {
	ids := slice.Map(recipients, func(_ int, src domain.Recipient) string {
		return src.RecipientID
	})
	sort.Strings(ids)

	batchCount := (len(ids) + BatchSize - 1) / BatchSize
	batches := make([]trigger.SendBatch, 0, batchCount)
	for i := 0; i < len(ids); i += BatchSize {
		end := i + BatchSize
		if end > len(ids) {
			end = len(ids)
		}
		batches = append(batches, trigger.SendBatch{
			BroadcastID:  broadcastID,
			BatchIndex:   i/BatchSize + 1,
			RecipientIDs: ids[i:end],
		})
	}
	return batches
}

// EmitTriggers 并行投递全部批次触发器，全部完成后返回。
// 批次之间没有顺序依赖
func (b *builder) EmitTriggers(ctx context.Context, batches []trigger.SendBatch) error {
	const emitConcurrency = 10
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(emitConcurrency)
	for _, batch := range batches {
		eg.Go(func() error {
			msg, err := batch.Message()
			if err != nil {
				return err
			}
			if err := b.queue.Enqueue(gctx, trigger.TopicSendBatch, msg); err != nil {
				return fmt.Errorf("投递批次触发器失败: key %s %w", batch.Key(), err)
			}
			metrics.BatchesBuilt.Inc()
			return nil
		})
	}
	return eg.Wait()
}
