package aggregator

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/robinlg/broadcast-platform/internal/domain"
	"github.com/robinlg/broadcast-platform/internal/pkg/mq"
	"github.com/robinlg/broadcast-platform/internal/repository"
	"github.com/robinlg/broadcast-platform/internal/service/trigger"
)

// 未收口时延迟重挂汇总触发器的间隔
const defaultReArmDelay = 30 * time.Second

// Aggregator 汇总服务。
// 接收者结果由多个并发调度器乱序写回，
// 这里是唯一判定"任务完成"的地方
type Aggregator struct {
	broadcastRepo  repository.BroadcastRepository
	recipientRepo  repository.RecipientRepository
	queue          mq.Queue
	maxRetryWindow time.Duration
	reArmDelay     time.Duration
	logger         *elog.Component
}

// NewAggregator 创建汇总服务
func NewAggregator(
	broadcastRepo repository.BroadcastRepository,
	recipientRepo repository.RecipientRepository,
	queue mq.Queue,
	maxRetryWindow time.Duration,
) *Aggregator {
	return &Aggregator{
		broadcastRepo:  broadcastRepo,
		recipientRepo:  recipientRepo,
		queue:          queue,
		maxRetryWindow: maxRetryWindow,
		reArmDelay:     defaultReArmDelay,
		logger:         elog.DefaultLogger,
	}
}

// Aggregate 重算汇总计数并判定是否收口。
// 收口条件：已到达终态或被限流的接收者数量等于总数，
// 或者超过 maxRetryWindow 硬上限（此时未知态接收者保留在 unknown 桶里）
func (a *Aggregator) Aggregate(ctx context.Context, broadcastID uint64) (domain.Rollup, bool, error) {
	broadcast, err := a.broadcastRepo.GetByID(ctx, broadcastID)
	if err != nil {
		return domain.Rollup{}, false, err
	}
	if broadcast.Terminated() {
		// FAILED 任务保留失败终态，残留的汇总触发器不得把它收口成 COMPLETED
		return broadcast.Rollup, true, nil
	}

	counts, err := a.recipientRepo.CountByStatus(ctx, broadcastID)
	if err != nil {
		return domain.Rollup{}, false, err
	}
	rollup := toRollup(counts)

	completed := rollup.Reached() >= broadcast.TotalRecipients
	if !completed && a.windowExpired(broadcast) {
		// 超时强制收口，仍处于未知态的接收者留在 unknown 桶里，
		// 不再无限期等待
		completed = true
		a.logger.Warn("汇总窗口超时，强制收口",
			elog.Any("broadcastID", broadcastID),
			elog.Int64("unknown", rollup.Unknown))
	}

	if err := a.broadcastRepo.UpdateRollup(ctx, broadcastID, rollup, completed); err != nil {
		return domain.Rollup{}, false, err
	}
	return rollup, completed, nil
}

func (a *Aggregator) windowExpired(broadcast domain.Broadcast) bool {
	if broadcast.SentTime.IsZero() || broadcast.SentTime.UnixMilli() <= 0 {
		return false
	}
	return time.Now().After(broadcast.SentTime.Add(a.maxRetryWindow))
}

// toRollup 状态桶归并：NOT_FOUND 和 FAULTED_FINAL 计入 failed，
// 队列重投中的接收者仍然属于 unknown
func toRollup(counts map[domain.DeliveryStatus]int64) domain.Rollup {
	return domain.Rollup{
		Succeeded: counts[domain.DeliveryStatusSucceeded],
		Failed: counts[domain.DeliveryStatusFailed] +
			counts[domain.DeliveryStatusNotFound] +
			counts[domain.DeliveryStatusFaultedFinal],
		Throttled: counts[domain.DeliveryStatusThrottled],
		Unknown: counts[domain.DeliveryStatusUnknown] +
			counts[domain.DeliveryStatusFaultedRetrying],
	}
}

// HandleTrigger 消费汇总触发器。未收口时延迟重挂自身，
// 避免忙轮询
func (a *Aggregator) HandleTrigger(ctx context.Context, msg mq.Message) error {
	var t trigger.Aggregate
	if err := json.Unmarshal(msg.Payload, &t); err != nil {
		return fmt.Errorf("反序列化汇总触发器失败: %w", err)
	}

	_, completed, err := a.Aggregate(ctx, t.BroadcastID)
	if err != nil {
		return err
	}
	if completed {
		a.logger.Info("广播任务收口", elog.Any("broadcastID", t.BroadcastID))
		return nil
	}
	return a.ReArm(ctx, t.BroadcastID)
}

// ReArm 延迟重挂一个汇总触发器
func (a *Aggregator) ReArm(ctx context.Context, broadcastID uint64) error {
	msg, err := trigger.Aggregate{BroadcastID: broadcastID}.Message()
	if err != nil {
		return err
	}
	return a.queue.EnqueueDelayed(ctx, trigger.TopicAggregate, msg, a.reArmDelay)
}
