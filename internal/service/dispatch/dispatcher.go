package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/robinlg/broadcast-platform/internal/domain"
	"github.com/robinlg/broadcast-platform/internal/errs"
	"github.com/robinlg/broadcast-platform/internal/pkg/metrics"
	"github.com/robinlg/broadcast-platform/internal/pkg/mq"
	"github.com/robinlg/broadcast-platform/internal/pkg/retry/strategy"
	"github.com/robinlg/broadcast-platform/internal/repository"
	"github.com/robinlg/broadcast-platform/internal/service/channel"
	"github.com/robinlg/broadcast-platform/internal/service/throttle"
	"github.com/robinlg/broadcast-platform/internal/service/trigger"
	"golang.org/x/sync/errgroup"
)

const (
	// 批次内接收者的并发处理上限
	perBatchConcurrency = 10

	// 可重试状态码之间的退避区间
	initialAttemptDelay = 500 * time.Millisecond
	maxAttemptDelay     = 5 * time.Second
)

// Dispatcher 批次发送调度器。
// 消费一个批次触发器，对批次内每个接收者执行发送状态机，
// 结果以幂等Upsert写回接收者行
type Dispatcher struct {
	broadcastRepo repository.BroadcastRepository
	recipientRepo repository.RecipientRepository
	sender        channel.Sender
	throttle      throttle.Controller
	queue         mq.Queue
	cfg           domain.BroadcastConfig
	logger        *elog.Component
}

// NewDispatcher 创建批次发送调度器
func NewDispatcher(
	broadcastRepo repository.BroadcastRepository,
	recipientRepo repository.RecipientRepository,
	sender channel.Sender,
	throttleCtrl throttle.Controller,
	queue mq.Queue,
	cfg domain.BroadcastConfig,
) *Dispatcher {
	return &Dispatcher{
		broadcastRepo: broadcastRepo,
		recipientRepo: recipientRepo,
		sender:        sender,
		throttle:      throttleCtrl,
		queue:         queue,
		cfg:           cfg,
		logger:        elog.DefaultLogger,
	}
}

// HandleBatch 消费一个批次触发器。
// 队列是至少一次投递，重复投递时已到终态的接收者会被跳过
func (d *Dispatcher) HandleBatch(ctx context.Context, msg mq.Message) error {
	var t trigger.SendBatch
	if err := json.Unmarshal(msg.Payload, &t); err != nil {
		return fmt.Errorf("反序列化批次触发器失败: %w", err)
	}

	broadcast, err := d.broadcastRepo.GetByID(ctx, t.BroadcastID)
	if err != nil {
		return err
	}
	if broadcast.Terminated() {
		// 任务已收口，幂等跳过
		return nil
	}

	var deferred atomic.Bool
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(perBatchConcurrency)
	for _, recipientID := range t.RecipientIDs {
		eg.Go(func() error {
			if d.dispatch(gctx, broadcast, recipientID, msg.DeliveryCount) {
				deferred.Store(true)
			}
			return nil
		})
	}
	_ = eg.Wait()

	if deferred.Load() {
		return d.requeue(ctx, msg)
	}
	return nil
}

// requeue 延迟重投同一个批次触发器，保留投递计数
func (d *Dispatcher) requeue(ctx context.Context, msg mq.Message) error {
	delay := d.cfg.SendRetryDelay()
	if cooling, remaining, err := d.throttle.Cooling(ctx); err == nil && cooling {
		delay = remaining + time.Second
	}
	return d.queue.EnqueueDelayed(ctx, trigger.TopicSendBatch, mq.Message{
		Key:           msg.Key,
		Payload:       msg.Payload,
		DeliveryCount: msg.DeliveryCount,
	}, delay)
}

// dispatch 对单个接收者执行一次投递尝试，返回是否需要延迟重入队
func (d *Dispatcher) dispatch(ctx context.Context, broadcast domain.Broadcast, recipientID string, deliveryCount int32) bool {
	recipient, err := d.recipientRepo.Get(ctx, broadcast.ID, recipientID)
	if err != nil {
		// 读失败不能吞掉确认，整批延迟重投保证至少一次
		d.logger.Error("读取接收者行失败",
			elog.Any("broadcastID", broadcast.ID),
			elog.String("recipientID", recipientID),
			elog.FieldErr(err))
		return true
	}
	if recipient.Status.Terminal() {
		// 幂等跳过
		return false
	}

	// 队列投递次数到达上限，强制终态，阻断无限重投
	if deliveryCount >= d.cfg.MaxDeliveryCount {
		d.logger.Warn("接收者进入强制终态",
			elog.Any("broadcastID", broadcast.ID),
			elog.String("recipientID", recipientID),
			elog.FieldErr(errs.ErrDeliveryCountExceeded))
		recipient.Status = domain.DeliveryStatusFaultedFinal
		return !d.persist(ctx, recipient)
	}

	// 冷却期内不做任何尝试，整个批次延迟重入队
	cooling, _, err := d.throttle.Cooling(ctx)
	if err != nil {
		// 限流状态读取失败按放行处理，限流是尽力而为的背压
		d.logger.Warn("读取限流状态失败", elog.FieldErr(err))
	}
	if cooling {
		return true
	}

	if recipient.ConversationID == "" {
		proceed, requeue := d.createConversation(ctx, &recipient)
		if !proceed {
			return requeue
		}
	}

	status := d.attemptSend(ctx, &recipient, broadcast.ContentRef)
	recipient.Status = status
	persisted := d.persist(ctx, recipient)
	if status == domain.DeliveryStatusThrottled {
		if err := d.throttle.Trip(ctx); err != nil {
			d.logger.Error("触发限流冷却失败", elog.FieldErr(err))
		}
		return true
	}
	// 终态写回失败时延迟重投，避免结果随确认一起丢失
	return !persisted
}

// createConversation 为接收者建立会话。
// 状态码带上会话创建标记，便于诊断时区分失败来源。
// 返回 proceed=false 时本次尝试到此为止，requeue 指示是否延迟重入队
func (d *Dispatcher) createConversation(ctx context.Context, recipient *domain.Recipient) (proceed, requeue bool) {
	handle, code, err := d.sender.CreateConversation(ctx, *recipient)
	recipient.RecordAttempt(code, true)
	switch {
	case err == nil && channel.IsSuccess(code):
		recipient.ConversationID = handle
		return true, false
	case channel.IsThrottled(code):
		recipient.ThrottleCount++
		recipient.Status = domain.DeliveryStatusThrottled
		d.persist(ctx, *recipient)
		if terr := d.throttle.Trip(ctx); terr != nil {
			d.logger.Error("触发限流冷却失败", elog.FieldErr(terr))
		}
		return false, true
	case channel.IsNotFound(code):
		recipient.Status = domain.DeliveryStatusNotFound
		return false, !d.persist(ctx, *recipient)
	default:
		recipient.Status = domain.DeliveryStatusFailed
		return false, !d.persist(ctx, *recipient)
	}
}

// attemptSend 发送状态机：最多 MaxSendAttempts 次进程内重试，
// 只有可重试状态码（429/5xx）之间才有抖动退避；
// 429 耗尽后归为 THROTTLED，5xx 耗尽后归为 FAILED，
// 404 立即终态，其他失败不重试
func (d *Dispatcher) attemptSend(ctx context.Context, recipient *domain.Recipient, contentRef string) domain.DeliveryStatus {
	backoff := strategy.NewExponentialBackoffRetryStrategy(
		initialAttemptDelay, maxAttemptDelay, d.cfg.MaxSendAttempts)

	for attempt := int32(1); ; attempt++ {
		code, err := d.sender.Send(ctx, recipient.ConversationID, contentRef)
		recipient.RecordAttempt(code, false)

		switch {
		case err == nil && channel.IsSuccess(code):
			return domain.DeliveryStatusSucceeded
		case channel.IsNotFound(code):
			return domain.DeliveryStatusNotFound
		case channel.IsThrottled(code):
			recipient.ThrottleCount++
			if attempt >= d.cfg.MaxSendAttempts {
				return domain.DeliveryStatusThrottled
			}
		case channel.IsRetryable(code):
			if attempt >= d.cfg.MaxSendAttempts {
				return domain.DeliveryStatusFailed
			}
		default:
			// 其他失败不重试
			return domain.DeliveryStatusFailed
		}

		delay, ok := backoff.Next()
		if !ok {
			return domain.DeliveryStatusFailed
		}
		if !d.sleep(ctx, jitter(delay)) {
			return domain.DeliveryStatusFailed
		}
	}
}

// persist 最后写入获胜的幂等Upsert，行始终反映最近一次尝试。
// 返回 false 表示写回失败，调用方据此决定是否延迟重投
func (d *Dispatcher) persist(ctx context.Context, recipient domain.Recipient) bool {
	if err := d.recipientRepo.Upsert(ctx, recipient); err != nil {
		d.logger.Error("写回接收者状态失败",
			elog.Any("broadcastID", recipient.BroadcastID),
			elog.String("recipientID", recipient.RecipientID),
			elog.FieldErr(err))
		return false
	}
	metrics.SendTotal.WithLabelValues(recipient.Status.String()).Inc()
	return true
}

func (d *Dispatcher) sleep(ctx context.Context, delay time.Duration) bool {
	if delay <= 0 {
		return true
	}
	select {
	case <-ctx.Done():
		return false
	case <-time.After(delay):
		return true
	}
}

// jitter 在 [d/2, d) 区间内随机，避免并发重试同步撞击渠道
func jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(rand.Int63n(int64(half)))
}
