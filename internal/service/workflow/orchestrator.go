package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/robinlg/broadcast-platform/internal/domain"
	"github.com/robinlg/broadcast-platform/internal/errs"
	"github.com/robinlg/broadcast-platform/internal/pkg/retry"
	"github.com/robinlg/broadcast-platform/internal/pkg/retry/strategy"
	"github.com/robinlg/broadcast-platform/internal/repository"
	"github.com/robinlg/broadcast-platform/internal/service/aggregator"
	"github.com/robinlg/broadcast-platform/internal/service/batch"
	"github.com/robinlg/broadcast-platform/internal/service/resolver"
	"github.com/robinlg/broadcast-platform/internal/service/trigger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const (
	// 每个步骤的固定重试策略
	defaultStepInterval   = 5 * time.Second
	defaultStepMaxRetries = 3
)

// ContentStore 内容存储，外部协作方。
// Store 必须是幂等的，步骤重放时会再次调用
//
//go:generate mockgen -source=./orchestrator.go -destination=./mocks/orchestrator.mock.go -package=workflowmocks -typed ContentStore
type ContentStore interface {
	// Store 持久化渲染后的内容，返回内容引用
	Store(ctx context.Context, broadcast domain.Broadcast) (string, error)
}

// Orchestrator 广播工作流编排器。
// 顺序状态机：ResolveAndBatch → StoreContent → MarkBatchingComplete →
// ArmAggregator → FanOutSendTriggers → Done。
// 每个步骤都是"输入的纯函数 + 幂等外部写"，
// 崩溃后从头重放整个工作流是安全的。
// 任何步骤重试耗尽都使任务进入 FAILED 终态，不再执行后续步骤
type Orchestrator struct {
	broadcastRepo repository.BroadcastRepository
	resolver      resolver.Service
	builder       batch.Builder
	aggregator    *aggregator.Aggregator
	contentStore  ContentStore

	retryPolicy    *retry.Config
	stepInterval   time.Duration
	stepMaxRetries int32
	tracer         trace.Tracer
	logger         *elog.Component
}

// NewOrchestrator 创建广播工作流编排器
func NewOrchestrator(
	broadcastRepo repository.BroadcastRepository,
	resolverSvc resolver.Service,
	builder batch.Builder,
	agg *aggregator.Aggregator,
	contentStore ContentStore,
	cfg domain.BroadcastConfig,
) *Orchestrator {
	return &Orchestrator{
		broadcastRepo:  broadcastRepo,
		resolver:       resolverSvc,
		builder:        builder,
		aggregator:     agg,
		contentStore:   contentStore,
		retryPolicy:    cfg.WorkflowRetryPolicy,
		stepInterval:   defaultStepInterval,
		stepMaxRetries: defaultStepMaxRetries,
		tracer:         otel.Tracer("broadcast-platform/workflow"),
		logger:         elog.DefaultLogger,
	}
}

// jobState 工作流在步骤之间传递的状态
type jobState struct {
	broadcast domain.Broadcast
	total     int64
	batches   []trigger.SendBatch
}

type step struct {
	name string
	fn   func(ctx context.Context, state *jobState) error
}

// Run 执行一个广播任务的完整工作流
func (o *Orchestrator) Run(ctx context.Context, broadcastID uint64) error {
	broadcast, err := o.broadcastRepo.GetByID(ctx, broadcastID)
	if err != nil {
		return err
	}
	if broadcast.Terminated() {
		return fmt.Errorf("%w: id %d", errs.ErrBroadcastTerminated, broadcastID)
	}

	state := &jobState{broadcast: broadcast}
	steps := []step{
		{name: "ResolveAndBatch", fn: o.resolveAndBatch},
		{name: "StoreContent", fn: o.storeContent},
		{name: "MarkBatchingComplete", fn: o.markBatchingComplete},
		{name: "ArmAggregator", fn: o.armAggregator},
		{name: "FanOutSendTriggers", fn: o.fanOutSendTriggers},
	}
	for _, st := range steps {
		if err := o.runStep(ctx, st, state); err != nil {
			// 快速失败：记录异常并放弃后续步骤
			if merr := o.broadcastRepo.MarkFailed(ctx, broadcastID, err.Error()); merr != nil {
				o.logger.Error("标记任务失败状态时出错", elog.FieldErr(merr))
			}
			o.logger.Error("工作流失败",
				elog.Any("broadcastID", broadcastID),
				elog.String("step", st.name),
				elog.FieldErr(err))
			return err
		}
	}
	return nil
}

// runStep 带固定间隔重试地执行一个步骤
func (o *Orchestrator) runStep(ctx context.Context, st step, state *jobState) error {
	ctx, span := o.tracer.Start(ctx, "workflow."+st.name)
	defer span.End()

	retryStrategy := o.newStepStrategy()
	for {
		err := st.fn(ctx, state)
		if err == nil {
			return nil
		}
		// 空受众是业务性失败，重试没有意义
		if errors.Is(err, errs.ErrNoAudienceSelected) {
			span.RecordError(err)
			return err
		}
		delay, ok := retryStrategy.Next()
		if !ok {
			span.RecordError(err)
			return fmt.Errorf("步骤 %s 重试耗尽: %w", st.name, err)
		}
		o.logger.Warn("步骤执行失败，稍后重试",
			elog.String("step", st.name),
			elog.FieldErr(err))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

// newStepStrategy 每个步骤一个独立的策略实例，重试计数不跨步骤共享。
// 配置的策略不合法时退回固定间隔
func (o *Orchestrator) newStepStrategy() strategy.Strategy {
	if o.retryPolicy != nil {
		if s, err := retry.NewRetry(*o.retryPolicy); err == nil {
			return s
		}
		o.logger.Warn("工作流重试策略配置不合法，使用固定间隔")
	}
	return strategy.NewFixedIntervalRetryStrategy(o.stepInterval, o.stepMaxRetries)
}

// resolveAndBatch 受众解析 + 分批初始化。
// 片段级失败只追加告警，不影响任务继续
func (o *Orchestrator) resolveAndBatch(ctx context.Context, state *jobState) error {
	result, err := o.resolver.Resolve(ctx, state.broadcast)
	if err != nil {
		return err
	}
	if result.Warning != nil {
		if werr := o.broadcastRepo.AppendWarning(ctx, state.broadcast.ID, result.Warning.Error()); werr != nil {
			o.logger.Error("追加任务告警失败", elog.FieldErr(werr))
		}
	}

	total, batches, err := o.builder.Build(ctx, state.broadcast.ID, result.Recipients)
	if err != nil {
		return err
	}
	state.total = total
	state.batches = batches
	return nil
}

func (o *Orchestrator) storeContent(ctx context.Context, state *jobState) error {
	ref, err := o.contentStore.Store(ctx, state.broadcast)
	if err != nil {
		return fmt.Errorf("存储渲染内容失败: %w", err)
	}
	if err := o.broadcastRepo.SetContentRef(ctx, state.broadcast.ID, ref); err != nil {
		return err
	}
	state.broadcast.ContentRef = ref
	return nil
}

// markBatchingComplete 任务进入 SENDING 状态并记录开始分发时间。
// 重放时任务可能已经处于 SENDING，此时直接跳过
func (o *Orchestrator) markBatchingComplete(ctx context.Context, state *jobState) error {
	current, err := o.broadcastRepo.GetByID(ctx, state.broadcast.ID)
	if err != nil {
		return err
	}
	if current.Status != domain.BroadcastStatusPending {
		state.broadcast = current
		return nil
	}
	current.Status = domain.BroadcastStatusSending
	current.SetSentTime()
	if err := o.broadcastRepo.CASStatus(ctx, current); err != nil {
		return err
	}
	state.broadcast = current
	return nil
}

func (o *Orchestrator) armAggregator(ctx context.Context, state *jobState) error {
	return o.aggregator.ReArm(ctx, state.broadcast.ID)
}

// fanOutSendTriggers 并行投递全部批次触发器并等待全部完成
func (o *Orchestrator) fanOutSendTriggers(ctx context.Context, state *jobState) error {
	return o.builder.EmitTriggers(ctx, state.batches)
}
