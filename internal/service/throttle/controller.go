package throttle

import (
	"context"
	"errors"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/robinlg/broadcast-platform/internal/errs"
	"github.com/robinlg/broadcast-platform/internal/pkg/metrics"
	"github.com/robinlg/broadcast-platform/internal/repository"
)

// 冷却截止时间提前一小段，避免延迟重入队的消息立刻再次撞上冷却期
const safetyMargin = 15 * time.Second

// 版本冲突说明别的进程刚写过，读回最新值再决定
const maxCASAttempts = 3

// Controller 全局限流控制器。
// 状态只有一个共享的"在此之前不要发送"时间戳，
// 对所有分发进程生效，过期即隐式回到放行状态
//
//go:generate mockgen -source=./controller.go -destination=./mocks/controller.mock.go -package=throttlemocks -typed Controller
type Controller interface {
	// Cooling 是否处于冷却期，处于冷却期时返回剩余时长
	Cooling(ctx context.Context) (bool, time.Duration, error)
	// Trip 任意一次发送观察到限流响应时触发冷却
	Trip(ctx context.Context) error
}

type controller struct {
	repo       repository.ThrottleStateRepository
	retryDelay time.Duration
	logger     *elog.Component
}

// NewController 创建限流控制器
func NewController(repo repository.ThrottleStateRepository, retryDelay time.Duration) Controller {
	return &controller{
		repo:       repo,
		retryDelay: retryDelay,
		logger:     elog.DefaultLogger,
	}
}

func (c *controller) Cooling(ctx context.Context) (bool, time.Duration, error) {
	state, err := c.repo.Get(ctx)
	if err != nil {
		return false, 0, err
	}
	now := time.Now()
	if !state.Cooling(now) {
		return false, 0, nil
	}
	return true, state.ResumeTime.Sub(now), nil
}

// Trip 把冷却截止时间推进到 now + retryDelay - safetyMargin。
// 使用乐观并发：版本冲突说明别的进程已经写过更新的截止时间，
// 只要截止时间不倒退就认为成功
func (c *controller) Trip(ctx context.Context) error {
	resumeTime := time.Now().Add(c.retryDelay - safetyMargin)
	for i := 0; i < maxCASAttempts; i++ {
		state, err := c.repo.Get(ctx)
		if err != nil {
			return err
		}
		if !state.ResumeTime.Before(resumeTime) {
			// 已经有更晚的冷却截止时间，无需再写
			return nil
		}
		state.ResumeTime = resumeTime
		err = c.repo.CompareAndSwap(ctx, state)
		if err == nil {
			metrics.ThrottleTrips.Inc()
			c.logger.Warn("触发全局限流冷却",
				elog.String("resumeTime", resumeTime.Format(time.RFC3339)))
			return nil
		}
		if !errors.Is(err, errs.ErrThrottleStateVersionMismatch) {
			return err
		}
	}
	// 多次冲突说明冷却已经被别的进程触发，按成功处理
	return nil
}
