package aggregator

import (
	"context"
	"time"

	"github.com/meoying/dlock-go"
	"github.com/robinlg/broadcast-platform/internal/pkg/loopjob"
	"github.com/robinlg/broadcast-platform/internal/repository"
)

// Sweeper 汇总兜底循环。
// 汇总触发器丢失（进程崩溃、死信）时，分发中的任务会停在半路，
// 这个循环周期性地为它们重挂触发器
type Sweeper struct {
	broadcastRepo repository.BroadcastRepository
	aggregator    *Aggregator
	dclient       dlock.Client

	batchSize int
}

// NewSweeper 创建汇总兜底循环
func NewSweeper(
	broadcastRepo repository.BroadcastRepository,
	agg *Aggregator,
	dclient dlock.Client,
) *Sweeper {
	const defaultBatchSize = 10
	return &Sweeper{
		broadcastRepo: broadcastRepo,
		aggregator:    agg,
		dclient:       dclient,
		batchSize:     defaultBatchSize,
	}
}

// Start 启动兜底循环
// 当 ctx 被取消或者关闭的时候，就会结束循环
func (s *Sweeper) Start(ctx context.Context) {
	const key = "broadcast_platform_aggregation_sweeper"
	lj := loopjob.NewInfiniteLoop(s.dclient, s.sweepIncomplete, key)
	lj.Run(ctx)
}

// sweepIncomplete 为所有分发中的任务重挂汇总触发器
func (s *Sweeper) sweepIncomplete(ctx context.Context) error {
	const defaultTimeout = 3 * time.Second
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	const offset = 0
	broadcasts, err := s.broadcastRepo.FindIncomplete(ctx, offset, s.batchSize)
	if err != nil {
		return err
	}
	if len(broadcasts) == 0 {
		time.Sleep(time.Second)
		return nil
	}
	for _, b := range broadcasts {
		if err := s.aggregator.ReArm(ctx, b.ID); err != nil {
			return err
		}
	}
	return nil
}
