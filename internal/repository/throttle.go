package repository

import (
	"context"
	"time"

	"github.com/robinlg/broadcast-platform/internal/domain"
	"github.com/robinlg/broadcast-platform/internal/repository/dao"
)

// ThrottleStateRepository 全局限流状态仓储接口
//
//go:generate mockgen -source=./throttle.go -destination=./mocks/throttle.mock.go -package=repomocks -typed ThrottleStateRepository
type ThrottleStateRepository interface {
	// Get 读取全局限流状态
	Get(ctx context.Context) (domain.ThrottleState, error)
	// CompareAndSwap 以版本号为条件更新冷却截止时间
	CompareAndSwap(ctx context.Context, state domain.ThrottleState) error
}

type throttleStateRepository struct {
	dao dao.ThrottleStateDAO
}

// NewThrottleStateRepository 创建限流状态仓储实例
func NewThrottleStateRepository(d dao.ThrottleStateDAO) ThrottleStateRepository {
	return &throttleStateRepository{dao: d}
}

func (r *throttleStateRepository) Get(ctx context.Context) (domain.ThrottleState, error) {
	state, err := r.dao.Get(ctx)
	if err != nil {
		return domain.ThrottleState{}, err
	}
	return domain.ThrottleState{
		ResumeTime: time.UnixMilli(state.ResumeTime),
		Version:    state.Version,
	}, nil
}

func (r *throttleStateRepository) CompareAndSwap(ctx context.Context, state domain.ThrottleState) error {
	return r.dao.CompareAndSwap(ctx, dao.ThrottleState{
		ResumeTime: state.ResumeTime.UnixMilli(),
		Version:    state.Version,
	})
}
