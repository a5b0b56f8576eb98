//go:build unit

package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robinlg/broadcast-platform/internal/domain"
	"github.com/robinlg/broadcast-platform/internal/errs"
	mqmocks "github.com/robinlg/broadcast-platform/internal/pkg/mq/mocks"
	"github.com/robinlg/broadcast-platform/internal/pkg/retry"
	repomocks "github.com/robinlg/broadcast-platform/internal/repository/mocks"
	"github.com/robinlg/broadcast-platform/internal/service/aggregator"
	batchmocks "github.com/robinlg/broadcast-platform/internal/service/batch/mocks"
	"github.com/robinlg/broadcast-platform/internal/service/resolver"
	resolvermocks "github.com/robinlg/broadcast-platform/internal/service/resolver/mocks"
	"github.com/robinlg/broadcast-platform/internal/service/trigger"
	workflowmocks "github.com/robinlg/broadcast-platform/internal/service/workflow/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestOrchestratorSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OrchestratorTestSuite))
}

type OrchestratorTestSuite struct {
	suite.Suite
}

type orchestratorDeps struct {
	broadcastRepo *repomocks.MockBroadcastRepository
	resolverSvc   *resolvermocks.MockService
	builder       *batchmocks.MockBuilder
	queue         *mqmocks.MockQueue
	contentStore  *workflowmocks.MockContentStore
}

func newOrchestratorDeps(ctrl *gomock.Controller) orchestratorDeps {
	return orchestratorDeps{
		broadcastRepo: repomocks.NewMockBroadcastRepository(ctrl),
		resolverSvc:   resolvermocks.NewMockService(ctrl),
		builder:       batchmocks.NewMockBuilder(ctrl),
		queue:         mqmocks.NewMockQueue(ctrl),
		contentStore:  workflowmocks.NewMockContentStore(ctrl),
	}
}

// orchestrator 汇总器只在 ArmAggregator 步骤被触碰，
// 它的仓储依赖不应该被调用，这里用独立的mock兜底
func (d orchestratorDeps) orchestrator(ctrl *gomock.Controller) *Orchestrator {
	agg := aggregator.NewAggregator(
		repomocks.NewMockBroadcastRepository(ctrl),
		repomocks.NewMockRecipientRepository(ctrl),
		d.queue,
		35*time.Minute,
	)
	o := NewOrchestrator(d.broadcastRepo, d.resolverSvc, d.builder, agg, d.contentStore,
		domain.NewBroadcastConfig(domain.BroadcastConfig{}))
	// 缩短重试间隔，避免测试等待
	o.stepInterval = time.Millisecond
	return o
}

func pendingBroadcast() domain.Broadcast {
	return domain.Broadcast{
		ID:     77,
		Status: domain.BroadcastStatusPending,
		Audience: domain.Audience{
			Type:    domain.AudienceUserList,
			UserIDs: []string{"u1", "u2"},
		},
	}
}

func testRecipients() []domain.Recipient {
	return []domain.Recipient{
		{RecipientID: "u1", Kind: domain.RecipientKindUser},
		{RecipientID: "u2", Kind: domain.RecipientKindUser},
	}
}

func (s *OrchestratorTestSuite) TestRunHappyPath() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	deps := newOrchestratorDeps(ctrl)

	broadcast := pendingBroadcast()
	batches := []trigger.SendBatch{{BroadcastID: 77, BatchIndex: 1, RecipientIDs: []string{"u1", "u2"}}}

	deps.broadcastRepo.EXPECT().GetByID(gomock.Any(), uint64(77)).Return(broadcast, nil)
	deps.resolverSvc.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return(resolver.Result{Recipients: testRecipients()}, nil)
	deps.builder.EXPECT().Build(gomock.Any(), uint64(77), gomock.Any()).
		Return(int64(2), batches, nil)
	deps.contentStore.EXPECT().Store(gomock.Any(), gomock.Any()).Return("content-77", nil)
	deps.broadcastRepo.EXPECT().SetContentRef(gomock.Any(), uint64(77), "content-77").Return(nil)

	// MarkBatchingComplete 重新读取最新状态后推进到 SENDING
	deps.broadcastRepo.EXPECT().GetByID(gomock.Any(), uint64(77)).Return(broadcast, nil)
	deps.broadcastRepo.EXPECT().CASStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b domain.Broadcast) error {
			assert.Equal(t, domain.BroadcastStatusSending, b.Status)
			assert.False(t, b.SentTime.IsZero())
			return nil
		})

	deps.queue.EXPECT().EnqueueDelayed(gomock.Any(), trigger.TopicAggregate, gomock.Any(), gomock.Any()).
		Return(nil)
	deps.builder.EXPECT().EmitTriggers(gomock.Any(), batches).Return(nil)

	o := deps.orchestrator(ctrl)
	require.NoError(t, o.Run(context.Background(), 77))
}

// 空受众是业务性失败：不重试，任务直接进入FAILED终态
func (s *OrchestratorTestSuite) TestRunEmptyAudienceFailsFast() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	deps := newOrchestratorDeps(ctrl)

	deps.broadcastRepo.EXPECT().GetByID(gomock.Any(), uint64(77)).Return(pendingBroadcast(), nil)
	deps.resolverSvc.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return(resolver.Result{}, errs.ErrNoAudienceSelected).Times(1)
	deps.broadcastRepo.EXPECT().MarkFailed(gomock.Any(), uint64(77), gomock.Any()).Return(nil)

	o := deps.orchestrator(ctrl)
	err := o.Run(context.Background(), 77)
	assert.ErrorIs(t, err, errs.ErrNoAudienceSelected)
}

// 步骤重试耗尽后任务失败，后续步骤不再执行
func (s *OrchestratorTestSuite) TestRunStepRetryExhausted() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	deps := newOrchestratorDeps(ctrl)

	broadcast := pendingBroadcast()
	mockErr := errors.New("内容存储不可用")

	deps.broadcastRepo.EXPECT().GetByID(gomock.Any(), uint64(77)).Return(broadcast, nil)
	deps.resolverSvc.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return(resolver.Result{Recipients: testRecipients()}, nil)
	deps.builder.EXPECT().Build(gomock.Any(), uint64(77), gomock.Any()).
		Return(int64(2), nil, nil)
	// 首次执行 + 固定次数重试
	deps.contentStore.EXPECT().Store(gomock.Any(), gomock.Any()).
		Return("", mockErr).Times(int(defaultStepMaxRetries) + 1)
	deps.broadcastRepo.EXPECT().MarkFailed(gomock.Any(), uint64(77), gomock.Any()).Return(nil)

	o := deps.orchestrator(ctrl)
	err := o.Run(context.Background(), 77)
	assert.ErrorIs(t, err, mockErr)
}

// 配置的重试策略覆盖缺省的固定间隔
func (s *OrchestratorTestSuite) TestRunConfiguredRetryPolicy() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	deps := newOrchestratorDeps(ctrl)

	mockErr := errors.New("内容存储不可用")
	deps.broadcastRepo.EXPECT().GetByID(gomock.Any(), uint64(77)).Return(pendingBroadcast(), nil)
	deps.resolverSvc.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return(resolver.Result{Recipients: testRecipients()}, nil)
	deps.builder.EXPECT().Build(gomock.Any(), uint64(77), gomock.Any()).
		Return(int64(2), nil, nil)
	// 策略只允许1次重试：首次执行 + 1次重试
	deps.contentStore.EXPECT().Store(gomock.Any(), gomock.Any()).
		Return("", mockErr).Times(2)
	deps.broadcastRepo.EXPECT().MarkFailed(gomock.Any(), uint64(77), gomock.Any()).Return(nil)

	agg := aggregator.NewAggregator(
		repomocks.NewMockBroadcastRepository(ctrl),
		repomocks.NewMockRecipientRepository(ctrl),
		deps.queue,
		35*time.Minute,
	)
	cfg := domain.NewBroadcastConfig(domain.BroadcastConfig{
		WorkflowRetryPolicy: &retry.Config{
			Type: "fixed",
			FixedInterval: &retry.FixedIntervalConfig{
				Interval:   time.Millisecond,
				MaxRetries: 1,
			},
		},
	})
	o := NewOrchestrator(deps.broadcastRepo, deps.resolverSvc, deps.builder, agg, deps.contentStore, cfg)

	err := o.Run(context.Background(), 77)
	assert.ErrorIs(t, err, mockErr)
}

// 瞬时失败在重试后恢复，任务照常完成
func (s *OrchestratorTestSuite) TestRunStepRecoversAfterRetry() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	deps := newOrchestratorDeps(ctrl)

	broadcast := pendingBroadcast()

	deps.broadcastRepo.EXPECT().GetByID(gomock.Any(), uint64(77)).Return(broadcast, nil)
	deps.resolverSvc.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return(resolver.Result{Recipients: testRecipients()}, nil)
	deps.builder.EXPECT().Build(gomock.Any(), uint64(77), gomock.Any()).
		Return(int64(2), nil, nil)
	gomock.InOrder(
		deps.contentStore.EXPECT().Store(gomock.Any(), gomock.Any()).
			Return("", errors.New("超时")),
		deps.contentStore.EXPECT().Store(gomock.Any(), gomock.Any()).
			Return("content-77", nil),
	)
	deps.broadcastRepo.EXPECT().SetContentRef(gomock.Any(), uint64(77), "content-77").Return(nil)
	deps.broadcastRepo.EXPECT().GetByID(gomock.Any(), uint64(77)).Return(broadcast, nil)
	deps.broadcastRepo.EXPECT().CASStatus(gomock.Any(), gomock.Any()).Return(nil)
	deps.queue.EXPECT().EnqueueDelayed(gomock.Any(), trigger.TopicAggregate, gomock.Any(), gomock.Any()).
		Return(nil)
	deps.builder.EXPECT().EmitTriggers(gomock.Any(), gomock.Any()).Return(nil)

	o := deps.orchestrator(ctrl)
	require.NoError(t, o.Run(context.Background(), 77))
}

// 片段级告警追加到任务上，不影响工作流继续
func (s *OrchestratorTestSuite) TestRunAppendsResolveWarning() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	deps := newOrchestratorDeps(ctrl)

	broadcast := pendingBroadcast()

	deps.broadcastRepo.EXPECT().GetByID(gomock.Any(), uint64(77)).Return(broadcast, nil)
	deps.resolverSvc.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return(resolver.Result{
			Recipients: testRecipients(),
			Warning:    errors.New("团队 team-2 名单解析失败"),
		}, nil)
	deps.broadcastRepo.EXPECT().AppendWarning(gomock.Any(), uint64(77), gomock.Any()).Return(nil)
	deps.builder.EXPECT().Build(gomock.Any(), uint64(77), gomock.Any()).
		Return(int64(2), nil, nil)
	deps.contentStore.EXPECT().Store(gomock.Any(), gomock.Any()).Return("content-77", nil)
	deps.broadcastRepo.EXPECT().SetContentRef(gomock.Any(), uint64(77), "content-77").Return(nil)
	deps.broadcastRepo.EXPECT().GetByID(gomock.Any(), uint64(77)).Return(broadcast, nil)
	deps.broadcastRepo.EXPECT().CASStatus(gomock.Any(), gomock.Any()).Return(nil)
	deps.queue.EXPECT().EnqueueDelayed(gomock.Any(), trigger.TopicAggregate, gomock.Any(), gomock.Any()).
		Return(nil)
	deps.builder.EXPECT().EmitTriggers(gomock.Any(), gomock.Any()).Return(nil)

	o := deps.orchestrator(ctrl)
	require.NoError(t, o.Run(context.Background(), 77))
}

// 重放时任务已处于SENDING，MarkBatchingComplete幂等跳过
func (s *OrchestratorTestSuite) TestRunReplaySkipsStatusTransition() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	deps := newOrchestratorDeps(ctrl)

	broadcast := pendingBroadcast()
	sending := broadcast
	sending.Status = domain.BroadcastStatusSending
	sending.SentTime = time.Now()

	deps.broadcastRepo.EXPECT().GetByID(gomock.Any(), uint64(77)).Return(broadcast, nil)
	deps.resolverSvc.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return(resolver.Result{Recipients: testRecipients()}, nil)
	deps.builder.EXPECT().Build(gomock.Any(), uint64(77), gomock.Any()).
		Return(int64(2), nil, nil)
	deps.contentStore.EXPECT().Store(gomock.Any(), gomock.Any()).Return("content-77", nil)
	deps.broadcastRepo.EXPECT().SetContentRef(gomock.Any(), uint64(77), "content-77").Return(nil)
	// 已经是SENDING，不再做状态推进
	deps.broadcastRepo.EXPECT().GetByID(gomock.Any(), uint64(77)).Return(sending, nil)
	deps.queue.EXPECT().EnqueueDelayed(gomock.Any(), trigger.TopicAggregate, gomock.Any(), gomock.Any()).
		Return(nil)
	deps.builder.EXPECT().EmitTriggers(gomock.Any(), gomock.Any()).Return(nil)

	o := deps.orchestrator(ctrl)
	require.NoError(t, o.Run(context.Background(), 77))
}

// 已收口的任务不允许再次编排
func (s *OrchestratorTestSuite) TestRunTerminatedBroadcast() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	deps := newOrchestratorDeps(ctrl)

	deps.broadcastRepo.EXPECT().GetByID(gomock.Any(), uint64(77)).
		Return(domain.Broadcast{ID: 77, Status: domain.BroadcastStatusCompleted}, nil)

	o := deps.orchestrator(ctrl)
	err := o.Run(context.Background(), 77)
	assert.ErrorIs(t, err, errs.ErrBroadcastTerminated)
}
