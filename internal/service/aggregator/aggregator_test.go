//go:build unit

package aggregator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robinlg/broadcast-platform/internal/domain"
	"github.com/robinlg/broadcast-platform/internal/pkg/mq"
	mqmocks "github.com/robinlg/broadcast-platform/internal/pkg/mq/mocks"
	repomocks "github.com/robinlg/broadcast-platform/internal/repository/mocks"
	"github.com/robinlg/broadcast-platform/internal/service/trigger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestAggregatorSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AggregatorTestSuite))
}

type AggregatorTestSuite struct {
	suite.Suite
}

const testMaxRetryWindow = 35 * time.Minute

func (s *AggregatorTestSuite) TestAggregate() {
	t := s.T()
	t.Parallel()

	const broadcastID = uint64(42)

	tests := []struct {
		name          string
		broadcast     domain.Broadcast
		counts        map[domain.DeliveryStatus]int64
		wantRollup    domain.Rollup
		wantCompleted bool
	}{
		{
			name: "全部到达终态即收口",
			broadcast: domain.Broadcast{
				ID:              broadcastID,
				Status:          domain.BroadcastStatusSending,
				TotalRecipients: 10,
				SentTime:        time.Now(),
			},
			counts: map[domain.DeliveryStatus]int64{
				domain.DeliveryStatusSucceeded: 6,
				domain.DeliveryStatusFailed:    2,
				domain.DeliveryStatusThrottled: 2,
			},
			wantRollup:    domain.Rollup{Succeeded: 6, Failed: 2, Throttled: 2},
			wantCompleted: true,
		},
		{
			name: "NOT_FOUND和FAULTED_FINAL计入失败桶",
			broadcast: domain.Broadcast{
				ID:              broadcastID,
				Status:          domain.BroadcastStatusSending,
				TotalRecipients: 10,
				SentTime:        time.Now(),
			},
			counts: map[domain.DeliveryStatus]int64{
				domain.DeliveryStatusSucceeded:    5,
				domain.DeliveryStatusFailed:       1,
				domain.DeliveryStatusNotFound:     2,
				domain.DeliveryStatusFaultedFinal: 2,
			},
			wantRollup:    domain.Rollup{Succeeded: 5, Failed: 5},
			wantCompleted: true,
		},
		{
			name: "仍有未知态且未超时则不收口",
			broadcast: domain.Broadcast{
				ID:              broadcastID,
				Status:          domain.BroadcastStatusSending,
				TotalRecipients: 10,
				SentTime:        time.Now(),
			},
			counts: map[domain.DeliveryStatus]int64{
				domain.DeliveryStatusSucceeded:       7,
				domain.DeliveryStatusUnknown:         2,
				domain.DeliveryStatusFaultedRetrying: 1,
			},
			wantRollup:    domain.Rollup{Succeeded: 7, Unknown: 3},
			wantCompleted: false,
		},
		{
			name: "超过硬超时窗口强制收口",
			broadcast: domain.Broadcast{
				ID:              broadcastID,
				Status:          domain.BroadcastStatusSending,
				TotalRecipients: 10,
				SentTime:        time.Now().Add(-testMaxRetryWindow - time.Minute),
			},
			counts: map[domain.DeliveryStatus]int64{
				domain.DeliveryStatusSucceeded: 8,
				domain.DeliveryStatusUnknown:   2,
			},
			wantRollup:    domain.Rollup{Succeeded: 8, Unknown: 2},
			wantCompleted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			broadcastRepo := repomocks.NewMockBroadcastRepository(ctrl)
			recipientRepo := repomocks.NewMockRecipientRepository(ctrl)
			queue := mqmocks.NewMockQueue(ctrl)

			broadcastRepo.EXPECT().GetByID(gomock.Any(), broadcastID).Return(tt.broadcast, nil)
			recipientRepo.EXPECT().CountByStatus(gomock.Any(), broadcastID).Return(tt.counts, nil)
			broadcastRepo.EXPECT().UpdateRollup(gomock.Any(), broadcastID, tt.wantRollup, tt.wantCompleted).
				Return(nil)

			agg := NewAggregator(broadcastRepo, recipientRepo, queue, testMaxRetryWindow)
			rollup, completed, err := agg.Aggregate(context.Background(), broadcastID)

			require.NoError(t, err)
			assert.Equal(t, tt.wantRollup, rollup)
			assert.Equal(t, tt.wantCompleted, completed)
		})
	}
}

// 已收口的任务不再重算，直接返回已持久化的汇总
func (s *AggregatorTestSuite) TestAggregateAlreadyCompleted() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broadcastRepo := repomocks.NewMockBroadcastRepository(ctrl)
	recipientRepo := repomocks.NewMockRecipientRepository(ctrl)
	queue := mqmocks.NewMockQueue(ctrl)

	want := domain.Rollup{Succeeded: 9, Failed: 1}
	broadcastRepo.EXPECT().GetByID(gomock.Any(), uint64(42)).
		Return(domain.Broadcast{
			ID:     42,
			Status: domain.BroadcastStatusCompleted,
			Rollup: want,
		}, nil)

	agg := NewAggregator(broadcastRepo, recipientRepo, queue, testMaxRetryWindow)
	rollup, completed, err := agg.Aggregate(context.Background(), 42)

	require.NoError(t, err)
	assert.True(t, completed)
	assert.Equal(t, want, rollup)
}

// 编排失败的任务保留FAILED终态：残留的汇总触发器不重算、
// 不写回，更不能把状态收口成COMPLETED
func (s *AggregatorTestSuite) TestAggregateFailedBroadcastKeepsTerminalStatus() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broadcastRepo := repomocks.NewMockBroadcastRepository(ctrl)
	recipientRepo := repomocks.NewMockRecipientRepository(ctrl)
	queue := mqmocks.NewMockQueue(ctrl)

	broadcastRepo.EXPECT().GetByID(gomock.Any(), uint64(42)).
		Return(domain.Broadcast{
			ID:              42,
			Status:          domain.BroadcastStatusFailed,
			TotalRecipients: 10,
			SentTime:        time.Now().Add(-testMaxRetryWindow - time.Minute),
		}, nil)

	agg := NewAggregator(broadcastRepo, recipientRepo, queue, testMaxRetryWindow)
	rollup, completed, err := agg.Aggregate(context.Background(), 42)

	require.NoError(t, err)
	assert.True(t, completed)
	assert.Equal(t, domain.Rollup{}, rollup)
}

func (s *AggregatorTestSuite) TestHandleTrigger() {
	t := s.T()
	t.Parallel()

	tests := []struct {
		name          string
		counts        map[domain.DeliveryStatus]int64
		wantCompleted bool
	}{
		{
			name: "未收口时延迟重挂自身",
			counts: map[domain.DeliveryStatus]int64{
				domain.DeliveryStatusSucceeded: 3,
				domain.DeliveryStatusUnknown:   7,
			},
			wantCompleted: false,
		},
		{
			name: "收口后不再重挂",
			counts: map[domain.DeliveryStatus]int64{
				domain.DeliveryStatusSucceeded: 10,
			},
			wantCompleted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			broadcastRepo := repomocks.NewMockBroadcastRepository(ctrl)
			recipientRepo := repomocks.NewMockRecipientRepository(ctrl)
			queue := mqmocks.NewMockQueue(ctrl)

			broadcastRepo.EXPECT().GetByID(gomock.Any(), uint64(42)).
				Return(domain.Broadcast{
					ID:              42,
					Status:          domain.BroadcastStatusSending,
					TotalRecipients: 10,
					SentTime:        time.Now(),
				}, nil)
			recipientRepo.EXPECT().CountByStatus(gomock.Any(), uint64(42)).Return(tt.counts, nil)
			broadcastRepo.EXPECT().UpdateRollup(gomock.Any(), uint64(42), gomock.Any(), tt.wantCompleted).
				Return(nil)
			if !tt.wantCompleted {
				queue.EXPECT().EnqueueDelayed(gomock.Any(), trigger.TopicAggregate, gomock.Any(), defaultReArmDelay).
					Return(nil)
			}

			agg := NewAggregator(broadcastRepo, recipientRepo, queue, testMaxRetryWindow)
			msg, err := trigger.Aggregate{BroadcastID: 42}.Message()
			require.NoError(t, err)

			assert.NoError(t, agg.HandleTrigger(context.Background(), msg))
		})
	}
}

func (s *AggregatorTestSuite) TestHandleTriggerBadPayload() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	agg := NewAggregator(
		repomocks.NewMockBroadcastRepository(ctrl),
		repomocks.NewMockRecipientRepository(ctrl),
		mqmocks.NewMockQueue(ctrl),
		testMaxRetryWindow,
	)
	err := agg.HandleTrigger(context.Background(), mq.Message{Payload: []byte("not-json")})
	assert.Error(t, err)
}

func (s *AggregatorTestSuite) TestAggregateCountError() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broadcastRepo := repomocks.NewMockBroadcastRepository(ctrl)
	recipientRepo := repomocks.NewMockRecipientRepository(ctrl)

	mockErr := errors.New("数据库连接失败")
	broadcastRepo.EXPECT().GetByID(gomock.Any(), uint64(42)).
		Return(domain.Broadcast{ID: 42, Status: domain.BroadcastStatusSending, TotalRecipients: 10}, nil)
	recipientRepo.EXPECT().CountByStatus(gomock.Any(), uint64(42)).
		Return(nil, mockErr)

	agg := NewAggregator(broadcastRepo, recipientRepo, mqmocks.NewMockQueue(ctrl), testMaxRetryWindow)
	_, _, err := agg.Aggregate(context.Background(), 42)
	assert.ErrorIs(t, err, mockErr)
}
