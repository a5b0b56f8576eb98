//go:build unit

package batch

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/robinlg/broadcast-platform/internal/domain"
	"github.com/robinlg/broadcast-platform/internal/errs"
	"github.com/robinlg/broadcast-platform/internal/pkg/mq"
	mqmocks "github.com/robinlg/broadcast-platform/internal/pkg/mq/mocks"
	repomocks "github.com/robinlg/broadcast-platform/internal/repository/mocks"
	"github.com/robinlg/broadcast-platform/internal/service/trigger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestBuilderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BuilderTestSuite))
}

type BuilderTestSuite struct {
	suite.Suite
}

func makeRecipients(n int) []domain.Recipient {
	res := make([]domain.Recipient, 0, n)
	for i := 0; i < n; i++ {
		res = append(res, domain.Recipient{
			RecipientID: fmt.Sprintf("user-%03d", i),
			Kind:        domain.RecipientKindUser,
		})
	}
	return res
}

func (s *BuilderTestSuite) TestBuild() {
	t := s.T()
	t.Parallel()

	const broadcastID = uint64(1001)

	tests := []struct {
		name           string
		recipients     []domain.Recipient
		wantTotal      int64
		wantBatchSizes []int
		wantErr        error
	}{
		{
			name:           "250个接收者切成3批",
			recipients:     makeRecipients(250),
			wantTotal:      250,
			wantBatchSizes: []int{100, 100, 50},
		},
		{
			name:           "刚好一批",
			recipients:     makeRecipients(100),
			wantTotal:      100,
			wantBatchSizes: []int{100},
		},
		{
			name:           "单个接收者",
			recipients:     makeRecipients(1),
			wantTotal:      1,
			wantBatchSizes: []int{1},
		},
		{
			name:       "空接收者列表",
			recipients: nil,
			wantErr:    errs.ErrNoAudienceSelected,
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

			if tt.wantErr == nil {
				recipientRepo.EXPECT().BatchUpsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, recs []domain.Recipient) error {
						for _, rec := range recs {
							assert.Equal(t, broadcastID, rec.BroadcastID)
							assert.Equal(t, domain.DeliveryStatusUnknown, rec.Status)
						}
						return nil
					})
				broadcastRepo.EXPECT().SetTotalRecipients(gomock.Any(), broadcastID, tt.wantTotal).Return(nil)
			}

			b := NewBuilder(broadcastRepo, recipientRepo, queue)
			total, batches, err := b.Build(context.Background(), broadcastID, tt.recipients)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)
			require.Len(t, batches, len(tt.wantBatchSizes))

			// 分区完整性：每个接收者恰好出现在一个批次里
			seen := make(map[string]int)
			for i, batch := range batches {
				assert.Equal(t, broadcastID, batch.BroadcastID)
				assert.Equal(t, i+1, batch.BatchIndex)
				assert.Len(t, batch.RecipientIDs, tt.wantBatchSizes[i])
				assert.True(t, sort.StringsAreSorted(batch.RecipientIDs))
				for _, id := range batch.RecipientIDs {
					seen[id]++
				}
			}
			assert.Len(t, seen, len(tt.recipients))
			for id, cnt := range seen {
				assert.Equal(t, 1, cnt, "接收者 %s 出现了 %d 次", id, cnt)
			}
		})
	}
}

func (s *BuilderTestSuite) TestBuildDeterministic() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broadcastRepo := repomocks.NewMockBroadcastRepository(ctrl)
	recipientRepo := repomocks.NewMockRecipientRepository(ctrl)
	queue := mqmocks.NewMockQueue(ctrl)

	recipientRepo.EXPECT().BatchUpsert(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	broadcastRepo.EXPECT().SetTotalRecipients(gomock.Any(), uint64(7), int64(150)).Return(nil).Times(2)

	b := NewBuilder(broadcastRepo, recipientRepo, queue)

	// 两次输入顺序不同，批次划分必须一致，崩溃重放才安全
	first := makeRecipients(150)
	second := makeRecipients(150)
	for i, j := 0, len(second)-1; i < j; i, j = i+1, j-1 {
		second[i], second[j] = second[j], second[i]
	}

	_, batches1, err := b.Build(context.Background(), 7, first)
	require.NoError(t, err)
	_, batches2, err := b.Build(context.Background(), 7, second)
	require.NoError(t, err)
	assert.Equal(t, batches1, batches2)
}

func (s *BuilderTestSuite) TestBuildRepoError() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broadcastRepo := repomocks.NewMockBroadcastRepository(ctrl)
	recipientRepo := repomocks.NewMockRecipientRepository(ctrl)
	queue := mqmocks.NewMockQueue(ctrl)

	mockErr := errors.New("数据库连接失败")
	recipientRepo.EXPECT().BatchUpsert(gomock.Any(), gomock.Any()).Return(mockErr)

	b := NewBuilder(broadcastRepo, recipientRepo, queue)
	_, _, err := b.Build(context.Background(), 1, makeRecipients(3))
	assert.ErrorIs(t, err, mockErr)
}

func (s *BuilderTestSuite) TestEmitTriggers() {
	t := s.T()
	t.Parallel()

	tests := []struct {
		name         string
		batches      []trigger.SendBatch
		getQueueFunc func(ctrl *gomock.Controller) *mqmocks.MockQueue
		assertFunc   assert.ErrorAssertionFunc
	}{
		{
			name: "全部批次投递成功",
			batches: []trigger.SendBatch{
				{BroadcastID: 1, BatchIndex: 1, RecipientIDs: []string{"a"}},
				{BroadcastID: 1, BatchIndex: 2, RecipientIDs: []string{"b"}},
				{BroadcastID: 1, BatchIndex: 3, RecipientIDs: []string{"c"}},
			},
			getQueueFunc: func(ctrl *gomock.Controller) *mqmocks.MockQueue {
				queue := mqmocks.NewMockQueue(ctrl)
				queue.EXPECT().Enqueue(gomock.Any(), trigger.TopicSendBatch, gomock.Any()).
					Return(nil).Times(3)
				return queue
			},
			assertFunc: assert.NoError,
		},
		{
			name: "任一批次投递失败则整体失败",
			batches: []trigger.SendBatch{
				{BroadcastID: 1, BatchIndex: 1, RecipientIDs: []string{"a"}},
				{BroadcastID: 1, BatchIndex: 2, RecipientIDs: []string{"b"}},
			},
			getQueueFunc: func(ctrl *gomock.Controller) *mqmocks.MockQueue {
				queue := mqmocks.NewMockQueue(ctrl)
				queue.EXPECT().Enqueue(gomock.Any(), trigger.TopicSendBatch, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, msg mq.Message) error {
						if msg.Key == "1-2" {
							return errors.New("队列不可用")
						}
						return nil
					}).Times(2)
				return queue
			},
			assertFunc: assert.Error,
		},
		{
			name:    "空批次列表直接返回",
			batches: nil,
			getQueueFunc: func(ctrl *gomock.Controller) *mqmocks.MockQueue {
				return mqmocks.NewMockQueue(ctrl)
			},
			assertFunc: assert.NoError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			b := NewBuilder(
				repomocks.NewMockBroadcastRepository(ctrl),
				repomocks.NewMockRecipientRepository(ctrl),
				tt.getQueueFunc(ctrl),
			)
			err := b.EmitTriggers(context.Background(), tt.batches)
			tt.assertFunc(t, err)
		})
	}
}
