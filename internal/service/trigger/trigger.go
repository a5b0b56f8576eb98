package trigger

import (
	"encoding/json"
	"fmt"

	"github.com/robinlg/broadcast-platform/internal/pkg/mq"
)

// 队列主题
const (
	// TopicSendBatch 批次发送触发器
	TopicSendBatch = "broadcast.send_batch"
	// TopicAggregate 汇总重算触发器
	TopicAggregate = "broadcast.aggregate"
)

// SendBatch 一个批次的发送触发器。
// 以 (BroadcastID, BatchIndex) 为确定性键，重复投递是幂等的
type SendBatch struct {
	BroadcastID  uint64   `json:"broadcastId"`
	BatchIndex   int      `json:"batchIndex"` // 从1开始
	RecipientIDs []string `json:"recipientIds"`
}

// Key 批次的确定性分区键
func (t SendBatch) Key() string {
	return fmt.Sprintf("%d-%d", t.BroadcastID, t.BatchIndex)
}

// Message 编码为队列消息
func (t SendBatch) Message() (mq.Message, error) {
	payload, err := json.Marshal(t)
	if err != nil {
		return mq.Message{}, fmt.Errorf("序列化批次触发器失败: %w", err)
	}
	return mq.Message{Key: t.Key(), Payload: payload}, nil
}

// Aggregate 汇总重算触发器
type Aggregate struct {
	BroadcastID uint64 `json:"broadcastId"`
}

// Message 编码为队列消息
func (t Aggregate) Message() (mq.Message, error) {
	payload, err := json.Marshal(t)
	if err != nil {
		return mq.Message{}, fmt.Errorf("序列化汇总触发器失败: %w", err)
	}
	return mq.Message{Key: fmt.Sprintf("%d", t.BroadcastID), Payload: payload}, nil
}
