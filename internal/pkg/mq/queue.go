package mq

import (
	"context"
	"encoding/json"
	"time"
)

// Message 队列消息。队列提供至少一次投递语义，
// DeliveryCount 由队列在每次投递时递增，消费者用它实现死信上限
type Message struct {
	Key           string          `json:"key"`  // 业务键，同键消息重复入队是安全的
	Payload       json.RawMessage `json:"payload"`
	DeliveryCount int32           `json:"deliveryCount"`
	EnqueueTime   int64           `json:"enqueueTime"`
}

// Handler 消息处理函数。返回错误时消息会延迟重投
type Handler func(ctx context.Context, msg Message) error

// Queue 工作队列接口
//
//go:generate mockgen -source=./queue.go -destination=./mocks/queue.mock.go -package=mqmocks -typed Queue
type Queue interface {
	// Enqueue 立即入队
	Enqueue(ctx context.Context, topic string, msg Message) error
	// EnqueueDelayed 延迟入队，消息在 delay 之后才对消费者可见
	EnqueueDelayed(ctx context.Context, topic string, msg Message, delay time.Duration) error
}
