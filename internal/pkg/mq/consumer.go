package mq

import (
	"context"
	"errors"
	"time"

	"github.com/gotomicro/ego/core/elog"
)

const (
	defaultPopTimeout   = 2 * time.Second
	defaultRequeueDelay = 10 * time.Second
)

// Consumer 按主题消费Redis队列。
// 处理失败的消息延迟重投并递增投递计数，
// 超过投递上限的消息进入死信列表
type Consumer struct {
	queue            *RedisQueue
	handlers         map[string]Handler
	maxDeliveryCount int32
	requeueDelay     time.Duration
	logger           *elog.Component
}

// NewConsumer 创建消费者实例
func NewConsumer(queue *RedisQueue, maxDeliveryCount int32) *Consumer {
	return &Consumer{
		queue:            queue,
		handlers:         make(map[string]Handler),
		maxDeliveryCount: maxDeliveryCount,
		requeueDelay:     defaultRequeueDelay,
		logger:           elog.DefaultLogger,
	}
}

// RegisterHandler 注册主题的处理函数，必须在 Start 之前调用
func (c *Consumer) RegisterHandler(topic string, handler Handler) {
	c.handlers[topic] = handler
}

// Start 为每个主题启动一个消费循环，ctx 取消时退出
func (c *Consumer) Start(ctx context.Context) {
	for topic := range c.handlers {
		go c.consumeLoop(ctx, topic, c.handlers[topic])
	}
}

func (c *Consumer) consumeLoop(ctx context.Context, topic string, handler Handler) {
	logger := c.logger.With(elog.String("topic", topic))
	for {
		if ctx.Err() != nil {
			logger.Info("消费循环退出")
			return
		}

		// 先把到期的延迟消息搬运到就绪列表
		if _, err := c.queue.promote(ctx, topic); err != nil {
			logger.Error("搬运延迟消息失败", elog.FieldErr(err))
			time.Sleep(time.Second)
			continue
		}

		msg, ok, err := c.queue.pop(ctx, topic, defaultPopTimeout)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				logger.Info("消费循环退出")
				return
			}
			logger.Error("取出消息失败", elog.FieldErr(err))
			time.Sleep(time.Second)
			continue
		}
		if !ok {
			continue
		}

		// 投递计数在消费者可见，处理函数据此实现终态兜底
		msg.DeliveryCount++
		if err := handler(ctx, msg); err != nil {
			c.redeliver(ctx, topic, msg, logger)
		}
	}
}

// redeliver 延迟重投，超过投递上限进入死信
func (c *Consumer) redeliver(ctx context.Context, topic string, msg Message, logger *elog.Component) {
	if msg.DeliveryCount >= c.maxDeliveryCount {
		logger.Error("消息投递次数超过上限，进入死信",
			elog.String("key", msg.Key),
			elog.Any("deliveryCount", msg.DeliveryCount))
		if err := c.queue.deadLetter(ctx, topic, msg); err != nil {
			logger.Error("写入死信失败", elog.FieldErr(err))
		}
		return
	}
	if err := c.queue.EnqueueDelayed(ctx, topic, msg, c.requeueDelay); err != nil {
		logger.Error("重投消息失败", elog.FieldErr(err), elog.String("key", msg.Key))
	}
}
