package mq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	readyKeyPrefix   = "mq:ready"
	delayedKeyPrefix = "mq:delayed"
	deadKeyPrefix    = "mq:dead"

	// 每次从延迟集合搬运到就绪列表的最大条数
	promoteBatchSize = 100
)

// promoteScript 把到期的延迟消息原子地搬运到就绪列表
var promoteScript = redis.NewScript(`
local due = redis.call('ZRANGEBYSCORE', KEYS[1], '-inf', ARGV[1], 'LIMIT', 0, tonumber(ARGV[2]))
for i, v in ipairs(due) do
    redis.call('LPUSH', KEYS[2], v)
    redis.call('ZREM', KEYS[1], v)
end
return #due
`)

// RedisQueue 基于Redis的延迟工作队列。
// 就绪消息放在 LIST，延迟消息放在 ZSET（score 为可见时间），
// 消费前先把到期消息搬运到 LIST
type RedisQueue struct {
	rdb redis.Cmdable
}

// NewRedisQueue 创建Redis队列实例
func NewRedisQueue(rdb redis.Cmdable) *RedisQueue {
	return &RedisQueue{rdb: rdb}
}

func readyKey(topic string) string {
	return fmt.Sprintf("%s:%s", readyKeyPrefix, topic)
}

func delayedKey(topic string) string {
	return fmt.Sprintf("%s:%s", delayedKeyPrefix, topic)
}

func deadKey(topic string) string {
	return fmt.Sprintf("%s:%s", deadKeyPrefix, topic)
}

func (q *RedisQueue) Enqueue(ctx context.Context, topic string, msg Message) error {
	data, err := q.encode(msg)
	if err != nil {
		return err
	}
	return q.rdb.LPush(ctx, readyKey(topic), data).Err()
}

func (q *RedisQueue) EnqueueDelayed(ctx context.Context, topic string, msg Message, delay time.Duration) error {
	data, err := q.encode(msg)
	if err != nil {
		return err
	}
	visibleAt := float64(time.Now().Add(delay).UnixMilli())
	return q.rdb.ZAdd(ctx, delayedKey(topic), redis.Z{
		Score:  visibleAt,
		Member: data,
	}).Err()
}

func (q *RedisQueue) encode(msg Message) (string, error) {
	if msg.EnqueueTime == 0 {
		msg.EnqueueTime = time.Now().UnixMilli()
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("序列化队列消息失败: %w", err)
	}
	return string(data), nil
}

// promote 搬运到期的延迟消息，返回搬运条数
func (q *RedisQueue) promote(ctx context.Context, topic string) (int64, error) {
	now := time.Now().UnixMilli()
	res, err := promoteScript.Run(ctx, q.rdb,
		[]string{delayedKey(topic), readyKey(topic)},
		now, promoteBatchSize).Int64()
	if err != nil {
		return 0, fmt.Errorf("搬运延迟消息失败: %w", err)
	}
	return res, nil
}

// pop 阻塞地取出一条就绪消息
func (q *RedisQueue) pop(ctx context.Context, topic string, timeout time.Duration) (Message, bool, error) {
	res, err := q.rdb.BRPop(ctx, timeout, readyKey(topic)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Message{}, false, nil
		}
		return Message{}, false, err
	}
	const brpopResultLen = 2
	if len(res) != brpopResultLen {
		return Message{}, false, nil
	}
	var msg Message
	if err := json.Unmarshal([]byte(res[1]), &msg); err != nil {
		return Message{}, false, fmt.Errorf("反序列化队列消息失败: %w", err)
	}
	return msg, true, nil
}

// deadLetter 消息进入死信列表，不再投递
func (q *RedisQueue) deadLetter(ctx context.Context, topic string, msg Message) error {
	data, err := q.encode(msg)
	if err != nil {
		return err
	}
	return q.rdb.LPush(ctx, deadKey(topic), data).Err()
}
