package domain

import (
	"encoding/json"
	"time"
)

// RecipientKind 接收者类型：个人用户或者团队频道
type RecipientKind string

func (k RecipientKind) String() string {
	return string(k)
}

const (
	RecipientKindUser RecipientKind = "USER"
	RecipientKindTeam RecipientKind = "TEAM"
)

// DeliveryStatus 单个接收者的投递状态
type DeliveryStatus string

func (s DeliveryStatus) String() string {
	return string(s)
}

const (
	DeliveryStatusUnknown         DeliveryStatus = "UNKNOWN"          // 初始化，尚未尝试
	DeliveryStatusSucceeded       DeliveryStatus = "SUCCEEDED"        // 投递成功
	DeliveryStatusFailed          DeliveryStatus = "FAILED"           // 重试耗尽后失败
	DeliveryStatusThrottled       DeliveryStatus = "THROTTLED"        // 重试耗尽时仍被限流
	DeliveryStatusNotFound        DeliveryStatus = "NOT_FOUND"        // 接收者不存在，不再重试
	DeliveryStatusFaultedRetrying DeliveryStatus = "FAULTED_RETRYING" // 队列重投中
	DeliveryStatusFaultedFinal    DeliveryStatus = "FAULTED_FINAL"    // 队列投递次数到达上限
)

// Terminal 终态不会再被后续尝试覆盖
func (s DeliveryStatus) Terminal() bool {
	switch s {
	case DeliveryStatusSucceeded, DeliveryStatusFailed, DeliveryStatusNotFound, DeliveryStatusFaultedFinal:
		return true
	default:
		return false
	}
}

// AttemptCode 一次尝试的状态码。FromConversation 标记状态码来自会话创建而非消息发送
type AttemptCode struct {
	Code             int  `json:"code"`
	FromConversation bool `json:"fromConversation,omitempty"`
}

// Recipient 一个 (广播任务, 接收者) 对
type Recipient struct {
	BroadcastID     uint64
	RecipientID     string
	Kind            RecipientKind
	Address         string // 渠道地址，对本系统不透明
	ConversationID  string // 首次成功建立会话前为空
	Status          DeliveryStatus
	StatusHistory   []AttemptCode
	ThrottleCount   int32
	LastAttemptTime time.Time
}

// RecordAttempt 追加一次尝试的状态码，保证记录的永远是最近一次尝试
func (r *Recipient) RecordAttempt(code int, fromConversation bool) {
	r.StatusHistory = append(r.StatusHistory, AttemptCode{
		Code:             code,
		FromConversation: fromConversation,
	})
	r.LastAttemptTime = time.Now()
}

func (r Recipient) MarshalStatusHistory() (string, error) {
	res, err := json.Marshal(r.StatusHistory)
	return string(res), err
}

// ThrottleState 全局限流状态，进程间共享的单行记录
type ThrottleState struct {
	ResumeTime time.Time // 在此时间之前所有分发都应延迟重入队
	Version    int
}

// Cooling 当前是否处于冷却期
func (t ThrottleState) Cooling(now time.Time) bool {
	return now.Before(t.ResumeTime)
}
