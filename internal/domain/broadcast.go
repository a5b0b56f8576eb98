package domain

import (
	"encoding/json"
	"time"
)

// AudienceType 受众类型
type AudienceType string

func (t AudienceType) String() string {
	return string(t)
}

const (
	AudienceAllUsers     AudienceType = "ALL_USERS"     // 租户内全部用户
	AudienceTeamRosters  AudienceType = "TEAM_ROSTERS"  // 指定团队的成员名单
	AudienceTeamChannels AudienceType = "TEAM_CHANNELS" // 指定团队的频道本身
	AudienceGroups       AudienceType = "GROUPS"        // 指定群组
	AudienceUserList     AudienceType = "USER_LIST"     // 显式用户列表
)

// Audience 受众说明，TeamIDs/GroupIDs/UserIDs 按 Type 选用
type Audience struct {
	Type     AudienceType `json:"type"`
	TeamIDs  []string     `json:"teamIds,omitempty"`
	GroupIDs []string     `json:"groupIds,omitempty"`
	UserIDs  []string     `json:"userIds,omitempty"`
}

// BroadcastStatus 广播任务状态
type BroadcastStatus string

func (s BroadcastStatus) String() string {
	return string(s)
}

const (
	BroadcastStatusPending   BroadcastStatus = "PENDING"   // 已创建，尚未开始分发
	BroadcastStatusSending   BroadcastStatus = "SENDING"   // 分批完成，正在分发
	BroadcastStatusCompleted BroadcastStatus = "COMPLETED" // 全部接收者到达终态或超时强制收口
	BroadcastStatusFailed    BroadcastStatus = "FAILED"    // 编排步骤重试耗尽
)

// Rollup 每个广播任务的接收者结果汇总
type Rollup struct {
	Succeeded int64 `json:"succeeded"`
	Failed    int64 `json:"failed"`
	Throttled int64 `json:"throttled"`
	Unknown   int64 `json:"unknown"`
}

// Reached 已经有明确去向的接收者数量，用于判断是否收口
func (r Rollup) Reached() int64 {
	return r.Succeeded + r.Failed + r.Throttled
}

// Broadcast 一次广播任务：一条已创作的消息 + 一个受众说明
type Broadcast struct {
	ID              uint64
	BizID           int64 // 租户标识
	Key             string
	Audience        Audience
	ContentRef      string // 渲染后内容的引用，由外部内容存储负责
	TotalRecipients int64  // 受众解析完成后写入
	Status          BroadcastStatus
	Rollup          Rollup
	WarningText     string // 受众片段级失败的累积告警
	ErrorText       string // 编排失败时的异常文本
	SentTime        time.Time
	Version         int
}

// Completed 任务是否已经收口
func (b Broadcast) Completed() bool {
	return b.Status == BroadcastStatusCompleted
}

// Terminated 任务是否不再需要任何分发动作
func (b Broadcast) Terminated() bool {
	return b.Status == BroadcastStatusCompleted || b.Status == BroadcastStatusFailed
}

func (b Broadcast) MarshalAudience() (string, error) {
	res, err := json.Marshal(b.Audience)
	return string(res), err
}

func (b *Broadcast) SetSentTime() {
	b.SentTime = time.Now()
}
