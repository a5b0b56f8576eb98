package domain

import (
	"time"

	"github.com/robinlg/broadcast-platform/internal/pkg/retry"
)

// BroadcastConfig 广播管道的配置项
type BroadcastConfig struct {
	// 单个接收者的最大发送尝试次数
	MaxSendAttempts int32 `yaml:"maxSendAttempts"`
	// 重试间隔（秒），也是限流冷却时长的基准
	SendRetryDelaySeconds float64 `yaml:"sendRetryDelaySeconds"`
	// 汇总的硬超时窗口（分钟），超过后强制收口
	MaxRetryWindowMinutes int `yaml:"maxRetryWindowMinutes"`
	// 目录查询的并发上限
	MaxConcurrentResolutions int `yaml:"maxConcurrentResolutions"`
	// 队列投递次数上限，超过后接收者进入 FAULTED_FINAL
	MaxDeliveryCount int32 `yaml:"maxDeliveryCount"`
	// 工作流步骤的重试策略，缺省为固定间隔
	WorkflowRetryPolicy *retry.Config `yaml:"workflowRetryPolicy"`
}

const (
	defaultMaxSendAttempts          = 4
	defaultSendRetryDelaySeconds    = 660 // 11分钟
	defaultMaxRetryWindowMinutes    = 35
	defaultMaxConcurrentResolutions = 30
	defaultMaxDeliveryCount         = 5
)

// NewBroadcastConfig 填充未配置项的默认值
func NewBroadcastConfig(cfg BroadcastConfig) BroadcastConfig {
	if cfg.MaxSendAttempts <= 0 {
		cfg.MaxSendAttempts = defaultMaxSendAttempts
	}
	if cfg.SendRetryDelaySeconds <= 0 {
		cfg.SendRetryDelaySeconds = defaultSendRetryDelaySeconds
	}
	if cfg.MaxRetryWindowMinutes <= 0 {
		cfg.MaxRetryWindowMinutes = defaultMaxRetryWindowMinutes
	}
	if cfg.MaxConcurrentResolutions <= 0 {
		cfg.MaxConcurrentResolutions = defaultMaxConcurrentResolutions
	}
	if cfg.MaxDeliveryCount <= 0 {
		cfg.MaxDeliveryCount = defaultMaxDeliveryCount
	}
	return cfg
}

// SendRetryDelay 重试间隔
func (c BroadcastConfig) SendRetryDelay() time.Duration {
	return time.Duration(c.SendRetryDelaySeconds * float64(time.Second))
}

// MaxRetryWindow 汇总超时窗口
func (c BroadcastConfig) MaxRetryWindow() time.Duration {
	return time.Duration(c.MaxRetryWindowMinutes) * time.Minute
}
