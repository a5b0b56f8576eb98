package errs

import "errors"

// 定义统一的错误类型
var (
	// 业务错误
	ErrInvalidParameter   = errors.New("参数非法")
	ErrNoAudienceSelected = errors.New("受众解析结果为空")

	// 广播任务
	ErrBroadcastNotFound        = errors.New("广播任务不存在")
	ErrBroadcastDuplicate       = errors.New("广播任务已存在")
	ErrBroadcastVersionMismatch = errors.New("广播任务版本冲突")
	ErrBroadcastTerminated      = errors.New("广播任务已收口")

	// 接收者
	ErrRecipientRecordNotFound = errors.New("接收者记录不存在")

	// 限流状态
	ErrThrottleStateVersionMismatch = errors.New("限流状态版本冲突")

	// 目录服务
	ErrSyncTokenExpired = errors.New("目录增量同步令牌已失效")

	// 队列
	ErrDeliveryCountExceeded = errors.New("队列投递次数超过上限")
)
