package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 广播管道的指标
var (
	// SendTotal 按结果统计的发送次数
	SendTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "broadcast_platform",
		Name:      "send_total",
		Help:      "按投递结果统计的发送次数",
	}, []string{"status"})

	// ThrottleTrips 全局限流被触发的次数
	ThrottleTrips = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "broadcast_platform",
		Name:      "throttle_trips_total",
		Help:      "全局限流冷却被触发的次数",
	})

	// BatchesBuilt 构建的批次数
	BatchesBuilt = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "broadcast_platform",
		Name:      "batches_built_total",
		Help:      "分批构建器产出的批次数",
	})
)
