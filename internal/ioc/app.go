package ioc

import (
	"context"

	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/meoying/dlock-go"
	"github.com/redis/go-redis/v9"
	"github.com/robinlg/broadcast-platform/internal/domain"
	"github.com/robinlg/broadcast-platform/internal/pkg/mq"
	"github.com/robinlg/broadcast-platform/internal/repository"
	"github.com/robinlg/broadcast-platform/internal/repository/cache"
	localcache "github.com/robinlg/broadcast-platform/internal/repository/cache/local"
	rediscache "github.com/robinlg/broadcast-platform/internal/repository/cache/redis"
	"github.com/robinlg/broadcast-platform/internal/repository/dao"
	"github.com/robinlg/broadcast-platform/internal/service/aggregator"
	"github.com/robinlg/broadcast-platform/internal/service/batch"
	"github.com/robinlg/broadcast-platform/internal/service/channel"
	"github.com/robinlg/broadcast-platform/internal/service/directory"
	"github.com/robinlg/broadcast-platform/internal/service/dispatch"
	"github.com/robinlg/broadcast-platform/internal/service/resolver"
	"github.com/robinlg/broadcast-platform/internal/service/throttle"
	"github.com/robinlg/broadcast-platform/internal/service/trigger"
	"github.com/robinlg/broadcast-platform/internal/service/workflow"
)

// App 广播模块的装配结果
type App struct {
	Orchestrator *workflow.Orchestrator
	Dispatcher   *dispatch.Dispatcher
	Aggregator   *aggregator.Aggregator
	Sweeper      *aggregator.Sweeper

	consumer *mq.Consumer
}

// InitApp 从配置装配广播模块。
// 目录服务、渠道传输和内容存储是外部协作方，由调用方注入
func InitApp(
	db *egorm.Component,
	rdb *redis.Client,
	dclient dlock.Client,
	dir directory.Directory,
	sender channel.Sender,
	contentStore workflow.ContentStore,
) *App {
	var cfg domain.BroadcastConfig
	if err := econf.UnmarshalKey("broadcast", &cfg); err != nil {
		panic("config err:" + err.Error())
	}
	cfg = domain.NewBroadcastConfig(cfg)

	broadcastRepo := repository.NewBroadcastRepository(dao.NewBroadcastDAO(db))
	recipientRepo := repository.NewRecipientRepository(dao.NewRecipientDAO(db))
	throttleRepo := repository.NewThrottleStateRepository(dao.NewThrottleStateDAO(db))
	userCache := cache.NewTwoTierCache(localcache.NewCache(), rediscache.NewCache(rdb))

	queue := mq.NewRedisQueue(rdb)
	throttleCtrl := throttle.NewController(throttleRepo, cfg.SendRetryDelay())

	resolverSvc := resolver.NewResolver(dir, userCache, cfg.MaxConcurrentResolutions)
	builder := batch.NewBuilder(broadcastRepo, recipientRepo, queue)
	agg := aggregator.NewAggregator(broadcastRepo, recipientRepo, queue, cfg.MaxRetryWindow())
	dispatcher := dispatch.NewDispatcher(broadcastRepo, recipientRepo, sender, throttleCtrl, queue, cfg)
	orchestrator := workflow.NewOrchestrator(broadcastRepo, resolverSvc, builder, agg, contentStore, cfg)

	consumer := mq.NewConsumer(queue, cfg.MaxDeliveryCount)
	consumer.RegisterHandler(trigger.TopicSendBatch, dispatcher.HandleBatch)
	consumer.RegisterHandler(trigger.TopicAggregate, agg.HandleTrigger)

	return &App{
		Orchestrator: orchestrator,
		Dispatcher:   dispatcher,
		Aggregator:   agg,
		Sweeper:      aggregator.NewSweeper(broadcastRepo, agg, dclient),
		consumer:     consumer,
	}
}

// Start 启动消费循环和兜底循环，ctx 取消时退出
func (a *App) Start(ctx context.Context) {
	a.consumer.Start(ctx)
	go a.Sweeper.Start(ctx)
}
