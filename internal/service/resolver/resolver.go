package resolver

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
	"github.com/robinlg/broadcast-platform/internal/domain"
	"github.com/robinlg/broadcast-platform/internal/errs"
	"github.com/robinlg/broadcast-platform/internal/repository/cache"
	"github.com/robinlg/broadcast-platform/internal/service/directory"
	"golang.org/x/sync/errgroup"
)

// Result 受众解析结果。Warning 聚合片段级失败，非致命
type Result struct {
	Recipients []domain.Recipient
	Warning    error
}

// Service 受众解析接口
//
//go:generate mockgen -source=./resolver.go -destination=./mocks/resolver.mock.go -package=resolvermocks -typed Service
type Service interface {
	// Resolve 把受众说明解析为去重后的接收者集合。
	// 单个片段（团队/群组/用户）的失败记为告警并跳过，
	// 只有解析结果为空才返回 errs.ErrNoAudienceSelected
	Resolve(ctx context.Context, broadcast domain.Broadcast) (Result, error)
}

// resolver 受众解析实现
type resolver struct {
	dir           directory.Directory
	userCache     cache.UserCache
	maxConcurrent int
	logger        *elog.Component
}

// NewResolver 创建受众解析服务
func NewResolver(dir directory.Directory, userCache cache.UserCache, maxConcurrent int) Service {
	return &resolver{
		dir:           dir,
		userCache:     userCache,
		maxConcurrent: maxConcurrent,
		logger:        elog.DefaultLogger,
	}
}

func (r *resolver) Resolve(ctx context.Context, broadcast domain.Broadcast) (Result, error) {
	acc := newAccumulator(broadcast.ID)

	var warnings *multierror.Error
	switch broadcast.Audience.Type {
	case domain.AudienceAllUsers:
		warnings = r.resolveAllUsers(ctx, acc, warnings)
	case domain.AudienceTeamRosters:
		warnings = r.resolveRosters(ctx, broadcast.Audience.TeamIDs, acc, warnings)
	case domain.AudienceTeamChannels:
		warnings = r.resolveChannels(ctx, broadcast.Audience.TeamIDs, acc, warnings)
	case domain.AudienceGroups:
		warnings = r.resolveGroups(ctx, broadcast.Audience.GroupIDs, acc, warnings)
	case domain.AudienceUserList:
		r.resolveUserList(ctx, broadcast.Audience.UserIDs, acc)
	default:
		return Result{}, fmt.Errorf("%w: 未知受众类型 %s", errs.ErrInvalidParameter, broadcast.Audience.Type)
	}

	recipients := acc.recipients()
	if len(recipients) == 0 {
		return Result{}, fmt.Errorf("%w", errs.ErrNoAudienceSelected)
	}
	return Result{
		Recipients: recipients,
		Warning:    warnings.ErrorOrNil(),
	}, nil
}

// resolveAllUsers 增量同步目录。同步令牌失效时降级为一次全量同步，
// 全量同步本身只补救重试一次，仍失败则记为任务级告警
func (r *resolver) resolveAllUsers(ctx context.Context, acc *accumulator, warnings *multierror.Error) *multierror.Error {
	token, err := r.userCache.GetSyncToken(ctx)
	if err != nil && !errors.Is(err, cache.ErrKeyNotFound) {
		r.logger.Warn("读取同步令牌失败，改用全量同步", elog.FieldErr(err))
		token = ""
	}

	users, newToken, err := r.dir.DeltaSyncUsers(ctx, token)
	if errors.Is(err, errs.ErrSyncTokenExpired) {
		users, newToken, err = r.dir.DeltaSyncUsers(ctx, "")
		if err != nil {
			// 只再补救一次
			users, newToken, err = r.dir.DeltaSyncUsers(ctx, "")
		}
	}
	if err != nil {
		return multierror.Append(warnings, fmt.Errorf("全量受众同步失败: %w", err))
	}

	for _, u := range users {
		if u.Guest {
			continue
		}
		acc.add(u.Recipient(acc.broadcastID))
	}
	if cerr := r.userCache.SetUsers(ctx, users); cerr != nil {
		r.logger.Warn("写入用户目录缓存失败", elog.FieldErr(cerr))
	}
	if newToken != "" {
		if terr := r.userCache.SetSyncToken(ctx, newToken); terr != nil {
			r.logger.Warn("写入同步令牌失败", elog.FieldErr(terr))
		}
	}
	return warnings
}

// resolveRosters 逐团队解析成员名单，单个团队失败只影响该团队
func (r *resolver) resolveRosters(ctx context.Context, teamIDs []string, acc *accumulator, warnings *multierror.Error) *multierror.Error {
	for _, teamID := range teamIDs {
		users, err := r.dir.TeamRoster(ctx, teamID)
		if err != nil {
			warnings = multierror.Append(warnings, fmt.Errorf("团队 %s 名单解析失败: %w", teamID, err))
			continue
		}
		for _, u := range users {
			if u.Guest {
				continue
			}
			acc.add(u.Recipient(acc.broadcastID))
		}
		if cerr := r.userCache.SetUsers(ctx, users); cerr != nil {
			r.logger.Warn("写入用户目录缓存失败", elog.FieldErr(cerr))
		}
	}
	return warnings
}

// resolveChannels 频道本身作为 TEAM 类型的单一接收者
func (r *resolver) resolveChannels(ctx context.Context, teamIDs []string, acc *accumulator, warnings *multierror.Error) *multierror.Error {
	for _, teamID := range teamIDs {
		rec, err := r.dir.TeamChannel(ctx, teamID)
		if err != nil {
			warnings = multierror.Append(warnings, fmt.Errorf("团队频道 %s 解析失败: %w", teamID, err))
			continue
		}
		rec.BroadcastID = acc.broadcastID
		rec.Kind = domain.RecipientKindTeam
		rec.Status = domain.DeliveryStatusUnknown
		acc.add(rec)
	}
	return warnings
}

// resolveGroups 分页读取群组成员，页内并发解析成员身份，
// 并发度受 maxConcurrent 限制，避免压垮目录服务
func (r *resolver) resolveGroups(ctx context.Context, groupIDs []string, acc *accumulator, warnings *multierror.Error) *multierror.Error {
	for _, groupID := range groupIDs {
		if err := r.resolveGroup(ctx, groupID, acc); err != nil {
			warnings = multierror.Append(warnings, fmt.Errorf("群组 %s 成员解析失败: %w", groupID, err))
		}
	}
	return warnings
}

func (r *resolver) resolveGroup(ctx context.Context, groupID string, acc *accumulator) error {
	pageToken := ""
	for {
		members, nextToken, err := r.dir.GroupMembersPage(ctx, groupID, pageToken)
		if err != nil {
			return err
		}

		eg, gctx := errgroup.WithContext(ctx)
		eg.SetLimit(r.maxConcurrent)
		for i := range members {
			m := members[i]
			if m.Type != directory.MemberTypeMember {
				// guest 和未知成员直接跳过
				continue
			}
			eg.Go(func() error {
				user, ok := r.resolveUser(gctx, m.UserID)
				if ok && !user.Guest {
					acc.add(user.Recipient(acc.broadcastID))
				}
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}

		if nextToken == "" {
			return nil
		}
		pageToken = nextToken
	}
}

// resolveUserList 显式用户列表逐个独立解析，失败的身份记日志后排除
func (r *resolver) resolveUserList(ctx context.Context, userIDs []string, acc *accumulator) {
	for _, userID := range userIDs {
		user, ok := r.resolveUser(ctx, userID)
		if !ok {
			continue
		}
		acc.add(user.Recipient(acc.broadcastID))
	}
}

// resolveUser 先查目录缓存，未命中再查目录服务并回填缓存
func (r *resolver) resolveUser(ctx context.Context, userID string) (domain.DirectoryUser, bool) {
	user, err := r.userCache.Get(ctx, userID)
	if err == nil {
		return user, true
	}

	user, err = r.dir.ResolveUser(ctx, userID)
	if err != nil {
		r.logger.Warn("用户身份解析失败，已排除",
			elog.String("userID", userID),
			elog.FieldErr(err))
		return domain.DirectoryUser{}, false
	}
	if cerr := r.userCache.Set(ctx, user); cerr != nil {
		r.logger.Warn("写入用户目录缓存失败", elog.FieldErr(cerr))
	}
	return user, true
}

// accumulator 按接收者标识去重的收集器，add 可以并发调用
type accumulator struct {
	broadcastID uint64
	mu          sync.Mutex
	seen        map[string]domain.Recipient
	order       []string
}

func newAccumulator(broadcastID uint64) *accumulator {
	return &accumulator{
		broadcastID: broadcastID,
		seen:        make(map[string]domain.Recipient),
	}
}

func (a *accumulator) add(rec domain.Recipient) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.seen[rec.RecipientID]; ok {
		return
	}
	a.seen[rec.RecipientID] = rec
	a.order = append(a.order, rec.RecipientID)
}

func (a *accumulator) recipients() []domain.Recipient {
	a.mu.Lock()
	defer a.mu.Unlock()
	res := make([]domain.Recipient, 0, len(a.order))
	for _, id := range a.order {
		res = append(res, a.seen[id])
	}
	return res
}
