package directory

import (
	"context"

	"github.com/robinlg/broadcast-platform/internal/domain"
)

// Member 群组成员条目，成员详情需要单独解析
type Member struct {
	UserID string
	// Type 成员类型，目录服务定义。非 member 的条目（guest等）会被跳过
	Type string
}

const MemberTypeMember = "member"

// Directory 目录服务接口，由外部实现（Graph/CSV等）。
// 增量同步令牌失效时返回 errs.ErrSyncTokenExpired
//
//go:generate mockgen -source=./directory.go -destination=./mocks/directory.mock.go -package=directorymocks -typed Directory
type Directory interface {
	// DeltaSyncUsers 基于同步令牌做增量同步，token 为空时执行全量同步，
	// 返回用户列表和新的同步令牌
	DeltaSyncUsers(ctx context.Context, syncToken string) ([]domain.DirectoryUser, string, error)
	// TeamRoster 团队成员名单
	TeamRoster(ctx context.Context, teamID string) ([]domain.DirectoryUser, error)
	// TeamChannel 团队频道本身作为一个接收者（TEAM 类型）
	TeamChannel(ctx context.Context, teamID string) (domain.Recipient, error)
	// GroupMembersPage 分页读取群组成员，pageToken 为空表示第一页，
	// 返回的下一页令牌为空表示没有更多页
	GroupMembersPage(ctx context.Context, groupID, pageToken string) ([]Member, string, error)
	// ResolveUser 解析单个用户身份
	ResolveUser(ctx context.Context, userID string) (domain.DirectoryUser, error)
}
