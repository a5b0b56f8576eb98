//go:build unit

package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/robinlg/broadcast-platform/internal/domain"
	"github.com/robinlg/broadcast-platform/internal/errs"
	localcache "github.com/robinlg/broadcast-platform/internal/repository/cache/local"
	"github.com/robinlg/broadcast-platform/internal/service/directory"
	directorymocks "github.com/robinlg/broadcast-platform/internal/service/directory/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestResolverSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ResolverTestSuite))
}

type ResolverTestSuite struct {
	suite.Suite
}

const testMaxConcurrent = 4

func newTestResolver(dir directory.Directory) Service {
	return NewResolver(dir, localcache.NewCache(), testMaxConcurrent)
}

func user(id string) domain.DirectoryUser {
	return domain.DirectoryUser{ID: id, Address: "addr-" + id}
}

func recipientIDs(recipients []domain.Recipient) []string {
	ids := make([]string, 0, len(recipients))
	for _, r := range recipients {
		ids = append(ids, r.RecipientID)
	}
	return ids
}

func broadcastWith(audience domain.Audience) domain.Broadcast {
	return domain.Broadcast{ID: 100, Audience: audience}
}

func (s *ResolverTestSuite) TestResolveUserList() {
	t := s.T()
	t.Parallel()

	tests := []struct {
		name       string
		userIDs    []string
		getDirFunc func(ctrl *gomock.Controller) *directorymocks.MockDirectory
		wantIDs    []string
		wantErr    error
	}{
		{
			name:    "全部解析成功",
			userIDs: []string{"u1", "u2"},
			getDirFunc: func(ctrl *gomock.Controller) *directorymocks.MockDirectory {
				dir := directorymocks.NewMockDirectory(ctrl)
				dir.EXPECT().ResolveUser(gomock.Any(), "u1").Return(user("u1"), nil)
				dir.EXPECT().ResolveUser(gomock.Any(), "u2").Return(user("u2"), nil)
				return dir
			},
			wantIDs: []string{"u1", "u2"},
		},
		{
			name:    "解析失败的身份被排除且不报错",
			userIDs: []string{"u1", "u2", "u3"},
			getDirFunc: func(ctrl *gomock.Controller) *directorymocks.MockDirectory {
				dir := directorymocks.NewMockDirectory(ctrl)
				dir.EXPECT().ResolveUser(gomock.Any(), "u1").Return(user("u1"), nil)
				dir.EXPECT().ResolveUser(gomock.Any(), "u2").
					Return(domain.DirectoryUser{}, errors.New("身份不存在"))
				dir.EXPECT().ResolveUser(gomock.Any(), "u3").Return(user("u3"), nil)
				return dir
			},
			wantIDs: []string{"u1", "u3"},
		},
		{
			name:    "重复的用户只保留一个",
			userIDs: []string{"u1", "u1", "u2"},
			getDirFunc: func(ctrl *gomock.Controller) *directorymocks.MockDirectory {
				dir := directorymocks.NewMockDirectory(ctrl)
				// 第二次解析命中缓存，目录服务只会被查一次
				dir.EXPECT().ResolveUser(gomock.Any(), "u1").Return(user("u1"), nil).Times(1)
				dir.EXPECT().ResolveUser(gomock.Any(), "u2").Return(user("u2"), nil)
				return dir
			},
			wantIDs: []string{"u1", "u2"},
		},
		{
			name:    "全部解析失败返回空受众错误",
			userIDs: []string{"u1"},
			getDirFunc: func(ctrl *gomock.Controller) *directorymocks.MockDirectory {
				dir := directorymocks.NewMockDirectory(ctrl)
				dir.EXPECT().ResolveUser(gomock.Any(), "u1").
					Return(domain.DirectoryUser{}, errors.New("身份不存在"))
				return dir
			},
			wantErr: errs.ErrNoAudienceSelected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := newTestResolver(tt.getDirFunc(ctrl))
			result, err := r.Resolve(context.Background(), broadcastWith(domain.Audience{
				Type:    domain.AudienceUserList,
				UserIDs: tt.userIDs,
			}))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, result.Warning)
			assert.Equal(t, tt.wantIDs, recipientIDs(result.Recipients))
		})
	}
}

// 单个团队名单失败只产生告警，其余团队正常解析
func (s *ResolverTestSuite) TestResolveRostersPartialFailure() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := directorymocks.NewMockDirectory(ctrl)
	dir.EXPECT().TeamRoster(gomock.Any(), "team-1").
		Return([]domain.DirectoryUser{user("u1"), user("u2")}, nil)
	dir.EXPECT().TeamRoster(gomock.Any(), "team-2").
		Return(nil, errors.New("团队不存在"))
	dir.EXPECT().TeamRoster(gomock.Any(), "team-3").
		Return([]domain.DirectoryUser{user("u2"), user("u3")}, nil)

	r := newTestResolver(dir)
	result, err := r.Resolve(context.Background(), broadcastWith(domain.Audience{
		Type:    domain.AudienceTeamRosters,
		TeamIDs: []string{"team-1", "team-2", "team-3"},
	}))

	require.NoError(t, err)
	require.Error(t, result.Warning)
	assert.Contains(t, result.Warning.Error(), "team-2")
	// u2 同时在两个团队里，去重后只出现一次
	assert.Equal(t, []string{"u1", "u2", "u3"}, recipientIDs(result.Recipients))
}

// guest 用户不进入受众
func (s *ResolverTestSuite) TestResolveRostersExcludesGuests() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guest := user("g1")
	guest.Guest = true

	dir := directorymocks.NewMockDirectory(ctrl)
	dir.EXPECT().TeamRoster(gomock.Any(), "team-1").
		Return([]domain.DirectoryUser{user("u1"), guest}, nil)

	r := newTestResolver(dir)
	result, err := r.Resolve(context.Background(), broadcastWith(domain.Audience{
		Type:    domain.AudienceTeamRosters,
		TeamIDs: []string{"team-1"},
	}))

	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, recipientIDs(result.Recipients))
}

func (s *ResolverTestSuite) TestResolveChannels() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := directorymocks.NewMockDirectory(ctrl)
	dir.EXPECT().TeamChannel(gomock.Any(), "team-1").
		Return(domain.Recipient{RecipientID: "channel-1", Address: "ch-addr-1"}, nil)
	dir.EXPECT().TeamChannel(gomock.Any(), "team-2").
		Return(domain.Recipient{}, errors.New("频道不可用"))

	r := newTestResolver(dir)
	result, err := r.Resolve(context.Background(), broadcastWith(domain.Audience{
		Type:    domain.AudienceTeamChannels,
		TeamIDs: []string{"team-1", "team-2"},
	}))

	require.NoError(t, err)
	require.Error(t, result.Warning)
	require.Len(t, result.Recipients, 1)
	rec := result.Recipients[0]
	assert.Equal(t, "channel-1", rec.RecipientID)
	assert.Equal(t, domain.RecipientKindTeam, rec.Kind)
	assert.Equal(t, uint64(100), rec.BroadcastID)
	assert.Equal(t, domain.DeliveryStatusUnknown, rec.Status)
}

func (s *ResolverTestSuite) TestResolveAllUsers() {
	t := s.T()
	t.Parallel()

	tests := []struct {
		name       string
		getDirFunc func(ctrl *gomock.Controller) *directorymocks.MockDirectory
		wantIDs    []string
		wantWarn   bool
	}{
		{
			name: "同步成功且排除guest",
			getDirFunc: func(ctrl *gomock.Controller) *directorymocks.MockDirectory {
				guest := user("g1")
				guest.Guest = true
				dir := directorymocks.NewMockDirectory(ctrl)
				dir.EXPECT().DeltaSyncUsers(gomock.Any(), "").
					Return([]domain.DirectoryUser{user("u1"), guest, user("u2")}, "token-1", nil)
				return dir
			},
			wantIDs: []string{"u1", "u2"},
		},
		{
			name: "同步令牌失效时降级为全量同步",
			getDirFunc: func(ctrl *gomock.Controller) *directorymocks.MockDirectory {
				dir := directorymocks.NewMockDirectory(ctrl)
				gomock.InOrder(
					dir.EXPECT().DeltaSyncUsers(gomock.Any(), "").
						Return(nil, "", errs.ErrSyncTokenExpired),
					dir.EXPECT().DeltaSyncUsers(gomock.Any(), "").
						Return([]domain.DirectoryUser{user("u1")}, "token-2", nil),
				)
				return dir
			},
			wantIDs: []string{"u1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := newTestResolver(tt.getDirFunc(ctrl))
			result, err := r.Resolve(context.Background(), broadcastWith(domain.Audience{
				Type: domain.AudienceAllUsers,
			}))

			require.NoError(t, err)
			if tt.wantWarn {
				assert.Error(t, result.Warning)
			} else {
				assert.NoError(t, result.Warning)
			}
			assert.Equal(t, tt.wantIDs, recipientIDs(result.Recipients))
		})
	}
}

// 分页读取群组成员，guest成员类型直接跳过
func (s *ResolverTestSuite) TestResolveGroupsPaged() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := directorymocks.NewMockDirectory(ctrl)
	dir.EXPECT().GroupMembersPage(gomock.Any(), "group-1", "").
		Return([]directory.Member{
			{UserID: "u1", Type: directory.MemberTypeMember},
			{UserID: "g1", Type: "guest"},
		}, "page-2", nil)
	dir.EXPECT().GroupMembersPage(gomock.Any(), "group-1", "page-2").
		Return([]directory.Member{
			{UserID: "u2", Type: directory.MemberTypeMember},
		}, "", nil)
	dir.EXPECT().ResolveUser(gomock.Any(), "u1").Return(user("u1"), nil)
	dir.EXPECT().ResolveUser(gomock.Any(), "u2").Return(user("u2"), nil)

	r := newTestResolver(dir)
	result, err := r.Resolve(context.Background(), broadcastWith(domain.Audience{
		Type:     domain.AudienceGroups,
		GroupIDs: []string{"group-1"},
	}))

	require.NoError(t, err)
	assert.NoError(t, result.Warning)
	assert.ElementsMatch(t, []string{"u1", "u2"}, recipientIDs(result.Recipients))
}

func (s *ResolverTestSuite) TestResolveGroupPageError() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := directorymocks.NewMockDirectory(ctrl)
	dir.EXPECT().GroupMembersPage(gomock.Any(), "group-1", "").
		Return(nil, "", errors.New("群组服务不可用"))
	dir.EXPECT().GroupMembersPage(gomock.Any(), "group-2", "").
		Return([]directory.Member{
			{UserID: "u1", Type: directory.MemberTypeMember},
		}, "", nil)
	dir.EXPECT().ResolveUser(gomock.Any(), "u1").Return(user("u1"), nil)

	r := newTestResolver(dir)
	result, err := r.Resolve(context.Background(), broadcastWith(domain.Audience{
		Type:     domain.AudienceGroups,
		GroupIDs: []string{"group-1", "group-2"},
	}))

	require.NoError(t, err)
	require.Error(t, result.Warning)
	assert.Contains(t, result.Warning.Error(), "group-1")
	assert.Equal(t, []string{"u1"}, recipientIDs(result.Recipients))
}

func (s *ResolverTestSuite) TestResolveUnknownAudienceType() {
	t := s.T()
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := newTestResolver(directorymocks.NewMockDirectory(ctrl))
	_, err := r.Resolve(context.Background(), broadcastWith(domain.Audience{Type: "MYSTERY"}))
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)
}
