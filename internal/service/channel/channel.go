package channel

import (
	"context"
	"net/http"

	"github.com/robinlg/broadcast-platform/internal/domain"
)

// Sender 消息渠道接口，由外部传输实现。
// 状态码按HTTP惯例分类：2xx成功、429限流、404接收者不存在、5xx可重试失败
//
//go:generate mockgen -source=./channel.go -destination=./mocks/channel.mock.go -package=channelmocks -typed Sender
type Sender interface {
	// CreateConversation 为接收者建立会话，返回会话句柄和状态码
	CreateConversation(ctx context.Context, recipient domain.Recipient) (string, int, error)
	// Send 向会话发送渲染后的内容，返回状态码
	Send(ctx context.Context, conversationID string, contentRef string) (int, error)
}

// IsSuccess 2xx成功类
func IsSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}

// IsThrottled 429限流类
func IsThrottled(code int) bool {
	return code == http.StatusTooManyRequests
}

// IsNotFound 404接收者不存在
func IsNotFound(code int) bool {
	return code == http.StatusNotFound
}

// IsRetryable 限流和5xx都值得重试
func IsRetryable(code int) bool {
	return IsThrottled(code) || code >= http.StatusInternalServerError
}
