package domain

// DirectoryUser 目录服务中的一个用户身份
type DirectoryUser struct {
	ID      string `json:"id"`
	Address string `json:"address"` // 渠道地址
	Guest   bool   `json:"guest,omitempty"`
}

// Recipient 转换为个人接收者
func (u DirectoryUser) Recipient(broadcastID uint64) Recipient {
	return Recipient{
		BroadcastID: broadcastID,
		RecipientID: u.ID,
		Kind:        RecipientKindUser,
		Address:     u.Address,
		Status:      DeliveryStatusUnknown,
	}
}
