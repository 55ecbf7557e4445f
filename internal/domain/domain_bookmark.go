package domain

import "time"

// Bookmark 书签领域模型
// 与 Note 形状一致，正文字段为 Description，另带必填的 URL
type Bookmark struct {
	ID          int64
	UID         int64 // 归属用户，0 表示匿名创建（无归属）
	URL         string
	Title       string
	Description string
	Tags        []string
	Favorite    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnedBy 判断书签是否归属指定用户
func (b *Bookmark) OwnedBy(uid int64) bool {
	return b.UID != 0 && b.UID == uid
}

// AccessibleBy 判断请求者是否可以读写该书签，规则与 Note 相同
func (b *Bookmark) AccessibleBy(uid int64) bool {
	if uid != 0 && b.UID != 0 && b.UID != uid {
		return false
	}
	return true
}
