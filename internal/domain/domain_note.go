package domain

import (
	"strings"
	"time"
)

// Note 笔记领域模型
type Note struct {
	ID        int64
	UID       int64 // 归属用户，0 表示匿名创建（无归属）
	Title     string
	Content   string
	Tags      []string
	Favorite  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy 判断笔记是否归属指定用户
func (n *Note) OwnedBy(uid int64) bool {
	return n.UID != 0 && n.UID == uid
}

// AccessibleBy reports whether the requester may read or mutate the note.
// AccessibleBy 判断请求者是否可以读写该笔记
// 仅当笔记有归属、请求者已认证且两者不一致时拒绝；
// 匿名请求者不受该检查限制（沿用既有的宽松策略）
func (n *Note) AccessibleBy(uid int64) bool {
	if uid != 0 && n.UID != 0 && n.UID != uid {
		return false
	}
	return true
}

// NormalizeTags lowercases tags preserving order, without deduplication.
// NormalizeTags 小写化标签，保留顺序，不去重
func NormalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, strings.ToLower(t))
	}
	return out
}

// ParseTagsParam 解析逗号分隔的标签查询参数：切分、去空白、小写、丢弃空项
func ParseTagsParam(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
