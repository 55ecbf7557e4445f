package domain

import "context"

// ItemFilter 列表查询过滤条件
type ItemFilter struct {
	// OwnerUID 大于 0 时限定归属用户
	OwnerUID int64
	// Query 不区分大小写的子串匹配，作用于标题、正文（书签额外匹配 URL）
	Query string
	// Tags 条目必须包含全部列出的标签（已小写）
	Tags []string
}

// UserRepository 用户仓储接口
type UserRepository interface {
	// GetByUID 根据UID获取用户
	GetByUID(ctx context.Context, uid int64) (*User, error)

	// GetByEmail 根据邮箱获取用户，邮箱区分大小写
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Create 创建用户
	Create(ctx context.Context, user *User) (*User, error)
}

// NoteRepository 笔记仓储接口
type NoteRepository interface {
	// Create 创建笔记，时间戳由仓储层填充
	Create(ctx context.Context, note *Note) (*Note, error)

	// GetByID 根据ID获取笔记
	GetByID(ctx context.Context, id int64) (*Note, error)

	// List 按过滤条件获取笔记，创建时间倒序
	List(ctx context.Context, filter ItemFilter) ([]*Note, error)

	// Update 保存笔记全部可变字段，刷新更新时间
	Update(ctx context.Context, note *Note) (*Note, error)

	// Delete 物理删除笔记
	Delete(ctx context.Context, id int64) error
}

// BookmarkRepository 书签仓储接口
type BookmarkRepository interface {
	// Create 创建书签，时间戳由仓储层填充
	Create(ctx context.Context, bookmark *Bookmark) (*Bookmark, error)

	// GetByID 根据ID获取书签
	GetByID(ctx context.Context, id int64) (*Bookmark, error)

	// List 按过滤条件获取书签，创建时间倒序
	List(ctx context.Context, filter ItemFilter) ([]*Bookmark, error)

	// Update 保存书签全部可变字段，刷新更新时间
	Update(ctx context.Context, bookmark *Bookmark) (*Bookmark, error)

	// Delete 物理删除书签
	Delete(ctx context.Context, id int64) error
}
