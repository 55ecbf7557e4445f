package dao

import (
	"context"
	"time"

	"github.com/haierkeys/notemark-service/internal/domain"
	"github.com/haierkeys/notemark-service/internal/model"
	"github.com/haierkeys/notemark-service/pkg/timex"
)

// 书签列表子串匹配的列，比笔记多一个 url
var bookmarkTextColumns = []string{"title", "description", "url"}

// bookmarkRepository 实现 domain.BookmarkRepository 接口
type bookmarkRepository struct {
	dao *Dao
}

// NewBookmarkRepository 创建 BookmarkRepository 实例
func NewBookmarkRepository(dao *Dao) domain.BookmarkRepository {
	return &bookmarkRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *bookmarkRepository) toDomain(m *model.Bookmark) *domain.Bookmark {
	if m == nil {
		return nil
	}
	return &domain.Bookmark{
		ID:          m.ID,
		UID:         m.UID,
		URL:         m.URL,
		Title:       m.Title,
		Description: m.Description,
		Tags:        []string(m.Tags),
		Favorite:    m.Favorite,
		CreatedAt:   time.Time(m.CreatedAt),
		UpdatedAt:   time.Time(m.UpdatedAt),
	}
}

// Create 创建书签，时间戳由本层填充
func (r *bookmarkRepository) Create(ctx context.Context, bookmark *domain.Bookmark) (*domain.Bookmark, error) {
	m := &model.Bookmark{
		UID:         bookmark.UID,
		URL:         bookmark.URL,
		Title:       bookmark.Title,
		Description: bookmark.Description,
		Tags:        model.Tags(bookmark.Tags),
		Favorite:    bookmark.Favorite,
		CreatedAt:   timex.Now(),
		UpdatedAt:   timex.Now(),
	}
	if err := r.dao.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// GetByID 根据ID获取书签
func (r *bookmarkRepository) GetByID(ctx context.Context, id int64) (*domain.Bookmark, error) {
	var m model.Bookmark
	if err := r.dao.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// List 按过滤条件获取书签，创建时间倒序
func (r *bookmarkRepository) List(ctx context.Context, filter domain.ItemFilter) ([]*domain.Bookmark, error) {
	var ms []*model.Bookmark
	tx := applyItemFilter(r.dao.db.WithContext(ctx).Model(&model.Bookmark{}), filter, bookmarkTextColumns)
	if err := tx.Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Bookmark, 0, len(ms))
	for _, m := range ms {
		out = append(out, r.toDomain(m))
	}
	return out, nil
}

// Update 保存可变字段，归属与创建时间不受影响
func (r *bookmarkRepository) Update(ctx context.Context, bookmark *domain.Bookmark) (*domain.Bookmark, error) {
	now := timex.Now()
	err := r.dao.db.WithContext(ctx).Model(&model.Bookmark{}).
		Where("id = ?", bookmark.ID).
		Updates(map[string]any{
			"url":         bookmark.URL,
			"title":       bookmark.Title,
			"description": bookmark.Description,
			"tags":        model.Tags(bookmark.Tags),
			"favorite":    bookmark.Favorite,
			"updated_at":  now,
		}).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, bookmark.ID)
}

// Delete 物理删除书签
func (r *bookmarkRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Bookmark{}).Error
}

// 确保 bookmarkRepository 实现了 domain.BookmarkRepository 接口
var _ domain.BookmarkRepository = (*bookmarkRepository)(nil)
