package dao

import (
	"context"
	"time"

	"github.com/haierkeys/notemark-service/internal/domain"
	"github.com/haierkeys/notemark-service/internal/model"
	"github.com/haierkeys/notemark-service/pkg/timex"
)

// 笔记列表子串匹配的列
var noteTextColumns = []string{"title", "content"}

// noteRepository 实现 domain.NoteRepository 接口
type noteRepository struct {
	dao *Dao
}

// NewNoteRepository 创建 NoteRepository 实例
func NewNoteRepository(dao *Dao) domain.NoteRepository {
	return &noteRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *noteRepository) toDomain(m *model.Note) *domain.Note {
	if m == nil {
		return nil
	}
	return &domain.Note{
		ID:        m.ID,
		UID:       m.UID,
		Title:     m.Title,
		Content:   m.Content,
		Tags:      []string(m.Tags),
		Favorite:  m.Favorite,
		CreatedAt: time.Time(m.CreatedAt),
		UpdatedAt: time.Time(m.UpdatedAt),
	}
}

// Create 创建笔记，时间戳由本层填充
func (r *noteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	m := &model.Note{
		UID:       note.UID,
		Title:     note.Title,
		Content:   note.Content,
		Tags:      model.Tags(note.Tags),
		Favorite:  note.Favorite,
		CreatedAt: timex.Now(),
		UpdatedAt: timex.Now(),
	}
	if err := r.dao.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// GetByID 根据ID获取笔记
func (r *noteRepository) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	var m model.Note
	if err := r.dao.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// List 按过滤条件获取笔记，创建时间倒序
func (r *noteRepository) List(ctx context.Context, filter domain.ItemFilter) ([]*domain.Note, error) {
	var ms []*model.Note
	tx := applyItemFilter(r.dao.db.WithContext(ctx).Model(&model.Note{}), filter, noteTextColumns)
	if err := tx.Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Note, 0, len(ms))
	for _, m := range ms {
		out = append(out, r.toDomain(m))
	}
	return out, nil
}

// Update 保存可变字段，归属与创建时间不受影响
func (r *noteRepository) Update(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	now := timex.Now()
	err := r.dao.db.WithContext(ctx).Model(&model.Note{}).
		Where("id = ?", note.ID).
		Updates(map[string]any{
			"title":      note.Title,
			"content":    note.Content,
			"tags":       model.Tags(note.Tags),
			"favorite":   note.Favorite,
			"updated_at": now,
		}).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, note.ID)
}

// Delete 物理删除笔记
func (r *noteRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Note{}).Error
}

// 确保 noteRepository 实现了 domain.NoteRepository 接口
var _ domain.NoteRepository = (*noteRepository)(nil)
