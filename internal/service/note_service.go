package service

import (
	"context"
	"errors"

	"github.com/haierkeys/notemark-service/internal/domain"
	"github.com/haierkeys/notemark-service/internal/dto"
	"github.com/haierkeys/notemark-service/pkg/code"
	"github.com/haierkeys/notemark-service/pkg/timex"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NoteService 定义笔记业务服务接口
// uid 为请求者身份，0 表示匿名
type NoteService interface {
	// Create 创建笔记
	Create(ctx context.Context, uid int64, params *dto.NoteCreateRequest) (*dto.NoteDTO, error)

	// List 按查询条件获取笔记列表
	List(ctx context.Context, uid int64, params *dto.ItemListRequest) ([]*dto.NoteDTO, error)

	// Get 获取单条笔记
	Get(ctx context.Context, uid int64, id int64) (*dto.NoteDTO, error)

	// Update 局部更新笔记
	Update(ctx context.Context, uid int64, id int64, params *dto.NoteUpdateRequest) (*dto.NoteDTO, error)

	// Delete 删除笔记
	Delete(ctx context.Context, uid int64, id int64) error
}

// noteService 实现 NoteService 接口
type noteService struct {
	noteRepo domain.NoteRepository
	logger   *zap.Logger
}

// NewNoteService 创建 NoteService 实例
func NewNoteService(noteRepo domain.NoteRepository, logger *zap.Logger) NoteService {
	return &noteService{
		noteRepo: noteRepo,
		logger:   logger,
	}
}

// domainToDTO 将领域模型转换为 DTO
func (s *noteService) domainToDTO(note *domain.Note) *dto.NoteDTO {
	if note == nil {
		return nil
	}
	return &dto.NoteDTO{
		ID:        note.ID,
		UID:       note.UID,
		Title:     note.Title,
		Content:   note.Content,
		Tags:      note.Tags,
		Favorite:  note.Favorite,
		UpdatedAt: timex.Time(note.UpdatedAt),
		CreatedAt: timex.Time(note.CreatedAt),
	}
}

// Create 创建笔记
// 标签写入时小写化；uid 为 0 时创建无归属笔记
func (s *noteService) Create(ctx context.Context, uid int64, params *dto.NoteCreateRequest) (*dto.NoteDTO, error) {
	note, err := s.noteRepo.Create(ctx, &domain.Note{
		UID:     uid,
		Title:   params.Title,
		Content: params.Content,
		Tags:    domain.NormalizeTags(params.Tags),
	})
	if err != nil {
		s.logger.Error("noteService.Create err", zap.Error(err))
		return nil, code.ErrorDBQuery
	}
	return s.domainToDTO(note), nil
}

// List 按查询条件获取笔记列表
// 已认证时只返回请求者名下的笔记；匿名时不加归属过滤
func (s *noteService) List(ctx context.Context, uid int64, params *dto.ItemListRequest) ([]*dto.NoteDTO, error) {
	filter := domain.ItemFilter{
		OwnerUID: uid,
		Query:    params.Query,
		Tags:     domain.ParseTagsParam(params.Tags),
	}

	notes, err := s.noteRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("noteService.List err", zap.Error(err))
		return nil, code.ErrorDBQuery
	}

	out := make([]*dto.NoteDTO, 0, len(notes))
	for _, n := range notes {
		out = append(out, s.domainToDTO(n))
	}
	return out, nil
}

// get 读取并校验访问权限，Get/Update/Delete 共用
func (s *noteService) get(ctx context.Context, uid int64, id int64) (*domain.Note, error) {
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorNoteNotFound
		}
		s.logger.Error("noteService.get err", zap.Error(err))
		return nil, code.ErrorDBQuery
	}
	if !note.AccessibleBy(uid) {
		return nil, code.ErrorForbidden
	}
	return note, nil
}

// Get 获取单条笔记
func (s *noteService) Get(ctx context.Context, uid int64, id int64) (*dto.NoteDTO, error) {
	note, err := s.get(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	return s.domainToDTO(note), nil
}

// Update 局部更新笔记
// 只覆盖请求中显式出现的字段；tags 整体替换并重新小写化；归属不变
func (s *noteService) Update(ctx context.Context, uid int64, id int64, params *dto.NoteUpdateRequest) (*dto.NoteDTO, error) {
	note, err := s.get(ctx, uid, id)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		note.Title = *params.Title
	}
	if params.Content != nil {
		note.Content = *params.Content
	}
	if params.Tags != nil {
		note.Tags = domain.NormalizeTags(*params.Tags)
	}
	if params.Favorite != nil {
		note.Favorite = *params.Favorite
	}

	updated, err := s.noteRepo.Update(ctx, note)
	if err != nil {
		s.logger.Error("noteService.Update err", zap.Error(err))
		return nil, code.ErrorDBQuery
	}
	return s.domainToDTO(updated), nil
}

// Delete 删除笔记
func (s *noteService) Delete(ctx context.Context, uid int64, id int64) error {
	if _, err := s.get(ctx, uid, id); err != nil {
		return err
	}
	if err := s.noteRepo.Delete(ctx, id); err != nil {
		s.logger.Error("noteService.Delete err", zap.Error(err))
		return code.ErrorDBQuery
	}
	return nil
}
