package service

import (
	"context"
	"errors"
	"strings"

	"github.com/haierkeys/notemark-service/internal/domain"
	"github.com/haierkeys/notemark-service/internal/dto"
	"github.com/haierkeys/notemark-service/pkg/code"
	"github.com/haierkeys/notemark-service/pkg/timex"
	"github.com/haierkeys/notemark-service/pkg/util"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BookmarkService 定义书签业务服务接口
// uid 为请求者身份，0 表示匿名
type BookmarkService interface {
	// Create 创建书签，标题缺省时尽力抓取页面标题回填
	Create(ctx context.Context, uid int64, params *dto.BookmarkCreateRequest) (*dto.BookmarkDTO, error)

	// List 按查询条件获取书签列表
	List(ctx context.Context, uid int64, params *dto.ItemListRequest) ([]*dto.BookmarkDTO, error)

	// Get 获取单条书签
	Get(ctx context.Context, uid int64, id int64) (*dto.BookmarkDTO, error)

	// Update 局部更新书签
	Update(ctx context.Context, uid int64, id int64, params *dto.BookmarkUpdateRequest) (*dto.BookmarkDTO, error)

	// Delete 删除书签
	Delete(ctx context.Context, uid int64, id int64) error
}

// bookmarkService 实现 BookmarkService 接口
type bookmarkService struct {
	bookmarkRepo  domain.BookmarkRepository
	titleResolver TitleResolver
	logger        *zap.Logger
}

// NewBookmarkService 创建 BookmarkService 实例
func NewBookmarkService(bookmarkRepo domain.BookmarkRepository, titleResolver TitleResolver, logger *zap.Logger) BookmarkService {
	return &bookmarkService{
		bookmarkRepo:  bookmarkRepo,
		titleResolver: titleResolver,
		logger:        logger,
	}
}

// domainToDTO 将领域模型转换为 DTO
func (s *bookmarkService) domainToDTO(bookmark *domain.Bookmark) *dto.BookmarkDTO {
	if bookmark == nil {
		return nil
	}
	return &dto.BookmarkDTO{
		ID:          bookmark.ID,
		UID:         bookmark.UID,
		URL:         bookmark.URL,
		Title:       bookmark.Title,
		Description: bookmark.Description,
		Tags:        bookmark.Tags,
		Favorite:    bookmark.Favorite,
		UpdatedAt:   timex.Time(bookmark.UpdatedAt),
		CreatedAt:   timex.Time(bookmark.CreatedAt),
	}
}

// Create 创建书签
// 请求未给标题时尝试抓取页面 <title>，抓取失败不影响创建
// 只对 http(s) 链接发起抓取
func (s *bookmarkService) Create(ctx context.Context, uid int64, params *dto.BookmarkCreateRequest) (*dto.BookmarkDTO, error) {
	title := params.Title
	if strings.TrimSpace(title) == "" && s.titleResolver != nil && util.IsValidURL(params.URL) {
		if fetched, ok := s.titleResolver.Resolve(ctx, params.URL); ok {
			title = fetched
		}
	}

	bookmark, err := s.bookmarkRepo.Create(ctx, &domain.Bookmark{
		UID:         uid,
		URL:         params.URL,
		Title:       title,
		Description: params.Description,
		Tags:        domain.NormalizeTags(params.Tags),
	})
	if err != nil {
		s.logger.Error("bookmarkService.Create err", zap.Error(err))
		return nil, code.ErrorDBQuery
	}
	return s.domainToDTO(bookmark), nil
}

// List 按查询条件获取书签列表
func (s *bookmarkService) List(ctx context.Context, uid int64, params *dto.ItemListRequest) ([]*dto.BookmarkDTO, error) {
	filter := domain.ItemFilter{
		OwnerUID: uid,
		Query:    params.Query,
		Tags:     domain.ParseTagsParam(params.Tags),
	}

	bookmarks, err := s.bookmarkRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("bookmarkService.List err", zap.Error(err))
		return nil, code.ErrorDBQuery
	}

	out := make([]*dto.BookmarkDTO, 0, len(bookmarks))
	for _, b := range bookmarks {
		out = append(out, s.domainToDTO(b))
	}
	return out, nil
}

// get 读取并校验访问权限，Get/Update/Delete 共用
func (s *bookmarkService) get(ctx context.Context, uid int64, id int64) (*domain.Bookmark, error) {
	bookmark, err := s.bookmarkRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorBookmarkNotFound
		}
		s.logger.Error("bookmarkService.get err", zap.Error(err))
		return nil, code.ErrorDBQuery
	}
	if !bookmark.AccessibleBy(uid) {
		return nil, code.ErrorForbidden
	}
	return bookmark, nil
}

// Get 获取单条书签
func (s *bookmarkService) Get(ctx context.Context, uid int64, id int64) (*dto.BookmarkDTO, error) {
	bookmark, err := s.get(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	return s.domainToDTO(bookmark), nil
}

// Update 局部更新书签
// 更新不触发标题抓取，标题以请求显式给出的为准
func (s *bookmarkService) Update(ctx context.Context, uid int64, id int64, params *dto.BookmarkUpdateRequest) (*dto.BookmarkDTO, error) {
	bookmark, err := s.get(ctx, uid, id)
	if err != nil {
		return nil, err
	}

	if params.URL != nil {
		bookmark.URL = *params.URL
	}
	if params.Title != nil {
		bookmark.Title = *params.Title
	}
	if params.Description != nil {
		bookmark.Description = *params.Description
	}
	if params.Tags != nil {
		bookmark.Tags = domain.NormalizeTags(*params.Tags)
	}
	if params.Favorite != nil {
		bookmark.Favorite = *params.Favorite
	}

	updated, err := s.bookmarkRepo.Update(ctx, bookmark)
	if err != nil {
		s.logger.Error("bookmarkService.Update err", zap.Error(err))
		return nil, code.ErrorDBQuery
	}
	return s.domainToDTO(updated), nil
}

// Delete 删除书签
func (s *bookmarkService) Delete(ctx context.Context, uid int64, id int64) error {
	if _, err := s.get(ctx, uid, id); err != nil {
		return err
	}
	if err := s.bookmarkRepo.Delete(ctx, id); err != nil {
		s.logger.Error("bookmarkService.Delete err", zap.Error(err))
		return code.ErrorDBQuery
	}
	return nil
}
