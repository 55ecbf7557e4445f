package api_router

import (
	"github.com/haierkeys/notemark-service/internal/app"
	"github.com/haierkeys/notemark-service/internal/dto"
	pkgapp "github.com/haierkeys/notemark-service/pkg/app"
	"github.com/haierkeys/notemark-service/pkg/code"
	apperrors "github.com/haierkeys/notemark-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookmarkHandler 书签 API 路由处理器
type BookmarkHandler struct {
	*Handler
}

// NewBookmarkHandler 创建 BookmarkHandler 实例
func NewBookmarkHandler(a *app.App) *BookmarkHandler {
	return &BookmarkHandler{
		Handler: NewHandler(a),
	}
}

// Create 创建书签
// @Summary Create bookmark
// @Description 创建书签，未提供标题时服务端尽力抓取页面 <title> 回填，抓取失败不影响创建
// @Tags Bookmark
// @Accept json
// @Produce json
// @Param params body dto.BookmarkCreateRequest true "Bookmark Parameters"
// @Success 201 {object} dto.BookmarkDTO "Created"
// @Failure 400 "Invalid Parameters"
// @Router /api/bookmarks [post]
func (h *BookmarkHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.BookmarkCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Warn("BookmarkHandler.Create.BindAndValid errs", zap.Error(errs))
		apperrors.ErrorResponse(c, code.ErrorInvalidParams.WithDetails(errs.Errors()...))
		return
	}

	bookmarkDTO, err := h.App.BookmarkService.Create(c.Request.Context(), pkgapp.GetUID(c), params)
	if err != nil {
		h.logError(c, "BookmarkHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToCreatedResponse(bookmarkDTO)
}

// List 获取书签列表
// @Summary List bookmarks
// @Description 按 q（标题/描述/URL 子串）与 tags（逗号分隔，全部命中）过滤，创建时间倒序
// @Tags Bookmark
// @Produce json
// @Param q query string false "Substring query"
// @Param tags query string false "Comma separated tags"
// @Success 200 {array} dto.BookmarkDTO "Success"
// @Router /api/bookmarks [get]
func (h *BookmarkHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ItemListRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Warn("BookmarkHandler.List.BindAndValid errs", zap.Error(errs))
		apperrors.ErrorResponse(c, code.ErrorInvalidParams.WithDetails(errs.Errors()...))
		return
	}

	bookmarks, err := h.App.BookmarkService.List(c.Request.Context(), pkgapp.GetUID(c), params)
	if err != nil {
		h.logError(c, "BookmarkHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(bookmarks)
}

// Get 获取单条书签
// @Summary Get bookmark
// @Tags Bookmark
// @Produce json
// @Param id path int true "Bookmark ID"
// @Success 200 {object} dto.BookmarkDTO "Success"
// @Failure 403 "Forbidden"
// @Failure 404 "Bookmark Not Found"
// @Router /api/bookmarks/{id} [get]
func (h *BookmarkHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := parseID(c)
	if err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}

	bookmarkDTO, err := h.App.BookmarkService.Get(c.Request.Context(), pkgapp.GetUID(c), id)
	if err != nil {
		h.logError(c, "BookmarkHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(bookmarkDTO)
}

// Update 局部更新书签
// @Summary Update bookmark
// @Description 只更新请求中显式出现的字段，更新不触发标题抓取
// @Tags Bookmark
// @Accept json
// @Produce json
// @Param id path int true "Bookmark ID"
// @Param params body dto.BookmarkUpdateRequest true "Update Parameters"
// @Success 200 {object} dto.BookmarkDTO "Success"
// @Failure 403 "Forbidden"
// @Failure 404 "Bookmark Not Found"
// @Router /api/bookmarks/{id} [put]
func (h *BookmarkHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := parseID(c)
	if err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}

	params := &dto.BookmarkUpdateRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Warn("BookmarkHandler.Update.BindAndValid errs", zap.Error(errs))
		apperrors.ErrorResponse(c, code.ErrorInvalidParams.WithDetails(errs.Errors()...))
		return
	}

	bookmarkDTO, err := h.App.BookmarkService.Update(c.Request.Context(), pkgapp.GetUID(c), id, params)
	if err != nil {
		h.logError(c, "BookmarkHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(bookmarkDTO)
}

// Delete 删除书签
// @Summary Delete bookmark
// @Tags Bookmark
// @Param id path int true "Bookmark ID"
// @Success 204 "No Content"
// @Failure 403 "Forbidden"
// @Failure 404 "Bookmark Not Found"
// @Router /api/bookmarks/{id} [delete]
func (h *BookmarkHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := parseID(c)
	if err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}

	if err := h.App.BookmarkService.Delete(c.Request.Context(), pkgapp.GetUID(c), id); err != nil {
		h.logError(c, "BookmarkHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToNoContentResponse()
}
