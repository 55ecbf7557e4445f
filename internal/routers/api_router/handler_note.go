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

// NoteHandler 笔记 API 路由处理器
type NoteHandler struct {
	*Handler
}

// NewNoteHandler 创建 NoteHandler 实例
func NewNoteHandler(a *app.App) *NoteHandler {
	return &NoteHandler{
		Handler: NewHandler(a),
	}
}

// Create 创建笔记
// @Summary Create note
// @Description 创建笔记，认证用户的笔记归属其名下，匿名创建的笔记无归属
// @Tags Note
// @Accept json
// @Produce json
// @Param params body dto.NoteCreateRequest true "Note Parameters"
// @Success 201 {object} dto.NoteDTO "Created"
// @Failure 400 "Invalid Parameters"
// @Router /api/notes [post]
func (h *NoteHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Warn("NoteHandler.Create.BindAndValid errs", zap.Error(errs))
		apperrors.ErrorResponse(c, code.ErrorInvalidParams.WithDetails(errs.Errors()...))
		return
	}

	noteDTO, err := h.App.NoteService.Create(c.Request.Context(), pkgapp.GetUID(c), params)
	if err != nil {
		h.logError(c, "NoteHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToCreatedResponse(noteDTO)
}

// List 获取笔记列表
// @Summary List notes
// @Description 按 q（标题/正文子串）与 tags（逗号分隔，全部命中）过滤，创建时间倒序
// @Tags Note
// @Produce json
// @Param q query string false "Substring query"
// @Param tags query string false "Comma separated tags"
// @Success 200 {array} dto.NoteDTO "Success"
// @Router /api/notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ItemListRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Warn("NoteHandler.List.BindAndValid errs", zap.Error(errs))
		apperrors.ErrorResponse(c, code.ErrorInvalidParams.WithDetails(errs.Errors()...))
		return
	}

	notes, err := h.App.NoteService.List(c.Request.Context(), pkgapp.GetUID(c), params)
	if err != nil {
		h.logError(c, "NoteHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(notes)
}

// Get 获取单条笔记
// @Summary Get note
// @Tags Note
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} dto.NoteDTO "Success"
// @Failure 403 "Forbidden"
// @Failure 404 "Note Not Found"
// @Router /api/notes/{id} [get]
func (h *NoteHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := parseID(c)
	if err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}

	noteDTO, err := h.App.NoteService.Get(c.Request.Context(), pkgapp.GetUID(c), id)
	if err != nil {
		h.logError(c, "NoteHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(noteDTO)
}

// Update 局部更新笔记
// @Summary Update note
// @Description 只更新请求中显式出现的字段
// @Tags Note
// @Accept json
// @Produce json
// @Param id path int true "Note ID"
// @Param params body dto.NoteUpdateRequest true "Update Parameters"
// @Success 200 {object} dto.NoteDTO "Success"
// @Failure 403 "Forbidden"
// @Failure 404 "Note Not Found"
// @Router /api/notes/{id} [put]
func (h *NoteHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := parseID(c)
	if err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}

	params := &dto.NoteUpdateRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Warn("NoteHandler.Update.BindAndValid errs", zap.Error(errs))
		apperrors.ErrorResponse(c, code.ErrorInvalidParams.WithDetails(errs.Errors()...))
		return
	}

	noteDTO, err := h.App.NoteService.Update(c.Request.Context(), pkgapp.GetUID(c), id, params)
	if err != nil {
		h.logError(c, "NoteHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(noteDTO)
}

// Delete 删除笔记
// @Summary Delete note
// @Tags Note
// @Param id path int true "Note ID"
// @Success 204 "No Content"
// @Failure 403 "Forbidden"
// @Failure 404 "Note Not Found"
// @Router /api/notes/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id, err := parseID(c)
	if err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}

	if err := h.App.NoteService.Delete(c.Request.Context(), pkgapp.GetUID(c), id); err != nil {
		h.logError(c, "NoteHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToNoContentResponse()
}
