package media

import (
	"strconv"

	"newsbangla24/portal/internal/dto"
	"newsbangla24/portal/internal/middleware"
	"newsbangla24/portal/pkg/response"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaService *MediaService
}

func NewMediaHandler(mediaService *MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

func listQuery(c *gin.Context) ListQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return ListQuery{
		Type:     c.Query("type"),
		Q:        c.Query("q"),
		Sort:     c.Query("sort"),
		Page:     page,
		PageSize: pageSize,
	}
}

// Upload 上传媒体
// @Summary 上传媒体文件
// @Description 按内容 sha256 去重，相同文件返回已有记录
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "文件"
// @Param alt_text formData string false "替代文本"
// @Success 200 {object} response.Response{data=UploadResult}
// @Failure 400 {object} response.Response
// @Router /reporter/media [post]
func (h *MediaHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("field 'file' is required"),
		))
		return
	}
	src, err := fh.Open()
	if err != nil {
		dto.ErrorResponse(c, response.NewInternal("failed to read upload", err))
		return
	}
	defer src.Close()

	result, err := h.mediaService.Upload(c.Request.Context(), c.GetUint(middleware.CtxUserID),
		fh.Filename, fh.Header.Get("Content-Type"), c.PostForm("alt_text"), src)
	if err != nil {
		dto.Error(c, err, "failed to upload file")
		return
	}
	dto.SuccessResponse(c, result)
}

// OwnList 我的媒体
// @Summary 当前用户的媒体库
// @Tags Media
// @Produce json
// @Param type query string false "类别" Enums(image, video, audio, document, other)
// @Param q query string false "按文件名/替代文本搜索"
// @Param sort query string false "排序，- 前缀表示降序" Enums(created_at, -created_at, size, -size, name, -name)
// @Success 200 {object} response.Response{data=[]media.MediaItem}
// @Router /reporter/media [get]
func (h *MediaHandler) OwnList(c *gin.Context) {
	result, err := h.mediaService.OwnList(c.Request.Context(), c.GetUint(middleware.CtxUserID), listQuery(c))
	if err != nil {
		dto.Error(c, err, "failed to load media")
		return
	}
	dto.SuccessResponse(c, result)
}

// Delete 删除媒体
// @Summary 删除媒体
// @Tags Media
// @Produce json
// @Param id path int true "媒体ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /reporter/media/{id} [delete]
func (h *MediaHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("invalid media id"),
		))
		return
	}
	u := middleware.CurrentUser(c)
	if err := h.mediaService.Delete(c.Request.Context(), Actor{ID: u.UserID, Role: u.Role}, uint(id)); err != nil {
		dto.Error(c, err, "failed to delete media")
		return
	}
	dto.SuccessResponse(c, nil)
}

// AdminList 全站媒体
// @Summary 全站媒体
// @Tags Admin
// @Produce json
// @Param type query string false "类别"
// @Param q query string false "关键字"
// @Param page query int false "页码" default(1)
// @Success 200 {object} response.Response{data=response.PageData}
// @Router /admin/media [get]
func (h *MediaHandler) AdminList(c *gin.Context) {
	result, err := h.mediaService.AdminList(c.Request.Context(), listQuery(c))
	if err != nil {
		dto.Error(c, err, "failed to load media")
		return
	}
	dto.SuccessResponse(c, result)
}
