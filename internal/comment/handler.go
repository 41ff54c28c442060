package comment

import (
	"strconv"

	"newsbangla24/portal/internal/dto"
	"newsbangla24/portal/internal/locale"
	"newsbangla24/portal/internal/middleware"
	"newsbangla24/portal/pkg/response"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService *CommentService
}

func NewCommentHandler(commentService *CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("invalid comment id"),
		))
		return 0, false
	}
	return uint(id), true
}

// Threads 文章评论
// @Summary 获取文章评论
// @Description 只返回已通过的评论，回复挂在顶级评论下
// @Tags Comment
// @Produce json
// @Param slug path string true "文章 slug"
// @Success 200 {object} response.Response{data=[]Thread}
// @Failure 404 {object} response.Response
// @Router /articles/{slug}/comments [get]
func (h *CommentHandler) Threads(c *gin.Context) {
	result, err := h.commentService.Threads(c.Request.Context(), c.Param("slug"), locale.FromRequest(c))
	if err != nil {
		dto.Error(c, err, "failed to load comments")
		return
	}
	dto.SuccessResponse(c, result)
}

// Create 发表评论
// @Summary 发表评论
// @Description 游客需要填写 author_name；评论默认进入待审
// @Tags Comment
// @Accept json
// @Produce json
// @Param slug path string true "文章 slug"
// @Param request body CreateRequest true "评论内容"
// @Success 200 {object} response.Response{data=comment.Comment}
// @Failure 400 {object} response.Response
// @Router /articles/{slug}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	u := middleware.CurrentUser(c)
	who := Commenter{UserID: u.UserID, Name: u.Name, Email: u.Email, Role: u.Role, IP: c.ClientIP()}

	result, err := h.commentService.Create(c.Request.Context(), c.Param("slug"), who, req)
	if err != nil {
		dto.Error(c, err, "failed to post comment")
		return
	}
	dto.SuccessResponse(c, result)
}

// AdminList 后台评论列表
// @Summary 评论列表
// @Tags Admin
// @Produce json
// @Param status query string false "状态" Enums(pending, approved, rejected, spam)
// @Param q query string false "关键字"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=response.PageData}
// @Router /admin/comments [get]
func (h *CommentHandler) AdminList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.commentService.AdminList(c.Request.Context(), c.Query("status"), c.Query("q"), page, pageSize)
	if err != nil {
		dto.Error(c, err, "failed to load comments")
		return
	}
	dto.SuccessResponse(c, result)
}

// SetStatus 审核评论
// @Summary 修改评论状态
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "评论ID"
// @Param request body StatusRequest true "目标状态"
// @Success 200 {object} response.Response{data=comment.Comment}
// @Failure 404 {object} response.Response
// @Router /admin/comments/{id} [patch]
func (h *CommentHandler) SetStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	result, err := h.commentService.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		dto.Error(c, err, "failed to update comment")
		return
	}
	dto.SuccessResponse(c, result)
}

// Bulk 批量审核
// @Summary 批量修改评论状态
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body BulkRequest true "评论ID和目标状态"
// @Success 200 {object} response.Response{data=[]BulkResult}
// @Router /admin/comments/bulk [post]
func (h *CommentHandler) Bulk(c *gin.Context) {
	var req BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, h.commentService.Bulk(c.Request.Context(), req))
}

// Delete 删除评论
// @Summary 删除评论及其回复
// @Tags Admin
// @Produce json
// @Param id path int true "评论ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.commentService.Delete(c.Request.Context(), id); err != nil {
		dto.Error(c, err, "failed to delete comment")
		return
	}
	dto.SuccessResponse(c, nil)
}
