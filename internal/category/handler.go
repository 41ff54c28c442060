package category

import (
	"strconv"

	"newsbangla24/portal/internal/dto"
	"newsbangla24/portal/internal/locale"
	"newsbangla24/portal/pkg/response"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService *CategoryService
}

func NewCategoryHandler(categoryService *CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("invalid category id"),
		))
		return 0, false
	}
	return uint(id), true
}

// Tree 栏目树
// @Summary 栏目树
// @Description 启用中的栏目及已发布文章数
// @Tags Category
// @Produce json
// @Param lang query string false "语言" Enums(bn, en)
// @Success 200 {object} response.Response{data=[]Node}
// @Router /categories [get]
func (h *CategoryHandler) Tree(c *gin.Context) {
	result, err := h.categoryService.Tree(c.Request.Context(), locale.FromRequest(c))
	if err != nil {
		dto.Error(c, err, "failed to load categories")
		return
	}
	dto.SuccessResponse(c, result)
}

// Detail 栏目页
// @Summary 栏目页
// @Tags Category
// @Produce json
// @Param slug path string true "栏目 slug"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Param sort query string false "排序" Enums(latest, oldest, popular, title)
// @Param lang query string false "语言" Enums(bn, en)
// @Success 200 {object} response.Response{data=DetailResponse}
// @Failure 404 {object} response.Response
// @Router /categories/{slug} [get]
func (h *CategoryHandler) Detail(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.categoryService.Detail(c.Request.Context(), c.Param("slug"), locale.FromRequest(c), page, pageSize, c.DefaultQuery("sort", "latest"))
	if err != nil {
		dto.Error(c, err, "failed to load category")
		return
	}
	dto.SuccessResponse(c, result)
}

// AdminList 后台栏目列表
// @Summary 全部栏目（管理员）
// @Tags Category
// @Produce json
// @Param q query string false "搜索名称或 slug"
// @Success 200 {object} response.Response{data=[]category.Category}
// @Router /admin/categories [get]
func (h *CategoryHandler) AdminList(c *gin.Context) {
	result, err := h.categoryService.AdminList(c.Request.Context(), c.Query("q"))
	if err != nil {
		dto.Error(c, err, "failed to load categories")
		return
	}
	dto.SuccessResponse(c, result)
}

// Create 新建栏目
// @Summary 新建栏目
// @Tags Category
// @Accept json
// @Produce json
// @Param request body CategoryRequest true "栏目信息"
// @Success 200 {object} response.Response{data=category.Category}
// @Failure 409 {object} response.Response
// @Router /admin/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	result, err := h.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		dto.Error(c, err, "failed to create category")
		return
	}
	dto.SuccessResponse(c, result)
}

// Update 修改栏目
// @Summary 修改栏目
// @Tags Category
// @Accept json
// @Produce json
// @Param id path int true "栏目ID"
// @Param request body CategoryRequest true "栏目信息"
// @Success 200 {object} response.Response{data=category.Category}
// @Router /admin/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	result, err := h.categoryService.Update(c.Request.Context(), id, req)
	if err != nil {
		dto.Error(c, err, "failed to update category")
		return
	}
	dto.SuccessResponse(c, result)
}

// Delete 删除栏目
// @Summary 删除栏目
// @Description 仍有文章或子栏目时返回 409
// @Tags Category
// @Produce json
// @Param id path int true "栏目ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		dto.Error(c, err, "failed to delete category")
		return
	}
	dto.SuccessResponse(c, gin.H{"id": id})
}
