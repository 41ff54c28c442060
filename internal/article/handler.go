package article

import (
	"strconv"

	"newsbangla24/portal/internal/dto"
	"newsbangla24/portal/internal/locale"
	"newsbangla24/portal/internal/middleware"
	"newsbangla24/portal/pkg/response"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService *ArticleService
}

func NewArticleHandler(articleService *ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("invalid article id"),
		))
		return 0, false
	}
	return uint(id), true
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return v
}

func queryUint(c *gin.Context, key string) uint {
	v, _ := strconv.ParseUint(c.Query(key), 10, 64)
	return uint(v)
}

func actorOf(c *gin.Context) Actor {
	u := middleware.CurrentUser(c)
	return Actor{ID: u.UserID, Role: u.Role}
}

// ===== 读者 =====

// Home 首页
// @Summary 首页
// @Description 头条、突发、最新以及各栏目版块
// @Tags Article
// @Produce json
// @Param lang query string false "语言" Enums(bn, en)
// @Success 200 {object} response.Response{data=HomeResponse}
// @Router /home [get]
func (h *ArticleHandler) Home(c *gin.Context) {
	result, err := h.articleService.Home(c.Request.Context(), locale.FromRequest(c))
	if err != nil {
		dto.Error(c, err, "failed to load home page")
		return
	}
	dto.SuccessResponse(c, result)
}

// List 文章列表
// @Summary 已发布文章列表
// @Tags Article
// @Produce json
// @Param category query string false "栏目 slug"
// @Param tag query string false "标签 slug"
// @Param q query string false "关键字"
// @Param sort query string false "排序" Enums(latest, oldest, popular, title)
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Param lang query string false "语言" Enums(bn, en)
// @Success 200 {object} response.Response{data=response.PageData}
// @Router /articles [get]
func (h *ArticleHandler) List(c *gin.Context) {
	result, err := h.articleService.List(c.Request.Context(), ListQuery{
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
		Q:        c.Query("q"),
		Sort:     c.DefaultQuery("sort", "latest"),
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 20),
	}, locale.FromRequest(c))
	if err != nil {
		dto.Error(c, err, "failed to load articles")
		return
	}
	dto.SuccessResponse(c, result)
}

// Search 搜索
// @Summary 搜索文章
// @Tags Article
// @Produce json
// @Param q query string true "关键字"
// @Param page query int false "页码" default(1)
// @Param lang query string false "语言" Enums(bn, en)
// @Success 200 {object} response.Response{data=response.PageData}
// @Router /search [get]
func (h *ArticleHandler) Search(c *gin.Context) {
	h.List(c)
}

// Detail 文章详情
// @Summary 文章详情
// @Tags Article
// @Produce json
// @Param slug path string true "文章 slug"
// @Param lang query string false "语言" Enums(bn, en)
// @Success 200 {object} response.Response{data=Detail}
// @Failure 404 {object} response.Response
// @Router /articles/{slug} [get]
func (h *ArticleHandler) Detail(c *gin.Context) {
	result, err := h.articleService.Detail(c.Request.Context(), c.Param("slug"), locale.FromRequest(c), c.GetUint(middleware.CtxUserID))
	if err != nil {
		dto.Error(c, err, "failed to load article")
		return
	}
	dto.SuccessResponse(c, result)
}

// Trending 热门文章
// @Summary 热门文章
// @Tags Article
// @Produce json
// @Param days query int false "统计天数" default(7)
// @Param lang query string false "语言" Enums(bn, en)
// @Success 200 {object} response.Response{data=[]TrendingItem}
// @Router /trending [get]
func (h *ArticleHandler) Trending(c *gin.Context) {
	result, err := h.articleService.Trending(c.Request.Context(), queryInt(c, "days", 7), locale.FromRequest(c))
	if err != nil {
		dto.Error(c, err, "failed to load trending articles")
		return
	}
	dto.SuccessResponse(c, result)
}

// Tags 标签列表
// @Summary 标签列表
// @Tags Article
// @Produce json
// @Param lang query string false "语言" Enums(bn, en)
// @Success 200 {object} response.Response{data=[]TagRef}
// @Router /tags [get]
func (h *ArticleHandler) Tags(c *gin.Context) {
	result, err := h.articleService.Tags(c.Request.Context(), locale.FromRequest(c))
	if err != nil {
		dto.Error(c, err, "failed to load tags")
		return
	}
	dto.SuccessResponse(c, result)
}

// ToggleBookmark 收藏/取消收藏
// @Summary 切换收藏
// @Tags Bookmark
// @Produce json
// @Param id path int true "文章ID"
// @Success 200 {object} response.Response{data=BookmarkResult}
// @Router /me/bookmarks/{id} [post]
func (h *ArticleHandler) ToggleBookmark(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	result, err := h.articleService.ToggleBookmark(c.Request.Context(), c.GetUint(middleware.CtxUserID), id)
	if err != nil {
		dto.Error(c, err, "failed to update bookmark")
		return
	}
	dto.SuccessResponse(c, result)
}

// Bookmarks 收藏列表
// @Summary 我的收藏
// @Tags Bookmark
// @Produce json
// @Param lang query string false "语言" Enums(bn, en)
// @Success 200 {object} response.Response{data=[]Summary}
// @Router /me/bookmarks [get]
func (h *ArticleHandler) Bookmarks(c *gin.Context) {
	result, err := h.articleService.Bookmarks(c.Request.Context(), c.GetUint(middleware.CtxUserID), locale.FromRequest(c))
	if err != nil {
		dto.Error(c, err, "failed to load bookmarks")
		return
	}
	dto.SuccessResponse(c, result)
}

// ===== 记者工作台 =====

// OwnList 我的稿件
// @Summary 我的稿件
// @Tags Reporter
// @Produce json
// @Param status query string false "状态"
// @Param q query string false "关键字"
// @Param sort query string false "排序，- 前缀表示降序" default(-updated)
// @Success 200 {object} response.Response{data=[]article.Article}
// @Router /reporter/articles [get]
func (h *ArticleHandler) OwnList(c *gin.Context) {
	result, err := h.articleService.OwnList(c.Request.Context(), c.GetUint(middleware.CtxUserID), OwnListQuery{
		Status: c.Query("status"),
		Q:      c.Query("q"),
		Sort:   c.Query("sort"),
	})
	if err != nil {
		dto.Error(c, err, "failed to load articles")
		return
	}
	dto.SuccessResponse(c, result)
}

// Create 新建草稿
// @Summary 新建草稿
// @Tags Reporter
// @Accept json
// @Produce json
// @Param request body ArticleRequest true "稿件内容"
// @Success 200 {object} response.Response{data=article.Article}
// @Router /reporter/articles [post]
func (h *ArticleHandler) Create(c *gin.Context) {
	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	result, err := h.articleService.Create(c.Request.Context(), c.GetUint(middleware.CtxUserID), req)
	if err != nil {
		dto.Error(c, err, "failed to create article")
		return
	}
	dto.SuccessResponse(c, result)
}

// Get 查看稿件
// @Summary 查看稿件
// @Tags Reporter
// @Produce json
// @Param id path int true "文章ID"
// @Success 200 {object} response.Response{data=article.Article}
// @Router /reporter/articles/{id} [get]
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	result, err := h.articleService.GetOwn(c.Request.Context(), actorOf(c), id)
	if err != nil {
		dto.Error(c, err, "failed to load article")
		return
	}
	dto.SuccessResponse(c, result)
}

// Update 修改稿件
// @Summary 修改稿件（草稿或被驳回）
// @Tags Reporter
// @Accept json
// @Produce json
// @Param id path int true "文章ID"
// @Param request body ArticleRequest true "稿件内容"
// @Success 200 {object} response.Response{data=article.Article}
// @Router /reporter/articles/{id} [put]
func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	result, err := h.articleService.Update(c.Request.Context(), actorOf(c), id, req)
	if err != nil {
		dto.Error(c, err, "failed to update article")
		return
	}
	dto.SuccessResponse(c, result)
}

// Delete 删除稿件
// @Summary 删除稿件（草稿或被驳回）
// @Tags Reporter
// @Produce json
// @Param id path int true "文章ID"
// @Success 200 {object} response.Response
// @Router /reporter/articles/{id} [delete]
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.articleService.Delete(c.Request.Context(), actorOf(c), id); err != nil {
		dto.Error(c, err, "failed to delete article")
		return
	}
	dto.SuccessResponse(c, gin.H{"id": id})
}

// Submit 提交审核
// @Summary 提交审核
// @Tags Reporter
// @Accept json
// @Produce json
// @Param id path int true "文章ID"
// @Param request body SubmitRequest false "定时发布时间"
// @Success 200 {object} response.Response{data=article.Article}
// @Router /reporter/articles/{id}/submit [post]
func (h *ArticleHandler) Submit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req SubmitRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			dto.ValidationErrorResponse(c, err)
			return
		}
	}
	result, err := h.articleService.Submit(c.Request.Context(), actorOf(c), id, req)
	if err != nil {
		dto.Error(c, err, "failed to submit article")
		return
	}
	dto.SuccessResponse(c, result)
}

// Calendar 稿件月历
// @Summary 稿件月历
// @Tags Reporter
// @Produce json
// @Param year query int false "年份"
// @Param month query int false "月份 1-12"
// @Success 200 {object} response.Response{data=CalendarResponse}
// @Router /reporter/calendar [get]
func (h *ArticleHandler) Calendar(c *gin.Context) {
	result, err := h.articleService.Calendar(c.Request.Context(), c.GetUint(middleware.CtxUserID), queryInt(c, "year", 0), queryInt(c, "month", 0))
	if err != nil {
		dto.Error(c, err, "failed to load calendar")
		return
	}
	dto.SuccessResponse(c, result)
}

// ===== 后台审核 =====

// AdminList 后台文章列表
// @Summary 全部文章（管理员/编辑）
// @Tags Admin
// @Produce json
// @Param status query string false "状态"
// @Param author_id query int false "作者ID"
// @Param category_id query int false "栏目ID"
// @Param q query string false "关键字"
// @Param sort query string false "排序" Enums(created, latest, oldest, popular, title)
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=response.PageData}
// @Router /admin/articles [get]
func (h *ArticleHandler) AdminList(c *gin.Context) {
	result, err := h.articleService.AdminList(c.Request.Context(), AdminListQuery{
		Status:     c.Query("status"),
		AuthorID:   queryUint(c, "author_id"),
		CategoryID: queryUint(c, "category_id"),
		Q:          c.Query("q"),
		Sort:       c.Query("sort"),
		Page:       queryInt(c, "page", 1),
		PageSize:   queryInt(c, "page_size", 20),
	})
	if err != nil {
		dto.Error(c, err, "failed to load articles")
		return
	}
	dto.SuccessResponse(c, result)
}

// Review 审核稿件
// @Summary 审核稿件
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "文章ID"
// @Param request body ReviewRequest true "审核操作"
// @Success 200 {object} response.Response{data=article.Article}
// @Failure 409 {object} response.Response
// @Router /admin/articles/{id}/review [post]
func (h *ArticleHandler) Review(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	result, err := h.articleService.Review(c.Request.Context(), id, req)
	if err != nil {
		dto.Error(c, err, "failed to review article")
		return
	}
	dto.SuccessResponse(c, result)
}

// SetFlags 设置头条/突发
// @Summary 设置头条/突发标记
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "文章ID"
// @Param request body FlagsRequest true "标记"
// @Success 200 {object} response.Response{data=article.Article}
// @Router /admin/articles/{id}/flags [patch]
func (h *ArticleHandler) SetFlags(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req FlagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	result, err := h.articleService.SetFlags(c.Request.Context(), id, req)
	if err != nil {
		dto.Error(c, err, "failed to update flags")
		return
	}
	dto.SuccessResponse(c, result)
}

// Bulk 批量操作
// @Summary 批量发布/归档/删除
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body BulkRequest true "批量操作"
// @Success 200 {object} response.Response{data=[]BulkResult}
// @Router /admin/articles/bulk [post]
func (h *ArticleHandler) Bulk(c *gin.Context) {
	var req BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	result, err := h.articleService.Bulk(c.Request.Context(), req)
	if err != nil {
		dto.Error(c, err, "bulk operation failed")
		return
	}
	dto.SuccessResponse(c, result)
}
