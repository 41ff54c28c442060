package user

import (
	"strconv"

	"newsbangla24/portal/internal/dto"
	"newsbangla24/portal/internal/middleware"
	"newsbangla24/portal/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *UserService
}

func NewUserHandler(userService *UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("invalid user id"),
		))
		return 0, false
	}
	return uint(id), true
}

// ListUsers 用户列表
// @Summary 用户列表（管理员）
// @Tags User
// @Produce json
// @Param role query string false "角色"
// @Param status query string false "状态"
// @Param q query string false "搜索姓名或邮箱"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=response.PageData}
// @Router /admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.userService.List(c.Request.Context(), ListQuery{
		Role:     c.Query("role"),
		Status:   c.Query("status"),
		Q:        c.Query("q"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		dto.Error(c, err, "failed to load users")
		return
	}
	dto.SuccessResponse(c, result)
}

// CreateUser 创建账号
// @Summary 创建账号（管理员）
// @Tags User
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "账号信息"
// @Success 200 {object} response.Response{data=user.User}
// @Router /admin/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	u, err := h.userService.Create(c.Request.Context(), req)
	if err != nil {
		dto.Error(c, err, "failed to create user")
		return
	}
	dto.SuccessResponse(c, u)
}

// UpdateUser 修改账号
// @Summary 修改账号（管理员）
// @Tags User
// @Accept json
// @Produce json
// @Param id path int true "用户ID"
// @Param request body UpdateUserRequest true "修改内容"
// @Success 200 {object} response.Response{data=user.User}
// @Router /admin/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	u, err := h.userService.Update(c.Request.Context(), id, req)
	if err != nil {
		dto.Error(c, err, "failed to update user")
		return
	}
	dto.SuccessResponse(c, u)
}

// UpdateStatus 启用/停用账号
// @Summary 启用或停用账号（管理员）
// @Tags User
// @Accept json
// @Produce json
// @Param id path int true "用户ID"
// @Param request body UpdateStatusRequest true "状态"
// @Success 200 {object} response.Response{data=user.User}
// @Router /admin/users/{id}/status [patch]
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	u, err := h.userService.SetStatus(c.Request.Context(), c.GetUint(middleware.CtxUserID), id, req.Status)
	if err != nil {
		dto.Error(c, err, "failed to update user")
		return
	}
	dto.SuccessResponse(c, u)
}

// DeleteUser 删除账号
// @Summary 删除账号（管理员）
// @Tags User
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response
// @Router /admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.userService.Delete(c.Request.Context(), c.GetUint(middleware.CtxUserID), id); err != nil {
		dto.Error(c, err, "failed to delete user")
		return
	}
	dto.SuccessResponse(c, nil)
}

// UpdateProfile 修改个人资料
// @Summary 修改个人资料
// @Tags User
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "资料"
// @Success 200 {object} response.Response{data=user.User}
// @Router /me/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	u, err := h.userService.UpdateProfile(c.Request.Context(), c.GetUint(middleware.CtxUserID), req)
	if err != nil {
		dto.Error(c, err, "failed to update profile")
		return
	}
	dto.SuccessResponse(c, u)
}

// ChangePassword 修改密码
// @Summary 修改密码
// @Tags User
// @Accept json
// @Produce json
// @Param request body ChangePasswordRequest true "旧密码和新密码"
// @Success 200 {object} response.Response
// @Router /me/password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), c.GetUint(middleware.CtxUserID), req); err != nil {
		dto.Error(c, err, "failed to change password")
		return
	}
	dto.SuccessResponse(c, nil)
}
