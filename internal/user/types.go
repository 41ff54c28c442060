package user

// CreateUserRequest 管理员创建账号
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Role     string `json:"role" binding:"required,oneof=admin editor reporter reader"`
}

// UpdateUserRequest 管理员修改账号信息
type UpdateUserRequest struct {
	Name   *string `json:"name" binding:"omitempty,max=100"`
	Role   *string `json:"role" binding:"omitempty,oneof=admin editor reporter reader"`
	Bio    *string `json:"bio" binding:"omitempty,max=2000"`
	Avatar *string `json:"avatar" binding:"omitempty,max=500"`
}

// UpdateStatusRequest 启用/停用账号
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active suspended"`
}

// UpdateProfileRequest 用户修改自己的资料
type UpdateProfileRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=1,max=100"`
	Bio    *string `json:"bio" binding:"omitempty,max=2000"`
	Avatar *string `json:"avatar" binding:"omitempty,max=500"`
}

// ChangePasswordRequest 修改密码
type ChangePasswordRequest struct {
	Old string `json:"old" binding:"required"`
	New string `json:"new" binding:"required,min=6,max=72"`
}

// ListQuery 后台用户列表查询参数
type ListQuery struct {
	Role     string
	Status   string
	Q        string
	Page     int
	PageSize int
}
