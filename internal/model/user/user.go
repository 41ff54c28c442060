// Package user 用户模型
package user

import "time"

// 角色
const (
	RoleAdmin    = "admin"
	RoleEditor   = "editor"
	RoleReporter = "reporter"
	RoleReader   = "reader"
)

// 状态
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
)

// User 用户表，后台管理员、编辑、记者、读者共用
type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"type:varchar(100);not null" json:"name"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	Role         string     `gorm:"type:varchar(20);not null;default:'reader';index" json:"role"`
	Status       string     `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	Avatar       string     `gorm:"type:varchar(500)" json:"avatar"`
	Bio          string     `gorm:"type:text" json:"bio"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsStaff 是否为后台角色（可登录记者工作台）
func (u *User) IsStaff() bool {
	return IsStaffRole(u.Role)
}

// IsSuspended 是否已被停用
func (u *User) IsSuspended() bool {
	return u.Status == StatusSuspended
}

func IsStaffRole(role string) bool {
	switch role {
	case RoleAdmin, RoleEditor, RoleReporter:
		return true
	}
	return false
}

// IsModeratorRole 管理员或编辑，可审核文章和评论
func IsModeratorRole(role string) bool {
	return role == RoleAdmin || role == RoleEditor
}

// ValidRole 是否为合法角色
func ValidRole(role string) bool {
	return IsStaffRole(role) || role == RoleReader
}
