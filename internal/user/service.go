package user

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"newsbangla24/portal/internal/listing"
	model "newsbangla24/portal/internal/model/user"
	"newsbangla24/portal/pkg/email"
	"newsbangla24/portal/pkg/response"
)

// SessionRevoker 吊销用户会话
type SessionRevoker interface {
	DestroyUser(ctx context.Context, userID uint) (int, error)
}

type UserService struct {
	repo     Repository
	sessions SessionRevoker
	mailer   email.Sender
}

func NewUserService(repo Repository, sessions SessionRevoker, mailer email.Sender) *UserService {
	if mailer == nil {
		mailer = email.NoopSender{}
	}
	return &UserService{repo: repo, sessions: sessions, mailer: mailer}
}

// HashPassword bcrypt 哈希
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword 校验密码
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *UserService) get(ctx context.Context, id uint) (*model.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, response.NewNotFound("user not found")
	}
	if err != nil {
		return nil, response.NewInternal("failed to load user", err)
	}
	return u, nil
}

// Get 获取用户
func (s *UserService) Get(ctx context.Context, id uint) (*model.User, error) {
	return s.get(ctx, id)
}

// List SQL 只按角色和状态过滤，关键字在内存中匹配姓名和邮箱
func (s *UserService) List(ctx context.Context, q ListQuery) (*response.PageData, error) {
	users, err := s.repo.List(ctx, q.Role, q.Status)
	if err != nil {
		return nil, response.NewInternal("failed to load users", err)
	}

	matched := listing.Filter(users, q.Q, func(u model.User) []string {
		return []string{u.Name, u.Email}
	})
	p := listing.Paginate(int64(len(matched)), q.Page, q.PageSize)
	return &response.PageData{
		Items:      listing.Slice(matched, p),
		Total:      int64(len(matched)),
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}, nil
}

// Create 创建账号，邮箱重复返回 Conflict
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*model.User, error) {
	mail := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.repo.FindByEmail(ctx, mail); err == nil {
		return nil, response.NewConflict("email already registered")
	} else if !errors.Is(err, ErrNotFound) {
		return nil, response.NewInternal("failed to check email", err)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, response.NewInternal("failed to hash password", err)
	}

	u := &model.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        mail,
		PasswordHash: hash,
		Role:         req.Role,
		Status:       model.StatusActive,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, response.NewInternal("failed to create user", err)
	}

	s.sendWelcome(ctx, u)
	return u, nil
}

func (s *UserService) sendWelcome(ctx context.Context, u *model.User) {
	msg, err := email.RenderMessage(u.Email, "Welcome to NewsBangla24", email.WelcomeTemplate, email.WelcomeData{
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	})
	if err == nil {
		err = s.mailer.Send(msg)
	}
	if err != nil {
		slog.WarnContext(ctx, "failed to send welcome email", "user_id", u.ID, "error", err)
	}
}

// Update 管理员修改资料和角色
func (s *UserService) Update(ctx context.Context, id uint, req UpdateUserRequest) (*model.User, error) {
	u, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	roleChanged := false
	if req.Name != nil {
		u.Name = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil && *req.Role != u.Role {
		if !model.ValidRole(*req.Role) {
			return nil, response.NewInvalid("invalid role")
		}
		u.Role = *req.Role
		roleChanged = true
	}
	if req.Bio != nil {
		u.Bio = *req.Bio
	}
	if req.Avatar != nil {
		u.Avatar = *req.Avatar
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, response.NewInternal("failed to update user", err)
	}
	// 角色写在会话里，变更后需要重新登录
	if roleChanged {
		s.revoke(ctx, u.ID)
	}
	return u, nil
}

// SetStatus 停用账号时吊销其全部会话；管理员不能停用自己
func (s *UserService) SetStatus(ctx context.Context, actorID, id uint, status string) (*model.User, error) {
	if status != model.StatusActive && status != model.StatusSuspended {
		return nil, response.NewInvalid("invalid status")
	}
	if actorID == id && status == model.StatusSuspended {
		return nil, response.NewForbidden("you cannot suspend your own account")
	}

	u, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Status = status
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, response.NewInternal("failed to update user", err)
	}

	if status == model.StatusSuspended {
		s.revoke(ctx, u.ID)
	}
	return u, nil
}

// Delete 删除账号；管理员不能删除自己
func (s *UserService) Delete(ctx context.Context, actorID, id uint) error {
	if actorID == id {
		return response.NewForbidden("you cannot delete your own account")
	}
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return response.NewInternal("failed to delete user", err)
	}
	s.revoke(ctx, id)
	return nil
}

func (s *UserService) revoke(ctx context.Context, userID uint) {
	if s.sessions == nil {
		return
	}
	n, err := s.sessions.DestroyUser(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to revoke sessions", "user_id", userID, "error", err)
		return
	}
	slog.InfoContext(ctx, "sessions revoked", "user_id", userID, "count", n)
}

// UpdateProfile 用户修改自己的资料
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, req UpdateProfileRequest) (*model.User, error) {
	u, err := s.get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, response.NewInvalid("name cannot be empty")
		}
		u.Name = name
	}
	if req.Bio != nil {
		u.Bio = *req.Bio
	}
	if req.Avatar != nil {
		u.Avatar = *req.Avatar
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, response.NewInternal("failed to update profile", err)
	}
	return u, nil
}

// ChangePassword 校验旧密码后修改
func (s *UserService) ChangePassword(ctx context.Context, userID uint, req ChangePasswordRequest) error {
	u, err := s.get(ctx, userID)
	if err != nil {
		return err
	}
	if !CheckPassword(u.PasswordHash, req.Old) {
		return response.NewInvalid("current password is incorrect")
	}
	if req.Old == req.New {
		return response.NewInvalid("new password must differ from the current one")
	}

	hash, err := HashPassword(req.New)
	if err != nil {
		return response.NewInternal("failed to hash password", err)
	}
	u.PasswordHash = hash
	if err := s.repo.Update(ctx, u); err != nil {
		return response.NewInternal("failed to update password", err)
	}
	return nil
}
